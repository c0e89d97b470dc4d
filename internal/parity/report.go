// Copyright Geoffrey Challen, 2026. All rights reserved.

package parity

import (
	"fmt"
	"io"
	"strings"
)

// professorialRanks fixes the report section order.
var professorialRanks = []string{"full", "associate", "assistant"}

const defaultTopTenure = 30

// WriteReport renders the parity report. Section order is fixed: one section
// per professorial rank, then lecturers, then the overall summary, then the
// two sorted faculty listings. Output is deterministic for a given dataset.
func WriteReport(w io.Writer, department string, a Analysis, topTenure int) {
	if topTenure <= 0 {
		topTenure = defaultTopTenure
	}
	rule := strings.Repeat("=", 70)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "SALARY PARITY ANALYSIS: Teaching vs Tenure-Track Faculty")
	fmt.Fprintln(w, department)
	fmt.Fprintln(w, "Data: Gray Book (Present Salary)")
	fmt.Fprintln(w, rule)

	for _, rank := range professorialRanks {
		teaching := a.Teaching[rank]
		tenure := a.Tenure[rank]

		fmt.Fprintf(w, "\n%s\n", rule)
		fmt.Fprintf(w, "RANK: %s PROFESSOR\n", strings.ToUpper(rank))
		fmt.Fprintln(w, rule)

		writeTrack(w, "Teaching Track", teaching)
		writeTrack(w, "Tenure Track", tenure)

		if len(teaching) > 0 && len(tenure) > 0 {
			writeComparison(w, Describe(salaries(teaching)), Describe(salaries(tenure)))
		}
	}

	writeLecturers(w, rule, a.Teaching["lecturer"])
	writeSummary(w, rule, a)
	writeListings(w, rule, a, topTenure)
}

func writeTrack(w io.Writer, label string, entries []Entry) {
	if len(entries) == 0 {
		fmt.Fprintf(w, "\n%s: No faculty at this rank\n", label)
		return
	}
	s := Describe(salaries(entries))
	fmt.Fprintf(w, "\n%s (%d faculty):\n", label, s.Count)
	fmt.Fprintf(w, "  Mean:   $%12s\n", money(s.Mean))
	fmt.Fprintf(w, "  Median: $%12s\n", money(s.Median))
	fmt.Fprintf(w, "  Min:    $%12s\n", money(s.Min))
	fmt.Fprintf(w, "  Max:    $%12s\n", money(s.Max))
	if s.Count > 1 {
		fmt.Fprintf(w, "  StdDev: $%12s\n", money(s.StdDev))
	}
}

func writeComparison(w io.Writer, teaching, tenure Stats) {
	fmt.Fprintln(w, "\n--- PARITY COMPARISON ---")
	fmt.Fprintf(w, "  Mean difference:   $%12s (%+.1f%%)\n",
		money(tenure.Mean-teaching.Mean), (tenure.Mean/teaching.Mean-1)*100)
	fmt.Fprintf(w, "  Median difference: $%12s (%+.1f%%)\n",
		money(tenure.Median-teaching.Median), (tenure.Median/teaching.Median-1)*100)
	fmt.Fprintf(w, "  Teaching/Tenure ratio: %.2f%% (mean), %.2f%% (median)\n",
		teaching.Mean/tenure.Mean*100, teaching.Median/tenure.Median*100)
}

func writeLecturers(w io.Writer, rule string, lecturers []Entry) {
	if len(lecturers) == 0 {
		return
	}
	s := Describe(salaries(lecturers))
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "LECTURERS (non-professorial teaching track)")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "\n%d lecturers:\n", s.Count)
	fmt.Fprintf(w, "  Mean:   $%12s\n", money(s.Mean))
	fmt.Fprintf(w, "  Median: $%12s\n", money(s.Median))
	fmt.Fprintf(w, "  Range:  $%12s - $%12s\n", money(s.Min), money(s.Max))
}

func writeSummary(w io.Writer, rule string, a Analysis) {
	allTeaching := all(a.Teaching)
	allTenure := all(a.Tenure)

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "OVERALL SUMMARY")
	fmt.Fprintln(w, rule)

	fmt.Fprintln(w, "\nTotal faculty analyzed:")
	fmt.Fprintf(w, "  Teaching track: %d\n", len(allTeaching))
	fmt.Fprintf(w, "  Tenure track:   %d\n", len(allTenure))
	if len(a.Excluded) > 0 {
		fmt.Fprintf(w, "  Excluded (split appointments): %d\n", len(a.Excluded))
	}

	if len(allTeaching) > 0 {
		s := Describe(salaries(allTeaching))
		fmt.Fprintln(w, "\nTeaching track overall:")
		fmt.Fprintf(w, "  Mean:   $%12s\n", money(s.Mean))
		fmt.Fprintf(w, "  Median: $%12s\n", money(s.Median))
	}
	if len(allTenure) > 0 {
		s := Describe(salaries(allTenure))
		fmt.Fprintln(w, "\nTenure track overall:")
		fmt.Fprintf(w, "  Mean:   $%12s\n", money(s.Mean))
		fmt.Fprintf(w, "  Median: $%12s\n", money(s.Median))
	}
}

func writeListings(w io.Writer, rule string, a Analysis, topTenure int) {
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "TEACHING TRACK FACULTY (sorted by salary)")
	fmt.Fprintln(w, rule)
	for _, e := range bySalaryDesc(all(a.Teaching)) {
		fmt.Fprintf(w, "  %-45s $%12s\n", e.Name, money(e.Salary))
	}

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "TENURE TRACK FACULTY - TOP %d (sorted by salary)\n", topTenure)
	fmt.Fprintln(w, rule)
	tenure := bySalaryDesc(all(a.Tenure))
	if len(tenure) > topTenure {
		tenure = tenure[:topTenure]
	}
	for _, e := range tenure {
		fmt.Fprintf(w, "  %-45s $%12s\n", e.Name, money(e.Salary))
	}
}
