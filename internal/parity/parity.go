// Copyright Geoffrey Challen, 2026. All rights reserved.

// Package parity compares compensation across faculty tracks. It filters the
// extracted dataset down to full-time, single-track members, buckets them by
// normalized rank, and renders the descriptive-statistics report.
package parity

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/gchallen/illinois-salary-parity/internal/classify"
	"github.com/gchallen/illinois-salary-parity/pkg/types"
)

// Options controls the analysis filters.
type Options struct {
	// FacultyClasses whitelists employment classes counted as faculty
	// appointments. Positions whose class is empty (the flattened-text
	// front-end does not carry the column) are treated as faculty.
	FacultyClasses []string

	// TopTenure caps the tenure-track listing in the report (default 30).
	TopTenure int
}

// Entry is one member admitted to the comparison.
type Entry struct {
	Name string
	// Salary is the primary-position salary, not the member's total.
	// Administrative stipends bundled into secondary positions would skew
	// the track comparison, so they are deliberately left out.
	Salary float64
	// TotalSalary is the member's total across all positions, kept for
	// reference output.
	TotalSalary float64
}

// Analysis is the filtered, bucketed input to the report.
type Analysis struct {
	// Teaching and Tenure map normalized rank -> members, each preserving
	// dataset order.
	Teaching map[string][]Entry
	Tenure   map[string][]Entry

	// Excluded lists members dropped because their faculty positions span
	// more than one track, making salary attribution ambiguous.
	Excluded []string
}

// Analyze filters and buckets the dataset. Only full-time members with a
// clean single-track appointment and a nonzero primary faculty salary are
// admitted. Multi-track members are recorded in Excluded and logged; they
// are a known property of the data, not an error.
func Analyze(ds types.Dataset, opts Options) Analysis {
	a := Analysis{
		Teaching: make(map[string][]Entry),
		Tenure:   make(map[string][]Entry),
	}

	for _, rec := range ds.Faculty {
		if !rec.IsFullTimeHere {
			continue
		}

		positions := facultyPositions(rec, opts.FacultyClasses)
		if len(positions) == 0 {
			continue
		}

		if !isClean(positions) {
			log.Info().Str("name", rec.Name).Msg("excluding split appointment")
			a.Excluded = append(a.Excluded, rec.Name)
			continue
		}

		salary := primaryFacultySalary(positions)
		if salary == 0 {
			continue
		}

		entry := Entry{Name: rec.Name, Salary: salary, TotalSalary: rec.TotalPresentSalary}
		rank := classify.NormalizeRank(rec.Rank)

		switch rec.FacultyType {
		case classify.TypeTeaching:
			a.Teaching[rank] = append(a.Teaching[rank], entry)
		case classify.TypeTenureTrack:
			a.Tenure[rank] = append(a.Tenure[rank], entry)
		}
	}

	return a
}

// facultyPositions keeps the positions whose employment class is in the
// whitelist. An empty class cell counts as faculty: the flattened-text
// front-end has no class column, and staff rows never survive its
// position-line pattern anyway.
func facultyPositions(rec types.Record, classes []string) []types.Position {
	var out []types.Position
	for _, p := range rec.Positions {
		if p.EmplClass == "" || contains(classes, p.EmplClass) {
			out = append(out, p)
		}
	}
	return out
}

// isClean reports whether all faculty positions sit on a single track.
func isClean(positions []types.Position) bool {
	titles := make([]string, len(positions))
	for i, p := range positions {
		titles[i] = p.Title
	}
	return len(classify.Tracks(titles)) <= 1
}

// primaryFacultySalary is the highest present salary among nonzero faculty
// positions, or 0 when every faculty position pays nothing here.
func primaryFacultySalary(positions []types.Position) float64 {
	var best float64
	for _, p := range positions {
		if p.PresentSalary > best {
			best = p.PresentSalary
		}
	}
	return best
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// all flattens every bucket into one slice in deterministic rank order.
func all(buckets map[string][]Entry) []Entry {
	ranks := make([]string, 0, len(buckets))
	for r := range buckets {
		ranks = append(ranks, r)
	}
	sort.Strings(ranks)

	var out []Entry
	for _, r := range ranks {
		out = append(out, buckets[r]...)
	}
	return out
}

// salaries projects entries to their primary salaries.
func salaries(entries []Entry) []float64 {
	out := make([]float64, len(entries))
	for i, e := range entries {
		out[i] = e.Salary
	}
	return out
}

// bySalaryDesc returns a copy sorted by salary descending, ties broken by
// name so report output is deterministic.
func bySalaryDesc(entries []Entry) []Entry {
	out := append([]Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Salary != out[j].Salary {
			return out[i].Salary > out[j].Salary
		}
		return out[i].Name < out[j].Name
	})
	return out
}
