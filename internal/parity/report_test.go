package parity

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gchallen/illinois-salary-parity/internal/assemble"
	"github.com/gchallen/illinois-salary-parity/internal/classify"
	"github.com/gchallen/illinois-salary-parity/internal/extract"
	"github.com/gchallen/illinois-salary-parity/pkg/types"
)

func sampleAnalysis() Analysis {
	return Analysis{
		Teaching: map[string][]Entry{
			classify.RankAssistant: {
				{Name: "Teach, Amy", Salary: 105000, TotalSalary: 105000},
				{Name: "Teach, Ben", Salary: 115000, TotalSalary: 115000},
			},
			classify.RankLecturer: {
				{Name: "Talk, Cal", Salary: 80000, TotalSalary: 80000},
			},
		},
		Tenure: map[string][]Entry{
			classify.RankAssistant: {
				{Name: "Track, Dee", Salary: 140000, TotalSalary: 140000},
				{Name: "Track, Eli", Salary: 160000, TotalSalary: 160000},
			},
		},
		Excluded: []string{"Split, Sam"},
	}
}

func TestWriteReport(t *testing.T) {
	var b strings.Builder
	WriteReport(&b, "434 - Siebel School Comp & Data Sci", sampleAnalysis(), 0)
	out := b.String()

	assert.Contains(t, out, "SALARY PARITY ANALYSIS: Teaching vs Tenure-Track Faculty")
	assert.Contains(t, out, "434 - Siebel School Comp & Data Sci")
	assert.Contains(t, out, "Data: Gray Book (Present Salary)")

	// One section per professorial rank, in order, with empty ranks noted.
	full := strings.Index(out, "RANK: FULL PROFESSOR")
	assoc := strings.Index(out, "RANK: ASSOCIATE PROFESSOR")
	asst := strings.Index(out, "RANK: ASSISTANT PROFESSOR")
	assert.True(t, full >= 0 && full < assoc && assoc < asst)
	assert.Contains(t, out, "Teaching Track: No faculty at this rank")

	assert.Contains(t, out, "Teaching Track (2 faculty):")
	assert.Contains(t, out, "  Mean:   $  110,000.00\n")
	assert.Contains(t, out, "  Median: $  110,000.00\n")
	assert.Contains(t, out, "Tenure Track (2 faculty):")
	assert.Contains(t, out, "  Mean:   $  150,000.00\n")

	assert.Contains(t, out, "--- PARITY COMPARISON ---")
	assert.Contains(t, out, "  Mean difference:   $   40,000.00 (+36.4%)\n")
	assert.Contains(t, out, "  Median difference: $   40,000.00 (+36.4%)\n")
	assert.Contains(t, out, "  Teaching/Tenure ratio: 73.33% (mean), 73.33% (median)\n")

	assert.Contains(t, out, "LECTURERS (non-professorial teaching track)")
	assert.Contains(t, out, "1 lecturers:")
	assert.Contains(t, out, "  Range:  $   80,000.00 - $   80,000.00\n")

	assert.Contains(t, out, "OVERALL SUMMARY")
	assert.Contains(t, out, "  Teaching track: 3\n")
	assert.Contains(t, out, "  Tenure track:   2\n")
	assert.Contains(t, out, "  Excluded (split appointments): 1\n")

	assert.Contains(t, out, "TEACHING TRACK FACULTY (sorted by salary)")
	assert.Contains(t, out, "TENURE TRACK FACULTY - TOP 30 (sorted by salary)")
	assert.Contains(t, out, fmt.Sprintf("  %-45s $%12s\n", "Track, Eli", "160,000.00"))

	// Listings sort by salary descending.
	ben := strings.Index(out, "Teach, Ben")
	amy := strings.Index(out, "Teach, Amy")
	cal := strings.Index(out, "Talk, Cal")
	assert.True(t, ben >= 0 && ben < amy && amy < cal)
}

func TestReportEndToEnd(t *testing.T) {
	rows := []extract.Row{
		{Section: "d1", Cells: []string{"Alpha, Ann", "TCH PROF", "M", "AB", "1", "1", "$100,000.00", "$103,000.00"}},
		{Section: "d1", Cells: []string{"Beta, Bob", "TCH PROF", "M", "AB", "1", "1", "$120,000.00", "$123,600.00"}},
		{Section: "d1", Cells: []string{"Gamma, Gil", "PROF", "A", "AA", "1", "1", "$150,000.00", "$154,500.00"}},
	}

	members := assemble.Members(rows)
	ds := assemble.Dataset(members, "434 - Siebel School Comp & Data Sci",
		classify.Standard(), types.DefaultFacultyClasses())
	a := Analyze(ds, Options{FacultyClasses: types.DefaultFacultyClasses()})

	var b strings.Builder
	WriteReport(&b, ds.Department, a, 0)
	out := b.String()

	assert.Contains(t, out, "RANK: FULL PROFESSOR")
	assert.Contains(t, out, "Teaching Track (2 faculty):")
	assert.Contains(t, out, "  Mean:   $  110,000.00\n")
	assert.Contains(t, out, "Tenure Track (1 faculty):")
	assert.Contains(t, out, "  Mean:   $  150,000.00\n")
	assert.Contains(t, out, "  Mean difference:   $   40,000.00 (+36.4%)\n")
}

func TestWriteReport_TopTenureCap(t *testing.T) {
	var b strings.Builder
	WriteReport(&b, "cs", sampleAnalysis(), 1)
	out := b.String()

	assert.Contains(t, out, "TENURE TRACK FACULTY - TOP 1 (sorted by salary)")
	assert.Contains(t, out, "Track, Eli")
	lower := out[strings.Index(out, "TENURE TRACK FACULTY"):]
	assert.NotContains(t, lower, "Track, Dee")
}

func TestWriteReport_EmptyAnalysis(t *testing.T) {
	var b strings.Builder
	WriteReport(&b, "cs", Analysis{
		Teaching: map[string][]Entry{},
		Tenure:   map[string][]Entry{},
	}, 0)
	out := b.String()

	assert.Contains(t, out, "Teaching track: 0")
	assert.Contains(t, out, "Tenure track:   0")
	assert.NotContains(t, out, "Excluded")
	assert.NotContains(t, out, "LECTURERS")
}
