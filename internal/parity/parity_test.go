package parity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gchallen/illinois-salary-parity/internal/classify"
	"github.com/gchallen/illinois-salary-parity/pkg/types"
)

func record(name, ftype, rank string, fullTime bool, positions ...types.Position) types.Record {
	var total float64
	for _, p := range positions {
		total += p.PresentSalary
	}
	return types.Record{
		Name:               name,
		FacultyType:        ftype,
		Rank:               rank,
		IsFullTimeHere:     fullTime,
		TotalPresentSalary: total,
		Positions:          positions,
	}
}

func pos(title, class string, salary float64) types.Position {
	return types.Position{Title: title, EmplClass: class, PresentSalary: salary}
}

func defaultOptions() Options {
	return Options{FacultyClasses: types.DefaultFacultyClasses()}
}

func TestAnalyze_Buckets(t *testing.T) {
	ds := types.Dataset{Faculty: []types.Record{
		record("Teach, Amy", classify.TypeTeaching, classify.RankAssistant, true,
			pos("TCH ASST PROF", "AB", 105000)),
		record("Track, Ben", classify.TypeTenureTrack, classify.RankFull, true,
			pos("PROF", "AA", 150000)),
		record("Talk, Cal", classify.TypeTeaching, classify.RankSeniorLecturer, true,
			pos("SR LECTURER", "AL", 92000)),
	}}

	a := Analyze(ds, defaultOptions())
	require.Len(t, a.Teaching[classify.RankAssistant], 1)
	require.Len(t, a.Tenure[classify.RankFull], 1)
	assert.Empty(t, a.Excluded)

	// Senior lecturers land in the lecturer bucket.
	require.Len(t, a.Teaching[classify.RankLecturer], 1)
	assert.Equal(t, "Talk, Cal", a.Teaching[classify.RankLecturer][0].Name)
}

func TestAnalyze_PartTimeExcluded(t *testing.T) {
	ds := types.Dataset{Faculty: []types.Record{
		record("Half, Hana", classify.TypeTeaching, classify.RankAssistant, false,
			pos("TCH ASST PROF", "AB", 52000)),
	}}

	a := Analyze(ds, defaultOptions())
	assert.Empty(t, a.Teaching)
	assert.Empty(t, a.Excluded)
}

func TestAnalyze_SplitAppointmentExcluded(t *testing.T) {
	ds := types.Dataset{Faculty: []types.Record{
		record("Split, Sam", classify.TypeTenureTrack, classify.RankFull, true,
			pos("PROF", "AA", 100000),
			pos("RES PROF", "AA", 60000)),
	}}

	a := Analyze(ds, defaultOptions())
	assert.Empty(t, a.Tenure)
	assert.Equal(t, []string{"Split, Sam"}, a.Excluded)
}

func TestAnalyze_StaffPositionsIgnoredForTrackCheck(t *testing.T) {
	// A staff-class side appointment neither splits the track nor feeds the
	// salary comparison.
	ds := types.Dataset{Faculty: []types.Record{
		record("Both, Bo", classify.TypeTenureTrack, classify.RankFull, true,
			pos("PROF", "AA", 150000),
			pos("RES COORDINATOR", "CA", 180000)),
	}}

	a := Analyze(ds, defaultOptions())
	require.Len(t, a.Tenure[classify.RankFull], 1)
	assert.Empty(t, a.Excluded)
	assert.InDelta(t, 150000, a.Tenure[classify.RankFull][0].Salary, 1e-9)
}

func TestAnalyze_OnlyStaffPositionsSkipped(t *testing.T) {
	ds := types.Dataset{Faculty: []types.Record{
		record("Staff, Sal", classify.TypeOther, classify.RankOther, true,
			pos("IT SPECIALIST", "CA", 90000)),
	}}

	a := Analyze(ds, defaultOptions())
	assert.Empty(t, a.Teaching)
	assert.Empty(t, a.Tenure)
	assert.Empty(t, a.Excluded)
}

func TestAnalyze_EmptyClassCountsAsFaculty(t *testing.T) {
	ds := types.Dataset{Faculty: []types.Record{
		record("Flat, Fay", classify.TypeTeaching, classify.RankLecturer, true,
			pos("LECTURER", "", 80000)),
	}}

	a := Analyze(ds, defaultOptions())
	require.Len(t, a.Teaching[classify.RankLecturer], 1)
}

func TestAnalyze_ZeroSalarySkipped(t *testing.T) {
	ds := types.Dataset{Faculty: []types.Record{
		record("Free, Fred", classify.TypeTenureTrack, classify.RankFull, true,
			pos("PROF", "AA", 0)),
	}}

	a := Analyze(ds, defaultOptions())
	assert.Empty(t, a.Tenure)
}

func TestAnalyze_PrimarySalaryExcludesStipends(t *testing.T) {
	ds := types.Dataset{Faculty: []types.Record{
		record("Chair, Cam", classify.TypeTenureTrack, classify.RankFull, true,
			pos("PROF", "AA", 150000),
			pos("DEPT HEAD STIPEND", "AA", 20000)),
	}}

	a := Analyze(ds, defaultOptions())
	require.Len(t, a.Tenure[classify.RankFull], 1)
	e := a.Tenure[classify.RankFull][0]
	assert.InDelta(t, 150000, e.Salary, 1e-9)
	assert.InDelta(t, 170000, e.TotalSalary, 1e-9)
}

func TestBySalaryDesc(t *testing.T) {
	entries := []Entry{
		{Name: "Baker, Ann", Salary: 100},
		{Name: "Adams, Zoe", Salary: 100},
		{Name: "Cole, Max", Salary: 300},
	}

	sorted := bySalaryDesc(entries)
	assert.Equal(t, "Cole, Max", sorted[0].Name)
	assert.Equal(t, "Adams, Zoe", sorted[1].Name)
	assert.Equal(t, "Baker, Ann", sorted[2].Name)

	// Input order untouched.
	assert.Equal(t, "Baker, Ann", entries[0].Name)
}
