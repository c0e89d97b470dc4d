package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gchallen/illinois-salary-parity/internal/classify"
	"github.com/gchallen/illinois-salary-parity/pkg/types"
)

func member(name, title, class string, fte, salary float64) types.FacultyMember {
	return types.FacultyMember{
		Name:       name,
		Department: "Siebel School Comp & Data Sci",
		Positions: []types.Position{{
			Title:          title,
			EmplClass:      class,
			PresentFTE:     fte,
			ProposedFTE:    fte,
			PresentSalary:  salary,
			ProposedSalary: salary,
		}},
	}
}

func TestDataset_StaffFilteredByClass(t *testing.T) {
	members := []types.FacultyMember{
		member("Smith, Jane", "PROF", "AA", 1, 150000),
		member("Ops, Pat", "IT SPECIALIST", "CA", 1, 90000),
		member("Doe, John", "TCH ASST PROF", "AB", 1, 105000),
	}

	ds := Dataset(members, "cs", classify.Standard(), types.DefaultFacultyClasses())
	require.Len(t, ds.Faculty, 2)
	assert.Equal(t, "Smith, Jane", ds.Faculty[0].Name)
	assert.Equal(t, "Doe, John", ds.Faculty[1].Name)
}

func TestDataset_EmptyClassCountsAsFaculty(t *testing.T) {
	members := []types.FacultyMember{
		member("Smith, Jane", "PROF", "", 1, 150000),
	}

	ds := Dataset(members, "cs", classify.Standard(), types.DefaultFacultyClasses())
	require.Len(t, ds.Faculty, 1)
	assert.Equal(t, classify.TypeTenureTrack, ds.Faculty[0].FacultyType)
}

func TestDataset_ClassificationUsesPrimaryPosition(t *testing.T) {
	m := types.FacultyMember{
		Name: "Split, Sam",
		Positions: []types.Position{
			{Title: "LECTURER", EmplClass: "AL", PresentFTE: 0.25, PresentSalary: 20000},
			{Title: "PROF", EmplClass: "AA", PresentFTE: 0.75, PresentSalary: 130000},
		},
	}

	ds := Dataset([]types.FacultyMember{m}, "cs", classify.Standard(), types.DefaultFacultyClasses())
	require.Len(t, ds.Faculty, 1)
	assert.Equal(t, classify.TypeTenureTrack, ds.Faculty[0].FacultyType)
	assert.Equal(t, classify.RankFull, ds.Faculty[0].Rank)
	assert.InDelta(t, 150000, ds.Faculty[0].TotalPresentSalary, 1e-9)
}

func TestDataset_SummaryCounts(t *testing.T) {
	members := []types.FacultyMember{
		member("A, A", "PROF", "AA", 1, 150000),
		member("B, B", "TCH ASST PROF", "AB", 1, 105000),
		member("C, C", "TCH ASSOC PROF", "AB", 0.5, 60000),
		member("D, D", "RES ASST PROF", "AM", 1, 95000),
		member("E, E", "CLIN PROF", "AA", 1, 120000),
	}

	ds := Dataset(members, "cs", classify.Standard(), types.DefaultFacultyClasses())
	assert.Equal(t, 5, ds.Summary.TotalFaculty)
	assert.Equal(t, 1, ds.Summary.TenureTrack)
	assert.Equal(t, 1, ds.Summary.TenureTrackFulltime)
	assert.Equal(t, 2, ds.Summary.TeachingTrack)
	assert.Equal(t, 1, ds.Summary.TeachingTrackFulltime)
	assert.Equal(t, 1, ds.Summary.Research)
	assert.Equal(t, 1, ds.Summary.Clinical)
}
