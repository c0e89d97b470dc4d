// Copyright Geoffrey Challen, 2026. All rights reserved.

package assemble

import (
	"github.com/gchallen/illinois-salary-parity/internal/classify"
	"github.com/gchallen/illinois-salary-parity/pkg/types"
)

// Dataset classifies assembled members and freezes them into the
// intermediate dataset. Members whose primary position is a staff
// appointment (employment class outside the whitelist) are dropped; an
// empty class cell counts as faculty because the flattened-text front-end
// does not carry the column. Record order follows member order.
func Dataset(members []types.FacultyMember, department string, rs classify.Ruleset, facultyClasses []string) types.Dataset {
	ds := types.Dataset{
		Department: department,
		Ruleset:    rs.Name,
	}

	for _, m := range members {
		primary := m.PrimaryPosition()
		if primary.EmplClass != "" && !inList(facultyClasses, primary.EmplClass) {
			continue
		}

		rec := types.Record{
			Name:                m.Name,
			FacultyType:         rs.FacultyType(primary.Title),
			Rank:                rs.Rank(primary.Title),
			IsFullTimeHere:      m.IsFullTimeHere(),
			IsJointAppointment:  m.IsJointAppointment(),
			TotalPresentSalary:  m.TotalPresentSalary(),
			TotalProposedSalary: m.TotalProposedSalary(),
			TotalPresentFTE:     m.TotalPresentFTE(),
			Positions:           m.Positions,
		}
		ds.Faculty = append(ds.Faculty, rec)

		ds.Summary.TotalFaculty++
		switch rec.FacultyType {
		case classify.TypeTeaching:
			ds.Summary.TeachingTrack++
			if rec.IsFullTimeHere {
				ds.Summary.TeachingTrackFulltime++
			}
		case classify.TypeTenureTrack:
			ds.Summary.TenureTrack++
			if rec.IsFullTimeHere {
				ds.Summary.TenureTrackFulltime++
			}
		case classify.TypeResearch:
			ds.Summary.Research++
		case classify.TypeClinical:
			ds.Summary.Clinical++
		}
	}

	return ds
}

func inList(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
