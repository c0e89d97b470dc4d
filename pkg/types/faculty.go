// Copyright Geoffrey Challen, 2026. All rights reserved.

// Package types defines the shared data model for the Gray Book pipeline:
// positions, faculty members, and the serialized dataset passed between the
// parse and analyze stages.
package types

// Position is a single appointment line from the Gray Book: one title with
// its tenure code, employment class, and present/proposed FTE and salary.
// Positions are immutable once parsed.
type Position struct {
	// Title is the free-text appointment title, e.g. "TCH ASSOC PROF".
	Title string `json:"title" yaml:"title"`

	// TenureCode is the tenure status code, e.g. "A" or "P".
	TenureCode string `json:"tenure_code" yaml:"tenure_code"`

	// EmplClass is the employment class code, e.g. "AA" for faculty or
	// "BA" for staff. Empty when the source format does not carry it.
	EmplClass string `json:"empl_class" yaml:"empl_class"`

	// PresentFTE and ProposedFTE are fractional full-time equivalents.
	PresentFTE  float64 `json:"present_fte" yaml:"present_fte"`
	ProposedFTE float64 `json:"proposed_fte" yaml:"proposed_fte"`

	// PresentSalary and ProposedSalary are annual amounts in dollars.
	PresentSalary  float64 `json:"present_salary" yaml:"present_salary"`
	ProposedSalary float64 `json:"proposed_salary" yaml:"proposed_salary"`
}

// FullTimeFTE is the total-FTE threshold above which an appointment counts
// as full time in this department.
const FullTimeFTE = 0.9

// FacultyMember is one person within one department, holding every position
// the Gray Book lists for them there. Positions appear in document order and
// are never reassigned after assembly; a member always has at least one.
type FacultyMember struct {
	Name       string     `json:"name" yaml:"name"`
	Department string     `json:"department" yaml:"department"`
	Positions  []Position `json:"positions" yaml:"positions"`
}

// PrimaryPosition returns the highest-paid position, ignoring $0 positions
// unless every position is $0, in which case it falls back to the first.
// Ties go to the earlier position. Returns the zero Position for a member
// with no positions.
func (f FacultyMember) PrimaryPosition() Position {
	if len(f.Positions) == 0 {
		return Position{}
	}
	best := -1
	for i, p := range f.Positions {
		if p.PresentSalary <= 0 {
			continue
		}
		if best < 0 || p.PresentSalary > f.Positions[best].PresentSalary {
			best = i
		}
	}
	if best < 0 {
		return f.Positions[0]
	}
	return f.Positions[best]
}

// TotalPresentSalary sums present salary across all positions.
func (f FacultyMember) TotalPresentSalary() float64 {
	var total float64
	for _, p := range f.Positions {
		total += p.PresentSalary
	}
	return total
}

// TotalProposedSalary sums proposed salary across all positions.
func (f FacultyMember) TotalProposedSalary() float64 {
	var total float64
	for _, p := range f.Positions {
		total += p.ProposedSalary
	}
	return total
}

// TotalPresentFTE sums present FTE across all positions.
func (f FacultyMember) TotalPresentFTE() float64 {
	var total float64
	for _, p := range f.Positions {
		total += p.PresentFTE
	}
	return total
}

// TotalProposedFTE sums proposed FTE across all positions.
func (f FacultyMember) TotalProposedFTE() float64 {
	var total float64
	for _, p := range f.Positions {
		total += p.ProposedFTE
	}
	return total
}

// IsFullTimeHere reports whether the member's total FTE in this department
// meets the full-time threshold.
func (f FacultyMember) IsFullTimeHere() bool {
	return f.TotalPresentFTE() >= FullTimeFTE
}

// IsJointAppointment reports whether the member's primary appointment likely
// lies elsewhere: a partial FTE share or no salary attributed here.
func (f FacultyMember) IsJointAppointment() bool {
	return f.TotalPresentFTE() < FullTimeFTE || f.TotalPresentSalary() == 0
}

// Record is the serialized form of a classified FacultyMember in the
// intermediate dataset. Classification fields are frozen at parse time so
// the analyze stage reads them back without re-deriving.
type Record struct {
	Name                string     `json:"name" yaml:"name"`
	FacultyType         string     `json:"faculty_type" yaml:"faculty_type"`
	Rank                string     `json:"rank" yaml:"rank"`
	IsFullTimeHere      bool       `json:"is_full_time_here" yaml:"is_full_time_here"`
	IsJointAppointment  bool       `json:"is_joint_appointment" yaml:"is_joint_appointment"`
	TotalPresentSalary  float64    `json:"total_present_salary" yaml:"total_present_salary"`
	TotalProposedSalary float64    `json:"total_proposed_salary" yaml:"total_proposed_salary"`
	TotalPresentFTE     float64    `json:"total_present_fte" yaml:"total_present_fte"`
	Positions           []Position `json:"positions" yaml:"positions"`
}

// PrimaryPosition mirrors FacultyMember.PrimaryPosition for records read
// back from the intermediate dataset.
func (r Record) PrimaryPosition() Position {
	return FacultyMember{Positions: r.Positions}.PrimaryPosition()
}

// Summary holds the headline counts written with the dataset.
type Summary struct {
	TotalFaculty          int `json:"total_faculty" yaml:"total_faculty"`
	TeachingTrack         int `json:"teaching_track" yaml:"teaching_track"`
	TeachingTrackFulltime int `json:"teaching_track_fulltime" yaml:"teaching_track_fulltime"`
	TenureTrack           int `json:"tenure_track" yaml:"tenure_track"`
	TenureTrackFulltime   int `json:"tenure_track_fulltime" yaml:"tenure_track_fulltime"`
	Research              int `json:"research" yaml:"research"`
	Clinical              int `json:"clinical" yaml:"clinical"`
}

// Dataset is the intermediate artifact produced by the parse stage and
// consumed by the analyze and export stages.
type Dataset struct {
	// Department is the display name, e.g. "434 - Siebel School Comp & Data Sci".
	Department string `json:"department" yaml:"department"`

	// Ruleset names the classifier ruleset the records were classified with.
	Ruleset string `json:"ruleset" yaml:"ruleset"`

	Summary Summary  `json:"summary" yaml:"summary"`
	Faculty []Record `json:"faculty" yaml:"faculty"`
}
