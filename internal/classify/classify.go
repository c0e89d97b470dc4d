// Copyright Geoffrey Challen, 2026. All rights reserved.

// Package classify derives faculty type and rank from free-text appointment
// titles. Classification is an ordered table of keyword rules where the
// first match wins, because many titles satisfy several keyword sets and
// precedence is what makes "TCH PROF" teaching rather than tenure-track.
// Keeping the rules as data makes the ordering independently testable and
// lets a new Gray Book revision ship hand-tuned keywords without code
// changes.
package classify

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Faculty types derived from the primary position title.
const (
	TypeTeaching    = "teaching"
	TypeResearch    = "research"
	TypeClinical    = "clinical"
	TypeTenureTrack = "tenure_track"
	TypeOther       = "other"
)

// Faculty ranks derived from the primary position title.
const (
	RankAssistant      = "assistant"
	RankAssociate      = "associate"
	RankFull           = "full"
	RankSeniorLecturer = "senior_lecturer"
	RankLecturer       = "lecturer"
	RankInstructor     = "instructor"
	RankOther          = "other"
)

// Rule assigns a category when a title matches its keywords. A title matches
// when it contains every substring in All and, if Any is non-empty, at least
// one substring in Any. Keywords are matched against the uppercased title.
type Rule struct {
	Category string   `json:"category" yaml:"category"`
	All      []string `json:"all,omitempty" yaml:"all,omitempty"`
	Any      []string `json:"any,omitempty" yaml:"any,omitempty"`
}

// Matches reports whether the uppercased title satisfies the rule.
func (r Rule) Matches(title string) bool {
	for _, kw := range r.All {
		if !strings.Contains(title, kw) {
			return false
		}
	}
	if len(r.Any) == 0 {
		return len(r.All) > 0
	}
	for _, kw := range r.Any {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}

// Ruleset is an ordered pair of rule tables, one for faculty type and one
// for rank. Rules are evaluated top to bottom; the first match wins and
// unmatched titles fall through to "other".
type Ruleset struct {
	Name      string `json:"name" yaml:"name"`
	TypeRules []Rule `json:"type_rules" yaml:"type_rules"`
	RankRules []Rule `json:"rank_rules" yaml:"rank_rules"`
}

// FacultyType classifies a title into a faculty type.
func (rs Ruleset) FacultyType(title string) string {
	return apply(rs.TypeRules, title, TypeOther)
}

// Rank classifies a title into a faculty rank.
func (rs Ruleset) Rank(title string) string {
	return apply(rs.RankRules, title, RankOther)
}

func apply(rules []Rule, title, fallback string) string {
	upper := strings.ToUpper(title)
	for _, r := range rules {
		if r.Matches(upper) {
			return r.Category
		}
	}
	return fallback
}

// NormalizeRank maps non-professorial ranks onto comparable professorial
// ones for cross-track comparison: senior lecturers group with lecturers,
// instructors with assistant professors.
func NormalizeRank(rank string) string {
	switch rank {
	case RankSeniorLecturer:
		return RankLecturer
	case RankInstructor:
		return RankAssistant
	default:
		return rank
	}
}

// Standard is the canonical ruleset, taken from the HTML-table pipeline.
// INSTR titles classify as teaching, but only after the professorial checks.
func Standard() Ruleset {
	return Ruleset{
		Name: "standard",
		TypeRules: []Rule{
			{Category: TypeTeaching, Any: []string{"TCH ", "TEACHING", "SR. LECTURER", "SR LECTURER", "LECTURER"}},
			{Category: TypeResearch, All: []string{"RES "}, Any: []string{"PROF", "ASSOC", "ASST"}},
			{Category: TypeClinical, Any: []string{"CLIN", "CLINICAL"}},
			{Category: TypeTenureTrack, Any: []string{"PROF"}},
			{Category: TypeTeaching, Any: []string{"INSTR"}},
		},
		RankRules: []Rule{
			{Category: RankAssistant, Any: []string{"ASST PROF", "ASSISTANT PROF"}},
			{Category: RankAssociate, Any: []string{"ASSOC PROF", "ASSOCIATE PROF"}},
			{Category: RankFull, Any: []string{"PROF"}},
			{Category: RankSeniorLecturer, All: []string{"SR", "LECTURER"}},
			{Category: RankLecturer, Any: []string{"LECTURER"}},
			{Category: RankInstructor, Any: []string{"INSTR"}},
		},
	}
}

// Legacy is the ruleset the original DOCX pipeline used. It keys teaching on
// "INSTR " up front, requires PROF (not ASSOC/ASST) for research titles, and
// uses looser ASSISTANT/ASSOCIATE rank keywords. Kept selectable because the
// two source pipelines genuinely disagreed on INSTR titles; which reading is
// right is an analytical choice, not a parsing fact.
func Legacy() Ruleset {
	return Ruleset{
		Name: "legacy",
		TypeRules: []Rule{
			{Category: TypeTeaching, Any: []string{"TCH ", "TEACHING", "LECTURER", "INSTR "}},
			{Category: TypeResearch, All: []string{"RES ", "PROF"}},
			{Category: TypeClinical, Any: []string{"CLIN", "CLINICAL"}},
			{Category: TypeTenureTrack, Any: []string{"PROF"}},
		},
		RankRules: []Rule{
			{Category: RankAssistant, Any: []string{"ASST PROF", "ASSISTANT"}},
			{Category: RankAssociate, Any: []string{"ASSOC PROF", "ASSOCIATE"}},
			{Category: RankFull, Any: []string{"PROF"}},
			{Category: RankSeniorLecturer, All: []string{"SR", "LECTURER"}},
			{Category: RankLecturer, Any: []string{"LECTURER"}},
			{Category: RankInstructor, Any: []string{"INSTR"}},
		},
	}
}

// ByName returns a built-in ruleset.
func ByName(name string) (Ruleset, error) {
	switch name {
	case "", "standard":
		return Standard(), nil
	case "legacy":
		return Legacy(), nil
	default:
		return Ruleset{}, fmt.Errorf("unknown ruleset %q: use standard or legacy", name)
	}
}

// LoadFile reads a ruleset from a YAML file.
func LoadFile(path string) (Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Ruleset{}, fmt.Errorf("reading ruleset %s: %w", path, err)
	}
	var rs Ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return Ruleset{}, fmt.Errorf("parsing ruleset %s: %w", path, err)
	}
	if len(rs.TypeRules) == 0 || len(rs.RankRules) == 0 {
		return Ruleset{}, fmt.Errorf("ruleset %s: both type_rules and rank_rules are required", path)
	}
	return rs, nil
}

// Marshal renders the ruleset as YAML, so the active rule order can be
// inspected or used as a starting point for a hand-tuned file.
func (rs Ruleset) Marshal() ([]byte, error) {
	return yaml.Marshal(rs)
}
