// Copyright Geoffrey Challen, 2026. All rights reserved.

// Package assemble groups extracted rows into faculty members. It owns the
// lenient numeric parsing and the continuation-row merge that folds multiple
// appointment lines for one person into a single member.
package assemble

import (
	"strconv"
	"strings"

	"github.com/gchallen/illinois-salary-parity/internal/extract"
	"github.com/gchallen/illinois-salary-parity/pkg/types"
)

// subtotalMarker appears in the title cell of per-person subtotal rows.
// Totals are always recomputed from constituent positions, never read from
// the source.
const subtotalMarker = "Employee Total"

// Members assembles rows into faculty members in document encounter order.
// Rows with fewer than the expected number of cells are dropped (header
// leakage, truncated fragments), as are subtotal rows. A row whose name cell
// is blank or identical to the previous member's name continues that member
// with an additional position; anything else starts a new member. Every
// returned member carries at least one position.
func Members(rows []extract.Row) []types.FacultyMember {
	var members []types.FacultyMember

	for _, row := range rows {
		if len(row.Cells) < extract.RowCells {
			continue
		}

		name := row.Cells[0]
		title := row.Cells[1]
		if strings.Contains(title, subtotalMarker) {
			continue
		}

		pos := types.Position{
			Title:          title,
			TenureCode:     row.Cells[2],
			EmplClass:      row.Cells[3],
			PresentFTE:     ParseFTE(row.Cells[4]),
			ProposedFTE:    ParseFTE(row.Cells[5]),
			PresentSalary:  ParseCurrency(row.Cells[6]),
			ProposedSalary: ParseCurrency(row.Cells[7]),
		}

		if len(members) > 0 {
			last := &members[len(members)-1]
			if last.Department == row.Section && (name == "" || name == last.Name) {
				last.Positions = append(last.Positions, pos)
				continue
			}
		}

		members = append(members, types.FacultyMember{
			Name:       name,
			Department: row.Section,
			Positions:  []types.Position{pos},
		})
	}

	return members
}

// ParseCurrency parses an amount like "$1,234.56" to 1234.56. The leading
// currency symbol and thousands separators are stripped before parsing. Any
// string without a parseable numeric body yields 0 — a single bad cell must
// not abort a multi-hundred-record batch.
func ParseCurrency(s string) float64 {
	cleaned := strings.ReplaceAll(s, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseFTE parses a full-time-equivalent cell like "0.5", yielding 0 on any
// parse failure.
func ParseFTE(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
