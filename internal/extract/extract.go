// Copyright Geoffrey Challen, 2026. All rights reserved.

// Package extract recovers tabular rows from Gray Book renderings. The HTML
// table walker and the DOCX text flattener both produce the same row format,
// so assembly and classification downstream are shared regardless of source.
package extract

// Row is one table row attributed to a department section. Cells appear in
// document column order: name, title, tenure code, employment class,
// present FTE, proposed FTE, present salary, proposed salary.
type Row struct {
	// Section is the stable identifier of the department heading that most
	// recently preceded the row (the heading's id attribute in HTML, or the
	// requested department code for flattened text).
	Section string

	Cells []string
}

// RowCells is the number of cells a complete position row carries.
const RowCells = 8
