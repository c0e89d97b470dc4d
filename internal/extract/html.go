// Copyright Geoffrey Challen, 2026. All rights reserved.

package extract

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// departmentHeading matches section heading text like
// "434 - Siebel School Comp & Data Sci".
var departmentHeading = regexp.MustCompile(`^\d+ - .+`)

// TableRows stream-parses a Gray Book HTML rendering and returns every data
// row, attributed to the department heading that precedes it. Rows inside
// <thead> (column headers) and rows before the first <h3 id=...> heading are
// dropped. Malformed markup never fails the walk; the tokenizer consumes
// what it can and unparseable fragments are skipped.
func TableRows(r io.Reader) ([]Row, error) {
	z := html.NewTokenizer(r)

	var (
		rows    []Row
		section string

		inHeading bool
		headingID string
		heading   strings.Builder

		inTable bool
		inThead bool
		inRow   bool
		inCell  bool
		cell    strings.Builder
		cells   []string
	)

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return rows, err
			}
			return rows, nil

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case "h3":
				inHeading = true
				headingID = attr(tok, "id")
				heading.Reset()
			case "table":
				inTable = true
			case "thead":
				inThead = true
			case "tr":
				if inTable && !inThead {
					inRow = true
					cells = nil
				}
			case "td", "th":
				if inRow {
					inCell = true
					cell.Reset()
				}
			}

		case html.EndTagToken:
			tok := z.Token()
			switch tok.Data {
			case "h3":
				if inHeading && headingID != "" && departmentHeading.MatchString(strings.TrimSpace(heading.String())) {
					section = headingID
				}
				inHeading = false
			case "table":
				inTable = false
			case "thead":
				inThead = false
			case "td", "th":
				if inCell {
					inCell = false
					cells = append(cells, strings.TrimSpace(cell.String()))
				}
			case "tr":
				if inRow {
					inRow = false
					if len(cells) > 0 && section != "" {
						rows = append(rows, Row{Section: section, Cells: cells})
					}
				}
			}

		case html.TextToken:
			text := string(z.Text())
			if inCell {
				cell.WriteString(text)
			} else if inHeading {
				heading.WriteString(text)
			}
		}
	}
}

// DepartmentNames walks a Gray Book HTML rendering and returns the mapping
// from section identifier to department display name, e.g.
// "c42-d6" -> "434 - Siebel School Comp & Data Sci".
func DepartmentNames(r io.Reader) (map[string]string, error) {
	z := html.NewTokenizer(r)

	names := make(map[string]string)
	var (
		inHeading bool
		headingID string
		heading   strings.Builder
	)

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return names, err
			}
			return names, nil

		case html.StartTagToken:
			tok := z.Token()
			if tok.Data == "h3" {
				inHeading = true
				headingID = attr(tok, "id")
				heading.Reset()
			}

		case html.EndTagToken:
			if z.Token().Data == "h3" {
				if inHeading && headingID != "" {
					name := strings.TrimSpace(heading.String())
					if departmentHeading.MatchString(name) {
						names[headingID] = name
					}
				}
				inHeading = false
			}

		case html.TextToken:
			if inHeading {
				heading.Write(z.Text())
			}
		}
	}
}

func attr(tok html.Token, name string) string {
	for _, a := range tok.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
