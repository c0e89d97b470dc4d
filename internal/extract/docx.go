// Copyright Geoffrey Challen, 2026. All rights reserved.

package extract

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// ErrSectionNotFound reports that the requested department heading does not
// appear in the document.
var ErrSectionNotFound = errors.New("department section not found")

// documentXML is the main document part inside a DOCX container.
const documentXML = "word/document.xml"

// pageBreak marks the running footer that separates Gray Book pages in the
// flattened text. Department sections span pages, so section extraction
// stitches text between a heading and the next footer.
var pageBreak = regexp.MustCompile(`August \d+, \d{4} Board of Trustees`)

// sectionCap bounds how much text follows a heading when no page footer is
// found after it.
const sectionCap = 10000

// DocxText unpacks a DOCX container and flattens the document body to one
// whitespace-joined string. Only literal text runs survive; all structural
// and formatting markup is discarded, so callers see text in document order
// with no row or column information.
func DocxText(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("opening container %s: %w", path, err)
	}
	defer zr.Close()

	var doc io.ReadCloser
	for _, f := range zr.File {
		if f.Name == documentXML {
			doc, err = f.Open()
			if err != nil {
				return "", fmt.Errorf("opening %s: %w", documentXML, err)
			}
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("%s: no %s entry", path, documentXML)
	}
	defer doc.Close()

	return flattenWordXML(doc)
}

// flattenWordXML walks WordprocessingML and joins every <w:t> run with
// single spaces. Unparseable fragments end the walk silently; whatever text
// was recovered up to that point is returned.
func flattenWordXML(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var (
		parts  []string
		inText bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			inText = t.Name.Local == "t"
		case xml.EndElement:
			inText = false
		case xml.CharData:
			if inText && len(t) > 0 {
				parts = append(parts, string(t))
			}
		}
	}
	return strings.Join(parts, " "), nil
}

// SectionText collects every page of a department's section from flattened
// Gray Book text. The heading is "CODE - NAME"; each occurrence is taken up
// to the following page footer. A heading that never appears is fatal.
func SectionText(text, code, name string) (string, error) {
	heading := code + " - " + name

	var sections []string
	rest := text
	for {
		idx := strings.Index(rest, heading)
		if idx < 0 {
			break
		}
		body := rest[idx:]
		end := len(body)
		if end > sectionCap {
			end = sectionCap
		}
		if loc := pageBreak.FindStringIndex(body[len(heading):]); loc != nil {
			end = len(heading) + loc[0]
		}
		sections = append(sections, body[:end])
		rest = body[end:]
	}

	if len(sections) == 0 {
		return "", fmt.Errorf("%w: %q", ErrSectionNotFound, heading)
	}
	return strings.Join(sections, " "), nil
}

// positionLine matches one appointment in flattened section text:
// "Challen, Geoffrey Werner TCH PROF M AA 1 1 $175,424.00 $179,999.60"
// capturing name, title, tenure code, both FTEs, and both salaries.
var positionLine = regexp.MustCompile(
	`([A-Z][a-z]+(?:[-'][A-Z]?[a-z]+)?,\s+[A-Za-z]+(?:\s+[A-Z]\.?)?(?:\s+[A-Za-z]+)*)\s+` + // name (Last, First Middle)
		`([A-Z][A-Z &,.']+?)\s+` + // title (uppercase run)
		`([AMP]{0,2})\s+` + // tenure code
		`(\d+(?:\.\d+)?)\s+` + // present FTE
		`(\d+(?:\.\d+)?)\s+` + // proposed FTE
		`(\$\d{1,3}(?:,\d{3})*\.\d{2})\s+` + // present salary
		`(\$\d{1,3}(?:,\d{3})*\.\d{2})`) // proposed salary

// FlatRows matches position lines in a flattened department section and
// emits canonical rows. The flattened text does not carry the employment
// class column, so that cell is left empty. Page-footer fragments that
// happen to satisfy the name pattern are skipped.
func FlatRows(section, sectionID string) []Row {
	var rows []Row
	for _, m := range positionLine.FindAllStringSubmatch(section, -1) {
		name := strings.TrimSpace(m[1])
		if strings.Contains(name, "Board of Trustees") {
			continue
		}
		rows = append(rows, Row{
			Section: sectionID,
			Cells: []string{
				name,
				strings.TrimSpace(m[2]),
				m[3],
				"", // empl class not present in flattened text
				m[4],
				m[5],
				m[6],
				m[7],
			},
		})
	}
	return rows
}
