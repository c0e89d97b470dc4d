// Copyright Geoffrey Challen, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gchallen/illinois-salary-parity/internal/assemble"
	"github.com/gchallen/illinois-salary-parity/internal/classify"
	"github.com/gchallen/illinois-salary-parity/internal/export"
	"github.com/gchallen/illinois-salary-parity/internal/extract"
	"github.com/gchallen/illinois-salary-parity/internal/store"
	"github.com/gchallen/illinois-salary-parity/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract faculty records from a Gray Book document",
	Long: `Parse reads a Gray Book rendering, extracts the requested department's
position rows, assembles them into one record per faculty member, classifies
each member's type and rank from their primary appointment title, and writes
the intermediate JSON dataset the analyze stage consumes.

The HTML rendering is preferred: its tables carry the employment-class
column and parse cleanly. The DOCX container is supported as a fallback via
text flattening and positional pattern matching, which is inherently more
fragile and may need ruleset hand-tuning per Gray Book revision.`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("input", "uiuc-graybook.html", "Gray Book document to read (.html or .docx)")
	parseCmd.Flags().String("format", "auto", "input format: auto, html, or docx")
	parseCmd.Flags().String("department", "434", "department code to extract")
	parseCmd.Flags().String("department-name", "Siebel School Comp & Data Sci", "department name as printed in section headings")
	parseCmd.Flags().String("output", "cs_faculty_salaries.json", "intermediate JSON dataset to write")
	parseCmd.Flags().String("csv", "cs_faculty_salaries.csv", "flat CSV rendering to write alongside the dataset (empty to skip)")
	parseCmd.Flags().String("xlsx", "", "flat XLSX rendering to write (empty to skip)")
	parseCmd.Flags().String("db", "", "SQLite database to index the dataset into (empty to skip)")
	parseCmd.Flags().String("ruleset", "standard", "classifier ruleset: standard or legacy")
	parseCmd.Flags().String("ruleset-file", "", "YAML file with hand-tuned classifier rules (overrides --ruleset)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := parseConfig(cmd)

	rs, err := loadRuleset(cfg.ClassifierConfig)
	if err != nil {
		return err
	}

	rows, department, err := extractRows(cfg)
	if err != nil {
		return err
	}
	log.Debug().Int("rows", len(rows)).Str("department", department).Msg("extracted rows")

	members := assemble.Members(rows)
	ds := assemble.Dataset(members, department, rs, types.DefaultFacultyClasses())

	log.Info().
		Str("department", department).
		Int("members", len(members)).
		Int("faculty", ds.Summary.TotalFaculty).
		Int("teaching", ds.Summary.TeachingTrack).
		Int("tenure", ds.Summary.TenureTrack).
		Msg("parsed Gray Book section")

	if err := export.WriteJSON(cfg.OutputPath, ds); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Wrote %d faculty records to %s\n", len(ds.Faculty), cfg.OutputPath)

	if cfg.CSVPath != "" {
		if err := export.WriteCSV(cfg.CSVPath, ds); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote flat table to %s\n", cfg.CSVPath)
	}
	if xlsx, _ := cmd.Flags().GetString("xlsx"); xlsx != "" {
		if err := export.WriteXLSX(xlsx, ds); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote workbook to %s\n", xlsx)
	}
	if cfg.DBPath != "" {
		if err := indexDataset(cfg.DBPath, ds); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Indexed dataset into %s\n", cfg.DBPath)
	}

	return nil
}

func parseConfig(cmd *cobra.Command) types.ParseConfig {
	return types.ParseConfig{
		ClassifierConfig: types.ClassifierConfig{
			Ruleset:     stringSetting(cmd, "ruleset", "parse.ruleset"),
			RulesetFile: stringSetting(cmd, "ruleset-file", "parse.ruleset_file"),
		},
		InputPath:      stringSetting(cmd, "input", "parse.input_path"),
		Format:         types.SourceFormat(stringSetting(cmd, "format", "parse.format")),
		DepartmentCode: stringSetting(cmd, "department", "parse.department_code"),
		DepartmentName: stringSetting(cmd, "department-name", "parse.department_name"),
		OutputPath:     stringSetting(cmd, "output", "parse.output_path"),
		CSVPath:        stringSetting(cmd, "csv", "parse.csv_path"),
		DBPath:         stringSetting(cmd, "db", "parse.db_path"),
	}
}

func loadRuleset(cfg types.ClassifierConfig) (classify.Ruleset, error) {
	if cfg.RulesetFile != "" {
		return classify.LoadFile(cfg.RulesetFile)
	}
	return classify.ByName(cfg.Ruleset)
}

// extractRows runs the front-end matching the input format and returns the
// requested department's rows plus its display name.
func extractRows(cfg types.ParseConfig) ([]extract.Row, string, error) {
	switch resolveFormat(cfg) {
	case types.FormatDOCX:
		return extractDocxRows(cfg)
	default:
		return extractHTMLRows(cfg)
	}
}

func resolveFormat(cfg types.ParseConfig) types.SourceFormat {
	if cfg.Format != types.FormatAuto && cfg.Format != "" {
		return cfg.Format
	}
	if strings.HasSuffix(strings.ToLower(cfg.InputPath), ".docx") {
		return types.FormatDOCX
	}
	return types.FormatHTML
}

func extractHTMLRows(cfg types.ParseConfig) ([]extract.Row, string, error) {
	f, err := os.Open(cfg.InputPath)
	if err != nil {
		return nil, "", fmt.Errorf("opening %s: %w", cfg.InputPath, err)
	}
	defer f.Close()

	names, err := extract.DepartmentNames(f)
	if err != nil {
		return nil, "", fmt.Errorf("scanning department headings: %w", err)
	}
	log.Debug().Int("departments", len(names)).Msg("found department headings")

	section, display, err := findSection(names, cfg.DepartmentCode, cfg.DepartmentName)
	if err != nil {
		return nil, "", err
	}

	if _, err := f.Seek(0, 0); err != nil {
		return nil, "", fmt.Errorf("rewinding %s: %w", cfg.InputPath, err)
	}
	rows, err := extract.TableRows(f)
	if err != nil {
		return nil, "", fmt.Errorf("walking tables: %w", err)
	}

	var kept []extract.Row
	for _, row := range rows {
		if row.Section == section {
			kept = append(kept, row)
		}
	}
	return kept, display, nil
}

func extractDocxRows(cfg types.ParseConfig) ([]extract.Row, string, error) {
	text, err := extract.DocxText(cfg.InputPath)
	if err != nil {
		return nil, "", err
	}

	section, err := extract.SectionText(text, cfg.DepartmentCode, cfg.DepartmentName)
	if err != nil {
		return nil, "", err
	}

	display := cfg.DepartmentCode + " - " + cfg.DepartmentName
	return extract.FlatRows(section, cfg.DepartmentCode), display, nil
}

// findSection resolves a department code or name fragment against the
// heading map. Headings are scanned in sorted order so a fragment matching
// several departments resolves deterministically.
func findSection(names map[string]string, code, name string) (id, display string, err error) {
	ids := make([]string, 0, len(names))
	for sectionID := range names {
		ids = append(ids, sectionID)
	}
	sort.Strings(ids)

	for _, sectionID := range ids {
		heading := names[sectionID]
		if code != "" && strings.HasPrefix(heading, code+" - ") {
			return sectionID, heading, nil
		}
		if name != "" && strings.Contains(heading, name) {
			return sectionID, heading, nil
		}
	}
	return "", "", fmt.Errorf("%w: %q (%d departments scanned)", extract.ErrSectionNotFound, code+" - "+name, len(names))
}

func indexDataset(path string, ds types.Dataset) error {
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()
	return st.Ingest(context.Background(), ds)
}
