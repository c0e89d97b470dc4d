// Copyright Geoffrey Challen, 2026. All rights reserved.

package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gchallen/illinois-salary-parity/internal/export"
	"github.com/gchallen/illinois-salary-parity/internal/parity"
	"github.com/gchallen/illinois-salary-parity/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Render the salary parity report from an extracted dataset",
	Long: `Analyze reads the intermediate JSON dataset written by parse and renders
the teaching-versus-tenure-track salary parity report on stdout.

Only full-time members whose faculty positions all sit on a single track are
compared; members with split appointments are logged and excluded because
their salary cannot be attributed to one track. Statistics use each member's
primary-position salary so administrative stipends in secondary positions do
not skew the comparison.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("input", "cs_faculty_salaries.json", "intermediate JSON dataset from parse")
	analyzeCmd.Flags().String("classes", strings.Join(types.DefaultFacultyClasses(), ","), "comma-separated employment classes counted as faculty")
	analyzeCmd.Flags().Int("top", 30, "length of the tenure-track listing")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := analyzeConfig(cmd)

	ds, err := export.LoadDataset(cfg.InputPath)
	if err != nil {
		return err
	}

	analysis := parity.Analyze(ds, parity.Options{
		FacultyClasses: cfg.FacultyClasses,
		TopTenure:      cfg.TopTenure,
	})
	parity.WriteReport(os.Stdout, ds.Department, analysis, cfg.TopTenure)
	return nil
}

func analyzeConfig(cmd *cobra.Command) types.AnalyzeConfig {
	classes := stringSetting(cmd, "classes", "analyze.faculty_classes")

	var list []string
	for _, c := range strings.Split(classes, ",") {
		if v := strings.TrimSpace(c); v != "" {
			list = append(list, v)
		}
	}
	if len(list) == 0 {
		list = types.DefaultFacultyClasses()
	}

	return types.AnalyzeConfig{
		InputPath:      stringSetting(cmd, "input", "analyze.input_path"),
		FacultyClasses: list,
		TopTenure:      intSetting(cmd, "top", "analyze.top_tenure"),
	}
}
