// Copyright Geoffrey Challen, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gchallen/illinois-salary-parity/internal/export"
	"github.com/gchallen/illinois-salary-parity/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render an extracted dataset as CSV, XLSX, or YAML",
	Long: `Export reads the intermediate JSON dataset written by parse and renders
it in another format: a flat one-row-per-person CSV or XLSX table, or a YAML
dump of the full dataset including every position.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("input", "cs_faculty_salaries.json", "intermediate JSON dataset from parse")
	exportCmd.Flags().String("format", "csv", "output format: csv, xlsx, or yaml")
	exportCmd.Flags().String("output", "", "output file (default: input path with the format's extension)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := exportConfig(cmd)

	ds, err := export.LoadDataset(cfg.InputPath)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case "csv":
		err = export.WriteCSV(cfg.OutputPath, ds)
	case "xlsx":
		err = export.WriteXLSX(cfg.OutputPath, ds)
	case "yaml":
		err = export.WriteYAML(cfg.OutputPath, ds)
	default:
		return fmt.Errorf("unsupported format %q: use csv, xlsx, or yaml", cfg.Format)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Exported %d records to %s\n", len(ds.Faculty), cfg.OutputPath)
	return nil
}

func exportConfig(cmd *cobra.Command) types.ExportConfig {
	cfg := types.ExportConfig{
		InputPath:  stringSetting(cmd, "input", "export.input_path"),
		Format:     stringSetting(cmd, "format", "export.format"),
		OutputPath: stringSetting(cmd, "output", "export.output_path"),
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = trimExt(cfg.InputPath) + "." + cfg.Format
	}
	return cfg
}

func trimExt(path string) string {
	for i := len(path) - 1; i >= 0 && path[i] != '/'; i-- {
		if path[i] == '.' {
			return path[:i]
		}
	}
	return path
}
