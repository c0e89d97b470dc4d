// Copyright Geoffrey Challen, 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gchallen/illinois-salary-parity/internal/fetch"
	"github.com/gchallen/illinois-salary-parity/pkg/types"
)

const (
	defaultFetchTimeout = 60 * time.Second
	fetchUserAgent      = "graybook/0.1"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download a published Gray Book document",
	Long: `Fetch downloads a Gray Book rendering from the Board of Trustees site to
a local file for the parse stage. An existing file is kept unless --force is
given, so repeated pipeline runs do not hammer the university's servers.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("url", "", "Gray Book document URL (.html or .docx)")
	fetchCmd.Flags().String("output", "uiuc-graybook.html", "local file to save the document to")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	fetchCmd.Flags().Int("retries", 0, "max retries on rate limiting (default 5)")
	fetchCmd.Flags().Bool("force", false, "re-download even if the output file exists")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := fetchConfig(cmd)
	if cfg.URL == "" {
		return fmt.Errorf("provide the Gray Book document URL via --url or the fetch.url config key")
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultFetchTimeout
	}
	force, _ := cmd.Flags().GetBool("force")

	client := &http.Client{Timeout: timeout}
	opts := fetch.Options{
		UserAgent:  fetchUserAgent,
		MaxRetries: intSetting(cmd, "retries", "fetch.retries"),
		Force:      force,
	}
	return fetch.Document(cmd.Context(), client, cfg.URL, cfg.OutputPath, opts, os.Stdout)
}

func fetchConfig(cmd *cobra.Command) types.FetchConfig {
	return types.FetchConfig{
		URL:        stringSetting(cmd, "url", "fetch.url"),
		OutputPath: stringSetting(cmd, "output", "fetch.output_path"),
	}
}
