package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gchallen/illinois-salary-parity/pkg/types"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the active classifier ruleset as YAML",
	Long: `Rules prints the classifier rule tables that parse would use, in
evaluation order. Rule order is significant (the first matching rule wins),
so inspecting the table is how to verify precedence. The output can be saved
and edited as a starting point for a --ruleset-file.`,
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().String("ruleset", "standard", "classifier ruleset: standard or legacy")
	rulesCmd.Flags().String("ruleset-file", "", "YAML file with hand-tuned classifier rules (overrides --ruleset)")

	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	rs, err := loadRuleset(types.ClassifierConfig{
		Ruleset:     stringSetting(cmd, "ruleset", "parse.ruleset"),
		RulesetFile: stringSetting(cmd, "ruleset-file", "parse.ruleset_file"),
	})
	if err != nil {
		return err
	}

	data, err := rs.Marshal()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
