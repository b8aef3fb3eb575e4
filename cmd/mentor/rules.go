package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mentor/internal/classify"
	"mentor/internal/report"
	"mentor/internal/suppress"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the analyzer issue precedence and valid suppression keys",
	Long: `Print the canonical classifier order (first non-suppressed kind with a
finding wins) together with the stage names a suppression file may use.`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func runRules(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	head := color.New(color.Bold)
	if !useColor(cmd) {
		head.DisableColor()
	}

	fmt.Fprintln(out, head.Sprint("Stages (whole-stage suppression keys):"))
	for _, s := range report.Stages() {
		fmt.Fprintf(out, "  %s\n", s)
	}
	fmt.Fprintf(out, "  %s (generic \"ran without error\" fallback)\n\n", suppress.PseudoStageNoErrors)

	fmt.Fprintln(out, head.Sprint("Analyzer issue-kinds, in precedence order:"))
	for i, r := range classify.Table() {
		fmt.Fprintf(out, "  %2d. %-40q %s\n", i+1, r.Kind, r.Label)
	}
	return nil
}
