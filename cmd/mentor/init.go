package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Write a starter suppression file (mentor.toml)",
	Long: `Create a commented mentor.toml in the given directory (default: current
directory). Refuses to overwrite an existing file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

const starterConfig = `# mentor suppression configuration
#
# [stages] disables whole stages (or the no_errors fallback).
# [kinds.<stage>] disables individual issue-kinds within a stage.
# Absent keys mean "not suppressed". Run "mentor rules" for valid names.

[stages]
# analyzer = true
# no_errors = true

[kinds.analyzer]
# "Unread variables" = true
`

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	if st, err := os.Stat(target); err != nil {
		return err
	} else if !st.IsDir() {
		return fmt.Errorf("%s is not a directory", target)
	}

	path := filepath.Join(target, "mentor.toml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
	}
	return nil
}
