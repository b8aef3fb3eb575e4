package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"mentor/internal/arbiter"
	"mentor/internal/eventlog"
	"mentor/internal/feedback"
	"mentor/internal/render"
	"mentor/internal/report"
	"mentor/internal/session"
	"mentor/internal/suppress"
)

var arbitrateCmd = &cobra.Command{
	Use:   "arbitrate [flags] <bundle.json|directory>",
	Short: "Select one feedback directive from stage reports",
	Long: `Run the arbitration cascade over a report bundle and print the single
directive it selects. The argument is either one combined bundle JSON file or
a directory with per-stage files (verifier.json, parser.json, instructor.json,
analyzer.json, student.json); missing stage files count as clean.`,
	Args: cobra.ExactArgs(1),
	RunE: runArbitrate,
}

func init() {
	arbitrateCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	arbitrateCmd.Flags().String("suppress", "", "path to a suppression TOML file")
	arbitrateCmd.Flags().String("log", "", "append a structured log entry to this file (- for stderr)")
	arbitrateCmd.Flags().Bool("cache", false, "remember the result and report whether it changed since the last identical check")
	arbitrateCmd.Flags().Bool("editor-line", false, "include the 0-based editor line in output")
	arbitrateCmd.Flags().Bool("exit-status", false, "exit non-zero when the directive reports a problem")
}

func runArbitrate(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "short":
		// supported
	default:
		return fmt.Errorf("unknown format %q (must be pretty, json or short)", format)
	}

	suppressPath, err := cmd.Flags().GetString("suppress")
	if err != nil {
		return fmt.Errorf("failed to get suppress flag: %w", err)
	}
	logPath, err := cmd.Flags().GetString("log")
	if err != nil {
		return fmt.Errorf("failed to get log flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	editorLine, err := cmd.Flags().GetBool("editor-line")
	if err != nil {
		return fmt.Errorf("failed to get editor-line flag: %w", err)
	}
	exitStatus, err := cmd.Flags().GetBool("exit-status")
	if err != nil {
		return fmt.Errorf("failed to get exit-status flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	bundle, err := loadBundle(cmd, path)
	if err != nil {
		return err
	}

	cfg := suppress.New()
	if suppressPath != "" {
		cfg, err = suppress.Load(suppressPath)
		if err != nil {
			return err
		}
	}

	d := arbiter.Arbitrate(bundle, cfg)

	changed := true
	if useCache {
		changed, err = rememberResult(bundle, cfg, d)
		if err != nil {
			return err
		}
	}

	if logPath != "" && changed {
		if err := emitLogEntry(logPath, d); err != nil {
			return err
		}
	}

	switch format {
	case "json":
		err = render.JSON(cmd.OutOrStdout(), d, render.JSONOpts{Indent: true, IncludeEditorLine: editorLine})
	case "short":
		fmt.Fprintln(cmd.OutOrStdout(), render.Golden(d))
	default:
		render.Pretty(cmd.OutOrStdout(), d, render.PrettyOpts{
			Color:          useColor(cmd),
			ShowOutcome:    !quiet,
			ShowEditorLine: editorLine,
		})
	}
	if err != nil {
		return err
	}

	if useCache && !changed && !quiet {
		fmt.Fprintln(cmd.ErrOrStderr(), "result unchanged since last check")
	}

	if exitStatus && d.Category.IsError() {
		os.Exit(1)
	}
	return nil
}

func loadBundle(cmd *cobra.Command, path string) (*report.Bundle, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if st.IsDir() {
		return report.LoadBundleDir(cmd.Context(), path)
	}
	return report.LoadBundleFile(path)
}

// rememberResult stores the directive in the session cache and reports
// whether it differs from the previous run with identical inputs.
func rememberResult(bundle *report.Bundle, cfg *suppress.Config, d feedback.Directive) (changed bool, err error) {
	cache, err := session.Open("mentor")
	if err != nil {
		return true, err
	}
	key, err := session.BundleDigest(bundle, cfg)
	if err != nil {
		return true, err
	}
	prev, hit, err := cache.Get(key)
	if err != nil {
		return true, err
	}
	if hit && prev.Same(d) {
		return false, nil
	}
	return true, cache.Put(key, session.NewSnapshot(d, time.Now()))
}

func emitLogEntry(path string, d feedback.Directive) error {
	out := os.Stderr
	if path != "-" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return eventlog.NewWriter(out).Emit(eventlog.FromDirective(d, time.Now()))
}
