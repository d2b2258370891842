package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alexiusacademia/girderloads/internal/version"
	"github.com/spf13/cobra"
)

var (
	projectPath string
	historyDir  string
	logLevel    string

	// exitCode is set by commands that report an error and return.
	exitCode int
)

var rootCmd = &cobra.Command{
	Use:   "girderloads",
	Short: "User defined loads for girder bridge projects",
	Long: `girderloads - User Defined Loads for Girder Bridges

A CLI tool for keeping the user defined loads of a girder bridge
consistent with its construction timeline.

This tool helps bridge engineers:
  - Place point, distributed and moment loads on spans and girders
  - Keep loads on valid timeline events (LL+IM only at the live load event)
  - Edit the construction timeline of spliced girder projects
  - Undo and redo edits across command invocations
  - Review load status and LRFD factored totals

Loads are stored in a YAML project file (see --project).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(logLevel)
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   girderloads v%-43s║\n", version.Version)
		fmt.Println("  ║   User Defined Loads for Girder Bridges                   ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Point, distributed and moment loads by span and girder")
		fmt.Println("    • DC, DW and LL+IM load cases checked against the timeline")
		fmt.Println("    • Precast girder and spliced girder project timelines")
		fmt.Println("    • Undo, redo and repeat that survive between runs")
		fmt.Println("    • LRFD factored load totals and girder line diagrams")
		fmt.Println()
		fmt.Println("  Use 'girderloads init' to start a project, 'girderloads --help' for commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&projectPath, "project", "p", "girderloads.yaml", "Project file")
	rootCmd.PersistentFlags().StringVar(&historyDir, "history", "", "Undo history directory (default $XDG_STATE_HOME/girderloads/history, \"off\" to disable)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
}

func setupLogging(level string) error {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", level)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
	return nil
}
