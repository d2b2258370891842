package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexiusacademia/girderloads/internal/bridge"
	"github.com/alexiusacademia/girderloads/internal/project"
	"github.com/spf13/cobra"
)

var (
	initName            string
	initMode            string
	initSpans           string
	initGirders         int
	initStartCantilever float64
	initEndCantilever   float64
	initForce           bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new bridge project",
	Long: `Create a project file with a bridge and the default construction
timeline for the project mode.

Modes:
  girder  - precast girders, fixed five event timeline
  splice  - spliced girders, editable timeline

Examples:
  girderloads init --spans 30,36,30 --girders 5
  girderloads init -p viaduct.yaml --mode splice --spans 45,60,45 --start-cantilever 2.5`,
	Run: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initName, "name", "", "Bridge name")
	initCmd.Flags().StringVar(&initMode, "mode", "girder", "Project mode: girder or splice")
	initCmd.Flags().StringVar(&initSpans, "spans", "30,36,30", "Comma separated span lengths")
	initCmd.Flags().IntVar(&initGirders, "girders", 5, "Girders per span")
	initCmd.Flags().Float64Var(&initStartCantilever, "start-cantilever", 0, "Cantilever length at the start of the bridge")
	initCmd.Flags().Float64Var(&initEndCantilever, "end-cantilever", 0, "Cantilever length at the end of the bridge")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing project file")
}

func runInit(cmd *cobra.Command, args []string) {
	if _, err := os.Stat(projectPath); err == nil && !initForce {
		fail("%s already exists (use --force to overwrite)", projectPath)
		return
	}

	mode, err := project.ParseMode(initMode)
	if err != nil {
		fail("%v", err)
		return
	}

	b := &bridge.Bridge{
		Name:            initName,
		StartCantilever: initStartCantilever,
		EndCantilever:   initEndCantilever,
	}
	for _, field := range strings.Split(initSpans, ",") {
		length, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			fail("Invalid span length %q", field)
			return
		}
		b.Spans = append(b.Spans, bridge.Span{Length: length, Girders: initGirders})
	}
	if err := b.Validate(); err != nil {
		fail("%v", err)
		return
	}

	name := initName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(projectPath), filepath.Ext(projectPath))
	}
	doc := project.New(name, mode, b)

	st, err := openStore()
	if err != nil {
		fail("Error opening history: %v", err)
		return
	}
	if st != nil {
		defer st.Close()
	}
	if _, err := project.CreateSession(context.Background(), projectPath, doc, st); err != nil {
		fail("Error writing project: %v", err)
		return
	}

	success("Created %s project %s", mode, projectPath)
	fmt.Printf("    %d spans, %d girders per span, %d timeline events\n", b.SpanCount(), initGirders, doc.Timeline.Count())
	fmt.Println()
}
