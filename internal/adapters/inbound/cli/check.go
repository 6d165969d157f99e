package cli

import (
	"fmt"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/validgen/validgen/internal/adapters/outbound/config"
	"github.com/validgen/validgen/internal/adapters/outbound/manifest"
	"github.com/validgen/validgen/internal/adapters/outbound/parser"
	"github.com/validgen/validgen/internal/adapters/outbound/scanner"
	"github.com/validgen/validgen/internal/adapters/outbound/tui"
	"github.com/validgen/validgen/internal/application"
)

func newCheckCmd() *cobra.Command {
	var (
		jsonOutput bool
		dump       bool
		ciMode     bool
	)

	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Analyze annotated structs without generating anything",
		Long: "Run the full analysis pipeline over the given path and report the resolved\n" +
			"schemas, plus any generated files that are stale or orphaned.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewAnalyzeService(
				scanner.New(),
				parser.New(),
				config.New(),
				manifest.New(),
			)

			report, err := svc.Analyze(absPath)
			if err != nil {
				return renderError(cmd, err)
			}

			switch {
			case dump:
				spew.Fdump(cmd.OutOrStdout(), report)
			case jsonOutput:
				return renderJSON(cmd, report)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if ciMode && (len(report.Stale) > 0 || len(report.Orphans) > 0) {
				return fmt.Errorf("%d stale and %d orphaned generated files, rerun validgen generate",
					len(report.Stale), len(report.Orphans))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&dump, "dump", false, "Dump raw descriptors for debugging")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if generated files are stale")

	return cmd
}
