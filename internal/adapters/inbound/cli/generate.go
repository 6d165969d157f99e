package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/validgen/validgen/internal/adapters/outbound/codegen"
	"github.com/validgen/validgen/internal/adapters/outbound/config"
	"github.com/validgen/validgen/internal/adapters/outbound/gitinfo"
	"github.com/validgen/validgen/internal/adapters/outbound/manifest"
	"github.com/validgen/validgen/internal/adapters/outbound/parser"
	"github.com/validgen/validgen/internal/adapters/outbound/scanner"
	"github.com/validgen/validgen/internal/adapters/outbound/tui"
	"github.com/validgen/validgen/internal/application"
	"github.com/validgen/validgen/internal/domain"
)

func newGenerateCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "generate [path]",
		Short: "Generate Validate and Modify methods for annotated structs",
		Long: "Analyze every Go file under the given path and write one generated file per\n" +
			"source file that declares validgen schemas.",
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

			svc := application.NewGenerateService(
				scanner.New(),
				parser.New(),
				config.New(),
				codegen.New(),
				gitinfo.New(),
				manifest.New(),
			)

			result, err := svc.Generate(absPath)
			if err != nil {
				return renderError(cmd, err)
			}

			if jsonOutput {
				return renderJSON(cmd, result)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderGenerateResult(result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")

	return cmd
}

// renderError pretty-prints analysis errors with their source span and
// passes everything else through.
func renderError(cmd *cobra.Command, err error) error {
	var analysisErr *domain.AnalysisError
	if errors.As(err, &analysisErr) {
		fmt.Fprint(cmd.ErrOrStderr(), tui.RenderAnalysisError(analysisErr))
	}
	return err
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
