package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/validgen/validgen/internal/adapters/outbound/tui"
)

func newVocabCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vocab",
		Short: "List the rule and modifier annotation vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderVocabulary())
			return nil
		},
	}
}
