package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdFish creates the fish completion command.
func NewCmdFish() *cobra.Command {
	return &cobra.Command{
		Use:   "fish",
		Short: "Generate fish completion script",
		Long: `Generate fish completion script for wpp.

To load completions in your current shell session:

  wpp completion fish | source

To load completions for every new session:

  wpp completion fish > ~/.config/fish/completions/wpp.fish`,
		Example: `  # Load in current session
  wpp completion fish | source

  # Install permanently
  wpp completion fish > ~/.config/fish/completions/wpp.fish`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	}
}
