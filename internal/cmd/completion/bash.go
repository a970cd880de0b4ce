package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdBash creates the bash completion command.
func NewCmdBash() *cobra.Command {
	return &cobra.Command{
		Use:   "bash",
		Short: "Generate bash completion script",
		Long: `Generate bash completion script for wpp.

To load completions in your current shell session:

  source <(wpp completion bash)

To load completions for every new session:

  # Linux
  wpp completion bash > /etc/bash_completion.d/wpp

  # macOS (requires bash-completion)
  wpp completion bash > $(brew --prefix)/etc/bash_completion.d/wpp`,
		Example: `  # Load in current session
  source <(wpp completion bash)

  # Install permanently (Linux)
  wpp completion bash | sudo tee /etc/bash_completion.d/wpp > /dev/null

  # Install permanently (macOS with Homebrew)
  wpp completion bash > $(brew --prefix)/etc/bash_completion.d/wpp`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	}
}
