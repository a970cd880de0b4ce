// Package media provides media library commands.
package media

import (
	"github.com/spf13/cobra"
)

// NewCmdMedia creates the media command.
func NewCmdMedia() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Manage the media library",
		Long:  `Commands for uploading to and listing the WordPress media library.`,
	}

	cmd.AddCommand(NewCmdUpload())
	cmd.AddCommand(NewCmdList())

	return cmd
}
