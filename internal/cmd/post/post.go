// Package post provides post-related commands.
package post

import (
	"github.com/spf13/cobra"
)

// NewCmdPost creates the post command.
func NewCmdPost() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "post",
		Aliases: []string{"posts"},
		Short:   "Manage WordPress posts",
		Long:    `Commands for publishing, viewing, listing, and deleting WordPress posts.`,
	}

	cmd.AddCommand(NewCmdPublish())
	cmd.AddCommand(NewCmdList())
	cmd.AddCommand(NewCmdView())
	cmd.AddCommand(NewCmdDelete())

	return cmd
}
