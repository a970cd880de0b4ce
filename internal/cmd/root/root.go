// Package root provides the root command for the wpp CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/pressworks/wordpress-cli/internal/cmd/completion"
	"github.com/pressworks/wordpress-cli/internal/cmd/configcmd"
	"github.com/pressworks/wordpress-cli/internal/cmd/convert"
	initcmd "github.com/pressworks/wordpress-cli/internal/cmd/init"
	"github.com/pressworks/wordpress-cli/internal/cmd/media"
	"github.com/pressworks/wordpress-cli/internal/cmd/post"
	"github.com/pressworks/wordpress-cli/internal/version"
)

// NewCmdRoot creates the root command for wpp.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wpp",
		Short: "A command-line interface for WordPress publishing",
		Long: `wpp is a CLI tool for publishing markdown to WordPress.

It converts markdown files to WordPress-ready HTML and manages posts
and media through the REST API, with front matter driving post metadata.

Get started by running: wpp init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/wpp/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Set version template
	cmd.SetVersionTemplate("wpp version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(convert.NewCmdConvert())
	cmd.AddCommand(post.NewCmdPost())
	cmd.AddCommand(media.NewCmdMedia())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
