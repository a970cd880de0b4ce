package media

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pressworks/wordpress-cli/api"
	"github.com/pressworks/wordpress-cli/internal/config"
	"github.com/pressworks/wordpress-cli/internal/view"
)

type listOptions struct {
	limit     int
	mediaType string
	search    string
	output    string
	noColor   bool
}

// NewCmdList creates the media list command.
func NewCmdList() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List media library items",
		Long:    `List items in the WordPress media library.`,
		Example: `  # List recent media
  wpp media list

  # List only images
  wpp media list --type image

  # Output as JSON
  wpp media list -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runList(opts, nil)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "l", 25, "Maximum number of items to return")
	cmd.Flags().StringVar(&opts.mediaType, "type", "", "Media type (image, video, audio, application)")
	cmd.Flags().StringVar(&opts.search, "search", "", "Search term")

	return cmd
}

func runList(opts *listOptions, client *api.Client) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	// Create API client if not provided (allows injection for testing)
	if client == nil {
		cfg, err := config.LoadWithEnv(config.DefaultConfigPath())
		if err != nil {
			return fmt.Errorf("failed to load config: %w (run 'wpp init' to configure)", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w (run 'wpp init' to configure)", err)
		}

		client = api.NewClient(cfg.SiteURL, cfg.Username, cfg.AppPassword)
	}

	apiOpts := &api.ListMediaOptions{
		PerPage:   opts.limit,
		MediaType: opts.mediaType,
		Search:    opts.search,
	}

	items, err := client.ListMedia(context.Background(), apiOpts)
	if err != nil {
		return fmt.Errorf("failed to list media: %w", err)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	if len(items) == 0 {
		renderer.RenderText("No media found.")
		return nil
	}

	headers := []string{"ID", "TITLE", "TYPE", "URL"}
	var rows [][]string

	for _, item := range items {
		rows = append(rows, []string{
			strconv.Itoa(item.ID),
			view.Truncate(item.Title.Rendered, 40),
			item.MimeType,
			view.Truncate(item.SourceURL, 60),
		})
	}

	renderer.RenderTable(headers, rows)

	return nil
}
