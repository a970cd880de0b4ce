package post

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pressworks/wordpress-cli/api"
	"github.com/pressworks/wordpress-cli/internal/config"
	"github.com/pressworks/wordpress-cli/internal/view"
)

type listOptions struct {
	limit   int
	status  string
	search  string
	output  string
	noColor bool
}

// NewCmdList creates the post list command.
func NewCmdList() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List posts",
		Long:    `List posts on the configured WordPress site.`,
		Example: `  # List recent posts
  wpp post list

  # List drafts
  wpp post list --status draft

  # Search posts
  wpp post list --search "kubernetes"

  # Output as JSON
  wpp post list -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runList(opts, nil)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "l", 25, "Maximum number of posts to return")
	cmd.Flags().StringVar(&opts.status, "status", "", "Post status (publish, draft, pending, private, future)")
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

	apiOpts := &api.ListPostsOptions{
		PerPage: opts.limit,
		Status:  opts.status,
		Search:  opts.search,
	}

	posts, err := client.ListPosts(context.Background(), apiOpts)
	if err != nil {
		return fmt.Errorf("failed to list posts: %w", err)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	if len(posts) == 0 {
		renderer.RenderText("No posts found.")
		return nil
	}

	headers := []string{"ID", "TITLE", "STATUS", "DATE"}
	var rows [][]string

	for _, p := range posts {
		date := p.Date
		if i := strings.IndexByte(date, 'T'); i > 0 {
			date = date[:i]
		}
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			view.Truncate(p.Title.Rendered, 60),
			p.Status,
			date,
		})
	}

	renderer.RenderTable(headers, rows)

	return nil
}
