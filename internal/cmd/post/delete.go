package post

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pressworks/wordpress-cli/api"
	"github.com/pressworks/wordpress-cli/internal/config"
	"github.com/pressworks/wordpress-cli/internal/view"
)

type deleteOptions struct {
	force   bool
	skip    bool
	output  string
	noColor bool
	stdin   io.Reader // injectable for testing
}

// NewCmdDelete creates the post delete command.
func NewCmdDelete() *cobra.Command {
	opts := &deleteOptions{}

	cmd := &cobra.Command{
		Use:   "delete <post-id>",
		Short: "Delete a post",
		Long: `Delete a post by its ID.

By default the post is moved to the trash. Use --force to delete it
permanently.`,
		Example: `  # Move a post to the trash
  wpp post delete 42

  # Delete permanently
  wpp post delete 42 --force

  # Skip the confirmation prompt
  wpp post delete 42 --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.stdin = os.Stdin // default to os.Stdin, can be overridden in tests
			return runDelete(args[0], opts, nil)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Delete permanently instead of trashing")
	cmd.Flags().BoolVarP(&opts.skip, "yes", "y", false, "Skip confirmation prompt")

	return cmd
}

func runDelete(arg string, opts *deleteOptions, client *api.Client) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	postID, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid post ID %q", arg)
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

	// Get post info first to show what we're deleting
	post, err := client.GetPost(context.Background(), postID, nil)
	if err != nil {
		return fmt.Errorf("failed to get post: %w", err)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	// Confirm deletion unless --yes is used
	if !opts.skip {
		action := "trash"
		if opts.force {
			action = "permanently delete"
		}
		fmt.Printf("About to %s post: %s (ID: %d)\n", action, post.Title.Rendered, post.ID)
		fmt.Print("Are you sure? [y/N]: ")

		scanner := bufio.NewScanner(opts.stdin)
		var confirm string
		if scanner.Scan() {
			confirm = scanner.Text()
		}

		if confirm != "y" && confirm != "Y" {
			fmt.Println("Deletion cancelled.")
			return nil
		}
	}

	if err := client.DeletePost(context.Background(), postID, opts.force); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if opts.output == "json" {
		return renderer.RenderJSON(map[string]string{
			"status":  "deleted",
			"post_id": strconv.Itoa(postID),
			"title":   post.Title.Rendered,
		})
	}

	verb := "Trashed"
	if opts.force {
		verb = "Deleted"
	}
	renderer.Success(fmt.Sprintf("%s post: %s (ID: %d)", verb, post.Title.Rendered, postID))

	return nil
}
