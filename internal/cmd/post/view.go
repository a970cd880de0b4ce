package post

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pressworks/wordpress-cli/api"
	"github.com/pressworks/wordpress-cli/internal/config"
	"github.com/pressworks/wordpress-cli/internal/view"
	"github.com/pressworks/wordpress-cli/pkg/md"
)

type viewOptions struct {
	raw     bool
	web     bool
	output  string
	noColor bool
}

// NewCmdView creates the post view command.
func NewCmdView() *cobra.Command {
	opts := &viewOptions{}

	cmd := &cobra.Command{
		Use:   "view <post-id>",
		Short: "View a post",
		Long:  `View a post's content, converted back to markdown.`,
		Example: `  # View a post as markdown
  wpp post view 42

  # View the rendered HTML
  wpp post view 42 --raw

  # Open in browser
  wpp post view 42 --web`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runView(args[0], opts, nil)
		},
	}

	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Show the rendered HTML instead of markdown")
	cmd.Flags().BoolVarP(&opts.web, "web", "w", false, "Open in browser instead of displaying")

	return cmd
}

func runView(arg string, opts *viewOptions, client *api.Client) error {
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

	post, err := client.GetPost(context.Background(), postID, nil)
	if err != nil {
		return fmt.Errorf("failed to get post: %w", err)
	}

	// Open in browser if requested
	if opts.web {
		if post.Link == "" {
			return fmt.Errorf("post %d has no link", postID)
		}
		return openBrowser(post.Link)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	if opts.output == "json" {
		return renderer.RenderJSON(post)
	}

	// Show post info
	renderer.RenderKeyValue("Title", post.Title.Rendered)
	renderer.RenderKeyValue("ID", strconv.Itoa(post.ID))
	renderer.RenderKeyValue("Status", post.Status)
	if post.Link != "" {
		renderer.RenderKeyValue("Link", post.Link)
	}
	fmt.Println()

	// Show content
	content := post.Content.Rendered
	if content == "" {
		fmt.Println("(No content)")
		return nil
	}

	if opts.raw {
		fmt.Println(content)
		return nil
	}

	markdown, err := md.FromHTML(content)
	if err != nil {
		// Fall back to raw content if conversion fails
		fmt.Println("(Failed to convert to markdown, showing raw HTML)")
		fmt.Println()
		fmt.Println(content)
		return nil
	}
	fmt.Println(markdown)

	return nil
}

func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform")
	}

	return cmd.Start()
}
