package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pressworks/wordpress-cli/api"
	"github.com/pressworks/wordpress-cli/internal/config"
	"github.com/pressworks/wordpress-cli/internal/view"
)

type uploadOptions struct {
	alt     string
	output  string
	noColor bool
}

// NewCmdUpload creates the media upload command.
func NewCmdUpload() *cobra.Command {
	opts := &uploadOptions{}

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a file to the media library",
		Long:  `Upload a file to the WordPress media library.`,
		Example: `  # Upload an image
  wpp media upload screenshot.png

  # Upload with alt text
  wpp media upload diagram.png --alt "Architecture diagram"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runUpload(args[0], opts, nil)
		},
	}

	cmd.Flags().StringVar(&opts.alt, "alt", "", "Alt text for the uploaded file")

	return cmd
}

func runUpload(path string, opts *uploadOptions, client *api.Client) error {
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

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	item, err := client.UploadMedia(context.Background(), filepath.Base(path), f, opts.alt)
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", path, err)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	if opts.output == "json" {
		return renderer.RenderJSON(item)
	}

	renderer.Success(fmt.Sprintf("Uploaded %s (ID: %d)", filepath.Base(path), item.ID))
	renderer.RenderKeyValue("URL", item.SourceURL)
	if item.AltText != "" {
		renderer.RenderKeyValue("Alt", item.AltText)
	}

	return nil
}
