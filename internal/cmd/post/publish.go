package post

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pressworks/wordpress-cli/api"
	"github.com/pressworks/wordpress-cli/internal/config"
	"github.com/pressworks/wordpress-cli/internal/view"
	"github.com/pressworks/wordpress-cli/pkg/md"
)

type publishOptions struct {
	postID        int
	title         string
	status        string
	featuredImage string
	output        string
	noColor       bool
	defaultStatus string
}

// NewCmdPublish creates the post publish command.
func NewCmdPublish() *cobra.Command {
	opts := &publishOptions{}

	cmd := &cobra.Command{
		Use:   "publish <file.md>",
		Short: "Publish a markdown file as a post",
		Long: `Convert a markdown file to HTML and publish it as a WordPress post.

Front matter fields map to post fields: title, slug, status, excerpt,
categories, tags, featured_image. Categories and tags are created on
the site if they don't exist yet.

Local images referenced in the body are uploaded to the media library
and the references rewritten to the uploaded URLs.`,
		Example: `  # Publish a new post (status from front matter or config)
  wpp post publish my-article.md

  # Publish immediately regardless of front matter
  wpp post publish my-article.md --status publish

  # Update an existing post
  wpp post publish my-article.md --post-id 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runPublish(args[0], opts, nil)
		},
	}

	cmd.Flags().IntVar(&opts.postID, "post-id", 0, "Update this post instead of creating a new one")
	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Post title (overrides front matter)")
	cmd.Flags().StringVar(&opts.status, "status", "", "Post status: draft, publish, private (overrides front matter)")
	cmd.Flags().StringVar(&opts.featuredImage, "featured-image", "", "Path to a featured image (overrides front matter)")

	return cmd
}

func runPublish(path string, opts *publishOptions, client *api.Client) error {
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

		opts.defaultStatus = cfg.DefaultStatus
		client = api.NewClient(cfg.SiteURL, cfg.Username, cfg.AppPassword)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	meta, body := md.Extract(string(source))
	ctx := context.Background()

	// Resolve post fields: flags beat front matter beats defaults.
	title := opts.title
	if title == "" {
		title = meta.String("title")
	}
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	status := opts.status
	if status == "" {
		status = meta.String("status")
	}
	if status == "" {
		status = opts.defaultStatus
	}
	if status == "" {
		status = "draft"
	}

	// Upload local images and rewrite references before converting.
	body, err = uploadLocalImages(ctx, client, body, filepath.Dir(path))
	if err != nil {
		return err
	}

	// Resolve taxonomy terms, creating missing ones.
	var categories []int
	for _, name := range meta.List("categories") {
		id, err := client.EnsureCategory(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to resolve category %q: %w", name, err)
		}
		categories = append(categories, id)
	}

	var tags []int
	for _, name := range meta.List("tags") {
		id, err := client.EnsureTag(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to resolve tag %q: %w", name, err)
		}
		tags = append(tags, id)
	}

	// Featured image: flag beats front matter.
	featuredMedia := 0
	featured := opts.featuredImage
	if featured == "" {
		featured = meta.String("featured_image")
	}
	if featured != "" {
		full := featured
		if !filepath.IsAbs(full) {
			full = filepath.Join(filepath.Dir(path), full)
		}
		media, err := uploadImageFile(ctx, client, full, title)
		if err != nil {
			return fmt.Errorf("failed to upload featured image %s: %w", featured, err)
		}
		featuredMedia = media.ID
	}

	html := md.Convert(body)

	var result *api.Post
	if opts.postID > 0 {
		req := &api.UpdatePostRequest{
			Title:         title,
			Content:       html,
			Status:        status,
			Slug:          meta.String("slug"),
			Excerpt:       meta.String("excerpt"),
			Categories:    categories,
			Tags:          tags,
			FeaturedMedia: featuredMedia,
		}
		result, err = client.UpdatePost(ctx, opts.postID, req)
		if err != nil {
			return fmt.Errorf("failed to update post: %w", err)
		}
	} else {
		req := &api.CreatePostRequest{
			Title:         title,
			Content:       html,
			Status:        status,
			Slug:          meta.String("slug"),
			Excerpt:       meta.String("excerpt"),
			Categories:    categories,
			Tags:          tags,
			FeaturedMedia: featuredMedia,
		}
		result, err = client.CreatePost(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)

	if opts.output == "json" {
		return renderer.RenderJSON(result)
	}

	verb := "Published"
	if opts.postID > 0 {
		verb = "Updated"
	}
	renderer.Success(fmt.Sprintf("%s %q (ID: %d, status: %s)", verb, result.Title.Rendered, result.ID, result.Status))
	if result.Link != "" {
		renderer.RenderText(result.Link)
	}

	return nil
}
