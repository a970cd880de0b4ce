// Package convert provides the convert command for wpp.
package convert

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pressworks/wordpress-cli/internal/view"
	"github.com/pressworks/wordpress-cli/pkg/md"
)

type convertOptions struct {
	outFile string
	output  string
	noColor bool
	stdin   io.Reader // injectable for testing
	stdout  io.Writer
}

// NewCmdConvert creates the convert command.
func NewCmdConvert() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <file.md>",
		Short: "Convert a markdown file to WordPress HTML",
		Long: `Convert a markdown file to WordPress-ready HTML without publishing.

The front matter block, if present, is stripped from the output. Use
-o json to get both the HTML and the parsed front matter fields.

Use "-" as the file name to read from standard input.`,
		Example: `  # Print converted HTML
  wpp convert my-article.md

  # Write to a file
  wpp convert my-article.md --out my-article.html

  # HTML plus front matter as JSON
  wpp convert my-article.md -o json

  # Convert from stdin
  cat my-article.md | wpp convert -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.stdin = os.Stdin
			opts.stdout = os.Stdout
			return runConvert(args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.outFile, "out", "", "Write HTML to a file instead of stdout")

	return cmd
}

func runConvert(path string, opts *convertOptions) error {
	var (
		source []byte
		err    error
	)

	if path == "-" {
		source, err = io.ReadAll(opts.stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	} else {
		source, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
	}

	html, meta := md.Render(string(source))

	if opts.outFile != "" {
		if err := os.WriteFile(opts.outFile, []byte(html), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
		renderer.Success(fmt.Sprintf("Wrote %s", opts.outFile))
		return nil
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	renderer.SetWriter(opts.stdout)

	if opts.output == "json" {
		return renderer.RenderJSON(map[string]interface{}{
			"html":     html,
			"metadata": meta,
		})
	}

	renderer.RenderText(html)
	return nil
}
