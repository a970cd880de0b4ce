package post

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pressworks/wordpress-cli/api"
)

// imageRefRe matches markdown image references: ![alt](target)
var imageRefRe = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]+)\)`)

// imageRef is a local image reference found in a markdown body.
type imageRef struct {
	alt  string
	path string
}

// findLocalImages returns image references whose target is a local
// path rather than a URL. Each path appears once, keeping the alt text
// of its first occurrence.
func findLocalImages(body string) []imageRef {
	var refs []imageRef
	seen := make(map[string]bool)

	for _, m := range imageRefRe.FindAllStringSubmatch(body, -1) {
		alt, target := m[1], m[2]
		if isRemote(target) || seen[target] {
			continue
		}
		seen[target] = true
		refs = append(refs, imageRef{alt: alt, path: target})
	}

	return refs
}

func isRemote(target string) bool {
	return strings.HasPrefix(target, "http://") ||
		strings.HasPrefix(target, "https://") ||
		strings.HasPrefix(target, "//")
}

// uploadLocalImages uploads every local image referenced in body to the
// media library and rewrites each reference to the returned source URL.
// Paths are resolved relative to baseDir.
func uploadLocalImages(ctx context.Context, client *api.Client, body, baseDir string) (string, error) {
	for _, ref := range findLocalImages(body) {
		full := ref.path
		if !filepath.IsAbs(full) {
			full = filepath.Join(baseDir, full)
		}

		media, err := uploadImageFile(ctx, client, full, ref.alt)
		if err != nil {
			return "", fmt.Errorf("failed to upload image %s: %w", ref.path, err)
		}

		body = strings.ReplaceAll(body, "]("+ref.path+")", "]("+media.SourceURL+")")
	}

	return body, nil
}

func uploadImageFile(ctx context.Context, client *api.Client, path, alt string) (*api.Media, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return client.UploadMedia(ctx, filepath.Base(path), f, alt)
}
