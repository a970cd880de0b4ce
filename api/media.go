package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
)

// ListMediaOptions contains options for listing media items.
type ListMediaOptions struct {
	Page      int
	PerPage   int
	MediaType string // image, video, audio, application
	Search    string
}

// ListMedia returns items from the media library.
func (c *Client) ListMedia(ctx context.Context, opts *ListMediaOptions) ([]Media, error) {
	params := url.Values{}
	params.Set("per_page", "25")

	if opts != nil {
		if opts.PerPage > 0 {
			params.Set("per_page", strconv.Itoa(opts.PerPage))
		}
		if opts.Page > 0 {
			params.Set("page", strconv.Itoa(opts.Page))
		}
		if opts.MediaType != "" {
			params.Set("media_type", opts.MediaType)
		}
		if opts.Search != "" {
			params.Set("search", opts.Search)
		}
	}

	body, err := c.Get(ctx, "/media?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var items []Media
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to parse media response: %w", err)
	}

	return items, nil
}

// GetMedia returns a single media item by ID.
func (c *Client) GetMedia(ctx context.Context, mediaID int) (*Media, error) {
	body, err := c.Get(ctx, fmt.Sprintf("/media/%d", mediaID))
	if err != nil {
		return nil, err
	}

	var item Media
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("failed to parse media response: %w", err)
	}

	return &item, nil
}

// UploadMedia uploads a file to the media library. The alt text rides
// along in the same multipart form when provided.
func (c *Client) UploadMedia(ctx context.Context, filename string, content io.Reader, altText string) (*Media, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to copy file content: %w", err)
	}

	if altText != "" {
		if err := writer.WriteField("alt_text", altText); err != nil {
			return nil, fmt.Errorf("failed to write alt_text field: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+restBase+"/media", &buf)
	if err != nil {
		return nil, err
	}

	req.SetBasicAuth(c.username, c.appPassword)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err != nil {
			return nil, fmt.Errorf("upload failed (status %d): %s", resp.StatusCode, string(respBody))
		}
		errResp.StatusCode = resp.StatusCode
		return nil, &errResp
	}

	var item Media
	if err := json.Unmarshal(respBody, &item); err != nil {
		return nil, fmt.Errorf("failed to parse upload response: %w", err)
	}

	return &item, nil
}

// UpdateMedia updates media metadata such as the alt text.
func (c *Client) UpdateMedia(ctx context.Context, mediaID int, req *UpdateMediaRequest) (*Media, error) {
	body, err := c.Post(ctx, fmt.Sprintf("/media/%d", mediaID), req)
	if err != nil {
		return nil, err
	}

	var item Media
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("failed to parse update media response: %w", err)
	}

	return &item, nil
}

// DeleteMedia deletes a media item. Media cannot be trashed, so force
// is always set.
func (c *Client) DeleteMedia(ctx context.Context, mediaID int) error {
	_, err := c.Delete(ctx, fmt.Sprintf("/media/%d?force=true", mediaID))
	return err
}
