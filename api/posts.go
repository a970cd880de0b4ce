package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// ListPostsOptions contains options for listing posts.
type ListPostsOptions struct {
	Page    int
	PerPage int
	Status  string // publish, draft, pending, private, future
	Search  string
	OrderBy string // date, title, slug, modified
	Order   string // asc, desc
}

// GetPostOptions contains options for getting a post.
type GetPostOptions struct {
	Context string // view (default), edit
}

// ListPosts returns a list of posts.
func (c *Client) ListPosts(ctx context.Context, opts *ListPostsOptions) ([]Post, error) {
	params := url.Values{}
	params.Set("per_page", "25")

	if opts != nil {
		if opts.PerPage > 0 {
			params.Set("per_page", strconv.Itoa(opts.PerPage))
		}
		if opts.Page > 0 {
			params.Set("page", strconv.Itoa(opts.Page))
		}
		if opts.Status != "" {
			params.Set("status", opts.Status)
		}
		if opts.Search != "" {
			params.Set("search", opts.Search)
		}
		if opts.OrderBy != "" {
			params.Set("orderby", opts.OrderBy)
		}
		if opts.Order != "" {
			params.Set("order", opts.Order)
		}
	}

	body, err := c.Get(ctx, "/posts?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var posts []Post
	if err := json.Unmarshal(body, &posts); err != nil {
		return nil, fmt.Errorf("failed to parse posts response: %w", err)
	}

	return posts, nil
}

// GetPost returns a single post by ID.
func (c *Client) GetPost(ctx context.Context, postID int, opts *GetPostOptions) (*Post, error) {
	params := url.Values{}
	if opts != nil && opts.Context != "" {
		params.Set("context", opts.Context)
	}

	path := fmt.Sprintf("/posts/%d", postID)
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	body, err := c.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	var post Post
	if err := json.Unmarshal(body, &post); err != nil {
		return nil, fmt.Errorf("failed to parse post response: %w", err)
	}

	return &post, nil
}

// CreatePost creates a new post.
func (c *Client) CreatePost(ctx context.Context, req *CreatePostRequest) (*Post, error) {
	body, err := c.Post(ctx, "/posts", req)
	if err != nil {
		return nil, err
	}

	var post Post
	if err := json.Unmarshal(body, &post); err != nil {
		return nil, fmt.Errorf("failed to parse create post response: %w", err)
	}

	return &post, nil
}

// UpdatePost updates an existing post.
func (c *Client) UpdatePost(ctx context.Context, postID int, req *UpdatePostRequest) (*Post, error) {
	body, err := c.Post(ctx, fmt.Sprintf("/posts/%d", postID), req)
	if err != nil {
		return nil, err
	}

	var post Post
	if err := json.Unmarshal(body, &post); err != nil {
		return nil, fmt.Errorf("failed to parse update post response: %w", err)
	}

	return &post, nil
}

// DeletePost deletes a post. Without force the post is moved to trash.
func (c *Client) DeletePost(ctx context.Context, postID int, force bool) error {
	path := fmt.Sprintf("/posts/%d", postID)
	if force {
		path += "?force=true"
	}
	_, err := c.Delete(ctx, path)
	return err
}
