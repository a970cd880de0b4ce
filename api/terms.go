package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// ListCategories returns categories matching the search string (all
// categories when search is empty).
func (c *Client) ListCategories(ctx context.Context, search string) ([]Term, error) {
	return c.listTerms(ctx, "categories", search)
}

// ListTags returns tags matching the search string.
func (c *Client) ListTags(ctx context.Context, search string) ([]Term, error) {
	return c.listTerms(ctx, "tags", search)
}

// CreateCategory creates a new category.
func (c *Client) CreateCategory(ctx context.Context, name string) (*Term, error) {
	return c.createTerm(ctx, "categories", name)
}

// CreateTag creates a new tag.
func (c *Client) CreateTag(ctx context.Context, name string) (*Term, error) {
	return c.createTerm(ctx, "tags", name)
}

// EnsureCategory returns the ID of the named category, creating it when
// it does not exist yet.
func (c *Client) EnsureCategory(ctx context.Context, name string) (int, error) {
	return c.ensureTerm(ctx, "categories", name)
}

// EnsureTag returns the ID of the named tag, creating it when it does
// not exist yet.
func (c *Client) EnsureTag(ctx context.Context, name string) (int, error) {
	return c.ensureTerm(ctx, "tags", name)
}

func (c *Client) listTerms(ctx context.Context, taxonomy, search string) ([]Term, error) {
	params := url.Values{}
	params.Set("per_page", "100")
	if search != "" {
		params.Set("search", search)
	}

	body, err := c.Get(ctx, "/"+taxonomy+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var terms []Term
	if err := json.Unmarshal(body, &terms); err != nil {
		return nil, fmt.Errorf("failed to parse %s response: %w", taxonomy, err)
	}

	return terms, nil
}

func (c *Client) createTerm(ctx context.Context, taxonomy, name string) (*Term, error) {
	body, err := c.Post(ctx, "/"+taxonomy, &CreateTermRequest{Name: name})
	if err != nil {
		return nil, err
	}

	var term Term
	if err := json.Unmarshal(body, &term); err != nil {
		return nil, fmt.Errorf("failed to parse create %s response: %w", taxonomy, err)
	}

	return &term, nil
}

// ensureTerm looks a term up by name and creates it on a miss. The
// search endpoint matches substrings, so candidates are compared
// case-insensitively against the exact name.
func (c *Client) ensureTerm(ctx context.Context, taxonomy, name string) (int, error) {
	terms, err := c.listTerms(ctx, taxonomy, name)
	if err != nil {
		return 0, err
	}
	for _, term := range terms {
		if strings.EqualFold(term.Name, name) {
			return term.ID, nil
		}
	}

	term, err := c.createTerm(ctx, taxonomy, name)
	if err != nil {
		return 0, err
	}
	return term.ID, nil
}
