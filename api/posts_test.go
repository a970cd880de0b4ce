package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPosts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/posts", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		assert.Equal(t, "draft", r.URL.Query().Get("status"))
		assert.Equal(t, "hello", r.URL.Query().Get("search"))

		w.Write([]byte(`[
			{"id":1,"slug":"first","status":"draft","title":{"rendered":"First"}},
			{"id":2,"slug":"second","status":"draft","title":{"rendered":"Second"}}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "admin", "secret")
	posts, err := client.ListPosts(context.Background(), &ListPostsOptions{
		PerPage: 10,
		Status:  "draft",
		Search:  "hello",
	})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "First", posts[0].Title.Rendered)
	assert.Equal(t, "second", posts[1].Slug)
}

func TestListPosts_DefaultLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "25", r.URL.Query().Get("per_page"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "admin", "secret")
	posts, err := client.ListPosts(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestGetPost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/posts/42", r.URL.Path)
		assert.Equal(t, "edit", r.URL.Query().Get("context"))

		w.Write([]byte(`{
			"id": 42,
			"slug": "hello-world",
			"status": "publish",
			"title": {"rendered": "Hello World", "raw": "Hello World"},
			"content": {"rendered": "<p>Hi</p>", "raw": "Hi"},
			"categories": [3, 7]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "admin", "secret")
	post, err := client.GetPost(context.Background(), 42, &GetPostOptions{Context: "edit"})
	require.NoError(t, err)
	assert.Equal(t, 42, post.ID)
	assert.Equal(t, "Hello World", post.Title.Rendered)
	assert.Equal(t, "<p>Hi</p>", post.Content.Rendered)
	assert.Equal(t, []int{3, 7}, post.Categories)
}

func TestCreatePost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/posts", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		body, _ := io.ReadAll(r.Body)
		var req map[string]any
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "My Post", req["title"])
		assert.Equal(t, "draft", req["status"])
		assert.Equal(t, "<p>content</p>", req["content"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":99,"status":"draft","link":"https://example.com/?p=99","title":{"rendered":"My Post"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "admin", "secret")
	post, err := client.CreatePost(context.Background(), &CreatePostRequest{
		Title:   "My Post",
		Content: "<p>content</p>",
		Status:  "draft",
	})
	require.NoError(t, err)
	assert.Equal(t, 99, post.ID)
	assert.Equal(t, "https://example.com/?p=99", post.Link)
}

func TestUpdatePost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/posts/7", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"id":7,"status":"publish","title":{"rendered":"Updated"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "admin", "secret")
	post, err := client.UpdatePost(context.Background(), 7, &UpdatePostRequest{Status: "publish"})
	require.NoError(t, err)
	assert.Equal(t, "publish", post.Status)
}

func TestDeletePost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/posts/7", r.URL.Path)
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "true", r.URL.Query().Get("force"))
		w.Write([]byte(`{"deleted":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "admin", "secret")
	err := client.DeletePost(context.Background(), 7, true)
	require.NoError(t, err)
}
