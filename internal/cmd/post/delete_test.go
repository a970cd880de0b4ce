package post

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressworks/wordpress-cli/api"
)

func mockDeleteServer(t *testing.T) (*httptest.Server, *bool, *string) {
	deleted := false
	forceParam := ""
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == "GET" && r.URL.Path == "/wp-json/wp/v2/posts/42":
			w.Write([]byte(`{"id": 42, "status": "draft", "title": {"rendered": "Doomed Post"}}`))
		case r.Method == "DELETE" && r.URL.Path == "/wp-json/wp/v2/posts/42":
			deleted = true
			forceParam = r.URL.Query().Get("force")
			w.Write([]byte(`{"id": 42, "status": "trash", "title": {"rendered": "Doomed Post"}}`))
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	return server, &deleted, &forceParam
}

func TestRunDelete_Confirmed(t *testing.T) {
	server, deleted, _ := mockDeleteServer(t)
	defer server.Close()

	client := api.NewClient(server.URL, "testuser", "test-password")
	opts := &deleteOptions{noColor: true, stdin: strings.NewReader("y\n")}

	err := runDelete("42", opts, client)
	require.NoError(t, err)
	assert.True(t, *deleted)
}

func TestRunDelete_Cancelled(t *testing.T) {
	server, deleted, _ := mockDeleteServer(t)
	defer server.Close()

	client := api.NewClient(server.URL, "testuser", "test-password")
	opts := &deleteOptions{noColor: true, stdin: strings.NewReader("n\n")}

	err := runDelete("42", opts, client)
	require.NoError(t, err)
	assert.False(t, *deleted, "post should not be deleted when cancelled")
}

func TestRunDelete_SkipConfirmation(t *testing.T) {
	server, deleted, forceParam := mockDeleteServer(t)
	defer server.Close()

	client := api.NewClient(server.URL, "testuser", "test-password")
	opts := &deleteOptions{skip: true, noColor: true}

	err := runDelete("42", opts, client)
	require.NoError(t, err)
	assert.True(t, *deleted)
	assert.Equal(t, "", *forceParam, "force should not be set for trash")
}

func TestRunDelete_Force(t *testing.T) {
	server, deleted, forceParam := mockDeleteServer(t)
	defer server.Close()

	client := api.NewClient(server.URL, "testuser", "test-password")
	opts := &deleteOptions{force: true, skip: true, noColor: true}

	err := runDelete("42", opts, client)
	require.NoError(t, err)
	assert.True(t, *deleted)
	assert.Equal(t, "true", *forceParam)
}

func TestRunDelete_InvalidID(t *testing.T) {
	opts := &deleteOptions{noColor: true}

	err := runDelete("abc", opts, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid post ID")
}
