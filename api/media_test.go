package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadMedia(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/media", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "pic.png", header.Filename)
		assert.Equal(t, "a diagram", r.FormValue("alt_text"))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":55,"source_url":"https://example.com/wp-content/uploads/pic.png","alt_text":"a diagram"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "admin", "secret")
	item, err := client.UploadMedia(context.Background(), "pic.png", strings.NewReader("fake image bytes"), "a diagram")
	require.NoError(t, err)
	assert.Equal(t, 55, item.ID)
	assert.Equal(t, "https://example.com/wp-content/uploads/pic.png", item.SourceURL)
}

func TestUploadMedia_NoAltText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Empty(t, r.FormValue("alt_text"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":56,"source_url":"https://example.com/f.png"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "admin", "secret")
	item, err := client.UploadMedia(context.Background(), "f.png", strings.NewReader("bytes"), "")
	require.NoError(t, err)
	assert.Equal(t, 56, item.ID)
}

func TestUploadMedia_ErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnsupportedMediaType)
		w.Write([]byte(`{"code":"rest_upload_unknown_error","message":"Sorry, you are not allowed to upload this file type.","data":{"status":415}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "admin", "secret")
	_, err := client.UploadMedia(context.Background(), "f.exe", strings.NewReader("bytes"), "")
	require.Error(t, err)

	var apiErr *ErrorResponse
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "rest_upload_unknown_error", apiErr.Code)
	assert.Equal(t, 415, apiErr.StatusCode)
}

func TestUpdateMedia(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/media/55", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"id":55,"alt_text":"updated alt"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "admin", "secret")
	item, err := client.UpdateMedia(context.Background(), 55, &UpdateMediaRequest{AltText: "updated alt"})
	require.NoError(t, err)
	assert.Equal(t, "updated alt", item.AltText)
}

func TestListMedia(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/media", r.URL.Path)
		assert.Equal(t, "image", r.URL.Query().Get("media_type"))
		w.Write([]byte(`[{"id":1,"source_url":"https://example.com/a.png","media_type":"image"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "admin", "secret")
	items, err := client.ListMedia(context.Background(), &ListMediaOptions{MediaType: "image"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "https://example.com/a.png", items[0].SourceURL)
}

func TestDeleteMedia_AlwaysForces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/media/9", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("force"))
		w.Write([]byte(`{"deleted":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "admin", "secret")
	require.NoError(t, client.DeleteMedia(context.Background(), 9))
}
