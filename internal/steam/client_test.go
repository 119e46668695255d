package steam

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srcdskit/mapcycle/pkg/errors"
)

func TestGetCollectionDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, collectionDetailsPath, r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "test-key", r.PostForm.Get("key"))
		assert.Equal(t, "json", r.PostForm.Get("format"))
		assert.Equal(t, "2", r.PostForm.Get("collectioncount"))
		assert.Equal(t, "3408654549", r.PostForm.Get("publishedfileids[0]"))
		assert.Equal(t, "3408654560", r.PostForm.Get("publishedfileids[1]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"response": {
				"result": 1,
				"resultcount": 1,
				"collectiondetails": [
					{
						"publishedfileid": "3408654549",
						"result": 1,
						"children": [
							{"publishedfileid": "454796385", "sortorder": 1, "filetype": 0},
							{"publishedfileid": "454796999", "sortorder": 2, "filetype": 2}
						]
					}
				]
			}
		}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	result, err := client.GetCollectionDetails(context.Background(), []string{"3408654549", "3408654560"})
	require.NoError(t, err)
	require.Len(t, result.CollectionDetails, 1)
	assert.Equal(t, "3408654549", result.CollectionDetails[0].PublishedFileID)
	require.Len(t, result.CollectionDetails[0].Children, 2)
	assert.Equal(t, FileTypeMap, result.CollectionDetails[0].Children[0].FileType)
}

func TestGetPublishedFileDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, publishedFileDetailsPath, r.URL.Path)

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "1", r.PostForm.Get("itemcount"))
		assert.Equal(t, "454796385", r.PostForm.Get("publishedfileids[0]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"response": {
				"result": 1,
				"resultcount": 1,
				"publishedfiledetails": [
					{
						"publishedfileid": "454796385",
						"result": 1,
						"title": "koth_octothorpe",
						"tags": [{"tag": "King of the Hill"}, {"tag": "night"}]
					}
				]
			}
		}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	result, err := client.GetPublishedFileDetails(context.Background(), []string{"454796385"})
	require.NoError(t, err)
	require.Len(t, result.PublishedFileDetails, 1)

	file := result.PublishedFileDetails[0]
	assert.Equal(t, "koth_octothorpe", file.Title)
	assert.True(t, file.HasTag("night"))
	assert.True(t, file.HasAnyTag([]string{"payload", "night"}))
	assert.False(t, file.HasAnyTag([]string{"payload"}))
	assert.False(t, file.HasAnyTag(nil))
}

func TestClientServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.GetCollectionDetails(context.Background(), []string{"3408654549"})
	require.Error(t, err)

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.True(t, errors.IsServiceUnavailable(err))
}

func TestClientMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.GetPublishedFileDetails(context.Background(), []string{"454796385"})
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}
