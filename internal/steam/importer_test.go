package steam

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newImportServer serves canned responses for both Web API calls.
func newImportServer(t *testing.T, collections, files string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case collectionDetailsPath:
			_, _ = w.Write([]byte(collections))
		case publishedFileDetailsPath:
			_, _ = w.Write([]byte(files))
		default:
			http.NotFound(w, r)
		}
	}))
}

const importCollections = `{
	"response": {
		"result": 1,
		"resultcount": 2,
		"collectiondetails": [
			{
				"publishedfileid": "3408654549",
				"result": 1,
				"children": [
					{"publishedfileid": "111", "sortorder": 1, "filetype": 0},
					{"publishedfileid": "999", "sortorder": 2, "filetype": 2},
					{"publishedfileid": "222", "sortorder": 3, "filetype": 0}
				]
			},
			{
				"publishedfileid": "3408654560",
				"result": 1,
				"children": [
					{"publishedfileid": "222", "sortorder": 1, "filetype": 0},
					{"publishedfileid": "333", "sortorder": 2, "filetype": 0}
				]
			}
		]
	}
}`

const importFiles = `{
	"response": {
		"result": 1,
		"resultcount": 3,
		"publishedfiledetails": [
			{"publishedfileid": "111", "result": 1, "title": "koth_octothorpe", "tags": [{"tag": "King of the Hill"}]},
			{"publishedfileid": "222", "result": 1, "title": "pl_borneo_night", "tags": [{"tag": "Payload"}, {"tag": "night"}]},
			{"publishedfileid": "333", "result": 1, "title": "cp_kong_king", "tags": [{"tag": "Control Point"}]}
		]
	}
}`

func TestDesiredEntries(t *testing.T) {
	t.Run("keeps maps in collection order, deduplicated", func(t *testing.T) {
		server := newImportServer(t, importCollections, importFiles)
		defer server.Close()

		importer := NewImporter(NewClient("test-key", WithBaseURL(server.URL)))

		entries, err := importer.DesiredEntries(context.Background(), []string{"3408654549", "3408654560"}, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"workshop/111", "workshop/222", "workshop/333"}, entries)
	})

	t.Run("exclude tags drop files", func(t *testing.T) {
		server := newImportServer(t, importCollections, importFiles)
		defer server.Close()

		importer := NewImporter(NewClient("test-key", WithBaseURL(server.URL)))

		entries, err := importer.DesiredEntries(context.Background(), []string{"3408654549"}, nil, []string{"night"})
		require.NoError(t, err)
		assert.Equal(t, []string{"workshop/111", "workshop/333"}, entries)
	})

	t.Run("include tags keep only matching files", func(t *testing.T) {
		server := newImportServer(t, importCollections, importFiles)
		defer server.Close()

		importer := NewImporter(NewClient("test-key", WithBaseURL(server.URL)))

		entries, err := importer.DesiredEntries(context.Background(), []string{"3408654549"}, []string{"Payload"}, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"workshop/222"}, entries)
	})

	t.Run("exclude wins over include", func(t *testing.T) {
		server := newImportServer(t, importCollections, importFiles)
		defer server.Close()

		importer := NewImporter(NewClient("test-key", WithBaseURL(server.URL)))

		entries, err := importer.DesiredEntries(context.Background(), []string{"3408654549"}, []string{"Payload"}, []string{"night"})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("collections without maps need no detail lookup", func(t *testing.T) {
		empty := `{
			"response": {
				"result": 1,
				"resultcount": 1,
				"collectiondetails": [
					{
						"publishedfileid": "3408654549",
						"result": 1,
						"children": [{"publishedfileid": "999", "sortorder": 1, "filetype": 2}]
					}
				]
			}
		}`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, collectionDetailsPath, r.URL.Path, "no further call expected")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(empty))
		}))
		defer server.Close()

		importer := NewImporter(NewClient("test-key", WithBaseURL(server.URL)))

		entries, err := importer.DesiredEntries(context.Background(), []string{"3408654549"}, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("collection lookup failure aborts the import", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		importer := NewImporter(NewClient("test-key", WithBaseURL(server.URL)))

		entries, err := importer.DesiredEntries(context.Background(), []string{"3408654549"}, nil, nil)
		require.Error(t, err)
		assert.Nil(t, entries)
	})
}
