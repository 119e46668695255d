package steam

import (
	"context"

	"github.com/srcdskit/mapcycle/pkg/logging"
	"github.com/srcdskit/mapcycle/pkg/mapcycle"
)

// Importer turns curated workshop collections into the desired set of
// rotation-list entries. It performs the two remote lookups in sequence and
// applies tag filtering; either lookup failing aborts the import with no
// partial result, so a broken run can never half-rewrite a rotation.
type Importer struct {
	client *Client
}

// NewImporter creates an Importer backed by the given client.
func NewImporter(client *Client) *Importer {
	return &Importer{client: client}
}

// DesiredEntries fetches the map members of the given collections, filters
// them by tags, and returns them as short-form "workshop/<id>" entries in
// collection order.
//
// A file carrying any tag in excludeTags is dropped. When includeTags is
// non-empty, files carrying none of them are dropped as well.
func (imp *Importer) DesiredEntries(ctx context.Context, collections, includeTags, excludeTags []string) ([]string, error) {
	details, err := imp.client.GetCollectionDetails(ctx, collections)
	if err != nil {
		return nil, err
	}

	// Collect map members across collections, first appearance wins.
	var fileIDs []string
	seen := make(map[string]struct{})
	for _, collection := range details.CollectionDetails {
		for _, child := range collection.Children {
			if child.FileType != FileTypeMap {
				continue
			}
			if _, dup := seen[child.PublishedFileID]; dup {
				continue
			}
			seen[child.PublishedFileID] = struct{}{}
			fileIDs = append(fileIDs, child.PublishedFileID)
		}
	}

	logging.Debug().
		Int("collections", len(details.CollectionDetails)).
		Int("maps", len(fileIDs)).
		Msg("Fetched collection details")

	if len(fileIDs) == 0 {
		return []string{}, nil
	}

	files, err := imp.client.GetPublishedFileDetails(ctx, fileIDs)
	if err != nil {
		return nil, err
	}

	keep := make(map[string]bool, len(fileIDs))
	for _, id := range fileIDs {
		keep[id] = true
	}
	for i := range files.PublishedFileDetails {
		file := &files.PublishedFileDetails[i]
		if file.HasAnyTag(excludeTags) {
			keep[file.PublishedFileID] = false
		} else if len(includeTags) > 0 && !file.HasAnyTag(includeTags) {
			keep[file.PublishedFileID] = false
		}
	}

	entries := make([]string, 0, len(fileIDs))
	for _, id := range fileIDs {
		if keep[id] {
			entries = append(entries, mapcycle.WorkshopPrefix+id)
		}
	}

	logging.Debug().
		Int("kept", len(entries)).
		Int("dropped", len(fileIDs)-len(entries)).
		Msg("Applied tag filters")

	return entries, nil
}
