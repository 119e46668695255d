// Package workshop discovers locally downloaded workshop content so that
// numeric rotation entries can be cross-referenced with, and resolved to,
// on-disk map names.
package workshop

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/srcdskit/mapcycle/pkg/constants"
	"github.com/srcdskit/mapcycle/pkg/errors"
	"github.com/srcdskit/mapcycle/pkg/logging"
)

// mapExtension is the Source engine map file extension.
const mapExtension = ".bsp"

// Index maps workshop published-file identifiers to the display names of
// maps downloaded into the game's workshop content directory. It satisfies
// mapcycle.Index.
type Index struct {
	names map[string]string
}

// DisplayName returns the installed map name for a published-file
// identifier, if that content has been downloaded.
func (idx *Index) DisplayName(id string) (string, bool) {
	name, ok := idx.names[id]
	return name, ok
}

// Len returns the number of installed maps in the index.
func (idx *Index) Len() int {
	return len(idx.names)
}

// BuildIndex scans a steamapps/workshop directory for downloaded TF2 maps.
// Content lives under content/440/<publishedfileid>/<mapname>.bsp; the first
// map file in each entry's directory names that entry. A workshop directory
// with no content tree yields an empty index, not an error: nothing has
// been downloaded yet.
func BuildIndex(workshopDir string) (*Index, error) {
	idx := &Index{names: make(map[string]string)}

	contentDir := filepath.Join(workshopDir, constants.WorkshopContentDir, constants.TF2AppID)
	entries, err := os.ReadDir(contentDir)
	if err != nil {
		if os.IsNotExist(err) {
			return idx, nil
		}
		return nil, errors.WrapIO("read", contentDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id := entry.Name()
		files, err := os.ReadDir(filepath.Join(contentDir, id))
		if err != nil {
			continue
		}
		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(file.Name(), mapExtension) {
				continue
			}
			idx.names[id] = strings.TrimSuffix(file.Name(), mapExtension)
			break
		}
	}

	logging.Debug().
		Str("dir", contentDir).
		Int("maps", idx.Len()).
		Msg("Indexed installed workshop content")

	return idx, nil
}

// DetectDir locates the steamapps/workshop directory relative to a mapcycle
// path inside a server install: the game's tf/ directory sits next to the
// steamapps/ tree holding downloaded workshop content. It returns "" when
// the layout does not match or the directory does not exist.
func DetectDir(mapcyclePath string) string {
	path := filepath.ToSlash(mapcyclePath)
	i := strings.LastIndex(path, "/tf/")
	if i < 0 {
		return ""
	}

	candidate := filepath.Join(path[:i], "steamapps", "workshop")
	if info, err := os.Stat(candidate); err == nil && info.IsDir() {
		return candidate
	}
	return ""
}
