package workshop

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeContent lays out a steamapps/workshop content tree under dir.
func writeContent(t *testing.T, workshopDir, id string, files ...string) {
	t.Helper()
	itemDir := filepath.Join(workshopDir, "content", "440", id)
	require.NoError(t, os.MkdirAll(itemDir, 0o755))
	for _, name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(itemDir, name), []byte("x"), 0o644))
	}
}

func TestBuildIndex(t *testing.T) {
	t.Run("indexes downloaded maps by identifier", func(t *testing.T) {
		workshopDir := t.TempDir()
		writeContent(t, workshopDir, "454796385", "koth_octothorpe.bsp")
		writeContent(t, workshopDir, "100000001", "pl_fifthcurve_rc1.bsp", "thumb.jpg")

		idx, err := BuildIndex(workshopDir)
		require.NoError(t, err)
		assert.Equal(t, 2, idx.Len())

		name, ok := idx.DisplayName("454796385")
		assert.True(t, ok)
		assert.Equal(t, "koth_octothorpe", name)

		name, ok = idx.DisplayName("100000001")
		assert.True(t, ok)
		assert.Equal(t, "pl_fifthcurve_rc1", name)
	})

	t.Run("entries without a map file are skipped", func(t *testing.T) {
		workshopDir := t.TempDir()
		writeContent(t, workshopDir, "454796385", "readme.txt")

		idx, err := BuildIndex(workshopDir)
		require.NoError(t, err)
		assert.Equal(t, 0, idx.Len())

		_, ok := idx.DisplayName("454796385")
		assert.False(t, ok)
	})

	t.Run("missing content tree yields an empty index", func(t *testing.T) {
		idx, err := BuildIndex(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, 0, idx.Len())
	})
}

func TestDetectDir(t *testing.T) {
	t.Run("finds steamapps workshop next to tf", func(t *testing.T) {
		root := t.TempDir()
		workshopDir := filepath.Join(root, "steamapps", "workshop")
		require.NoError(t, os.MkdirAll(workshopDir, 0o755))
		mapcyclePath := filepath.Join(root, "tf", "cfg", "mapcycle.txt")

		assert.Equal(t, workshopDir, DetectDir(mapcyclePath))
	})

	t.Run("no tf directory in the path", func(t *testing.T) {
		assert.Equal(t, "", DetectDir("/srv/game/cfg/mapcycle.txt"))
	})

	t.Run("workshop directory absent", func(t *testing.T) {
		root := t.TempDir()
		mapcyclePath := filepath.Join(root, "tf", "cfg", "mapcycle.txt")
		assert.Equal(t, "", DetectDir(mapcyclePath))
	})
}
