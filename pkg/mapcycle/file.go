package mapcycle

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/srcdskit/mapcycle/pkg/constants"
	"github.com/srcdskit/mapcycle/pkg/errors"
)

// Load reads a rotation file into a Document, one entry per line with the
// trailing newline stripped. A missing file is an empty rotation, not an
// error: servers without a mapcycle yet are a normal starting point.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, nil
		}
		return nil, errors.WrapIO("read", path, err)
	}

	lines := strings.Split(string(data), "\n")
	// A newline-terminated file splits into a trailing empty element that
	// is an artifact of the terminator, not a blank entry.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return Document(lines), nil
}

// Save writes the document back as UTF-8 text, every entry newline
// terminated, in a single whole-file write. The content is assembled in
// memory first so a failure cannot leave a partially updated rotation.
func (d Document) Save(path string) error {
	var b strings.Builder
	for _, entry := range d {
		b.WriteString(entry)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// Backup copies the current rotation file into a mapcycle_backups directory
// next to it, under a timestamped name like "mapcycle_20250829_153000.txt".
// It returns the backup path, or "" without error when there is no prior
// file to preserve.
func Backup(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.WrapIO("stat", path, err)
	}
	if info.IsDir() {
		return "", errors.NewIOError("copy", path, fs.ErrInvalid)
	}

	backupDir := filepath.Join(filepath.Dir(path), constants.BackupDirName)
	if err := os.MkdirAll(backupDir, constants.DirPermissions); err != nil {
		return "", errors.WrapIO("create", backupDir, err)
	}

	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	stamp := time.Now().Format(constants.BackupTimestampLayout)
	backupPath := filepath.Join(backupDir, fmt.Sprintf("%s_%s%s", stem, stamp, ext))

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WrapIO("read", path, err)
	}
	if err := os.WriteFile(backupPath, data, constants.FilePermissions); err != nil {
		return "", errors.WrapIO("write", backupPath, err)
	}
	return backupPath, nil
}
