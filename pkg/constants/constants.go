// Package constants provides shared constants used throughout the mapcycle codebase.
// This includes timeouts, file permissions, and path conventions that should be
// consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the Steam Web API
	DefaultHTTPTimeout = 30 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Path conventions for Source engine game installs
const (
	// WorkshopContentDir is the subdirectory of a steamapps/workshop directory
	// that holds downloaded workshop content, keyed by app then published file ID.
	WorkshopContentDir = "content"

	// TF2AppID is the Steam application ID for Team Fortress 2, whose
	// workshop content directory holds downloaded maps.
	TF2AppID = "440"

	// BackupDirName is the directory created next to a mapcycle file to hold
	// timestamped backup copies.
	BackupDirName = "mapcycle_backups"

	// BackupTimestampLayout is the time.Format layout used in backup filenames.
	BackupTimestampLayout = "20060102_150405"
)
