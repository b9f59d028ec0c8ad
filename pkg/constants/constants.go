// Package constants provides shared constants used throughout the propmerge codebase.
// This includes default paths, CSV column names, file permissions and log rotation
// limits that should be consistent across the application.
package constants

import "time"

// Path constants, relative to the repository root
const (
	// DefaultInputDir is the directory holding one v<version>.csv file per CodeMeta release
	DefaultInputDir = "data/properties_description"

	// DefaultOutputFile is the generated JSON consumed by the site templates
	DefaultOutputFile = "data/properties_description.json"

	// DefaultConfigName is the config file name searched in the working and home directories
	DefaultConfigName = ".propmerge"

	// EnvPrefix is the prefix of environment variables read by the CLI
	EnvPrefix = "PROPMERGE"
)

// Input file constants
const (
	// SourceExtension is the extension of per-version property tables
	SourceExtension = ".csv"

	// VersionPrefix is stripped from a file stem before parsing its version number
	VersionPrefix = "v"
)

// CSV column names of a properties_description table
const (
	ColumnParentType  = "Parent Type"
	ColumnProperty    = "Property"
	ColumnType        = "Type"
	ColumnDescription = "Description"
)

// Columns lists the required CSV columns in their canonical order.
var Columns = []string{ColumnParentType, ColumnProperty, ColumnType, ColumnDescription}

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Output constants
const (
	// JSONIndent is the indentation used for the generated JSON file
	JSONIndent = "  "
)

// Logging constants
const (
	// LogRotationSize is the maximum size of a log file before rotation, in megabytes
	LogRotationSize = 10

	// LogRotationAge is the maximum age of log files before deletion
	LogRotationAge = 7 * 24 * time.Hour

	// LogRotationBackups is the maximum number of old log files to retain
	LogRotationBackups = 5
)
