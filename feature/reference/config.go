package reference

import (
	"errors"
	"fmt"
)

// Supported reference set sources.
const (
	SourceFile     = "file"
	SourceStorage  = "storage"
	SourceDatabase = "database"
)

// ErrUnknownSource is returned for a source name that is not supported.
var ErrUnknownSource = errors.New("unknown reference source")

// Config selects and locates the reference set.
type Config struct {
	// Source is one of file, storage or database.
	Source string `mapstructure:"source" default:"file"`
	// Path is the local file path (file) or the object name (storage).
	// JSON is assumed unless it ends in .yaml or .yml.
	Path string `mapstructure:"path" default:""`
	// Table is the database table holding reference rows (database).
	Table string `mapstructure:"table" default:"mnp_reference"`
}

// Validate checks that the selected source is fully located.
func (c Config) Validate() error {
	switch c.Source {
	case SourceFile, SourceStorage:
		if c.Path == "" {
			return fmt.Errorf("reference.path (REFERENCE_PATH) is required for source %q", c.Source)
		}
	case SourceDatabase:
		if c.Table == "" {
			return errors.New("reference.table (REFERENCE_TABLE) is required for source \"database\"")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSource, c.Source)
	}
	return nil
}
