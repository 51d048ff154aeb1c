package archive

import (
	"github.com/spf13/afero"
)

// Extractor defines the interface for the archive service.
type Extractor interface {
	// IsArchive reports whether the file at name is a readable archive
	IsArchive(fs afero.Fs, name string) bool
	// Extract unpacks every entry of name into dest and returns the number of files written
	Extract(fs afero.Fs, name, dest string) (int, error)
}
