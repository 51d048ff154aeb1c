package archive

// Package archive detects and unpacks zip archives on an afero filesystem
// using github.com/klauspost/compress/zip. Entries that would land outside the
// destination directory are rejected.
