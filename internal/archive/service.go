package archive

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Permissions used when the archive does not carry usable modes
const (
	DefaultDirPermissions  = 0o755
	DefaultFilePermissions = 0o644
)

// ErrUnsafePath is returned for entries that resolve outside the destination
var ErrUnsafePath = errors.New("archive entry escapes destination")

// Service extracts zip archives
type Service struct {
	logger *zap.Logger
}

// NewService creates a new archive service
func NewService(logger *zap.Logger) Extractor {
	return &Service{
		logger: logger.Named("archive"),
	}
}

// IsArchive reports whether name is a valid zip file
func (s *Service) IsArchive(fs afero.Fs, name string) bool {
	f, err := fs.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	// a reader is returned together with ErrInsecurePath; entry names are checked on extraction
	r, _ := zip.NewReader(f, info.Size())
	return r != nil
}

// Extract unpacks the zip file name into dest
func (s *Service) Extract(fs afero.Fs, name, dest string) (int, error) {
	f, err := fs.Open(name)
	if err != nil {
		return 0, fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat archive: %w", err)
	}

	r, err := zip.NewReader(f, info.Size())
	if r == nil {
		return 0, fmt.Errorf("read archive %s: %w", name, err)
	}

	if err := fs.MkdirAll(destDir(dest), DefaultDirPermissions); err != nil {
		return 0, fmt.Errorf("create destination: %w", err)
	}

	written := 0
	for _, entry := range r.File {
		target, err := entryPath(dest, entry.Name)
		if err != nil {
			return written, err
		}

		if entry.FileInfo().IsDir() {
			if err := fs.MkdirAll(target, DefaultDirPermissions); err != nil {
				return written, fmt.Errorf("create directory %s: %w", entry.Name, err)
			}
			continue
		}

		if err := extractFile(fs, entry, target); err != nil {
			return written, err
		}
		written++
	}

	s.logger.Debug("archive extracted",
		zap.String("archive", name),
		zap.String("destination", destDir(dest)),
		zap.Int("files", written),
	)
	return written, nil
}

func extractFile(fs afero.Fs, entry *zip.File, target string) error {
	if err := fs.MkdirAll(filepath.Dir(target), DefaultDirPermissions); err != nil {
		return fmt.Errorf("create directory for %s: %w", entry.Name, err)
	}

	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("open entry %s: %w", entry.Name, err)
	}
	defer src.Close()

	perm := entry.Mode().Perm()
	if perm == 0 {
		perm = DefaultFilePermissions
	}

	dst, err := fs.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("create %s: %w", entry.Name, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("write %s: %w", entry.Name, err)
	}
	return dst.Close()
}

// entryPath maps an archive entry name onto the destination directory
func entryPath(dest, name string) (string, error) {
	clean := path.Clean(strings.ReplaceAll(name, "\\", "/"))
	if clean == "." || clean == ".." || path.IsAbs(clean) || strings.HasPrefix(clean, "../") || filepath.VolumeName(clean) != "" {
		return "", fmt.Errorf("%w: %s", ErrUnsafePath, name)
	}
	return filepath.Join(destDir(dest), filepath.FromSlash(clean)), nil
}

func destDir(dest string) string {
	if strings.TrimSpace(dest) == "" {
		return "."
	}
	return dest
}
