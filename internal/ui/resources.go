package ui

import (
	"fyne.io/fyne/v2"

	"github.com/2cwldys/fear-launcher/internal/platform"
)

// Assets locates the media shipped next to the executable
type Assets struct {
	dir string // optional override searched first
}

// NewAssets creates a lookup that searches dir before the default locations
func NewAssets(dir string) *Assets {
	return &Assets{dir: dir}
}

// Path returns the location of a bundled file
func (a *Assets) Path(name string) (string, error) {
	return platform.ResourcePath(name, a.dir)
}

// LoadIcon loads the window icon
func (a *Assets) LoadIcon() (fyne.Resource, error) {
	path, err := a.Path(AppIcon)
	if err != nil {
		return nil, err
	}
	return fyne.LoadResourceFromPath(path)
}
