package install

import (
	"path/filepath"
	"strings"

	"github.com/2cwldys/fear-launcher/internal/model"
)

// DefaultBaseURL is where the prerequisite files are published
const DefaultBaseURL = "https://github.com/2cwldys/FEAR-Launcher/releases/download/PREREQUISITES"

// Expansion directories inside the game path
const (
	DirExtractionPoint = "FEARXP"
	DirPerseusMandate  = "FEARXP2"
)

// Remote file names
const (
	PatchArchive   = "FEAR108.zip"
	NoCDArchive    = "FEAR.v1.08.NoCD.zip"
	OpenSpyArchive = "openspy.zip"
	WinmmLibrary   = "winmm.dll"
)

// OpenSpy library names
const (
	OpenSpyX86Library = "openspy.x86.dll"
	OpenSpyX64Library = "openspy.x64.dll"
	VersionLibrary    = "version.dll"
)

// InstallDirs returns the root and both expansion directories
func InstallDirs() []string {
	return []string{"", DirExtractionPoint, DirPerseusMandate}
}

// StalePaths lists files and directories left over from a previous install,
// relative to the game path
func StalePaths() []string {
	return []string{
		PatchArchive,
		NoCDArchive,
		OpenSpyArchive,
		VersionLibrary,
		WinmmLibrary,
		"FEAR.exe",
		"FEARMP.exe",
		filepath.Join(DirExtractionPoint, "FEARXP.exe"),
		filepath.Join(DirExtractionPoint, VersionLibrary),
		filepath.Join(DirExtractionPoint, WinmmLibrary),
		filepath.Join(DirPerseusMandate, "FEARXP2.exe"),
		filepath.Join(DirPerseusMandate, VersionLibrary),
		filepath.Join(DirPerseusMandate, WinmmLibrary),
	}
}

// DefaultSteps returns the ordered install steps. Later steps rely on
// directories populated by earlier ones, so the order must not change.
func DefaultSteps(baseURL string) []model.InstallStep {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	source := func(name string) string {
		return base + "/" + name
	}
	useVersion := model.Rename{Old: OpenSpyX86Library, New: VersionLibrary}

	steps := []model.InstallStep{
		model.NewInstallStep(source(PatchArchive), ""),
		model.NewInstallStep(source(NoCDArchive), ""),
	}
	for _, dir := range InstallDirs() {
		steps = append(steps, model.NewInstallStep(source(OpenSpyArchive), dir, useVersion))
	}
	for _, dir := range InstallDirs() {
		steps = append(steps, model.NewInstallStep(source(WinmmLibrary), dir))
	}
	return steps
}
