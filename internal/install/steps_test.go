package install

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2cwldys/fear-launcher/internal/model"
)

func TestDefaultSteps(t *testing.T) {
	steps := DefaultSteps(baseURL + "/")

	expected := []struct {
		name    string
		dest    string
		renamed bool
	}{
		{PatchArchive, "", false},
		{NoCDArchive, "", false},
		{OpenSpyArchive, "", true},
		{OpenSpyArchive, DirExtractionPoint, true},
		{OpenSpyArchive, DirPerseusMandate, true},
		{WinmmLibrary, "", false},
		{WinmmLibrary, DirExtractionPoint, false},
		{WinmmLibrary, DirPerseusMandate, false},
	}

	require.Len(t, steps, len(expected))
	for i, want := range expected {
		step := steps[i]
		assert.Equal(t, baseURL+"/"+want.name, step.Source, "step %d", i)
		assert.Equal(t, want.dest, step.Destination, "step %d", i)
		if want.renamed {
			assert.Equal(t, []model.Rename{{Old: OpenSpyX86Library, New: VersionLibrary}}, step.Renames, "step %d", i)
		} else {
			assert.Empty(t, step.Renames, "step %d", i)
		}
	}
}

func TestDefaultSteps_FallsBackToDefaultBaseURL(t *testing.T) {
	steps := DefaultSteps("  ")
	require.NotEmpty(t, steps)
	assert.Equal(t, DefaultBaseURL+"/"+PatchArchive, steps[0].Source)
}

func TestDefaultSteps_ReturnsFreshSlice(t *testing.T) {
	first := DefaultSteps(baseURL)
	first[2].Renames[0].New = "changed.dll"

	second := DefaultSteps(baseURL)
	assert.Equal(t, VersionLibrary, second[2].Renames[0].New)
}

func TestStalePaths(t *testing.T) {
	paths := StalePaths()
	assert.Len(t, paths, 13)
	assert.Contains(t, paths, "FEARXP2/winmm.dll")
	assert.Contains(t, paths, "FEAR.v1.08.NoCD.zip")
}

func TestStepError(t *testing.T) {
	err := newError(KindFilesystem, "delete", "FEARXP/version.dll", os.ErrPermission)

	assert.Equal(t, "delete FEARXP/version.dll: permission denied", err.Error())
	assert.True(t, errors.Is(err, os.ErrPermission))

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindFilesystem, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)

	noPath := newError(KindPrerequisite, "install", "", ErrGamePathUnset)
	assert.Equal(t, "install: game path is not set", noPath.Error())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "prerequisite", KindPrerequisite.String())
	assert.Equal(t, "network", KindNetwork.String())
	assert.Equal(t, "archive", KindArchive.String())
	assert.Equal(t, "filesystem", KindFilesystem.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
