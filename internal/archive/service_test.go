package archive

import (
	"bytes"
	"errors"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func buildZip(t *testing.T, entries map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func writeFile(t *testing.T, fs afero.Fs, name string, data []byte) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, name, data, 0o644))
}

func TestIsArchive(t *testing.T) {
	fs := afero.NewMemMapFs()
	service := NewService(zap.NewNop())

	writeFile(t, fs, "/game/openspy.zip", buildZip(t, map[string]string{"openspy.x86.dll": "dll"}))
	writeFile(t, fs, "/game/winmm.dll", []byte("MZ not a zip"))
	require.NoError(t, fs.MkdirAll("/game/FEARXP", 0o755))

	assert.True(t, service.IsArchive(fs, "/game/openspy.zip"))
	assert.False(t, service.IsArchive(fs, "/game/winmm.dll"))
	assert.False(t, service.IsArchive(fs, "/game/FEARXP"))
	assert.False(t, service.IsArchive(fs, "/game/missing.zip"))
}

func TestExtract(t *testing.T) {
	fs := afero.NewMemMapFs()
	service := NewService(zap.NewNop())

	writeFile(t, fs, "/game/FEAR108.zip", buildZip(t, map[string]string{
		"FEAR.exe":             "exe",
		"Game/patch.arch00":    "arch",
		"Docs/":                "",
		"Docs/readme-1.08.txt": "readme",
	}))

	count, err := service.Extract(fs, "/game/FEAR108.zip", "/game")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	content, err := afero.ReadFile(fs, "/game/Game/patch.arch00")
	require.NoError(t, err)
	assert.Equal(t, "arch", string(content))

	isDir, err := afero.IsDir(fs, "/game/Docs")
	require.NoError(t, err)
	assert.True(t, isDir)

	exists, err := afero.Exists(fs, "/game/FEAR.exe")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExtract_CreatesDestination(t *testing.T) {
	fs := afero.NewMemMapFs()
	service := NewService(zap.NewNop())

	writeFile(t, fs, "/game/openspy.zip", buildZip(t, map[string]string{"openspy.x86.dll": "dll"}))

	count, err := service.Extract(fs, "/game/openspy.zip", "/game/FEARXP2")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	exists, err := afero.Exists(fs, "/game/FEARXP2/openspy.x86.dll")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExtract_OverwritesExistingFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	service := NewService(zap.NewNop())

	writeFile(t, fs, "/game/FEAR.exe", []byte("old build with a longer body"))
	writeFile(t, fs, "/game/nocd.zip", buildZip(t, map[string]string{"FEAR.exe": "new"}))

	_, err := service.Extract(fs, "/game/nocd.zip", "/game")
	require.NoError(t, err)

	content, err := afero.ReadFile(fs, "/game/FEAR.exe")
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestExtract_RejectsEscapingEntries(t *testing.T) {
	fs := afero.NewMemMapFs()
	service := NewService(zap.NewNop())

	writeFile(t, fs, "/game/evil.zip", buildZip(t, map[string]string{"../outside.dll": "x"}))

	_, err := service.Extract(fs, "/game/evil.zip", "/game/FEARXP")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsafePath))

	exists, _ := afero.Exists(fs, "/game/outside.dll")
	assert.False(t, exists)
}

func TestExtract_NotAnArchive(t *testing.T) {
	fs := afero.NewMemMapFs()
	service := NewService(zap.NewNop())

	writeFile(t, fs, "/game/winmm.dll", []byte("plain"))

	_, err := service.Extract(fs, "/game/winmm.dll", "/game")
	assert.Error(t, err)
}

func TestEntryPath(t *testing.T) {
	tests := []struct {
		dest    string
		name    string
		wantErr bool
	}{
		{"FEARXP", "openspy.x86.dll", false},
		{"", "Game/patch.arch00", false},
		{"FEARXP", "..\\version.dll", true},
		{"FEARXP", "/etc/passwd", true},
		{"FEARXP", "a/../../b", true},
		{"FEARXP", "a/../b", false},
	}

	for _, test := range tests {
		_, err := entryPath(test.dest, test.name)
		if test.wantErr {
			assert.ErrorIs(t, err, ErrUnsafePath, "entry %q", test.name)
		} else {
			assert.NoError(t, err, "entry %q", test.name)
		}
	}
}
