package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
)

// Command parameters
const (
	WindowsCmdFlag = "/c"
)

// AssetsDirName is the conventional folder for bundled media next to the binary
const AssetsDirName = "assets"

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// ErrResourceNotFound is returned when a bundled file is in none of the search dirs
var ErrResourceNotFound = errors.New("resource not found")

// runCommand is replaced in tests
var runCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// IsDirectory reports whether path exists and is a directory
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// OpenURL hands a URL (http, steam, ...) to the system handler
func OpenURL(target string) error {
	if strings.TrimSpace(target) == "" {
		return fmt.Errorf("url is empty")
	}
	name, args, err := openCommand(runtime.GOOS, target)
	if err != nil {
		return err
	}
	if err := runCommand(name, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", target, err)
	}
	return nil
}

// openCommand returns the command that opens target with the default handler
func openCommand(goos, target string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{target}, nil
	case OSWindows:
		// The empty argument is the window title expected by start
		return CmdCommand, []string{WindowsCmdFlag, StartCommand, "", target}, nil
	case OSLinux:
		return XDGOpenCommand, []string{target}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// OpenFolder opens a directory in the system file manager
func OpenFolder(dirPath string) error {
	if !IsDirectory(dirPath) {
		return fmt.Errorf("directory does not exist: %s", dirPath)
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return runCommand(OpenCommand, absPath)
	case OSWindows:
		return openFolderWindows(absPath)
	case OSLinux:
		return openFolderLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFolderWindows opens the directory in Explorer
func openFolderWindows(dirPath string) error {
	// explorer exits with status 1 even on success
	var exitErr *exec.ExitError
	if err := runCommand(ExplorerCommand, dirPath); err != nil && !errors.As(err, &exitErr) {
		return err
	}
	return nil
}

// openFolderLinux tries xdg-open and then the common file managers
func openFolderLinux(dirPath string) error {
	if err := runCommand(XDGOpenCommand, dirPath); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return runCommand(fm, dirPath)
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// ResourceDirs returns the directories searched for bundled media, in order:
// the configured override, the executable's directory and its assets folder,
// then the working directory and its assets folder.
func ResourceDirs(override string) []string {
	var dirs []string
	if override != "" {
		dirs = append(dirs, override)
	}
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		dirs = append(dirs, exeDir, filepath.Join(exeDir, AssetsDirName))
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd, filepath.Join(wd, AssetsDirName))
	}
	return dirs
}

// FindResource returns the first existing file called name in dirs
func FindResource(name string, dirs []string) (string, error) {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrResourceNotFound, name)
}

// ResourcePath locates a bundled media file such as music.mp3
func ResourcePath(name, override string) (string, error) {
	return FindResource(name, ResourceDirs(override))
}
