package install

import (
	"errors"
	"fmt"
)

// Kind classifies pipeline failures
type Kind int

const (
	// KindPrerequisite means the run could not start (no game path, missing directory)
	KindPrerequisite Kind = iota
	// KindNetwork covers request, status and transfer failures
	KindNetwork
	// KindArchive covers unreadable archives and unsafe entries
	KindArchive
	// KindFilesystem covers create, move, rename and delete failures
	KindFilesystem
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindPrerequisite:
		return "prerequisite"
	case KindNetwork:
		return "network"
	case KindArchive:
		return "archive"
	case KindFilesystem:
		return "filesystem"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrGamePathUnset  = errors.New("game path is not set")
	ErrAlreadyRunning = errors.New("installation is already running")
)

// StepError is the typed error returned by every pipeline operation
type StepError struct {
	Kind Kind
	Op   string // operation that failed, e.g. "download", "rename"
	Path string // URL or path relative to the game directory
	Err  error
}

func (e *StepError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *StepError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first StepError in err's chain
func KindOf(err error) (Kind, bool) {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.Kind, true
	}
	return 0, false
}

func newError(kind Kind, op, path string, err error) *StepError {
	return &StepError{Kind: kind, Op: op, Path: path, Err: err}
}
