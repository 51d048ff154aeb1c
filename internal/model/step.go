package model

import (
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"
)

// Rename is one entry of a step's rename map
type Rename struct {
	Old string // name relative to the step destination
	New string // final name relative to the step destination
}

// InstallStep describes one remote resource and where it ends up.
// Steps are fixed configuration: build them once and pass them by value.
type InstallStep struct {
	Source      string   // remote URL
	Destination string   // directory relative to the game path, "" for the root
	Renames     []Rename // applied in order after placement
}

// NewInstallStep creates a step, copying the rename list so callers cannot mutate it later
func NewInstallStep(source, destination string, renames ...Rename) InstallStep {
	step := InstallStep{
		Source:      source,
		Destination: destination,
	}
	if len(renames) > 0 {
		step.Renames = append([]Rename(nil), renames...)
	}
	return step
}

// FileName returns the last path segment of the source URL
func (s InstallStep) FileName() (string, error) {
	u, err := url.Parse(s.Source)
	if err != nil {
		return "", fmt.Errorf("parse source url %q: %w", s.Source, err)
	}

	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("source url %q has no file name", s.Source)
	}
	return name, nil
}

// DisplayDestination returns the destination formatted for messages
func (s InstallStep) DisplayDestination() string {
	if strings.TrimSpace(s.Destination) == "" {
		return "."
	}
	return s.Destination
}

// StepResult is the outcome of a single install step
type StepResult struct {
	Step      InstallStep
	Index     int   // position in the run, 0-based
	Total     int   // number of steps in the run
	Extracted bool  // true if the download was an archive
	Files     int   // entries extracted or 1 for a relocated file
	Bytes     int64 // downloaded bytes
	Err       error
}

// Succeeded reports whether the step finished without error
func (r StepResult) Succeeded() bool {
	return r.Err == nil
}

// Report summarizes an installation run
type Report struct {
	RunID      string
	Status     RunStatus
	Steps      []StepResult
	Cleanup    []error // non-fatal cleanup and sweep failures
	StartedAt  time.Time
	FinishedAt time.Time
}

// FailedSteps returns results of steps that ended with an error
func (r *Report) FailedSteps() []StepResult {
	var failed []StepResult
	for _, res := range r.Steps {
		if !res.Succeeded() {
			failed = append(failed, res)
		}
	}
	return failed
}

// TotalBytes returns the number of bytes downloaded over the whole run
func (r *Report) TotalBytes() int64 {
	var total int64
	for _, res := range r.Steps {
		total += res.Bytes
	}
	return total
}

// Duration returns how long the run took, or zero if it has not finished
func (r *Report) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
