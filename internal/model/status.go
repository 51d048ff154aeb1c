package model

// RunStatus represents the lifecycle of an installation run
type RunStatus string

const (
	// RunStatusNotStarted means no installation was triggered yet
	RunStatusNotStarted RunStatus = "NotStarted"

	// RunStatusRunning means the pipeline is working through its steps
	RunStatusRunning RunStatus = "Running"

	// RunStatusCompleted means every step finished without error
	RunStatusCompleted RunStatus = "Completed"

	// RunStatusPartiallyFailed means the run finished but at least one operation failed
	RunStatusPartiallyFailed RunStatus = "PartiallyFailed"
)

// String returns the string representation of RunStatus
func (rs RunStatus) String() string {
	return string(rs)
}

// IsActive returns true while a run is in progress
func (rs RunStatus) IsActive() bool {
	return rs == RunStatusRunning
}

// IsFinished returns true if the run reached a terminal state
func (rs RunStatus) IsFinished() bool {
	return rs == RunStatusCompleted || rs == RunStatusPartiallyFailed
}
