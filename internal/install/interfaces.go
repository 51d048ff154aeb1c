package install

import (
	"context"

	"github.com/2cwldys/fear-launcher/internal/model"
)

// Installer runs the install steps against a game directory
type Installer interface {
	CleanupStale(gamePath string) error
	RunStep(ctx context.Context, step model.InstallStep, gamePath string) (model.StepResult, error)
	RunAll(ctx context.Context, gamePath string, steps []model.InstallStep) (*model.Report, error)
	SetUpdateCallback(callback func(model.StepResult))
}

var _ Installer = (*Pipeline)(nil)
