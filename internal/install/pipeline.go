package install

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/2cwldys/fear-launcher/internal/archive"
	"github.com/2cwldys/fear-launcher/internal/download"
	"github.com/2cwldys/fear-launcher/internal/model"
)

// File permissions
const (
	DownloadFilePermissions = 0o644
	DirPermissions          = 0o755
)

// Naming
const (
	RunIDPrefix    = "install-"
	DownloadSuffix = ".download"
)

// Pipeline runs install steps against a game directory
type Pipeline struct {
	downloader download.Downloader
	extractor  archive.Extractor
	base       afero.Fs
	logger     *zap.Logger
	onUpdate   func(model.StepResult) // callback for UI updates

	mu      sync.Mutex
	running bool
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithFs replaces the filesystem the game path is resolved against (defaults to the OS filesystem)
func WithFs(fs afero.Fs) Option {
	return func(p *Pipeline) {
		p.base = fs
	}
}

// NewPipeline creates a new install pipeline
func NewPipeline(downloader download.Downloader, extractor archive.Extractor, logger *zap.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		downloader: downloader,
		extractor:  extractor,
		base:       afero.NewOsFs(),
		logger:     logger.Named("install"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetUpdateCallback sets the function called after every finished step
func (p *Pipeline) SetUpdateCallback(callback func(model.StepResult)) {
	p.onUpdate = callback
}

// CleanupStale deletes leftovers of a previous install. Missing paths are
// skipped; a failed deletion is logged and the remaining paths are still processed.
func (p *Pipeline) CleanupStale(gamePath string) error {
	fs, err := p.rootFs(gamePath)
	if err != nil {
		return err
	}
	return p.cleanupStale(fs, p.logger)
}

// RunStep downloads, places and renames a single step
func (p *Pipeline) RunStep(ctx context.Context, step model.InstallStep, gamePath string) (model.StepResult, error) {
	fs, err := p.rootFs(gamePath)
	if err != nil {
		return model.StepResult{Step: step, Total: 1, Err: err}, err
	}

	result := p.runStep(ctx, fs, step, p.logger)
	result.Total = 1
	return result, result.Err
}

// RunAll performs a complete installation: cleanup, every step in order,
// removal of leftover downloads and of incompatible libraries.
// The returned error combines every failure of the run.
func (p *Pipeline) RunAll(ctx context.Context, gamePath string, steps []model.InstallStep) (*model.Report, error) {
	fs, err := p.rootFs(gamePath)
	if err != nil {
		return &model.Report{Status: model.RunStatusNotStarted}, err
	}

	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return &model.Report{Status: model.RunStatusNotStarted}, newError(KindPrerequisite, "install", "", ErrAlreadyRunning)
	}
	p.running = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.running = false
		p.mu.Unlock()
	}()

	report := &model.Report{
		RunID:     generateRunID(),
		Status:    model.RunStatusRunning,
		StartedAt: time.Now(),
	}
	logger := p.logger.With(zap.String("run_id", report.RunID))
	logger.Info("installation started",
		zap.String("game_path", gamePath),
		zap.Int("steps", len(steps)),
	)

	var errs error

	if err := p.cleanupStale(fs, logger); err != nil {
		report.Cleanup = append(report.Cleanup, multierr.Errors(err)...)
		errs = multierr.Append(errs, err)
	}

	for i, step := range steps {
		result := p.runStep(ctx, fs, step, logger)
		result.Index = i
		result.Total = len(steps)
		if result.Err != nil {
			errs = multierr.Append(errs, result.Err)
		}

		report.Steps = append(report.Steps, result)
		p.notifyUpdate(result)
	}

	if err := p.sweepDownloads(fs, steps, logger); err != nil {
		report.Cleanup = append(report.Cleanup, multierr.Errors(err)...)
		errs = multierr.Append(errs, err)
	}

	if err := p.removeIncompatible(fs, logger); err != nil {
		report.Cleanup = append(report.Cleanup, multierr.Errors(err)...)
		errs = multierr.Append(errs, err)
	}

	report.FinishedAt = time.Now()
	if errs != nil {
		report.Status = model.RunStatusPartiallyFailed
	} else {
		report.Status = model.RunStatusCompleted
	}

	logger.Info("installation finished",
		zap.String("status", report.Status.String()),
		zap.Int("failed_steps", len(report.FailedSteps())),
		zap.String("downloaded", humanize.Bytes(uint64(report.TotalBytes()))),
		zap.Duration("took", report.Duration()),
	)
	return report, errs
}

// rootFs validates gamePath and returns a filesystem confined to it
func (p *Pipeline) rootFs(gamePath string) (afero.Fs, error) {
	if strings.TrimSpace(gamePath) == "" {
		return nil, newError(KindPrerequisite, "install", "", ErrGamePathUnset)
	}

	info, err := p.base.Stat(gamePath)
	if err != nil {
		return nil, newError(KindPrerequisite, "open game path", gamePath, err)
	}
	if !info.IsDir() {
		return nil, newError(KindPrerequisite, "open game path", gamePath, fmt.Errorf("not a directory"))
	}

	return afero.NewBasePathFs(p.base, gamePath), nil
}

func (p *Pipeline) cleanupStale(fs afero.Fs, logger *zap.Logger) error {
	var errs error
	for _, path := range StalePaths() {
		if err := removeIfExists(fs, path, logger); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// runStep executes one step. The download is written next to the game files
// under a temporary name and removed again whatever the outcome.
func (p *Pipeline) runStep(ctx context.Context, fs afero.Fs, step model.InstallStep, logger *zap.Logger) (result model.StepResult) {
	result.Step = step

	name, err := step.FileName()
	if err != nil {
		result.Err = newError(KindNetwork, "resolve", step.Source, err)
		return result
	}

	tmp := tempName(name)
	dest := destination(step.Destination)
	logger = logger.With(zap.String("source", step.Source), zap.String("destination", dest))

	defer func() {
		if err := removeIfExists(fs, tmp, logger); err != nil {
			result.Err = multierr.Append(result.Err, err)
		}
	}()

	n, err := p.fetch(ctx, fs, step.Source, tmp)
	result.Bytes = n
	if err != nil {
		result.Err = err
		logger.Warn("download failed", zap.Error(err))
		return result
	}

	if p.extractor.IsArchive(fs, tmp) {
		count, err := p.extractor.Extract(fs, tmp, dest)
		result.Extracted = true
		result.Files = count
		if err != nil {
			result.Err = newError(KindArchive, "extract", name, err)
			logger.Warn("extraction failed", zap.Error(err))
			return result
		}
	} else {
		if err := relocate(fs, tmp, filepath.Join(dest, name)); err != nil {
			result.Err = err
			logger.Warn("relocation failed", zap.Error(err))
			return result
		}
		result.Files = 1
	}

	if err := applyRenames(fs, dest, step.Renames, logger); err != nil {
		result.Err = err
	}

	logger.Info("step finished",
		zap.Bool("extracted", result.Extracted),
		zap.Int("files", result.Files),
		zap.String("size", humanize.Bytes(uint64(result.Bytes))),
	)
	return result
}

// fetch streams url into name, truncating any existing file
func (p *Pipeline) fetch(ctx context.Context, fs afero.Fs, url, name string) (int64, error) {
	f, err := fs.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, DownloadFilePermissions)
	if err != nil {
		return 0, newError(KindFilesystem, "create", name, err)
	}

	n, err := p.downloader.Fetch(ctx, url, f)
	closeErr := f.Close()
	if err != nil {
		return n, newError(KindNetwork, "download", url, err)
	}
	if closeErr != nil {
		return n, newError(KindFilesystem, "write", name, closeErr)
	}
	return n, nil
}

// relocate moves src to target, replacing an existing file
func relocate(fs afero.Fs, src, target string) error {
	if err := fs.MkdirAll(filepath.Dir(target), DirPermissions); err != nil {
		return newError(KindFilesystem, "create directory", filepath.Dir(target), err)
	}

	exists, err := afero.Exists(fs, target)
	if err != nil {
		return newError(KindFilesystem, "stat", target, err)
	}
	if exists {
		if err := fs.Remove(target); err != nil {
			return newError(KindFilesystem, "replace", target, err)
		}
	}

	if err := fs.Rename(src, target); err != nil {
		return newError(KindFilesystem, "move", target, err)
	}
	return nil
}

// applyRenames renames every existing Old entry to New. Missing entries are skipped.
func applyRenames(fs afero.Fs, dest string, renames []model.Rename, logger *zap.Logger) error {
	var errs error
	for _, r := range renames {
		oldPath := filepath.Join(dest, r.Old)
		newPath := filepath.Join(dest, r.New)

		exists, err := afero.Exists(fs, oldPath)
		if err != nil {
			errs = multierr.Append(errs, newError(KindFilesystem, "stat", oldPath, err))
			continue
		}
		if !exists {
			continue
		}

		if err := removeIfExists(fs, newPath, logger); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if err := fs.Rename(oldPath, newPath); err != nil {
			errs = multierr.Append(errs, newError(KindFilesystem, "rename", oldPath, err))
			continue
		}
		logger.Debug("renamed", zap.String("from", oldPath), zap.String("to", newPath))
	}
	return errs
}

// sweepDownloads removes temporary downloads still lying in the game root
func (p *Pipeline) sweepDownloads(fs afero.Fs, steps []model.InstallStep, logger *zap.Logger) error {
	var errs error
	seen := make(map[string]bool)
	for _, step := range steps {
		name, err := step.FileName()
		if err != nil || seen[name] {
			continue
		}
		seen[name] = true

		if err := removeIfExists(fs, tempName(name), logger); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// removeIncompatible deletes the 64-bit OpenSpy library the 32-bit game cannot load
func (p *Pipeline) removeIncompatible(fs afero.Fs, logger *zap.Logger) error {
	var errs error
	for _, dir := range InstallDirs() {
		if err := removeIfExists(fs, filepath.Join(dir, OpenSpyX64Library), logger); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// removeIfExists deletes a file or directory tree; missing paths are not an error
func removeIfExists(fs afero.Fs, path string, logger *zap.Logger) error {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		logger.Warn("failed to stat", zap.String("path", path), zap.Error(err))
		return newError(KindFilesystem, "stat", path, err)
	}
	if !exists {
		return nil
	}

	if err := fs.RemoveAll(path); err != nil {
		logger.Warn("failed to delete", zap.String("path", path), zap.Error(err))
		return newError(KindFilesystem, "delete", path, err)
	}
	logger.Debug("deleted", zap.String("path", path))
	return nil
}

// notifyUpdate calls the update callback if set
func (p *Pipeline) notifyUpdate(result model.StepResult) {
	if p.onUpdate != nil {
		p.onUpdate(result)
	}
}

// tempName is the name a download is stored under until it is placed
func tempName(name string) string {
	return name + DownloadSuffix
}

func destination(dir string) string {
	if strings.TrimSpace(dir) == "" {
		return "."
	}
	return filepath.Clean(dir)
}

// generateRunID generates a time-ordered run ID
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}
