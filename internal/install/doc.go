package install

// Package install implements the multiplayer-fix installation pipeline:
// stale file cleanup, per-step download, archive extraction or relocation,
// rename maps, and the final sweep of temporary and incompatible files.
//
// Every filesystem operation goes through an afero.Fs rooted at the game
// directory, so nothing is written outside the tree the user picked. The
// pipeline is sequential and best-effort: a failing step is recorded and the
// next one still runs. Failures are returned as *StepError values combined
// with go.uber.org/multierr.
