package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the buttons to the install pipeline, the launcher and the sound player,
// and renders the animated background. All UI strings are localized via Localization.
