package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It turns the user's selections into a batch job, runs it through the batch
// processor on a worker goroutine and renders progress, results and settings.
// All UI strings are localized via Localization.
