package ui

// Package ui contains the Fyne-based user interface for the application.
// It renders the image slot rows and the load-all button, forwards taps to
// the gallery controller, and implements the controller's Display. All UI
// strings are localized via Localization.
