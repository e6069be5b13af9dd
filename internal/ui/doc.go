package ui

// Package ui contains the Fyne-based player window. RootUI renders the current
// track, transport and progress as the controller's display, and forwards
// button, slider, list, gesture and keyboard input back to the controller.
// All UI strings are localized via Localization.
