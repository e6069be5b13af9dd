package model

// Package model defines domain data structures used across the app: playlist
// tracks, playback states, and transport icon states. Values are plain and
// immutable so they can be handed to the UI without copying concerns.
