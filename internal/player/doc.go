package player

// Package player implements the playback controller: it binds the selected
// playlist track to an audio engine session, runs the progress ticker while
// playing, and pushes display-ready values to the UI. All methods are meant
// to be called from a single goroutine (the UI thread).
