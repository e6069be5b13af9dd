package platform

// Package platform contains OS/platform integration glue: default asset
// locations and filesystem lookup of track audio and cover files.
