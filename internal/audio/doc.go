package audio

// Package audio implements the playback engine on top of faiface/beep and the
// filesystem asset resolver. MP3 and WAV assets are supported.
