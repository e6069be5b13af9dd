package model

import "testing"

func TestPlaybackState_HasSession(t *testing.T) {
	tests := []struct {
		state    PlaybackState
		expected bool
	}{
		{StateIdle, false},
		{StateLoadedStopped, true},
		{StatePlaying, true},
	}

	for _, test := range tests {
		result := test.state.HasSession()
		if result != test.expected {
			t.Errorf("PlaybackState(%s).HasSession() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestPlaybackState_Icon(t *testing.T) {
	tests := []struct {
		state    PlaybackState
		expected Icon
	}{
		{StateIdle, IconPlay},
		{StateLoadedStopped, IconPlay},
		{StatePlaying, IconPause},
	}

	for _, test := range tests {
		result := test.state.Icon()
		if result != test.expected {
			t.Errorf("PlaybackState(%s).Icon() = %s, expected %s", test.state, result, test.expected)
		}
	}
}

func TestPlaybackState_String(t *testing.T) {
	status := StateLoadedStopped
	expected := "Loaded-Stopped"
	result := status.String()

	if result != expected {
		t.Errorf("PlaybackState.String() = %s, expected %s", result, expected)
	}
}
