package mvogen

import "testing"

func TestPlayerMasterVolumeRuntimeAPI(t *testing.T) {
	pl, err := NewPlayer(48000)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	if got := pl.MasterVolume(); got != 1 {
		t.Fatalf("default master volume = %v, want 1", got)
	}
	pl.SetMasterVolume(0.35)
	if got := pl.MasterVolume(); got != 0.35 {
		t.Fatalf("master volume = %v, want 0.35", got)
	}
	pl.SetMasterVolume(-2)
	if got := pl.MasterVolume(); got != 0 {
		t.Fatalf("master volume should clamp to 0, got %v", got)
	}
}

func TestNewPlayerRejectsBadSampleRate(t *testing.T) {
	if _, err := NewPlayer(0); err == nil {
		t.Fatalf("expected error for zero sample rate")
	}
}

func TestPlayerStopWithoutPlay(t *testing.T) {
	pl, err := NewPlayer(48000)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	if err := pl.Stop(); err != nil {
		t.Fatalf("stop without play should be a no-op, got %v", err)
	}
	pl.Wait() // must not block when nothing ever played
}
