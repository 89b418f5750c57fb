package genconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if p != Default() {
		t.Fatalf("expected defaults, got %+v", p)
	}
}

func TestLoadInvalidFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if p != Default() {
		t.Fatalf("expected defaults, got %+v", p)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mvogen.yaml")
	want := Default()
	want.Tempo = 90
	want.Velocity = 64
	want.Viewer.ShowGrid = false
	if err := Save(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: %+v != %+v", got, want)
	}
}

func TestLoadPartialFileKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mvogen.yaml")
	if err := os.WriteFile(path, []byte("tempo: 90\n"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if p.Tempo != 90 {
		t.Fatalf("expected tempo 90, got %v", p.Tempo)
	}
	if p.Velocity != Default().Velocity || p.Resolution != Default().Resolution {
		t.Fatalf("expected untouched defaults, got %+v", p)
	}
}
