package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPresetStoreSetGet(t *testing.T) {
	store := NewPresetStore(filepath.Join(t.TempDir(), "presets.yaml"))

	store.Set("audio", []string{"-x", "--audio-format", "mp3"})

	args, ok := store.Get("audio")
	if !ok {
		t.Fatal("Expected preset to exist")
	}
	if len(args) != 3 || args[0] != "-x" {
		t.Errorf("Unexpected preset args: %v", args)
	}

	if _, ok := store.Get("missing"); ok {
		t.Error("Missing preset should not be found")
	}
}

func TestPresetStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")

	store := NewPresetStore(path)
	store.Set("audio", []string{"-x", "--audio-format", "mp3"})
	store.Set("fast", []string{"--limit-rate", "500K"})

	if err := store.Save(); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	reloaded := NewPresetStore(path)
	reloaded.Load()

	args, ok := reloaded.Get("fast")
	if !ok {
		t.Fatal("Expected preset to survive reload")
	}
	if len(args) != 2 || args[1] != "500K" {
		t.Errorf("Unexpected preset args after reload: %v", args)
	}
}

func TestPresetStoreLoadMissingFile(t *testing.T) {
	store := NewPresetStore(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	store.Load()

	if len(store.Names()) != 0 {
		t.Errorf("Missing file should yield an empty store, got %v", store.Names())
	}
}

func TestPresetStoreLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	store := NewPresetStore(path)
	store.Load()

	if len(store.Names()) != 0 {
		t.Errorf("Malformed file should yield an empty store, got %v", store.Names())
	}
}

func TestPresetStoreNamesSorted(t *testing.T) {
	store := NewPresetStore(filepath.Join(t.TempDir(), "presets.yaml"))
	store.Set("zeta", nil)
	store.Set("alpha", nil)
	store.Set("mid", nil)

	names := store.Names()
	expected := []string{"alpha", "mid", "zeta"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %d names, got %d", len(expected), len(names))
	}
	for i, name := range names {
		if name != expected[i] {
			t.Errorf("Name %d: expected %s, got %s", i, expected[i], name)
		}
	}
}

func TestPresetStoreDelete(t *testing.T) {
	store := NewPresetStore(filepath.Join(t.TempDir(), "presets.yaml"))
	store.Set("gone", []string{"-x"})
	store.Delete("gone")

	if _, ok := store.Get("gone"); ok {
		t.Error("Deleted preset should not be found")
	}
}
