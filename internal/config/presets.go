package config

import (
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// File permissions for the presets file
const presetsFilePermissions = 0o644

// PresetStore persists named presets, each mapping a name to a yt-dlp
// argument fragment. The file is loaded once and rewritten as a whole on
// every save; an unreadable or malformed file yields an empty store.
type PresetStore struct {
	path string

	mu      sync.Mutex
	presets map[string][]string
}

// NewPresetStore creates a store backed by the given file path
func NewPresetStore(path string) *PresetStore {
	return &PresetStore{
		path:    path,
		presets: make(map[string][]string),
	}
}

// Load reads the presets file. A missing or malformed file leaves the
// store empty and is not an error.
func (s *PresetStore) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.presets = make(map[string][]string)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var parsed map[string][]string
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return
	}
	if parsed != nil {
		s.presets = parsed
	}
}

// Save rewrites the presets file with the current contents
func (s *PresetStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := yaml.Marshal(s.presets)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, presetsFilePermissions)
}

// Set adds or replaces a named preset
func (s *PresetStore) Set(name string, args []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presets[name] = append([]string(nil), args...)
}

// Get returns the argument fragment for a preset name
func (s *PresetStore) Get(name string) ([]string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	args, ok := s.presets[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), args...), true
}

// Delete removes a named preset
func (s *PresetStore) Delete(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.presets, name)
}

// Names returns all preset names sorted alphabetically
func (s *PresetStore) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
