package preferences

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// AppDirName is the fixed per-user directory holding settings.json
	AppDirName = "WinGet Package Installer"
	FileName   = "settings.json"
)

// Store reads and writes ThemePreferences at a fixed path.
// Only one process is expected to write the file.
type Store struct {
	path string
}

// NewStore creates a store bound to path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store reads and writes
func (s *Store) Path() string {
	return s.path
}

// Load reads the preferences file. On any failure it returns Defaults()
// together with the error so the caller decides how loud to be about it.
func (s *Store) Load() (ThemePreferences, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Defaults(), fmt.Errorf("read preferences: %w", err)
	}

	var prefs ThemePreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return Defaults(), fmt.Errorf("decode preferences %s: %w", s.path, err)
	}

	return prefs, nil
}

// Save overwrites the preferences file, creating its directory as needed
func (s *Store) Save(prefs ThemePreferences) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create preferences directory: %w", err)
	}

	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}

// DefaultDir returns the per-user local application data directory for the app
func DefaultDir() string {
	base := os.Getenv("LOCALAPPDATA")
	if base == "" {
		if runtime.GOOS == "windows" {
			if home, err := os.UserHomeDir(); err == nil {
				base = filepath.Join(home, "AppData", "Local")
			}
		} else if dir, err := os.UserConfigDir(); err == nil {
			base = dir
		}
	}
	if base == "" {
		base = "."
	}
	return filepath.Join(base, AppDirName)
}

// DefaultPath returns DefaultDir()/settings.json
func DefaultPath() string {
	return filepath.Join(DefaultDir(), FileName)
}

// PathIn returns the settings file location inside dir, or DefaultPath when dir is empty
func PathIn(dir string) string {
	if dir == "" {
		return DefaultPath()
	}
	return filepath.Join(dir, FileName)
}
