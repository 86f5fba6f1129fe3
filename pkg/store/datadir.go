package store

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDataDir returns the OS-appropriate default data directory for
// wrangle.
//
//   - macOS:   ~/Library/Application Support/wrangle
//   - Linux:   $XDG_DATA_HOME/wrangle (fallback ~/.local/share/wrangle)
//   - Windows: %LOCALAPPDATA%\wrangle (fallback %APPDATA%\wrangle)
func DefaultDataDir() string {
	return defaultDataDirForOS(runtime.GOOS)
}

func defaultDataDirForOS(goos string) string {
	home, _ := os.UserHomeDir()

	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "wrangle")
	case "windows":
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, "wrangle")
		}
		if dir := os.Getenv("APPDATA"); dir != "" {
			return filepath.Join(dir, "wrangle")
		}
		return filepath.Join(home, "wrangle")
	default: // linux, freebsd, etc.
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return filepath.Join(dir, "wrangle")
		}
		return filepath.Join(home, ".local", "share", "wrangle")
	}
}
