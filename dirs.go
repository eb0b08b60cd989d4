package prefs

import "os"

// DirProvider supplies the platform base directory for per-user application
// settings: %AppData% on Windows, ~/Library/Application Support on macOS,
// $XDG_CONFIG_HOME or ~/.config on Unix-like systems.
//
// Stores use the built-in provider unless WithDirProvider substitutes another
// one; tests and hosts with bespoke layouts supply their own.
type DirProvider interface {
	// UserConfigDir returns the root directory for user-specific
	// configuration, or an error when the platform cannot supply one.
	UserConfigDir() (string, error)
}

// osDirs resolves the config root from the environment. XDG_CONFIG_HOME is
// honored explicitly when set, so redirection works even on platforms where
// os.UserConfigDir would ignore it; otherwise os.UserConfigDir decides.
type osDirs struct{}

func (osDirs) UserConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir, nil
	}
	return os.UserConfigDir()
}
