package config

import (
	"os"
	"path/filepath"
)

// StartDirectory is where file dialogs open: the remembered directory if it
// still exists, else the user's Pictures folder, else the working directory.
func (c *Config) StartDirectory() string {
	if dirExists(c.Dialogs.LastDirectory) {
		return c.Dialogs.LastDirectory
	}
	if home, err := os.UserHomeDir(); err == nil {
		pictures := filepath.Join(home, "Pictures")
		if dirExists(pictures) {
			return pictures
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return ""
}

// RememberFile records the directory of a file chosen in a dialog.
func (c *Config) RememberFile(path string) {
	if path == "" {
		return
	}
	c.Dialogs.LastDirectory = filepath.Dir(path)
}

func dirExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
