package util

import (
	"os"
	"path/filepath"
)

// LocateFile finds filename as given, or under one of dirs
func LocateFile(filename string, dirs []string) (string, bool) {
	if len(filename) == 0 {
		return "", false
	}
	if _, err := os.Stat(filename); err == nil {
		return filename, true
	}
	if filepath.IsAbs(filename) {
		return "", false
	}
	for _, dir := range dirs {
		candidate := filepath.Join(dir, filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}
