package store

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	appDir     = "punchclock"
	darwinDir  = "dev.neros.PunchClock"
	windowsDir = "Neros"

	// JSONFile is the file name used by the JSON backend.
	JSONFile = "sheet.json"
	// SQLiteFile is the file name used by the SQLite backend.
	SQLiteFile = "sheet.db"
)

// DataDir returns the platform directory holding the sheet.
//
//   - linux and others: $XDG_DATA_HOME/punchclock, or ~/.local/share/punchclock
//   - darwin: ~/Library/Application Support/dev.neros.PunchClock
//   - windows: %APPDATA%\Neros\PunchClock
func DataDir() (string, error) {
	return dataDir(runtime.GOOS, os.Getenv)
}

func dataDir(goos string, getenv func(string) string) (string, error) {
	switch goos {
	case "windows":
		appData := getenv("APPDATA")
		if appData == "" {
			return "", ErrLocationNotFound
		}
		return filepath.Join(appData, windowsDir, "PunchClock"), nil
	case "darwin":
		home := getenv("HOME")
		if home == "" {
			return "", ErrLocationNotFound
		}
		return filepath.Join(home, "Library", "Application Support", darwinDir), nil
	default:
		if xdg := getenv("XDG_DATA_HOME"); filepath.IsAbs(xdg) {
			return filepath.Join(xdg, appDir), nil
		}
		home := getenv("HOME")
		if home == "" {
			return "", ErrLocationNotFound
		}
		return filepath.Join(home, ".local", "share", appDir), nil
	}
}

// Locate returns the default path of the named sheet file.
func Locate(name string) (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
