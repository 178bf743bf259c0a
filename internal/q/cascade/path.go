package cascade

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var isWindows = runtime.GOOS == "windows"

// ExpandPath expands a leading ~ to the user's home directory and makes the result absolute. Works cross-OS (including Windows, which doesn't traditionally treat ~ as the home
// directory).
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}

	expanded := path
	if strings.HasPrefix(expanded, "~") {
		if home, _ := os.UserHomeDir(); home != "" {
			switch {
			case expanded == "~" || expanded == "~/" || expanded == `~\`:
				expanded = home
			case strings.HasPrefix(expanded, "~/") || strings.HasPrefix(expanded, `~\`):
				expanded = filepath.Join(home, expanded[2:])
			}
		}
	}

	if !filepath.IsAbs(expanded) {
		if abs, err := filepath.Abs(expanded); err == nil {
			expanded = abs
		}
	}
	return expanded
}

// InUserConfigDirectory returns an absolute path for user-specific config files, joined with subPath. Ex:
//   - InUserConfigDirectory(".linediff/config.json") -> "$HOME/.linediff/config.json" on macOS and Linux.
//   - InUserConfigDirectory(".linediff/config.json") -> "%USERPROFILE%\AppData\Local\.linediff\config.json" on Windows.
func InUserConfigDirectory(subPath string) string {
	if isWindows {
		return filepath.Join(ExpandPath("~/AppData/Local"), subPath)
	}
	return filepath.Join(ExpandPath("~"), subPath)
}
