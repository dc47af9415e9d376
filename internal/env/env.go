package env

import (
	"os"
	"path/filepath"
)

// WorkDir returns the default root under which checkouts and installs
// live when the manifest does not say otherwise.
func WorkDir() (string, error) {
	userCacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userCacheDir, ".buildfarm"), nil
}
