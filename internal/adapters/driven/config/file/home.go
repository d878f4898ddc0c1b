package file

import (
	"os"
	"path/filepath"
)

// HomeEnv names the environment variable that overrides the kalk directory.
const HomeEnv = "KALK_HOME"

// HomeDir returns the directory holding kalk's configuration and data.
// KALK_HOME takes precedence over ~/.kalk.
func HomeDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".kalk"), nil
}
