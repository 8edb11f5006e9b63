package configs

import (
	"os"
	"path/filepath"
	"runtime"

	kerrors "github.com/PolarWolf314/gctx/internal/errors"
)

// EnvConfigRoot overrides the default store location.
const EnvConfigRoot = "CLOUDSDK_CONFIG"

// locator holds the environment lookups ResolveLocation depends on.
type locator struct {
	goos      string
	lookupEnv func(string) (string, bool)
	homeDir   func() (string, error)
	configDir func() (string, error)
}

var systemLocator = locator{
	goos:      runtime.GOOS,
	lookupEnv: os.LookupEnv,
	homeDir:   os.UserHomeDir,
	configDir: os.UserConfigDir,
}

// ResolveLocation returns the root directory of the store.
func ResolveLocation() (string, error) {
	return systemLocator.resolve()
}

func (l locator) resolve() (string, error) {
	if value, ok := l.lookupEnv(EnvConfigRoot); ok && value != "" {
		return value, nil
	}

	var base string
	if l.goos == "darwin" {
		// gcloud ignores Application Support on macOS.
		home, err := l.homeDir()
		if err != nil || home == "" {
			return "", kerrors.ErrConfigurationDirectoryNotFound
		}
		base = filepath.Join(home, ".config")
	} else {
		dir, err := l.configDir()
		if err != nil || dir == "" {
			return "", kerrors.ErrConfigurationDirectoryNotFound
		}
		base = dir
	}

	return filepath.Join(base, "gcloud"), nil
}

// OpenDefault resolves the store location and opens it.
func OpenDefault() (*Store, error) {
	location, err := ResolveLocation()
	if err != nil {
		return nil, err
	}
	return Open(location)
}
