package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories, the npm package
	// lookup and the CLI banner
	AppName = "dadandiaoming"

	// EnvPrefix is the prefix for configuration environment variables
	EnvPrefix = "DADANDIAOMING"

	// Tagline is printed under the banner after a project is created
	Tagline = "Make development simpler and more efficient!"
)

// Version is the running release, overridden at build time with
// -ldflags "-X github.com/inovacc/dadandiaoming/internal/application.Version=1.2.3"
var Version = "1.0.0"

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the configuration directory path.
// Linux: ~/.config/dadandiaoming (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\dadandiaoming (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, nil
}

// EnsureApplicationDirectory returns the configuration directory, creating it
// when missing.
func EnsureApplicationDirectory() (string, error) {
	dir, err := GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}

	return dir, nil
}

func lazyLoad() {
	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		baseDir, err = os.UserCacheDir()
	default:
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)
		return
	}

	appDir = filepath.Join(baseDir, AppName)
}
