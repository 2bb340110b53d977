package platform

import (
	"os"
	"os/user"
	"path/filepath"
	"runtime"
)

// Platform represents the operating system platform
type Platform string

const (
	MacOS   Platform = "darwin"
	Linux   Platform = "linux"
	Unknown Platform = "unknown"
)

// Info contains platform-specific information and well-known roots used by
// the quick-clean gatherers and the scanner defaults.
type Info struct {
	OS       Platform
	HomeDir  string
	Username string

	// Quick-clean roots. A missing directory is not an error; gatherers
	// simply return no items for it.
	UserCacheRoot    string
	LogRoots         []string
	TrashRoot        string
	DeviceBackupRoot string
	DerivedDataRoot  string
	CrashReportRoots []string
	TempRoots        []string
	AppSupportRoot   string
}

// Detect returns the current platform
func Detect() Platform {
	switch runtime.GOOS {
	case "darwin":
		return MacOS
	case "linux":
		return Linux
	default:
		return Unknown
	}
}

// GetInfo returns platform-specific information
func GetInfo() (*Info, error) {
	platform := Detect()

	currentUser, err := user.Current()
	if err != nil {
		return nil, err
	}

	homeDir := currentUser.HomeDir
	username := currentUser.Username

	switch platform {
	case MacOS:
		return getMacOSInfo(homeDir, username), nil
	case Linux:
		return getLinuxInfo(homeDir, username), nil
	default:
		return nil, ErrUnsupportedPlatform
	}
}

// GetUserConfigDir returns the directory holding cleansweep's own files.
func GetUserConfigDir() (string, error) {
	if configDir := os.Getenv("XDG_CONFIG_HOME"); configDir != "" {
		return configDir, nil
	}
	currentUser, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(currentUser.HomeDir, ".config"), nil
}

// HomeDir returns the current user's home directory, or "" when it cannot
// be resolved. Path normalization tolerates the empty fallback.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// Errors
var (
	ErrUnsupportedPlatform = &PlatformError{"unsupported platform"}
)

// PlatformError represents a platform-related error
type PlatformError struct {
	Message string
}

func (e *PlatformError) Error() string {
	return e.Message
}
