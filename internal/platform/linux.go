package platform

import "path/filepath"

// getLinuxInfo returns platform-specific information for Linux
func getLinuxInfo(homeDir, username string) *Info {
	return &Info{
		OS:            Linux,
		HomeDir:       homeDir,
		Username:      username,
		UserCacheRoot: filepath.Join(homeDir, ".cache"),
		LogRoots: []string{
			"/var/log",
			filepath.Join(homeDir, ".local/share/logs"),
		},
		TrashRoot:        filepath.Join(homeDir, ".local/share/Trash/files"),
		DeviceBackupRoot: filepath.Join(homeDir, ".local/share/device-backups"),
		DerivedDataRoot:  filepath.Join(homeDir, ".cache/derived-data"),
		CrashReportRoots: []string{
			"/var/crash",
			filepath.Join(homeDir, ".local/share/apport"),
		},
		TempRoots: []string{
			"/tmp",
			"/var/tmp",
		},
		AppSupportRoot: filepath.Join(homeDir, ".local/share"),
	}
}
