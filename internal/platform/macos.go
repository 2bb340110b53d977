package platform

import "path/filepath"

// getMacOSInfo returns platform-specific information for macOS
func getMacOSInfo(homeDir, username string) *Info {
	return &Info{
		OS:            MacOS,
		HomeDir:       homeDir,
		Username:      username,
		UserCacheRoot: filepath.Join(homeDir, "Library/Caches"),
		LogRoots: []string{
			"/private/var/log",
			filepath.Join(homeDir, "Library/Logs"),
		},
		TrashRoot:        filepath.Join(homeDir, ".Trash"),
		DeviceBackupRoot: filepath.Join(homeDir, "Library/Application Support/MobileSync/Backup"),
		DerivedDataRoot:  filepath.Join(homeDir, "Library/Developer/Xcode/DerivedData"),
		CrashReportRoots: []string{
			filepath.Join(homeDir, "Library/Logs/DiagnosticReports"),
			"/Library/Logs/DiagnosticReports",
		},
		TempRoots: []string{
			"/tmp",
			"/private/var/tmp",
		},
		AppSupportRoot: filepath.Join(homeDir, "Library/Application Support"),
	}
}
