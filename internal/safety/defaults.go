package safety

// defaultRules is the built-in safety database. Ordering matters only for
// breaking specificity ties; matching itself is most-specific-wins.
var defaultRules = []Rule{
	// --- Safe to delete (green) ---
	{"~/Library/Caches/*", TierGreen, "Application cache files. Generally safe to delete."},
	{"~/Library/Caches/com.apple.Safari/*", TierGreen, "Safari browser cache. Safe to delete, will be regenerated."},
	{"~/Library/Caches/com.google.Chrome/*", TierGreen, "Chrome browser cache. Safe to delete, will be regenerated."},
	{"~/Library/Caches/com.mozilla.firefox/*", TierGreen, "Firefox browser cache. Safe to delete, will be regenerated."},
	{"~/.cache/*", TierGreen, "User cache files. Safe to delete, will be regenerated."},
	{"/System/Library/Caches/*", TierGreen, "System cache files. Safe to delete, the OS will regenerate as needed."},
	{"/private/var/folders/*/C/*", TierGreen, "Per-user temporary cache files. Safe to delete."},
	{"/tmp/*", TierGreen, "Temporary files. Safe to delete."},
	{"/var/tmp/*", TierOrange, "Temporary files that persist across reboots. Usually safe but check contents."},
	{"~/Library/Application Support/*/Temp/*", TierGreen, "Application temporary files. Safe to delete."},
	{"~/Downloads/*", TierGreen, "User-downloaded files. Verify before deleting."},
	{"~/Desktop/*", TierGreen, "User desktop files. Verify before deleting."},
	{"~/.Trash/*", TierGreen, "Items already in the trash. Safe to delete permanently."},
	{"/private/var/log/*", TierGreen, "System log files. Generally safe to delete but useful for troubleshooting."},
	{"~/Library/Logs/*", TierGreen, "User application logs. Generally safe to delete."},

	// --- Caution required (orange) ---
	{"~/Library/Application Support/MobileSync/Backup/*", TierOrange, "Device backups. Deletion is permanent; keep a cloud backup first."},
	{"~/Documents/*", TierOrange, "User documents. Important files, be careful when deleting."},
	{"~/Pictures/*", TierOrange, "User photos and images. Important files, be careful when deleting."},
	{"~/Movies/*", TierOrange, "User videos. Important files, be careful when deleting."},
	{"~/Music/*", TierOrange, "User music files. Important files, be careful when deleting."},
	{"~/Library/*", TierOrange, "Contains important user settings and data. Be very careful."},
	{"~/Library/Preferences/*", TierOrange, "Application preferences. Deleting may reset app settings."},
	{"~/Library/Application Support/*", TierOrange, "Application support files and user data."},
	{"~/Library/Keychains/*", TierOrange, "Keychain files containing passwords and certificates. Be very careful."},
	{"~/Library/Mail/*", TierOrange, "Mail data and settings. Deleting will remove email data."},
	{"/usr/local/*", TierOrange, "User-installed software and libraries. Specific items may be safe to delete."},
	{"/opt/*", TierOrange, "Third-party software installations. Check before deleting."},
	{"/var/db/*", TierOrange, "System databases. Some files are critical."},
	{"/var/log/*", TierOrange, "System log files. Generally safe but useful for troubleshooting."},

	// --- Unsafe to delete (red) ---
	{"/System/*", TierRed, "Critical operating system files. Do not delete."},
	{"/Library/*", TierRed, "System library files. Critical for OS operation."},
	{"/bin/*", TierRed, "Essential system binaries. Do not delete."},
	{"/sbin/*", TierRed, "System administration binaries. Do not delete."},
	{"/usr/bin/*", TierRed, "System binaries. Do not delete."},
	{"/usr/sbin/*", TierRed, "System administration binaries. Do not delete."},
	{"/usr/lib/*", TierRed, "System libraries. Do not delete."},
	{"/usr/libexec/*", TierRed, "System executables. Do not delete."},
	{"/usr/share/*", TierRed, "System shared files. Do not delete."},
	{"/boot/*", TierRed, "Boot files. Do not delete."},
	{"/etc/*", TierRed, "System configuration files. Do not delete."},
	{"/dev/*", TierRed, "Device files. Do not delete."},
	{"/proc/*", TierRed, "Process information. Do not delete."},
	{"/Applications/*", TierRed, "Installed applications. Do not delete from here directly."},
	{"/var/root/*", TierRed, "Root user directory. Do not delete."},
	{"/var/vm/*", TierRed, "Virtual memory files. Do not delete."},
	{"/var/run/*", TierRed, "Runtime system files. Do not delete."},
	{"~/Library/Keychains/login.keychain*", TierRed, "Main user keychain with all saved passwords. Do not delete."},

	// --- Extension rules ---
	{"*.tmp", TierGreen, "Temporary file. Generally safe to delete."},
	{"*.cache", TierGreen, "Cache file. Safe to delete, will be regenerated if needed."},
	{"*.log", TierGreen, "Log file. Generally safe to delete but useful for troubleshooting."},
	{"*/.DS_Store", TierGreen, "Folder view settings. Safe to delete, will be regenerated."},
	{"*/Thumbs.db", TierGreen, "Thumbnail cache. Safe to delete."},
	{"*.doc", TierOrange, "Document file. Verify before deleting."},
	{"*.docx", TierOrange, "Document file. Verify before deleting."},
	{"*.pdf", TierOrange, "PDF document. Verify before deleting."},
	{"*.txt", TierOrange, "Text file. Verify before deleting."},
	{"*.jpg", TierOrange, "Image file. Verify before deleting."},
	{"*.jpeg", TierOrange, "Image file. Verify before deleting."},
	{"*.png", TierOrange, "Image file. Verify before deleting."},
	{"*.mp4", TierOrange, "Video file. Verify before deleting."},
	{"*.mov", TierOrange, "Video file. Verify before deleting."},
	{"*.mp3", TierOrange, "Audio file. Verify before deleting."},
	{"*.dylib", TierRed, "Dynamic library. Critical for application operation. Do not delete."},
	{"*.framework/*", TierRed, "Framework bundle. Critical for system or application operation."},
	{"*.kext/*", TierRed, "Kernel extension. Critical system component. Do not delete."},
	{"*.app/*", TierRed, "Application bundle. Deleting removes the entire application."},
}
