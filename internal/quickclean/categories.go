// Package quickclean enumerates reclaimable-space candidates under
// well-known system locations. Each category gathers independently;
// results are recomputed on every run, never cached.
package quickclean

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/cleansweep/cleansweep/internal/platform"
	"github.com/cleansweep/cleansweep/internal/scanner"
)

// Category identifiers
const (
	CategoryUserCache        = "user_cache"
	CategorySystemLogs       = "system_logs"
	CategoryTrash            = "trash"
	CategoryDeviceBackups    = "device_backups"
	CategoryDerivedData      = "xcode_derived_data"
	CategoryCrashReports     = "crash_reports"
	CategoryTempFiles        = "temp_files"
	CategoryAppSupportCaches = "app_support_caches"
)

// tempFileFloor filters noise out of the shallow temp-file sweep
const tempFileFloor = 1 << 20 // 1 MiB

// Item is one reclaimable-space candidate. Ephemeral: superseded wholesale
// by the next analysis run.
type Item struct {
	Path      string
	SizeBytes uint64
	Category  string
}

// Category pairs an identifier with its gatherer
type Category struct {
	ID     string
	Label  string
	gather func(ctx context.Context, info *platform.Info) []Item
}

// Categories returns the full category set in display order
func Categories() []Category {
	return []Category{
		{CategoryUserCache, "User caches", gatherUserCache},
		{CategorySystemLogs, "System logs", gatherSystemLogs},
		{CategoryTrash, "Trash", gatherTrash},
		{CategoryDeviceBackups, "Device backups", gatherDeviceBackups},
		{CategoryDerivedData, "Xcode derived data", gatherDerivedData},
		{CategoryCrashReports, "Crash reports", gatherCrashReports},
		{CategoryTempFiles, "Temporary files", gatherTempFiles},
		{CategoryAppSupportCaches, "App support caches", gatherAppSupportCaches},
	}
}

// gatherChildren lists a root and emits one item per non-empty child,
// sized recursively. An inaccessible root yields no items.
func gatherChildren(ctx context.Context, root, category string) []Item {
	children, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	var items []Item
	for _, child := range children {
		if ctx.Err() != nil {
			return nil
		}
		path := filepath.Join(root, child.Name())
		size, err := scanner.SubtreeSize(ctx, path)
		if err != nil {
			return nil
		}
		if size == 0 {
			continue
		}
		items = append(items, Item{Path: path, SizeBytes: size, Category: category})
	}
	return items
}

func gatherUserCache(ctx context.Context, info *platform.Info) []Item {
	return gatherChildren(ctx, info.UserCacheRoot, CategoryUserCache)
}

func gatherSystemLogs(ctx context.Context, info *platform.Info) []Item {
	var items []Item
	for _, root := range info.LogRoots {
		items = append(items, gatherChildren(ctx, root, CategorySystemLogs)...)
	}
	return items
}

func gatherTrash(ctx context.Context, info *platform.Info) []Item {
	return gatherChildren(ctx, info.TrashRoot, CategoryTrash)
}

func gatherDeviceBackups(ctx context.Context, info *platform.Info) []Item {
	return gatherChildren(ctx, info.DeviceBackupRoot, CategoryDeviceBackups)
}

func gatherDerivedData(ctx context.Context, info *platform.Info) []Item {
	return gatherChildren(ctx, info.DerivedDataRoot, CategoryDerivedData)
}

func gatherCrashReports(ctx context.Context, info *platform.Info) []Item {
	var items []Item
	for _, root := range info.CrashReportRoots {
		items = append(items, gatherChildren(ctx, root, CategoryCrashReports)...)
	}
	return items
}

// gatherTempFiles sweeps only the top level of each temp root and keeps
// items above the size floor; a deep walk of temp trees is not worth the
// churn for mostly tiny files.
func gatherTempFiles(ctx context.Context, info *platform.Info) []Item {
	var items []Item
	for _, root := range info.TempRoots {
		for _, item := range gatherChildren(ctx, root, CategoryTempFiles) {
			if item.SizeBytes >= tempFileFloor {
				items = append(items, item)
			}
		}
	}
	return items
}

// gatherAppSupportCaches finds cache subdirectories nested inside
// per-application support directories.
func gatherAppSupportCaches(ctx context.Context, info *platform.Info) []Item {
	apps, err := os.ReadDir(info.AppSupportRoot)
	if err != nil {
		return nil
	}

	var items []Item
	for _, app := range apps {
		if ctx.Err() != nil {
			return nil
		}
		if !app.IsDir() {
			continue
		}
		for _, name := range []string{"Cache", "Caches", "cache"} {
			path := filepath.Join(info.AppSupportRoot, app.Name(), name)
			size, err := scanner.SubtreeSize(ctx, path)
			if err != nil {
				return nil
			}
			if size == 0 {
				continue
			}
			items = append(items, Item{Path: path, SizeBytes: size, Category: CategoryAppSupportCaches})
		}
	}
	return items
}

// sortItems orders items by size descending, ties broken by path
func sortItems(items []Item) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].SizeBytes != items[j].SizeBytes {
			return items[i].SizeBytes > items[j].SizeBytes
		}
		return items[i].Path < items[j].Path
	})
}
