package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
)

// subtreeSize walks a directory tree summing file sizes. Symlinks are
// skipped entirely, an unreadable directory or file contributes zero, and
// cancellation is checked at the top of every level and before each child.
// A non-nil error is only ever the context's.
func subtreeSize(ctx context.Context, dir string) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	children, err := os.ReadDir(dir)
	if err != nil {
		return 0, nil
	}

	var total uint64
	for _, child := range children {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if child.Type()&fs.ModeSymlink != 0 {
			continue
		}
		if child.IsDir() {
			size, err := subtreeSize(ctx, filepath.Join(dir, child.Name()))
			if err != nil {
				return 0, err
			}
			total += size
			continue
		}
		info, err := child.Info()
		if err != nil {
			continue
		}
		total += uint64(info.Size())
	}
	return total, nil
}

// SubtreeSize computes the recursive size of a path. A plain file reports
// its own length; anything inaccessible reports zero.
func SubtreeSize(ctx context.Context, path string) (uint64, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return 0, nil
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		return 0, nil
	}
	if info.IsDir() {
		return subtreeSize(ctx, path)
	}
	return uint64(info.Size()), nil
}
