package cleaner

import (
	"context"
	"os"
	"testing"

	"github.com/cleansweep/cleansweep/internal/progress"
	"github.com/cleansweep/cleansweep/internal/scanner"
	"github.com/cleansweep/cleansweep/internal/testutil"
)

func TestExecuteDeletesFilesAndDirectories(t *testing.T) {
	f := testutil.NewFixture(t)
	file := f.CreateFile("single", 10)
	f.CreateFile("tree/a", 20)
	f.CreateFile("tree/sub/b", 30)
	tree := f.Path("tree")

	e := NewExecutor(nil, progress.NewReporter())
	result := e.Execute([]string{file, tree})

	if result.DeletedCount() != 2 || result.ErrorCount() != 0 {
		t.Fatalf("deleted=%d errors=%d, want 2/0 (%v)", result.DeletedCount(), result.ErrorCount(), result.Messages)
	}
	if result.FreedSize != 60 {
		t.Errorf("freed %d bytes, want 60", result.FreedSize)
	}
	f.MustNotExist(file)
	f.MustNotExist(tree)
}

func TestExecutePartialFailure(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are ignored when running as root")
	}

	f := testutil.NewFixture(t)
	good := f.CreateFile("good", 5)
	bad := f.CreateFile("locked/bad", 5)
	if err := os.Chmod(f.Path("locked"), 0555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(f.Path("locked"), 0755) })

	e := NewExecutor(nil, progress.NewReporter())
	result := e.Execute([]string{good, bad})

	if result.DeletedCount() != 1 {
		t.Errorf("deleted %d, want 1", result.DeletedCount())
	}
	if result.ErrorCount() != 1 {
		t.Errorf("errors %d, want 1", result.ErrorCount())
	}
	f.MustNotExist(good)
	f.MustExist(bad)
	if len(result.Messages) != 2 {
		t.Errorf("got %d messages, want one per attempted path", len(result.Messages))
	}
}

func TestExecuteVanishedPathCountsAsDeleted(t *testing.T) {
	f := testutil.NewFixture(t)

	e := NewExecutor(nil, progress.NewReporter())
	result := e.Execute([]string{f.Path("never-existed")})

	if result.DeletedCount() != 1 || result.ErrorCount() != 0 {
		t.Errorf("deleted=%d errors=%d, want 1/0", result.DeletedCount(), result.ErrorCount())
	}
	if result.FreedSize != 0 {
		t.Errorf("freed %d bytes for a vanished path, want 0", result.FreedSize)
	}
}

func TestExecuteSkipsSymlinkTargets(t *testing.T) {
	f := testutil.NewFixture(t)
	target := f.CreateFile("target", 100)
	f.CreateFile("doomed/real", 10)
	f.CreateSymlink("doomed/link", target)
	doomed := f.Path("doomed")

	e := NewExecutor(nil, progress.NewReporter())
	result := e.Execute([]string{doomed})

	if result.ErrorCount() != 0 {
		t.Fatalf("deletion failed: %v", result.Messages)
	}
	// Only the link itself goes; its target survives and never counts
	// toward freed space.
	f.MustNotExist(doomed)
	f.MustExist(target)
	if result.FreedSize != 10 {
		t.Errorf("freed %d bytes, want 10", result.FreedSize)
	}
}

func TestExecuteInvalidatesParentScan(t *testing.T) {
	f := testutil.NewFixture(t)
	victim := f.CreateFile("victim", 10)

	cache := scanner.NewDirCache()
	engine := scanner.NewEngine(cache, progress.NewReporter(), f.RootDir)
	if _, err := engine.Scan(context.Background(), f.RootDir); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	e := NewExecutor(engine, progress.NewReporter())
	result := e.Execute([]string{victim})
	if result.ErrorCount() != 0 {
		t.Fatalf("deletion failed: %v", result.Messages)
	}

	// The next scan must reflect the deletion instead of serving the
	// stale cached listing.
	rescan, err := engine.Scan(context.Background(), f.RootDir)
	if err != nil {
		t.Fatalf("rescan failed: %v", err)
	}
	if len(rescan.Entries) != 0 {
		t.Errorf("rescan found %d entries, want 0", len(rescan.Entries))
	}
}

func TestCategorizeError(t *testing.T) {
	if CategorizeError("/p", nil) != nil {
		t.Error("nil error must categorize to nil")
	}

	notExist := CategorizeError("/p", os.ErrNotExist)
	if notExist.Reason != ErrorFileNotFound {
		t.Errorf("reason = %v, want ErrorFileNotFound", notExist.Reason)
	}

	perm := CategorizeError("/p", os.ErrPermission)
	if perm.Reason != ErrorPermissionDenied {
		t.Errorf("reason = %v, want ErrorPermissionDenied", perm.Reason)
	}
}
