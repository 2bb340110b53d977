package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/cleansweep/cleansweep/internal/quickclean"
	"github.com/cleansweep/cleansweep/internal/safety"
	"github.com/cleansweep/cleansweep/internal/scanner"
)

func sampleScan() *scanner.Result {
	return &scanner.Result{
		Dir: "/home/alice/.cache",
		Entries: []scanner.Entry{
			{Path: "/home/alice/.cache/big", Name: "big", IsDir: true, SizeBytes: 2048, Accessible: true},
			{Path: "/home/alice/.cache/small", Name: "small", SizeBytes: 10, Accessible: true},
		},
		TotalSize: 2058,
		ScannedAt: time.Now(),
	}
}

func greenClassify(path string) safety.Verdict {
	return safety.Verdict{Tier: safety.TierGreen, Reason: "cache", Source: safety.SourceRule}
}

func TestScanSummary(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, FormatSummary, nil)
	if err := r.Scan(sampleScan()); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"/home/alice/.cache", "Entries: 2", "2.01 KB"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestScanJSONCarriesTiers(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, FormatJSON, greenClassify)
	if err := r.Scan(sampleScan()); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	var decoded struct {
		Dir     string `json:"directory"`
		Entries []struct {
			Path string `json:"path"`
			Tier string `json:"tier"`
		} `json:"entries"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if decoded.Dir != "/home/alice/.cache" {
		t.Errorf("directory = %q", decoded.Dir)
	}
	if len(decoded.Entries) != 2 || decoded.Entries[0].Tier != "green" {
		t.Errorf("entries = %+v", decoded.Entries)
	}
}

func TestQuickCleanSummary(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, FormatSummary, nil)
	err := r.QuickClean([]quickclean.CategoryResult{
		{ID: "trash", Label: "Trash", TotalSize: 1024, Items: []quickclean.Item{
			{Path: "/t/x", SizeBytes: 1024, Category: "trash"},
		}},
		{ID: "user_cache", Label: "User caches", TotalSize: 1024},
	})
	if err != nil {
		t.Fatalf("QuickClean failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Trash: 1 items", "Reclaimable: 2.00 KB"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if _, err := ParseFormat("json"); err != nil {
		t.Errorf("json rejected: %v", err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("xml accepted, want error")
	}
}
