// Package reporter renders scan and quick-clean results for non-interactive
// use (CLI output, file export).
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cleansweep/cleansweep/internal/quickclean"
	"github.com/cleansweep/cleansweep/internal/safety"
	"github.com/cleansweep/cleansweep/internal/scanner"
	"github.com/cleansweep/cleansweep/pkg/utils"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
	FormatSummary OutputFormat = "summary"
)

// ParseFormat validates a format flag value
func ParseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatTable, FormatJSON, FormatYAML, FormatSummary:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

// Classify resolves a path's safety verdict for display
type Classify func(path string) safety.Verdict

// Reporter handles report generation
type Reporter struct {
	writer   io.Writer
	format   OutputFormat
	classify Classify
}

// New creates a Reporter. classify may be nil, in which case tiers are
// omitted from the output.
func New(writer io.Writer, format OutputFormat, classify Classify) *Reporter {
	return &Reporter{
		writer:   writer,
		format:   format,
		classify: classify,
	}
}

type reportEntry struct {
	Path   string `json:"path" yaml:"path"`
	Size   uint64 `json:"size_bytes" yaml:"size_bytes"`
	Human  string `json:"size" yaml:"size"`
	IsDir  bool   `json:"is_directory" yaml:"is_directory"`
	Tier   string `json:"tier,omitempty" yaml:"tier,omitempty"`
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Scan renders one directory scan result
func (r *Reporter) Scan(result *scanner.Result) error {
	entries := make([]reportEntry, len(result.Entries))
	for i, e := range result.Entries {
		entries[i] = reportEntry{
			Path:  e.Path,
			Size:  e.SizeBytes,
			Human: utils.FormatBytes(int64(e.SizeBytes)),
			IsDir: e.IsDir,
		}
		if r.classify != nil {
			v := r.classify(e.Path)
			entries[i].Tier = v.Tier.String()
			entries[i].Reason = v.Reason
		}
	}

	switch r.format {
	case FormatSummary:
		fmt.Fprintf(r.writer, "=== Scan of %s ===\n", result.Dir)
		fmt.Fprintf(r.writer, "Entries: %d\n", len(entries))
		fmt.Fprintf(r.writer, "Total Size: %s\n", utils.FormatBytes(int64(result.TotalSize)))
		return nil
	case FormatTable:
		r.table(entries)
		fmt.Fprintf(r.writer, "\nTotal: %d entries, %s\n",
			len(entries), utils.FormatBytes(int64(result.TotalSize)))
		return nil
	case FormatJSON, FormatYAML:
		return r.encode(struct {
			Timestamp string        `json:"timestamp" yaml:"timestamp"`
			Dir       string        `json:"directory" yaml:"directory"`
			TotalSize uint64        `json:"total_size" yaml:"total_size"`
			Entries   []reportEntry `json:"entries" yaml:"entries"`
		}{
			Timestamp: time.Now().Format(time.RFC3339),
			Dir:       result.Dir,
			TotalSize: result.TotalSize,
			Entries:   entries,
		})
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

// QuickClean renders a quick-clean analysis
func (r *Reporter) QuickClean(results []quickclean.CategoryResult) error {
	switch r.format {
	case FormatSummary, FormatTable:
		var grand uint64
		for _, cat := range results {
			fmt.Fprintf(r.writer, "%s: %d items, %s\n",
				cat.Label, len(cat.Items), utils.FormatBytes(int64(cat.TotalSize)))
			if r.format == FormatTable {
				for _, item := range cat.Items {
					fmt.Fprintf(r.writer, "  %-12s %s\n",
						utils.FormatBytes(int64(item.SizeBytes)), item.Path)
				}
			}
			grand += cat.TotalSize
		}
		fmt.Fprintf(r.writer, "\nReclaimable: %s\n", utils.FormatBytes(int64(grand)))
		return nil
	case FormatJSON, FormatYAML:
		return r.encode(struct {
			Timestamp  string                      `json:"timestamp" yaml:"timestamp"`
			Categories []quickclean.CategoryResult `json:"categories" yaml:"categories"`
		}{
			Timestamp:  time.Now().Format(time.RFC3339),
			Categories: results,
		})
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

func (r *Reporter) table(entries []reportEntry) {
	fmt.Fprintf(r.writer, "%-60s | %-12s | %-6s | %s\n", "Path", "Size", "Tier", "Reason")
	fmt.Fprintln(r.writer, strings.Repeat("-", 110))
	for _, e := range entries {
		path := e.Path
		if len(path) > 60 {
			path = "..." + path[len(path)-57:]
		}
		fmt.Fprintf(r.writer, "%-60s | %-12s | %-6s | %s\n", path, e.Human, e.Tier, e.Reason)
	}
}

func (r *Reporter) encode(report interface{}) error {
	if r.format == FormatJSON {
		encoder := json.NewEncoder(r.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}
	encoder := yaml.NewEncoder(r.writer)
	defer encoder.Close()
	return encoder.Encode(report)
}

// SaveScanToFile writes a scan report to a file
func SaveScanToFile(result *scanner.Result, path string, format OutputFormat, classify Classify) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return New(file, format, classify).Scan(result)
}
