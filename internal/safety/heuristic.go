package safety

import (
	"path/filepath"
	"strings"
)

// keyword groups checked against the lowercased base name, most permissive
// first. The first group with a hit decides the tier.
var (
	heuristicGreen  = []string{"cache", "temp", "tmp", "log"}
	heuristicOrange = []string{"config", "pref", "setting"}
	heuristicRed    = []string{"system", "kernel", "driver", "boot"}

	heuristicGreenExts = []string{".cache", ".tmp", ".log"}
)

// Heuristic scores a path's base name against keyword and extension groups.
// It is the fallback of last resort: an unmatched name yields orange, never
// green, because the true origin is unknown.
func Heuristic(path string) Verdict {
	base := strings.ToLower(filepath.Base(path))
	ext := filepath.Ext(base)

	for _, e := range heuristicGreenExts {
		if ext == e {
			return heuristicVerdict(TierGreen, "Temporary or cache file extension. Likely safe to delete.")
		}
	}

	if containsAny(base, heuristicGreen) {
		return heuristicVerdict(TierGreen, "Name suggests temporary or cache files. Likely safe to delete.")
	}
	if containsAny(base, heuristicOrange) {
		return heuristicVerdict(TierOrange, "Name suggests configuration or preference files. Deleting may affect application behavior.")
	}
	if containsAny(base, heuristicRed) {
		return heuristicVerdict(TierRed, "Name suggests system-related files. Not recommended for deletion.")
	}

	return heuristicVerdict(TierOrange, "Unknown file type. Exercise caution when deleting.")
}

func heuristicVerdict(tier Tier, reason string) Verdict {
	return Verdict{
		Tier:   tier,
		Reason: "Heuristic analysis: " + reason,
		Source: SourceHeuristic,
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
