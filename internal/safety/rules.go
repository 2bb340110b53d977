package safety

import (
	"strings"

	"github.com/cleansweep/cleansweep/internal/pathutil"
)

// Rule is a glob-style safety rule. Patterns may start with a
// home-directory marker and use "*" (matches any run of characters,
// including separators) and "?" (matches one character).
type Rule struct {
	Pattern string
	Tier    Tier
	Reason  string
}

// RuleTable is an ordered, immutable collection of safety rules, loaded
// once at startup.
type RuleTable struct {
	rules []compiledRule
}

type compiledRule struct {
	rule Rule
	// pattern with the home marker expanded and segments collapsed
	expanded string
	// literal prefix before the first wildcard, used for specificity
	literalPrefix string
}

// NewRuleTable compiles a rule table against the given home directory
func NewRuleTable(rules []Rule, home string) *RuleTable {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		expanded := pathutil.NormalizeWithHome(r.Pattern, home)
		compiled = append(compiled, compiledRule{
			rule:          r,
			expanded:      expanded,
			literalPrefix: literalPrefix(expanded),
		})
	}
	return &RuleTable{rules: compiled}
}

// DefaultRuleTable compiles the built-in rule database
func DefaultRuleTable(home string) *RuleTable {
	return NewRuleTable(defaultRules, home)
}

// Len returns the number of rules in the table
func (t *RuleTable) Len() int {
	return len(t.rules)
}

// Match evaluates a normalized path against the table. When several rules
// match, the one with the longest non-wildcard literal prefix wins; ties
// fall back to table order. Returns false when no rule matches.
func (t *RuleTable) Match(normalizedPath string) (Verdict, bool) {
	best := -1
	bestLen := -1
	for i, cr := range t.rules {
		if !globMatch(cr.expanded, normalizedPath) {
			continue
		}
		if len(cr.literalPrefix) > bestLen {
			best = i
			bestLen = len(cr.literalPrefix)
		}
	}
	if best < 0 {
		return Verdict{}, false
	}
	r := t.rules[best].rule
	return Verdict{Tier: r.Tier, Reason: r.Reason, Source: SourceRule}, true
}

// literalPrefix returns the pattern text before the first wildcard
func literalPrefix(pattern string) string {
	if i := strings.IndexAny(pattern, "*?"); i >= 0 {
		return pattern[:i]
	}
	return pattern
}

// globMatch matches pattern against s. Unlike filepath.Match, "*" crosses
// path separators, so "~/Library/Caches/*" covers the whole subtree.
func globMatch(pattern, s string) bool {
	// Iterative matching with single-star backtracking.
	var pi, si int
	star, mark := -1, 0

	for si < len(s) {
		switch {
		case pi < len(pattern) && (pattern[pi] == '?' || pattern[pi] == s[si]):
			pi++
			si++
		case pi < len(pattern) && pattern[pi] == '*':
			star = pi
			mark = si
			pi++
		case star >= 0:
			pi = star + 1
			mark++
			si = mark
		default:
			return false
		}
	}
	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}
	return pi == len(pattern)
}
