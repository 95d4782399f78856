package rso

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// fold returns the case-folded form of s.
// A new Caser is built per call because Casers are not safe for concurrent use.
func fold(s string) string {
	return cases.Fold().String(s)
}

// CompareFold orders strings by case-folded value, falling back to byte
// order so that the result is total and deterministic.
func CompareFold(a, b string) int {
	if c := strings.Compare(fold(a), fold(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// NormalizeList trims every entry, drops empties, removes case-insensitive
// duplicates keeping the first spelling, and sorts by case-folded value.
// The result is never nil.
func NormalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		key := fold(trimmed)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	slices.SortFunc(out, CompareFold)
	return out
}

// SortByDisplayName sorts records in place by case-folded display name.
// Records with equal names keep their relative order.
func SortByDisplayName(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return strings.Compare(fold(a.DisplayName), fold(b.DisplayName))
	})
}
