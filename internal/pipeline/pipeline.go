// Package pipeline derives a widget's display list from its full collection:
// text search, categorical filters, a stable sort, then a page slice. Stages
// apply in that strict order; every stage is non-destructive.
package pipeline

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// All is the sentinel filter value that disables a categorical filter.
const All = "All"

// Search keeps records where any searchable field contains the query as a
// case-insensitive substring. An empty query passes everything through
// unchanged.
func Search[T any](items []T, query string, fields func(T) []string) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields(it) {
			if strings.Contains(strings.ToLower(f), query) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// Filter keeps records whose field equals the selected value. The All
// sentinel (and an empty selection) disables the filter.
func Filter[T any](items []T, selected string, field func(T) string) []T {
	if selected == "" || selected == All {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if field(it) == selected {
			out = append(out, it)
		}
	}
	return out
}

// Where keeps records matching the predicate. Used for boolean filters such
// as favorites-only.
func Where[T any](items []T, enabled bool, keep func(T) bool) []T {
	if !enabled {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// SortBy returns a sorted copy. The sort is stable so records that compare
// equal keep their collection order (ties broken by insertion). A nil less
// returns the input as-is.
func SortBy[T any](items []T, less func(a, b T) bool) []T {
	if less == nil {
		return items
	}
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

var titleCollator = collate.New(language.Und, collate.IgnoreCase)

// TitleLess compares titles the way the UI sorts "alphabetical": locale-aware
// and case-insensitive.
func TitleLess(a, b string) bool {
	return titleCollator.CompareString(a, b) < 0
}

// WeekNumber extracts the digits from a week label ("Week 12" -> 12) for
// numeric week ordering. Non-digit runes are dropped wherever they appear;
// labels without digits sort as 0.
func WeekNumber(label string) int {
	n := 0
	for _, r := range label {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
		}
	}
	return n
}

// Categories returns All followed by the distinct values of field in first-
// seen order, for building filter menus from the current records.
func Categories[T any](items []T, field func(T) string) []string {
	out := []string{All}
	seen := map[string]bool{}
	for _, it := range items {
		v := field(it)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
