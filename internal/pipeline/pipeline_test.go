package pipeline

import (
	"testing"

	"devdash/internal/model"
)

func promptFields(p model.Prompt) []string {
	out := []string{p.Title, p.Category}
	out = append(out, p.Tags...)
	return out
}

func fixturePrompts() []model.Prompt {
	return []model.Prompt{
		{ID: "a", Title: "Explain Like I'm 5", Category: "Learning", Tags: []string{"beginner"}, UsageCount: 3, CreatedAt: 100},
		{ID: "b", Title: "Debug My Code", Category: "Debugging", Tags: []string{"troubleshooting"}, Favorite: true, UsageCount: 9, CreatedAt: 200},
		{ID: "c", Title: "Review for Edge Cases", Category: "Code Review", Tags: []string{"edge-cases"}, UsageCount: 1, CreatedAt: 300},
	}
}

func ids(ps []model.Prompt) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSearch_MatchesAnySearchableField(t *testing.T) {
	ps := fixturePrompts()

	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query passes all", "", []string{"a", "b", "c"}},
		{"title substring", "debug", []string{"b"}},
		{"case insensitive", "EXPLAIN", []string{"a"}},
		{"tag match", "edge-cases", []string{"c"}},
		{"category match", "learning", []string{"a"}},
		{"no match", "zzz", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Search(ps, tc.query, promptFields))
			if !equalIDs(got, tc.want...) {
				t.Fatalf("query %q: got %v want %v", tc.query, got, tc.want)
			}
		})
	}
}

func TestFilter_Monotonic(t *testing.T) {
	ps := fixturePrompts()

	searched := Search(ps, "e", promptFields) // matches all three
	filtered := Filter(searched, "Debugging", func(p model.Prompt) string { return p.Category })

	// Adding a filter always yields a subset (by id) of the unfiltered result.
	base := map[string]bool{}
	for _, p := range searched {
		base[p.ID] = true
	}
	for _, p := range filtered {
		if !base[p.ID] {
			t.Fatalf("filter introduced id %q not present before", p.ID)
		}
	}
	if len(filtered) != 1 || filtered[0].ID != "b" {
		t.Fatalf("got %v", ids(filtered))
	}

	// The All sentinel disables the filter entirely.
	all := Filter(searched, All, func(p model.Prompt) string { return p.Category })
	if !equalIDs(ids(all), ids(searched)...) {
		t.Fatalf("All sentinel must pass everything: got %v", ids(all))
	}
}

func TestWhere_FavoritesOnly(t *testing.T) {
	ps := fixturePrompts()
	favs := Where(ps, true, func(p model.Prompt) bool { return p.Favorite })
	if !equalIDs(ids(favs), "b") {
		t.Fatalf("got %v", ids(favs))
	}
	off := Where(ps, false, func(p model.Prompt) bool { return p.Favorite })
	if len(off) != len(ps) {
		t.Fatalf("disabled filter must pass everything")
	}
}

func TestSortBy_Comparators(t *testing.T) {
	// Three records so recent and alphabetical disagree.
	ps := fixturePrompts()

	recent := SortBy(ps, func(a, b model.Prompt) bool { return a.CreatedAt > b.CreatedAt })
	if !equalIDs(ids(recent), "c", "b", "a") {
		t.Fatalf("recent: got %v", ids(recent))
	}

	mostUsed := SortBy(ps, func(a, b model.Prompt) bool { return a.UsageCount > b.UsageCount })
	if !equalIDs(ids(mostUsed), "b", "a", "c") {
		t.Fatalf("mostUsed: got %v", ids(mostUsed))
	}

	alpha := SortBy(ps, func(a, b model.Prompt) bool { return TitleLess(a.Title, b.Title) })
	if !equalIDs(ids(alpha), "b", "a", "c") {
		t.Fatalf("alphabetical: got %v", ids(alpha))
	}

	// Non-destructive: the input keeps collection order.
	if !equalIDs(ids(ps), "a", "b", "c") {
		t.Fatalf("input mutated: %v", ids(ps))
	}
}

func TestSortBy_StableOnTies(t *testing.T) {
	ps := []model.Prompt{
		{ID: "x", UsageCount: 5},
		{ID: "y", UsageCount: 5},
		{ID: "z", UsageCount: 5},
	}
	got := SortBy(ps, func(a, b model.Prompt) bool { return a.UsageCount > b.UsageCount })
	if !equalIDs(ids(got), "x", "y", "z") {
		t.Fatalf("ties must keep insertion order: got %v", ids(got))
	}
}

func TestWeekNumber(t *testing.T) {
	cases := []struct {
		label string
		want  int
	}{
		{"Week 12", 12},
		{"week 3", 3},
		{"W1x2", 12}, // all digits count, wherever they sit
		{"no digits here", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := WeekNumber(tc.label); got != tc.want {
			t.Errorf("WeekNumber(%q) = %d, want %d", tc.label, got, tc.want)
		}
	}
}

func TestCategories(t *testing.T) {
	ps := fixturePrompts()
	got := Categories(ps, func(p model.Prompt) string { return p.Category })
	want := []string{All, "Learning", "Debugging", "Code Review"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}
