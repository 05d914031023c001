package tui

import (
	"strings"
	"testing"
)

func TestRenderPageControlsHiddenForSinglePage(t *testing.T) {
	if got := renderPageControls(1, 1); got != "" {
		t.Errorf("one page should render no controls, got %q", got)
	}
	if got := renderPageControls(1, 0); got != "" {
		t.Errorf("zero pages should render no controls, got %q", got)
	}
}

func TestRenderPageControlsShowsAllPagesWhenFew(t *testing.T) {
	got := renderPageControls(2, 3)
	for _, n := range []string{"1", "2", "3"} {
		if !strings.Contains(got, n) {
			t.Errorf("expected page %s in %q", n, got)
		}
	}
	if strings.Contains(got, "…") {
		t.Errorf("no ellipsis expected for 3 pages, got %q", got)
	}
}

func TestRenderPageControlsCompressesLongRuns(t *testing.T) {
	got := renderPageControls(5, 20)
	if !strings.Contains(got, "…") {
		t.Errorf("expected ellipsis for 20 pages, got %q", got)
	}
	if !strings.Contains(got, "20") {
		t.Errorf("last page should always be shown, got %q", got)
	}
	if !strings.Contains(got, "1") {
		t.Errorf("first page should always be shown, got %q", got)
	}
}
