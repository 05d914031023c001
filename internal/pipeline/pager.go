package pipeline

import "strings"

// Ellipsis is the placeholder entry in PageNumbers for omitted page runs.
const Ellipsis = -1

// Pager tracks the current page for one widget list and owns the
// reset-on-input-change rule: a stale page number must never survive a
// changed result set.
type Pager struct {
	Page     int
	PageSize int

	lastSig string
}

func NewPager(pageSize int) Pager {
	if pageSize < 1 {
		pageSize = 1
	}
	return Pager{Page: 1, PageSize: pageSize}
}

// Sync records the current search/filter/sort inputs. Whenever any of them
// changed since the last Sync, the page resets to 1.
func (p *Pager) Sync(inputs ...string) {
	sig := strings.Join(inputs, "\x00")
	if sig != p.lastSig {
		p.lastSig = sig
		p.Page = 1
	}
}

// TotalPages returns ceil(total/pageSize), at least 1.
func (p Pager) TotalPages(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + p.PageSize - 1) / p.PageSize
}

// SetPage moves to the requested page, clamped to [1, totalPages].
func (p *Pager) SetPage(page, total int) {
	tp := p.TotalPages(total)
	if page < 1 {
		page = 1
	}
	if page > tp {
		page = tp
	}
	p.Page = page
}

// Slice returns the current page of items, clamping the page first so a
// shrunk result set can never slice out of range.
func Slice[T any](items []T, p *Pager) []T {
	p.SetPage(p.Page, len(items))
	start := (p.Page - 1) * p.PageSize
	if start >= len(items) {
		return nil
	}
	end := start + p.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// PageNumbers returns the page-control entries for the given position using
// ellipsis compression: all pages when total <= 7; otherwise first and last
// are always shown with a window around the current page and Ellipsis
// where runs are omitted.
func PageNumbers(current, total int) []int {
	if total <= 7 {
		out := make([]int, 0, total)
		for i := 1; i <= total; i++ {
			out = append(out, i)
		}
		return out
	}
	switch {
	case current <= 4:
		return []int{1, 2, 3, 4, 5, Ellipsis, total}
	case current >= total-3:
		return []int{1, Ellipsis, total - 4, total - 3, total - 2, total - 1, total}
	default:
		return []int{1, Ellipsis, current - 1, current, current + 1, Ellipsis, total}
	}
}
