package layout

import (
	"devdash/internal/model"
	"devdash/internal/store"
)

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Resize tracks a draggable panel height, clamped to [Min, Max], persisted
// per widget. While a drag is in progress the height is recomputed from the
// captured start position on every move; persistence converges on drag end.
type Resize struct {
	store  store.Store
	widget model.ModuleID

	Min    int
	Max    int
	height int

	dragging    bool
	startPos    int
	startHeight int
}

func NewResize(s store.Store, widget model.ModuleID, def, min, max int) *Resize {
	return &Resize{
		store:  s,
		widget: widget,
		Min:    min,
		Max:    max,
		height: clamp(s.PanelHeight(widget, def), min, max),
	}
}

func (r *Resize) Height() int {
	return r.height
}

func (r *Resize) Dragging() bool {
	return r.dragging
}

// DragStart captures the initial pointer position and current height.
func (r *Resize) DragStart(pos int) {
	r.dragging = true
	r.startPos = pos
	r.startHeight = r.height
}

// DragMove recomputes the height from the captured start, clamping exactly
// at the boundaries.
func (r *Resize) DragMove(pos int) {
	if !r.dragging {
		return
	}
	r.height = clamp(r.startHeight+(pos-r.startPos), r.Min, r.Max)
}

// DragEnd stops tracking and persists the final height. Safe to call no
// matter how the drag ended.
func (r *Resize) DragEnd() {
	if !r.dragging {
		return
	}
	r.dragging = false
	_ = r.store.SavePanelHeight(r.widget, r.height)
}

// Adjust nudges the height by delta outside of a drag (keyboard resize) and
// persists immediately.
func (r *Resize) Adjust(delta int) {
	r.height = clamp(r.height+delta, r.Min, r.Max)
	_ = r.store.SavePanelHeight(r.widget, r.height)
}
