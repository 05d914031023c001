// Package layout owns the dashboard arrangement: the persisted widget
// permutation with its drag-reorder gestures, and the clamped panel heights.
package layout

import (
	"devdash/internal/model"

	"devdash/internal/store"
)

// Reconcile heals a persisted permutation against the current default set:
// saved identifiers that are no longer known are dropped, known identifiers
// missing from the saved order are appended in default order. The result is
// always an exact permutation of defaults. Must run before the first render.
func Reconcile(saved, defaults []model.ModuleID) []model.ModuleID {
	known := map[model.ModuleID]bool{}
	for _, id := range defaults {
		known[id] = true
	}

	out := make([]model.ModuleID, 0, len(defaults))
	seen := map[model.ModuleID]bool{}
	for _, id := range saved {
		if !known[id] || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	for _, id := range defaults {
		if !seen[id] {
			out = append(out, id)
		}
	}
	return out
}

// Order is the reorderable module list. The drag gesture mutates the
// permutation live on every hover; whatever order exists when the drag ends
// is final, there is no separate commit.
type Order struct {
	store    store.Store
	defaults []model.ModuleID
	modules  []model.ModuleID

	lifted int // index being dragged, -1 when idle
}

func NewOrder(s store.Store, defaults []model.ModuleID) *Order {
	return &Order{
		store:    s,
		defaults: defaults,
		modules:  Reconcile(s.ModuleOrder(), defaults),
		lifted:   -1,
	}
}

// Modules returns the current permutation.
func (o *Order) Modules() []model.ModuleID {
	return o.modules
}

// Lifted reports the index currently being dragged, or -1.
func (o *Order) Lifted() int {
	return o.lifted
}

// DragStart lifts the module at index.
func (o *Order) DragStart(index int) {
	if index < 0 || index >= len(o.modules) {
		return
	}
	o.lifted = index
}

// DragOver reinserts the lifted module at index, live-updating the display
// order. Fired for every position the pointer passes over.
func (o *Order) DragOver(index int) {
	if o.lifted < 0 || o.lifted == index || index < 0 || index >= len(o.modules) {
		return
	}
	moved := o.modules[o.lifted]
	rest := append([]model.ModuleID{}, o.modules[:o.lifted]...)
	rest = append(rest, o.modules[o.lifted+1:]...)

	out := append([]model.ModuleID{}, rest[:index]...)
	out = append(out, moved)
	out = append(out, rest[index:]...)

	o.modules = out
	o.lifted = index
	_ = store.WriteSlot(o.store, store.SlotModuleOrder, o.modules)
}

// DragEnd clears the lifted tracking.
func (o *Order) DragEnd() {
	o.lifted = -1
}

// Reset restores the default permutation, discarding the persisted one.
func (o *Order) Reset() {
	o.modules = append([]model.ModuleID{}, o.defaults...)
	o.lifted = -1
	_ = store.WriteSlot(o.store, store.SlotModuleOrder, o.modules)
}
