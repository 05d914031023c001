package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"devdash/internal/model"
	"devdash/internal/store"
)

func testStore(t *testing.T) store.Store {
	t.Helper()
	return store.New(t.TempDir(), zap.NewNop())
}

func TestReconcile_IdempotentOnExactMatch(t *testing.T) {
	def := model.DefaultModuleOrder()
	got := Reconcile(def, def)
	assert.Equal(t, def, got)
}

func TestReconcile_AlwaysYieldsExactPermutation(t *testing.T) {
	def := model.DefaultModuleOrder()

	cases := []struct {
		name  string
		saved []model.ModuleID
	}{
		{"empty", nil},
		{"unknown ids dropped", []model.ModuleID{"weather", model.ModuleNotes, "stocks"}},
		{"missing ids appended", []model.ModuleID{model.ModuleLearningLog, model.ModuleTasks}},
		{"duplicates collapsed", []model.ModuleID{model.ModuleNotes, model.ModuleNotes, model.ModuleTasks}},
		{"full shuffle", []model.ModuleID{
			model.ModuleLearningLog, model.ModuleAssistant, model.ModuleSnippets,
			model.ModulePrompts, model.ModulePomodoro, model.ModuleNotes, model.ModuleTasks,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Reconcile(tc.saved, def)
			require.Len(t, got, len(def), "no omissions, no extras")
			seen := map[model.ModuleID]bool{}
			for _, id := range got {
				assert.False(t, seen[id], "duplicate %q", id)
				seen[id] = true
				assert.Contains(t, def, id, "foreign id %q", id)
			}
		})
	}
}

func TestReconcile_KeepsSavedOrderForSurvivors(t *testing.T) {
	def := model.DefaultModuleOrder()
	saved := []model.ModuleID{model.ModulePomodoro, "gone-widget", model.ModuleTasks}
	got := Reconcile(saved, def)
	assert.Equal(t, model.ModulePomodoro, got[0])
	assert.Equal(t, model.ModuleTasks, got[1])
	// The remaining defaults follow in default order.
	assert.Equal(t, model.ModuleNotes, got[2])
}

func TestOrder_DragLiveReorderAndPersist(t *testing.T) {
	s := testStore(t)
	o := NewOrder(s, model.DefaultModuleOrder())

	// Lift "tasks" (index 0) and hover over index 2.
	o.DragStart(0)
	o.DragOver(2)
	assert.Equal(t, 2, o.Lifted(), "lifted index follows the hover")
	assert.Equal(t, model.ModuleTasks, o.Modules()[2])

	// Keep hovering: the permutation updates live.
	o.DragOver(1)
	assert.Equal(t, model.ModuleTasks, o.Modules()[1])
	o.DragEnd()
	assert.Equal(t, -1, o.Lifted())

	// The final hover order is what persisted.
	reloaded := NewOrder(s, model.DefaultModuleOrder())
	assert.Equal(t, o.Modules(), reloaded.Modules())
}

func TestOrder_DragOverWithoutLiftIsNoop(t *testing.T) {
	s := testStore(t)
	o := NewOrder(s, model.DefaultModuleOrder())
	before := append([]model.ModuleID{}, o.Modules()...)
	o.DragOver(3)
	assert.Equal(t, before, o.Modules())
}

func TestOrder_Reset(t *testing.T) {
	s := testStore(t)
	o := NewOrder(s, model.DefaultModuleOrder())
	o.DragStart(0)
	o.DragOver(4)
	o.DragEnd()

	o.Reset()
	assert.Equal(t, model.DefaultModuleOrder(), o.Modules())

	reloaded := NewOrder(s, model.DefaultModuleOrder())
	assert.Equal(t, model.DefaultModuleOrder(), reloaded.Modules())
}

func TestResize_ClampsExactlyAtBoundaries(t *testing.T) {
	s := testStore(t)
	r := NewResize(s, model.ModulePrompts, 700, 400, 1000)

	r.DragStart(50)
	r.DragMove(50 - 10000) // way past the floor
	assert.Equal(t, 400, r.Height(), "clamp exactly at min, never beyond")

	r.DragMove(50 + 10000)
	assert.Equal(t, 1000, r.Height(), "clamp exactly at max")

	r.DragMove(50 + 100)
	assert.Equal(t, 800, r.Height())
	r.DragEnd()
	assert.False(t, r.Dragging())

	// Final height persisted and re-clamped on load.
	again := NewResize(s, model.ModulePrompts, 700, 400, 1000)
	assert.Equal(t, 800, again.Height())
}

func TestResize_MoveWithoutDragIsNoop(t *testing.T) {
	s := testStore(t)
	r := NewResize(s, model.ModuleSnippets, 600, 400, 1000)
	r.DragMove(999)
	assert.Equal(t, 600, r.Height())
}

func TestResize_AdjustPersists(t *testing.T) {
	s := testStore(t)
	r := NewResize(s, model.ModuleSnippets, 600, 400, 1000)
	r.Adjust(-300)
	assert.Equal(t, 400, r.Height())

	again := NewResize(s, model.ModuleSnippets, 600, 400, 1000)
	assert.Equal(t, 400, again.Height())
}
