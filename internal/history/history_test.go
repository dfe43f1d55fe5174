package history

import "testing"

func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}

func TestUndoRedoOrdering(t *testing.T) {
	m := New(0, cloneInts)

	a := []int{1}
	b := []int{2}
	c := []int{3}

	m.SaveState(a)
	m.SaveState(b)

	state, ok := m.Undo(c)
	if !ok {
		t.Fatal("undo should be available")
	}
	if state[0] != 2 {
		t.Errorf("first undo = %v, want B", state)
	}

	state, ok = m.Undo(state)
	if !ok {
		t.Fatal("second undo should be available")
	}
	if state[0] != 1 {
		t.Errorf("second undo = %v, want A", state)
	}

	state, ok = m.Redo(state)
	if !ok || state[0] != 2 {
		t.Errorf("first redo = %v, want B", state)
	}
	state, ok = m.Redo(state)
	if !ok || state[0] != 3 {
		t.Errorf("second redo = %v, want C", state)
	}
}

func TestUndo_Empty(t *testing.T) {
	m := New(0, cloneInts)
	if _, ok := m.Undo([]int{1}); ok {
		t.Error("undo on empty stack should report unavailable")
	}
	if _, ok := m.Redo([]int{1}); ok {
		t.Error("redo on empty stack should report unavailable")
	}
}

func TestSaveState_ClearsRedo(t *testing.T) {
	m := New(0, cloneInts)
	m.SaveState([]int{1})
	if _, ok := m.Undo([]int{2}); !ok {
		t.Fatal("undo should succeed")
	}
	if !m.CanRedo() {
		t.Fatal("redo should be available after undo")
	}

	m.SaveState([]int{3})
	if m.CanRedo() {
		t.Error("a new save must clear the redo stack")
	}
}

func TestMaxHistoryEviction(t *testing.T) {
	m := New(3, cloneInts)
	for i := 1; i <= 4; i++ {
		m.SaveState([]int{i})
	}

	if len(m.undoStack) != 3 {
		t.Fatalf("undo stack length = %d, want 3", len(m.undoStack))
	}
	// Oldest save evicted; the bottom of the stack is the second save.
	if m.undoStack[0][0] != 2 {
		t.Errorf("undoStack[0] = %v, want the second-oldest save", m.undoStack[0])
	}
}

func TestSnapshotsAreIndependent(t *testing.T) {
	m := New(0, cloneInts)
	live := []int{1, 2, 3}
	m.SaveState(live)

	live[0] = 99
	state, ok := m.Undo(live)
	if !ok {
		t.Fatal("undo should be available")
	}
	if state[0] != 1 {
		t.Errorf("snapshot mutated along with live state: %v", state)
	}
}

func TestClear(t *testing.T) {
	m := New(0, cloneInts)
	m.SaveState([]int{1})
	m.Undo([]int{2})

	m.Clear()
	if m.CanUndo() || m.CanRedo() {
		t.Error("Clear should empty both stacks")
	}
}
