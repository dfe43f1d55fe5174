// Package history provides a two-stack undo/redo manager over deep
// snapshots. The manager never inspects snapshot content; callers supply
// the clone function that makes snapshots independent of live state.
package history

// DefaultMaxHistory bounds the undo stack when no explicit limit is given.
const DefaultMaxHistory = 50

// Manager keeps undo and redo stacks of snapshots of type T.
type Manager[T any] struct {
	undoStack  []T
	redoStack  []T
	maxHistory int
	clone      func(T) T
}

// New creates a manager with the given undo-stack bound. A bound of zero
// or less falls back to DefaultMaxHistory. The clone function must
// return a copy that later mutations of the input cannot affect.
func New[T any](maxHistory int, clone func(T) T) *Manager[T] {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager[T]{maxHistory: maxHistory, clone: clone}
}

// SaveState pushes a deep copy of state onto the undo stack and clears
// the redo stack: a new action invalidates any redo future. The oldest
// undo entry is evicted when the bound is exceeded; the bound applies to
// the undo stack only.
func (m *Manager[T]) SaveState(state T) {
	m.undoStack = append(m.undoStack, m.clone(state))
	m.redoStack = m.redoStack[:0]

	if len(m.undoStack) > m.maxHistory {
		m.undoStack = m.undoStack[1:]
	}
}

// Undo pushes a deep copy of current onto the redo stack and returns the
// most recent undo snapshot. The second return value is false when there
// is nothing to undo; current is then left untouched.
func (m *Manager[T]) Undo(current T) (T, bool) {
	if len(m.undoStack) == 0 {
		var zero T
		return zero, false
	}

	m.redoStack = append(m.redoStack, m.clone(current))

	last := len(m.undoStack) - 1
	state := m.undoStack[last]
	m.undoStack = m.undoStack[:last]
	return state, true
}

// Redo is the mirror image of Undo.
func (m *Manager[T]) Redo(current T) (T, bool) {
	if len(m.redoStack) == 0 {
		var zero T
		return zero, false
	}

	m.undoStack = append(m.undoStack, m.clone(current))

	last := len(m.redoStack) - 1
	state := m.redoStack[last]
	m.redoStack = m.redoStack[:last]
	return state, true
}

// CanUndo reports whether an undo snapshot is available.
func (m *Manager[T]) CanUndo() bool {
	return len(m.undoStack) > 0
}

// CanRedo reports whether a redo snapshot is available.
func (m *Manager[T]) CanRedo() bool {
	return len(m.redoStack) > 0
}

// Clear empties both stacks, e.g. on document reload.
func (m *Manager[T]) Clear() {
	m.undoStack = nil
	m.redoStack = nil
}
