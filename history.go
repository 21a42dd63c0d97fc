package beadgrid

// History is a linear undo log: snapshots plus a cursor at the live state.
// Committing after an undo discards the abandoned redo branch.
//
// Every stored snapshot is a deep copy and every returned grid is a fresh
// copy, so nothing the caller does to a grid can reach into the log.
type History struct {
	snapshots []Grid
	cursor    int
}

func NewHistory(initial Grid) *History {
	return &History{snapshots: []Grid{initial.Clone()}}
}

// Commit drops every snapshot after the cursor, appends g and moves the
// cursor onto it.
func (h *History) Commit(g Grid) {
	tail := h.snapshots[h.cursor+1:]
	clear(tail)
	h.snapshots = append(h.snapshots[:h.cursor+1], g.Clone())
	h.cursor = len(h.snapshots) - 1
}

// Undo steps back and returns the new current snapshot. At the start of
// history it is a no-op and returns the current snapshot.
func (h *History) Undo() Grid {
	if h.CanUndo() {
		h.cursor--
	}
	return h.Current()
}

// Redo steps forward and returns the new current snapshot. At the end of
// history it is a no-op and returns the current snapshot.
func (h *History) Redo() Grid {
	if h.CanRedo() {
		h.cursor++
	}
	return h.Current()
}

func (h *History) CanUndo() bool { return h.cursor > 0 }

func (h *History) CanRedo() bool { return h.cursor < len(h.snapshots)-1 }

// Current returns a copy of the snapshot at the cursor.
func (h *History) Current() Grid {
	return h.snapshots[h.cursor].Clone()
}

func (h *History) Cursor() int { return h.cursor }

func (h *History) Len() int { return len(h.snapshots) }
