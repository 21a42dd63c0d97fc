package beadgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryScenario(t *testing.T) {
	g0, err := NewGrid(3, 3)
	require.NoError(t, err)
	g1 := g0.Paint(0, 0, red)
	g2 := g1.Paint(1, 1, blue)
	g3 := g1.Paint(2, 2, green)

	h := NewHistory(g0)
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	h.Commit(g1)
	h.Commit(g2)
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 2, h.Cursor())

	assert.True(t, h.Undo().Equal(g1))
	assert.True(t, h.Undo().Equal(g0))
	assert.True(t, h.Undo().Equal(g0), "undo at start is a no-op")
	assert.Equal(t, 0, h.Cursor())

	assert.True(t, h.Redo().Equal(g1))
	h.Commit(g3)
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 2, h.Cursor())
	assert.True(t, h.Current().Equal(g3))

	assert.False(t, h.CanRedo())
	assert.True(t, h.Redo().Equal(g3), "redo branch was discarded")
	assert.Equal(t, 2, h.Cursor())

	assert.True(t, h.Undo().Equal(g1))
	assert.True(t, h.Undo().Equal(g0))
}

func TestHistoryUndoRestoresPreviousState(t *testing.T) {
	g0, err := NewGrid(2, 2)
	require.NoError(t, err)
	h := NewHistory(g0)
	prev := g0
	for i, c := range []Color{red, green, blue} {
		next := prev.Paint(i%2, i/2, c)
		h.Commit(next)
		assert.True(t, h.Undo().Equal(prev))
		assert.True(t, h.Redo().Equal(next))
		prev = next
	}
}

func TestHistoryCanUndoRedo(t *testing.T) {
	g0, err := NewGrid(2, 2)
	require.NoError(t, err)
	h := NewHistory(g0)
	for i := range 4 {
		h.Commit(g0.Paint(i%2, i/2, red))
	}
	for h.CanUndo() {
		assert.Equal(t, h.Cursor() > 0, h.CanUndo())
		assert.Equal(t, h.Cursor() < h.Len()-1, h.CanRedo())
		h.Undo()
	}
	assert.Equal(t, 0, h.Cursor())
	assert.True(t, h.CanRedo())
}

func TestHistorySnapshotsAreIndependent(t *testing.T) {
	g0, err := NewGrid(2, 2)
	require.NoError(t, err)
	h := NewHistory(g0)

	live := g0.Paint(0, 0, red)
	h.Commit(live)
	// Mutate the live grid's storage directly; stored snapshots must not see it.
	live.cells[0] = blue
	assert.Equal(t, red, h.Current().At(0, 0))

	cur := h.Current()
	cur.cells[1] = green
	assert.Equal(t, Empty, h.Current().At(1, 0))

	undone := h.Undo()
	undone.cells[0] = green
	assert.Equal(t, Empty, h.Current().At(0, 0))
}
