package beadgrid

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/setanarut/beadgrid/internal/logging"
)

type Tool int

const (
	ToolDraw Tool = iota
	ToolErase
)

func (t Tool) String() string {
	switch t {
	case ToolErase:
		return "erase"
	default:
		return "draw"
	}
}

// Editor is one editing session: the live grid, its history, the palette
// and the active tool and color.
//
// Every change that produces a new grid is committed to history, so paint,
// clear, resize and import are each undoable. Methods are safe to call from
// the goroutine that completes an asynchronous import; otherwise the
// editor expects one caller at a time.
type Editor struct {
	mu       sync.Mutex
	log      *slog.Logger
	palette  Palette
	importer *Importer
	beadSize int

	grid     Grid
	history  *History
	tool     Tool
	selected Color

	stroking bool
	last     image.Point

	importSeq    uint64
	cancelImport context.CancelFunc
}

func NewEditor(opts Options) (*Editor, error) {
	if err := opts.Palette.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(ClampSize(opts.Width), ClampSize(opts.Height))
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	beadSize := opts.BeadSize
	if beadSize < 1 {
		beadSize = DefaultBeadSize
	}
	palette := Palette(append([]Color(nil), opts.Palette...))
	importer := NewImporter(palette)
	if opts.Sampler != nil {
		importer.Sampler = opts.Sampler
	}
	if opts.AlphaThreshold != 0 {
		importer.AlphaThreshold = opts.AlphaThreshold
	}
	e := &Editor{
		log:      logger,
		palette:  palette,
		importer: importer,
		beadSize: beadSize,
		grid:     grid,
		history:  NewHistory(grid),
		tool:     ToolDraw,
		selected: palette[0],
		last:     image.Pt(-1, -1),
	}
	e.log.Debug("editor created", "width", grid.Width(), "height", grid.Height(), "palette", len(palette))
	return e, nil
}

// Grid returns a copy of the live grid.
func (e *Editor) Grid() Grid {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.Clone()
}

// Palette returns a copy of the session palette without any custom color.
func (e *Editor) Palette() Palette {
	return append(Palette(nil), e.palette...)
}

// Swatches is the palette as shown for selection: the session palette plus
// the selected color when it is a custom one. Custom colors are never used
// for import matching.
func (e *Editor) Swatches() Palette {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.palette.WithCustom(e.selected)
}

func (e *Editor) Tool() Tool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tool
}

func (e *Editor) SetTool(t Tool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tool = t
}

func (e *Editor) Selected() Color {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selected
}

// SelectColor makes c the paint color and switches to the draw tool.
// c need not be in the palette.
func (e *Editor) SelectColor(c Color) error {
	if c.IsEmpty() {
		return fmt.Errorf("%w: cannot select transparent, use the erase tool", ErrInvalidColor)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selected = c
	e.tool = ToolDraw
	return nil
}

// CellAt maps a pointer position in on-screen pixels to the cell under it,
// clamped to the grid.
func (e *Editor) CellAt(px, py float64) image.Point {
	e.mu.Lock()
	defer e.mu.Unlock()
	bs := float64(e.beadSize)
	x := int(math.Floor(px / bs))
	y := int(math.Floor(py / bs))
	return image.Pt(
		max(0, min(x, e.grid.Width()-1)),
		max(0, min(y, e.grid.Height()-1)),
	)
}

// Paint applies the active tool to one cell. Out-of-range coordinates are
// ignored. It reports whether a new grid state was committed.
func (e *Editor) Paint(x, y int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paint(x, y)
}

func (e *Editor) paint(x, y int) bool {
	if !e.grid.In(x, y) {
		return false
	}
	c := e.selected
	if e.tool == ToolErase {
		c = Empty
	}
	if e.grid.At(x, y) == c {
		return false
	}
	e.commit(e.grid.Paint(x, y, c), "paint")
	return true
}

// BeginStroke starts a drag and paints the first cell.
func (e *Editor) BeginStroke(x, y int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stroking = true
	e.last = image.Pt(x, y)
	return e.paint(x, y)
}

// StrokeTo paints the cell under a moving pointer. Staying on the cell
// painted last does nothing, so each entered cell is committed once.
func (e *Editor) StrokeTo(x, y int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	p := image.Pt(x, y)
	if !e.stroking || p == e.last {
		return false
	}
	e.last = p
	return e.paint(x, y)
}

func (e *Editor) EndStroke() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stroking = false
	e.last = image.Pt(-1, -1)
}

// Resize changes the grid size, clamping each dimension to
// [MinSize, MaxSize]. Overlapping cells are kept. A size change is one
// undo step; asking for the current size commits nothing.
func (e *Editor) Resize(width, height int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	width, height = ClampSize(width), ClampSize(height)
	if width == e.grid.Width() && height == e.grid.Height() {
		return nil
	}
	g, err := e.grid.Resize(width, height)
	if err != nil {
		return err
	}
	e.log.Info("grid resized", "from", e.grid.Size(), "to", g.Size())
	e.commit(g, "resize")
	return nil
}

// Clear empties every cell as one undo step.
func (e *Editor) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.commit(e.grid.Clear(), "clear")
}

// Undo reports whether it moved. At the start of history it does nothing.
func (e *Editor) Undo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.history.CanUndo() {
		return false
	}
	e.grid = e.history.Undo()
	e.log.Debug("undo", "cursor", e.history.Cursor(), "len", e.history.Len())
	return true
}

// Redo reports whether it moved. At the end of history it does nothing.
func (e *Editor) Redo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.history.CanRedo() {
		return false
	}
	e.grid = e.history.Redo()
	e.log.Debug("redo", "cursor", e.history.Cursor(), "len", e.history.Len())
	return true
}

func (e *Editor) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.CanUndo()
}

func (e *Editor) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.CanRedo()
}

// Steps returns the history cursor and the number of stored states.
func (e *Editor) Steps() (cursor, total int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Cursor(), e.history.Len()
}

// Import replaces the grid with img approximated onto the palette, at the
// current grid size, as one undo step. On error nothing changes.
func (e *Editor) Import(img image.Image) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.applyImport(img)
}

// ImportReader decodes r and imports the result.
func (e *Editor) ImportReader(r io.Reader) error {
	img, _, err := Decode(r)
	if err != nil {
		e.log.Warn("import failed", "error", err)
		return err
	}
	return e.Import(img)
}

// ImportAsync decodes r on its own goroutine and imports the result when
// decoding finishes. Only one import is in flight: starting another cancels
// this one, which then reports ErrImportSuperseded and commits nothing.
// The channel receives exactly one value. A nil ctx means
// context.Background.
func (e *Editor) ImportAsync(ctx context.Context, r io.Reader) <-chan error {
	if ctx == nil {
		ctx = context.Background()
	}
	e.mu.Lock()
	if e.cancelImport != nil {
		e.cancelImport()
	}
	ctx, cancel := context.WithCancel(ctx)
	e.importSeq++
	seq := e.importSeq
	e.cancelImport = cancel
	e.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		defer cancel()
		img, _, err := Decode(r)
		done <- e.finishImport(ctx, seq, img, err)
	}()
	return done
}

func (e *Editor) finishImport(ctx context.Context, seq uint64, img image.Image, decodeErr error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if seq != e.importSeq {
		e.log.Warn("import dropped", "error", ErrImportSuperseded)
		return ErrImportSuperseded
	}
	e.cancelImport = nil
	if err := ctx.Err(); err != nil {
		return err
	}
	if decodeErr != nil {
		e.log.Warn("import failed", "error", decodeErr)
		return decodeErr
	}
	return e.applyImport(img)
}

func (e *Editor) applyImport(img image.Image) error {
	g, err := e.importer.Import(img, e.grid.Width(), e.grid.Height())
	if err != nil {
		e.log.Warn("import failed", "error", err)
		return err
	}
	e.log.Info("image imported", "size", g.Size(), "beads", g.BeadCount())
	e.commit(g, "import")
	return nil
}

// BeadCount is the number of beads in the live grid.
func (e *Editor) BeadCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.BeadCount()
}

// Export writes the live grid as a PNG pattern.
func (e *Editor) Export(w io.Writer, opts RenderOptions) error {
	return EncodePNG(w, e.Grid(), opts)
}

func (e *Editor) commit(g Grid, op string) {
	e.grid = g
	e.history.Commit(g)
	e.log.Debug("commit", "op", op, "cursor", e.history.Cursor(), "len", e.history.Len())
}
