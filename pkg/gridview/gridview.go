// Package gridview implements a grid of evenly spaced cells drawn as shapes or
// per-cell drawables, with taps mapped back to (row, column).
//
// A GridView is both a layout.Renderable, for hosts that drive
// measure/draw/touch callbacks directly, and a layout.RenderObject, for hosts
// built on the layout pipeline. All methods must be called from the host's
// single UI goroutine.
package gridview

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/go-drift/gridview/pkg/errors"
	"github.com/go-drift/gridview/pkg/gestures"
	"github.com/go-drift/gridview/pkg/graphics"
	"github.com/go-drift/gridview/pkg/layout"
)

// CellClickListener is notified when a press lands inside a cell.
type CellClickListener interface {
	OnCellClick(row, column int)
}

// CellClickFunc adapts a function to CellClickListener.
type CellClickFunc func(row, column int)

// OnCellClick calls f(row, column).
func (f CellClickFunc) OnCellClick(row, column int) {
	f(row, column)
}

// GridView renders a configurable grid and reports cell clicks.
type GridView struct {
	layout.RenderBoxBase

	cfg      Config
	cells    *CellGrid
	fill     graphics.Paint
	triangle *graphics.Path
	listener CellClickListener

	metrics      Metrics
	metricsValid bool

	// Size used when no layout pass has run: the last Measure result, or
	// the canvas size of the first Draw.
	laidOut  bool
	measured graphics.Size
}

var (
	_ layout.Renderable     = (*GridView)(nil)
	_ layout.RenderObject   = (*GridView)(nil)
	_ layout.PointerHandler = (*GridView)(nil)
)

// New validates cfg and returns a grid ready to be laid out.
func New(cfg Config) (*GridView, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &GridView{
		cfg:      cfg,
		cells:    NewCellGrid(cfg.NumRows, cfg.NumColumns),
		fill:     graphics.DefaultPaint(),
		triangle: graphics.NewPath(),
	}
	g.fill.Style = graphics.PaintStyleFill
	g.fill.AntiAlias = true
	g.fill.Color = cfg.CellColor
	g.SetSelf(g)
	return g, nil
}

// Config returns a copy of the current configuration.
func (g *GridView) Config() Config {
	return g.cfg
}

// Metrics returns the cell layout for the current size, computing it if no
// draw pass has run since the last change.
func (g *GridView) Metrics() Metrics {
	if size := g.extent(); !g.metricsValid || g.metrics.Size != size {
		g.metrics = ComputeMetrics(size, g.cfg)
		g.metricsValid = true
	}
	return g.metrics
}

// Measure reports the suggested minimum size plus padding, resolved against c.
// The grid's row and column counts do not influence the result.
func (g *GridView) Measure(c layout.Constraints) graphics.Size {
	suggested := g.cfg.MinSize
	if g.cfg.Background != nil {
		intrinsic := g.cfg.Background.IntrinsicSize()
		suggested.Width = max(suggested.Width, intrinsic.Width)
		suggested.Height = max(suggested.Height, intrinsic.Height)
	}
	g.measured = c.Constrain(graphics.Size{
		Width:  suggested.Width + g.cfg.Padding.Horizontal(),
		Height: suggested.Height + g.cfg.Padding.Vertical(),
	})
	return g.measured
}

// PerformLayout sizes the grid from its constraints.
func (g *GridView) PerformLayout() {
	g.SetSize(g.Measure(g.Constraints()))
	g.laidOut = true
	g.metricsValid = false
}

// extent is the size cells are computed against. Hosts that only call
// Measure, Draw and OnTouch never run a layout pass.
func (g *GridView) extent() graphics.Size {
	if g.laidOut {
		return g.Size()
	}
	return g.measured
}

// Paint draws the grid through the pipeline's paint context.
func (g *GridView) Paint(ctx *layout.PaintContext) {
	g.Draw(ctx.Canvas)
}

// Draw paints the background and every cell onto canvas.
// Panics raised by drawables are recovered and reported; a panicking cell
// does not stop the remaining cells from painting.
func (g *GridView) Draw(canvas graphics.Canvas) {
	defer errors.Recover("gridview.Draw")

	if !g.laidOut && g.measured.IsEmpty() {
		g.measured = canvas.Size()
	}
	size := g.extent()
	content := g.cfg.Padding.Deflate(graphics.Rect{Right: size.Width, Bottom: size.Height})
	if g.cfg.Background != nil {
		g.cfg.Background.Draw(canvas, content)
	} else {
		canvas.Clear(graphics.ColorTransparent)
	}

	g.metrics = ComputeMetrics(size, g.cfg)
	g.metricsValid = true
	m := g.metrics
	if !m.Valid() {
		errors.Report(errors.New("gridview.Draw", errors.KindRender,
			fmt.Errorf("%w: cell size %gx%g", errors.ErrNoRoom, m.CellWidth, m.CellHeight)))
		return
	}
	Logger().Debug("gridview: draw",
		slog.Int("rows", m.Rows()),
		slog.Int("columns", m.Columns()),
		slog.Float64("cellWidth", m.CellWidth),
		slog.Float64("cellHeight", m.CellHeight))

	for cell, bounds := range m.Cells() {
		g.drawCell(canvas, cell, bounds)
	}
}

func (g *GridView) drawCell(canvas graphics.Canvas, cell Cell, bounds graphics.Rect) {
	d := g.cells.at(cell.Row, cell.Column)
	if d == nil {
		g.drawShape(canvas, bounds)
		return
	}
	defer errors.RecoverWithCallback("gridview.Draw", func(any) {
		Logger().Warn("gridview: cell drawable panicked",
			slog.Int("row", cell.Row), slog.Int("column", cell.Column))
	})
	d.Draw(canvas, bounds)
}

func (g *GridView) drawShape(canvas graphics.Canvas, bounds graphics.Rect) {
	switch g.cfg.ShapeType {
	case ShapeCircle:
		radius := min(bounds.Width(), bounds.Height()) / 2
		canvas.DrawCircle(bounds.Center(), radius, g.fill)
	case ShapeTriangle:
		g.triangle.Clear()
		g.triangle.MoveTo(bounds.Left+bounds.Width()/2, bounds.Top)
		g.triangle.LineTo(bounds.Left, bounds.Bottom)
		g.triangle.LineTo(bounds.Right, bounds.Bottom)
		g.triangle.Close()
		canvas.DrawPath(g.triangle, g.fill)
	default:
		canvas.DrawRect(bounds, g.fill)
	}
}

// OnTouch resolves a press to a cell and notifies the listener.
// Only press-down events are handled. It reports whether the event landed
// inside a cell; other events are left to the host's default handling.
func (g *GridView) OnTouch(event gestures.PointerEvent) bool {
	if event.Phase != gestures.PointerPhaseDown {
		return false
	}
	row, column, ok := g.Metrics().CellAt(event.Position.X, event.Position.Y)
	if !ok {
		return false
	}
	Logger().Debug("gridview: cell click", slog.Int("row", row), slog.Int("column", column))
	g.notify(row, column)
	return true
}

func (g *GridView) notify(row, column int) {
	if g.listener == nil {
		return
	}
	defer errors.Recover("gridview.OnCellClick")
	g.listener.OnCellClick(row, column)
}

// HitTest adds the grid to result when position is inside it.
func (g *GridView) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, g.Size()) {
		return false
	}
	result.Add(g)
	return true
}

// HandlePointer forwards pipeline pointer events to OnTouch.
func (g *GridView) HandlePointer(event gestures.PointerEvent) {
	g.OnTouch(event)
}

// SetOnCellClickListener replaces the click listener. Nil removes it.
func (g *GridView) SetOnCellClickListener(l CellClickListener) {
	g.listener = l
}

func (g *GridView) invalidate() {
	g.metricsValid = false
	g.MarkNeedsPaint()
	g.MarkNeedsLayout()
}

func (g *GridView) reject(op string, kind errors.ErrorKind, err error) error {
	Logger().Warn("gridview: rejected change", slog.String("op", op), slog.Any("err", err))
	return errors.New(op, kind, err)
}

// SetNumRows changes the row count. Existing cell drawables in surviving rows are kept.
func (g *GridView) SetNumRows(rows int) error {
	if rows < 1 {
		return g.reject("gridview.SetNumRows", errors.KindConfig, &errors.DimensionError{Field: "numRows", Value: float64(rows)})
	}
	g.cfg.NumRows = rows
	g.cells.Resize(g.cfg.NumRows, g.cfg.NumColumns)
	g.invalidate()
	return nil
}

// SetNumColumns changes the column count. Existing cell drawables in surviving columns are kept.
func (g *GridView) SetNumColumns(columns int) error {
	if columns < 1 {
		return g.reject("gridview.SetNumColumns", errors.KindConfig, &errors.DimensionError{Field: "numColumns", Value: float64(columns)})
	}
	g.cfg.NumColumns = columns
	g.cells.Resize(g.cfg.NumRows, g.cfg.NumColumns)
	g.invalidate()
	return nil
}

// SetCellPadding changes the inset around the outermost cells.
func (g *GridView) SetCellPadding(padding float64) error {
	if padding < 0 {
		return g.reject("gridview.SetCellPadding", errors.KindConfig, &errors.DimensionError{Field: "cellPadding", Value: padding})
	}
	g.cfg.CellPadding = padding
	g.invalidate()
	return nil
}

// SetCellMargin changes the spacing between adjacent cells.
func (g *GridView) SetCellMargin(margin float64) error {
	if margin < 0 {
		return g.reject("gridview.SetCellMargin", errors.KindConfig, &errors.DimensionError{Field: "cellMargin", Value: margin})
	}
	g.cfg.CellMargin = margin
	g.invalidate()
	return nil
}

// SetCellColor changes the shape fill color.
func (g *GridView) SetCellColor(color graphics.Color) {
	g.cfg.CellColor = color
	g.fill.Color = color
	g.invalidate()
}

// SetShapeType changes the fallback shape.
func (g *GridView) SetShapeType(shape ShapeType) error {
	if !shape.Valid() {
		return g.reject("gridview.SetShapeType", errors.KindConfig,
			&errors.ParseError{Field: "shapeType", Value: strconv.Itoa(int(shape)), Err: errors.ErrUnknownShape})
	}
	g.cfg.ShapeType = shape
	g.invalidate()
	return nil
}

// SetBackground sets the drawable stretched behind the cells. Nil removes it.
func (g *GridView) SetBackground(d graphics.Drawable) {
	g.cfg.Background = d
	g.invalidate()
}

// SetPadding changes the widget's own padding.
func (g *GridView) SetPadding(padding graphics.EdgeInsets) error {
	if padding.Left < 0 || padding.Top < 0 || padding.Right < 0 || padding.Bottom < 0 {
		return g.reject("gridview.SetPadding", errors.KindConfig,
			&errors.DimensionError{Field: "padding", Value: min(padding.Left, padding.Top, padding.Right, padding.Bottom)})
	}
	g.cfg.Padding = padding
	g.invalidate()
	return nil
}

// SetMinSize changes the suggested minimum size used by Measure.
func (g *GridView) SetMinSize(size graphics.Size) {
	g.cfg.MinSize = size
	g.invalidate()
}

// SetCellBackground draws d stretched over the cell at (row, column) instead
// of the shape. Indices outside the grid return an error wrapping
// errors.ErrIndexOutOfRange.
func (g *GridView) SetCellBackground(d graphics.Drawable, row, column int) error {
	if err := g.cells.Set(row, column, d); err != nil {
		return g.reject("gridview.SetCellBackground", errors.KindIndex, err)
	}
	g.invalidate()
	return nil
}

// ClearCellBackground restores the shape at (row, column).
func (g *GridView) ClearCellBackground(row, column int) error {
	if err := g.cells.Clear(row, column); err != nil {
		return g.reject("gridview.ClearCellBackground", errors.KindIndex, err)
	}
	g.invalidate()
	return nil
}

// CellBackground returns the drawable set for (row, column), or nil.
func (g *GridView) CellBackground(row, column int) (graphics.Drawable, error) {
	d, err := g.cells.Get(row, column)
	if err != nil {
		return nil, errors.New("gridview.CellBackground", errors.KindIndex, err)
	}
	return d, nil
}

// CellBackgrounds returns the number of cells holding a drawable.
func (g *GridView) CellBackgrounds() int {
	return g.cells.Len()
}
