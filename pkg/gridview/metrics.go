package gridview

import (
	"iter"
	"math"

	"github.com/go-drift/gridview/pkg/graphics"
)

// Cell identifies one grid slot.
type Cell struct {
	Row    int
	Column int
}

// Metrics is the layout derived from a size and a configuration.
type Metrics struct {
	// Size is the widget size the metrics were computed for.
	Size graphics.Size
	// Content is the padded drawable area.
	Content graphics.Rect
	// CellWidth and CellHeight are the dimensions of every cell.
	CellWidth  float64
	CellHeight float64

	rows, columns int
	padding       graphics.EdgeInsets
	cellPadding   float64
	cellMargin    float64
}

// ComputeMetrics derives the cell layout for a widget of the given size.
//
// The cell extent subtracts the leading padding and the cell padding twice
// on each axis and the margin only between cells:
//
//	cellWidth = (drawableWidth - (numColumns-1)*cellMargin - 2*padLeft - 2*cellPadding) / numColumns
//
// Callers must pass a validated Config; counts below 1 yield zero-sized cells.
func ComputeMetrics(size graphics.Size, cfg Config) Metrics {
	content := cfg.Padding.Deflate(graphics.Rect{Right: size.Width, Bottom: size.Height})
	m := Metrics{
		Size:        size,
		Content:     content,
		rows:        cfg.NumRows,
		columns:     cfg.NumColumns,
		padding:     cfg.Padding,
		cellPadding: cfg.CellPadding,
		cellMargin:  cfg.CellMargin,
	}
	if cfg.NumRows < 1 || cfg.NumColumns < 1 {
		return m
	}
	drawableWidth := content.Width()
	drawableHeight := content.Height()
	m.CellWidth = (drawableWidth - float64(cfg.NumColumns-1)*cfg.CellMargin -
		2*cfg.Padding.Left - 2*cfg.CellPadding) / float64(cfg.NumColumns)
	m.CellHeight = (drawableHeight - float64(cfg.NumRows-1)*cfg.CellMargin -
		2*cfg.Padding.Top - 2*cfg.CellPadding) / float64(cfg.NumRows)
	return m
}

// Rows returns the number of rows the metrics cover.
func (m Metrics) Rows() int { return m.rows }

// Columns returns the number of columns the metrics cover.
func (m Metrics) Columns() int { return m.columns }

// Valid reports whether every cell has a positive extent.
func (m Metrics) Valid() bool {
	return m.rows > 0 && m.columns > 0 && m.CellWidth > 0 && m.CellHeight > 0
}

// CellBounds returns the drawn bounds of the cell at (row, column).
func (m Metrics) CellBounds(row, column int) graphics.Rect {
	left := m.padding.Left + float64(column)*(m.CellWidth+m.cellMargin) + m.cellPadding
	top := m.padding.Top + float64(row)*(m.CellHeight+m.cellMargin) + m.cellPadding
	return graphics.Rect{
		Left:   left,
		Top:    top,
		Right:  left + m.CellWidth,
		Bottom: top + m.CellHeight,
	}
}

// CellAt maps a local position to a cell. The mapping measures from the
// padded origin in steps of cell extent plus margin; cell padding is not
// subtracted, so the tappable slot is offset from the drawn cell by it.
func (m Metrics) CellAt(x, y float64) (row, column int, ok bool) {
	stepX := m.CellWidth + m.cellMargin
	stepY := m.CellHeight + m.cellMargin
	if stepX <= 0 || stepY <= 0 {
		return 0, 0, false
	}
	column = int(math.Floor((x - m.padding.Left) / stepX))
	row = int(math.Floor((y - m.padding.Top) / stepY))
	ok = row >= 0 && row < m.rows && column >= 0 && column < m.columns
	return row, column, ok
}

// Cells yields every cell and its bounds in row-major order.
func (m Metrics) Cells() iter.Seq2[Cell, graphics.Rect] {
	return func(yield func(Cell, graphics.Rect) bool) {
		for row := range m.rows {
			for column := range m.columns {
				if !yield(Cell{Row: row, Column: column}, m.CellBounds(row, column)) {
					return
				}
			}
		}
	}
}
