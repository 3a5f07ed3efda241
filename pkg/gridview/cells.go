package gridview

import (
	"github.com/go-drift/gridview/pkg/errors"
	"github.com/go-drift/gridview/pkg/graphics"
)

// CellGrid stores an optional drawable per cell in row-major order.
// The zero value is an empty 0x0 grid.
type CellGrid struct {
	rows, columns int
	cells         []graphics.Drawable
}

// NewCellGrid allocates an empty rows x columns grid.
// Negative dimensions are treated as zero.
func NewCellGrid(rows, columns int) *CellGrid {
	rows, columns = max(rows, 0), max(columns, 0)
	return &CellGrid{
		rows:    rows,
		columns: columns,
		cells:   make([]graphics.Drawable, rows*columns),
	}
}

// Rows returns the number of rows.
func (g *CellGrid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *CellGrid) Columns() int { return g.columns }

// Len returns the number of cells that hold a drawable.
func (g *CellGrid) Len() int {
	n := 0
	for _, d := range g.cells {
		if d != nil {
			n++
		}
	}
	return n
}

func (g *CellGrid) index(row, column int) (int, error) {
	if row < 0 || row >= g.rows || column < 0 || column >= g.columns {
		return 0, &errors.IndexError{Row: row, Column: column, Rows: g.rows, Columns: g.columns}
	}
	return row*g.columns + column, nil
}

// Get returns the drawable at (row, column), or nil if none is set.
func (g *CellGrid) Get(row, column int) (graphics.Drawable, error) {
	i, err := g.index(row, column)
	if err != nil {
		return nil, err
	}
	return g.cells[i], nil
}

// at returns the drawable at an index already known to be in range.
func (g *CellGrid) at(row, column int) graphics.Drawable {
	return g.cells[row*g.columns+column]
}

// Set stores d at (row, column). A nil d clears the cell.
func (g *CellGrid) Set(row, column int, d graphics.Drawable) error {
	i, err := g.index(row, column)
	if err != nil {
		return err
	}
	g.cells[i] = d
	return nil
}

// Clear removes the drawable at (row, column).
func (g *CellGrid) Clear(row, column int) error {
	return g.Set(row, column, nil)
}

// Resize changes the grid dimensions, keeping entries whose indices remain
// in range and dropping the rest.
func (g *CellGrid) Resize(rows, columns int) {
	rows, columns = max(rows, 0), max(columns, 0)
	if rows == g.rows && columns == g.columns {
		return
	}
	cells := make([]graphics.Drawable, rows*columns)
	for r := range min(rows, g.rows) {
		for c := range min(columns, g.columns) {
			cells[r*columns+c] = g.cells[r*g.columns+c]
		}
	}
	g.rows, g.columns, g.cells = rows, columns, cells
}

// Each calls fn for every cell holding a drawable, in row-major order.
func (g *CellGrid) Each(fn func(row, column int, d graphics.Drawable)) {
	for i, d := range g.cells {
		if d != nil {
			fn(i/g.columns, i%g.columns, d)
		}
	}
}
