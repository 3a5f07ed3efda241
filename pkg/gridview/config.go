package gridview

import (
	"github.com/go-drift/gridview/pkg/errors"
	"github.com/go-drift/gridview/pkg/graphics"
)

// Default configuration values.
const (
	DefaultNumRows     = 3
	DefaultNumColumns  = 3
	DefaultCellPadding = 10
	DefaultCellMargin  = 10
)

// Config holds everything a GridView is constructed from.
type Config struct {
	// NumRows and NumColumns size the grid. Both must be at least 1.
	NumRows    int
	NumColumns int
	// CellPadding insets the outermost cells from the padded area.
	CellPadding float64
	// CellMargin separates adjacent cells.
	CellMargin float64
	// CellColor fills shapes drawn in cells without a background.
	CellColor graphics.Color
	// ShapeType selects the fallback shape.
	ShapeType ShapeType
	// Background, if set, is stretched over the padded area behind the cells.
	Background graphics.Drawable
	// Padding is the widget's own padding.
	Padding graphics.EdgeInsets
	// MinSize is the suggested minimum size used during measurement.
	MinSize graphics.Size
}

// DefaultConfig returns a 3x3 grid of white squares with 10px padding and margin.
func DefaultConfig() Config {
	return Config{
		NumRows:     DefaultNumRows,
		NumColumns:  DefaultNumColumns,
		CellPadding: DefaultCellPadding,
		CellMargin:  DefaultCellMargin,
		CellColor:   graphics.ColorWhite,
		ShapeType:   ShapeSquare,
	}
}

// Validate checks counts, spacing and shape. All problems are joined.
func (c Config) Validate() error {
	var errs []error
	if c.NumRows < 1 {
		errs = append(errs, &errors.DimensionError{Field: "numRows", Value: float64(c.NumRows)})
	}
	if c.NumColumns < 1 {
		errs = append(errs, &errors.DimensionError{Field: "numColumns", Value: float64(c.NumColumns)})
	}
	if c.CellPadding < 0 {
		errs = append(errs, &errors.DimensionError{Field: "cellPadding", Value: c.CellPadding})
	}
	if c.CellMargin < 0 {
		errs = append(errs, &errors.DimensionError{Field: "cellMargin", Value: c.CellMargin})
	}
	if p := c.Padding; p.Left < 0 || p.Top < 0 || p.Right < 0 || p.Bottom < 0 {
		errs = append(errs, &errors.DimensionError{Field: "padding", Value: min(p.Left, p.Top, p.Right, p.Bottom)})
	}
	if !c.ShapeType.Valid() {
		errs = append(errs, errors.ErrUnknownShape)
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.New("gridview.Config.Validate", errors.KindConfig, errors.Join(errs...))
}
