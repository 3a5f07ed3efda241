package cmd

import (
	"fmt"
	"strconv"

	"github.com/go-drift/gridview/pkg/gestures"
	"github.com/go-drift/gridview/pkg/graphics"
	"github.com/go-drift/gridview/pkg/gridview"
	"github.com/go-drift/gridview/pkg/layout"
)

func init() {
	RegisterCommand(&Command{
		Name:  "hit",
		Short: "Resolve a tap position to a cell",
		Long: `Lay out the grid and report which cell a tap at (X, Y) selects.

Prints "row R, column C" for a cell, or "outside" when the position is
in the padding or beyond the last cell.

Flags:
  --config, -c FILE     Grid definition (.yaml, .yml or .toml)
  --size WxH            Widget size in pixels (default: 300x300)`,
		Usage: "gridview hit [--config FILE] [--size WxH] X Y",
		Run:   runHit,
	})
}

func runHit(args []string) error {
	opts, rest, err := parseGridArgs(args)
	if err != nil {
		return err
	}
	if len(rest) != 2 {
		return fmt.Errorf("X and Y are required\n\nUsage: gridview hit [--config FILE] [--size WxH] X Y")
	}
	x, err := strconv.ParseFloat(rest[0], 64)
	if err != nil {
		return fmt.Errorf("invalid X %q: %w", rest[0], err)
	}
	y, err := strconv.ParseFloat(rest[1], 64)
	if err != nil {
		return fmt.Errorf("invalid Y %q: %w", rest[1], err)
	}

	g, err := loadGrid(opts.configPath)
	if err != nil {
		return err
	}

	row, column, ok := tap(g, opts.size, graphics.Offset{X: x, Y: y})
	if !ok {
		fmt.Fprintln(stdout, "outside")
		return nil
	}
	fmt.Fprintf(stdout, "row %d, column %d\n", row, column)
	return nil
}

// tap delivers a press at pos to g laid out at size and returns the cell
// its listener received.
func tap(g *gridview.GridView, size graphics.Size, pos graphics.Offset) (row, column int, ok bool) {
	g.SetOnCellClickListener(gridview.CellClickFunc(func(r, c int) {
		row, column, ok = r, c, true
	}))
	defer g.SetOnCellClickListener(nil)

	host := layout.NewHost(g, size)
	host.DispatchPointer(gestures.PointerEvent{PointerID: 1, Position: pos, Phase: gestures.PointerPhaseDown})
	return row, column, ok
}
