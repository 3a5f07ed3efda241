package cmd

import (
	"fmt"

	"github.com/go-drift/gridview/pkg/layout"
	"github.com/go-drift/gridview/pkg/raster"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a grid to PNG",
		Long: `Render the grid at the given size and write it as a PNG image.

Flags:
  --config, -c FILE     Grid definition (.yaml, .yml or .toml)
  --size WxH            Widget size in pixels (default: 300x300)
  --output, -o FILE     Output path (default: grid.png)`,
		Usage: "gridview render [--config FILE] [--size WxH] [-o FILE]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	opts, rest, err := parseGridArgs(args)
	if err != nil {
		return err
	}
	output := "grid.png"
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case "--output", "-o":
			if i+1 >= len(rest) {
				return fmt.Errorf("%s requires a file path", rest[i])
			}
			output = rest[i+1]
			i++
		default:
			return fmt.Errorf("unexpected argument %q", rest[i])
		}
	}

	g, err := loadGrid(opts.configPath)
	if err != nil {
		return err
	}

	canvas := raster.New(int(opts.size.Width), int(opts.size.Height))
	defer canvas.Close()

	layout.NewHost(g, opts.size).Record().Paint(canvas)

	if err := canvas.SavePNG(output); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	fmt.Fprintf(stdout, "Wrote %s (%gx%g, %dx%d cells)\n",
		output, opts.size.Width, opts.size.Height, g.Config().NumRows, g.Config().NumColumns)
	return nil
}
