package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/gridview/cmd/gridview/internal/config"
	"github.com/go-drift/gridview/pkg/graphics"
	"github.com/go-drift/gridview/pkg/gridview"
)

const defaultSize = "300x300"

// gridOptions are the flags shared by commands that build a grid.
type gridOptions struct {
	configPath string
	size       graphics.Size
}

// parseGridArgs consumes --config/-c and --size, returning the remaining
// arguments in order. Flags it does not know are returned as positionals
// for the caller to handle.
func parseGridArgs(args []string) (gridOptions, []string, error) {
	opts := gridOptions{}
	sizeArg := defaultSize
	var rest []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--config" || arg == "-c":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("%s requires a file path", arg)
			}
			opts.configPath = args[i+1]
			i++
		case strings.HasPrefix(arg, "--config="):
			opts.configPath = strings.TrimPrefix(arg, "--config=")
		case arg == "--size":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("--size requires WIDTHxHEIGHT")
			}
			sizeArg = args[i+1]
			i++
		case strings.HasPrefix(arg, "--size="):
			sizeArg = strings.TrimPrefix(arg, "--size=")
		default:
			rest = append(rest, arg)
		}
	}
	size, err := parseSize(sizeArg)
	if err != nil {
		return opts, nil, err
	}
	opts.size = size
	return opts, rest, nil
}

// parseSize reads WIDTHxHEIGHT in whole pixels.
func parseSize(s string) (graphics.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return graphics.Size{}, fmt.Errorf("invalid size %q (want WIDTHxHEIGHT)", s)
	}
	width, errW := strconv.Atoi(w)
	height, errH := strconv.Atoi(h)
	if errW != nil || errH != nil || width < 1 || height < 1 {
		return graphics.Size{}, fmt.Errorf("invalid size %q (want positive WIDTHxHEIGHT)", s)
	}
	return graphics.Size{Width: float64(width), Height: float64(height)}, nil
}

// loadGrid builds the widget described by path, or the default grid when
// path is empty.
func loadGrid(path string) (*gridview.GridView, error) {
	if path == "" {
		return gridview.New(gridview.DefaultConfig())
	}
	f, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	g, err := f.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
