package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/gridview/cmd/gridview/internal/preview"
	"github.com/go-drift/gridview/cmd/gridview/internal/watch"
	"github.com/go-drift/gridview/pkg/gridview"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Preview a grid in the terminal",
		Long: `Draw the grid in the terminal and report clicked cells.

The grid fills the terminal, two pixels per character row. Left clicks are
delivered to the grid as taps and the selected cell is shown in the status
line. The config file is watched and reloaded when it changes; press r to
reload by hand and q to quit.

Flags:
  --config, -c FILE     Grid definition (.yaml, .yml or .toml)`,
		Usage: "gridview preview [--config FILE]",
		Run:   runPreview,
	})
}

func runPreview(args []string) error {
	opts, rest, err := parseGridArgs(args)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("unexpected argument %q", rest[0])
	}

	logger := gridview.Logger()

	var watcher *watch.Watcher
	if opts.configPath != "" {
		watcher, err = watch.New(opts.configPath, logger)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", opts.configPath, err)
		}
		defer watcher.Close()
	}

	model, err := preview.New(func() (*gridview.GridView, error) {
		return loadGrid(opts.configPath)
	}, watcher, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
