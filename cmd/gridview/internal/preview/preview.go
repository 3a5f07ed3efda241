// Package preview hosts a grid in the terminal. The widget is rasterised at
// one pixel per column and two per row, drawn with half-block characters,
// and mouse presses are delivered to it as pointer events.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/gridview/cmd/gridview/internal/watch"
	"github.com/go-drift/gridview/pkg/errors"
	"github.com/go-drift/gridview/pkg/gestures"
	"github.com/go-drift/gridview/pkg/graphics"
	"github.com/go-drift/gridview/pkg/gridview"
	"github.com/go-drift/gridview/pkg/layout"
	"github.com/go-drift/gridview/pkg/raster"
)

// Loader builds the widget for the preview. It is called again on reload.
type Loader func() (*gridview.GridView, error)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hitStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Model is the bubbletea model for the preview.
type Model struct {
	load    Loader
	watcher *watch.Watcher
	logger  *slog.Logger

	grid   *gridview.GridView
	host   *layout.Host
	canvas *raster.Canvas

	cols, rows int
	frame      string
	status     string
	err        error
	pointerID  int64
	tapped     bool
}

// New builds the first widget with load. watcher may be nil.
func New(load Loader, watcher *watch.Watcher, logger *slog.Logger) (*Model, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &Model{load: load, watcher: watcher, logger: logger}
	g, err := load()
	if err != nil {
		return nil, err
	}
	m.install(g)
	m.status = "click a cell, r reloads, q quits"
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Next()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.reload()
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.tap(msg.X, msg.Y)
		}

	case watch.ConfigChangedMsg:
		m.logger.Debug("reloading", "path", msg.Path)
		m.reload()
		return m, m.watcher.Next()
	}
	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.frame)
	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
	case m.tapped:
		b.WriteString(hitStyle.Render(m.status))
	default:
		b.WriteString(statusStyle.Render(m.status))
	}
	return b.String()
}

// Status returns the status line text.
func (m *Model) Status() string {
	return m.status
}

// Err returns the last reload error, if any.
func (m *Model) Err() error {
	return m.err
}

// Grid returns the widget being previewed.
func (m *Model) Grid() *gridview.GridView {
	return m.grid
}

func (m *Model) install(g *gridview.GridView) {
	m.grid = g
	g.SetOnCellClickListener(gridview.CellClickFunc(func(row, column int) {
		m.status = fmt.Sprintf("tapped row %d, column %d", row, column)
		m.tapped = true
	}))
	m.host = layout.NewHost(g, m.pixelSize())
	m.render()
}

func (m *Model) reload() {
	g, err := m.load()
	if err != nil {
		m.err = err
		report := errors.New("preview.reload", errors.KindParsing, err)
		if ge := (*errors.GridError)(nil); errors.As(err, &ge) {
			report = errors.New("preview.reload", ge.Kind, err)
		}
		errors.Report(report)
		return
	}
	m.err = nil
	m.install(g)
	m.status = "reloaded"
	m.tapped = false
}

// pixelSize is the raster size for the terminal, leaving one row for status.
func (m *Model) pixelSize() graphics.Size {
	rows := max(m.rows-1, 0)
	return graphics.Size{Width: float64(m.cols), Height: float64(rows * 2)}
}

func (m *Model) resize(cols, rows int) {
	m.cols, m.rows = cols, rows
	if m.canvas != nil {
		m.canvas.Close()
		m.canvas = nil
	}
	m.host.Resize(m.pixelSize())
	m.render()
}

func (m *Model) tap(col, row int) {
	// Sample the middle of the terminal cell.
	pos := graphics.Offset{X: float64(col) + 0.5, Y: float64(row)*2 + 1}
	m.pointerID++
	m.tapped = false
	down := gestures.PointerEvent{PointerID: m.pointerID, Position: pos, Phase: gestures.PointerPhaseDown}
	if !m.host.DispatchPointer(down) {
		m.status = fmt.Sprintf("outside (%d, %d)", col, row)
	}
	up := down
	up.Phase = gestures.PointerPhaseUp
	m.host.DispatchPointer(up)
}

func (m *Model) render() {
	size := m.pixelSize()
	if size.IsEmpty() {
		m.frame = ""
		return
	}
	if m.canvas == nil {
		m.canvas = raster.New(int(size.Width), int(size.Height))
	}
	m.canvas.Clear(graphics.ColorTransparent)
	m.host.Record().Paint(m.canvas)
	m.frame = halfBlocks(m.canvas.Image())
}

// halfBlocks renders img two pixel rows per line using the upper half block,
// foreground for the top pixel and background for the bottom one.
func halfBlocks(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top, topOK := terminalColor(img.At(x, y))
			var bottom lipgloss.Color
			bottomOK := false
			if y+1 < b.Max.Y {
				bottom, bottomOK = terminalColor(img.At(x, y+1))
			}
			switch {
			case topOK && bottomOK:
				sb.WriteString(lipgloss.NewStyle().Foreground(top).Background(bottom).Render("▀"))
			case topOK:
				sb.WriteString(lipgloss.NewStyle().Foreground(top).Render("▀"))
			case bottomOK:
				sb.WriteString(lipgloss.NewStyle().Foreground(bottom).Render("▄"))
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// terminalColor converts c to a hex colour, treating mostly transparent
// pixels as empty.
func terminalColor(c color.Color) (lipgloss.Color, bool) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A < 0x80 {
		return "", false
	}
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)), true
}
