// Package config loads grid definitions from YAML or TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	griderrors "github.com/go-drift/gridview/pkg/errors"
	"github.com/go-drift/gridview/pkg/graphics"
	"github.com/go-drift/gridview/pkg/gridview"
)

// SupportedMajor is the only file format major version this build reads.
const SupportedMajor = "v1"

// File is a grid definition as written on disk. Unset fields keep the
// widget defaults.
type File struct {
	Version            string    `yaml:"version" toml:"version"`
	NumRows            *int      `yaml:"numRows" toml:"numRows"`
	NumColumns         *int      `yaml:"numColumns" toml:"numColumns"`
	CellPadding        *float64  `yaml:"cellPadding" toml:"cellPadding"`
	CellMargin         *float64  `yaml:"cellMargin" toml:"cellMargin"`
	CellColor          string    `yaml:"cellColor" toml:"cellColor"`
	ShapeType          any       `yaml:"shapeType" toml:"shapeType"`
	BackgroundDrawable string    `yaml:"backgroundDrawable" toml:"backgroundDrawable"`
	Padding            []float64 `yaml:"padding" toml:"padding"`
	MinWidth           float64   `yaml:"minWidth" toml:"minWidth"`
	MinHeight          float64   `yaml:"minHeight" toml:"minHeight"`
	Cells              []Cell    `yaml:"cells" toml:"cells"`

	// Path is the file the definition was read from.
	Path string `yaml:"-" toml:"-"`
}

// Cell assigns a drawable to one grid cell.
type Cell struct {
	Row      int    `yaml:"row" toml:"row"`
	Column   int    `yaml:"column" toml:"column"`
	Drawable string `yaml:"drawable" toml:"drawable"`
}

// Load reads and decodes the definition at path. The format is chosen by
// extension: .yaml, .yml or .toml.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	f := &File{Path: path}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to parse %s: unknown field %q", path, undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .yaml, .yml or .toml)", ext)
	}

	if err := checkVersion(f.Version); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func checkVersion(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return &griderrors.ParseError{Field: "version", Value: v, Err: errors.New("not a semantic version")}
	}
	if major := semver.Major(v); major != SupportedMajor {
		return &griderrors.ParseError{
			Field: "version",
			Value: v,
			Err:   fmt.Errorf("major version %s not supported (want %s)", major, SupportedMajor),
		}
	}
	return nil
}

// Config converts the definition into a widget configuration.
func (f *File) Config() (gridview.Config, error) {
	cfg := gridview.DefaultConfig()
	if f.NumRows != nil {
		cfg.NumRows = *f.NumRows
	}
	if f.NumColumns != nil {
		cfg.NumColumns = *f.NumColumns
	}
	if f.CellPadding != nil {
		cfg.CellPadding = *f.CellPadding
	}
	if f.CellMargin != nil {
		cfg.CellMargin = *f.CellMargin
	}
	if f.CellColor != "" {
		c, err := graphics.ParseColor(f.CellColor)
		if err != nil {
			return cfg, &griderrors.ParseError{Field: "cellColor", Value: f.CellColor, Err: err}
		}
		cfg.CellColor = c
	}
	if f.ShapeType != nil {
		shape, err := parseShape(f.ShapeType)
		if err != nil {
			return cfg, err
		}
		cfg.ShapeType = shape
	}
	if f.BackgroundDrawable != "" {
		d, err := f.drawable("backgroundDrawable", f.BackgroundDrawable)
		if err != nil {
			return cfg, err
		}
		cfg.Background = d
	}
	padding, err := parsePadding(f.Padding)
	if err != nil {
		return cfg, err
	}
	cfg.Padding = padding
	cfg.MinSize = graphics.Size{Width: f.MinWidth, Height: f.MinHeight}
	return cfg, nil
}

// Build constructs the widget and installs the per-cell drawables.
func (f *File) Build() (*gridview.GridView, error) {
	cfg, err := f.Config()
	if err != nil {
		return nil, err
	}
	g, err := gridview.New(cfg)
	if err != nil {
		return nil, err
	}
	for i, c := range f.Cells {
		d, err := f.drawable(fmt.Sprintf("cells[%d].drawable", i), c.Drawable)
		if err != nil {
			return nil, err
		}
		if err := g.SetCellBackground(d, c.Row, c.Column); err != nil {
			return nil, fmt.Errorf("cells[%d]: %w", i, err)
		}
	}
	return g, nil
}

// drawable interprets value as a colour, or failing that as an image path
// relative to the definition file.
func (f *File) drawable(field, value string) (graphics.Drawable, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, &griderrors.ParseError{Field: field, Value: value, Err: errors.New("empty drawable")}
	}
	if c, err := graphics.ParseColor(value); err == nil {
		return graphics.ColorDrawable{Color: c}, nil
	}
	path := value
	if !filepath.IsAbs(path) && f.Path != "" {
		path = filepath.Join(filepath.Dir(f.Path), path)
	}
	d, err := graphics.LoadImageDrawable(path)
	if err != nil {
		return nil, &griderrors.ParseError{Field: field, Value: value, Err: err}
	}
	return d, nil
}

func parseShape(v any) (gridview.ShapeType, error) {
	switch s := v.(type) {
	case string:
		return gridview.ParseShape(s)
	case int:
		return gridview.ShapeFromIndex(s)
	case int64:
		return gridview.ShapeFromIndex(int(s))
	case uint64:
		return gridview.ShapeFromIndex(int(s))
	case float64:
		if s == float64(int(s)) {
			return gridview.ShapeFromIndex(int(s))
		}
	}
	return 0, &griderrors.ParseError{Field: "shapeType", Value: fmt.Sprint(v), Err: griderrors.ErrUnknownShape}
}

// parsePadding expands CSS-style shorthand: [all], [vertical, horizontal] or
// [left, top, right, bottom].
func parsePadding(p []float64) (graphics.EdgeInsets, error) {
	switch len(p) {
	case 0:
		return graphics.EdgeInsets{}, nil
	case 1:
		return graphics.EdgeInsetsAll(p[0]), nil
	case 2:
		return graphics.EdgeInsetsSymmetric(p[0], p[1]), nil
	case 4:
		return graphics.EdgeInsets{Left: p[0], Top: p[1], Right: p[2], Bottom: p[3]}, nil
	default:
		return graphics.EdgeInsets{}, &griderrors.ParseError{
			Field: "padding",
			Value: strconv.Itoa(len(p)) + " values",
			Err:   errors.New("want 1, 2 or 4 values"),
		}
	}
}
