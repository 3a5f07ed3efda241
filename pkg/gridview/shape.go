package gridview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/go-drift/gridview/pkg/errors"
)

// ShapeType selects how cells without a background drawable are painted.
// The integer values are stable and match the persisted attribute indices.
type ShapeType int

const (
	// ShapeRectangle fills the cell bounds.
	ShapeRectangle ShapeType = iota
	// ShapeCircle draws a circle centered in the cell.
	ShapeCircle
	// ShapeSquare fills the cell bounds. This is the default.
	ShapeSquare
	// ShapeTriangle draws an upward triangle with its base on the cell bottom.
	ShapeTriangle
)

var shapeNames = [...]string{
	ShapeRectangle: "rectangle",
	ShapeCircle:    "circle",
	ShapeSquare:    "square",
	ShapeTriangle:  "triangle",
}

// maxSuggestionDistance bounds how far a misspelling may be from a shape name
// before no suggestion is offered.
const maxSuggestionDistance = 3

// ShapeFromIndex maps a persisted attribute index to a ShapeType.
func ShapeFromIndex(i int) (ShapeType, error) {
	s := ShapeType(i)
	if !s.Valid() {
		return 0, &errors.ParseError{Field: "shapeType", Value: strconv.Itoa(i), Err: errors.ErrUnknownShape}
	}
	return s, nil
}

// ParseShape accepts a shape name (case-insensitive) or its index.
// Unknown names return an error wrapping ErrUnknownShape, with the closest
// name as a suggestion when one is near.
func ParseShape(name string) (ShapeType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range shapeNames {
		if n == key {
			return ShapeType(i), nil
		}
	}
	if i, err := strconv.Atoi(key); err == nil {
		return ShapeFromIndex(i)
	}
	return 0, &errors.ParseError{
		Field:      "shapeType",
		Value:      name,
		Suggestion: suggestShape(key),
		Err:        errors.ErrUnknownShape,
	}
}

func suggestShape(key string) string {
	best, bestDist := "", maxSuggestionDistance+1
	for _, n := range shapeNames {
		if d := levenshtein.ComputeDistance(key, n); d < bestDist {
			best, bestDist = n, d
		}
	}
	return best
}

// Valid reports whether s is one of the defined shapes.
func (s ShapeType) Valid() bool {
	return s >= ShapeRectangle && s <= ShapeTriangle
}

func (s ShapeType) String() string {
	if !s.Valid() {
		return fmt.Sprintf("ShapeType(%d)", int(s))
	}
	return shapeNames[s]
}

// MarshalText encodes the shape by name.
func (s ShapeType) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.ParseError{Field: "shapeType", Value: strconv.Itoa(int(s)), Err: errors.ErrUnknownShape}
	}
	return []byte(shapeNames[s]), nil
}

// UnmarshalText decodes a shape name or index.
func (s *ShapeType) UnmarshalText(text []byte) error {
	v, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
