package gridview

import (
	"testing"

	"github.com/go-drift/gridview/pkg/errors"
)

func TestShapeFromIndex(t *testing.T) {
	tests := []struct {
		index int
		want  ShapeType
		ok    bool
	}{
		{0, ShapeRectangle, true},
		{1, ShapeCircle, true},
		{2, ShapeSquare, true},
		{3, ShapeTriangle, true},
		{4, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		got, err := ShapeFromIndex(tt.index)
		if tt.ok {
			if err != nil || got != tt.want {
				t.Errorf("ShapeFromIndex(%d) = %v, %v; want %v", tt.index, got, err, tt.want)
			}
			continue
		}
		if !errors.Is(err, errors.ErrUnknownShape) {
			t.Errorf("ShapeFromIndex(%d) err = %v", tt.index, err)
		}
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in         string
		want       ShapeType
		suggestion string
		ok         bool
	}{
		{"circle", ShapeCircle, "", true},
		{" Triangle ", ShapeTriangle, "", true},
		{"SQUARE", ShapeSquare, "", true},
		{"0", ShapeRectangle, "", true},
		{"cirle", 0, "circle", false},
		{"tringle", 0, "triangle", false},
		{"hexagon", 0, "", false},
		{"7", 0, "", false},
	}
	for _, tt := range tests {
		got, err := ParseShape(tt.in)
		if tt.ok {
			if err != nil || got != tt.want {
				t.Errorf("ParseShape(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
			continue
		}
		if !errors.Is(err, errors.ErrUnknownShape) {
			t.Errorf("ParseShape(%q) err = %v", tt.in, err)
			continue
		}
		var pe *errors.ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("ParseShape(%q) err type %T", tt.in, err)
		}
		if pe.Suggestion != tt.suggestion {
			t.Errorf("ParseShape(%q) suggestion = %q, want %q", tt.in, pe.Suggestion, tt.suggestion)
		}
	}
}

func TestShapeText(t *testing.T) {
	for s := ShapeRectangle; s <= ShapeTriangle; s++ {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", s, err)
		}
		var back ShapeType
		if err := back.UnmarshalText(text); err != nil || back != s {
			t.Errorf("UnmarshalText(%q) = %v, %v", text, back, err)
		}
	}
	if _, err := ShapeType(8).MarshalText(); err == nil {
		t.Error("MarshalText should reject unknown shapes")
	}
	if got := ShapeType(8).String(); got != "ShapeType(8)" {
		t.Errorf("String() = %q", got)
	}
	var s ShapeType
	if err := s.UnmarshalText([]byte("blob")); err == nil {
		t.Error("UnmarshalText should reject unknown names")
	}
}
