package errors

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestGridErrorString(t *testing.T) {
	err := &GridError{
		Op:   "gridview.SetNumColumns",
		Kind: KindConfig,
		Err:  &DimensionError{Field: "numColumns", Value: 0},
	}
	want := "gridview.SetNumColumns [config]: numColumns = 0: grid dimension must be at least 1"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !Is(err, ErrInvalidDimension) {
		t.Error("GridError should unwrap to ErrInvalidDimension")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindIndex, "index"},
		{KindParsing, "parsing"},
		{KindRender, "render"},
		{KindPanic, "panic"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestDimensionErrorUnwrap(t *testing.T) {
	tests := []struct {
		field string
		want  error
	}{
		{"numRows", ErrInvalidDimension},
		{"numColumns", ErrInvalidDimension},
		{"cellPadding", ErrNegativeSpacing},
		{"cellMargin", ErrNegativeSpacing},
	}
	for _, tt := range tests {
		err := &DimensionError{Field: tt.field, Value: -1}
		if !Is(err, tt.want) {
			t.Errorf("%s: Is(%v) = false", tt.field, tt.want)
		}
	}
}

func TestIndexError(t *testing.T) {
	var err error = &GridError{Op: "gridview.SetCellBackground", Kind: KindIndex, Err: &IndexError{Row: 3, Column: 0, Rows: 3, Columns: 3}}
	if !Is(err, ErrIndexOutOfRange) {
		t.Fatal("expected ErrIndexOutOfRange")
	}
	var ie *IndexError
	if !As(err, &ie) {
		t.Fatal("As(*IndexError) failed")
	}
	if ie.Row != 3 || ie.Rows != 3 {
		t.Errorf("unexpected IndexError %+v", ie)
	}
	if !strings.Contains(err.Error(), "cell (3, 0) outside 3x3 grid") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestParseErrorString(t *testing.T) {
	err := &ParseError{Field: "shapeType", Value: "cirle", Suggestion: "circle", Err: ErrUnknownShape}
	want := `invalid shapeType "cirle": unknown shape type (did you mean "circle"?)`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !Is(err, ErrUnknownShape) {
		t.Error("ParseError should unwrap to its cause")
	}
}

func TestPanicErrorString(t *testing.T) {
	tests := []struct {
		err  *PanicError
		want string
	}{
		{&PanicError{Value: "test panic"}, "panic: test panic"},
		{&PanicError{Op: "gridview.OnTouch", Value: "test panic"}, "panic in gridview.OnTouch: test panic"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestReport(t *testing.T) {
	var captured *GridError
	handler := &testHandler{onError: func(err *GridError) { captured = err }}

	old := DefaultHandler
	SetHandler(handler)
	defer SetHandler(old)

	Report(New("test.op", KindRender, ErrUnknownShape))

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
	Report(nil)
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{onPanic: func(err *PanicError) { captured = err }}

	old := DefaultHandler
	SetHandler(handler)
	defer SetHandler(old)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v", captured.Value)
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected stack trace")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	old := DefaultHandler
	SetHandler(&testHandler{})
	defer SetHandler(old)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()
	if got != 42 {
		t.Errorf("callback received %v, want 42", got)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: slog.New(slog.NewTextHandler(&buf, nil)), Verbose: true}

	h.HandleError(&GridError{Op: "gridview.Draw", Kind: KindRender, Err: ErrUnknownShape, StackTrace: "frame"})
	h.HandlePanic(&PanicError{Op: "gridview.OnTouch", Value: "boom", Timestamp: time.Now()})
	h.HandleError(nil)
	h.HandlePanic(nil)

	out := buf.String()
	for _, want := range []string{"op=gridview.Draw", "kind=render", "stack=frame", "value=boom", "op=gridview.OnTouch"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

type testHandler struct {
	onError func(*GridError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *GridError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
