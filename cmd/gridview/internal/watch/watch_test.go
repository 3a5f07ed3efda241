package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func waitMsg(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher")
		return nil
	}
}

func TestNextReportsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.yaml")
	if err := os.WriteFile(path, []byte("numRows: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	cmd := w.Next()
	go func() {
		// Unrelated files in the same directory are ignored.
		_ = os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644)
		time.Sleep(50 * time.Millisecond)
		_ = os.WriteFile(path, []byte("numRows: 4\n"), 0o644)
	}()

	msg := waitMsg(t, cmd)
	changed, ok := msg.(ConfigChangedMsg)
	if !ok {
		t.Fatalf("msg = %#v, want ConfigChangedMsg", msg)
	}
	if changed.Path != w.Path() {
		t.Errorf("Path = %q, want %q", changed.Path, w.Path())
	}
}

func TestNextAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := New(path, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if msg := waitMsg(t, w.Next()); msg != nil {
		t.Errorf("msg after Close = %#v, want nil", msg)
	}
}

func TestNewMissingDirectory(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing", "grid.yaml"), nil); err == nil {
		t.Error("New succeeded for a missing directory")
	}
}
