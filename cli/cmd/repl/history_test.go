package repl

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHistory_WriteLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("Load() on missing file: %v", err)
	}

	for _, entry := range []string{"{{val|1}}", "  ", "{{val|2}}", "{{val|2}}", "{{val|1}}"} {
		if err := h.Write(entry); err != nil {
			t.Fatalf("Write(%q): %v", entry, err)
		}
	}

	want := []string{"{{val|2}}", "{{val|1}}"}
	if diff := cmp.Diff(want, h.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load(): %v", err)
	}

	if diff := cmp.Diff(want, reloaded.Entries()); diff != "" {
		t.Errorf("reloaded Entries() mismatch (-want +got):\n%s", diff)
	}
}

func TestHistory_Memory(t *testing.T) {
	h := NewHistory("")
	if err := h.Load(); err != nil {
		t.Fatalf("Load(): %v", err)
	}

	if err := h.Write("a"); err != nil {
		t.Fatalf("Write(): %v", err)
	}

	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}

func TestHistory_Line(t *testing.T) {
	h := NewHistory("")
	_ = h.Write("first")
	_ = h.Write("second")

	got, err := h.Line(1)
	if err != nil || got != "second" {
		t.Errorf("Line(1) = (%q, %v), want (%q, nil)", got, err, "second")
	}

	for _, i := range []int{-1, 2} {
		if _, err := h.Line(i); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Line(%d) error = %v, want ErrOutOfBounds", i, err)
		}
	}
}

func TestHistory_LoadDirectory(t *testing.T) {
	if err := NewHistory(t.TempDir()).Load(); !errors.Is(err, ErrHistory) {
		t.Errorf("Load() on directory error = %v, want ErrHistory", err)
	}
}
