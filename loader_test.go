package expenses

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLedger_Load_FirstRun(t *testing.T) {
	l := NewLedger(filepath.Join(t.TempDir(), "expenses.json"))
	// the backing file does not exist: not an error, just empty.
	if err := l.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("Len = %d, want 0", l.Len())
	}
}

func TestLedger_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.json")

	l := NewLedger(path)
	if err := l.Append(mustExpense(t, "2025-12-16", "food", "rice", 5.0)); err != nil {
		t.Fatalf("Append: %v", err)
	}

	fresh := NewLedger(path)
	if err := fresh.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if fresh.Len() != 1 {
		t.Fatalf("Len = %d, want 1", fresh.Len())
	}
	if got := fresh.Total(); !got.Equal(D(5.0)) {
		t.Errorf("Total = %v, want 5", got)
	}
}

func TestLedger_Load_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.json")
	// a JSON object instead of an array must fail the load, never
	// degrade to a silent empty ledger.
	if err := os.WriteFile(path, []byte(`{"oops":1}`), 0644); err != nil {
		t.Fatal(err)
	}

	l := NewLedger(path)
	err := l.Load()
	if err == nil {
		t.Fatal("Load succeeded on a corrupt file, want error")
	}
	var lerr *LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("want *LoadError, got %T: %v", err, err)
	}
	if lerr.Path != path {
		t.Errorf("LoadError.Path = %q, want %q", lerr.Path, path)
	}
	if lerr.Unwrap() == nil {
		t.Error("LoadError must wrap the underlying cause")
	}
}

func TestLedger_Load_ReplacesMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.json")

	l := NewLedger(path)
	if err := l.Append(mustExpense(t, "2025-12-16", "food", "rice", 5.0)); err != nil {
		t.Fatalf("Append: %v", err)
	}

	// remove the file: a reload is a first run again.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if err := l.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("Len = %d after reload, want 0", l.Len())
	}
}

func TestLedger_Save_Failure(t *testing.T) {
	// point the ledger at a path whose parent does not exist.
	l := NewLedger(filepath.Join(t.TempDir(), "no", "such", "dir", "expenses.json"))
	err := l.Append(mustExpense(t, "2025-12-16", "food", "rice", 5.0))
	if err == nil {
		t.Fatal("Append succeeded, want save error")
	}
	// the in-memory append stands even though the save failed.
	if l.Len() != 1 {
		t.Errorf("Len = %d, want 1 (no rollback on save failure)", l.Len())
	}
}
