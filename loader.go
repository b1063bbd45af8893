package expenses

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LoadError reports that the backing file exists but could not be read as
// a well-formed list of valid expenses. It is fatal for the Load call, but
// the caller may choose to warn the user and proceed with an empty ledger.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not load ledger file %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load replaces the in-memory list with the content of the backing file.
// A missing file is not an error: it is the first run, and the ledger is
// simply reset to empty. Any other failure wraps into a *LoadError.
func (l *Ledger) Load() error {
	f, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		l.expenses = nil
		return nil
	}
	if err != nil {
		return &LoadError{Path: l.path, Err: err}
	}
	defer f.Close()

	expenses, err := DecodeLedger(f)
	if err != nil {
		return &LoadError{Path: l.path, Err: err}
	}
	l.expenses = expenses
	return nil
}

// Save overwrites the backing file with the whole in-memory list. The file
// is rewritten in full on every save; there is no incremental append.
// Filesystem failures propagate directly, there is no retry.
func (l *Ledger) Save() error {
	f, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", l.path, err)
	}
	defer f.Close()

	if err := EncodeLedger(f, l); err != nil {
		return fmt.Errorf("error writing ledger file %q: %w", l.path, err)
	}
	return nil
}
