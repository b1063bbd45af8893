package expenses

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts are persisted as bare JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeLedger writes the whole ledger to 'w' as a pretty-printed JSON
// array. Each expense keeps the canonical field order (date, category,
// description, amount), so the output is stable across runs.
func EncodeLedger(w io.Writer, l *Ledger) error {
	list := l.expenses
	if list == nil {
		list = []Expense{} // an empty ledger encodes as [], not null
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode ledger: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("could not write ledger: %w", err)
	}
	return nil
}

// DecodeLedger reads a whole ledger document from 'r'. The document must
// be a JSON array of expense records; anything else, or any record that
// fails validation, fails the whole decode. There is no partial result
// and no silent skip of bad rows.
func DecodeLedger(r io.Reader) ([]Expense, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] != '[' {
		return nil, errors.New("ledger document must be a JSON array")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber() // keep amounts exact until they are parsed as decimals
	var records []map[string]any
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("malformed ledger document: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("malformed ledger document: trailing data after array")
	}

	expenses := make([]Expense, 0, len(records))
	for i, rec := range records {
		e, err := FromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("invalid expense at index %d: %w", i, err)
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}
