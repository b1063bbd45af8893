package expenses

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// this file handles ingestion of expense exports produced by other tools.
// The document shape varies from tool to tool, so each expense field is
// located with a JSONPath expression selecting one column of values. The
// four columns are zipped into records and validated exactly like data
// loaded from the backing file.

// ImportMapping locates each expense field in a foreign JSON document.
type ImportMapping struct {
	Date        string
	Category    string
	Description string
	Amount      string
}

// DefaultImportMapping matches documents that already are arrays of
// expense-like objects, i.e. this tool's own backing file format.
func DefaultImportMapping() ImportMapping {
	return ImportMapping{
		Date:        "$[*].date",
		Category:    "$[*].category",
		Description: "$[*].description",
		Amount:      "$[*].amount",
	}
}

// ImportExpenses reads a foreign JSON document from 'r' and extracts
// expenses according to the mapping. The four selected columns must have
// the same length; a row failing validation aborts the whole import.
func ImportExpenses(r io.Reader, m ImportMapping) ([]Expense, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse import document: %w", err)
	}

	dates, err := selectColumn(doc, m.Date)
	if err != nil {
		return nil, err
	}
	categories, err := selectColumn(doc, m.Category)
	if err != nil {
		return nil, err
	}
	descriptions, err := selectColumn(doc, m.Description)
	if err != nil {
		return nil, err
	}
	amounts, err := selectColumn(doc, m.Amount)
	if err != nil {
		return nil, err
	}

	n := len(dates)
	if len(categories) != n || len(descriptions) != n || len(amounts) != n {
		return nil, fmt.Errorf("mismatched columns: %d dates, %d categories, %d descriptions, %d amounts",
			n, len(categories), len(descriptions), len(amounts))
	}

	expenses := make([]Expense, 0, n)
	for i := 0; i < n; i++ {
		rec := map[string]any{
			"date":        dates[i],
			"category":    categories[i],
			"description": descriptions[i],
			"amount":      amounts[i],
		}
		e, err := FromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("invalid expense at row %d: %w", i, err)
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

// selectColumn evaluates one JSONPath expression against the document.
func selectColumn(doc any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate jsonpath %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list
	// of answers or a single answer: normalize to a list.
	if jlist, ok := jval.([]any); ok {
		return jlist, nil
	}
	return []any{jval}, nil
}
