// Package expenses provides the core types and persistence for a
// single-user expense ledger. It is designed to be local-first and
// auditable: all data lives in one human-readable JSON file that the
// user fully controls.
//
// The core functionalities include:
//   - Expense: an immutable, validated record of one spending event
//     (date, category, description, amount).
//   - Ledger: the in-memory list of expenses and its file-backed
//     persistence, with totals overall or by category.
//   - Encoding: whole-file, canonical JSON array encoding with a stable
//     field order, so the backing file diffs cleanly under version control.
//   - Import: ingestion of expense data exported by other tools, mapped
//     with JSONPath expressions and validated like any untrusted input.
//
// This package serves as the foundational logic for the `xps` command-line
// tool.
package expenses
