// Package record turns flat tabular extracts into typed in-memory records.
//
// Extracts are delimited text with a header row whose field names match the
// source-system schema exactly (Id, Name, ParentTerritoryId, ...). Parsing
// is strict: a row with the wrong number of columns or broken quoting fails
// the whole table with a *sentinel.ParseError, and a header with no data rows
// reports sentinel.ErrEmptyTable so callers can decide whether that matters.
//
// Typed records are decoded from a Table with Decode, driven by `csv` struct
// tags, and written back with Encode and WriteTable.
package record
