package sentinel

import (
	"errors"
	"fmt"
)

// Error kinds. State-guard and parse errors always propagate to the caller;
// ErrCountMismatch is only surfaced through validation reports.
var (
	ErrType                  = errors.New("invalid argument")
	ErrParse                 = errors.New("parse error")
	ErrEmptyTable            = errors.New("table has no data rows")
	ErrMetadataParse         = errors.New("metadata parse error")
	ErrNotReady              = errors.New("not ready")
	ErrAlreadyReady          = errors.New("already ready")
	ErrAlreadyBuilt          = errors.New("already built")
	ErrFailed                = errors.New("failed")
	ErrDeveloperNameNotFound = errors.New("developer name not found")
	ErrNotUpdated            = errors.New("record maps not updated")
	ErrEmptyExtract          = errors.New("destination extract is empty")
	ErrCountMismatch         = errors.New("count mismatch")
)

// ParseError reports a malformed tabular extract.
// Row is 1-indexed over data rows; zero means the header or the file itself.
type ParseError struct {
	File string
	Row  int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("parse %s: row %d: %v", e.File, e.Row, e.Err)
	}

	return fmt.Sprintf("parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes every ParseError match ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// MetadataParseError reports a metadata document that could not be decoded.
type MetadataParseError struct {
	Object string
	Err    error
}

func (e *MetadataParseError) Error() string {
	return fmt.Sprintf("parse %s sharing rules: %v", e.Object, e.Err)
}

func (e *MetadataParseError) Unwrap() error { return e.Err }

// Is makes every MetadataParseError match ErrMetadataParse.
func (e *MetadataParseError) Is(target error) bool { return target == ErrMetadataParse }

// DeveloperNameNotFoundError lists the DeveloperNames that had no destination
// record, with near matches when any exist.
type DeveloperNameNotFoundError struct {
	Names       []string
	Suggestions map[string][]string
}

func (e *DeveloperNameNotFoundError) Error() string {
	if len(e.Names) == 1 {
		msg := fmt.Sprintf("developer name %q not found", e.Names[0])
		if s := e.Suggestions[e.Names[0]]; len(s) > 0 {
			msg += fmt.Sprintf(" (did you mean %q?)", s[0])
		}

		return msg
	}

	return fmt.Sprintf("%d developer names not found, first %q", len(e.Names), e.Names[0])
}

// Is makes every DeveloperNameNotFoundError match ErrDeveloperNameNotFound.
func (e *DeveloperNameNotFoundError) Is(target error) bool {
	return target == ErrDeveloperNameNotFound
}
