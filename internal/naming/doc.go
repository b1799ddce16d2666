// Package naming derives DeveloperNames for destination records.
//
// A DeveloperName starts with a letter, contains only ASCII letters, digits
// and single underscores, does not end with an underscore and is at most
// MaxLength characters long. Names are unique per Allocator, compared
// case-insensitively as the destination system does.
//
// Key functions:
//   - Slug: deterministic display-name to DeveloperName transform
//   - Allocator.Assign: slug plus numeric collision suffixes ("_2", "_3", ...)
//   - Suggest: near matches for a name that failed to resolve
package naming
