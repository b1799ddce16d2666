// Package storage is the file layer every stage reads extracts from and
// writes artifacts to. It wraps a go-billy filesystem so runs work the same
// against a directory on disk and an in-memory tree in tests.
package storage
