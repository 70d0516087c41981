// Package storage provides an abstraction layer over a sketch project's files.
//
// It wraps an afero filesystem rooted at the project directory so callers can
// read, write, list and delete project files through one narrow interface.
//
// # Store Interface
//
// The Store interface abstracts the underlying filesystem, making it easy to
// run feature code and tests on an in-memory filesystem (afero.NewMemMapFs).
//
// # Operations
//
//   - Read: Retrieves a file's content.
//   - Write: Writes content, creating parent directories as needed.
//   - List: Lists file names directly under a project subdirectory.
//   - Delete: Removes a file.
//   - Exists: Checks for a file's presence.
//
// # Usage
//
//	store := storage.NewStore(afero.NewOsFs(), "/sketches/my-sketch")
//	data, err := store.Read("index.html")
package storage
