// Package registry fetches p5.js release information and artifacts.
//
// It talks to the npm registry for the published version list and downloads
// library artifacts (the library itself, its type definitions) over plain
// HTTPS. Whether a caller-chosen version actually exists remotely is not
// validated here; callers pick from the fetched list.
//
// # Client Interface
//
// The Client interface abstracts the registry, making it easy to mock
// network interactions for unit testing (see core/registry/mocks).
//
// # Version helpers
//
// Sorted and Latest order versions newest-first using semantic versioning;
// tokens that do not parse as semver sort after those that do.
package registry
