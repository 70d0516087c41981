// Package server provides the local development server for sketch projects.
//
// It assembles a Fiber application that serves a sketch directory as static
// files, tagging every request with a ray ID and logging it through zap. The
// serve command owns the listen lifecycle; this package only builds the app
// and its configuration.
package server
