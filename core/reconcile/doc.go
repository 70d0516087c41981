// Package reconcile keeps the p5.js script reference in a sketch's index.html
// in sync with a chosen version and delivery mode.
//
// A reconciliation call inspects the document for an existing library
// reference, classifies it against the known CDN and local path shapes, and
// rewrites it in place. Documents that have never carried a reference are
// handled through a marker comment left by the project template, and as a
// last resort a fresh script element is inserted at the top of <head>.
//
// # Placement protocol
//
// Exactly one placement decision is made per call, in strict priority order:
//
//  1. An existing classified script reference is updated in place.
//  2. The marker comment is replaced with a fresh script element.
//  3. A fresh script element becomes the first child of <head>, ahead of any
//     stylesheets, so the library is loaded before dependent inline code.
//  4. Nothing applies (no reference, no marker, no declared <head>): the
//     markup is returned untouched and the outcome says so. This is a
//     reported no-op, not an error; callers decide whether it is fatal.
//
// Preferences (minified artifact, CDN provider) are carried forward only
// from an existing reference. The provider survives only while the mode
// stays CDN; switching to local delivery produces a plain relative path with
// no provider artifact. Marker replacement and fresh insertion start from
// defaults, since neither carries prior intent.
//
// The engine is stateless: each call parses, decides, renders and forgets.
package reconcile
