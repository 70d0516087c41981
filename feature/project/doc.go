// Package project scaffolds and maintains p5.js sketch projects.
//
// A sketch project is a directory holding index.html, sketch.js, style.css,
// a sketch.json record, optional local library copies under libraries/, and
// the p5 type definitions under types/ for editor autocompletion.
//
// Generate creates that layout from templates; the index.html template
// carries the library marker comment, so the first reconciliation replaces
// it with a concrete script reference. Update re-reconciles index.html for a
// new version or delivery mode and keeps the local library copy, the type
// definitions and the record in step with whatever the document now says.
//
// The sketch.json record is the source of truth for the version in local
// mode, because local paths are version-opaque.
package project
