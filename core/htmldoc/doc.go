// Package htmldoc adapts HTML documents for the reconciliation engine.
//
// It wraps a parsed goquery document and exposes exactly the operations the
// engine needs: enumerating script elements in document order, reading and
// rewriting their src attribute, locating a comment marker inside <head>,
// replacing nodes, inserting a node as the first child of <head>, and
// serializing the tree back to markup.
//
// # Head detection
//
// The HTML5 parser synthesizes <html>, <head> and <body> elements even when
// the source never declared them. Whether the *source* declared a head is a
// distinct question the engine cares about (a fragment like "<p>hi</p>" has
// no place to insert a library reference), so HasHead answers it by
// tokenizing the raw input rather than inspecting the parsed tree.
package htmldoc
