package reconcile

import (
	"p5-manager/core/htmldoc"
)

// Reconcile rewrites the p5.js reference in markup to point at version under
// the given delivery mode, using package defaults where the document carries
// no prior intent. It is the sole public entry point for callers that have no
// preference of their own.
func Reconcile(markup, version string, mode Mode) (Outcome, error) {
	return ReconcileWithDefaults(markup, version, mode, Preferences{})
}

// ReconcileWithDefaults is Reconcile with explicit fallback preferences,
// used when the caller has intent of its own (e.g. a --minified flag at
// generation time). Preferences extracted from an existing reference still
// win over the fallback: the document is the authority on prior intent.
func ReconcileWithDefaults(markup, version string, mode Mode, defaults Preferences) (Outcome, error) {
	doc, err := htmldoc.Parse(markup)
	if err != nil {
		// Parse failures are the adapter's concern, surfaced unmodified.
		return Outcome{}, err
	}

	// State 1: an existing classified reference is updated in place.
	// Document order is the tie-break; later candidates are ignored so a
	// stray duplicate reference can never make the rewrite ambiguous.
	for _, script := range doc.Scripts() {
		match, ok := Classify(script.Src())
		if !ok {
			continue
		}

		prefs := Preferences{Minified: match.Minified}
		// The provider survives only while the mode stays CDN; a local path
		// has no provider to carry.
		if mode == ModeCDN && match.Provider != ProviderLocal {
			prefs.Provider = match.Provider
		}

		url := SynthesizeURL(version, mode, prefs)
		script.SetSrc(url)

		out, err := doc.Render()
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Markup: out, Changed: true, Strategy: StrategyUpdatedExisting, Reference: url}, nil
	}

	// State 2: replace the marker comment. Markers carry no prior intent, so
	// only the caller's defaults apply.
	if marker := doc.FindHeadComment(MarkerToken); marker != nil {
		url := SynthesizeURL(version, mode, defaults)
		doc.ReplaceNode(marker, htmldoc.ScriptNode(url))

		out, err := doc.Render()
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Markup: out, Changed: true, Strategy: StrategyReplacedMarker, Reference: url}, nil
	}

	// State 3: fresh insertion as first child of <head>, ahead of any
	// stylesheets, so the library loads before dependent inline scripts.
	// Gated on the source declaring a head: the parser synthesizes one for
	// arbitrary fragments, and silently growing structure a fragment never
	// had would corrupt it.
	if doc.HasHead() {
		url := SynthesizeURL(version, mode, defaults)
		if doc.InsertHeadFirst(htmldoc.ScriptNode(url)) {
			out, err := doc.Render()
			if err != nil {
				return Outcome{}, err
			}
			return Outcome{Markup: out, Changed: true, Strategy: StrategyInsertedNew, Reference: url}, nil
		}
	}

	// State 4: nowhere to act. Return the input untouched, byte for byte.
	return Outcome{Markup: doc.Source(), Changed: false, Strategy: StrategyNoAnchor}, nil
}
