package reconcile

import "regexp"

// rule classifies one reference shape. Expressions are anchored on both ends;
// the first capture group is the version, the second the optional ".min"
// marker. localRule captures only the minification marker.
type rule struct {
	provider Provider
	re       *regexp.Regexp
	local    bool
}

// catalog is the fixed, ordered list of classification rules. Order is part
// of the contract: the first matching rule wins, and the local rule stays
// last so a project that nests CDN-looking paths under its libraries
// directory can never shadow a CDN classification.
var catalog = []rule{
	{
		provider: ProviderJSDelivr,
		re:       regexp.MustCompile(`^https?://cdn\.jsdelivr\.net/npm/p5@([^/@]+)/lib/p5(\.min)?\.js$`),
	},
	{
		provider: ProviderCDNJS,
		re:       regexp.MustCompile(`^https?://cdnjs\.cloudflare\.com/ajax/libs/p5\.js/([^/]+)/p5(\.min)?\.js$`),
	},
	{
		provider: ProviderUnpkg,
		re:       regexp.MustCompile(`^https?://unpkg\.com/p5@([^/@]+)/lib/p5(\.min)?\.js$`),
	},
	{
		provider: ProviderLocal,
		re:       regexp.MustCompile(`^(?:\./)?libraries/p5(\.min)?\.js$`),
		local:    true,
	},
}

// Classify matches ref against the catalog and returns the first match.
// Arbitrary and empty strings are safe; they simply report no match.
func Classify(ref string) (ReferenceMatch, bool) {
	for _, r := range catalog {
		groups := r.re.FindStringSubmatch(ref)
		if groups == nil {
			continue
		}

		if r.local {
			return ReferenceMatch{
				Version:  LocalVersion,
				Minified: groups[1] != "",
				Provider: r.provider,
			}, true
		}

		return ReferenceMatch{
			Version:  groups[1],
			Minified: groups[2] != "",
			Provider: r.provider,
		}, true
	}

	return ReferenceMatch{}, false
}
