package reconcile

// Provider identifies a delivery channel for the p5.js artifact.
type Provider string

const (
	// ProviderJSDelivr is the jsDelivr npm CDN.
	ProviderJSDelivr Provider = "jsdelivr"
	// ProviderCDNJS is the Cloudflare cdnjs CDN.
	ProviderCDNJS Provider = "cdnjs"
	// ProviderUnpkg is the unpkg npm CDN.
	ProviderUnpkg Provider = "unpkg"
	// ProviderLocal is a project-local copy under the libraries directory.
	ProviderLocal Provider = "local"
)

// DefaultProvider is used when no prior reference expresses a CDN choice.
const DefaultProvider = ProviderJSDelivr

// Mode is the delivery mode for the library reference.
type Mode string

const (
	// ModeCDN references the library from a provider-hosted URL.
	ModeCDN Mode = "cdn"
	// ModeLocal references a copy inside the sketch's libraries directory.
	ModeLocal Mode = "local"
)

// LocalVersion is the version sentinel for references that encode no version
// (pure local paths). Local mode is version-opaque: the real version lives in
// the sketch record, not in the path.
const LocalVersion = "local"

// MarkerToken is the comment sentinel the project template leaves in <head>
// for documents that have never had a reference inserted. Matched trimmed and
// case-sensitive.
const MarkerToken = "p5:library"

// ReferenceMatch is the result of classifying a candidate reference string.
type ReferenceMatch struct {
	// Version is the literal version token, or LocalVersion for local paths.
	Version string
	// Minified reports whether the reference names the minified artifact.
	Minified bool
	// Provider is the delivery channel the reference encodes.
	Provider Provider
}

// Preferences carries user intent derived from an existing reference.
type Preferences struct {
	// Minified selects the minified artifact filename.
	Minified bool
	// Provider selects the CDN template. Empty means DefaultProvider.
	Provider Provider
}

// Strategy names the placement decision a reconciliation call made.
type Strategy string

const (
	// StrategyUpdatedExisting rewrote the src of an existing reference.
	StrategyUpdatedExisting Strategy = "updated-existing"
	// StrategyReplacedMarker swapped the marker comment for a script element.
	StrategyReplacedMarker Strategy = "replaced-marker"
	// StrategyInsertedNew inserted a script element as first child of <head>.
	StrategyInsertedNew Strategy = "inserted-new"
	// StrategyNoAnchor found nowhere to act; the markup is returned unchanged.
	StrategyNoAnchor Strategy = "no-anchor-available"
)

// Outcome describes what a reconciliation call did.
type Outcome struct {
	// Markup is the resulting document. For StrategyNoAnchor it is the input,
	// byte for byte.
	Markup string `json:"markup"`

	// Changed reports whether the document was mutated.
	Changed bool `json:"changed"`

	// Strategy is the placement decision that fired.
	Strategy Strategy `json:"strategy"`

	// Reference is the synthesized URL now present in the document.
	// Empty for StrategyNoAnchor.
	Reference string `json:"reference,omitempty"`
}
