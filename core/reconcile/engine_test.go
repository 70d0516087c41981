package reconcile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(headExtra, bodyExtra string) string {
	return `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  ` + headExtra + `
  <link rel="stylesheet" href="style.css">
</head>
<body>
  ` + bodyExtra + `
  <script src="sketch.js"></script>
</body>
</html>`
}

func TestReconcile_UpdatesExistingReference(t *testing.T) {
	// Concrete scenario: jsDelivr minified reference moved to another version.
	markup := page(`<script src="https://cdn.jsdelivr.net/npm/p5@2.1.0/lib/p5.min.js"></script>`, "")

	out, err := Reconcile(markup, "2.0.5", ModeCDN)
	require.NoError(t, err)

	assert.Equal(t, StrategyUpdatedExisting, out.Strategy)
	assert.True(t, out.Changed)
	assert.Equal(t, "https://cdn.jsdelivr.net/npm/p5@2.0.5/lib/p5.min.js", out.Reference)
	assert.Contains(t, out.Markup, `src="https://cdn.jsdelivr.net/npm/p5@2.0.5/lib/p5.min.js"`)
	assert.NotContains(t, out.Markup, "2.1.0")
	// The unrelated sketch script is untouched.
	assert.Contains(t, out.Markup, `src="sketch.js"`)
}

func TestReconcile_Idempotence(t *testing.T) {
	markup := page(`<script src="https://cdn.jsdelivr.net/npm/p5@1.9.0/lib/p5.js"></script>`, "")

	first, err := Reconcile(markup, "1.9.4", ModeCDN)
	require.NoError(t, err)
	require.Equal(t, StrategyUpdatedExisting, first.Strategy)

	second, err := Reconcile(first.Markup, "1.9.4", ModeCDN)
	require.NoError(t, err)

	assert.Equal(t, StrategyUpdatedExisting, second.Strategy)
	assert.True(t, second.Changed)
	assert.Equal(t, first.Markup, second.Markup)
	assert.Equal(t, first.Reference, second.Reference)
}

func TestReconcile_PreservesPreferences(t *testing.T) {
	markup := page(`<script src="https://cdnjs.cloudflare.com/ajax/libs/p5.js/1.4.0/p5.min.js"></script>`, "")

	out, err := Reconcile(markup, "1.9.4", ModeCDN)
	require.NoError(t, err)

	assert.Equal(t, StrategyUpdatedExisting, out.Strategy)
	// Still cdnjs, still minified.
	assert.Equal(t, "https://cdnjs.cloudflare.com/ajax/libs/p5.js/1.9.4/p5.min.js", out.Reference)
}

func TestReconcile_ProviderNotInheritedAcrossModeChange(t *testing.T) {
	markup := page(`<script src="https://unpkg.com/p5@1.4.0/lib/p5.js"></script>`, "")

	out, err := Reconcile(markup, "1.9.4", ModeLocal)
	require.NoError(t, err)

	assert.Equal(t, StrategyUpdatedExisting, out.Strategy)
	assert.Equal(t, "libraries/p5.js", out.Reference)
	assert.NotContains(t, out.Markup, "unpkg")
}

func TestReconcile_LocalToCDNUsesDefaultProvider(t *testing.T) {
	markup := page(`<script src="libraries/p5.min.js"></script>`, "")

	out, err := Reconcile(markup, "1.9.4", ModeCDN)
	require.NoError(t, err)

	assert.Equal(t, StrategyUpdatedExisting, out.Strategy)
	// Minification survives; the provider cannot (a local path has none).
	assert.Equal(t, "https://cdn.jsdelivr.net/npm/p5@1.9.4/lib/p5.min.js", out.Reference)
}

func TestReconcile_ExistingReferenceBeatsMarker(t *testing.T) {
	markup := page(`<!-- p5:library -->
  <script src="https://cdn.jsdelivr.net/npm/p5@1.4.0/lib/p5.js"></script>`, "")

	out, err := Reconcile(markup, "1.9.4", ModeCDN)
	require.NoError(t, err)

	assert.Equal(t, StrategyUpdatedExisting, out.Strategy)
	// The marker stays where it was.
	assert.Contains(t, out.Markup, "p5:library")
}

func TestReconcile_FirstReferenceInDocumentOrderWins(t *testing.T) {
	markup := page(
		`<script src="https://unpkg.com/p5@1.0.0/lib/p5.js"></script>
  <script src="https://cdnjs.cloudflare.com/ajax/libs/p5.js/1.2.0/p5.min.js"></script>`, "")

	out, err := Reconcile(markup, "1.9.4", ModeCDN)
	require.NoError(t, err)

	assert.Equal(t, StrategyUpdatedExisting, out.Strategy)
	assert.Equal(t, "https://unpkg.com/p5@1.9.4/lib/p5.js", out.Reference)
	// The stray duplicate is left exactly as it was.
	assert.Contains(t, out.Markup, "https://cdnjs.cloudflare.com/ajax/libs/p5.js/1.2.0/p5.min.js")
}

func TestReconcile_ReplacesMarker(t *testing.T) {
	markup := page(`<!-- p5:library -->`, "")

	out, err := Reconcile(markup, "1.9.4", ModeCDN)
	require.NoError(t, err)

	assert.Equal(t, StrategyReplacedMarker, out.Strategy)
	assert.True(t, out.Changed)
	assert.Equal(t, "https://cdn.jsdelivr.net/npm/p5@1.9.4/lib/p5.js", out.Reference)
	assert.Contains(t, out.Markup, `<script src="https://cdn.jsdelivr.net/npm/p5@1.9.4/lib/p5.js"></script>`)
	assert.NotContains(t, out.Markup, "p5:library")
}

func TestReconcile_MarkerIgnoresPriorIntent(t *testing.T) {
	// A marker carries no preferences, so the caller's defaults decide.
	markup := page(`<!-- p5:library -->`, "")

	out, err := ReconcileWithDefaults(markup, "1.9.4", ModeCDN, Preferences{Minified: true, Provider: ProviderCDNJS})
	require.NoError(t, err)

	assert.Equal(t, StrategyReplacedMarker, out.Strategy)
	assert.Equal(t, "https://cdnjs.cloudflare.com/ajax/libs/p5.js/1.9.4/p5.min.js", out.Reference)
}

func TestReconcile_InsertsAsFirstChildOfHead(t *testing.T) {
	markup := page("", "")

	out, err := Reconcile(markup, "1.9.4", ModeCDN)
	require.NoError(t, err)

	assert.Equal(t, StrategyInsertedNew, out.Strategy)
	assert.True(t, out.Changed)
	// The new reference precedes everything that was already in <head>.
	ref := strings.Index(out.Markup, out.Reference)
	assert.Less(t, ref, strings.Index(out.Markup, "charset"))
	assert.Less(t, ref, strings.Index(out.Markup, "style.css"))
}

func TestReconcile_NoAnchorAvailable(t *testing.T) {
	inputs := []string{
		`<p>just a fragment</p>`,
		`<html><body><script src="sketch.js"></script></body></html>`,
		``,
	}

	for _, markup := range inputs {
		out, err := Reconcile(markup, "1.9.4", ModeCDN)
		require.NoError(t, err)

		assert.Equal(t, StrategyNoAnchor, out.Strategy)
		assert.False(t, out.Changed)
		assert.Empty(t, out.Reference)
		// Byte for byte, not a re-serialization.
		assert.Equal(t, markup, out.Markup)
	}
}

func TestReconcile_LocalMode(t *testing.T) {
	markup := page(`<!-- p5:library -->`, "")

	out, err := ReconcileWithDefaults(markup, "1.9.4", ModeLocal, Preferences{Minified: true})
	require.NoError(t, err)

	assert.Equal(t, StrategyReplacedMarker, out.Strategy)
	assert.Equal(t, "libraries/p5.min.js", out.Reference)
	// Local mode is version-opaque.
	assert.NotContains(t, out.Markup, "1.9.4")
}
