package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizeURL(t *testing.T) {
	tests := []struct {
		name    string
		version string
		mode    Mode
		prefs   Preferences
		want    string
	}{
		{
			name:    "CDNDefaultProvider",
			version: "1.9.4",
			mode:    ModeCDN,
			want:    "https://cdn.jsdelivr.net/npm/p5@1.9.4/lib/p5.js",
		},
		{
			name:    "CDNDefaultProviderMinified",
			version: "1.9.4",
			mode:    ModeCDN,
			prefs:   Preferences{Minified: true},
			want:    "https://cdn.jsdelivr.net/npm/p5@1.9.4/lib/p5.min.js",
		},
		{
			name:    "CDNJS",
			version: "1.9.4",
			mode:    ModeCDN,
			prefs:   Preferences{Provider: ProviderCDNJS, Minified: true},
			want:    "https://cdnjs.cloudflare.com/ajax/libs/p5.js/1.9.4/p5.min.js",
		},
		{
			name:    "Unpkg",
			version: "2.0.0",
			mode:    ModeCDN,
			prefs:   Preferences{Provider: ProviderUnpkg},
			want:    "https://unpkg.com/p5@2.0.0/lib/p5.js",
		},
		{
			name:    "UnknownProviderFallsBack",
			version: "1.9.4",
			mode:    ModeCDN,
			prefs:   Preferences{Provider: Provider("bogus")},
			want:    "https://cdn.jsdelivr.net/npm/p5@1.9.4/lib/p5.js",
		},
		{
			name:    "LocalIgnoresVersionAndProvider",
			version: "1.9.4",
			mode:    ModeLocal,
			prefs:   Preferences{Provider: ProviderUnpkg},
			want:    "libraries/p5.js",
		},
		{
			name:    "LocalMinified",
			version: "1.9.4",
			mode:    ModeLocal,
			prefs:   Preferences{Minified: true},
			want:    "libraries/p5.min.js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SynthesizeURL(tt.version, tt.mode, tt.prefs))
		})
	}
}

// Every CDN URL the synthesizer produces must classify back to the same
// version, minification and provider it was built from.
func TestSynthesizeURL_RoundTripsThroughCatalog(t *testing.T) {
	for _, provider := range []Provider{ProviderJSDelivr, ProviderCDNJS, ProviderUnpkg} {
		for _, minified := range []bool{true, false} {
			url := SynthesizeURL("1.11.2", ModeCDN, Preferences{Provider: provider, Minified: minified})
			match, ok := Classify(url)
			assert.True(t, ok, "synthesized URL %q did not classify", url)
			assert.Equal(t, ReferenceMatch{Version: "1.11.2", Minified: minified, Provider: provider}, match)
		}
	}
}
