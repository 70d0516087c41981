package reconcile

import "fmt"

// Artifact filenames and the local directory convention.
const (
	fileNamePlain    = "p5.js"
	fileNameMinified = "p5.min.js"
	localDir         = "libraries"
)

// cdnTemplates maps each provider to its fixed URL template. The verbs are
// version and filename, in that order.
var cdnTemplates = map[Provider]string{
	ProviderJSDelivr: "https://cdn.jsdelivr.net/npm/p5@%s/lib/%s",
	ProviderCDNJS:    "https://cdnjs.cloudflare.com/ajax/libs/p5.js/%s/%s",
	ProviderUnpkg:    "https://unpkg.com/p5@%s/lib/%s",
}

// SynthesizeURL maps a version, delivery mode and preferences to the
// canonical reference string. Pure: no I/O, no state.
//
// Local paths never embed the version; the sketch record tracks it instead.
// An unknown or absent provider preference falls back to DefaultProvider.
func SynthesizeURL(version string, mode Mode, prefs Preferences) string {
	file := fileNamePlain
	if prefs.Minified {
		file = fileNameMinified
	}

	if mode == ModeLocal {
		return localDir + "/" + file
	}

	tmpl, ok := cdnTemplates[prefs.Provider]
	if !ok {
		tmpl = cdnTemplates[DefaultProvider]
	}
	return fmt.Sprintf(tmpl, version, file)
}
