package registry

import (
	"sort"

	"github.com/blang/semver"
)

// Sorted returns the version strings newest-first. Versions that do not
// parse as semver sort after those that do, ordered lexically for stability.
func Sorted(versions map[string]Release) []string {
	var parsed []semver.Version
	var unparsed []string

	for v := range versions {
		sv, err := semver.Parse(v)
		if err != nil {
			unparsed = append(unparsed, v)
			continue
		}
		parsed = append(parsed, sv)
	}

	sort.Slice(parsed, func(i, j int) bool { return parsed[i].GT(parsed[j]) })
	sort.Strings(unparsed)

	out := make([]string, 0, len(parsed)+len(unparsed))
	for _, sv := range parsed {
		out = append(out, sv.String())
	}
	return append(out, unparsed...)
}

// Latest returns the newest semver version, or "" when none parse.
func Latest(versions map[string]Release) string {
	var best *semver.Version
	for v := range versions {
		sv, err := semver.Parse(v)
		if err != nil {
			continue
		}
		if best == nil || sv.GT(*best) {
			b := sv
			best = &b
		}
	}
	if best == nil {
		return ""
	}
	return best.String()
}
