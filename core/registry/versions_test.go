package registry_test

import (
	"testing"

	"p5-manager/core/registry"

	"github.com/stretchr/testify/assert"
)

func rel(versions ...string) map[string]registry.Release {
	m := make(map[string]registry.Release, len(versions))
	for _, v := range versions {
		m[v] = registry.Release{Version: v}
	}
	return m
}

func TestSorted(t *testing.T) {
	versions := rel("1.9.4", "0.10.2", "2.0.0-beta.1", "1.11.0", "not-a-version")

	got := registry.Sorted(versions)

	assert.Equal(t, []string{"2.0.0-beta.1", "1.11.0", "1.9.4", "0.10.2", "not-a-version"}, got)
}

func TestSorted_Empty(t *testing.T) {
	assert.Empty(t, registry.Sorted(nil))
}

func TestLatest(t *testing.T) {
	tests := []struct {
		name     string
		versions map[string]registry.Release
		want     string
	}{
		{"PicksNewest", rel("1.9.3", "1.9.4", "1.2.0"), "1.9.4"},
		{"IgnoresUnparsable", rel("garbage", "1.0.0"), "1.0.0"},
		{"NothingParses", rel("garbage"), ""},
		{"Empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, registry.Latest(tt.versions))
		})
	}
}
