package updater

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVersion(t *testing.T) {
	v, ok := parseVersion("1.2.3")
	assert.True(t, ok)
	assert.Equal(t, uint64(1), v.Major)
	assert.Equal(t, uint64(2), v.Minor)
	assert.Equal(t, uint64(3), v.Patch)
}

func TestParseVersion_Rejects(t *testing.T) {
	for _, s := range []string{
		"1.2",
		"1.2.3.4",
		"a.b.c",
		"1.2.x",
		"",
		".1.2",
		"1.2.",
		"1.2.3-beta",
		"-1.2.3",
	} {
		_, ok := parseVersion(s)
		assert.False(t, ok, "expected %q to be unparseable", s)
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2.0.0", "1.9.9", 1},
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "1.0.1", -1},
		{"1.10.0", "1.9.0", 1},
		{"0.0.2", "0.0.10", -1},

		// Unparseable strings on either side compare equal (fail-safe:
		// a malformed tag must never announce an update).
		{"bad", "1.0.0", 0},
		{"1.0.0", "bad", 0},
		{"bad", "worse", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, compareVersions(tt.a, tt.b), "compare(%q, %q)", tt.a, tt.b)
	}
}

func TestStripTagPrefix(t *testing.T) {
	assert.Equal(t, "1.5.0", stripTagPrefix("v1.5.0"))
	assert.Equal(t, "1.5.0", stripTagPrefix("1.5.0"))
}
