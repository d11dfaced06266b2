package updater

import (
	"strconv"
	"strings"

	"github.com/blang/semver"
)

// parseVersion parses a strict major.minor.patch string. Exactly three
// dot-separated non-negative integer components are required; anything
// else (fewer or more components, non-numeric parts, prerelease or build
// suffixes) is rejected.
func parseVersion(s string) (semver.Version, bool) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return semver.Version{}, false
	}

	var nums [3]uint64
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return semver.Version{}, false
		}
		nums[i] = n
	}

	return semver.Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, true
}

// compareVersions orders two version strings: 1 if a > b, -1 if a < b,
// 0 if equal. A string either side that does not parse compares as equal
// on purpose — a malformed tag must read as "no update available", never
// as a crash or a false positive.
func compareVersions(a, b string) int {
	va, ok := parseVersion(a)
	if !ok {
		return 0
	}
	vb, ok := parseVersion(b)
	if !ok {
		return 0
	}
	return va.Compare(vb)
}

// stripTagPrefix derives a plain version string from a release tag by
// removing a single conventional "v" marker: "v1.5.0" → "1.5.0".
func stripTagPrefix(tag string) string {
	return strings.TrimPrefix(tag, "v")
}
