// Package version orders toolchain and pack version strings.
//
// A version is a dot separated release of any length, an optional
// pre-release after the first "-" and optional build metadata after the
// first "+". Release segments compare as numbers and missing trailing
// segments count as zero, so "6.18" equals "6.18.0" and "1.2.3.0". The
// pre-release follows semantic versioning precedence and build metadata is
// ignored.
package version

import (
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Comparator gives a total order over version strings.
type Comparator interface {
	Compare(a, b string) int
}

// Semantic is the default Comparator.
type Semantic struct{}

// Compare implements Comparator.
func (Semantic) Compare(a, b string) int { return Compare(a, b) }

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to
// or after b. The empty string is the zero version.
func Compare(a, b string) int {
	if a == b {
		return 0
	}
	ra, pa := split(a)
	rb, pb := split(b)
	if c := compareRelease(ra, rb); c != 0 {
		return c
	}
	return comparePrerelease(pa, pb)
}

// Equal reports whether a and b denote the same version.
func Equal(a, b string) bool {
	return Compare(a, b) == 0
}

// split returns the release segments and the pre-release of v. A leading
// "v" and any build metadata are dropped.
func split(v string) ([]string, string) {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "v") || strings.HasPrefix(v, "V") {
		v = v[1:]
	}
	v, _, _ = strings.Cut(v, "+")
	release, pre, _ := strings.Cut(v, "-")
	return strings.Split(release, "."), pre
}

// compareRelease compares release segments left to right. Missing and
// empty segments count as zero.
func compareRelease(sa, sb []string) int {
	for i := 0; i < len(sa) || i < len(sb); i++ {
		x, y := "0", "0"
		if i < len(sa) && sa[i] != "" {
			x = sa[i]
		}
		if i < len(sb) && sb[i] != "" {
			y = sb[i]
		}
		if c := compareSegment(x, y); c != 0 {
			return c
		}
	}
	return 0
}

func compareSegment(x, y string) int {
	nx, errX := strconv.ParseUint(x, 10, 64)
	ny, errY := strconv.ParseUint(y, 10, 64)
	switch {
	case errX == nil && errY == nil:
		switch {
		case nx < ny:
			return -1
		case nx > ny:
			return 1
		}
		return 0
	case errX == nil:
		// numeric segments sort before alphanumeric ones
		return -1
	case errY == nil:
		return 1
	}
	return strings.Compare(x, y)
}

// comparePrerelease orders pre-releases by semver precedence on a fixed
// release. A version without a pre-release sorts after any with one.
func comparePrerelease(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}
	return semver.Compare("v0.0.0-"+prerelease(a), "v0.0.0-"+prerelease(b))
}

// prerelease rewrites p into a valid semver pre-release: characters outside
// [0-9A-Za-z-] become "-", empty identifiers become "0" and leading zeros
// are dropped from numeric identifiers.
func prerelease(p string) string {
	ids := strings.Split(p, ".")
	for i, id := range ids {
		id = strings.Map(func(r rune) rune {
			switch {
			case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '-':
				return r
			}
			return '-'
		}, id)
		if n, err := strconv.ParseUint(id, 10, 64); err == nil {
			id = strconv.FormatUint(n, 10)
		} else if id == "" {
			id = "0"
		} else if strings.Trim(id, "0123456789") == "" {
			// numeric but too large for uint64
			id = strings.TrimLeft(id, "0")
		}
		ids[i] = id
	}
	return strings.Join(ids, ".")
}
