package version

import (
	"regexp"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// corePattern matches the dotted numeric release at the start of a version.
var corePattern = regexp.MustCompile(`^\d+(?:\.\d+)*`)

// Version is a permissively parsed version string: a dotted numeric release core
// followed by an optional suffix.
//
// Versions are ordered by core first. On equal cores a suffix led by '-' or '~'
// is a pre-release and sorts below no suffix; any other suffix ("1.0.2k",
// "1.0.beta", "1.0+git1") sorts above it.
type Version struct {
	raw    string
	core   []string
	suffix string
	semver *goversion.Version
}

// Parse accepts any non-empty string whose dot-separated segments are
// non-empty runs of [0-9A-Za-z~_+:-].
func Parse(raw string) (*Version, error) {
	if raw == "" {
		return nil, ErrEmptyVersion
	}

	for i, s := range strings.Split(raw, ".") {
		if s == "" || strings.IndexFunc(s, notSegmentRune) >= 0 {
			return nil, &InvalidSegmentError{Raw: raw, Segment: s, Index: i}
		}
	}

	core := corePattern.FindString(raw)
	v := &Version{raw: raw, suffix: raw[len(core):]}
	if core != "" {
		v.core = strings.Split(core, ".")
		// fails only when a segment overflows int64; compareCore falls back to digit strings
		if sv, err := goversion.NewVersion(core); err == nil {
			v.semver = sv
		}
	}
	return v, nil
}

func (v *Version) String() string {
	return v.raw
}

// Compare returns -1, 0 or 1 if v is older than, equal to or newer than other.
func (v *Version) Compare(other *Version) int {
	if c := v.compareCore(other); c != 0 {
		return c
	}
	return compareSuffix(v.suffix, other.suffix)
}

// compareCore orders the numeric releases, padding the shorter one with zeros.
// Both branches compute the same order; go-version covers cores that fit in int64.
func (v *Version) compareCore(other *Version) int {
	if v.semver != nil && other.semver != nil {
		return v.semver.Compare(other.semver)
	}

	n := len(v.core)
	if len(other.core) > n {
		n = len(other.core)
	}
	for i := 0; i < n; i++ {
		if c := compareNumeric(segmentAt(v.core, i), segmentAt(other.core, i)); c != 0 {
			return c
		}
	}
	return 0
}

func segmentAt(segs []string, i int) string {
	if i < len(segs) {
		return segs[i]
	}
	return "0"
}

// suffix ranks
const (
	preRelease = iota
	release
	postRelease
)

func suffixRank(s string) int {
	switch {
	case s == "":
		return release
	case s[0] == '-' || s[0] == '~':
		return preRelease
	}
	return postRelease
}

func compareSuffix(a, b string) int {
	ra, rb := suffixRank(a), suffixRank(b)
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	}

	ta, tb := tokenize(a), tokenize(b)
	for i := 0; i < len(ta) && i < len(tb); i++ {
		if c := compareToken(ta[i], tb[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(ta) < len(tb):
		return -1
	case len(ta) > len(tb):
		return 1
	}
	return 0
}

// tokenize splits s into alternating runs of digits and non-digits.
func tokenize(s string) []string {
	var tokens []string
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || isDigit(s[i]) != isDigit(s[start]) {
			tokens = append(tokens, s[start:i])
			start = i
		}
	}
	return tokens
}

// compareToken orders numbers numerically and text lexically; a number sorts above text.
func compareToken(a, b string) int {
	da, db := isDigit(a[0]), isDigit(b[0])
	switch {
	case da && db:
		return compareNumeric(a, b)
	case da:
		return 1
	case db:
		return -1
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func notSegmentRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return false
	case r == '~', r == '_', r == '+', r == ':', r == '-':
		return false
	}
	return true
}

// compareNumeric orders digit strings of any length without converting them.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
