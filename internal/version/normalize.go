package version

import "strings"

// altReleaseMarker prefixes the packaging segments of ALT Linux versions, e.g. "alt1" or "alt2.git1234".
const altReleaseMarker = "alt"

// NormalizeALT strips the epoch and the ALT release segments from a bin.list version.
//
//	"2:4.5.6-alt2"    -> "4.5.6"
//	"1.2.3-alt1"      -> "1.2.3"
//	"0.9-rc1-alt0.1"  -> "0.9-rc1"
func NormalizeALT(raw string) string {
	v := raw
	if i := strings.IndexByte(v, ':'); i >= 0 {
		v = v[i+1:]
	}

	parts := strings.Split(v, "-")
	kept := parts[:0]
	for _, p := range parts {
		if strings.HasPrefix(p, altReleaseMarker) {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, "-")
}

// NormalizeDebian keeps the upstream part of a Debian version, dropping the
// revision and any "+" build metadata.
//
//	"1.2.3-4+git123" -> "1.2.3"
//	"8.1.4+pve1"     -> "8.1.4"
func NormalizeDebian(raw string) string {
	v, _, _ := strings.Cut(raw, "-")
	v, _, _ = strings.Cut(v, "+")
	return v
}
