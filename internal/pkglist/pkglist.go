package pkglist

import (
	"bufio"
	"io"
	"sort"
)

// MaxLineSize bounds a single line of a listing or mapping file. Debian Packages
// files carry long Depends and Description lines, well past bufio's 64 KiB default.
const MaxLineSize = 4 * 1024 * 1024

// NewScanner returns a line scanner over r that accepts lines up to MaxLineSize.
func NewScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return scanner
}

// Versions maps a package name to its normalized version string.
type Versions map[string]string

// Lookup returns the version for name and whether the package is listed.
func (v Versions) Lookup(name string) (string, bool) {
	ver, ok := v[name]
	return ver, ok
}

// Mapping maps a package name in repository A to its counterpart in repository B.
type Mapping map[string]string

// Pair is a single mapping entry.
type Pair struct {
	A string // e.g., "python3-module-foo"
	B string // e.g., "python3-foo"
}

// Pairs returns the mapping entries sorted by A name.
func (m Mapping) Pairs() []Pair {
	pairs := make([]Pair, 0, len(m))
	for a, b := range m {
		pairs = append(pairs, Pair{A: a, B: b})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].A < pairs[j].A
	})
	return pairs
}

