package index

import (
	"bufio"
	"fmt"
	"sort"
	"strings"

	"github.com/frederic-klein/altcmp/internal/pkglist"
)

// Format names a package listing encoding.
type Format string

const (
	FormatALT    Format = "alt"
	FormatDebian Format = "deb"
)

// Parser turns the raw text of a package listing into name -> normalized version.
// Malformed lines are skipped; only structural failures are returned.
type Parser interface {
	Format() Format
	Parse(data string) (pkglist.Versions, error)
}

var parsers = map[Format]Parser{}

// Register makes p available through ParserFor. Registering a format twice replaces the earlier parser.
func Register(p Parser) {
	parsers[p.Format()] = p
}

// ParserFor returns the parser registered for format.
func ParserFor(format Format) (Parser, error) {
	p, ok := parsers[format]
	if !ok {
		return nil, fmt.Errorf("unknown listing format %q (known: %s)", format, strings.Join(formatNames(), ", "))
	}
	return p, nil
}

// Formats returns the registered format names in sorted order.
func Formats() []Format {
	formats := make([]Format, 0, len(parsers))
	for f := range parsers {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

func formatNames() []string {
	var names []string
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return names
}

func init() {
	Register(ALTParser{})
	Register(DebianParser{})
}

func newScanner(data string) *bufio.Scanner {
	return pkglist.NewScanner(strings.NewReader(data))
}
