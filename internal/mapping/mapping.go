package mapping

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/frederic-klein/altcmp/internal/log"
	"github.com/frederic-klein/altcmp/internal/pkglist"
)

// Load reads a package mapping file from fs.
func Load(fs afero.Fs, path string) (pkglist.Mapping, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mapping file: %w", err)
	}
	defer file.Close()

	m, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debugf("loaded %d package mappings from %s", len(m), path)
	return m, nil
}

// Parse reads "nameA nameB" pairs, one per line. Lines with fewer than two fields and
// lines starting with "#" are skipped. When a name appears twice the later line wins.
func Parse(r io.Reader) (pkglist.Mapping, error) {
	m := make(pkglist.Mapping)
	seenAt := make(map[string]int)
	lineNo := 0

	scanner := pkglist.NewScanner(r)
	for scanner.Scan() {
		lineNo++

		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		nameA, nameB := fields[0], fields[1]
		if prev, ok := seenAt[nameA]; ok {
			log.Warnf("mapping for %q on line %d overrides line %d (%s -> %s)", nameA, lineNo, prev, m[nameA], nameB)
		}
		seenAt[nameA] = lineNo
		m[nameA] = nameB
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mapping: %w", err)
	}

	return m, nil
}
