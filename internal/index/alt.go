package index

import (
	"fmt"
	"strings"

	"github.com/frederic-klein/altcmp/internal/log"
	"github.com/frederic-klein/altcmp/internal/pkglist"
	"github.com/frederic-klein/altcmp/internal/version"
)

// ALTParser reads ALT Linux bin.list files.
type ALTParser struct{}

func (ALTParser) Format() Format {
	return FormatALT
}

// Parse reads "name version ..." lines. Later lines override earlier ones.
func (ALTParser) Parse(data string) (pkglist.Versions, error) {
	packages := make(pkglist.Versions)
	skipped := 0

	scanner := newScanner(data)
	for scanner.Scan() {
		// Parse: name <ws> [epoch:]version[-altN] <ws> ...
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			skipped++
			continue
		}

		packages[fields[0]] = version.NormalizeALT(fields[1])
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s listing: %w", FormatALT, err)
	}

	log.Debugf("parsed %d %s packages (%d lines skipped)", len(packages), FormatALT, skipped)
	return packages, nil
}
