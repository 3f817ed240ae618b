package index

import (
	"fmt"
	"regexp"
	"strings"

	deb "github.com/knqyf263/go-deb-version"
	"github.com/sirupsen/logrus"

	"github.com/frederic-klein/altcmp/internal/log"
	"github.com/frederic-klein/altcmp/internal/pkglist"
	"github.com/frederic-klein/altcmp/internal/version"
)

var (
	packageFieldRe = regexp.MustCompile(`^Package:(.*)$`)
	versionFieldRe = regexp.MustCompile(`^Version:(.*)$`)
)

// DebianParser reads Debian control-style Packages indexes.
type DebianParser struct{}

func (DebianParser) Format() Format {
	return FormatDebian
}

// Parse pairs every Version field with the most recent non-empty Package field. The package
// cursor is never cleared; a Version line before any Package line is ignored.
func (DebianParser) Parse(data string) (pkglist.Versions, error) {
	packages := make(pkglist.Versions)
	current := ""
	lineNo := 0

	scanner := newScanner(data)
	for scanner.Scan() {
		line := scanner.Text()
		lineNo++

		if matches := packageFieldRe.FindStringSubmatch(line); matches != nil {
			if name := strings.TrimSpace(matches[1]); name != "" {
				current = name
			}
			continue
		}

		matches := versionFieldRe.FindStringSubmatch(line)
		if matches == nil || current == "" {
			continue
		}

		raw := strings.TrimSpace(matches[1])
		if _, err := deb.NewVersion(raw); err != nil {
			log.WithFields(logrus.Fields{
				"package": current,
				"line":    lineNo,
			}).Debugf("non-conforming debian version %q: %v", raw, err)
		}
		packages[current] = version.NormalizeDebian(raw)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s listing at line %d: %w", FormatDebian, lineNo+1, err)
	}

	log.Debugf("parsed %d %s packages from %d lines", len(packages), FormatDebian, lineNo)
	return packages, nil
}
