package report

import (
	"fmt"
	"io"

	"github.com/frederic-klein/altcmp/internal/compare"
)

// Stats renders outcome counts.
type Stats struct {
	stats    compare.Stats
	detailed bool
	labels   Labels
}

// NewStats creates a stats presenter. Detailed output breaks the missing bucket down by side.
func NewStats(stats compare.Stats, detailed bool, labels Labels) *Stats {
	return &Stats{stats: stats, detailed: detailed, labels: labels}
}

func (s *Stats) Present(w io.Writer) error {
	st, l := s.stats, s.labels
	if !s.detailed {
		_, err := fmt.Fprintf(w, "%s newer: %d, %s newer: %d, Equal: %d, Missing: %d\n",
			l.Alt, st.ANewer, l.Second, st.BNewer, st.Equal, st.Missing)
		return err
	}

	_, err := fmt.Fprintf(w, `Package Statistics:
- %s newer: %d
- %s newer: %d
- Equal: %d
- Missing: %d
  - not comparable in %s: %d
  - not comparable in %s: %d
  - not comparable in either: %d
- Total: %d
`,
		l.Alt, st.ANewer,
		l.Second, st.BNewer,
		st.Equal,
		st.Missing,
		l.Alt, st.AMissing,
		l.Second, st.BMissing,
		st.BothMissing,
		st.Total())
	return err
}
