package compare

import (
	"sort"

	"github.com/frederic-klein/altcmp/internal/pkglist"
	"github.com/frederic-klein/altcmp/internal/version"
)

// NotFound is shown in place of the version of a package absent from its listing.
const NotFound = "Not found"

// Side is one half of a mapped pair.
type Side struct {
	Package string
	Version string
	Found   bool
}

// DisplayVersion returns the version, or NotFound for an absent package.
func (s Side) DisplayVersion() string {
	if !s.Found {
		return NotFound
	}
	return s.Version
}

// Record is the comparison result for one mapping entry.
type Record struct {
	Name    string
	A       Side
	B       Side
	Outcome Outcome
}

// Filter narrows Compare output to the side that is ahead.
type Filter struct {
	ANewer bool
	BNewer bool
}

// Include reports whether a record with outcome o passes the filter.
// No flag keeps everything. Both flags keep only pairs where neither side is ahead.
func (f Filter) Include(o Outcome) bool {
	switch {
	case !f.ANewer && !f.BNewer:
		return true
	case f.ANewer && f.BNewer:
		return o == Equal
	case f.ANewer:
		return o == ANewer
	default:
		return o == BNewer
	}
}

// Comparator joins two package listings through a name mapping.
type Comparator struct {
	a       pkglist.Versions
	b       pkglist.Versions
	mapping pkglist.Mapping
}

// New creates a comparator. The inputs are read, never modified.
func New(a, b pkglist.Versions, mapping pkglist.Mapping) *Comparator {
	return &Comparator{
		a:       a,
		b:       b,
		mapping: mapping,
	}
}

// Compare classifies every mapping entry and returns the records passing f,
// sorted by display name.
func (c *Comparator) Compare(f Filter) []Record {
	records := make([]Record, 0, len(c.mapping))
	for _, rec := range c.all() {
		if f.Include(rec.Outcome) {
			records = append(records, rec)
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
	return records
}

// Stats counts outcomes over the whole mapping.
func (c *Comparator) Stats() Stats {
	return StatsOf(c.all())
}

func (c *Comparator) all() []Record {
	pairs := c.mapping.Pairs()
	records := make([]Record, 0, len(pairs))
	for _, pair := range pairs {
		records = append(records, c.record(pair))
	}
	return records
}

func (c *Comparator) record(pair pkglist.Pair) Record {
	a := side(c.a, pair.A)
	b := side(c.b, pair.B)
	return Record{
		Name:    DisplayName(pair.A, pair.B),
		A:       a,
		B:       b,
		Outcome: Classify(a, b),
	}
}

func side(packages pkglist.Versions, name string) Side {
	ver, ok := packages.Lookup(name)
	return Side{Package: name, Version: ver, Found: ok}
}

// Classify orders the two sides. A side that is absent or whose version cannot be
// parsed lands in one of the missing outcomes.
func Classify(a, b Side) Outcome {
	va := parse(a)
	vb := parse(b)

	switch {
	case va == nil && vb == nil:
		return BothMissing
	case va == nil:
		return AMissing
	case vb == nil:
		return BMissing
	}

	switch c := va.Compare(vb); {
	case c > 0:
		return ANewer
	case c < 0:
		return BNewer
	default:
		return Equal
	}
}

func parse(s Side) *version.Version {
	if !s.Found {
		return nil
	}
	v, err := version.Parse(s.Version)
	if err != nil {
		return nil
	}
	return v
}

// DisplayName shows a single name when both repositories use it, "a / b" otherwise.
func DisplayName(nameA, nameB string) string {
	if nameA == nameB {
		return nameA
	}
	return nameA + " / " + nameB
}
