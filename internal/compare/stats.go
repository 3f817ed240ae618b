package compare

// Stats buckets outcomes for reporting. Missing collapses the three missing
// outcomes; the breakdown is kept for the detailed view.
type Stats struct {
	ANewer  int `json:"a_newer" yaml:"a_newer"`
	BNewer  int `json:"b_newer" yaml:"b_newer"`
	Equal   int `json:"equal" yaml:"equal"`
	Missing int `json:"missing" yaml:"missing"`

	AMissing    int `json:"a_missing" yaml:"a_missing"`
	BMissing    int `json:"b_missing" yaml:"b_missing"`
	BothMissing int `json:"both_missing" yaml:"both_missing"`
}

// Add counts one outcome.
func (s *Stats) Add(o Outcome) {
	if o.Missing() {
		s.Missing++
	}
	switch o {
	case ANewer:
		s.ANewer++
	case BNewer:
		s.BNewer++
	case Equal:
		s.Equal++
	case AMissing:
		s.AMissing++
	case BMissing:
		s.BMissing++
	case BothMissing:
		s.BothMissing++
	}
}

// Total is the number of counted pairs.
func (s Stats) Total() int {
	return s.ANewer + s.BNewer + s.Equal + s.Missing
}

// StatsOf counts the outcomes of already computed records.
func StatsOf(records []Record) Stats {
	var s Stats
	for _, r := range records {
		s.Add(r.Outcome)
	}
	return s
}
