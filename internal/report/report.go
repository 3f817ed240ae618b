package report

import (
	"fmt"
	"io"

	"github.com/frederic-klein/altcmp/internal/compare"
)

// Presenter renders a comparison result.
type Presenter interface {
	Present(w io.Writer) error
}

// Labels name the two repositories in headers.
type Labels struct {
	Alt    string `json:"alt" yaml:"alt"`
	Second string `json:"second" yaml:"second"`
}

// Options control rendering.
type Options struct {
	Labels Labels
	Color  bool
}

// ForFormat returns the presenter for a --output value.
func ForFormat(format string, records []compare.Record, stats compare.Stats, opts Options) (Presenter, error) {
	switch format {
	case "table", "":
		return NewTable(records, opts), nil
	case "json":
		return NewJSON(records, stats, opts.Labels), nil
	case "yaml":
		return NewYAML(records, stats, opts.Labels), nil
	}
	return nil, fmt.Errorf("unknown report format %q", format)
}
