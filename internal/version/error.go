package version

import (
	"errors"
	"fmt"
)

var ErrEmptyVersion = errors.New("empty version")

// InvalidSegmentError reports a version whose dotted segment cannot be ordered.
type InvalidSegmentError struct {
	Raw     string
	Segment string
	Index   int
}

func (e *InvalidSegmentError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("invalid version %q: empty segment at position %d", e.Raw, e.Index)
	}
	return fmt.Sprintf("invalid version %q: segment %q at position %d", e.Raw, e.Segment, e.Index)
}
