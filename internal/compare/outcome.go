package compare

import "fmt"

// Outcome classifies one mapped package pair.
type Outcome int

const (
	ANewer Outcome = iota
	BNewer
	Equal
	AMissing // A absent or unparsable, B parsable
	BMissing // A parsable, B absent or unparsable
	BothMissing
)

var outcomeNames = map[Outcome]string{
	ANewer:      "a-newer",
	BNewer:      "b-newer",
	Equal:       "equal",
	AMissing:    "a-missing",
	BMissing:    "b-missing",
	BothMissing: "both-missing",
}

// Outcomes lists every outcome in declaration order.
func Outcomes() []Outcome {
	return []Outcome{ANewer, BNewer, Equal, AMissing, BMissing, BothMissing}
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Missing reports whether at least one side could not be ordered.
func (o Outcome) Missing() bool {
	return o == AMissing || o == BMissing || o == BothMissing
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
