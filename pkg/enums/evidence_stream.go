package enums

import "fmt"

// EvidenceStream names one of the two per-order image lists.
type EvidenceStream string

const (
	EvidenceStreamTax  EvidenceStream = "tax"
	EvidenceStreamShip EvidenceStream = "ship"
)

var validEvidenceStreams = []EvidenceStream{
	EvidenceStreamTax,
	EvidenceStreamShip,
}

// String implements fmt.Stringer.
func (s EvidenceStream) String() string {
	return string(s)
}

// IsValid reports whether the value is a known EvidenceStream.
func (s EvidenceStream) IsValid() bool {
	for _, candidate := range validEvidenceStreams {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseEvidenceStream converts raw input into an EvidenceStream.
func ParseEvidenceStream(value string) (EvidenceStream, error) {
	for _, candidate := range validEvidenceStreams {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid evidence stream %q", value)
}
