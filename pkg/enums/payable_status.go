package enums

import "fmt"

// PayableStatus classifies whether the driver can be paid yet. Paying out
// requires the shipper collection to be complete and both evidence
// streams to carry at least one image.
type PayableStatus string

const (
	PayablePaidOut              PayableStatus = "paid_out"
	PayablePayable              PayableStatus = "payable"
	PayableConditionalUnpayable PayableStatus = "conditional_unpayable"
)

var validPayableStatuses = []PayableStatus{
	PayablePaidOut,
	PayablePayable,
	PayableConditionalUnpayable,
}

// String implements fmt.Stringer.
func (s PayableStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known PayableStatus.
func (s PayableStatus) IsValid() bool {
	for _, candidate := range validPayableStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParsePayableStatus converts raw input into a PayableStatus.
func ParsePayableStatus(value string) (PayableStatus, error) {
	for _, candidate := range validPayableStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payable status %q", value)
}
