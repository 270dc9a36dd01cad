package enums

import "fmt"

// ReceivableStatus classifies whether and how the shipper payment is
// late, conditional, pending, or complete. It is derived, never stored.
type ReceivableStatus string

const (
	ReceivablePaid              ReceivableStatus = "paid"
	ReceivableOverdue           ReceivableStatus = "overdue"
	ReceivableConditionalUnpaid ReceivableStatus = "conditional_unpaid"
	ReceivablePending           ReceivableStatus = "pending"
)

var validReceivableStatuses = []ReceivableStatus{
	ReceivablePaid,
	ReceivableOverdue,
	ReceivableConditionalUnpaid,
	ReceivablePending,
}

// String implements fmt.Stringer.
func (s ReceivableStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ReceivableStatus.
func (s ReceivableStatus) IsValid() bool {
	for _, candidate := range validReceivableStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseReceivableStatus converts raw input into a ReceivableStatus.
func ParseReceivableStatus(value string) (ReceivableStatus, error) {
	for _, candidate := range validReceivableStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid receivable status %q", value)
}
