package settlement

import (
	"strings"
	"time"

	"github.com/smlogitech/backoffice/internal/evidence"
	"github.com/smlogitech/backoffice/internal/money"
	"github.com/smlogitech/backoffice/pkg/db/models"
	"github.com/smlogitech/backoffice/pkg/enums"
	"github.com/smlogitech/backoffice/pkg/kst"
)

// DefaultGraceDays is how long after dispatch an order without any payment
// terms stays conditional before it is treated as overdue.
const DefaultGraceDays = 30

// Classifier derives receivable and payable statuses from raw order rows.
// It is pure and total: bad or missing fields are absorbed, never raised.
type Classifier struct {
	// EvidencePrefix is the public path prefix a stored image slot must
	// carry to count as evidence.
	EvidencePrefix string
	// GraceDays overrides DefaultGraceDays when positive.
	GraceDays int
}

func (c Classifier) graceDays() int {
	if c.GraceDays > 0 {
		return c.GraceDays
	}
	return DefaultGraceDays
}

// Receivable classifies the shipper side of the order against today,
// a KST calendar date. First matching rule wins:
//
//  1. collected → paid
//  2. no terms at all → overdue past the dispatch grace window, else
//     conditional-unpaid
//  3. due date passed, or prepaid carry without collection → overdue
//  4. due date still ahead → pending
//  5. everything else → overdue
func (c Classifier) Receivable(o *models.Order, today time.Time) enums.ReceivableStatus {
	if o == nil {
		return enums.ReceivableOverdue
	}
	today = kst.Midnight(today)

	if strings.TrimSpace(o.CollectionDate) != "" {
		return enums.ReceivablePaid
	}

	prepaidSet := money.ParseAmount(o.Prepaid) != 0
	due, dueSet := kst.ParseDate(strings.TrimSpace(o.PaymentDueDate))

	if !prepaidSet && !dueSet {
		if dispatched, ok := kst.ParseDateTime(strings.TrimSpace(o.DispatchAt)); ok {
			deadline := kst.Midnight(dispatched).AddDate(0, 0, c.graceDays())
			if today.After(deadline) {
				return enums.ReceivableOverdue
			}
			return enums.ReceivableConditionalUnpaid
		}
		return enums.ReceivableConditionalUnpaid
	}

	if dueSet && today.After(kst.Midnight(due)) {
		return enums.ReceivableOverdue
	}
	if prepaidSet {
		return enums.ReceivableOverdue
	}
	if dueSet {
		return enums.ReceivablePending
	}
	return enums.ReceivableOverdue
}

// Payable classifies the driver side. Payout requires the shipper money to
// be collected and both evidence streams to carry at least one image.
func (c Classifier) Payable(o *models.Order) enums.PayableStatus {
	if o == nil {
		return enums.PayableConditionalUnpayable
	}
	if strings.TrimSpace(o.PayoutDate) != "" {
		return enums.PayablePaidOut
	}
	if strings.TrimSpace(o.CollectionDate) != "" &&
		evidence.AnyFilled(o.TaxImages, c.EvidencePrefix) &&
		evidence.AnyFilled(o.ShipImages, c.EvidencePrefix) {
		return enums.PayablePayable
	}
	return enums.PayableConditionalUnpayable
}

// Statuses bundles both classifications for one order.
type Statuses struct {
	Receivable enums.ReceivableStatus `json:"receivable"`
	Payable    enums.PayableStatus    `json:"payable"`
}

// Classify derives both statuses at once.
func (c Classifier) Classify(o *models.Order, today time.Time) Statuses {
	return Statuses{
		Receivable: c.Receivable(o, today),
		Payable:    c.Payable(o),
	}
}
