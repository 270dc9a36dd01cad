package orders

import (
	"github.com/smlogitech/backoffice/internal/money"
	"github.com/smlogitech/backoffice/internal/settlement"
	"github.com/smlogitech/backoffice/pkg/db/models"
	"github.com/smlogitech/backoffice/pkg/enums"
)

// Query extends the persisted-column filter with derived-status selectors,
// which are applied after classification.
type Query struct {
	Filter
	Receivable []enums.ReceivableStatus
	Payable    []enums.PayableStatus
}

// View is one order together with its derived amounts and statuses, the
// shape every read path returns. Derived values are recomputed per read
// and never stored.
type View struct {
	models.Order
	Amounts  money.Amounts       `json:"amounts"`
	Statuses settlement.Statuses `json:"statuses"`
}

func (q Query) wantsReceivable(status enums.ReceivableStatus) bool {
	if len(q.Receivable) == 0 {
		return true
	}
	for _, candidate := range q.Receivable {
		if candidate == status {
			return true
		}
	}
	return false
}

func (q Query) wantsPayable(status enums.PayableStatus) bool {
	if len(q.Payable) == 0 {
		return true
	}
	for _, candidate := range q.Payable {
		if candidate == status {
			return true
		}
	}
	return false
}
