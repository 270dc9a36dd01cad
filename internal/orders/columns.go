package orders

// ColumnKind declares how a stored order column is sanitized and
// interpreted. Everything is persisted as text regardless of kind.
type ColumnKind string

const (
	KindText     ColumnKind = "text"
	KindNumber   ColumnKind = "number"
	KindDate     ColumnKind = "date"
	KindDateTime ColumnKind = "datetime"
	KindCheckbox ColumnKind = "checkbox"
)

// Checkbox markers as rendered in the admin grid.
const (
	CheckOn  = "✅"
	CheckOff = "❌"
)

// Columns is the known-columns whitelist: every patchable order column and
// its kind. Single-field patches naming anything else are rejected.
var Columns = map[string]ColumnKind{
	"order_date":            KindDate,
	"dispatch_at":           KindDateTime,
	"payment_due_date":      KindDate,
	"collection_date":       KindDate,
	"payout_date":           KindDate,
	"tax_issue_date":        KindDate,
	"driver_tax_issue_date": KindDate,
	"mail_confirm_date":     KindDate,

	"client_name":    KindText,
	"client_contact": KindText,
	"client_bizno":   KindText,
	"client_address": KindText,
	"client_email":   KindText,

	"driver_name":           KindText,
	"vehicle_no":            KindText,
	"driver_contact":        KindText,
	"driver_account":        KindText,
	"driver_bizno":          KindText,
	"driver_bank":           KindText,
	"driver_account_holder": KindText,

	"route":           KindText,
	"pickup_delivery": KindText,

	"commission":   KindNumber,
	"prepaid":      KindNumber,
	"base_freight": KindNumber,
	"client_cash":  KindText,

	"driver_freight": KindNumber,
	"driver_cash":    KindText,

	"tax_issued":        KindCheckbox,
	"driver_tax_issued": KindCheckbox,
	"mail_confirmed":    KindCheckbox,
	"client_month_end":  KindCheckbox,
	"driver_month_end":  KindCheckbox,

	"tax_images":  KindText,
	"ship_images": KindText,

	"memo": KindText,
}

// pairedDate maps each flag column to the date column it mirrors. Setting
// either side of a pair updates the other inside the same write.
var pairedDate = map[string]string{
	"tax_issued":        "tax_issue_date",
	"driver_tax_issued": "driver_tax_issue_date",
	"mail_confirmed":    "mail_confirm_date",
}

// pairedFlag is the reverse mapping of pairedDate.
var pairedFlag = func() map[string]string {
	m := make(map[string]string, len(pairedDate))
	for flag, date := range pairedDate {
		m[date] = flag
	}
	return m
}()

// KnownColumn reports whether name is in the whitelist.
func KnownColumn(name string) bool {
	_, ok := Columns[name]
	return ok
}
