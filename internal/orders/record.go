package orders

import "github.com/smlogitech/backoffice/pkg/db/models"

// Column accessors keep the map[string]string form used by the form layer
// and the typed row in sync without reflection.

var setters = map[string]func(*models.Order, string){
	"order_date":            func(o *models.Order, v string) { o.OrderDate = v },
	"dispatch_at":           func(o *models.Order, v string) { o.DispatchAt = v },
	"payment_due_date":      func(o *models.Order, v string) { o.PaymentDueDate = v },
	"collection_date":       func(o *models.Order, v string) { o.CollectionDate = v },
	"payout_date":           func(o *models.Order, v string) { o.PayoutDate = v },
	"tax_issue_date":        func(o *models.Order, v string) { o.TaxIssueDate = v },
	"driver_tax_issue_date": func(o *models.Order, v string) { o.DriverTaxIssueDate = v },
	"mail_confirm_date":     func(o *models.Order, v string) { o.MailConfirmDate = v },
	"client_name":           func(o *models.Order, v string) { o.ClientName = v },
	"client_contact":        func(o *models.Order, v string) { o.ClientContact = v },
	"client_bizno":          func(o *models.Order, v string) { o.ClientBizNo = v },
	"client_address":        func(o *models.Order, v string) { o.ClientAddress = v },
	"client_email":          func(o *models.Order, v string) { o.ClientEmail = v },
	"driver_name":           func(o *models.Order, v string) { o.DriverName = v },
	"vehicle_no":            func(o *models.Order, v string) { o.VehicleNo = v },
	"driver_contact":        func(o *models.Order, v string) { o.DriverContact = v },
	"driver_account":        func(o *models.Order, v string) { o.DriverAccount = v },
	"driver_bizno":          func(o *models.Order, v string) { o.DriverBizNo = v },
	"driver_bank":           func(o *models.Order, v string) { o.DriverBank = v },
	"driver_account_holder": func(o *models.Order, v string) { o.DriverAccountHolder = v },
	"route":                 func(o *models.Order, v string) { o.Route = v },
	"pickup_delivery":       func(o *models.Order, v string) { o.PickupDelivery = v },
	"commission":            func(o *models.Order, v string) { o.Commission = v },
	"prepaid":               func(o *models.Order, v string) { o.Prepaid = v },
	"base_freight":          func(o *models.Order, v string) { o.BaseFreight = v },
	"client_cash":           func(o *models.Order, v string) { o.ClientCash = v },
	"driver_freight":        func(o *models.Order, v string) { o.DriverFreight = v },
	"driver_cash":           func(o *models.Order, v string) { o.DriverCash = v },
	"tax_issued":            func(o *models.Order, v string) { o.TaxIssued = v },
	"driver_tax_issued":     func(o *models.Order, v string) { o.DriverTaxIssued = v },
	"mail_confirmed":        func(o *models.Order, v string) { o.MailConfirmed = v },
	"client_month_end":      func(o *models.Order, v string) { o.ClientMonthEnd = v },
	"driver_month_end":      func(o *models.Order, v string) { o.DriverMonthEnd = v },
	"tax_images":            func(o *models.Order, v string) { o.TaxImages = v },
	"ship_images":           func(o *models.Order, v string) { o.ShipImages = v },
	"memo":                  func(o *models.Order, v string) { o.Memo = v },
}

var getters = map[string]func(*models.Order) string{
	"order_date":            func(o *models.Order) string { return o.OrderDate },
	"dispatch_at":           func(o *models.Order) string { return o.DispatchAt },
	"payment_due_date":      func(o *models.Order) string { return o.PaymentDueDate },
	"collection_date":       func(o *models.Order) string { return o.CollectionDate },
	"payout_date":           func(o *models.Order) string { return o.PayoutDate },
	"tax_issue_date":        func(o *models.Order) string { return o.TaxIssueDate },
	"driver_tax_issue_date": func(o *models.Order) string { return o.DriverTaxIssueDate },
	"mail_confirm_date":     func(o *models.Order) string { return o.MailConfirmDate },
	"client_name":           func(o *models.Order) string { return o.ClientName },
	"client_contact":        func(o *models.Order) string { return o.ClientContact },
	"client_bizno":          func(o *models.Order) string { return o.ClientBizNo },
	"client_address":        func(o *models.Order) string { return o.ClientAddress },
	"client_email":          func(o *models.Order) string { return o.ClientEmail },
	"driver_name":           func(o *models.Order) string { return o.DriverName },
	"vehicle_no":            func(o *models.Order) string { return o.VehicleNo },
	"driver_contact":        func(o *models.Order) string { return o.DriverContact },
	"driver_account":        func(o *models.Order) string { return o.DriverAccount },
	"driver_bizno":          func(o *models.Order) string { return o.DriverBizNo },
	"driver_bank":           func(o *models.Order) string { return o.DriverBank },
	"driver_account_holder": func(o *models.Order) string { return o.DriverAccountHolder },
	"route":                 func(o *models.Order) string { return o.Route },
	"pickup_delivery":       func(o *models.Order) string { return o.PickupDelivery },
	"commission":            func(o *models.Order) string { return o.Commission },
	"prepaid":               func(o *models.Order) string { return o.Prepaid },
	"base_freight":          func(o *models.Order) string { return o.BaseFreight },
	"client_cash":           func(o *models.Order) string { return o.ClientCash },
	"driver_freight":        func(o *models.Order) string { return o.DriverFreight },
	"driver_cash":           func(o *models.Order) string { return o.DriverCash },
	"tax_issued":            func(o *models.Order) string { return o.TaxIssued },
	"driver_tax_issued":     func(o *models.Order) string { return o.DriverTaxIssued },
	"mail_confirmed":        func(o *models.Order) string { return o.MailConfirmed },
	"client_month_end":      func(o *models.Order) string { return o.ClientMonthEnd },
	"driver_month_end":      func(o *models.Order) string { return o.DriverMonthEnd },
	"tax_images":            func(o *models.Order) string { return o.TaxImages },
	"ship_images":           func(o *models.Order) string { return o.ShipImages },
	"memo":                  func(o *models.Order) string { return o.Memo },
}

// ApplyFields writes every known field of the map onto the row. Unknown
// names are ignored; callers are expected to have run SanitizeRecord first.
func ApplyFields(o *models.Order, fields map[string]string) {
	for name, value := range fields {
		if set, ok := setters[name]; ok {
			set(o, value)
		}
	}
}

// FieldValue reads one column off the row by name.
func FieldValue(o *models.Order, name string) (string, bool) {
	get, ok := getters[name]
	if !ok {
		return "", false
	}
	return get(o), true
}
