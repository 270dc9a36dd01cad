package models

import "time"

// Order is one transport job. Every business column is stored as text;
// numeric and boolean interpretation happens in the money computer and the
// classifier. Monetary totals, VAT and statuses are derived and never
// persisted.
type Order struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	// Dates. Dates are YYYY-MM-DD, datetimes YYYY-MM-DDTHH:MM, always KST.
	OrderDate          string `gorm:"column:order_date;type:text;not null;default:''" json:"order_date"`
	DispatchAt         string `gorm:"column:dispatch_at;type:text;not null;default:''" json:"dispatch_at"`
	PaymentDueDate     string `gorm:"column:payment_due_date;type:text;not null;default:''" json:"payment_due_date"`
	CollectionDate     string `gorm:"column:collection_date;type:text;not null;default:''" json:"collection_date"`
	PayoutDate         string `gorm:"column:payout_date;type:text;not null;default:''" json:"payout_date"`
	TaxIssueDate       string `gorm:"column:tax_issue_date;type:text;not null;default:''" json:"tax_issue_date"`
	DriverTaxIssueDate string `gorm:"column:driver_tax_issue_date;type:text;not null;default:''" json:"driver_tax_issue_date"`
	MailConfirmDate    string `gorm:"column:mail_confirm_date;type:text;not null;default:''" json:"mail_confirm_date"`

	// Shipper (client) side.
	ClientName    string `gorm:"column:client_name;type:text;not null;default:''" json:"client_name"`
	ClientContact string `gorm:"column:client_contact;type:text;not null;default:''" json:"client_contact"`
	ClientBizNo   string `gorm:"column:client_bizno;type:text;not null;default:''" json:"client_bizno"`
	ClientAddress string `gorm:"column:client_address;type:text;not null;default:''" json:"client_address"`
	ClientEmail   string `gorm:"column:client_email;type:text;not null;default:''" json:"client_email"`

	// Driver side.
	DriverName          string `gorm:"column:driver_name;type:text;not null;default:''" json:"driver_name"`
	VehicleNo           string `gorm:"column:vehicle_no;type:text;not null;default:''" json:"vehicle_no"`
	DriverContact       string `gorm:"column:driver_contact;type:text;not null;default:''" json:"driver_contact"`
	DriverAccount       string `gorm:"column:driver_account;type:text;not null;default:''" json:"driver_account"`
	DriverBizNo         string `gorm:"column:driver_bizno;type:text;not null;default:''" json:"driver_bizno"`
	DriverBank          string `gorm:"column:driver_bank;type:text;not null;default:''" json:"driver_bank"`
	DriverAccountHolder string `gorm:"column:driver_account_holder;type:text;not null;default:''" json:"driver_account_holder"`

	// Routing.
	Route          string `gorm:"column:route;type:text;not null;default:''" json:"route"`
	PickupDelivery string `gorm:"column:pickup_delivery;type:text;not null;default:''" json:"pickup_delivery"`

	// Money, shipper side. Supply value = commission + prepaid + base freight.
	Commission  string `gorm:"column:commission;type:text;not null;default:''" json:"commission"`
	Prepaid     string `gorm:"column:prepaid;type:text;not null;default:''" json:"prepaid"`
	BaseFreight string `gorm:"column:base_freight;type:text;not null;default:''" json:"base_freight"`
	ClientCash  string `gorm:"column:client_cash;type:text;not null;default:''" json:"client_cash"`

	// Money, driver side.
	DriverFreight string `gorm:"column:driver_freight;type:text;not null;default:''" json:"driver_freight"`
	DriverCash    string `gorm:"column:driver_cash;type:text;not null;default:''" json:"driver_cash"`

	// Flags. Checkbox columns hold the truthy/falsy markers, not booleans.
	TaxIssued       string `gorm:"column:tax_issued;type:text;not null;default:''" json:"tax_issued"`
	DriverTaxIssued string `gorm:"column:driver_tax_issued;type:text;not null;default:''" json:"driver_tax_issued"`
	MailConfirmed   string `gorm:"column:mail_confirmed;type:text;not null;default:''" json:"mail_confirmed"`
	ClientMonthEnd  string `gorm:"column:client_month_end;type:text;not null;default:''" json:"client_month_end"`
	DriverMonthEnd  string `gorm:"column:driver_month_end;type:text;not null;default:''" json:"driver_month_end"`

	// Evidence: comma-separated 5-slot path lists.
	TaxImages  string `gorm:"column:tax_images;type:text;not null;default:',,,,'" json:"tax_images"`
	ShipImages string `gorm:"column:ship_images;type:text;not null;default:',,,,'" json:"ship_images"`

	Memo string `gorm:"column:memo;type:text;not null;default:''" json:"memo"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName pins the legacy table name.
func (Order) TableName() string { return "orders" }
