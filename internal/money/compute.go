package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/smlogitech/backoffice/pkg/db/models"
)

// CashToken marks an order side as a cash deal, which suppresses VAT.
const CashToken = "현금"

var vatRate = decimal.NewFromFloat(0.10)

// Amounts carries the six derived monetary figures for one order. All
// values are whole KRW.
type Amounts struct {
	SupplyValue   int64 `json:"supply_value"`
	ShipperVAT    int64 `json:"shipper_vat"`
	ShipperTotal  int64 `json:"shipper_total"`
	DriverFreight int64 `json:"driver_freight"`
	DriverVAT     int64 `json:"driver_vat"`
	DriverTotal   int64 `json:"driver_total"`
	NetProfit     int64 `json:"net_profit"`
}

// Compute derives the monetary totals for both sides of the order. It is
// total: missing or garbage fields count as zero and it never fails.
func Compute(o *models.Order) Amounts {
	supply := ParseAmount(o.Commission) + ParseAmount(o.Prepaid) + ParseAmount(o.BaseFreight)
	shipperVAT := VAT(supply, IsCash(o.ClientCash))
	shipperTotal := supply + shipperVAT

	driverFreight := ParseAmount(o.DriverFreight)
	driverVAT := VAT(driverFreight, IsCash(o.DriverCash))
	driverTotal := driverFreight + driverVAT

	return Amounts{
		SupplyValue:   supply,
		ShipperVAT:    shipperVAT,
		ShipperTotal:  shipperTotal,
		DriverFreight: driverFreight,
		DriverVAT:     driverVAT,
		DriverTotal:   driverTotal,
		NetProfit:     shipperTotal - driverTotal,
	}
}

// ParseAmount reads a stored money column as whole KRW. Thousands
// separators are tolerated; anything non-numeric is zero.
func ParseAmount(raw string) int64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return 0
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	return d.Round(0).IntPart()
}

// VAT is 10% of amount rounded half away from zero, or zero for cash deals.
func VAT(amount int64, cash bool) int64 {
	if cash {
		return 0
	}
	return decimal.NewFromInt(amount).Mul(vatRate).Round(0).IntPart()
}

// IsCash reports whether the stored cash-flag column equals the cash token
// after trimming.
func IsCash(value string) bool {
	return strings.TrimSpace(value) == CashToken
}
