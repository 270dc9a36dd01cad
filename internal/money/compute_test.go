package money

import (
	"testing"

	"github.com/smlogitech/backoffice/pkg/db/models"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	assert.Equal(t, int64(550000), ParseAmount("550,000"))
	assert.Equal(t, int64(550000), ParseAmount(" 550000 "))
	assert.Equal(t, int64(-12000), ParseAmount("-12,000"))
	assert.Equal(t, int64(0), ParseAmount(""))
	assert.Equal(t, int64(0), ParseAmount("오만원"))
	assert.Equal(t, int64(0), ParseAmount("12abc"))
	assert.Equal(t, int64(13), ParseAmount("12.5"))
}

func TestVATRoundsHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, int64(10), VAT(100, false))
	assert.Equal(t, int64(11), VAT(105, false))
	assert.Equal(t, int64(-11), VAT(-105, false))
	assert.Equal(t, int64(0), VAT(100, true))
}

func TestIsCash(t *testing.T) {
	assert.True(t, IsCash("현금"))
	assert.True(t, IsCash(" 현금 "))
	assert.False(t, IsCash(""))
	assert.False(t, IsCash("카드"))
}

func TestComputeBothSides(t *testing.T) {
	amounts := Compute(&models.Order{
		Commission:    "50,000",
		Prepaid:       "100000",
		BaseFreight:   "350,000",
		DriverFreight: "400,000",
	})

	assert.Equal(t, int64(500000), amounts.SupplyValue)
	assert.Equal(t, int64(50000), amounts.ShipperVAT)
	assert.Equal(t, int64(550000), amounts.ShipperTotal)
	assert.Equal(t, int64(400000), amounts.DriverFreight)
	assert.Equal(t, int64(40000), amounts.DriverVAT)
	assert.Equal(t, int64(440000), amounts.DriverTotal)
	assert.Equal(t, int64(110000), amounts.NetProfit)
}

func TestComputeCashSuppressesVAT(t *testing.T) {
	amounts := Compute(&models.Order{
		BaseFreight: "300000",
		ClientCash:  "현금",
		DriverFreight: "200000",
		DriverCash:    "현금",
	})

	assert.Equal(t, int64(300000), amounts.SupplyValue)
	assert.Equal(t, int64(0), amounts.ShipperVAT)
	assert.Equal(t, int64(300000), amounts.ShipperTotal)
	assert.Equal(t, int64(0), amounts.DriverVAT)
	assert.Equal(t, int64(200000), amounts.DriverTotal)
	assert.Equal(t, int64(100000), amounts.NetProfit)
}

func TestComputeGarbageIsZero(t *testing.T) {
	amounts := Compute(&models.Order{
		Commission:    "n/a",
		DriverFreight: "",
	})

	assert.Equal(t, Amounts{}, amounts)
}
