package settlement

import (
	"testing"

	"github.com/smlogitech/backoffice/pkg/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settlementOrders() []models.Order {
	return []models.Order{
		{ID: 3, OrderDate: "2025-06-02", ClientName: "한진물류", DriverName: "김기사", Route: "서울→부산", BaseFreight: "300,000", DriverFreight: "250000"},
		{ID: 1, OrderDate: "2025-06-01", ClientName: "한진물류", DriverName: "박기사", Route: "서울→대구", BaseFreight: "200000", DriverFreight: "150000"},
		{ID: 2, OrderDate: "2025-06-01", ClientName: "동방상사", DriverName: "김기사", Route: "인천→광주", BaseFreight: "100000", ClientCash: "현금", DriverFreight: "80000"},
	}
}

func TestAggregateByClient(t *testing.T) {
	result := Aggregate(settlementOrders(), GroupByClient)

	require.Len(t, result.Groups, 2)
	// groups sorted by key
	assert.Equal(t, "동방상사", result.Groups[0].Key)
	assert.Equal(t, "한진물류", result.Groups[1].Key)

	// cash deal carries no VAT
	cash := result.Groups[0]
	require.Len(t, cash.Rows, 1)
	assert.Equal(t, int64(100000), cash.AmountTotal)
	assert.Equal(t, int64(0), cash.VATTotal)
	assert.Equal(t, int64(100000), cash.GrandTotal)

	// rows within a group ordered by date then id
	hanjin := result.Groups[1]
	require.Len(t, hanjin.Rows, 2)
	assert.Equal(t, int64(1), hanjin.Rows[0].OrderID)
	assert.Equal(t, int64(3), hanjin.Rows[1].OrderID)
	assert.Equal(t, int64(500000), hanjin.AmountTotal)
	assert.Equal(t, int64(50000), hanjin.VATTotal)
	assert.Equal(t, int64(550000), hanjin.GrandTotal)

	assert.Equal(t, int64(600000), result.AmountTotal)
	assert.Equal(t, int64(50000), result.VATTotal)
	assert.Equal(t, int64(650000), result.GrandTotal)
}

func TestAggregateByDriver(t *testing.T) {
	result := Aggregate(settlementOrders(), GroupByDriver)

	require.Len(t, result.Groups, 2)
	assert.Equal(t, "김기사", result.Groups[0].Key)
	assert.Equal(t, "박기사", result.Groups[1].Key)

	kim := result.Groups[0]
	require.Len(t, kim.Rows, 2)
	assert.Equal(t, int64(2), kim.Rows[0].OrderID)
	assert.Equal(t, int64(3), kim.Rows[1].OrderID)
	assert.Equal(t, int64(330000), kim.AmountTotal)
	assert.Equal(t, int64(33000), kim.VATTotal)
	assert.Equal(t, int64(363000), kim.GrandTotal)
}

func TestAggregateEmpty(t *testing.T) {
	result := Aggregate(nil, GroupByClient)
	assert.Empty(t, result.Groups)
	assert.Equal(t, int64(0), result.GrandTotal)
}
