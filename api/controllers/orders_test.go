package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/smlogitech/backoffice/pkg/enums"
	pkgerrors "github.com/smlogitech/backoffice/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderFilterFromQuery(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/api/v1/orders?date_from=2025-06-01&date_to=2025-06-30&client=한진&driver=김기사&client_month_end=true&receivable=overdue,conditional_unpaid&payable=payable",
		nil)

	query, err := OrderFilterFromQuery(r)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-01", query.DateFrom)
	assert.Equal(t, "2025-06-30", query.DateTo)
	assert.Equal(t, "한진", query.ClientName)
	assert.Equal(t, "김기사", query.DriverName)
	assert.True(t, query.ClientMonthEnd)
	assert.False(t, query.DriverMonthEnd)
	assert.Equal(t, []enums.ReceivableStatus{enums.ReceivableOverdue, enums.ReceivableConditionalUnpaid}, query.Receivable)
	assert.Equal(t, []enums.PayableStatus{enums.PayablePayable}, query.Payable)
}

func TestOrderFilterFromQueryEmpty(t *testing.T) {
	query, err := OrderFilterFromQuery(httptest.NewRequest("GET", "/api/v1/orders", nil))
	require.NoError(t, err)
	assert.Empty(t, query.Receivable)
	assert.Empty(t, query.Payable)
	assert.False(t, query.ClientMonthEnd)
}

func TestOrderFilterFromQueryRejectsBadStatus(t *testing.T) {
	_, err := OrderFilterFromQuery(httptest.NewRequest("GET", "/api/v1/orders?receivable=unpaidish", nil))
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	_, err = OrderFilterFromQuery(httptest.NewRequest("GET", "/api/v1/orders?payable=overdue", nil))
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}
