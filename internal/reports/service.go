package reports

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/smlogitech/backoffice/internal/orders"
	"github.com/smlogitech/backoffice/pkg/bankcode"
	"github.com/smlogitech/backoffice/pkg/enums"
)

// Service renders the four back-office exports. Every report is a filtered
// order listing projected to a flat table; derived amounts and statuses come
// from the order service, never from stored columns.
type Service interface {
	UnpaidReceivables(ctx context.Context, filter orders.Filter) (*Table, error)
	UnpaidPayables(ctx context.Context, filter orders.Filter) (*Table, error)
	TaxUnissued(ctx context.Context, filter orders.Filter) (*Table, error)
	Statistics(ctx context.Context, filter orders.Filter) (*Table, error)
}

type service struct {
	orders orders.Service
}

// NewService builds the report exporter on top of the order service.
func NewService(orderSvc orders.Service) (Service, error) {
	if orderSvc == nil {
		return nil, fmt.Errorf("order service required")
	}
	return &service{orders: orderSvc}, nil
}

// UnpaidReceivables lists every order still waiting on shipper payment,
// sorted by client then date.
func (s *service) UnpaidReceivables(ctx context.Context, filter orders.Filter) (*Table, error) {
	views, err := s.orders.List(ctx, orders.Query{
		Filter: filter,
		Receivable: []enums.ReceivableStatus{
			enums.ReceivableOverdue,
			enums.ReceivableConditionalUnpaid,
		},
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(views, func(i, j int) bool {
		a, b := views[i], views[j]
		if a.ClientName != b.ClientName {
			return a.ClientName < b.ClientName
		}
		if a.OrderDate != b.OrderDate {
			return a.OrderDate < b.OrderDate
		}
		return a.Order.ID < b.Order.ID
	})

	table := &Table{
		Name:   "unpaid_receivables",
		Header: []string{"거래처", "사업자번호", "일자", "노선", "지급기한", "공급가액", "부가세", "합계", "상태"},
	}
	for i := range views {
		v := &views[i]
		table.Rows = append(table.Rows, []string{
			strings.TrimSpace(v.ClientName),
			strings.TrimSpace(v.ClientBizNo),
			v.OrderDate,
			strings.TrimSpace(v.Route),
			v.PaymentDueDate,
			formatAmount(v.Amounts.SupplyValue),
			formatAmount(v.Amounts.ShipperVAT),
			formatAmount(v.Amounts.ShipperTotal),
			v.Statuses.Receivable.String(),
		})
	}
	return table, nil
}

// payeeKey identifies one transfer destination on the payable export.
type payeeKey struct {
	Driver  string
	Bank    string
	Holder  string
	Account string
}

// UnpaidPayables aggregates outstanding driver freight per transfer
// destination, with the bank name resolved to its wire code.
func (s *service) UnpaidPayables(ctx context.Context, filter orders.Filter) (*Table, error) {
	views, err := s.orders.List(ctx, orders.Query{
		Filter: filter,
		Payable: []enums.PayableStatus{
			enums.PayablePayable,
			enums.PayableConditionalUnpayable,
		},
	})
	if err != nil {
		return nil, err
	}

	sums := map[payeeKey]int64{}
	counts := map[payeeKey]int{}
	for i := range views {
		v := &views[i]
		key := payeeKey{
			Driver:  strings.TrimSpace(v.DriverName),
			Bank:    strings.TrimSpace(v.DriverBank),
			Holder:  strings.TrimSpace(v.DriverAccountHolder),
			Account: strings.TrimSpace(v.DriverAccount),
		}
		sums[key] += v.Amounts.DriverFreight
		counts[key]++
	}

	keys := make([]payeeKey, 0, len(sums))
	for key := range sums {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Driver != keys[j].Driver {
			return keys[i].Driver < keys[j].Driver
		}
		return keys[i].Account < keys[j].Account
	})

	table := &Table{
		Name:   "unpaid_payables",
		Header: []string{"은행코드", "은행", "계좌번호", "예금주", "기사명", "건수", "지급액"},
	}
	for _, key := range keys {
		table.Rows = append(table.Rows, []string{
			bankcode.Lookup(key.Bank),
			key.Bank,
			key.Account,
			key.Holder,
			key.Driver,
			strconv.Itoa(counts[key]),
			formatAmount(sums[key]),
		})
	}
	return table, nil
}

// TaxUnissued lists orders whose shipper tax invoice has not gone out.
// Rows carrying VAT come first with grand totals; zero-VAT rows follow
// under a "not required" marker.
func (s *service) TaxUnissued(ctx context.Context, filter orders.Filter) (*Table, error) {
	views, err := s.orders.List(ctx, orders.Query{Filter: filter})
	if err != nil {
		return nil, err
	}

	var withVAT, withoutVAT []*orders.View
	for i := range views {
		v := &views[i]
		if v.TaxIssued == orders.CheckOn {
			continue
		}
		if v.Amounts.ShipperVAT != 0 {
			withVAT = append(withVAT, v)
		} else {
			withoutVAT = append(withoutVAT, v)
		}
	}

	table := &Table{
		Name:   "tax_unissued",
		Header: []string{"일자", "거래처", "사업자번호", "이메일", "노선", "공급가액", "부가세", "합계"},
	}

	var supplySum, vatSum, totalSum int64
	for _, v := range withVAT {
		supplySum += v.Amounts.SupplyValue
		vatSum += v.Amounts.ShipperVAT
		totalSum += v.Amounts.ShipperTotal
		table.Rows = append(table.Rows, taxRow(v))
	}
	table.Rows = append(table.Rows, []string{
		"합계", "", "", "", "",
		formatAmount(supplySum),
		formatAmount(vatSum),
		formatAmount(totalSum),
	})

	table.Rows = append(table.Rows, []string{"발행 불필요", "", "", "", "", "", "", ""})
	for _, v := range withoutVAT {
		table.Rows = append(table.Rows, taxRow(v))
	}
	return table, nil
}

func taxRow(v *orders.View) []string {
	return []string{
		v.OrderDate,
		strings.TrimSpace(v.ClientName),
		strings.TrimSpace(v.ClientBizNo),
		strings.TrimSpace(v.ClientEmail),
		strings.TrimSpace(v.Route),
		formatAmount(v.Amounts.SupplyValue),
		formatAmount(v.Amounts.ShipperVAT),
		formatAmount(v.Amounts.ShipperTotal),
	}
}

// Statistics exports the full filtered listing with derived amounts and
// statuses, closed by a totals row.
func (s *service) Statistics(ctx context.Context, filter orders.Filter) (*Table, error) {
	views, err := s.orders.List(ctx, orders.Query{Filter: filter})
	if err != nil {
		return nil, err
	}

	table := &Table{
		Name: "statistics",
		Header: []string{
			"번호", "일자", "거래처", "기사명", "차량번호", "노선",
			"공급가액", "부가세", "합계",
			"기사운임", "기사부가세", "기사합계",
			"수익", "수금상태", "지급상태",
		},
	}

	var supplySum, vatSum, totalSum int64
	var driverSum, driverVATSum, driverTotalSum, profitSum int64
	for i := range views {
		v := &views[i]
		supplySum += v.Amounts.SupplyValue
		vatSum += v.Amounts.ShipperVAT
		totalSum += v.Amounts.ShipperTotal
		driverSum += v.Amounts.DriverFreight
		driverVATSum += v.Amounts.DriverVAT
		driverTotalSum += v.Amounts.DriverTotal
		profitSum += v.Amounts.NetProfit

		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(v.Order.ID, 10),
			v.OrderDate,
			strings.TrimSpace(v.ClientName),
			strings.TrimSpace(v.DriverName),
			strings.TrimSpace(v.VehicleNo),
			strings.TrimSpace(v.Route),
			formatAmount(v.Amounts.SupplyValue),
			formatAmount(v.Amounts.ShipperVAT),
			formatAmount(v.Amounts.ShipperTotal),
			formatAmount(v.Amounts.DriverFreight),
			formatAmount(v.Amounts.DriverVAT),
			formatAmount(v.Amounts.DriverTotal),
			formatAmount(v.Amounts.NetProfit),
			v.Statuses.Receivable.String(),
			v.Statuses.Payable.String(),
		})
	}

	table.Rows = append(table.Rows, []string{
		"합계", "", "", "", "", "",
		formatAmount(supplySum),
		formatAmount(vatSum),
		formatAmount(totalSum),
		formatAmount(driverSum),
		formatAmount(driverVATSum),
		formatAmount(driverTotalSum),
		formatAmount(profitSum),
		"", "",
	})
	return table, nil
}

func formatAmount(v int64) string {
	return strconv.FormatInt(v, 10)
}
