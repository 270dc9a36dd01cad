package settlement

import (
	"sort"
	"strings"

	"github.com/smlogitech/backoffice/internal/money"
	"github.com/smlogitech/backoffice/pkg/db/models"
)

// GroupBy selects the settlement grouping key.
type GroupBy string

const (
	GroupByClient GroupBy = "client"
	GroupByDriver GroupBy = "driver"
)

// Row is one order projected onto the grouped settlement view. For client
// grouping Amount/VAT/Total are the shipper-side figures; for driver
// grouping they are the driver-side figures.
type Row struct {
	OrderID int64  `json:"order_id"`
	Date    string `json:"date"`
	Route   string `json:"route"`
	Amount  int64  `json:"amount"`
	VAT     int64  `json:"vat"`
	Total   int64  `json:"total"`
}

// Group is all rows for one client or driver with column subtotals.
type Group struct {
	Key         string `json:"key"`
	Rows        []Row  `json:"rows"`
	AmountTotal int64  `json:"amount_total"`
	VATTotal    int64  `json:"vat_total"`
	GrandTotal  int64  `json:"grand_total"`
}

// Result is the full grouped settlement with overall totals.
type Result struct {
	GroupBy     GroupBy `json:"group_by"`
	Groups      []Group `json:"groups"`
	AmountTotal int64   `json:"amount_total"`
	VATTotal    int64   `json:"vat_total"`
	GrandTotal  int64   `json:"grand_total"`
}

// Aggregate groups the already-filtered orders by client or driver,
// sorting rows by order date ascending within each group and groups by key.
// It is pure; it never touches the store.
func Aggregate(orders []models.Order, by GroupBy) Result {
	buckets := map[string][]Row{}
	for i := range orders {
		o := &orders[i]
		amounts := money.Compute(o)

		var key string
		row := Row{
			OrderID: o.ID,
			Date:    strings.TrimSpace(o.OrderDate),
			Route:   strings.TrimSpace(o.Route),
		}
		switch by {
		case GroupByDriver:
			key = strings.TrimSpace(o.DriverName)
			row.Amount = amounts.DriverFreight
			row.VAT = amounts.DriverVAT
			row.Total = amounts.DriverTotal
		default:
			key = strings.TrimSpace(o.ClientName)
			row.Amount = amounts.SupplyValue
			row.VAT = amounts.ShipperVAT
			row.Total = amounts.ShipperTotal
		}
		buckets[key] = append(buckets[key], row)
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := Result{GroupBy: by}
	for _, key := range keys {
		rows := buckets[key]
		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].Date != rows[j].Date {
				return rows[i].Date < rows[j].Date
			}
			return rows[i].OrderID < rows[j].OrderID
		})

		group := Group{Key: key, Rows: rows}
		for _, row := range rows {
			group.AmountTotal += row.Amount
			group.VATTotal += row.VAT
			group.GrandTotal += row.Total
		}
		result.AmountTotal += group.AmountTotal
		result.VATTotal += group.VATTotal
		result.GrandTotal += group.GrandTotal
		result.Groups = append(result.Groups, group)
	}
	return result
}
