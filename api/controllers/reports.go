package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/smlogitech/backoffice/api/responses"
	internalorders "github.com/smlogitech/backoffice/internal/orders"
	"github.com/smlogitech/backoffice/internal/reports"
	"github.com/smlogitech/backoffice/pkg/logger"
)

type reportFunc func(ctx context.Context, filter internalorders.Filter) (*reports.Table, error)

// UnpaidReceivablesReport exports orders still waiting on shipper payment.
func UnpaidReceivablesReport(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return reportHandler(svc.UnpaidReceivables, logg)
}

// UnpaidPayablesReport exports outstanding driver payouts per transfer
// destination.
func UnpaidPayablesReport(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return reportHandler(svc.UnpaidPayables, logg)
}

// TaxUnissuedReport exports orders whose shipper tax invoice is pending.
func TaxUnissuedReport(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return reportHandler(svc.TaxUnissued, logg)
}

// StatisticsReport exports the full listing with derived state and totals.
func StatisticsReport(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return reportHandler(svc.Statistics, logg)
}

// reportHandler runs the report over the shared listing filter and renders
// JSON by default or CSV when ?format=csv.
func reportHandler(run reportFunc, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := OrderFilterFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		table, err := run(r.Context(), query.Filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if r.URL.Query().Get("format") == "csv" {
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", table.Name+".csv"))
			if err := table.WriteCSV(w); err != nil && logg != nil {
				logg.Error(r.Context(), "write report csv", err)
			}
			return
		}
		responses.WriteSuccess(w, table)
	}
}
