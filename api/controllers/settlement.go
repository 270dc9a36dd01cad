package controllers

import (
	"net/http"
	"strings"

	"github.com/smlogitech/backoffice/api/responses"
	internalorders "github.com/smlogitech/backoffice/internal/orders"
	"github.com/smlogitech/backoffice/internal/settlement"
	"github.com/smlogitech/backoffice/pkg/db/models"
	pkgerrors "github.com/smlogitech/backoffice/pkg/errors"
	"github.com/smlogitech/backoffice/pkg/logger"
)

// Settlement aggregates the filtered orders into per-client or per-driver
// groups with subtotals and overall totals.
func Settlement(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var by settlement.GroupBy
		switch strings.TrimSpace(r.URL.Query().Get("group_by")) {
		case "", string(settlement.GroupByClient):
			by = settlement.GroupByClient
		case string(settlement.GroupByDriver):
			by = settlement.GroupByDriver
		default:
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "group_by must be client or driver"))
			return
		}

		query, err := OrderFilterFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		views, err := svc.List(r.Context(), query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows := make([]models.Order, 0, len(views))
		for i := range views {
			rows = append(rows, views[i].Order)
		}
		responses.WriteSuccess(w, settlement.Aggregate(rows, by))
	}
}
