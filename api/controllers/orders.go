package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/smlogitech/backoffice/api/responses"
	"github.com/smlogitech/backoffice/api/validators"
	internalorders "github.com/smlogitech/backoffice/internal/orders"
	"github.com/smlogitech/backoffice/pkg/enums"
	pkgerrors "github.com/smlogitech/backoffice/pkg/errors"
	"github.com/smlogitech/backoffice/pkg/logger"
)

// OrderFilterFromQuery parses the shared listing filter: a date range on
// order_date, substring matches on client/driver, month-end flags, and
// derived-status selectors applied after classification.
func OrderFilterFromQuery(r *http.Request) (internalorders.Query, error) {
	q := r.URL.Query()
	query := internalorders.Query{
		Filter: internalorders.Filter{
			DateFrom:       strings.TrimSpace(q.Get("date_from")),
			DateTo:         strings.TrimSpace(q.Get("date_to")),
			ClientName:     strings.TrimSpace(q.Get("client")),
			DriverName:     strings.TrimSpace(q.Get("driver")),
			ClientMonthEnd: q.Get("client_month_end") == "true",
			DriverMonthEnd: q.Get("driver_month_end") == "true",
		},
	}

	for _, raw := range splitCSV(q.Get("receivable")) {
		status, err := enums.ParseReceivableStatus(raw)
		if err != nil {
			return query, pkgerrors.New(pkgerrors.CodeValidation, "invalid receivable status").
				WithDetails(map[string]any{"value": raw})
		}
		query.Receivable = append(query.Receivable, status)
	}
	for _, raw := range splitCSV(q.Get("payable")) {
		status, err := enums.ParsePayableStatus(raw)
		if err != nil {
			return query, pkgerrors.New(pkgerrors.CodeValidation, "invalid payable status").
				WithDetails(map[string]any{"value": raw})
		}
		query.Payable = append(query.Payable, status)
	}
	return query, nil
}

func splitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ListOrders returns the filtered order listing with derived amounts and
// statuses on every row.
func ListOrders(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
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
		responses.WriteSuccess(w, views)
	}
}

// GetOrder returns one order with derived state.
func GetOrder(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		view, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CreateOrder saves a new order record from a raw field map.
func CreateOrder(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields map[string]string
		if err := validators.DecodeLooseJSONBody(r, &fields); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := svc.Save(r.Context(), 0, fields)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]int64{"id": id})
	}
}

// UpdateOrder overwrites an existing order record from a raw field map.
func UpdateOrder(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var fields map[string]string
		if err := validators.DecodeLooseJSONBody(r, &fields); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if _, err := svc.Save(r.Context(), id, fields); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]int64{"id": id})
	}
}

type patchRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// PatchOrder writes one whitelisted column, mirroring flag/date pairs.
func PatchOrder(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var req patchRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Patch(r.Context(), id, req.Field, req.Value); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]int64{"id": id})
	}
}

// DeleteOrder removes the order and journals the deletion.
func DeleteOrder(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]int64{"id": id})
	}
}

// RecallOrder clones the order as a fresh dispatch with settlement state
// cleared.
func RecallOrder(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		newID, err := svc.Recall(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]int64{"id": newID, "source_id": id})
	}
}

// OrderChangelog returns the mutation journal for one order, newest first.
func OrderChangelog(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		entries, err := svc.Log(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, entries)
	}
}

// LatestChangelog returns the global journal feed for the dashboard.
func LatestChangelog(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", 50, 1, 500)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		entries, err := svc.LatestLog(r.Context(), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, entries)
	}
}
