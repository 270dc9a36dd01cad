package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smlogitech/backoffice/api/responses"
	"github.com/smlogitech/backoffice/api/validators"
	"github.com/smlogitech/backoffice/internal/arrivals"
	"github.com/smlogitech/backoffice/pkg/logger"
)

// ListArrivals returns the board with countdowns evaluated at request time.
func ListArrivals(svc arrivals.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, entries)
	}
}

// CreateArrival adds one expected arrival to the board.
func CreateArrival(svc arrivals.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input arrivals.Input
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		entry, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, entry)
	}
}

// UpdateArrival rewrites one board entry.
func UpdateArrival(svc arrivals.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "arrivalId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var input arrivals.Input
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		entry, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, entry)
	}
}

// DeleteArrival removes one board entry.
func DeleteArrival(svc arrivals.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "arrivalId"))
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
