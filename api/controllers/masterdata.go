package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/smlogitech/backoffice/api/responses"
	"github.com/smlogitech/backoffice/api/validators"
	"github.com/smlogitech/backoffice/internal/masterdata"
	"github.com/smlogitech/backoffice/pkg/db/models"
	pkgerrors "github.com/smlogitech/backoffice/pkg/errors"
	"github.com/smlogitech/backoffice/pkg/logger"
)

// ListClients returns the full client master table.
func ListClients(svc masterdata.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clients, err := svc.ListClients(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, clients)
	}
}

// SaveClient upserts one client keyed by company name.
func SaveClient(svc masterdata.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var client models.Client
		if err := validators.DecodeJSONBody(r, &client); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.SaveClient(r.Context(), client); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"name": strings.TrimSpace(client.Name)})
	}
}

// DeleteClient removes one client by company name.
func DeleteClient(svc masterdata.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(chi.URLParam(r, "name"))
		if err := svc.DeleteClient(r.Context(), name); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"name": name})
	}
}

// ImportClients replaces the client table with spreadsheet rows parsed
// upstream.
func ImportClients(svc masterdata.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var clients []models.Client
		if err := validators.DecodeLooseJSONBody(r, &clients); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		count, err := svc.ImportClients(r.Context(), clients)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]int{"imported": count})
	}
}

// ListDrivers returns the full driver master table.
func ListDrivers(svc masterdata.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drivers, err := svc.ListDrivers(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, drivers)
	}
}

// SaveDriver upserts one driver keyed by the {name, vehicle number} pair.
func SaveDriver(svc masterdata.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var driver models.Driver
		if err := validators.DecodeJSONBody(r, &driver); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.SaveDriver(r.Context(), driver); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{
			"name":       strings.TrimSpace(driver.Name),
			"vehicle_no": strings.TrimSpace(driver.VehicleNo),
		})
	}
}

// DeleteDriver removes one driver row by id.
func DeleteDriver(svc masterdata.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "driverId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteDriver(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]int64{"id": id})
	}
}

// ImportDrivers replaces the driver table with spreadsheet rows parsed
// upstream.
func ImportDrivers(svc masterdata.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var drivers []models.Driver
		if err := validators.DecodeLooseJSONBody(r, &drivers); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		count, err := svc.ImportDrivers(r.Context(), drivers)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]int{"imported": count})
	}
}

// MasterSearch serves the autocomplete: prefix or initial-consonant match
// against the in-memory snapshot.
func MasterSearch(svc masterdata.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := strings.TrimSpace(r.URL.Query().Get("type"))
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		limit, err := validators.ParseQueryInt(r, "limit", 10, 1, 50)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		switch kind {
		case "client":
			responses.WriteSuccess(w, svc.SearchClients(query, limit))
		case "driver":
			responses.WriteSuccess(w, svc.SearchDrivers(query, limit))
		default:
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "type must be client or driver"))
		}
	}
}
