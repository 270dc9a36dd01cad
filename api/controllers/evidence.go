package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/smlogitech/backoffice/api/responses"
	"github.com/smlogitech/backoffice/api/validators"
	"github.com/smlogitech/backoffice/internal/uploads"
	"github.com/smlogitech/backoffice/pkg/config"
	"github.com/smlogitech/backoffice/pkg/enums"
	pkgerrors "github.com/smlogitech/backoffice/pkg/errors"
	"github.com/smlogitech/backoffice/pkg/logger"
)

func evidenceTarget(r *http.Request) (int64, enums.EvidenceStream, int, error) {
	orderID, err := validators.ParsePathID(chi.URLParam(r, "orderId"))
	if err != nil {
		return 0, "", 0, err
	}
	stream, err := enums.ParseEvidenceStream(strings.TrimSpace(chi.URLParam(r, "stream")))
	if err != nil {
		return 0, "", 0, pkgerrors.New(pkgerrors.CodeValidation, "stream must be tax or ship")
	}
	slot, err := strconv.Atoi(strings.TrimSpace(chi.URLParam(r, "slot")))
	if err != nil {
		return 0, "", 0, pkgerrors.New(pkgerrors.CodeValidation, "slot must be an integer")
	}
	return orderID, stream, slot, nil
}

// UploadEvidence accepts a multipart file for one slot of one stream.
func UploadEvidence(svc uploads.Service, cfg config.EvidenceConfig, logg *logger.Logger) http.HandlerFunc {
	maxBytes := int64(cfg.MaxUploadMB) << 20
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, stream, slot, err := evidenceTarget(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		file, header, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "multipart field \"file\" required"))
			return
		}
		defer file.Close()

		path, err := svc.Upload(r.Context(), orderID, stream, slot, header.Filename, file)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{
			"order_id": orderID,
			"stream":   stream,
			"slot":     slot,
			"path":     path,
		})
	}
}

// RemoveEvidence clears one slot and deletes the stored file.
func RemoveEvidence(svc uploads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, stream, slot, err := evidenceTarget(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Remove(r.Context(), orderID, stream, slot); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"order_id": orderID,
			"stream":   stream,
			"slot":     slot,
		})
	}
}
