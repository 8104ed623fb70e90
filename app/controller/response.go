package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"ayurconnect/catalog"
	"ayurconnect/models"
	"ayurconnect/repository"
	"ayurconnect/service"

	"go.uber.org/zap"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	writeJSON(w, status, errorResponse{
		Error:   errorCode(status),
		Message: err.Error(),
	})
}

// statusFor maps domain errors to HTTP statuses
func statusFor(err error) int {
	var (
		validationErr *models.ValidationError
		notFoundErr   *catalog.NotFoundError
		loadErr       *catalog.LoadError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr),
		errors.Is(err, repository.ErrBookingNotFound),
		errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrImageUnavailable):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &loadErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func errorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "invalid_request"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusServiceUnavailable:
		return "catalog_unavailable"
	case http.StatusGatewayTimeout:
		return "timeout"
	default:
		return "internal_error"
	}
}

// pageWriter renders server-side pages with an explicit status
type pageWriter struct {
	renderer *service.PageRenderer
	logger   *zap.Logger
}

func (p pageWriter) write(w http.ResponseWriter, status int, name string, page service.Page) {
	var buf bytes.Buffer
	if err := p.renderer.Render(&buf, name, page); err != nil {
		p.logger.Error("failed to render page", zap.String("page", name), zap.Error(err))
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
