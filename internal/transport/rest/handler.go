// Package rest provides HTTP handlers for user and product operations.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/abgdnv/crudapi/internal/service"
	"github.com/abgdnv/crudapi/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	msgDatabaseError  = "Database error"
	msgInvalidPayload = "Invalid request body"
)

type Handler struct {
	users    service.UserService
	products service.ProductService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new Handler serving both resources.
// Handlers log with the request context, so records carry the request and trace ids.
func NewHandler(users service.UserService, products service.ProductService, logger *slog.Logger) *Handler {
	return &Handler{
		users:    users,
		products: products,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for users and products.
// Only products have a collection-wide DELETE.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)
		r.Post("/", h.CreateUser)
		r.Put("/{id}", h.UpdateUser)
		r.Delete("/{id}", h.DeleteUser)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Post("/", h.CreateProduct)
		r.Delete("/", h.DeleteAllProducts)
		r.Put("/{id}", h.UpdateProduct)
		r.Delete("/{id}", h.DeleteProduct)
	})

	r.Get("/healthz", h.HealthCheck)
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// decodeAndValidate reads the JSON body into dst and checks required fields.
// On failure it writes a 400 response, using missingMsg for absent fields, and returns false.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any, missingMsg string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.WarnContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, msgInvalidPayload)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make(map[string]string, len(validationErrors))
			for _, fieldErr := range validationErrors {
				fields[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			h.logger.WarnContext(r.Context(), "Validation errors occurred", "errors", fields)
			web.RespondError(w, h.logger, http.StatusBadRequest, missingMsg)
			return false
		}
		h.logger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, h.logger, http.StatusBadRequest, msgInvalidPayload)
		return false
	}
	return true
}

