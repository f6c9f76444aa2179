package rest

import (
	"errors"
	"net/http"

	perrors "github.com/abgdnv/crudapi/internal/errors"
	"github.com/abgdnv/crudapi/internal/service"
	"github.com/abgdnv/crudapi/pkg/web"
)

const msgProductFieldsRequired = "Name and price are required"

// ProductResponse wraps a single product with a status message.
type ProductResponse struct {
	Message string              `json:"message"`
	Product *service.ProductDto `json:"product"`
}

// ProductDeletedResponse reports the ID of a deleted product.
type ProductDeletedResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"productId"`
}

// ProductsClearedResponse reports how many products a bulk delete removed.
type ProductsClearedResponse struct {
	Message      string `json:"message"`
	AffectedRows int64  `json:"affectedRows"`
}

// ListProducts returns every product.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	list, err := h.products.FindAll(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Error retrieving product list", "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, msgDatabaseError)
		return
	}
	h.logger.DebugContext(r.Context(), "Successfully retrieved product list", "count", len(list))
	web.RespondJSON(w, h.logger, http.StatusOK, list)
}

// CreateProduct handles the creation of a new product.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var dto service.ProductCreateDto
	if !h.decodeAndValidate(w, r, &dto, msgProductFieldsRequired) {
		return
	}

	created, err := h.products.Create(r.Context(), dto)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Error creating product", "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, msgDatabaseError)
		return
	}
	h.logger.InfoContext(r.Context(), "Product created successfully", "ID", created.ID, "Name", created.Name)
	web.RespondJSON(w, h.logger, http.StatusCreated, ProductResponse{Message: "Product created successfully", Product: created})
}

// UpdateProduct replaces the name and price of an existing product.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}
	var dto service.ProductCreateDto
	if !h.decodeAndValidate(w, r, &dto, msgProductFieldsRequired) {
		return
	}

	updated, err := h.products.Update(r.Context(), id, dto)
	if err != nil {
		if errors.Is(err, perrors.ErrProductNotFound) {
			h.logger.WarnContext(r.Context(), "Product not found for update", "ID", id)
			web.RespondError(w, h.logger, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "Error updating product", "ID", id, "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, msgDatabaseError)
		return
	}
	h.logger.InfoContext(r.Context(), "Product updated successfully", "ID", id, "Name", updated.Name)
	web.RespondJSON(w, h.logger, http.StatusOK, ProductResponse{Message: "Product updated successfully", Product: updated})
}

// DeleteProduct deletes a product by its ID.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}

	if err := h.products.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, perrors.ErrProductNotFound) {
			h.logger.WarnContext(r.Context(), "Product not found for deletion", "ID", id)
			web.RespondError(w, h.logger, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "Error deleting product", "ID", id, "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, msgDatabaseError)
		return
	}
	h.logger.InfoContext(r.Context(), "Product deleted successfully", "ID", id)
	web.RespondJSON(w, h.logger, http.StatusOK, ProductDeletedResponse{Message: "Product deleted successfully", ProductID: id})
}

// DeleteAllProducts removes every product.
func (h *Handler) DeleteAllProducts(w http.ResponseWriter, r *http.Request) {
	n, err := h.products.DeleteAll(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Error deleting all products", "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, msgDatabaseError)
		return
	}
	h.logger.InfoContext(r.Context(), "All products deleted", "affectedRows", n)
	web.RespondJSON(w, h.logger, http.StatusOK, ProductsClearedResponse{Message: "All products deleted successfully", AffectedRows: n})
}
