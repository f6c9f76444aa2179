package rest

import (
	"errors"
	"net/http"

	perrors "github.com/abgdnv/crudapi/internal/errors"
	"github.com/abgdnv/crudapi/internal/service"
	"github.com/abgdnv/crudapi/pkg/web"
)

const msgUserFieldsRequired = "Name and email are required"

// UserResponse wraps a single user with a status message.
type UserResponse struct {
	Message string           `json:"message"`
	User    *service.UserDto `json:"user"`
}

// UserDeletedResponse reports the ID of a deleted user.
type UserDeletedResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// ListUsers returns every user.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.users.FindAll(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Error retrieving user list", "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, msgDatabaseError)
		return
	}
	h.logger.DebugContext(r.Context(), "Successfully retrieved user list", "count", len(list))
	web.RespondJSON(w, h.logger, http.StatusOK, list)
}

// CreateUser handles the creation of a new user.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var dto service.UserCreateDto
	if !h.decodeAndValidate(w, r, &dto, msgUserFieldsRequired) {
		return
	}

	created, err := h.users.Create(r.Context(), dto)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Error creating user", "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, msgDatabaseError)
		return
	}
	h.logger.InfoContext(r.Context(), "User created successfully", "ID", created.ID)
	web.RespondJSON(w, h.logger, http.StatusCreated, UserResponse{Message: "User created successfully", User: created})
}

// UpdateUser replaces the name and email of an existing user.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}
	var dto service.UserCreateDto
	if !h.decodeAndValidate(w, r, &dto, msgUserFieldsRequired) {
		return
	}

	updated, err := h.users.Update(r.Context(), id, dto)
	if err != nil {
		if errors.Is(err, perrors.ErrUserNotFound) {
			h.logger.WarnContext(r.Context(), "User not found for update", "ID", id)
			web.RespondError(w, h.logger, http.StatusNotFound, "User not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "Error updating user", "ID", id, "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, msgDatabaseError)
		return
	}
	h.logger.InfoContext(r.Context(), "User updated successfully", "ID", id)
	web.RespondJSON(w, h.logger, http.StatusOK, UserResponse{Message: "User updated successfully", User: updated})
}

// DeleteUser deletes a user by its ID.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}

	if err := h.users.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, perrors.ErrUserNotFound) {
			h.logger.WarnContext(r.Context(), "User not found for deletion", "ID", id)
			web.RespondError(w, h.logger, http.StatusNotFound, "User not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "Error deleting user", "ID", id, "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, msgDatabaseError)
		return
	}
	h.logger.InfoContext(r.Context(), "User deleted successfully", "ID", id)
	web.RespondJSON(w, h.logger, http.StatusOK, UserDeletedResponse{Message: "User deleted successfully", UserID: id})
}
