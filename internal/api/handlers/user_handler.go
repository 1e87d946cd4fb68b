package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/isandov/storefront-be/internal/services"
)

// UserHandler handles HTTP requests for user signup and listing.
type UserHandler struct {
	service services.UserServiceProvider
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider) *UserHandler {
	return &UserHandler{service: service}
}

// CreateUserPayload defines the structure for user creation requests.
type CreateUserPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Create handles POST /api/users. The caller's network address is derived
// server-side and stored with the credentials; the response carries the
// inserted row without the password.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload CreateUserPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Email == "" || payload.Password == "" {
		writeValidationError(w, "Email and password are required")
		return
	}

	user, err := h.service.CreateUser(r.Context(), payload.Email, payload.Password, clientIP(r))
	if err != nil {
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to save user")
		writeStoreError(w, "Could not save user", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "User saved successfully",
		"data": map[string]any{
			"id":         user.ID,
			"email":      user.Email,
			"ip":         user.IP,
			"created_at": user.CreatedAt,
		},
	})
}

// List handles GET /api/users.
//
// The returned rows include the stored plaintext password. That is the
// published contract of this endpoint, preserved as-is; /api/logs serves the
// sanitized projection.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch users")
		writeStoreError(w, "Could not fetch users", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(users),
		"users":   users,
	})
}

// ListLogs handles GET /api/logs, the visitor log view: same rows as the
// user listing, password excluded.
func (h *UserHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.service.ListVisitorLogs(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch visitor logs")
		writeStoreError(w, "Could not fetch logs", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(logs),
		"logs":    logs,
	})
}
