// Package httpapi exposes the registration service over HTTP. It is a
// thin adapter: request decoding, status-code mapping, response
// encoding. All business rules live in the users package.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dpetrovs/userreg/internal/common"
	"github.com/dpetrovs/userreg/internal/logging"
	"github.com/dpetrovs/userreg/internal/secretx"
	"github.com/dpetrovs/userreg/internal/server/users"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	users  *users.Service
	logger logging.Logger
}

func NewHandler(us *users.Service, logger logging.Logger) *Handler {
	return &Handler{users: us, logger: logger.With("module", "httpapi")}
}

// registerRequest decodes the password straight into a Secret so the
// plaintext never lands in an ordinary string field.
type registerRequest struct {
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Password *secretx.Secret `json:"password"`
}

type registerResponse struct {
	Success bool `json:"success"`
}

// userResponse is the outward shape of a stored user. The password
// hash is deliberately absent.
type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type updateRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a service error onto the wire. The response body
// carries only a generic category; the full error is logged server
// side and never leaks to the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err.Error())

	switch {
	case errors.Is(err, common.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not found"})
	case errors.Is(err, common.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid credentials"})
	case errors.Is(err, common.ErrDatabase):
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Database error"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal error"})
	}
}

// Register handles POST /api/user/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == nil || len(req.Password.Expose()) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "username, email and password are required"})
		return
	}

	if err := h.users.Register(r.Context(), req.Username, req.Email, req.Password); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{Success: true})
}

// Get handles GET /api/user/{username}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	u, err := h.users.GetByUsername(r.Context(), username)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Update handles PUT /api/user/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid user id"})
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}
	if req.Username == "" || req.Email == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "username and email are required"})
		return
	}

	if err := h.users.Update(r.Context(), id, req.Username, req.Email); err != nil {
		h.writeError(w, r, err)
		return
	}

	u, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Delete handles DELETE /api/user/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid user id"})
		return
	}

	deleted, err := h.users.Delete(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not found"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toUserResponse(u *users.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
