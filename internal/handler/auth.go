package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	apperrors "github.com/bizledger/api-server-go/internal/errors"
	"github.com/bizledger/api-server-go/internal/middleware"
	"github.com/bizledger/api-server-go/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterStep1Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ValidationError("Invalid request body"))
		return
	}

	if err := h.authService.RegisterStep1(r.Context(), req); err != nil {
		logServerError(err, "register step 1 failed")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Registration step 1 accepted",
	})
}

// POST /api/auth/register/step2
func (h *AuthHandler) RegisterStep2(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterStep2Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ValidationError("Invalid request body"))
		return
	}

	result, err := h.authService.RegisterStep2(r.Context(), req)
	if err != nil {
		logServerError(err, "register step 2 failed")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"token":   result.Token,
		"user":    result.User,
	})
}

// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ValidationError("Invalid request body"))
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		logServerError(err, "login failed")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   result.Token,
		"user":    result.User,
	})
}

// GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, apperrors.Unauthorized("Not authenticated"))
		return
	}

	user, err := h.authService.Me(r.Context(), userID)
	if err != nil {
		logServerError(err, "fetch profile failed")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// logServerError logs only failures the client cannot correct.
func logServerError(err error, msg string) {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeDatabase, apperrors.ErrCodeHashing,
		apperrors.ErrCodeInternal, apperrors.ErrCodeExternal:
		log.Error().Err(err).Msg(msg)
	}
}
