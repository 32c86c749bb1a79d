package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hospital-patient-api/internal/delivery/dto"
	"hospital-patient-api/internal/delivery/http/middleware"
	"hospital-patient-api/internal/usecase"
	"hospital-patient-api/pkg/response"
	"hospital-patient-api/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Login authenticates with email and password and returns an opaque
// bearer token. Failures carry no detail about which credential failed.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			response.Unauthorized(w, "Unauthorized")
			return
		}
		response.InternalError(w, "Failed to log in.", err, false)
		return
	}

	response.OK(w, map[string]interface{}{
		"token": tokens.Token,
	})
}

// Logout revokes the presented bearer token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	bearerToken, ok := middleware.GetBearerTokenFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthenticated.")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), bearerToken); err != nil {
		response.InternalError(w, "Failed to log out.", err, false)
		return
	}

	response.OK(w, map[string]interface{}{
		"success": "Logged out successfully.",
	})
}
