package controllers

import (
	"net/http"

	"github.com/bintangpramudya/kasirpay-backend/api/responses"
	"github.com/bintangpramudya/kasirpay-backend/api/validators"
	"github.com/bintangpramudya/kasirpay-backend/internal/auth"
	"github.com/bintangpramudya/kasirpay-backend/pkg/logger"
)

// AuthController handles login and registration.
type AuthController struct {
	svc  auth.Service
	logg *logger.Logger
}

func NewAuthController(svc auth.Service, logg *logger.Logger) *AuthController {
	return &AuthController{svc: svc, logg: logg}
}

// Login exchanges credentials for an access token.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := validators.DecodeJSONBody(r, &req); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	result, err := c.svc.Login(r.Context(), req)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	responses.WriteSuccess(w, result)
}

// Register creates a new user account.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := validators.DecodeJSONBody(r, &req); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	result, err := c.svc.Register(r.Context(), req)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	responses.WriteSuccessStatus(w, http.StatusCreated, result)
}
