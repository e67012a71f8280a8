package handlers

import (
	"errors"
	"net/http"

	request "orcafacil/internal/adapter/http/dto/request"
	response "orcafacil/internal/adapter/http/dto/response"
	"orcafacil/internal/usecase"
	"orcafacil/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Invalid credentials payload", http.StatusBadRequest)

// AuthHandler handles account signup and session issuing.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var payload request.SignUpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, token, err := h.usecase.SignUp(c.Request.Context(), payload.Name, payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromUserWithToken(user, token))
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var payload request.SignInRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, token, err := h.usecase.SignIn(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUserWithToken(user, token))
}

// Session returns the account bound to the caller's bearer token. The session
// middleware has already validated the token and stashed the user.
func (h *AuthHandler) Session(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_SESSION", "Session is invalid or expired", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSignUp):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailTaken):
		return pkg.NewDomainErrorSimple("EMAIL_TAKEN", "Email is already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidSession):
		return pkg.NewDomainErrorSimple("INVALID_SESSION", "Session is invalid or expired", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
