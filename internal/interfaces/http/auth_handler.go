package http

import (
	"errors"
	"time"

	appauth "github.com/crmventas/negociaciones-api/internal/application/auth"
	"github.com/crmventas/negociaciones-api/internal/application/dto"
	"github.com/crmventas/negociaciones-api/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler maneja login, registro y restablecimiento de contraseña.
type AuthHandler struct {
	uc           *appauth.AuthUseCase
	cookieTTL    time.Duration
	secureCookie bool
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *appauth.AuthUseCase, expMinutes int, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		uc:           uc,
		cookieTTL:    time.Duration(expMinutes) * time.Minute,
		secureCookie: secureCookie,
	}
}

// Login godoc
// @Summary      Iniciar sesión por cédula
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "cedula, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validateStruct(in); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos incompletos", Fields: fields})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	// Cookie de sesión para que el dashboard funcione directo en el navegador.
	c.Cookie(&fiber.Cookie{
		Name:     CookieToken,
		Value:    out.Token,
		Expires:  time.Now().Add(h.cookieTTL),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(out)
}

// Register godoc
// @Summary      Registrar usuario ejecutivo
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, cedula, password"
// @Success      201   {object}  dto.UserResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validateStruct(in); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos incompletos", Fields: fields})
	}
	user, err := h.uc.Register(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrCedulaAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CEDULA_EXISTS", Message: "la cédula ya está registrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// RecoverPasswordInfo describe el flujo de restablecimiento (solo invitados).
func (h *AuthHandler) RecoverPasswordInfo(c *fiber.Ctx) error {
	if GetUserID(c) != 0 {
		return c.Redirect("/dashboard")
	}
	return c.JSON(fiber.Map{
		"message": "envíe cedula, password y password_confirmation a POST /recover-password",
	})
}

// RecoverPassword godoc
// @Summary      Restablecimiento directo de contraseña por cédula
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetPasswordRequest  true  "cedula, password, password_confirmation"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /recover-password [post]
func (h *AuthHandler) RecoverPassword(c *fiber.Ctx) error {
	if GetUserID(c) != 0 {
		return c.Redirect("/dashboard")
	}
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validateStruct(in); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos incompletos", Fields: fields})
	}
	if err := h.uc.ResetPassword(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "VALIDATION",
				Message: "datos incompletos",
				Fields:  map[string]string{"cedula": "no podemos encontrar un usuario con esa cédula"},
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Tu contraseña ha sido restablecida"})
}
