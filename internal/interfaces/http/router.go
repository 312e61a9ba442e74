package http

import (
	appauth "github.com/crmventas/negociaciones-api/internal/application/auth"
	appneg "github.com/crmventas/negociaciones-api/internal/application/negociacion"
	"github.com/crmventas/negociaciones-api/internal/application/dto"
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	NegociacionUC *appneg.UseCase
	AuthUC        *appauth.AuthUseCase
	JWTSecret     string
	JWTExpMinutes int
	SecureCookies bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// La identidad se resuelve una sola vez; las rutas con vista pública
	// (dashboard y export con ven=) deciden después.
	app.Use(AuthOptional(deps.JWTSecret))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/login")
	})
	app.Get("/login", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code:    "LOGIN_REQUIRED",
			Message: "inicie sesión enviando cedula y password a POST /login",
		})
	})

	authHandler := NewAuthHandler(deps.AuthUC, deps.JWTExpMinutes, deps.SecureCookies)
	app.Post("/login", authHandler.Login)
	app.Post("/register", authHandler.Register)
	app.Get("/recover-password", authHandler.RecoverPasswordInfo)
	app.Post("/recover-password", authHandler.RecoverPassword)

	negHandler := NewNegociacionHandler(deps.NegociacionUC)

	// Dashboard y export: autenticado, o invitado con ?ven= (vista pública).
	app.Get("/dashboard", negHandler.Dashboard)
	app.Get("/negociaciones/export", negHandler.Export)

	// Rutas protegidas.
	protected := app.Group("/", AuthRequired())
	protected.Get("/vendedores", negHandler.Vendedores)
	protected.Get("/observacion/:far", negHandler.Observacion)
	protected.Post("/negociacion", negHandler.Store)
	protected.Patch("/negociacion/:id", negHandler.Update)
	protected.Delete("/negociacion/:id", RequireAdmin(), negHandler.Destroy)
}
