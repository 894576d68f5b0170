package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Cuentas-api/internal/application/usecase"
	"github.com/jhoicas/Cuentas-api/pkg/config"
	"github.com/jhoicas/Cuentas-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BusinessUC     *usecase.BusinessUseCase
	AccountUC      *usecase.AccountUseCase
	ChatUC         *usecase.ChatUseCase
	Identity       config.IdentityConfig
	AllowedOrigins []string
	StrictStatus   bool
	Log            *logger.Logger
}

// Router registra la política CORS y las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(OriginGuard(deps.AllowedOrigins))
	if corsHandler := CORS(deps.AllowedOrigins); corsHandler != nil {
		app.Use(corsHandler)
	}

	opts := HandlerOptions{StrictStatus: deps.StrictStatus, Log: deps.Log}
	identity := IdentityMiddleware(deps.Identity)

	// Businesses
	businesses := app.Group("/businesses")
	businessHandler := NewBusinessHandler(deps.BusinessUC, opts)
	businesses.Get("/get/:userId", identity, businessHandler.List)
	businesses.Get("/verify/:userId/business/:businessId", identity, businessHandler.Verify)
	businesses.Post("/new/:userId", identity, businessHandler.Create)
	businesses.Delete("/delete/:userId/business/:businessId", identity, businessHandler.Delete)

	// Accounts (sin update ni delete)
	accounts := app.Group("/accounts")
	accountHandler := NewAccountHandler(deps.AccountUC, opts)
	accounts.Get("/get/:userId/business/:businessId", identity, accountHandler.List)
	accounts.Post("/new/:userId/business/:businessId", identity, accountHandler.Create)

	// Chat
	if deps.ChatUC != nil {
		chatHandler := NewChatHandler(deps.ChatUC, opts)
		app.Post("/chat/:userId/business/:businessId", identity, chatHandler.Send)
	}
}
