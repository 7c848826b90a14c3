package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/academico-api/internal/application/auth"
	"github.com/jhoicas/academico-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	InvUC     *usecase.InvestigacionUseCase
	FichaUC   *usecase.FichaUseCase
	SocialUC  *usecase.SocialUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/signin", authHandler.Signin)
	authGroup.Post("/signout", authHandler.Signout)

	api := app.Group("/api")

	invHandler := NewInvestigacionHandler(deps.InvUC, deps.FichaUC)
	publicoHandler := NewPublicoHandler(deps.SocialUC)

	// Lectura pública de investigaciones y adjuntos
	api.Get("/investigaciones", invHandler.List)
	api.Get("/investigaciones/:id", invHandler.GetDetalle)
	api.Get("/investigaciones/:id/pdf", invHandler.GetPDF)
	api.Get("/investigaciones/:id/imagenes/:idx", invHandler.GetImagen)
	api.Get("/investigaciones/:id/ficha", invHandler.Ficha)

	// Participación pública (sin sesión)
	api.Post("/:id/comentarios", publicoHandler.AddComentario)
	api.Post("/:id/preguntas", publicoHandler.AskPregunta)

	// Escritura (requiere Bearer Token + rol investigador)
	authMW := AuthMiddleware(deps.JWTSecret)
	invMW := RequireInvestigador()
	api.Post("/investigaciones", authMW, invMW, invHandler.Create)
	api.Put("/investigaciones/:id", authMW, invMW, invHandler.Update)
	api.Delete("/investigaciones/:id", authMW, invMW, invHandler.Delete)
	api.Post("/preguntas/:pid/responder", authMW, invMW, publicoHandler.Responder)
}
