// Package http expose l'API REST du garage avec Fiber. Les handlers
// délèguent toute la logique aux cas d'usage et toute la traduction
// d'erreurs à respondError.
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lbertrand/garage-api/internal/application/auth"
	"github.com/lbertrand/garage-api/internal/application/usecase"
	"github.com/lbertrand/garage-api/internal/domain/entity"
)

// RouterDeps dépendances du routeur.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ClientUC     *usecase.ClientUseCase
	VehiculeUC   *usecase.VehiculeUseCase
	PrestationUC *usecase.PrestationUseCase
	DevisUC      *usecase.DevisUseCase
	ODRUC        *usecase.ODRUseCase
	FactureUC    *usecase.FactureUseCase
	ParametresUC *usecase.ParametresUseCase
	DashboardUC  *usecase.DashboardUseCase
	JWTSecret    string
}

// Router enregistre les routes de l'API. Les suppressions sont réservées au
// rôle ADMIN ; tout le reste est accessible à tout compte authentifié.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/refresh", authHandler.Refresh)

	// Routes protégées (Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(entity.RoleAdmin)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/search", clientHandler.Search)
	clients.Get("/stats", clientHandler.Stats)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", admin, clientHandler.Delete)

	// Véhicules
	vehicules := protected.Group("/vehicules")
	vehiculeHandler := NewVehiculeHandler(deps.VehiculeUC)
	vehicules.Post("/", vehiculeHandler.Create)
	vehicules.Get("/", vehiculeHandler.List)
	vehicules.Get("/search", vehiculeHandler.Search)
	vehicules.Get("/stats", vehiculeHandler.Stats)
	vehicules.Get("/client/:clientId", vehiculeHandler.ListByClient)
	vehicules.Get("/:id", vehiculeHandler.GetByID)
	vehicules.Put("/:id", vehiculeHandler.Update)
	vehicules.Delete("/:id", admin, vehiculeHandler.Delete)

	// Prestations
	prestations := protected.Group("/prestations")
	prestationHandler := NewPrestationHandler(deps.PrestationUC)
	prestations.Post("/", prestationHandler.Create)
	prestations.Get("/", prestationHandler.List)
	prestations.Get("/stats", prestationHandler.Stats)
	prestations.Get("/:id", prestationHandler.GetByID)
	prestations.Put("/:id", prestationHandler.Update)
	prestations.Delete("/:id", admin, prestationHandler.Delete)

	// Devis
	devis := protected.Group("/devis")
	devisHandler := NewDevisHandler(deps.DevisUC)
	devis.Post("/", devisHandler.Create)
	devis.Get("/", devisHandler.List)
	devis.Get("/stats", devisHandler.Stats)
	devis.Get("/:id", devisHandler.GetByID)
	devis.Put("/:id", devisHandler.Update)
	devis.Put("/:id/status", devisHandler.UpdateStatut)
	devis.Delete("/:id", admin, devisHandler.Delete)

	// Ordres de réparation
	odr := protected.Group("/odr")
	odrHandler := NewODRHandler(deps.ODRUC)
	odr.Post("/", odrHandler.Create)
	odr.Get("/", odrHandler.List)
	odr.Get("/stats", odrHandler.Stats)
	odr.Get("/:id", odrHandler.GetByID)
	odr.Put("/:id", odrHandler.Update)
	odr.Put("/:id/status", odrHandler.UpdateStatut)
	odr.Delete("/:id", admin, odrHandler.Delete)

	// Factures
	factures := protected.Group("/factures")
	factureHandler := NewFactureHandler(deps.FactureUC)
	factures.Post("/", factureHandler.Create)
	factures.Get("/", factureHandler.List)
	factures.Get("/stats", factureHandler.Stats)
	factures.Get("/:id", factureHandler.GetByID)
	factures.Get("/:id/pdf", factureHandler.GeneratePDF)
	factures.Put("/:id", factureHandler.Update)
	factures.Put("/:id/payment", factureHandler.UpdatePaiement)
	factures.Delete("/:id", admin, factureHandler.Delete)

	// Paramètres
	parametres := protected.Group("/parametres")
	parametresHandler := NewParametresHandler(deps.ParametresUC)
	parametres.Get("/", parametresHandler.Get)
	parametres.Put("/", admin, parametresHandler.Update)

	// Tableau de bord
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
