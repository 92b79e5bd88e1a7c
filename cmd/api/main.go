package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/lbertrand/garage-api/internal/application/auth"
	"github.com/lbertrand/garage-api/internal/application/usecase"
	infrapdf "github.com/lbertrand/garage-api/internal/infrastructure/pdf"
	"github.com/lbertrand/garage-api/internal/infrastructure/postgres"
	httpRouter "github.com/lbertrand/garage-api/internal/interfaces/http"
	"github.com/lbertrand/garage-api/pkg/config"
	"github.com/lbertrand/garage-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migrations")
	}

	clientRepo := postgres.NewClientRepository(pool)
	vehiculeRepo := postgres.NewVehiculeRepository(pool)
	prestationRepo := postgres.NewPrestationRepository(pool)
	devisRepo := postgres.NewDevisRepository(pool)
	odrRepo := postgres.NewODRRepository(pool)
	factureRepo := postgres.NewFactureRepository(pool)
	parametresRepo := postgres.NewParametresRepository(pool)
	utilisateurRepo := postgres.NewUtilisateurRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)

	clientUC := usecase.NewClientUseCase(clientRepo, vehiculeRepo, devisRepo, factureRepo)
	vehiculeUC := usecase.NewVehiculeUseCase(vehiculeRepo, clientRepo, devisRepo, odrRepo)
	prestationUC := usecase.NewPrestationUseCase(prestationRepo)
	devisUC := usecase.NewDevisUseCase(devisRepo, clientRepo, vehiculeRepo, txRunner)
	odrUC := usecase.NewODRUseCase(odrRepo, clientRepo, vehiculeRepo, devisRepo)
	factureUC := usecase.NewFactureUseCase(factureRepo, clientRepo, odrRepo, devisRepo, pdfGenerator)
	parametresUC := usecase.NewParametresUseCase(parametresRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo, parametresUC)
	authUC := auth.NewAuthUseCase(utilisateurRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ClientUC:     clientUC,
		VehiculeUC:   vehiculeUC,
		PrestationUC: prestationUC,
		DevisUC:      devisUC,
		ODRUC:        odrUC,
		FactureUC:    factureUC,
		ParametresUC: parametresUC,
		DashboardUC:  dashboardUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP arrêté")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
