package main

import (
	"flag"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
	"github.com/joho/godotenv"

	"tebakangka/internal/config"
	"tebakangka/internal/handlers"
	"tebakangka/internal/services"
	"tebakangka/internal/store"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	verbose := flag.Bool("verbose", false, "also log to stdout")
	flag.Parse()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	lg := logger.Init("tebakangka", *verbose, false, os.Stderr)
	defer lg.Close()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid config: %v", err)
	}

	// 1. Pick the store: Postgres when a DSN is configured, in-memory
	// otherwise (local development).
	var st store.Store
	if cfg.Postgres.DSN != "" {
		db := store.Connect(cfg.Postgres.DSN)
		defer db.Close()
		st = store.NewPostgres(db)
		logger.Info("Using Postgres store")
	} else {
		st = store.NewMemory()
		logger.Info("No Postgres DSN configured, using in-memory store")
	}

	// 2. Initialize the services.
	marketService := services.NewMarketService(st)
	lombaService := services.NewLombaService(st)
	tebakanService := services.NewTebakanService(st, st)
	winnerService := services.NewWinnerService(st, st)
	authService := services.NewAuthService(st, cfg.JWT.Secret, cfg.JWT.SessionTTL)
	userService := services.NewUserService(st)
	contentService := services.NewContentService(st, st)

	// 3. Initialize the HTTP handler.
	httpHandler := handlers.NewHTTPHandler(
		marketService,
		lombaService,
		tebakanService,
		winnerService,
		authService,
		userService,
		contentService,
	)

	// 4. Set up the Gin router.
	r := gin.Default()

	// 5. Register public routes (before middleware).
	httpHandler.RegisterPublicRoutes(r)

	// 6. Group the back-office routes behind the staff-session middleware.
	adminRoutes := r.Group("/api/admin")
	adminRoutes.Use(httpHandler.AdminMiddleware())
	httpHandler.RegisterAdminRoutes(adminRoutes)

	// 7. Run the server.
	logger.Infof("Server starting on %s", cfg.HTTP.Addr)
	if err := r.Run(cfg.HTTP.Addr); err != nil {
		logger.Fatalf("Failed to run server: %v", err)
	}
}
