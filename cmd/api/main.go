package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhttp "github.com/itsSauraj/recipe-api/internal/auth/http"
	authrepo "github.com/itsSauraj/recipe-api/internal/auth/repository"
	authservice "github.com/itsSauraj/recipe-api/internal/auth/service"
	"github.com/itsSauraj/recipe-api/internal/common/clock"
	"github.com/itsSauraj/recipe-api/internal/common/config"
	commoncrypto "github.com/itsSauraj/recipe-api/internal/common/crypto"
	"github.com/itsSauraj/recipe-api/internal/common/db"
	commonhttp "github.com/itsSauraj/recipe-api/internal/common/http"
	"github.com/itsSauraj/recipe-api/internal/common/logger"
	srv "github.com/itsSauraj/recipe-api/internal/common/server"
	identityservice "github.com/itsSauraj/recipe-api/internal/identity/service"
	recipehttp "github.com/itsSauraj/recipe-api/internal/recipe/http"
	reciperepo "github.com/itsSauraj/recipe-api/internal/recipe/repository"
	recipeservice "github.com/itsSauraj/recipe-api/internal/recipe/service"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_DIR"), "recipe-api", os.Getenv("LOG_LEVEL"))
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to initialize logger: %v\n", err))
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := db.RunMigrations(context.Background(), log, cfg.DatabaseURL); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	pool := db.NewPool(log, cfg.DatabaseURL)
	defer pool.Close()

	realClock := clock.NewRealClock()
	hasher := &commoncrypto.BcryptHasher{}
	idGenerator := commoncrypto.NewUUIDGenerator()

	userRepo := authrepo.NewPgRepository(pool)
	recipeRepo := reciperepo.NewPgRepository(pool)

	tokenIssuer := authservice.NewTokenIssuer(cfg.JWTSecret, cfg.AccessTokenTTL, realClock)
	authService := authservice.NewAuthService(authservice.AuthServiceDeps{
		Repo:        userRepo,
		Hasher:      hasher,
		IDGenerator: idGenerator,
		Tokens:      tokenIssuer,
		Clock:       realClock,
		Log:         log,
	})

	identityResolver := identityservice.NewIdentityResolver(userRepo, log)
	guard := recipeservice.NewOwnershipGuard(identityResolver, recipeRepo, log)
	recipeService := recipeservice.NewRecipeService(recipeservice.RecipeServiceDeps{
		Repo:        recipeRepo,
		Identity:    identityResolver,
		Guard:       guard,
		IDGenerator: idGenerator,
		Clock:       realClock,
		Log:         log,
	})

	authHandler := authhttp.NewHandler(authService, cfg, log)
	recipeHandler := recipehttp.NewHandler(recipeService, cfg, log)

	credentialLimiter := commonhttp.NewCredentialRateLimiter()

	mux := http.NewServeMux()
	mux.HandleFunc("/", welcome)
	mux.HandleFunc("/health", commonhttp.HealthHandler(log))
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/register", credentialLimiter.Middleware(authHandler))
	mux.Handle("/token", credentialLimiter.Middleware(authHandler))
	mux.Handle("/recipe", recipeHandler)
	mux.Handle("/recipe/", recipeHandler)
	mux.Handle("/recipes", recipeHandler)
	mux.Handle("/recipie/search", recipeHandler)

	handler := commonhttp.BuildBaseHandler(log, mux)

	server := srv.NewServer(srv.DefaultServerConfig(cfg.HTTPPort), handler)
	srv.StartWithGracefulShutdown(server, log, "recipe-api")
}

func welcome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		commonhttp.WriteError(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodGet {
		commonhttp.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	commonhttp.WriteJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the Recipe API"})
}
