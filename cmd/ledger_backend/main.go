package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/wirebank/ledger/internal/adapters/memory"
	"github.com/wirebank/ledger/internal/core/services"
	"github.com/wirebank/ledger/internal/dto"
	"github.com/wirebank/ledger/internal/handlers"
	"github.com/wirebank/ledger/internal/middleware"
	"github.com/wirebank/ledger/internal/platform/config"

	portssvc "github.com/wirebank/ledger/internal/core/ports/services"
)

// @title Wirebank Ledger API
// @version 1.0
// @description In-memory banking ledger backend: users, accounts, and an append-only transaction log.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Wire the decimal amount validations into gin's binding validator.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterCustomValidations(v); err != nil {
			logger.Error("Failed to register custom validations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// One store instance for the whole process; every request handler works
	// against it through the service facades.
	store := memory.NewStore()
	container := &portssvc.ServiceContainer{
		Ledger: services.NewLedgerService(store),
		User:   services.NewUserService(store),
	}

	if cfg.SeedDemoData {
		if err := seedDemoData(context.Background(), logger, container); err != nil {
			logger.Error("Failed to seed demo data", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// seedDemoData registers two demo users and opens a funded account for each,
// so a fresh process has something to poke at. Opening deposits land in the
// transaction log like any other deposit.
func seedDemoData(ctx context.Context, logger *slog.Logger, c *portssvc.ServiceContainer) error {
	seeds := []struct {
		register dto.RegisterRequest
		account  dto.CreateAccountRequest
	}{
		{
			register: dto.RegisterRequest{Username: "alice", Password: "alicepass", FullName: "Alice Example"},
			account:  dto.CreateAccountRequest{AccountType: "checking", InitialDeposit: decimal.NewFromInt(1000)},
		},
		{
			register: dto.RegisterRequest{Username: "bob", Password: "bobpass", FullName: "Bob Example"},
			account:  dto.CreateAccountRequest{AccountType: "savings", InitialDeposit: decimal.NewFromInt(500)},
		},
	}

	for _, seed := range seeds {
		user, err := c.User.Register(ctx, seed.register)
		if err != nil {
			return err
		}
		account, err := c.Ledger.CreateAccount(ctx, seed.account, user.Username)
		if err != nil {
			return err
		}
		logger.Info("Seeded demo account",
			slog.String("username", user.Username),
			slog.String("account_id", account.AccountID),
			slog.String("balance", account.Balance.String()))
	}
	return nil
}
