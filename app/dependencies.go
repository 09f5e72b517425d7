package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/stocksync/backend/config"
	"github.com/stocksync/backend/middleware"
	"github.com/stocksync/backend/repositories"
	"github.com/stocksync/backend/repositories/postgres"
	"github.com/stocksync/backend/services/auth"
	"github.com/stocksync/backend/services/purchasing"
	"github.com/stocksync/backend/token"
)

// Dependencies holds all application dependencies. This is the central
// wiring point for dependency injection.
type Dependencies struct {
	// Infrastructure
	Config *config.Config
	DB     *postgres.DB
	Logger *zap.Logger

	// Repository Factory
	RepoFactory *postgres.RepositoryFactory

	// Repositories
	Users          repositories.UserRepository
	Roles          repositories.RoleRepository
	Suppliers      repositories.SupplierRepository
	Warehouses     repositories.WarehouseRepository
	PurchaseOrders repositories.PurchaseOrderRepository
	GRNs           repositories.GRNRepository
	TxManager      repositories.TransactionManager

	// Token plumbing
	Codec    *token.Codec
	Verifier *token.Verifier

	// Services
	AuthService     *auth.Service
	SupplierService *purchasing.SupplierService
	OrderService    *purchasing.OrderService
	GRNService      *purchasing.GRNService

	// HTTP
	AuthMiddleware *middleware.AuthMiddleware
}

// NewDependencies creates and wires up all application dependencies.
// Signing keys are loaded here; a missing or malformed key aborts
// startup before any request is served.
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if err := deps.initDatabase(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	deps.initRepositories()

	if err := deps.initTokens(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize token signing: %w", err)
	}

	deps.initServices(cfg)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// initDatabase initializes the PostgreSQL connection and factory
func (d *Dependencies) initDatabase(ctx context.Context, cfg *config.Config) error {
	factory, err := postgres.NewRepositoryFactory(cfg, d.Logger)
	if err != nil {
		return fmt.Errorf("failed to create repository factory: %w", err)
	}

	d.RepoFactory = factory
	d.DB = factory.GetDB()

	if err := d.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	d.Logger.Info("database connection established",
		zap.String("connection", cfg.Database.LogString()))
	return nil
}

// initRepositories initializes all repository instances
func (d *Dependencies) initRepositories() {
	repos := d.RepoFactory.NewRepositories()

	d.Users = repos.Users
	d.Roles = repos.Roles
	d.Suppliers = repos.Suppliers
	d.Warehouses = repos.Warehouses
	d.PurchaseOrders = repos.PurchaseOrders
	d.GRNs = repos.GRNs
	d.TxManager = d.RepoFactory.GetTransactionManager()

	d.Logger.Info("repositories initialized")
}

// initTokens loads the RSA keypair and builds the codec and verifier
func (d *Dependencies) initTokens(cfg *config.Config) error {
	keys, err := token.LoadKeypair(cfg.Auth.PrivateKeyPath, cfg.Auth.PublicKeyPath)
	if err != nil {
		return err
	}

	d.Codec = token.NewCodec(keys, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	d.Verifier = token.NewVerifier(keys)

	d.Logger.Info("token signing initialized",
		zap.Duration("access_ttl", cfg.Auth.AccessTokenTTL),
		zap.Duration("refresh_ttl", cfg.Auth.RefreshTokenTTL))
	return nil
}

// initServices wires the domain services and the auth middleware
func (d *Dependencies) initServices(cfg *config.Config) {
	cookies := auth.NewRefreshCookie(cfg.Auth.RefreshTokenTTL, cfg.Auth.RefreshCookieSecure)

	d.AuthService = auth.NewService(
		d.Users, d.Roles, d.TxManager,
		d.Codec, d.Verifier,
		auth.NewBcryptHasher(), cookies, d.Logger,
	)

	d.SupplierService = purchasing.NewSupplierService(d.Suppliers, d.PurchaseOrders, d.Logger)
	d.OrderService = purchasing.NewOrderService(d.PurchaseOrders, d.Suppliers, d.Warehouses, d.Users, d.Logger)
	d.GRNService = purchasing.NewGRNService(d.GRNs, d.PurchaseOrders, d.Suppliers, d.TxManager, d.Logger)

	d.AuthMiddleware = middleware.NewAuthMiddleware(d.Verifier, d.Logger)

	d.Logger.Info("services initialized")
}

// Close gracefully shuts down all dependencies
func (d *Dependencies) Close(ctx context.Context) error {
	d.Logger.Info("shutting down dependencies")

	var errs []error

	if d.RepoFactory != nil {
		if err := d.RepoFactory.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		} else {
			d.Logger.Info("database connection closed")
		}
	}

	if d.Logger != nil {
		_ = d.Logger.Sync()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during shutdown: %v", errs)
	}
	return nil
}
