// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	planapp "github.com/platewise/v1/internal/application/plan"
	recipeapp "github.com/platewise/v1/internal/application/recipe"
	"github.com/platewise/v1/internal/application/shoppinglist"
	userapp "github.com/platewise/v1/internal/application/user"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/infrastructure/http/apiserver"
	gormrepo "github.com/platewise/v1/internal/infrastructure/persistence/gorm"
	"github.com/platewise/v1/internal/infrastructure/persistence/memory"
	"github.com/platewise/v1/internal/infrastructure/persistence/postgres"
	redisadapter "github.com/platewise/v1/internal/infrastructure/persistence/redis"
	"github.com/platewise/v1/internal/infrastructure/persistence/sqlite"
	"github.com/platewise/v1/internal/infrastructure/security"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/healthcheck"
	"github.com/platewise/v1/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	SecurityModule,
	RepositoryModule,
	ServiceModule,
	HealthModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the relational database connection
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		switch cfg.Database.Driver {
		case "postgres":
			db, err := postgres.Connect(cfg, log)
			if err != nil {
				return nil, err
			}
			if cfg.Database.AutoMigrate {
				if err := gormrepo.Migrate(db); err != nil {
					return nil, err
				}
			}
			return db, nil
		case "sqlite":
			logLevel := gormlogger.Silent
			if cfg.App.Debug {
				logLevel = gormlogger.Info
			}
			db, err := sqlite.SetupDatabase(cfg.Database.SQLitePath, logLevel)
			if err != nil {
				return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
			}
			if cfg.IsDevelopment() {
				if err := sqlite.Seed(db, log); err != nil {
					return nil, fmt.Errorf("failed to seed database: %w", err)
				}
			}
			log.Info("Connected to SQLite database",
				zap.String("path", cfg.Database.SQLitePath))
			return db, nil
		default:
			return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
		}
	},
)

// CacheModule provides the cache and token store, Redis backed when
// configured and in-memory otherwise.
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, outbound.TokenStore, *redis.Client, error) {
		if !cfg.Redis.Enabled {
			log.Info("Redis disabled, using in-memory cache and token store")
			return memory.NewCacheRepository(), memory.NewTokenStore(), nil, nil
		}

		client, err := redisadapter.NewClient(cfg, log)
		if err != nil {
			return nil, nil, nil, err
		}
		return redisadapter.NewCacheRepository(client), redisadapter.NewTokenStore(client), client, nil
	},
)

// SecurityModule provides authentication services
var SecurityModule = fx.Provide(
	func(cfg *config.Config, tokens outbound.TokenStore, log *zap.Logger) *security.AuthService {
		jwtSecret := cfg.Auth.JWTSecret
		if jwtSecret == "" {
			jwtSecret = "development-secret-key"
		}
		return security.NewAuthService(jwtSecret, cfg.Auth.JWTExpiration, cfg.Auth.RefreshExpiration, tokens, log)
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormrepo.NewUserRepository,
	gormrepo.NewRecipeRepository,
	gormrepo.NewPlanRepository,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	func(users outbound.UserRepository, auth *security.AuthService, cfg *config.Config, log *zap.Logger) inbound.UserService {
		return userapp.NewService(users, auth, cfg.Auth.BCryptCost, log)
	},
	func(recipes outbound.RecipeRepository, cache outbound.CacheRepository, log *zap.Logger) inbound.RecipeService {
		return recipeapp.NewService(recipes, cache, log)
	},
	func(plans outbound.PlanRepository, recipes outbound.RecipeRepository, log *zap.Logger) inbound.PlanService {
		return planapp.NewService(plans, recipes, log)
	},
	func(plans outbound.PlanRepository, recipes outbound.RecipeRepository, log *zap.Logger) inbound.ShoppingListService {
		return shoppinglist.NewService(plans, recipes, log)
	},
)

// HealthModule provides the health check registry
var HealthModule = fx.Provide(
	func(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log *zap.Logger) *healthcheck.HealthCheck {
		hc := healthcheck.New(cfg.App.Version, log)
		hc.Register("database", healthcheck.DatabaseChecker(db))
		if redisClient != nil {
			hc.Register("redis", healthcheck.RedisChecker(redisClient))
		}
		return hc
	},
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	apiserver.NewAPIServer,
)

// LifecycleModule registers lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	server *apiserver.APIServer,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Platewise application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := server.Start(); err != nil && err.Error() != "http: Server closed" {
					log.Error("HTTP server stopped", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Platewise application")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()

			return nil
		},
	})
}
