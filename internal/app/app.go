package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	emailadapter "github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/email"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/kvstore"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/memory"
	mongoadapter "github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/mongo"
	natsadapter "github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/nats"
	redisadapter "github.com/Abdurahmanit/GroupProject/storefront-service/internal/adapter/redis"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/app/config"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/catalog"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/metrics"
	httpserver "github.com/Abdurahmanit/GroupProject/storefront-service/internal/port/http"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/service"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	cfg           *config.Config
	log           logger.Logger
	server        *httpserver.Server
	metricsServer *http.Server
	mongoClient   *mongo.Client
	redisClient   *redis.Client
	natsConn      *nats.Conn
}

func New(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	logCfg := logger.ZapLoggerConfig{
		Level:      cfg.Logger.Level,
		Encoding:   cfg.Logger.Encoding,
		TimeFormat: cfg.Logger.TimeFormat,
		Output:     cfg.Logger.Output,
	}
	appLogger, err := logger.NewZapLogger(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger.Info("Logger initialized")
	appLogger.Infof("Configuration loaded: Env=%s, HTTP Port: %s, Store: %s", cfg.Env, cfg.HTTPServer.Port, cfg.Store.Driver)

	application := &App{cfg: cfg, log: appLogger}

	store, err := application.openStore(ctx)
	if err != nil {
		application.closeConnections(ctx)
		return nil, err
	}

	metricsManager := metrics.NewMetricsManager(cfg.Metrics.ServiceName)
	application.metricsServer = metrics.NewMetricsServer(cfg.Metrics.Port, metricsManager.Registry)

	var (
		notifier       service.CartCountNotifier
		orderPublisher service.OrderPublisher
		mailer         service.EmailSender
	)

	if cfg.NATS.Enabled {
		appLogger.Info("Initializing NATS connection...")
		nc, err := natsadapter.NewConnection(cfg.NATS, appLogger)
		if err != nil {
			appLogger.Errorf("Failed to connect to NATS: %v", err)
			application.closeConnections(ctx)
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		application.natsConn = nc
		publisher, err := natsadapter.NewNATSPublisher(nc)
		if err != nil {
			application.closeConnections(ctx)
			return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
		}
		notifier = natsadapter.NewCartCountNotifier(publisher)
		orderPublisher = natsadapter.NewOrderEventPublisher(publisher)
		appLogger.Info("NATS publisher initialized")
	} else {
		appLogger.Info("NATS disabled, cart count and order events will not be published")
	}

	if cfg.SMTP.Enabled {
		sender, err := emailadapter.NewSMTPSender(cfg.SMTP, appLogger)
		if err != nil {
			appLogger.Errorf("Failed to initialize SMTP sender: %v", err)
			application.closeConnections(ctx)
			return nil, fmt.Errorf("failed to initialize SMTP sender: %w", err)
		}
		mailer = sender
		appLogger.Info("SMTP sender initialized")
	} else {
		appLogger.Info("SMTP disabled, order receipts will not be e-mailed")
	}

	keys := kvstore.NewKeys(cfg.Store.KeyPrefix)
	cartService := service.NewCartService(kvstore.NewCartRepository(store, keys), notifier, appLogger, metricsManager)
	wishlistService := service.NewWishlistService(kvstore.NewWishlistRepository(store, keys), cartService, appLogger, metricsManager)
	authService := service.NewAuthService(
		kvstore.NewUserRepository(store, keys),
		kvstore.NewSessionRepository(store, keys),
		cartService,
		wishlistService,
		appLogger,
		service.AuthServiceConfig{BcryptCost: cfg.Auth.BcryptCost},
	)
	checkoutService := service.NewCheckoutService(
		cartService,
		kvstore.NewPreferenceRepository(store, keys),
		authService,
		orderPublisher,
		mailer,
		appLogger,
		metricsManager,
		service.CheckoutServiceConfig{ReceiptTimeout: cfg.SMTP.SendTimeout},
	)
	appLogger.Info("Services initialized")

	handler := httpserver.NewHandler(
		cartService,
		wishlistService,
		authService,
		checkoutService,
		catalog.NewService(nil),
		appLogger,
	)
	router := httpserver.NewRouter(handler, appLogger, metricsManager, cfg.HTTPServer.AllowedOrigins)
	application.server = httpserver.NewServer(appLogger, cfg.HTTPServer, router)
	appLogger.Info("HTTP server instance created")

	return application, nil
}

// openStore connects the key-value backend named by store.driver.
func (a *App) openStore(ctx context.Context) (repository.KeyValueStore, error) {
	switch a.cfg.Store.Driver {
	case config.StoreDriverRedis:
		a.log.Info("Initializing Redis client...")
		client, err := redisadapter.NewClient(ctx, a.cfg.Redis)
		if err != nil {
			a.log.Errorf("Failed to initialize Redis client: %v", err)
			return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
		}
		a.redisClient = client
		a.log.Info("Redis client initialized successfully")
		return redisadapter.NewStore(client), nil
	case config.StoreDriverMongo:
		a.log.Info("Initializing MongoDB client...")
		client, err := mongoadapter.NewClient(ctx, a.cfg.MongoDB)
		if err != nil {
			a.log.Errorf("Failed to initialize MongoDB client: %v", err)
			return nil, fmt.Errorf("failed to initialize MongoDB client: %w", err)
		}
		a.mongoClient = client
		a.log.Info("MongoDB client initialized successfully")
		return mongoadapter.NewStore(client, a.cfg.MongoDB), nil
	case config.StoreDriverMemory:
		a.log.Warn("Using in-memory store, data will not survive a restart")
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", a.cfg.Store.Driver)
	}
}

func (a *App) Run() {
	a.log.Info("Starting application components...")

	go func() {
		if err := a.server.Start(); err != nil {
			a.log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()
	a.log.Info("HTTP server started in a goroutine")

	go func() {
		if err := metrics.StartMetricsServer(a.metricsServer, a.log); err != nil {
			a.log.Errorf("Metrics server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	a.log.Infof("Received shutdown signal: %v. Shutting down application...", receivedSignal)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTPServer.TimeoutGraceful+5*time.Second)
	defer cancel()

	if err := a.server.Stop(shutdownCtx); err != nil {
		a.log.Errorf("Error during HTTP server graceful shutdown: %v", err)
	} else {
		a.log.Info("HTTP server stopped successfully")
	}

	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(shutdownCtx); err != nil {
			a.log.Errorf("Error shutting down metrics server: %v", err)
		}
	}

	a.closeConnections(shutdownCtx)
	a.log.Info("Application shut down successfully")
	_ = a.log.Sync()
}

func (a *App) closeConnections(ctx context.Context) {
	a.log.Info("Closing connections...")

	if a.natsConn != nil {
		if err := a.natsConn.Drain(); err != nil {
			a.log.Errorf("Error draining NATS connection: %v", err)
		} else {
			a.log.Info("NATS connection drained successfully")
		}
	}

	if a.mongoClient != nil {
		if err := a.mongoClient.Disconnect(ctx); err != nil {
			a.log.Errorf("Error disconnecting from MongoDB: %v", err)
		} else {
			a.log.Info("MongoDB connection closed successfully")
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Errorf("Error closing Redis client: %v", err)
		} else {
			a.log.Info("Redis client closed successfully")
		}
	}
}
