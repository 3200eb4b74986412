package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/listener-admin/internal/api/http"
	"github.com/spec-kit/listener-admin/internal/api/http/handlers"
	"github.com/spec-kit/listener-admin/internal/config"
	"github.com/spec-kit/listener-admin/internal/events"
	"github.com/spec-kit/listener-admin/internal/observability"
	"github.com/spec-kit/listener-admin/internal/platform"
	"github.com/spec-kit/listener-admin/internal/service"
	"github.com/spec-kit/listener-admin/internal/session"
	"github.com/spec-kit/listener-admin/internal/store"
	"github.com/spec-kit/listener-admin/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var tokenStore session.TokenStore
	if cfg.Session.UseRedis() {
		redisStore := session.NewRedisStore(cfg.Session, logger)
		defer redisStore.Close()
		tokenStore = redisStore
	} else {
		tokenStore = session.NewFileStore(cfg.Session.TokenPath)
	}
	sess := session.New(ctx, tokenStore, logger)

	metrics := observability.NewMetrics()
	client := platform.NewClient(cfg.Platform, sess, logger, metrics)

	interval := cfg.Poll.Interval()
	pageSize := cfg.Poll.PageSize
	users := store.NewUsers(client, interval, pageSize, logger, metrics)
	listeners := store.NewListeners(client, interval, pageSize, logger, metrics)
	sessions := store.NewSessions(client, interval, pageSize, logger, metrics)
	dashboard := store.NewDashboard(client, interval, logger, metrics)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(service.AuthDependencies{
		Client:     client,
		Session:    sess,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	listenerService := service.NewListenerService(service.ListenerDependencies{
		Client:     client,
		Listeners:  listeners,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	sessionService := service.NewSessionService(service.SessionDependencies{
		Client:     client,
		Sessions:   sessions,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	assignmentService := service.NewAssignmentService(service.AssignmentDependencies{
		Client:     client,
		Sessions:   sessions,
		Listeners:  listeners,
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	worker.StartActivityWorker(service.NewActivityService(dispatcher, logger))

	// Each store runs its own independent 30s timer; they are not
	// synchronized with one another.
	users.Start(ctx)
	listeners.Start(ctx)
	sessions.Start(ctx)
	dashboard.Start(ctx)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Auth:      handlers.NewAuthHandler(authService),
		Dashboard: handlers.NewDashboardHandler(dashboard, sessions),
		Users:     handlers.NewUsersHandler(users, client),
		Listeners: handlers.NewListenersHandler(listeners, listenerService),
		Sessions:  handlers.NewSessionsHandler(sessions, sessionService, assignmentService),
		Admin:     handlers.NewAdminHandler(client),
		AuthSvc:   authService,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
