package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"toolbox/config"
	"toolbox/di"
	"toolbox/driver/redis_queue"
	"toolbox/driver/toolbox_db"
	"toolbox/rest"
	"toolbox/utils/logger"
	"toolbox/utils/otel"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	otelShutdown, err := otel.InitProvider(ctx, otel.Config{
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: cfg.Telemetry.ServiceVersion,
		Environment:    cfg.Telemetry.Environment,
		OTLPEndpoint:   cfg.Telemetry.Endpoint,
		Enabled:        cfg.Telemetry.Enabled,
		SampleRatio:    cfg.Telemetry.SampleRatio,
	})
	if err != nil {
		logger.Logger.Warn("Failed to initialize OpenTelemetry, continuing without it", "error", err)
		cfg.Telemetry.Enabled = false
		otelShutdown = func(context.Context) error { return nil }
	}

	log := logger.InitLogger(cfg.Logging.Level, cfg.Logging.Format, cfg.Telemetry.Enabled)
	log.Info("Starting toolbox recompute service")

	pool, err := toolbox_db.InitDBConnectionPool(ctx, &toolbox_db.DatabaseConfig{
		Host:           cfg.Database.Host,
		Port:           cfg.Database.Port,
		User:           cfg.Database.User,
		Password:       cfg.Database.Password,
		DBName:         cfg.Database.Name,
		SSLMode:        cfg.Database.SSLMode,
		MaxConns:       int32(cfg.Database.MaxConns),
		MinConns:       int32(cfg.Database.MinConns),
		MaxConnLife:    cfg.Database.MaxConnLife,
		ConnectTimeout: cfg.Database.ConnectTimeout,
	})
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	redisDriver, err := redis_queue.NewRedisDriverWithURL(cfg.Redis.URL, cfg.Redis.StreamMaxLen)
	if err != nil {
		log.Error("Failed to configure redis", "error", err)
		os.Exit(1)
	}
	defer redisDriver.Close()

	if err := redisDriver.Ping(ctx); err != nil {
		log.Error("Failed to connect to redis", "error", err)
		os.Exit(1)
	}

	container := di.NewApplicationComponents(pool, redisDriver, cfg)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout
	rest.RegisterRoutes(e, container, cfg.Telemetry)

	g, gCtx := errgroup.WithContext(ctx)

	if cfg.Scheduler.Enabled {
		container.TickScheduler.Start(gCtx)
		g.Go(func() error {
			<-gCtx.Done()
			container.TickScheduler.Shutdown()
			return nil
		})
	} else {
		log.Info("Scheduler disabled, dispatcher will not tick")
	}

	g.Go(func() error {
		return container.TaskConsumer.Run(gCtx)
	})

	address := fmt.Sprintf(":%d", cfg.Server.Port)
	g.Go(func() error {
		log.Info("HTTP server listening", "address", address)
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			log.Warn("OpenTelemetry shutdown error", "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("Shutdown error", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited properly")
}
