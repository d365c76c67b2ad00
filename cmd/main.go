package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "frigdash/docs"
	"frigdash/internal/config"
	"frigdash/internal/handlers"
	"frigdash/internal/logger"
	"frigdash/internal/repository"
	"frigdash/internal/repository/db"
	"frigdash/internal/server"
	"frigdash/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// load configs/config.yml + FRIGDASH_* env
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.LogLevel)
	log.Infow("config loaded", "file", loader.File(), "port", cfg.Port, "logs_dir", cfg.Logs.Dir)
	if cfg.Auth.Key == "" && cfg.Auth.KeyHash == "" {
		log.Warnw("no shared key configured; every key-gated route will answer 403")
	}
	watchConfig(loader, log)

	// open audit DB
	sqlDB, err := db.InitDB(cfg.Audit.DBPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err, "path", cfg.Audit.DBPath)
	}
	defer closeDB(sqlDB, log)

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	services, err := service.NewService(cfg, repos)
	if err != nil {
		log.Fatalw("failed to build services", "err", err)
	}
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// watchConfig applies log_level changes without a restart. Other keys are
// read once at startup.
func watchConfig(loader *config.Loader, log *logger.Logger) {
	loader.OnChange(func(cfg config.Config, err error) {
		if err != nil {
			log.Errorw("config reload failed", "err", err)
			return
		}
		if cfg.LogLevel == log.Level() {
			return
		}
		if !log.SetLevel(cfg.LogLevel) {
			log.Warnw("unknown log_level, using info", "log_level", cfg.LogLevel)
			return
		}
		log.Infow("log level changed", "log_level", cfg.LogLevel)
	})
}

func closeDB(sqlDB *sql.DB, log *logger.Logger) {
	if err := sqlDB.Close(); err != nil {
		log.Errorw("failed to close sqlite", "err", err)
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
