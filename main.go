package main

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/helixcrm/helix-backend/api"
	"github.com/helixcrm/helix-backend/infra"
	"github.com/helixcrm/helix-backend/repositories"
	"github.com/helixcrm/helix-backend/usecases"
	"github.com/helixcrm/helix-backend/utils"
)

type AppConfiguration struct {
	env      string
	port     string
	pgConfig infra.PgConfig
}

func main() {
	conf := AppConfiguration{
		env:  utils.GetEnv("ENV", "development"),
		port: utils.GetRequiredEnv[string]("PORT"),
		pgConfig: infra.PgConfig{
			ConnectionString: utils.GetEnv("PG_CONNECTION_STRING", ""),
			Hostname:         utils.GetEnv("PG_HOSTNAME", "localhost"),
			Port:             utils.GetEnv("PG_PORT", "5432"),
			User:             utils.GetEnv("PG_USER", "postgres"),
			Password:         utils.GetEnv("PG_PASSWORD", ""),
			Database:         utils.GetEnv("PG_DATABASE", "helix"),
			SslMode:          utils.GetEnv("PG_SSL_MODE", "prefer"),
		},
	}

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	if err := run(ctx, conf, logger); err != nil {
		logger.ErrorContext(ctx, "server exited with error: "+err.Error())
	}
}

func run(ctx context.Context, conf AppConfiguration, logger *slog.Logger) error {
	connectionString := conf.pgConfig.GetConnectionString()

	if err := repositories.RunMigrations(ctx, connectionString, logger); err != nil {
		return err
	}

	pool, err := infra.NewPostgresConnectionPool(ctx, connectionString)
	if err != nil {
		return err
	}
	defer pool.Close()

	executorGetter := repositories.NewExecutorGetter(pool)
	abTestApi := api.New(usecases.NewUsecases(executorGetter))

	router := initRouter(ctx, conf, abTestApi)
	srv := &http.Server{
		Addr:         "0.0.0.0:" + conf.port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
		Handler:      router,
	}

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server on port "+conf.port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ErrorContext(ctx, "error serving the app: "+err.Error())
		}
	}()

	<-notify.Done()

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
