package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	pkgerrors "github.com/pkg/errors"
	"github.com/pressly/goose/v3"

	"github.com/eprocurement-ocds/revision/migrations"
	"github.com/eprocurement-ocds/revision/modules"
	"github.com/eprocurement-ocds/revision/pkg/application"
	"github.com/eprocurement-ocds/revision/pkg/configuration"
	"github.com/eprocurement-ocds/revision/pkg/eventbus"
	"github.com/eprocurement-ocds/revision/pkg/metrics"
	"github.com/eprocurement-ocds/revision/pkg/middleware"
	"github.com/eprocurement-ocds/revision/pkg/server"
)

func main() {
	conf := configuration.Use()
	log := conf.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, conf.Database.ConnectionString())
	if err != nil {
		log.WithError(pkgerrors.Wrap(err, "failed to create database pool")).Fatal("startup failed")
	}
	defer pool.Close()

	if err := runMigrations(pool); err != nil {
		log.WithError(err).Fatal("startup failed")
	}

	app := application.New(eventbus.NewEventPublisher(log))
	if err := modules.Load(app, modules.BuiltIn()...); err != nil {
		log.WithError(pkgerrors.Wrap(err, "failed to register modules")).Fatal("startup failed")
	}
	app.RegisterControllers(metrics.NewPrometheusController("/metrics"))
	app.RegisterMiddleware(
		middleware.RequestLogger(log, conf),
		middleware.WithPool(pool),
	)

	srv := server.NewHTTPServer(app)

	serverErr := make(chan error, 1)
	go func() {
		log.WithField("address", conf.SocketAddress).Info("listening")
		serverErr <- srv.Start(conf.SocketAddress)
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(pkgerrors.Wrap(err, "server failed")).Fatal("shutting down")
		}
	case <-ctx.Done():
		log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(pkgerrors.Wrap(err, "graceful shutdown failed")).Error("shutting down")
		}
	}
}

func runMigrations(pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func() { _ = db.Close() }()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return pkgerrors.Wrap(err, "failed to set migration dialect")
	}
	if err := goose.Up(db, "."); err != nil {
		return pkgerrors.Wrap(err, "failed to apply migrations")
	}
	return nil
}
