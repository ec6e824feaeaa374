// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	cdrApi "github.com/yeti-switch/cdr-media/api/cdr-api/api"
	cdrRouters "github.com/yeti-switch/cdr-media/api/cdr-api/router"
	"github.com/yeti-switch/cdr-media/config"
	"github.com/yeti-switch/cdr-media/pkg/commons"
	"github.com/yeti-switch/cdr-media/pkg/connectors"
	"github.com/yeti-switch/cdr-media/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

type application struct {
	cfg      *config.AppConfig
	logger   commons.Logger
	engine   *gin.Engine
	postgres connectors.PostgresConnector
	replica  connectors.PostgresConnector
	redis    connectors.RedisConnector
	s3       connectors.S3Connector
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	vConfig, err := config.InitConfig()
	if err != nil {
		log.Fatalf("failed to read config: %v", err)
	}
	cfg, err := config.GetApplicationConfig(vConfig)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	opts := []commons.LoggerOption{commons.WithName(cfg.Name), commons.WithLevel(cfg.LogLevel)}
	if cfg.LogPath != "" {
		opts = append(opts, commons.WithFile(cfg.LogPath, 100, 5, 14))
	}
	if utils.FromEnvironmentStr(cfg.Env) == utils.DEVELOPMENT {
		opts = append(opts, commons.WithConsole())
	}
	logger, err := commons.NewApplicationLogger(opts...)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	app := &application{
		cfg:      cfg,
		logger:   logger,
		postgres: connectors.NewPostgresConnector("postgres", &cfg.PostgresConfig, logger),
		redis:    connectors.NewRedisConnector(&cfg.RedisConfig, logger),
		s3:       connectors.NewS3Connector(&cfg.StorageConfig.S3, logger),
	}
	if cfg.CdrReplicaConfig.Configured() {
		app.replica = connectors.NewPostgresConnector("cdr_replica", &cfg.CdrReplicaConfig, logger)
	}

	if err := app.connect(ctx); err != nil {
		logger.Fatalf("failed to connect: %v", err)
	}
	defer app.disconnect()

	if err := app.routes(); err != nil {
		logger.Fatalf("failed to register routes: %v", err)
	}

	if err := app.serve(ctx); err != nil {
		logger.Errorf("server stopped: %v", err)
	}
}

func (app *application) allConnectors() []connectors.Connector {
	conns := []connectors.Connector{app.postgres, app.redis, app.s3}
	if app.replica != nil {
		conns = append(conns, app.replica)
	}
	return conns
}

func (app *application) connect(ctx context.Context) error {
	for _, conn := range app.allConnectors() {
		if err := conn.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect %s: %w", conn.Name(), err)
		}
	}
	return nil
}

func (app *application) disconnect() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, conn := range app.allConnectors() {
		if err := conn.Disconnect(ctx); err != nil {
			app.logger.Warnf("failed to disconnect %s: %v", conn.Name(), err)
		}
	}
}

func (app *application) routes() error {
	if utils.FromEnvironmentStr(app.cfg.Env) == utils.PRODUCTION {
		gin.SetMode(gin.ReleaseMode)
	}
	app.engine = gin.New()
	app.engine.Use(gin.Recovery(), cdrApi.RequestLogger(app.logger))

	if err := cdrRouters.CdrMediaRoutes(app.cfg, app.engine, app.logger,
		app.postgres, app.replica, app.redis, app.s3); err != nil {
		return err
	}
	cdrRouters.HealthCheckRoutes(app.cfg, app.engine, app.logger, app.allConnectors()...)
	return nil
}

func (app *application) serve(ctx context.Context) error {
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", app.cfg.Host, app.cfg.Port),
		Handler:           app.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		app.logger.Infof("%s %s listening on %s", app.cfg.Name, app.cfg.Version, server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		app.logger.Infof("shutting down %s", app.cfg.Name)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
