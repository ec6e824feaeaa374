// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package connectors

import (
	"context"
	"fmt"
	"time"

	"github.com/yeti-switch/cdr-media/pkg/commons"
	"github.com/yeti-switch/cdr-media/pkg/configs"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

type PostgresConnector interface {
	Connector
	DB(ctx context.Context) *gorm.DB
}

type postgresConnector struct {
	name   string
	cfg    *configs.PostgresConfig
	logger commons.Logger
	db     *gorm.DB
}

func NewPostgresConnector(name string, cfg *configs.PostgresConfig, logger commons.Logger) PostgresConnector {
	return &postgresConnector{name: name, cfg: cfg, logger: logger}
}

// NewPostgresConnectorFromDB wraps an already opened gorm handle.
func NewPostgresConnectorFromDB(name string, db *gorm.DB, logger commons.Logger) PostgresConnector {
	return &postgresConnector{name: name, db: db, logger: logger}
}

// gormWriter feeds gorm's slow query and error lines into the service logger.
type gormWriter struct {
	logger commons.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.logger.Warnf(format, args...)
}

func newGormLogger(logger commons.Logger) gorm_logger.Interface {
	return gorm_logger.New(gormWriter{logger: logger}, gorm_logger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  gorm_logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func (p *postgresConnector) Connect(ctx context.Context) error {
	db, err := gorm.Open(postgres.Open(p.cfg.DSN()), &gorm.Config{
		Logger:                 newGormLogger(p.logger),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return fmt.Errorf("failed to open postgres %s: %w", p.name, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql handle for %s: %w", p.name, err)
	}
	if p.cfg.MaxOpenConnection > 0 {
		sqlDB.SetMaxOpenConns(p.cfg.MaxOpenConnection)
	}
	if p.cfg.MaxIdealConnection > 0 {
		sqlDB.SetMaxIdleConns(p.cfg.MaxIdealConnection)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return fmt.Errorf("failed to ping postgres %s: %w", p.name, err)
	}
	p.db = db
	p.logger.Infof("connected to postgres %s at %s:%d/%s", p.name, p.cfg.Host, p.cfg.Port, p.cfg.DBName)
	return nil
}

func (p *postgresConnector) Name() string {
	return p.name
}

func (p *postgresConnector) DB(ctx context.Context) *gorm.DB {
	return p.db.WithContext(ctx)
}

func (p *postgresConnector) IsConnected(ctx context.Context) bool {
	if p.db == nil {
		return false
	}
	sqlDB, err := p.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.PingContext(ctx) == nil
}

func (p *postgresConnector) Disconnect(ctx context.Context) error {
	if p.db == nil {
		return nil
	}
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	p.logger.Infof("disconnecting postgres %s", p.name)
	return sqlDB.Close()
}
