// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package health_check_api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeti-switch/cdr-media/config"
	"github.com/yeti-switch/cdr-media/pkg/commons"
	"github.com/yeti-switch/cdr-media/pkg/connectors"
)

const probeTimeout = 2 * time.Second

type healthCheckApi struct {
	cfg        *config.AppConfig
	logger     commons.Logger
	connectors []connectors.Connector
}

type HealthCheckApi interface {
	Readiness(c *gin.Context)
	Healthz(c *gin.Context)
}

// New reports readiness only when every connector answers.
func New(cfg *config.AppConfig, logger commons.Logger, conns ...connectors.Connector) HealthCheckApi {
	return &healthCheckApi{cfg: cfg, logger: logger, connectors: conns}
}

func (h *healthCheckApi) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
	defer cancel()

	status := http.StatusOK
	checks := make(map[string]bool, len(h.connectors))
	for _, conn := range h.connectors {
		ok := conn.IsConnected(ctx)
		checks[conn.Name()] = ok
		if !ok {
			h.logger.Warnf("readiness check failed for %s", conn.Name())
			status = http.StatusServiceUnavailable
		}
	}

	c.JSON(status, gin.H{
		"healthy":    status == http.StatusOK,
		"connectors": checks,
	})
}

func (h *healthCheckApi) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"healthy": true,
		"service": h.cfg.Name,
		"version": h.cfg.Version,
	})
}
