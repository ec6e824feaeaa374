// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package cdr_routers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	cdrApi "github.com/yeti-switch/cdr-media/api/cdr-api/api"
	internal_access "github.com/yeti-switch/cdr-media/api/cdr-api/internal/access"
	internal_auth "github.com/yeti-switch/cdr-media/api/cdr-api/internal/auth"
	internal_metrics "github.com/yeti-switch/cdr-media/api/cdr-api/internal/metrics"
	internal_repository "github.com/yeti-switch/cdr-media/api/cdr-api/internal/repository"
	"github.com/yeti-switch/cdr-media/config"
	"github.com/yeti-switch/cdr-media/pkg/commons"
	"github.com/yeti-switch/cdr-media/pkg/connectors"
	"github.com/yeti-switch/cdr-media/pkg/utils"
)

func CdrMediaRoutes(
	cfg *config.AppConfig,
	engine *gin.Engine,
	logger commons.Logger,
	postgres connectors.PostgresConnector,
	replica connectors.PostgresConnector,
	redis connectors.RedisConnector,
	s3 connectors.S3Connector,
) error {
	policy, err := internal_access.LoadPolicyRoles(cfg.PolicyRolesConfig, logger)
	if err != nil {
		return err
	}

	metrics := internal_metrics.NewCollector()
	engine.Use(metrics.Middleware())
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	logger.Info("Cdr media routes added to engine.")
	mediaApi := cdrApi.NewCdrMediaApi(cfg, logger, postgres, replica, s3, metrics)

	customerAuth := internal_auth.NewCustomerAuthenticator(cfg.AuthConfig,
		internal_repository.NewApiAccessRepository(postgres, logger),
		logger)
	customer := engine.Group("/api/rest/customer/v1")
	if len(cfg.CorsOrigins) > 0 {
		customer.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CorsOrigins,
			AllowMethods:     []string{"GET", "OPTIONS"},
			AllowHeaders:     []string{"Origin", utils.HEADER_AUTHORIZATION, utils.HEADER_CONTENT_TYPE},
			ExposeHeaders:    []string{utils.HEADER_CONTENT_DISPOSITION, utils.HEADER_REQUEST_ID},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	{
		// preflight requests carry no credentials, cors answers them before auth
		customer.OPTIONS("/cdrs/:id/rec", func(c *gin.Context) { c.Status(http.StatusNoContent) })
		customer.GET("/cdrs/:id/rec", customerAuth.Authenticate, mediaApi.CustomerRecording)
	}

	adminAuth := internal_auth.NewAdminAuthenticator(cfg.AuthConfig,
		internal_auth.NewAdminSessionStore(redis, cfg.AuthConfig.AdminSessionPrefix, logger),
		policy,
		logger)
	admin := engine.Group("/api/rest/admin", adminAuth.Authenticate)
	{
		admin.GET("/cdrs/:id/call_record", mediaApi.AdminCallRecord)
		admin.GET("/cdrs/:id/dump", mediaApi.AdminDump)
	}
	return nil
}
