// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	internal_access "github.com/yeti-switch/cdr-media/api/cdr-api/internal/access"
	"github.com/yeti-switch/cdr-media/pkg/commons"
	"github.com/yeti-switch/cdr-media/pkg/configs"
	"github.com/yeti-switch/cdr-media/pkg/types"
	"github.com/yeti-switch/cdr-media/pkg/utils"
)

type AdminAuthenticator struct {
	header   string
	cookie   string
	sessions AdminSessionStore
	policy   *internal_access.PolicyRoles
	logger   commons.Logger
}

func NewAdminAuthenticator(cfg configs.AuthConfig, sessions AdminSessionStore, policy *internal_access.PolicyRoles, logger commons.Logger) *AdminAuthenticator {
	return &AdminAuthenticator{
		header:   cfg.AdminSessionHeader,
		cookie:   cfg.AdminSessionCookie,
		sessions: sessions,
		policy:   policy,
		logger:   logger,
	}
}

func (a *AdminAuthenticator) token(c *gin.Context) string {
	if token := c.GetHeader(a.header); !utils.IsEmpty(token) {
		return token
	}
	if a.cookie == "" {
		return ""
	}
	token, err := c.Cookie(a.cookie)
	if err != nil {
		return ""
	}
	return token
}

func (a *AdminAuthenticator) Authenticate(c *gin.Context) {
	token := a.token(c)
	if utils.IsEmpty(token) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrUnauthenticated.Error()})
		return
	}

	session, err := a.sessions.Get(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrUnauthenticated.Error()})
			return
		}
		a.logger.Errorf("failed to load admin session: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to authenticate"})
		return
	}

	types.SetPrinciple(c, internal_access.NewAdminPrinciple(session, a.policy))
	c.Next()
}
