// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_auth

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	internal_access "github.com/yeti-switch/cdr-media/api/cdr-api/internal/access"
	internal_repository "github.com/yeti-switch/cdr-media/api/cdr-api/internal/repository"
	"github.com/yeti-switch/cdr-media/pkg/commons"
	"github.com/yeti-switch/cdr-media/pkg/configs"
	"github.com/yeti-switch/cdr-media/pkg/types"
	"github.com/yeti-switch/cdr-media/pkg/utils"
)

var ErrUnauthenticated = errors.New("unauthorized")

type CustomerAuthenticator struct {
	secret   []byte
	issuer   string
	accesses internal_repository.ApiAccessRepository
	logger   commons.Logger
}

func NewCustomerAuthenticator(cfg configs.AuthConfig, accesses internal_repository.ApiAccessRepository, logger commons.Logger) *CustomerAuthenticator {
	return &CustomerAuthenticator{
		secret:   []byte(cfg.CustomerJwtSecret),
		issuer:   cfg.CustomerJwtIssuer,
		accesses: accesses,
		logger:   logger,
	}
}

// Authenticate verifies the bearer token and reloads its api access, so a
// revoked or changed access takes effect on the next request.
func (a *CustomerAuthenticator) Authenticate(c *gin.Context) {
	id, err := a.subject(c.GetHeader(utils.HEADER_AUTHORIZATION))
	if err != nil {
		a.logger.Debugf("customer token rejected: path=%s, error=%v", c.Request.URL.Path, err)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrUnauthenticated.Error()})
		return
	}

	access, err := a.accesses.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, internal_repository.ErrApiAccessNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrUnauthenticated.Error()})
			return
		}
		a.logger.Errorf("failed to load api access %d: %v", id, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to authenticate"})
		return
	}

	types.SetPrinciple(c, internal_access.NewCustomerPrinciple(access))
	c.Next()
}

func (a *CustomerAuthenticator) subject(header string) (uint64, error) {
	scheme, tokenStr, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || utils.IsEmpty(tokenStr) {
		return 0, jwt.ErrTokenMalformed
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(strings.TrimSpace(tokenStr), claims, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, jwt.ErrTokenSignatureInvalid
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: subject %q", jwt.ErrTokenInvalidClaims, claims.Subject)
	}
	return id, nil
}
