// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	internal_entity "github.com/yeti-switch/cdr-media/api/cdr-api/internal/entity"
	"github.com/yeti-switch/cdr-media/pkg/commons"
	"github.com/yeti-switch/cdr-media/pkg/connectors"
)

var ErrSessionNotFound = errors.New("admin session not found")

// AdminSessionStore reads sessions written by the admin UI.
type AdminSessionStore interface {
	Get(ctx context.Context, token string) (*internal_entity.AdminSession, error)
}

type redisAdminSessionStore struct {
	redis  connectors.RedisConnector
	prefix string
	logger commons.Logger
}

func NewAdminSessionStore(redis connectors.RedisConnector, prefix string, logger commons.Logger) AdminSessionStore {
	return &redisAdminSessionStore{
		redis:  redis,
		prefix: prefix,
		logger: logger,
	}
}

func (s *redisAdminSessionStore) key(token string) string {
	return s.prefix + token
}

func (s *redisAdminSessionStore) Get(ctx context.Context, token string) (*internal_entity.AdminSession, error) {
	data, err := s.redis.GetConnection().Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get admin session: %w", err)
	}

	var session internal_entity.AdminSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode admin session: %w", err)
	}
	return &session, nil
}
