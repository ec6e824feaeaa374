// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_repository

import (
	"context"
	"errors"
	"fmt"

	internal_entity "github.com/yeti-switch/cdr-media/api/cdr-api/internal/entity"
	"github.com/yeti-switch/cdr-media/pkg/commons"
	"github.com/yeti-switch/cdr-media/pkg/connectors"
	"gorm.io/gorm"
)

var ErrApiAccessNotFound = errors.New("api access not found")

type ApiAccessRepository interface {
	Get(ctx context.Context, id uint64) (*internal_entity.ApiAccess, error)
}

type apiAccessRepository struct {
	postgres connectors.PostgresConnector
	logger   commons.Logger
}

func NewApiAccessRepository(postgres connectors.PostgresConnector, logger commons.Logger) ApiAccessRepository {
	return &apiAccessRepository{postgres: postgres, logger: logger}
}

// Get always hits the database: recording permission may be revoked between
// two requests of the same token.
func (r *apiAccessRepository) Get(ctx context.Context, id uint64) (*internal_entity.ApiAccess, error) {
	db := r.postgres.DB(ctx)
	var access internal_entity.ApiAccess
	if err := db.Where("id = ?", id).Take(&access).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApiAccessNotFound
		}
		return nil, fmt.Errorf("failed to get api access %d: %w", id, err)
	}
	return &access, nil
}
