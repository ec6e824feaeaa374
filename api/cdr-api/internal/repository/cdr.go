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

var ErrCdrNotFound = errors.New("cdr not found")

// CdrRepository reads CDRs for media lookups. It never writes.
type CdrRepository interface {
	// Get returns the CDR addressed by key, or ErrCdrNotFound when no row
	// matches (including rows outside the customer's scope).
	Get(ctx context.Context, key internal_entity.CdrKey) (*internal_entity.Cdr, error)
}

type cdrRepository struct {
	primary connectors.PostgresConnector
	replica connectors.PostgresConnector
	logger  commons.Logger
}

// NewCdrRepository creates a repository over the cdr database. replica may be
// nil; when set, reads go to the replica first and fall back to the primary
// if the replica errors out.
func NewCdrRepository(primary, replica connectors.PostgresConnector, logger commons.Logger) CdrRepository {
	return &cdrRepository{
		primary: primary,
		replica: replica,
		logger:  logger,
	}
}

func (r *cdrRepository) Get(ctx context.Context, key internal_entity.CdrKey) (*internal_entity.Cdr, error) {
	if r.replica != nil {
		cdr, err := r.find(ctx, r.replica, key)
		if err == nil || errors.Is(err, ErrCdrNotFound) {
			return cdr, err
		}
		if ctx.Err() != nil {
			return nil, err
		}
		r.logger.Warnf("cdr replica lookup failed, falling back to primary: key=%s, error=%v", key, err)
	}
	return r.find(ctx, r.primary, key)
}

func (r *cdrRepository) find(ctx context.Context, conn connectors.PostgresConnector, key internal_entity.CdrKey) (*internal_entity.Cdr, error) {
	db := conn.DB(ctx)
	if key.Uuid != "" {
		db = db.Where("uuid = ?", key.Uuid)
	} else {
		db = db.Where("id = ?", key.Id)
	}
	if key.CustomerId != nil {
		db = db.Where("customer_id = ?", *key.CustomerId)
	}
	if len(key.AccountIds) > 0 {
		db = db.Where("customer_acc_id IN ?", key.AccountIds)
	}

	var cdr internal_entity.Cdr
	if err := db.Take(&cdr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCdrNotFound
		}
		return nil, fmt.Errorf("failed to get cdr %s from %s: %w", key, conn.Name(), err)
	}

	r.logger.Debugf("resolved cdr: key=%s, id=%d, localTag=%s, source=%s", key, cdr.Id, cdr.LocalTag, conn.Name())
	return &cdr, nil
}
