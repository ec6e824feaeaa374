// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_artifact

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	internal_access "github.com/yeti-switch/cdr-media/api/cdr-api/internal/access"
	internal_entity "github.com/yeti-switch/cdr-media/api/cdr-api/internal/entity"
	internal_repository "github.com/yeti-switch/cdr-media/api/cdr-api/internal/repository"
	internal_type "github.com/yeti-switch/cdr-media/api/cdr-api/internal/type"
	"github.com/yeti-switch/cdr-media/pkg/commons"
	"github.com/yeti-switch/cdr-media/pkg/configs"
	"github.com/yeti-switch/cdr-media/pkg/types"
)

// Locator finds the artifact of a CDR for a caller.
type Locator interface {
	// Locate returns a *NotFoundError when the caller may not fetch kind, the
	// id is malformed, the CDR does not exist (or is out of the caller's
	// scope) or the CDR carries no such artifact. Any other error is a lookup
	// failure.
	Locate(ctx context.Context, caller types.Principle, id string, kind internal_type.ArtifactKind) (*Reference, error)
}

type locator struct {
	cdrs   internal_repository.CdrRepository
	local  configs.LocalStorageConfig
	logger commons.Logger
}

func NewLocator(cdrs internal_repository.CdrRepository, local configs.LocalStorageConfig, logger commons.Logger) Locator {
	return &locator{
		cdrs:   cdrs,
		local:  local,
		logger: logger,
	}
}

func (l *locator) Locate(ctx context.Context, caller types.Principle, id string, kind internal_type.ArtifactKind) (*Reference, error) {
	if !kind.Valid() {
		return nil, &NotFoundError{Cause: CauseArtifactMissing, Kind: kind, Key: id}
	}
	if !internal_access.CanAccess(caller, kind) {
		return nil, &NotFoundError{Cause: CausePermissionDenied, Kind: kind, Key: id}
	}

	key, err := recordKey(caller, id)
	if err != nil {
		return nil, &NotFoundError{Cause: CauseInvalidKey, Kind: kind, Key: id, Err: err}
	}

	cdr, err := l.cdrs.Get(ctx, key)
	if err != nil {
		if errors.Is(err, internal_repository.ErrCdrNotFound) {
			return nil, &NotFoundError{Cause: CauseRecordMissing, Kind: kind, Key: id}
		}
		return nil, fmt.Errorf("failed to locate %s for cdr %s: %w", kind, id, err)
	}

	ref, ok := ReferenceFor(cdr, kind, l.local)
	if !ok {
		return nil, &NotFoundError{Cause: CauseArtifactMissing, Kind: kind, Key: id}
	}
	l.logger.Debugf("located %s for cdr %d: key=%s, caller=%s", kind, cdr.Id, ref.ObjectKey, caller.GetIdentity())
	return ref, nil
}

// recordKey verifies the path id. Customers only know CDRs by UUID; admins
// use the numeric id shown in the admin UI.
func recordKey(caller types.Principle, id string) (internal_entity.CdrKey, error) {
	if customerId := caller.GetCustomerId(); customerId != nil {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return internal_entity.CdrKey{}, fmt.Errorf("invalid cdr key: %w", err)
		}
		return internal_entity.CdrKey{
			Uuid:       parsed.String(),
			CustomerId: customerId,
			AccountIds: caller.GetAccountIds(),
		}, nil
	}

	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return internal_entity.CdrKey{}, fmt.Errorf("invalid cdr id: %w", err)
	}
	if n == 0 {
		return internal_entity.CdrKey{}, errors.New("invalid cdr id: 0")
	}
	return internal_entity.CdrKey{Id: n}, nil
}
