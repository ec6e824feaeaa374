// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_access

import (
	"fmt"

	internal_entity "github.com/yeti-switch/cdr-media/api/cdr-api/internal/entity"
	"github.com/yeti-switch/cdr-media/pkg/types"
)

type customerPrinciple struct {
	access *internal_entity.ApiAccess
}

// NewCustomerPrinciple wraps a freshly loaded api access row. Customers may
// listen to recordings when allowed; traces are admin-only.
func NewCustomerPrinciple(access *internal_entity.ApiAccess) types.Principle {
	return &customerPrinciple{access: access}
}

func (c *customerPrinciple) GetIdentity() string {
	return fmt.Sprintf("customer:%d/api_access:%d", c.access.CustomerId, c.access.Id)
}

func (c *customerPrinciple) CanFetchRecordings() bool {
	return c.access.AllowListenRecording
}

func (c *customerPrinciple) CanFetchTraces() bool {
	return false
}

func (c *customerPrinciple) GetCustomerId() *uint64 {
	id := c.access.CustomerId
	return &id
}

func (c *customerPrinciple) GetAccountIds() []int64 {
	return []int64(c.access.AccountIds)
}

type adminPrinciple struct {
	session *internal_entity.AdminSession
	policy  *PolicyRoles
}

func NewAdminPrinciple(session *internal_entity.AdminSession, policy *PolicyRoles) types.Principle {
	return &adminPrinciple{session: session, policy: policy}
}

func (a *adminPrinciple) GetIdentity() string {
	return fmt.Sprintf("admin:%d/%s", a.session.AdminUserId, a.session.Username)
}

func (a *adminPrinciple) CanFetchRecordings() bool {
	return a.policy.Allowed(a.session.Roles, SectionCdr, ActionDownloadCallRecord)
}

func (a *adminPrinciple) CanFetchTraces() bool {
	return a.policy.Allowed(a.session.Roles, SectionCdr, ActionDump)
}

func (a *adminPrinciple) GetCustomerId() *uint64 {
	return nil
}

func (a *adminPrinciple) GetAccountIds() []int64 {
	return nil
}
