// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package types

import "github.com/gin-gonic/gin"

const CTX_PRINCIPLE = "__cdr_media_principle"

// Principle is the authenticated caller of a media request. Capability
// flags reflect the caller's policy state at the time the request was
// authenticated and must not be cached across requests.
type Principle interface {
	GetIdentity() string
	CanFetchRecordings() bool
	CanFetchTraces() bool

	// GetCustomerId is nil for admin callers. Customer callers only see CDRs
	// billed to them and address them by UUID.
	GetCustomerId() *uint64
	// GetAccountIds narrows a customer to a subset of its accounts; empty
	// means every account of the customer.
	GetAccountIds() []int64
}

func SetPrinciple(c *gin.Context, p Principle) {
	c.Set(CTX_PRINCIPLE, p)
}

func GetPrinciple(c *gin.Context) (Principle, bool) {
	v, ok := c.Get(CTX_PRINCIPLE)
	if !ok {
		return nil, false
	}
	p, ok := v.(Principle)
	return p, ok
}
