// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package cdr_api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yeti-switch/cdr-media/pkg/commons"
	"github.com/yeti-switch/cdr-media/pkg/types"
	"github.com/yeti-switch/cdr-media/pkg/utils"
)

// RequestLogger writes one line per request and makes sure every response
// carries a request id.
func RequestLogger(logger commons.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestId := c.GetHeader(utils.HEADER_REQUEST_ID)
		if utils.IsEmpty(requestId) {
			requestId = uuid.NewString()
		}
		c.Header(utils.HEADER_REQUEST_ID, requestId)

		c.Next()

		caller := "anonymous"
		if p, ok := types.GetPrinciple(c); ok {
			caller = p.GetIdentity()
		}
		logger.Infow("request",
			"requestId", requestId,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"caller", caller,
			"latency", time.Since(start).String(),
		)
	}
}
