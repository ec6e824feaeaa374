// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_storage

import (
	"errors"

	"github.com/aws/smithy-go"
)

// UpstreamFetchError is a failure reported by the object storage client. Its
// message is shown to the caller as is.
type UpstreamFetchError struct {
	Bucket string
	Key    string
	Err    error
}

func (e *UpstreamFetchError) Error() string {
	return e.Err.Error()
}

func (e *UpstreamFetchError) Unwrap() error {
	return e.Err
}

// Code is the storage API error code, or "unknown".
func (e *UpstreamFetchError) Code() string {
	var apiErr smithy.APIError
	if errors.As(e.Err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return "unknown"
}

// isClientError reports whether err was raised by the storage client itself
// rather than by the transport under an already opened body.
func isClientError(err error) bool {
	var opErr *smithy.OperationError
	if errors.As(err, &opErr) {
		return true
	}
	var apiErr smithy.APIError
	return errors.As(err, &apiErr)
}

func AsUpstreamFetch(err error) (*UpstreamFetchError, bool) {
	var uf *UpstreamFetchError
	if errors.As(err, &uf) {
		return uf, true
	}
	return nil, false
}
