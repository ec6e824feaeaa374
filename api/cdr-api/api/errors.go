// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package cdr_api

// UnexpectedError is any download failure that is neither a missing artifact
// nor a storage client error.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	return "An unexpected error occurred: " + e.Err.Error()
}

func (e *UnexpectedError) Unwrap() error {
	return e.Err
}
