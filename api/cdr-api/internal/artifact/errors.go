// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_artifact

import (
	"errors"
	"fmt"

	internal_type "github.com/yeti-switch/cdr-media/api/cdr-api/internal/type"
)

// NotFoundCause is kept for logs only. Callers always see a plain 404 so
// that an unauthorized caller cannot tell whether a recording exists.
type NotFoundCause string

const (
	CausePermissionDenied NotFoundCause = "permission_denied"
	CauseInvalidKey       NotFoundCause = "invalid_key"
	CauseRecordMissing    NotFoundCause = "record_missing"
	CauseArtifactMissing  NotFoundCause = "artifact_missing"
)

type NotFoundError struct {
	Cause NotFoundCause
	Kind  internal_type.ArtifactKind
	Key   string
	Err   error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s for cdr %q not found (%s): %v", e.Kind, e.Key, e.Cause, e.Err)
	}
	return fmt.Sprintf("%s for cdr %q not found (%s)", e.Kind, e.Key, e.Cause)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// AsNotFound unwraps err into a *NotFoundError when it is one.
func AsNotFound(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}
