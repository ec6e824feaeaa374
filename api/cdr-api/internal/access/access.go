// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_access

import (
	internal_type "github.com/yeti-switch/cdr-media/api/cdr-api/internal/type"
	"github.com/yeti-switch/cdr-media/pkg/types"
)

// CanAccess decides whether the caller may fetch artifacts of the given kind.
// The two capabilities are independent; unknown kinds are denied.
func CanAccess(caller types.Principle, kind internal_type.ArtifactKind) bool {
	if caller == nil {
		return false
	}
	switch kind {
	case internal_type.ArtifactRecording:
		return caller.CanFetchRecordings()
	case internal_type.ArtifactTrace:
		return caller.CanFetchTraces()
	default:
		return false
	}
}
