// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_artifact

import (
	"fmt"
	"path"
	"strings"

	internal_entity "github.com/yeti-switch/cdr-media/api/cdr-api/internal/entity"
	internal_type "github.com/yeti-switch/cdr-media/api/cdr-api/internal/type"
	"github.com/yeti-switch/cdr-media/pkg/configs"
	"github.com/yeti-switch/cdr-media/pkg/utils"
)

const (
	ContentTypeRecording = "audio/mpeg"
	ContentTypeTrace     = "application/octet-stream"
)

// Reference is where an artifact of one CDR lives. ObjectKey is both the
// file name on the media disk and the key in the object storage bucket, so
// the two backends always agree on naming.
type Reference struct {
	Kind               internal_type.ArtifactKind
	CdrId              uint64
	ObjectKey          string
	LocalPath          string
	ContentType        string
	ContentDisposition string
}

var dispositionEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func attachment(filename string) string {
	return fmt.Sprintf(`attachment; filename="%s"`, dispositionEscaper.Replace(filename))
}

// ReferenceFor derives the artifact reference of kind from cdr. ok is false
// when the CDR has no such artifact.
func ReferenceFor(cdr *internal_entity.Cdr, kind internal_type.ArtifactKind, local configs.LocalStorageConfig) (ref *Reference, ok bool) {
	if cdr == nil || utils.IsEmpty(cdr.LocalTag) {
		return nil, false
	}

	var filename, prefix, contentType string
	switch kind {
	case internal_type.ArtifactRecording:
		if !cdr.HasRecording() {
			return nil, false
		}
		filename = cdr.LocalTag + ".mp3"
		prefix = local.RecordPrefix
		contentType = ContentTypeRecording
	case internal_type.ArtifactTrace:
		if !cdr.HasDump() || cdr.NodeId == nil {
			return nil, false
		}
		filename = fmt.Sprintf("%s_%d.pcap", cdr.LocalTag, *cdr.NodeId)
		prefix = local.DumpPrefix
		contentType = ContentTypeTrace
	default:
		return nil, false
	}

	return &Reference{
		Kind:               kind,
		CdrId:              cdr.Id,
		ObjectKey:          filename,
		LocalPath:          path.Join("/", prefix, filename),
		ContentType:        contentType,
		ContentDisposition: attachment(filename),
	}, true
}
