// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_storage

import (
	internal_artifact "github.com/yeti-switch/cdr-media/api/cdr-api/internal/artifact"
	internal_type "github.com/yeti-switch/cdr-media/api/cdr-api/internal/type"
	"github.com/yeti-switch/cdr-media/pkg/configs"
	"github.com/yeti-switch/cdr-media/pkg/utils"
)

// Decision is either a LocalRedirect or a RemoteStream.
type Decision interface {
	Backend() string
	decision()
}

// LocalRedirect hands the file over to the reverse proxy through an internal
// redirect; the application sends no body.
type LocalRedirect struct {
	Path        string
	ContentType string
}

func (LocalRedirect) Backend() string { return "local" }
func (LocalRedirect) decision()       {}

// RemoteStream is proxied from object storage. A blank Endpoint selects the
// default S3 client.
type RemoteStream struct {
	Bucket    string
	ObjectKey string
	Endpoint  string
	Filename  string
}

func (RemoteStream) Backend() string { return "s3" }
func (RemoteStream) decision()       {}

// Resolve picks the backend serving ref. It has no side effects and never
// fails: a kind without a bucket is served from local disk.
func Resolve(ref *internal_artifact.Reference, cfg configs.StorageConfig) Decision {
	bucket := bucketFor(ref.Kind, cfg.S3)
	if utils.IsEmpty(bucket.Bucket) {
		return LocalRedirect{
			Path:        ref.LocalPath,
			ContentType: ref.ContentType,
		}
	}
	return RemoteStream{
		Bucket:    bucket.Bucket,
		ObjectKey: ref.ObjectKey,
		Endpoint:  bucket.Endpoint,
		Filename:  ref.ObjectKey,
	}
}

func bucketFor(kind internal_type.ArtifactKind, cfg configs.S3StorageConfig) configs.BucketConfig {
	switch kind {
	case internal_type.ArtifactRecording:
		return cfg.CallRecord
	case internal_type.ArtifactTrace:
		return cfg.Pcap
	}
	return configs.BucketConfig{}
}
