// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package configs

// BucketConfig selects object storage for one artifact kind. A blank bucket
// keeps that kind on local disk behind the reverse proxy.
type BucketConfig struct {
	Bucket   string `mapstructure:"bucket"`
	Endpoint string `mapstructure:"endpoint"`
}

type S3StorageConfig struct {
	Endpoint        string       `mapstructure:"endpoint"`
	Region          string       `mapstructure:"region"`
	AccessKeyID     string       `mapstructure:"access_key_id"`
	SecretAccessKey string       `mapstructure:"secret_access_key"`
	ForcePathStyle  bool         `mapstructure:"force_path_style"`
	ChunkSize       int          `mapstructure:"chunk_size"`
	Pcap            BucketConfig `mapstructure:"pcap"`
	CallRecord      BucketConfig `mapstructure:"call_record"`
}

type LocalStorageConfig struct {
	RecordPrefix string `mapstructure:"record_prefix" validate:"required"`
	DumpPrefix   string `mapstructure:"dump_prefix" validate:"required"`
}

type StorageConfig struct {
	S3    S3StorageConfig    `mapstructure:"s3_storage"`
	Local LocalStorageConfig `mapstructure:"local_storage" validate:"required"`
}

// Endpoints returns every distinct non-blank endpoint an S3 client is needed
// for, default endpoint first.
func (c S3StorageConfig) Endpoints() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, e := range []string{c.Endpoint, c.CallRecord.Endpoint, c.Pcap.Endpoint} {
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}
