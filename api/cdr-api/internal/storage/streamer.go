// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_storage

import (
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/yeti-switch/cdr-media/pkg/commons"
	"github.com/yeti-switch/cdr-media/pkg/connectors"
	"github.com/yeti-switch/cdr-media/pkg/utils"
)

const DefaultChunkSize = 64 * 1024

// ObjectGetter is the part of *s3.Client the streamer needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// ChunkSink receives the object body one chunk at a time. The slice is only
// valid for the duration of the call.
type ChunkSink func(chunk []byte) error

type Streamer interface {
	// StreamTo copies bucket/key into sink. A blank bucket or key is a no-op.
	// Errors raised by the storage client come back as *UpstreamFetchError;
	// sink errors are returned unchanged.
	StreamTo(ctx context.Context, bucket, key string, sink ChunkSink) error
}

type s3Streamer struct {
	getter    ObjectGetter
	chunkSize int
	logger    commons.Logger
}

func NewS3Streamer(getter ObjectGetter, chunkSize int, logger commons.Logger) Streamer {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &s3Streamer{
		getter:    getter,
		chunkSize: chunkSize,
		logger:    logger,
	}
}

func (s *s3Streamer) StreamTo(ctx context.Context, bucket, key string, sink ChunkSink) error {
	if utils.IsEmpty(bucket) || utils.IsEmpty(key) {
		return nil
	}

	out, err := s.getter.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return s.fetchError(bucket, key, err)
	}
	defer out.Body.Close()

	buf := make([]byte, s.chunkSize)
	var total int64
	for {
		if err := ctx.Err(); err != nil {
			s.logger.Debugf("stream cancelled: bucket=%s, key=%s, bytes=%d", bucket, key, total)
			return err
		}
		n, readErr := out.Body.Read(buf)
		if n > 0 {
			if err := sink(buf[:n]); err != nil {
				return err
			}
			total += int64(n)
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return s.fetchError(bucket, key, readErr)
		}
	}

	s.logger.Debugf("streamed object: bucket=%s, key=%s, bytes=%d", bucket, key, total)
	return nil
}

func (s *s3Streamer) fetchError(bucket, key string, err error) error {
	if isClientError(err) {
		return &UpstreamFetchError{Bucket: bucket, Key: key, Err: err}
	}
	s.logger.Warnf("object read failed: bucket=%s, key=%s, error=%v", bucket, key, err)
	return err
}

// StreamerPool hands out a streamer per S3 endpoint.
type StreamerPool interface {
	For(endpoint string) (Streamer, error)
}

type streamerPool struct {
	s3        connectors.S3Connector
	chunkSize int
	logger    commons.Logger
}

func NewStreamerPool(s3 connectors.S3Connector, chunkSize int, logger commons.Logger) StreamerPool {
	return &streamerPool{s3: s3, chunkSize: chunkSize, logger: logger}
}

func (p *streamerPool) For(endpoint string) (Streamer, error) {
	client, err := p.s3.Client(endpoint)
	if err != nil {
		return nil, err
	}
	return NewS3Streamer(client, p.chunkSize, p.logger), nil
}
