// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package cdr_api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	internal_artifact "github.com/yeti-switch/cdr-media/api/cdr-api/internal/artifact"
	internal_metrics "github.com/yeti-switch/cdr-media/api/cdr-api/internal/metrics"
	internal_repository "github.com/yeti-switch/cdr-media/api/cdr-api/internal/repository"
	internal_storage "github.com/yeti-switch/cdr-media/api/cdr-api/internal/storage"
	internal_type "github.com/yeti-switch/cdr-media/api/cdr-api/internal/type"
	"github.com/yeti-switch/cdr-media/config"
	"github.com/yeti-switch/cdr-media/pkg/commons"
	"github.com/yeti-switch/cdr-media/pkg/configs"
	"github.com/yeti-switch/cdr-media/pkg/connectors"
	"github.com/yeti-switch/cdr-media/pkg/types"
	"github.com/yeti-switch/cdr-media/pkg/utils"
)

const streamContentType = "application/octet-stream"

type cdrMediaApi struct {
	logger    commons.Logger
	storage   configs.StorageConfig
	locator   internal_artifact.Locator
	streamers internal_storage.StreamerPool
	metrics   *internal_metrics.Collector
}

type CdrMediaApi interface {
	CustomerRecording(c *gin.Context)
	AdminCallRecord(c *gin.Context)
	AdminDump(c *gin.Context)
}

// NewCdrMediaApi wires the media endpoints. replica may be nil.
func NewCdrMediaApi(cfg *config.AppConfig, logger commons.Logger,
	postgres connectors.PostgresConnector,
	replica connectors.PostgresConnector,
	s3 connectors.S3Connector,
	metrics *internal_metrics.Collector,
) CdrMediaApi {
	cdrs := internal_repository.NewCdrRepository(postgres, replica, logger)
	return newCdrMediaApi(logger,
		cfg.StorageConfig,
		internal_artifact.NewLocator(cdrs, cfg.StorageConfig.Local, logger),
		internal_storage.NewStreamerPool(s3, cfg.StorageConfig.S3.ChunkSize, logger),
		metrics,
	)
}

func newCdrMediaApi(logger commons.Logger,
	storage configs.StorageConfig,
	locator internal_artifact.Locator,
	streamers internal_storage.StreamerPool,
	metrics *internal_metrics.Collector,
) *cdrMediaApi {
	return &cdrMediaApi{
		logger:    logger,
		storage:   storage,
		locator:   locator,
		streamers: streamers,
		metrics:   metrics,
	}
}

func (api *cdrMediaApi) CustomerRecording(c *gin.Context) {
	api.download(c, internal_type.ArtifactRecording)
}

func (api *cdrMediaApi) AdminCallRecord(c *gin.Context) {
	api.download(c, internal_type.ArtifactRecording)
}

func (api *cdrMediaApi) AdminDump(c *gin.Context) {
	api.download(c, internal_type.ArtifactTrace)
}

func (api *cdrMediaApi) download(c *gin.Context, kind internal_type.ArtifactKind) {
	caller, ok := types.GetPrinciple(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ref, err := api.locator.Locate(c.Request.Context(), caller, c.Param("id"), kind)
	if err != nil {
		api.fail(c, kind, "none", err)
		return
	}

	switch decision := internal_storage.Resolve(ref, api.storage).(type) {
	case internal_storage.LocalRedirect:
		c.Header(utils.HEADER_ACCEL_REDIRECT, decision.Path)
		c.Header(utils.HEADER_CONTENT_TYPE, decision.ContentType)
		c.Status(http.StatusOK)
		api.metrics.Download(kind.String(), decision.Backend(), internal_metrics.OutcomeRedirected)
	case internal_storage.RemoteStream:
		api.stream(c, kind, ref, decision)
	}
}

func (api *cdrMediaApi) stream(c *gin.Context, kind internal_type.ArtifactKind, ref *internal_artifact.Reference, remote internal_storage.RemoteStream) {
	streamer, err := api.streamers.For(remote.Endpoint)
	if err != nil {
		api.fail(c, kind, remote.Backend(), err)
		return
	}

	c.Header(utils.HEADER_CONTENT_TYPE, streamContentType)
	c.Header(utils.HEADER_CONTENT_DISPOSITION, ref.ContentDisposition)
	c.Status(http.StatusOK)

	err = streamer.StreamTo(c.Request.Context(), remote.Bucket, remote.ObjectKey, func(chunk []byte) error {
		n, err := c.Writer.Write(chunk)
		api.metrics.Streamed(kind.String(), n)
		if err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	})
	if err == nil {
		api.metrics.Download(kind.String(), remote.Backend(), internal_metrics.OutcomeStreamed)
		return
	}

	if errors.Is(err, context.Canceled) || c.Request.Context().Err() != nil {
		api.logger.Debugf("client went away: cdr=%d, bucket=%s, key=%s, bytes=%d, error=%v",
			ref.CdrId, remote.Bucket, remote.ObjectKey, c.Writer.Size(), err)
		api.metrics.Download(kind.String(), remote.Backend(), internal_metrics.OutcomeAborted)
		c.Abort()
		return
	}

	if !c.Writer.Written() {
		c.Writer.Header().Del(utils.HEADER_CONTENT_DISPOSITION)
		c.Writer.Header().Del(utils.HEADER_CONTENT_TYPE)
		api.fail(c, kind, remote.Backend(), err)
		return
	}

	// headers and some bytes are out, all that is left is to cut the response short
	api.logger.Warnf("stream aborted: cdr=%d, bucket=%s, key=%s, bytes=%d, error=%v",
		ref.CdrId, remote.Bucket, remote.ObjectKey, c.Writer.Size(), err)
	api.metrics.Download(kind.String(), remote.Backend(), internal_metrics.OutcomeAborted)
	c.Abort()
}

func (api *cdrMediaApi) fail(c *gin.Context, kind internal_type.ArtifactKind, backend string, err error) {
	if nf, ok := internal_artifact.AsNotFound(err); ok {
		api.logger.Debugf("artifact not found: kind=%s, key=%s, cause=%s", kind, nf.Key, nf.Cause)
		api.metrics.Download(kind.String(), backend, internal_metrics.OutcomeNotFound)
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	if uf, ok := internal_storage.AsUpstreamFetch(err); ok {
		api.logger.Warnf("object storage fetch failed: bucket=%s, key=%s, code=%s, error=%v", uf.Bucket, uf.Key, uf.Code(), uf.Err)
		api.metrics.Download(kind.String(), backend, internal_metrics.OutcomeUpstream)
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": uf.Error()})
		return
	}

	unexpected := &UnexpectedError{Err: err}
	api.logger.Errorf("%s download failed: path=%s, error=%v", kind, c.Request.URL.Path, err)
	api.metrics.Download(kind.String(), backend, internal_metrics.OutcomeFailed)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": unexpected.Error()})
}
