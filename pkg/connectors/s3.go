// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package connectors

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go/logging"
	"github.com/yeti-switch/cdr-media/pkg/commons"
	"github.com/yeti-switch/cdr-media/pkg/configs"
)

// S3Connector hands out one S3 client per configured endpoint. The blank
// endpoint is the default one (AWS, or whatever the SDK resolves).
type S3Connector interface {
	Connector
	Client(endpoint string) (*s3.Client, error)
}

type s3Connector struct {
	cfg     *configs.S3StorageConfig
	logger  commons.Logger
	clients map[string]*s3.Client
}

func NewS3Connector(cfg *configs.S3StorageConfig, logger commons.Logger) S3Connector {
	return &s3Connector{cfg: cfg, logger: logger}
}

func (s *s3Connector) Logf(classification logging.Classification, format string, v ...interface{}) {
	if classification == logging.Warn {
		s.logger.Warnf(format, v...)
		return
	}
	s.logger.Debugf(format, v...)
}

func (s *s3Connector) Connect(ctx context.Context) error {
	region := s.cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
		awsconfig.WithLogger(s),
	}
	if s.cfg.AccessKeyID != "" && s.cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s.cfg.AccessKeyID, s.cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	clients := make(map[string]*s3.Client)
	for _, endpoint := range s.cfg.Endpoints() {
		clients[endpoint] = s3.NewFromConfig(awsCfg, s.clientOptions(endpoint)...)
	}
	s.clients = clients
	s.logger.Infof("s3 storage ready: region=%s endpoints=%v", region, s.cfg.Endpoints())
	return nil
}

func (s *s3Connector) clientOptions(endpoint string) []func(*s3.Options) {
	if endpoint == "" {
		endpoint = s.cfg.Endpoint
	}
	return []func(*s3.Options){
		func(o *s3.Options) {
			if endpoint != "" {
				o.BaseEndpoint = aws.String(endpoint)
			}
			o.UsePathStyle = s.cfg.ForcePathStyle
		},
	}
}

func (s *s3Connector) Client(endpoint string) (*s3.Client, error) {
	client, ok := s.clients[endpoint]
	if !ok {
		return nil, fmt.Errorf("no s3 client for endpoint %q", endpoint)
	}
	return client, nil
}

func (s *s3Connector) Name() string {
	return "s3"
}

// IsConnected only reports client construction; buckets are probed on use.
func (s *s3Connector) IsConnected(ctx context.Context) bool {
	return s.clients != nil
}

func (s *s3Connector) Disconnect(ctx context.Context) error {
	return nil
}
