package connectors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeti-switch/cdr-media/pkg/commons"
	"github.com/yeti-switch/cdr-media/pkg/configs"
)

func TestS3Connector_ClientPerEndpoint(t *testing.T) {
	cfg := &configs.S3StorageConfig{
		Endpoint:        "http://minio:9000",
		Region:          "eu-central-1",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		ForcePathStyle:  true,
		Pcap:            configs.BucketConfig{Bucket: "pcap", Endpoint: "http://pcap-store:9000"},
		CallRecord:      configs.BucketConfig{Bucket: "records"},
	}
	connector := NewS3Connector(cfg, commons.NewNopLogger())
	require.NoError(t, connector.Connect(context.Background()))
	assert.True(t, connector.IsConnected(context.Background()))

	for _, endpoint := range []string{"", "http://minio:9000", "http://pcap-store:9000"} {
		client, err := connector.Client(endpoint)
		require.NoError(t, err, endpoint)
		assert.NotNil(t, client)
	}

	_, err := connector.Client("http://unknown:9000")
	assert.Error(t, err)
}

func TestS3Connector_NotConnected(t *testing.T) {
	connector := NewS3Connector(&configs.S3StorageConfig{}, commons.NewNopLogger())
	assert.False(t, connector.IsConnected(context.Background()))
	_, err := connector.Client("")
	assert.Error(t, err)
}
