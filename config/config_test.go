package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJwtSecret = "0123456789abcdef0123456789abcdef"

func TestGetApplicationConfig_Defaults(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("AUTH__CUSTOMER_JWT_SECRET", testJwtSecret)

	v, err := InitConfig()
	require.NoError(t, err)

	cfg, err := GetApplicationConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "cdr-media-api", cfg.Name)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/record", cfg.StorageConfig.Local.RecordPrefix)
	assert.Equal(t, "/dump", cfg.StorageConfig.Local.DumpPrefix)
	assert.Empty(t, cfg.StorageConfig.S3.Pcap.Bucket)
	assert.Empty(t, cfg.StorageConfig.S3.CallRecord.Bucket)
	assert.False(t, cfg.CdrReplicaConfig.Configured())
	assert.Equal(t, "disallow", cfg.PolicyRolesConfig.WhenNoConfig)
	assert.Empty(t, cfg.CorsOrigins)
}

func TestGetApplicationConfig_FromEnv(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("AUTH__CUSTOMER_JWT_SECRET", testJwtSecret)
	t.Setenv("S3_STORAGE__ENDPOINT", "http://minio:9000")
	t.Setenv("S3_STORAGE__PCAP__BUCKET", "test-pcap-bucket")
	t.Setenv("S3_STORAGE__CALL_RECORD__BUCKET", "test-call-record-bucket")
	t.Setenv("CDR_REPLICA__HOST", "replica")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	v, err := InitConfig()
	require.NoError(t, err)
	cfg, err := GetApplicationConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "http://minio:9000", cfg.StorageConfig.S3.Endpoint)
	assert.Equal(t, "test-pcap-bucket", cfg.StorageConfig.S3.Pcap.Bucket)
	assert.Equal(t, "test-call-record-bucket", cfg.StorageConfig.S3.CallRecord.Bucket)
	assert.True(t, cfg.CdrReplicaConfig.Configured())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CorsOrigins)
}

func TestGetApplicationConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.env")
	content := "PORT=8181\nPOLICY_ROLES__WHEN_NO_CONFIG=allow\nLOCAL_STORAGE__DUMP_PREFIX=/traces\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("ENV_PATH", path)
	t.Setenv("AUTH__CUSTOMER_JWT_SECRET", testJwtSecret)

	v, err := InitConfig()
	require.NoError(t, err)
	cfg, err := GetApplicationConfig(v)
	require.NoError(t, err)

	assert.Equal(t, 8181, cfg.Port)
	assert.Equal(t, "allow", cfg.PolicyRolesConfig.WhenNoConfig)
	assert.Equal(t, "/traces", cfg.StorageConfig.Local.DumpPrefix)
}

func TestGetApplicationConfig_InvalidPolicyRule(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("AUTH__CUSTOMER_JWT_SECRET", testJwtSecret)
	t.Setenv("POLICY_ROLES__WHEN_NO_CONFIG", "maybe")

	v, err := InitConfig()
	require.NoError(t, err)
	_, err = GetApplicationConfig(v)
	assert.Error(t, err)
}

func TestGetApplicationConfig_JwtSecret(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		valid  bool
	}{
		{"unset", "", false},
		{"too short", "<>", false},
		{"31 bytes", testJwtSecret[:31], false},
		{"32 bytes", testJwtSecret, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
			t.Setenv("AUTH__CUSTOMER_JWT_SECRET", tt.secret)

			v, err := InitConfig()
			require.NoError(t, err)
			cfg, err := GetApplicationConfig(v)
			if !tt.valid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.secret, cfg.AuthConfig.CustomerJwtSecret)
		})
	}
}
