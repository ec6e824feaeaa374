package internal_access

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	internal_entity "github.com/yeti-switch/cdr-media/api/cdr-api/internal/entity"
	internal_type "github.com/yeti-switch/cdr-media/api/cdr-api/internal/type"
	"github.com/yeti-switch/cdr-media/pkg/commons"
	"github.com/yeti-switch/cdr-media/pkg/configs"
)

const rolesYaml = `
base: &base
  Cdr/Cdr:
    read: true
user:
  <<: *base
support:
  Cdr/Cdr:
    read: true
    dump: true
manager:
  Cdr/Cdr:
    read: true
    dump: false
    download_call_record: true
`

func TestCanAccess_Customer(t *testing.T) {
	listener := NewCustomerPrinciple(&internal_entity.ApiAccess{Id: 1, CustomerId: 7, AllowListenRecording: true})
	assert.True(t, CanAccess(listener, internal_type.ArtifactRecording))
	assert.False(t, CanAccess(listener, internal_type.ArtifactTrace))

	denied := NewCustomerPrinciple(&internal_entity.ApiAccess{Id: 2, CustomerId: 7})
	assert.False(t, CanAccess(denied, internal_type.ArtifactRecording))
	assert.False(t, CanAccess(denied, internal_type.ArtifactTrace))
}

func TestCanAccess_UnknownKindAndNilCaller(t *testing.T) {
	listener := NewCustomerPrinciple(&internal_entity.ApiAccess{AllowListenRecording: true})
	assert.False(t, CanAccess(listener, internal_type.ArtifactKind("video")))
	assert.False(t, CanAccess(nil, internal_type.ArtifactRecording))
}

func TestCanAccess_AdminRoles(t *testing.T) {
	policy, err := ParsePolicyRoles([]byte(rolesYaml))
	require.NoError(t, err)

	tests := []struct {
		name      string
		roles     []string
		recording bool
		trace     bool
	}{
		{"no roles", nil, false, false},
		{"user inherits read only", []string{"user"}, false, false},
		{"support dumps", []string{"support"}, false, true},
		{"manager listens", []string{"manager"}, true, false},
		{"roles combine", []string{"manager", "support"}, true, true},
		{"unknown role", []string{"ghost"}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			admin := NewAdminPrinciple(&internal_entity.AdminSession{AdminUserId: 1, Username: "admin", Roles: tt.roles}, policy)
			assert.Equal(t, tt.recording, CanAccess(admin, internal_type.ArtifactRecording))
			assert.Equal(t, tt.trace, CanAccess(admin, internal_type.ArtifactTrace))
			assert.Nil(t, admin.GetCustomerId())
		})
	}
}

func TestCustomerPrinciple_Scope(t *testing.T) {
	p := NewCustomerPrinciple(&internal_entity.ApiAccess{Id: 3, CustomerId: 7, AccountIds: pq.Int64Array{70}})
	require.NotNil(t, p.GetCustomerId())
	assert.Equal(t, uint64(7), *p.GetCustomerId())
	assert.Equal(t, []int64{70}, p.GetAccountIds())
	assert.Equal(t, "customer:7/api_access:3", p.GetIdentity())
}

func TestLoadPolicyRoles_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy_roles.yml")
	require.NoError(t, os.WriteFile(path, []byte(rolesYaml), 0o600))

	policy, err := LoadPolicyRoles(configs.PolicyRolesConfig{Path: path, WhenNoConfig: "raise"}, commons.NewNopLogger())
	require.NoError(t, err)
	assert.True(t, policy.Allowed([]string{"support"}, SectionCdr, ActionDump))
	assert.False(t, policy.Allowed([]string{"support"}, SectionCdr, ActionDownloadCallRecord))
}

func TestLoadPolicyRoles_WhenNoConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yml")
	logger := commons.NewNopLogger()

	allow, err := LoadPolicyRoles(configs.PolicyRolesConfig{Path: missing, WhenNoConfig: configs.PolicyRuleAllow}, logger)
	require.NoError(t, err)
	assert.True(t, allow.Allowed(nil, SectionCdr, ActionDump))

	disallow, err := LoadPolicyRoles(configs.PolicyRolesConfig{Path: missing, WhenNoConfig: configs.PolicyRuleDisallow}, logger)
	require.NoError(t, err)
	assert.False(t, disallow.Allowed([]string{"root"}, SectionCdr, ActionDump))

	_, err = LoadPolicyRoles(configs.PolicyRolesConfig{Path: missing, WhenNoConfig: configs.PolicyRuleRaise}, logger)
	assert.Error(t, err)
}

func TestParsePolicyRoles_Invalid(t *testing.T) {
	_, err := ParsePolicyRoles([]byte("user: [not, a, map]"))
	assert.Error(t, err)
}
