// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_access

import (
	"errors"
	"fmt"
	"os"

	"github.com/yeti-switch/cdr-media/pkg/commons"
	"github.com/yeti-switch/cdr-media/pkg/configs"
	"gopkg.in/yaml.v3"
)

const (
	SectionCdr = "Cdr/Cdr"

	ActionDownloadCallRecord = "download_call_record"
	ActionDump               = "dump"
)

// PolicyRoles is the admin role matrix: role -> section -> action -> allowed.
// It is loaded once at startup and read-only afterwards.
type PolicyRoles struct {
	roles      map[string]map[string]map[string]bool
	configured bool
	// fallback answers every question when no roles file exists
	fallback bool
}

// LoadPolicyRoles reads the roles file. A missing file is resolved with the
// configured when_no_config rule: allow and disallow log a warning, raise
// fails startup.
func LoadPolicyRoles(cfg configs.PolicyRolesConfig, logger commons.Logger) (*PolicyRoles, error) {
	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read policy roles %s: %w", cfg.Path, err)
		}
		switch cfg.WhenNoConfig {
		case configs.PolicyRuleAllow:
			logger.Warnf("%s config is missing. Default rule is %s.", cfg.Path, cfg.WhenNoConfig)
			return &PolicyRoles{fallback: true}, nil
		case configs.PolicyRuleDisallow:
			logger.Warnf("%s config is missing. Default rule is %s.", cfg.Path, cfg.WhenNoConfig)
			return &PolicyRoles{fallback: false}, nil
		default:
			return nil, fmt.Errorf("%s config is missing", cfg.Path)
		}
	}
	return ParsePolicyRoles(data)
}

func ParsePolicyRoles(data []byte) (*PolicyRoles, error) {
	roles := map[string]map[string]map[string]bool{}
	if err := yaml.Unmarshal(data, &roles); err != nil {
		return nil, fmt.Errorf("failed to parse policy roles: %w", err)
	}
	return &PolicyRoles{roles: roles, configured: true}, nil
}

// Allowed is true when any of the roles grants section/action.
func (p *PolicyRoles) Allowed(roles []string, section, action string) bool {
	if p == nil {
		return false
	}
	if !p.configured {
		return p.fallback
	}
	for _, role := range roles {
		if p.roles[role][section][action] {
			return true
		}
	}
	return false
}
