// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package configs

const (
	PolicyRuleAllow    = "allow"
	PolicyRuleDisallow = "disallow"
	PolicyRuleRaise    = "raise"
)

type PolicyRolesConfig struct {
	Path string `mapstructure:"path"`
	// WhenNoConfig decides admin capabilities when Path does not exist.
	WhenNoConfig string `mapstructure:"when_no_config" validate:"required,oneof=allow disallow raise"`
}

type AuthConfig struct {
	// CustomerJwtSecret signs customer API bearer tokens (HS256).
	CustomerJwtSecret  string `mapstructure:"customer_jwt_secret" validate:"required,min=32"`
	CustomerJwtIssuer  string `mapstructure:"customer_jwt_issuer"`
	AdminSessionHeader string `mapstructure:"admin_session_header" validate:"required"`
	AdminSessionCookie string `mapstructure:"admin_session_cookie"`
	AdminSessionPrefix string `mapstructure:"admin_session_prefix" validate:"required"`
}
