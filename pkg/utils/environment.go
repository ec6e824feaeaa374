package utils

import "strings"

type Environment string

const (
	PRODUCTION  Environment = "production"
	DEVELOPMENT Environment = "development"
)

func (e Environment) Get() string {
	return string(e)
}

// FromEnvironmentStr parses an environment name, defaulting to development.
func FromEnvironmentStr(s string) Environment {
	switch strings.ToLower(s) {
	case "production":
		return PRODUCTION
	default:
		return DEVELOPMENT
	}
}
