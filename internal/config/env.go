package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills target from the process environment.
func parseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

func normalizeKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
