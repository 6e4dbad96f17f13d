package config

import (
	"os"
)

// IsEnvSet checks if an environment variable is set to a non-empty value
func IsEnvSet(key string) bool {
	return os.Getenv(key) != ""
}

// ColorEnabled resolves the CLI color mode. In auto mode color is used only on a
// terminal and when NO_COLOR is not set.
func (c *CLI) ColorEnabled(isTerminal bool) bool {
	switch c.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal && !IsEnvSet("NO_COLOR")
	}
}
