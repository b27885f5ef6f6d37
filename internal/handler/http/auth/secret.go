package auth

import (
	"fmt"
	"os"
	"strings"
)

// minSecretLength is the minimum length of the session signing key.
// HS256 keys shorter than the hash output weaken the MAC.
const minSecretLength = 32

// weakSecrets are values seen in tutorials and default configs that must
// never sign production sessions.
var weakSecrets = []string{
	"secret",
	"changeme",
	"password",
	"session-secret",
	"your-256-bit-secret",
	"supersecret",
	"development",
	"test",
}

// ValidateSessionSecret checks the session signing key at startup so a
// missing or weak key fails the process instead of silently accepting
// forgeable sessions. The returned error never contains the key itself.
func ValidateSessionSecret() error {
	secret := os.Getenv(SecretEnv)

	if secret == "" {
		return fmt.Errorf("session secret validation failed: %s must not be empty", SecretEnv)
	}
	if len(secret) < minSecretLength {
		return fmt.Errorf("session secret validation failed: %s must be at least %d characters (current length: %d)",
			SecretEnv, minSecretLength, len(secret))
	}

	lower := strings.ToLower(secret)
	for _, weak := range weakSecrets {
		if strings.Contains(lower, weak) {
			return fmt.Errorf("session secret validation failed: %s must not contain common placeholder values", SecretEnv)
		}
	}

	if isRepeatedChar(secret) {
		return fmt.Errorf("session secret validation failed: %s must not be a single repeated character", SecretEnv)
	}

	return nil
}

func isRepeatedChar(s string) bool {
	if s == "" {
		return false
	}
	first := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != first {
			return false
		}
	}
	return true
}
