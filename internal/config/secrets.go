package config

import (
	"fmt"
	"os"
	"strings"
)

// ReadSecret reads a secret from the standard Docker Secrets path,
// falling back to the SECRET_NAME environment variable for local runs.
func ReadSecret(secretName string) (string, error) {
	filePath := fmt.Sprintf("/run/secrets/%s", secretName)
	secretBytes, err := os.ReadFile(filePath)
	if err == nil {
		secret := strings.TrimSpace(string(secretBytes))
		if secret == "" {
			return "", fmt.Errorf("secret file %s is empty", filePath)
		}
		return secret, nil
	}

	envName := strings.ToUpper(secretName)
	if secret := strings.TrimSpace(os.Getenv(envName)); secret != "" {
		return secret, nil
	}
	return "", fmt.Errorf("failed to read secret %s: file %s unavailable and env %s unset", secretName, filePath, envName)
}
