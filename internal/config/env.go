package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/joho/godotenv"
)

// envReferencePattern matches ${VAR_NAME} references inside manifest values.
// A bare $ is left alone so passwords in URLs survive.
var envReferencePattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// loadEnvFiles loads .env files from dir without overriding variables that are already set.
// Failures are returned as warnings.
func loadEnvFiles(dir string) []string {
	var warnings []string

	envFiles := []string{
		filepath.Join(dir, ".env"),
		filepath.Join(dir, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			warnings = append(warnings, fmt.Sprintf("failed to load %s: %v", filepath.Base(envFile), err))
		}
	}

	return warnings
}

// ExpandEnvReferences substitutes ${VAR_NAME} references with their environment values.
// Unset variables expand to the empty string.
func ExpandEnvReferences(value string) string {
	return envReferencePattern.ReplaceAllStringFunc(value, func(ref string) string {
		name := envReferencePattern.FindStringSubmatch(ref)[1]
		return os.Getenv(name)
	})
}
