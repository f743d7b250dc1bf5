package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jsuplift/jsuplift/pkg/config"
)

// envVarPrefix is the prefix for all jsuplift environment variables.
const envVarPrefix = "JSUPLIFT_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FIX":             {field: "fix", typ: envTypeBool},
	"DRY_RUN":         {field: "dry_run", typ: envTypeBool},
	"SAFE_ONLY":       {field: "safe_only", typ: envTypeBool},
	"MAX_EDITS":       {field: "max_edits", typ: envTypeInt},
	"JOBS":            {field: "jobs", typ: envTypeInt},
	"OUTPUT":          {field: "output", typ: envTypeString},
	"IGNORES":         {field: "ignores", typ: envTypeSlice},
	"BACKUPS_ENABLED": {field: "backups.enabled", typ: envTypeBool},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with JSUPLIFT_ (e.g., JSUPLIFT_FIX).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value, envVar)
	case envTypeBool:
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %q", envVar, value)
		}
		return setBoolField(cfg, mapping.field, parsed, envVar)
	case envTypeInt:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, parsed, envVar)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value), envVar)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

func setStringField(cfg *config.Config, field, value, envVar string) error {
	switch field {
	case "output":
		format := config.OutputFormat(value)
		if !format.IsValid() {
			return fmt.Errorf("invalid output format for %s: %q (valid: text, json)", envVar, value)
		}
		cfg.Output = format
	default:
		return fmt.Errorf("unknown string field %q for %s", field, envVar)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool, envVar string) error {
	switch field {
	case "fix":
		cfg.Fix = value
	case "dry_run":
		cfg.DryRun = value
	case "safe_only":
		cfg.SafeOnly = value
	case "backups.enabled":
		cfg.Backups.Enabled = value
	default:
		return fmt.Errorf("unknown boolean field %q for %s", field, envVar)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int, envVar string) error {
	switch field {
	case "jobs":
		if value < 0 {
			return fmt.Errorf("invalid value for %s: must be non-negative", envVar)
		}
		cfg.Jobs = value
	case "max_edits":
		cfg.MaxEdits = value
	default:
		return fmt.Errorf("unknown integer field %q for %s", field, envVar)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string, envVar string) error {
	switch field {
	case "ignores":
		cfg.Ignores = value
	default:
		return fmt.Errorf("unknown slice field %q for %s", field, envVar)
	}
	return nil
}

// parseSliceValue parses a comma-separated environment variable value.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(suffix string) string {
	return envVarPrefix + suffix
}

// ListEnvVars returns all supported environment variable names, sorted.
func ListEnvVars() []string {
	vars := make([]string, 0, len(envMappings))
	for suffix := range envMappings {
		vars = append(vars, envVarPrefix+suffix)
	}
	sort.Strings(vars)
	return vars
}
