package configloader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jsuplift/jsuplift/pkg/config"
)

// MigrationResult contains the result of converting an ESLint config.
type MigrationResult struct {
	// Config is the converted jsuplift configuration.
	Config *config.Config

	// Warnings contains non-fatal issues encountered during conversion.
	Warnings []string

	// Translated counts the ESLint rules that mapped onto jsuplift rules.
	Translated int

	// SourcePath is the path to the original ESLint config.
	SourcePath string
}

// ConvertESLintConfig converts an ESLint config file to jsuplift format.
// Only the rules jsuplift has an equivalent for are carried over; the
// rest of the ESLint surface (env, parserOptions, plugins) has no
// jsuplift meaning and is dropped with a note.
func ConvertESLintConfig(path string) (*MigrationResult, error) {
	result := &MigrationResult{
		SourcePath: path,
	}

	if IsJavaScriptConfig(path) {
		return nil, fmt.Errorf("cannot convert JavaScript config file %q; please create a jsuplift config manually", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	// Parse as generic map first. ESLint JSON configs allow comments.
	var raw map[string]any
	if IsJSONConfig(path) {
		if err := parseJSONC(content, &raw); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	}

	cfg := config.Default()

	processSpecialKeys(raw, result)

	rules, _ := raw["rules"].(map[string]any)
	for name, value := range rules {
		processESLintRule(cfg, name, value, result)
	}

	result.Config = cfg
	return result, nil
}

// parseJSONC parses JSON with comments (JSONC format).
// It strips comments before parsing.
func parseJSONC(content []byte, target any) error {
	// Simple approach: try parsing as JSON first
	// JSON with comments will fail, but many configs are valid JSON
	if err := json.Unmarshal(content, target); err == nil {
		return nil
	}

	// Strip comments and try again
	stripped := stripJSONComments(content)
	if err := json.Unmarshal(stripped, target); err != nil {
		return fmt.Errorf("unmarshal stripped JSON: %w", err)
	}
	return nil
}

// stripJSONComments removes JavaScript-style comments from JSON content.
func stripJSONComments(content []byte) []byte {
	var result []byte
	inString := false
	inSingleComment := false
	inMultiComment := false

	for idx := 0; idx < len(content); idx++ {
		char := content[idx]

		if inSingleComment {
			if char == '\n' {
				inSingleComment = false
				result = append(result, char)
			}
			continue
		}

		if inMultiComment {
			if char == '*' && idx+1 < len(content) && content[idx+1] == '/' {
				inMultiComment = false
				idx++ // skip the closing /
			}
			continue
		}

		if inString {
			result = append(result, char)
			if char == '\\' && idx+1 < len(content) {
				idx++
				result = append(result, content[idx])
			} else if char == '"' {
				inString = false
			}
			continue
		}

		if char == '"' {
			inString = true
			result = append(result, char)
			continue
		}

		if char == '/' && idx+1 < len(content) {
			next := content[idx+1]
			if next == '/' {
				inSingleComment = true
				idx++
				continue
			}
			if next == '*' {
				inMultiComment = true
				idx++
				continue
			}
		}

		result = append(result, char)
	}

	return result
}

// processSpecialKeys handles top-level ESLint keys that have no jsuplift
// equivalent.
func processSpecialKeys(raw map[string]any, result *MigrationResult) {
	if extends, ok := raw["extends"]; ok {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("'extends: %v' is not supported; shared-config rules were not expanded", extends))
	}

	for _, key := range []string{"env", "parser", "parserOptions", "plugins", "globals", "overrides"} {
		if _, ok := raw[key]; ok {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("ESLint key %q has no jsuplift equivalent; skipping", key))
		}
	}
}

// processESLintRule translates a single ESLint rule entry.
func processESLintRule(cfg *config.Config, name string, value any, result *MigrationResult) {
	ids := MapESLintRule(name)
	if len(ids) == 0 {
		// Most ESLint rules are stylistic and out of scope; stay quiet.
		return
	}

	setting, ok := eslintValueToSetting(value)
	if !ok {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("unrecognized value %v for ESLint rule %q; skipping", value, name))
		return
	}

	for _, id := range ids {
		cfg.Rules[id] = setting
	}
	result.Translated++
}

// eslintValueToSetting converts an ESLint rule value to a RuleSetting.
// ESLint accepts "off"/"warn"/"error", 0/1/2, and arrays whose first
// element is the severity.
func eslintValueToSetting(value any) (config.RuleSetting, bool) {
	switch v := value.(type) {
	case string:
		switch v {
		case "off":
			return config.SettingOff, true
		case "warn":
			return config.SettingWarn, true
		case "error":
			return config.SettingError, true
		}
		return "", false
	case float64:
		// encoding/json decodes numbers as float64
		return eslintLevelToSetting(int(v))
	case int:
		// yaml.v3 decodes integers as int
		return eslintLevelToSetting(v)
	case []any:
		if len(v) == 0 {
			return "", false
		}
		return eslintValueToSetting(v[0])
	default:
		return "", false
	}
}

func eslintLevelToSetting(level int) (config.RuleSetting, bool) {
	switch level {
	case 0:
		return config.SettingOff, true
	case 1:
		return config.SettingWarn, true
	case 2:
		return config.SettingError, true
	default:
		return "", false
	}
}

// GenerateMigrationHeader returns a header comment for migrated configs.
func GenerateMigrationHeader(sourcePath string) string {
	return fmt.Sprintf(`# jsuplift configuration
# Migrated from: %s
# See: https://github.com/jsuplift/jsuplift
`, filepath.Base(sourcePath))
}

// CanMigrate returns true if the config file can be migrated.
// JavaScript config files cannot be migrated.
func CanMigrate(path string) bool {
	return !IsJavaScriptConfig(path)
}

// GetMigrationWarning returns a warning message for files that cannot be migrated.
func GetMigrationWarning(path string) string {
	if IsJavaScriptConfig(path) {
		ext := filepath.Ext(path)
		return fmt.Sprintf("JavaScript config file (%s) cannot be converted automatically; "+
			"please create a .jsuplift.yml file manually or run 'jsuplift init'", ext)
	}
	return ""
}

// DetectConfigFormat determines the format of a config file.
func DetectConfigFormat(path string) string {
	if IsJavaScriptConfig(path) {
		return "javascript"
	}
	if IsJSONConfig(path) {
		return "json"
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "unknown"
	}
}
