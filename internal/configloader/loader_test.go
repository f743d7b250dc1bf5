package configloader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsuplift/jsuplift/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	// Create temp directory with no config files
	tmpDir := t.TempDir()

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreESLint:       true,
		NonInteractive:     true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}

	// Check defaults are applied
	if result.Config.Output != config.FormatText {
		t.Errorf("expected output %q, got %q", config.FormatText, result.Config.Output)
	}
	if !result.Config.Backups.Enabled {
		t.Error("expected backups enabled by default")
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create a project config
	configContent := `
output: json
rules:
  JS001: "off"
`
	configPath := filepath.Join(tmpDir, ".jsuplift.yml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreESLint:       true,
		NonInteractive:     true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Output != config.FormatJSON {
		t.Errorf("expected output %q, got %q", config.FormatJSON, result.Config.Output)
	}

	// Check that the rule setting was loaded
	setting, ok := result.Config.Rules["JS001"]
	if !ok {
		t.Fatal("JS001 rule not found in config")
	}
	if setting != config.SettingOff {
		t.Errorf("expected JS001 to be off, got %q", setting)
	}

	if len(result.LoadedFrom) != 1 {
		t.Errorf("expected 1 loaded file, got %d", len(result.LoadedFrom))
	}
}

func TestLoad_ExplicitConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create a custom config
	configContent := `
output: json
max_edits: 25
`
	customPath := filepath.Join(tmpDir, "custom-config.yml")
	if err := os.WriteFile(customPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		ExplicitPath:       customPath,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreESLint:       true,
		NonInteractive:     true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Output != config.FormatJSON {
		t.Errorf("expected output %q, got %q", config.FormatJSON, result.Config.Output)
	}

	if result.Config.MaxEdits != 25 {
		t.Errorf("expected max_edits 25, got %d", result.Config.MaxEdits)
	}
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create a project config
	configContent := `
output: text
jobs: 2
`
	configPath := filepath.Join(tmpDir, ".jsuplift.yml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	cliCfg := &config.Config{
		Output: config.FormatJSON,
		Jobs:   8,
		Fix:    true,
	}
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreESLint:       true,
		NonInteractive:     true,
		CLIConfig:          cliCfg,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// CLI should override project config
	if result.Config.Output != config.FormatJSON {
		t.Errorf("expected output %q (CLI override), got %q", config.FormatJSON, result.Config.Output)
	}

	if result.Config.Jobs != 8 {
		t.Errorf("expected jobs 8 (CLI override), got %d", result.Config.Jobs)
	}

	if !result.Config.Fix {
		t.Error("expected fix true (CLI override)")
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create an invalid config
	configContent := `
output: xml
`
	configPath := filepath.Join(tmpDir, ".jsuplift.yml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreESLint:       true,
		NonInteractive:     true,
	}

	_, err := Load(ctx, opts)
	if err == nil {
		t.Fatal("expected validation error for invalid output format")
	}
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	opts := LoadOptions{
		WorkingDir:         t.TempDir(),
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreESLint:       true,
		NonInteractive:     true,
	}

	_, err := Load(ctx, opts)
	if err == nil {
		t.Fatal("expected context cancellation error")
	}
}

func TestLoad_ESLintMigrationHintNonInteractive(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	eslintContent := `{"rules": {"no-var": "error"}}`
	eslintPath := filepath.Join(tmpDir, ".eslintrc.json")
	if err := os.WriteFile(eslintPath, []byte(eslintContent), 0644); err != nil {
		t.Fatalf("write eslint config: %v", err)
	}

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		NonInteractive:     true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	foundHint := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "jsuplift migrate") {
			foundHint = true
			break
		}
	}
	if !foundHint {
		t.Errorf("expected migration hint, got warnings: %v", result.Warnings)
	}
	if result.MigrationPerformed {
		t.Error("expected no migration in non-interactive mode")
	}
}

func TestLoader_NormalizesRuleKeys(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create temp config file using rule names instead of IDs
	content := `
rules:
  prefer-const: "off"
  indexof-to-includes: error
`
	configPath := filepath.Join(tmpDir, ".jsuplift.yml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreESLint:       true,
		NonInteractive:     true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Should be normalized to IDs internally
	_, hasID := result.Config.Rules["JS001"]
	_, hasName := result.Config.Rules["prefer-const"]

	if !hasID {
		t.Error("expected JS001 to be present after normalization")
	}
	if hasName {
		t.Error("expected prefer-const to be removed after normalization")
	}

	setting, hasIncludes := result.Config.Rules["JS003"]
	if !hasIncludes {
		t.Error("expected JS003 to be present after normalization")
	} else if setting != config.SettingError {
		t.Errorf("expected JS003 setting error, got %q", setting)
	}
}

func TestLoader_WarnsDuplicateRules(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Create config with both ID and name for same rule
	content := `
rules:
  JS001: "off"
  prefer-const: warn
`
	configPath := filepath.Join(tmpDir, ".jsuplift.yml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreESLint:       true,
		NonInteractive:     true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Should have a warning about duplicate rule
	foundWarning := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "duplicate") && strings.Contains(w, "JS001") {
			foundWarning = true
			break
		}
	}
	if !foundWarning {
		t.Errorf("expected warning about duplicate rule, got warnings: %v", result.Warnings)
	}

	// Verify the rule is normalized to canonical ID and has a value.
	// Which value wins is undefined since map iteration order is not.
	setting, ok := result.Config.Rules["JS001"]
	if !ok {
		t.Fatal("expected JS001 in config")
	}
	if setting != config.SettingOff && setting != config.SettingWarn {
		t.Errorf("expected JS001 to hold one of the configured values, got %q", setting)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()

	t.Setenv("JSUPLIFT_FIX", "true")
	t.Setenv("JSUPLIFT_JOBS", "4")

	ctx := context.Background()
	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreESLint:       true,
		NonInteractive:     true,
	}

	result, err := Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !result.Config.Fix {
		t.Error("expected fix true from environment")
	}
	if result.Config.Jobs != 4 {
		t.Errorf("expected jobs 4 from environment, got %d", result.Config.Jobs)
	}
}
