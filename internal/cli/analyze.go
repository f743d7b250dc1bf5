package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsuplift/jsuplift/internal/configloader"
	"github.com/jsuplift/jsuplift/internal/logging"
	"github.com/jsuplift/jsuplift/pkg/analyze"
	"github.com/jsuplift/jsuplift/pkg/analyze/rules"
	"github.com/jsuplift/jsuplift/pkg/config"
	"github.com/jsuplift/jsuplift/pkg/parser"
	"github.com/jsuplift/jsuplift/pkg/reporter"
	"github.com/jsuplift/jsuplift/pkg/runner"
)

// ErrFindingsFound is returned when analysis finds actionable issues.
var ErrFindingsFound = errors.New("modernization findings found")

type analyzeFlags struct {
	format    string
	ignore    []string
	disable   []string
	enable    []string
	noBackups bool
	strict    bool
	noContext bool
	compact   bool
	flat      bool
}

func newAnalyzeCommand() *cobra.Command {
	var cfg config.Config
	flags := &analyzeFlags{}

	cmd := &cobra.Command{
		Use:   "analyze [paths...]",
		Short: "Analyze JavaScript files for legacy patterns",
		Long:  analyzeLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, &cfg, flags)
		},
	}

	addAnalyzeFlags(cmd, &cfg, flags)

	return cmd
}

const analyzeLongDescription = `Analyze JavaScript files for legacy patterns and modernization
opportunities.

By default, analyzes all .js, .mjs, .cjs, and .jsx files in the current
directory and subdirectories. Specify paths to analyze specific files or
directories. Vendored, generated, and minified files are skipped.

Examples:
  jsuplift analyze                    # Analyze current directory
  jsuplift analyze src/               # Analyze src directory
  jsuplift analyze app.js             # Analyze single file
  jsuplift analyze --fix              # Analyze and rewrite files
  jsuplift analyze --fix --dry-run    # Show fixes without applying
  jsuplift analyze --format json      # Output as JSON for CI
  jsuplift analyze --strict           # Treat warnings as errors`

func runAnalyze(cmd *cobra.Command, args []string, cfg *config.Config, flags *analyzeFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values.
	cfg.Output = config.OutputFormat(flags.format)
	cfg.Ignores = flags.ignore
	applyRuleFlags(cfg, flags)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return &ExitError{
			Code: ExitConfigError,
			Err:  errors.Join(errors.New("failed to load configuration"), err),
		}
	}

	finalCfg := loadResult.Config

	// --no-backups is applied after the merge: false would otherwise be
	// indistinguishable from unset.
	if flags.noBackups {
		finalCfg.Backups.Enabled = false
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldFix, finalCfg.Fix,
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldSafeOnly, finalCfg.SafeOnly,
		logging.FieldJobs, finalCfg.Jobs,
	)

	// Create the analysis engine over the built-in rule set.
	engine := analyze.NewEngine(parser.New(), rules.All(), finalCfg)
	engine.Logger = logger

	analyzeRunner := runner.New(engine)
	analyzeRunner.Logger = logger

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: finalCfg.Ignores,
		Jobs:         finalCfg.Jobs,
		Config:       finalCfg,
	}

	logger.Debug("starting analysis run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := analyzeRunner.Run(ctx, runOpts)
	if err != nil {
		return &ExitError{
			Code: ExitIOError,
			Err:  errors.Join(errors.New("analysis run failed"), err),
		}
	}

	// Get color mode from persistent flag.
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		GroupByFile: !flags.flat,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	exitCode := ExitCodeFromResult(result, flags.strict)
	if exitCode != ExitSuccess {
		return &ExitError{Code: exitCode, Err: ErrFindingsFound}
	}

	return nil
}

// applyRuleFlags folds --disable/--enable into the CLI config's rule map.
// Enabled rules get their declared default severity; the loader later
// normalizes names to IDs.
func applyRuleFlags(cfg *config.Config, flags *analyzeFlags) {
	if len(flags.disable) == 0 && len(flags.enable) == 0 {
		return
	}

	if cfg.Rules == nil {
		cfg.Rules = make(map[string]config.RuleSetting)
	}

	for _, key := range flags.disable {
		cfg.Rules[key] = config.SettingOff
	}

	for _, key := range flags.enable {
		if rule, ok := rules.All().Lookup(key); ok {
			cfg.Rules[key] = rule.DefaultSeverity().Setting()
			continue
		}
		// Unknown keys pass through so validation can warn about them.
		cfg.Rules[key] = config.SettingWarn
	}
}

func addAnalyzeFlags(cmd *cobra.Command, cfg *config.Config, flags *analyzeFlags) {
	cmd.Flags().BoolVar(&cfg.Fix, "fix", false, "automatically apply suggested fixes")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show fixes without applying them")
	cmd.Flags().BoolVar(&cfg.SafeOnly, "safe-only", false, "apply only the most conservative fixes")
	cmd.Flags().IntVar(&cfg.MaxEdits, "max-edits", 0, "maximum edits applied per file (0 = unlimited)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs or names to disable")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs or names to enable at default severity")
	cmd.Flags().BoolVar(&flags.noBackups, "no-backups", false, "disable backup creation when fixing")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	cmd.Flags().BoolVar(&flags.flat, "flat", false, "list suggestions without grouping by file")
}
