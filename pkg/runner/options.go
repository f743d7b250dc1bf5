// Package runner provides multi-file analysis orchestration.
package runner

import "github.com/jsuplift/jsuplift/pkg/config"

// Options controls multi-file analysis behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// IncludeGlobs are additional glob patterns to include, relative to
	// WorkingDir. Empty means "include every JavaScript file".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// These merge ignore rules from config and CLI (e.g. --ignore).
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExcludeGlobs returns directory patterns skipped during discovery
// regardless of configuration. Dependency trees and build output are never
// useful modernization targets.
func DefaultExcludeGlobs() []string {
	return []string{
		"node_modules/**",
		"bower_components/**",
		"**/node_modules",
		"**/bower_components",
	}
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// effectiveExcludes merges the built-in exclusions with caller-supplied
// patterns and configured ignores.
func (o Options) effectiveExcludes() []string {
	merged := DefaultExcludeGlobs()
	merged = append(merged, o.ExcludeGlobs...)
	if o.Config != nil {
		merged = append(merged, o.Config.Ignores...)
	}
	return merged
}
