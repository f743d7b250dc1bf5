// Package reporter formats analysis results for terminals and machines.
package reporter

import (
	"context"
	"fmt"

	"github.com/jsuplift/jsuplift/pkg/runner"
)

// Reporter formats and writes analysis results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of suggestions reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	// Default writer to stdout if not specified
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
