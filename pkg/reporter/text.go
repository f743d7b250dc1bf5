package reporter

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsuplift/jsuplift/internal/ui/pretty"
	"github.com/jsuplift/jsuplift/pkg/analyze"
	"github.com/jsuplift/jsuplift/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer

	// lines caches split file contents for source context, keyed by path.
	// Populated lazily and only for files with findings.
	lines map[string][]string
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
		lines:  make(map[string][]string),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to analyze."))
		}
		return 0, nil
	}

	var total int

	if r.opts.GroupByFile {
		total = r.reportGrouped(ctx, result)
	} else {
		total = r.reportFlat(ctx, result)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

// reportGrouped writes suggestions grouped by file.
func (r *TextReporter) reportGrouped(_ context.Context, result *runner.Result) int {
	var total int

	for _, file := range result.Files {
		if file.Error != nil {
			r.writeFileError(file)
			continue
		}

		if len(file.Suggestions) == 0 {
			continue
		}

		// File header
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(r.displayPath(file.Path), len(file.Suggestions)))

		for _, sug := range file.Suggestions {
			r.writeSuggestion(file.Path, sug)
			total++
		}

		// Blank line between files
		fmt.Fprintln(r.bw)
	}

	return total
}

// reportFlat writes suggestions without grouping.
func (r *TextReporter) reportFlat(_ context.Context, result *runner.Result) int {
	var total int

	for _, file := range result.Files {
		if file.Error != nil {
			r.writeFileError(file)
			continue
		}

		for _, sug := range file.Suggestions {
			r.writeSuggestion(file.Path, sug)
			total++
		}
	}

	return total
}

func (r *TextReporter) writeFileError(file runner.FileOutcome) {
	fmt.Fprintf(r.bw, "%s: %s\n",
		r.styles.FilePath.Render(r.displayPath(file.Path)),
		r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
	)
}

func (r *TextReporter) writeSuggestion(path string, sug analyze.Suggestion) {
	var sourceLine string
	if r.opts.ShowContext {
		sourceLine = r.sourceLine(path, sug.Line)
	}

	sug.FilePath = r.displayPath(sug.FilePath)
	fmt.Fprint(r.bw, r.styles.FormatSuggestion(&sug, r.opts.ShowContext, sourceLine))
}

// displayPath returns path relative to the configured working directory.
func (r *TextReporter) displayPath(path string) string {
	if r.opts.WorkingDir == "" {
		return path
	}
	rel, err := filepath.Rel(r.opts.WorkingDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// sourceLine returns the 1-based line of a file, re-reading and caching
// its contents on first use. A file that cannot be read yields no context.
func (r *TextReporter) sourceLine(path string, lineNum int) string {
	lines, ok := r.lines[path]
	if !ok {
		content, err := os.ReadFile(path)
		if err != nil {
			lines = nil
		} else {
			lines = strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
		}
		r.lines[path] = lines
	}

	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
