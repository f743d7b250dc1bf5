// Package langdetect decides which discovered files are JavaScript
// sources worth analyzing. It combines go-enry language identification
// with vendor and minification heuristics so the runner never wastes a
// pass on bundler output or third-party trees.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language constants for the languages the tool cares about.
const (
	LangJavaScript = "javascript"
	LangTypeScript = "typescript"
	LangText       = "text"
)

// jsExtensions are the file extensions treated as JavaScript without
// consulting content.
//
//nolint:gochecknoglobals // immutable lookup table
var jsExtensions = map[string]bool{
	".js":  true,
	".mjs": true,
	".cjs": true,
	".jsx": true,
}

// Detect returns the normalized language of a file, or "text" when
// identification fails.
func Detect(path string, content []byte) string {
	if lang := enry.GetLanguage(filepath.Base(path), content); lang != "" {
		return normalize(lang)
	}
	return LangText
}

// IsJavaScript reports whether a file is JavaScript source. Known
// extensions decide directly; extensionless files fall back to shebang
// detection (e.g. node scripts).
func IsJavaScript(path string, content []byte) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if jsExtensions[ext] {
		return true
	}
	if ext != "" {
		return false
	}
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang) == LangJavaScript
	}
	return false
}

// ShouldAnalyze reports whether a discovered file belongs in an analysis
// run: JavaScript source that is neither vendored, generated, nor
// minified.
func ShouldAnalyze(path string, content []byte) bool {
	if !IsJavaScript(path, content) {
		return false
	}
	if enry.IsVendor(path) || enry.IsGenerated(path, content) {
		return false
	}
	return !IsMinified(path, content)
}

// minifiedLineThreshold is the average line length beyond which content
// is treated as minified.
const minifiedLineThreshold = 250

// IsMinified reports whether a JavaScript file looks like minifier
// output: a .min.js name, or implausibly long lines.
func IsMinified(path string, content []byte) bool {
	base := strings.ToLower(filepath.Base(path))
	if strings.Contains(base, ".min.") {
		return true
	}
	if len(content) == 0 {
		return false
	}

	lines := bytes.Split(content, []byte("\n"))
	nonEmpty := 0
	total := 0
	for _, line := range lines {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		nonEmpty++
		total += len(line)
	}
	if nonEmpty == 0 {
		return false
	}
	return total/nonEmpty > minifiedLineThreshold
}

// normalize converts go-enry language names to lowercase tags.
func normalize(lang string) string {
	return strings.ToLower(lang)
}
