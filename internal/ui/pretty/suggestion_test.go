package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsuplift/jsuplift/internal/ui/pretty"
	"github.com/jsuplift/jsuplift/pkg/analyze"
	"github.com/jsuplift/jsuplift/pkg/config"
)

func sampleSuggestion() *analyze.Suggestion {
	return &analyze.Suggestion{
		FilePath:    "src/app.js",
		RuleID:      "JS003",
		Line:        4,
		Column:      8,
		OldCode:     "list.indexOf(x) !== -1",
		NewCode:     "list.includes(x)",
		Description: "indexOf comparison can use includes",
		Severity:    config.SeverityWarning,
	}
}

func TestFormatSuggestion_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	out := styles.FormatSuggestion(sampleSuggestion(), false, "")

	assert.Contains(t, out, "src/app.js:4:8")
	assert.Contains(t, out, "warning")
	assert.Contains(t, out, "indexOf comparison can use includes")
	assert.Contains(t, out, "(JS003)")
	assert.Contains(t, out, "Replace with: list.includes(x)")
}

func TestFormatSuggestion_NoReplacement(t *testing.T) {
	styles := pretty.NewStyles(false)

	sug := sampleSuggestion()
	sug.NewCode = ""

	out := styles.FormatSuggestion(sug, false, "")

	assert.NotContains(t, out, "Replace with:")
}

func TestFormatSuggestion_WithContext(t *testing.T) {
	styles := pretty.NewStyles(false)

	sug := sampleSuggestion()
	sug.Column = 4

	out := styles.FormatSuggestion(sug, true, "if (list.indexOf(x) !== -1) {")

	assert.Contains(t, out, "if (list.indexOf(x) !== -1) {")

	// Caret sits under the 0-based column.
	lines := strings.Split(out, "\n")
	var caretLine string
	for _, line := range lines {
		if strings.Contains(line, "^") {
			caretLine = line
		}
	}
	assert.Equal(t, strings.Repeat(" ", 8+4)+"^", caretLine)
}

func TestFormatSourceContext_ColumnOutOfRange(t *testing.T) {
	styles := pretty.NewStyles(false)

	out := styles.FormatSourceContext("short", 40)

	assert.Contains(t, out, "short")
	assert.NotContains(t, out, "^")
}

func TestFormatSeverity(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "error", styles.FormatSeverity(config.SeverityError))
	assert.Equal(t, "warning", styles.FormatSeverity(config.SeverityWarning))
	assert.Equal(t, "info", styles.FormatSeverity(config.SeverityInfo))
	assert.Equal(t, "odd", styles.FormatSeverity(config.Severity("odd")))
}

func TestFormatFileHeader(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "src/app.js (3 suggestions)", styles.FormatFileHeader("src/app.js", 3))
	assert.Equal(t, "src/app.js (1 suggestion)", styles.FormatFileHeader("src/app.js", 1))
	assert.Equal(t, "src/app.js", styles.FormatFileHeader("src/app.js", 0))
}
