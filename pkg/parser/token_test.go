package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanText(t *testing.T, src string) []Token {
	t.Helper()
	tokens, err := newScanner([]byte(src)).scanAll()
	require.NoError(t, err)
	return tokens
}

func tokenTexts(tokens []Token) []string {
	texts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == TokEOF {
			break
		}
		texts = append(texts, tok.Text)
	}
	return texts
}

func TestScannerBasicTokens(t *testing.T) {
	tokens := scanText(t, "var x = 10;")
	assert.Equal(t, []string{"var", "x", "=", "10", ";"}, tokenTexts(tokens))

	assert.Equal(t, TokKeyword, tokens[0].Kind)
	assert.Equal(t, TokIdent, tokens[1].Kind)
	assert.Equal(t, TokPunct, tokens[2].Kind)
	assert.Equal(t, TokNumber, tokens[3].Kind)
}

func TestScannerPositions(t *testing.T) {
	tokens := scanText(t, "let a;\nlet b;")

	// Lines are 1-based, columns are 0-based byte offsets.
	assert.Equal(t, 1, tokens[0].Start.Line)
	assert.Equal(t, 0, tokens[0].Start.Col)
	assert.Equal(t, 1, tokens[1].Start.Line)
	assert.Equal(t, 4, tokens[1].Start.Col)
	assert.Equal(t, 2, tokens[3].Start.Line)
	assert.Equal(t, 0, tokens[3].Start.Col)
	assert.Equal(t, 2, tokens[4].Start.Line)
	assert.Equal(t, 4, tokens[4].Start.Col)
}

func TestScannerComments(t *testing.T) {
	tokens := scanText(t, "a // line comment\n/* block\ncomment */ b")
	assert.Equal(t, []string{"a", "b"}, tokenTexts(tokens))
	assert.Equal(t, 3, tokens[1].Start.Line)
}

func TestScannerStrings(t *testing.T) {
	tokens := scanText(t, `'it\'s' "two" x`)
	assert.Equal(t, TokString, tokens[0].Kind)
	assert.Equal(t, `'it\'s'`, tokens[0].Text)
	assert.Equal(t, TokString, tokens[1].Kind)
	assert.Equal(t, `"two"`, tokens[1].Text)

	_, err := newScanner([]byte("'unterminated\n'")).scanAll()
	assert.Error(t, err)
}

func TestScannerTemplate(t *testing.T) {
	tokens := scanText(t, "`a ${b + `${c}`} d`")
	require.Equal(t, TokTemplate, tokens[0].Kind)
	assert.Equal(t, "`a ${b + `${c}`} d`", tokens[0].Text)
	assert.Equal(t, TokEOF, tokens[1].Kind)
}

func TestScannerRegexVersusDivision(t *testing.T) {
	// After an identifier, slash is division.
	tokens := scanText(t, "a / b")
	assert.Equal(t, []string{"a", "/", "b"}, tokenTexts(tokens))

	// After an operator or at statement start, slash begins a regex.
	tokens = scanText(t, "x = /ab[/]c/gi")
	require.Len(t, tokenTexts(tokens), 3)
	assert.Equal(t, TokRegex, tokens[2].Kind)
	assert.Equal(t, "/ab[/]c/gi", tokens[2].Text)

	tokens = scanText(t, "s.replace(/\\d+/, '')")
	assert.Equal(t, TokRegex, tokens[4].Kind)
}

func TestScannerMultiCharPuncts(t *testing.T) {
	tokens := scanText(t, "a === b && c ?? d?.e => f ** g")
	assert.Equal(t,
		[]string{"a", "===", "b", "&&", "c", "??", "d", "?.", "e", "=>", "f", "**", "g"},
		tokenTexts(tokens))
}

func TestScannerNumbers(t *testing.T) {
	tokens := scanText(t, "1 2.5 0x1F 1e10 3.2e-4")
	texts := tokenTexts(tokens)
	assert.Equal(t, []string{"1", "2.5", "0x1F", "1e10", "3.2e-4"}, texts)
	for _, tok := range tokens[:5] {
		assert.Equal(t, TokNumber, tok.Kind)
	}
}
