package parser

import (
	"fmt"

	"github.com/jsuplift/jsuplift/pkg/jsast"
)

// TokenKind classifies a lexical token.
type TokenKind uint8

const (
	TokEOF TokenKind = iota
	TokIdent
	TokKeyword
	TokNumber
	TokString
	TokTemplate
	TokRegex
	TokPunct
)

// Token is one lexical token. Text is a slice of the original source;
// Start and End use the snapshot convention (1-based line, 0-based col).
type Token struct {
	Kind  TokenKind
	Text  string
	Start jsast.Position
	End   jsast.Position
}

// Is returns true if the token's text matches s.
func (t Token) Is(s string) bool {
	return t.Text == s
}

var keywords = map[string]bool{
	"var": true, "let": true, "const": true,
	"function": true, "return": true,
	"if": true, "else": true, "switch": true, "case": true, "default": true,
	"for": true, "while": true, "do": true,
	"break": true, "continue": true,
	"new": true, "delete": true, "typeof": true, "void": true, "instanceof": true,
	"in": true, "this": true,
	"true": true, "false": true, "null": true,
	"try": true, "catch": true, "finally": true, "throw": true,
	"class": true, "extends": true, "super": true,
	"import": true, "export": true,
	"yield": true, "async": true, "await": true,
}

// punctuation operators, longest first so the scanner matches greedily.
var puncts = []string{
	">>>=",
	"===", "!==", "**=", "<<=", ">>=", ">>>", "...", "&&=", "||=", "??=",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "?.", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>", "**",
	"+", "-", "*", "/", "%", "=", "<", ">", "!", "~", "&", "|", "^",
	"?", ":", ";", ",", ".", "(", ")", "[", "]", "{", "}",
}

// ScanError describes a tokenization failure.
type ScanError struct {
	Pos     jsast.Position
	Message string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Message)
}

// scanner tokenizes JavaScript source. Columns count bytes.
type scanner struct {
	src       []byte
	off       int
	line      int
	lineStart int
	prev      *Token // last significant token, for regex disambiguation
}

func newScanner(src []byte) *scanner {
	return &scanner{src: src, line: 1}
}

func (s *scanner) pos() jsast.Position {
	return jsast.Position{Line: s.line, Col: s.off - s.lineStart}
}

func (s *scanner) eof() bool {
	return s.off >= len(s.src)
}

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.off]
}

func (s *scanner) peekAt(n int) byte {
	if s.off+n >= len(s.src) {
		return 0
	}
	return s.src[s.off+n]
}

// advance moves one byte forward, tracking line starts.
func (s *scanner) advance() {
	if s.eof() {
		return
	}
	if s.src[s.off] == '\n' {
		s.line++
		s.lineStart = s.off + 1
	}
	s.off++
}

func isIdentStart(ch byte) bool {
	return ch == '_' || ch == '$' ||
		(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
		ch >= 0x80
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// scanAll tokenizes the whole input.
func (s *scanner) scanAll() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokEOF {
			tokens = append(tokens, tok)
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// next returns the next significant token, skipping whitespace and
// comments.
func (s *scanner) next() (Token, error) {
	if err := s.skipTrivia(); err != nil {
		return Token{}, err
	}
	if s.eof() {
		return Token{Kind: TokEOF, Start: s.pos(), End: s.pos()}, nil
	}

	start := s.pos()
	startOff := s.off
	ch := s.peek()

	var tok Token
	var err error

	switch {
	case isIdentStart(ch):
		tok = s.scanIdent(start, startOff)
	case isDigit(ch) || (ch == '.' && isDigit(s.peekAt(1))):
		tok = s.scanNumber(start, startOff)
	case ch == '"' || ch == '\'':
		tok, err = s.scanString(start, startOff)
	case ch == '`':
		tok, err = s.scanTemplate(start, startOff)
	case ch == '/' && s.regexAllowed():
		tok, err = s.scanRegex(start, startOff)
	default:
		tok, err = s.scanPunct(start, startOff)
	}
	if err != nil {
		return Token{}, err
	}

	s.prev = &tok
	return tok, nil
}

// skipTrivia consumes whitespace and comments.
func (s *scanner) skipTrivia() error {
	for !s.eof() {
		ch := s.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			s.advance()
		case ch == '/' && s.peekAt(1) == '/':
			for !s.eof() && s.peek() != '\n' {
				s.advance()
			}
		case ch == '/' && s.peekAt(1) == '*':
			pos := s.pos()
			s.advance()
			s.advance()
			for {
				if s.eof() {
					return &ScanError{Pos: pos, Message: "unterminated block comment"}
				}
				if s.peek() == '*' && s.peekAt(1) == '/' {
					s.advance()
					s.advance()
					break
				}
				s.advance()
			}
		default:
			return nil
		}
	}
	return nil
}

func (s *scanner) scanIdent(start jsast.Position, startOff int) Token {
	for !s.eof() && isIdentPart(s.peek()) {
		s.advance()
	}
	text := string(s.src[startOff:s.off])
	kind := TokIdent
	if keywords[text] {
		kind = TokKeyword
	}
	return Token{Kind: kind, Text: text, Start: start, End: s.pos()}
}

func (s *scanner) scanNumber(start jsast.Position, startOff int) Token {
	// Covers integers, decimals, hex/octal/binary prefixes, and
	// exponents; the parser treats the text as opaque.
	for !s.eof() {
		ch := s.peek()
		if isDigit(ch) || isIdentPart(ch) || ch == '.' {
			s.advance()
			continue
		}
		if (ch == '+' || ch == '-') && s.off > startOff {
			last := s.src[s.off-1]
			if last == 'e' || last == 'E' {
				s.advance()
				continue
			}
		}
		break
	}
	return Token{
		Kind:  TokNumber,
		Text:  string(s.src[startOff:s.off]),
		Start: start,
		End:   s.pos(),
	}
}

func (s *scanner) scanString(start jsast.Position, startOff int) (Token, error) {
	quote := s.peek()
	s.advance()
	for {
		if s.eof() {
			return Token{}, &ScanError{Pos: start, Message: "unterminated string literal"}
		}
		ch := s.peek()
		if ch == '\n' {
			return Token{}, &ScanError{Pos: start, Message: "newline in string literal"}
		}
		if ch == '\\' {
			s.advance()
			s.advance()
			continue
		}
		s.advance()
		if ch == quote {
			break
		}
	}
	return Token{
		Kind:  TokString,
		Text:  string(s.src[startOff:s.off]),
		Start: start,
		End:   s.pos(),
	}, nil
}

func (s *scanner) scanTemplate(start jsast.Position, startOff int) (Token, error) {
	s.advance() // opening backtick
	depth := 0  // ${ } nesting
	for {
		if s.eof() {
			return Token{}, &ScanError{Pos: start, Message: "unterminated template literal"}
		}
		ch := s.peek()
		switch {
		case ch == '\\':
			s.advance()
			s.advance()
		case ch == '$' && s.peekAt(1) == '{':
			depth++
			s.advance()
			s.advance()
		case ch == '}' && depth > 0:
			depth--
			s.advance()
		case ch == '`' && depth == 0:
			s.advance()
			return Token{
				Kind:  TokTemplate,
				Text:  string(s.src[startOff:s.off]),
				Start: start,
				End:   s.pos(),
			}, nil
		default:
			s.advance()
		}
	}
}

// regexAllowed reports whether a '/' at the current position starts a
// regex literal rather than a division operator, based on the previous
// significant token.
func (s *scanner) regexAllowed() bool {
	if s.prev == nil {
		return true
	}
	switch s.prev.Kind {
	case TokIdent, TokNumber, TokString, TokTemplate, TokRegex:
		return false
	case TokKeyword:
		// "this", "true", etc. are value-like; everything else
		// (return, typeof, case, in, ...) allows a regex.
		switch s.prev.Text {
		case "this", "true", "false", "null", "super":
			return false
		}
		return true
	case TokPunct:
		switch s.prev.Text {
		case ")", "]", "}", "++", "--":
			return false
		}
		return true
	default:
		return true
	}
}

func (s *scanner) scanRegex(start jsast.Position, startOff int) (Token, error) {
	s.advance() // leading '/'
	inClass := false
	for {
		if s.eof() {
			return Token{}, &ScanError{Pos: start, Message: "unterminated regex literal"}
		}
		ch := s.peek()
		if ch == '\n' {
			return Token{}, &ScanError{Pos: start, Message: "newline in regex literal"}
		}
		if ch == '\\' {
			s.advance()
			s.advance()
			continue
		}
		s.advance()
		switch ch {
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				// Trailing flags.
				for !s.eof() && isIdentPart(s.peek()) {
					s.advance()
				}
				return Token{
					Kind:  TokRegex,
					Text:  string(s.src[startOff:s.off]),
					Start: start,
					End:   s.pos(),
				}, nil
			}
		}
	}
}

func (s *scanner) scanPunct(start jsast.Position, startOff int) (Token, error) {
	rest := s.src[s.off:]
	for _, p := range puncts {
		if len(rest) >= len(p) && string(rest[:len(p)]) == p {
			for range len(p) {
				s.advance()
			}
			return Token{
				Kind:  TokPunct,
				Text:  p,
				Start: start,
				End:   s.pos(),
			}, nil
		}
	}
	return Token{}, &ScanError{
		Pos:     start,
		Message: fmt.Sprintf("unexpected character %q", s.src[startOff]),
	}
}
