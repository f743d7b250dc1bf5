// Package parser provides the syntax tree provider for jsuplift: a
// hand-written tokenizer and a pragmatic recursive-descent parser that
// covers the construct set the rules match on. Constructs it recognizes
// but does not model (class bodies, switch, try) become Raw nodes;
// input it cannot tokenize or parse at all returns an error, and the
// engine degrades such files to text-scanner-only analysis.
package parser

import (
	"context"
	"fmt"

	"github.com/jsuplift/jsuplift/pkg/jsast"
)

// Parser implements the analyze.Parser interface. It is stateless and
// safe for concurrent use.
type Parser struct{}

// New creates a Parser.
func New() *Parser {
	return &Parser{}
}

// Parse converts raw source bytes into a FileSnapshot with a populated
// AST. The content is never mutated.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*jsast.FileSnapshot, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	tokens, err := newScanner(content).scanAll()
	if err != nil {
		return nil, fmt.Errorf("tokenize %s: %w", path, err)
	}

	snapshot := jsast.NewFileSnapshot(path, content)
	st := &state{tokens: tokens, file: snapshot}

	root, err := st.parseProgram()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	snapshot.Root = root

	return snapshot, nil
}

// ParseError describes a syntactic failure.
type ParseError struct {
	Pos     jsast.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Message)
}

// state is one parse in progress. The token slice always ends with EOF.
type state struct {
	tokens []Token
	idx    int
	file   *jsast.FileSnapshot

	// noIn disables the "in" binary operator while parsing the init
	// part of a for head, mirroring the grammar's NoIn productions.
	noIn bool
}

func (p *state) cur() Token {
	return p.tokens[p.idx]
}

func (p *state) peekNext() Token {
	if p.idx+1 < len(p.tokens) {
		return p.tokens[p.idx+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *state) atEOF() bool {
	return p.cur().Kind == TokEOF
}

func (p *state) at(text string) bool {
	return p.cur().Text == text
}

func (p *state) advance() Token {
	tok := p.cur()
	if p.idx < len(p.tokens)-1 {
		p.idx++
	}
	return tok
}

func (p *state) accept(text string) bool {
	if p.at(text) {
		p.advance()
		return true
	}
	return false
}

func (p *state) expect(text string) (Token, error) {
	if !p.at(text) {
		return Token{}, p.errorf("expected %q, found %q", text, p.cur().Text)
	}
	return p.advance(), nil
}

func (p *state) errorf(format string, args ...any) error {
	return &ParseError{Pos: p.cur().Start, Message: fmt.Sprintf(format, args...)}
}

// prevEnd returns the end position of the last consumed token.
func (p *state) prevEnd() jsast.Position {
	if p.idx == 0 {
		return p.cur().Start
	}
	return p.tokens[p.idx-1].End
}

func (p *state) newNode(kind jsast.NodeKind, start jsast.Position) *jsast.Node {
	return &jsast.Node{
		Kind: kind,
		File: p.file,
		Pos:  jsast.SourcePosition{StartLine: start.Line, StartCol: start.Col},
	}
}

// close seals a node's end position at the last consumed token.
func (p *state) close(n *jsast.Node) *jsast.Node {
	end := p.prevEnd()
	n.Pos.EndLine = end.Line
	n.Pos.EndCol = end.Col
	return n
}

func (p *state) parseProgram() (*jsast.Node, error) {
	root := p.newNode(jsast.NodeProgram, p.cur().Start)
	for !p.atEOF() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			root.AppendChild(stmt)
		}
	}
	return p.close(root), nil
}

//nolint:cyclop // statement dispatch is a flat switch by design
func (p *state) parseStatement() (*jsast.Node, error) {
	tok := p.cur()

	switch tok.Text {
	case ";":
		p.advance()
		return nil, nil
	case "var", "let", "const":
		return p.parseVarDecl()
	case "function":
		return p.parseFunction(true)
	case "async":
		if p.peekNext().Is("function") {
			p.advance()
			return p.parseFunction(true)
		}
	case "if":
		return p.parseIf()
	case "for":
		return p.parseFor()
	case "while":
		return p.parseWhile()
	case "do":
		return p.parseDoWhile()
	case "return":
		return p.parseReturn()
	case "break", "continue":
		kind := jsast.NodeBreak
		if tok.Is("continue") {
			kind = jsast.NodeContinue
		}
		start := p.advance().Start
		if p.cur().Kind == TokIdent && p.cur().Start.Line == tok.Start.Line {
			p.advance() // label
		}
		p.accept(";")
		return p.close(p.newNode(kind, start)), nil
	case "throw":
		start := p.advance().Start
		node := p.newNode(jsast.NodeRaw, start)
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		node.AppendChild(expr)
		p.accept(";")
		return p.close(node), nil
	case "{":
		return p.parseBlock()
	case "switch", "try", "class":
		return p.parseRawBraced()
	case "import", "export":
		return p.parseRawStatement()
	}

	// Labeled statement.
	if tok.Kind == TokIdent && p.peekNext().Is(":") {
		p.advance()
		p.advance()
		return p.parseStatement()
	}

	// Expression statement.
	start := tok.Start
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	stmt := p.newNode(jsast.NodeExprStmt, start)
	stmt.AppendChild(expr)
	p.accept(";")
	return p.close(stmt), nil
}

func (p *state) parseVarDecl() (*jsast.Node, error) {
	kw := p.advance()
	decl := p.newNode(jsast.NodeVarDecl, kw.Start)
	decl.Keyword = kw.Text

	for {
		declarator, err := p.parseDeclarator()
		if err != nil {
			return nil, err
		}
		decl.AppendChild(declarator)
		if !p.accept(",") {
			break
		}
	}
	p.accept(";")
	return p.close(decl), nil
}

// parseDeclarator parses one `name [= init]` binding. Destructuring
// patterns are consumed but not modeled: the declarator keeps an empty
// Name, which keeps them out of the reassignment heuristics.
func (p *state) parseDeclarator() (*jsast.Node, error) {
	start := p.cur().Start
	declarator := p.newNode(jsast.NodeVarDeclarator, start)

	switch {
	case p.at("[") || p.at("{"):
		if err := p.consumeBalanced(); err != nil {
			return nil, err
		}
	case p.cur().Kind == TokIdent:
		declarator.Name = p.advance().Text
	default:
		return nil, p.errorf("expected binding name, found %q", p.cur().Text)
	}

	if p.accept("=") {
		init, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		declarator.AppendChild(init)
	}
	return p.close(declarator), nil
}

func (p *state) parseIf() (*jsast.Node, error) {
	start := p.advance().Start
	node := p.newNode(jsast.NodeIf, start)

	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	node.AppendChild(cond)
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}

	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if then != nil {
		node.AppendChild(then)
	}

	if p.accept("else") {
		alt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if alt != nil {
			node.AppendChild(alt)
		}
	}
	return p.close(node), nil
}

//nolint:cyclop // the three for-head forms share one entry point
func (p *state) parseFor() (*jsast.Node, error) {
	start := p.advance().Start
	if _, err := p.expect("("); err != nil {
		return nil, err
	}

	var init *jsast.Node
	var err error

	switch {
	case p.at(";"):
		// Empty init.
	case p.at("var") || p.at("let") || p.at("const"):
		kw := p.advance()
		decl := p.newNode(jsast.NodeVarDecl, kw.Start)
		decl.Keyword = kw.Text
		declarator, derr := p.parseDeclarator()
		if derr != nil {
			return nil, derr
		}
		decl.AppendChild(declarator)

		if p.at("in") || p.at("of") {
			return p.parseForInOf(start, p.close(decl))
		}

		for p.accept(",") {
			more, merr := p.parseDeclarator()
			if merr != nil {
				return nil, merr
			}
			decl.AppendChild(more)
		}
		init = p.close(decl)
	default:
		p.noIn = true
		init, err = p.parseExpression()
		p.noIn = false
		if err != nil {
			return nil, err
		}
		if p.at("in") || p.at("of") {
			return p.parseForInOf(start, init)
		}
	}

	node := p.newNode(jsast.NodeFor, start)
	if init != nil {
		node.AppendChild(init)
	}
	if _, err := p.expect(";"); err != nil {
		return nil, err
	}

	if !p.at(";") {
		test, terr := p.parseExpression()
		if terr != nil {
			return nil, terr
		}
		node.AppendChild(test)
	}
	if _, err := p.expect(";"); err != nil {
		return nil, err
	}

	if !p.at(")") {
		update, uerr := p.parseExpression()
		if uerr != nil {
			return nil, uerr
		}
		node.AppendChild(update)
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if body != nil {
		node.AppendChild(body)
	}
	return p.close(node), nil
}

func (p *state) parseForInOf(start jsast.Position, left *jsast.Node) (*jsast.Node, error) {
	kind := jsast.NodeForIn
	if p.at("of") {
		kind = jsast.NodeForOf
	}
	p.advance()

	node := p.newNode(kind, start)
	node.AppendChild(left)

	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	node.AppendChild(right)

	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if body != nil {
		node.AppendChild(body)
	}
	return p.close(node), nil
}

func (p *state) parseWhile() (*jsast.Node, error) {
	start := p.advance().Start
	node := p.newNode(jsast.NodeWhile, start)

	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	node.AppendChild(cond)
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if body != nil {
		node.AppendChild(body)
	}
	return p.close(node), nil
}

func (p *state) parseDoWhile() (*jsast.Node, error) {
	start := p.advance().Start
	node := p.newNode(jsast.NodeWhile, start)
	node.Operator = "do"

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if body != nil {
		node.AppendChild(body)
	}

	if _, err := p.expect("while"); err != nil {
		return nil, err
	}
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	node.AppendChild(cond)
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	p.accept(";")
	return p.close(node), nil
}

func (p *state) parseReturn() (*jsast.Node, error) {
	kw := p.advance()
	node := p.newNode(jsast.NodeReturn, kw.Start)

	if !p.at(";") && !p.at("}") && !p.atEOF() && p.cur().Start.Line == kw.Start.Line {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		node.AppendChild(expr)
	}
	p.accept(";")
	return p.close(node), nil
}

func (p *state) parseBlock() (*jsast.Node, error) {
	start := p.cur().Start
	if _, err := p.expect("{"); err != nil {
		return nil, err
	}
	block := p.newNode(jsast.NodeBlock, start)
	for !p.at("}") {
		if p.atEOF() {
			return nil, p.errorf("unterminated block")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			block.AppendChild(stmt)
		}
	}
	p.advance()
	return p.close(block), nil
}

// parseRawBraced consumes a construct up to and including the balanced
// closing brace of its first opening brace (switch, try, class).
func (p *state) parseRawBraced() (*jsast.Node, error) {
	start := p.cur().Start
	node := p.newNode(jsast.NodeRaw, start)

	for !p.at("{") {
		if p.atEOF() {
			return nil, p.errorf("unexpected end of input")
		}
		p.advance()
	}
	if err := p.consumeBalanced(); err != nil {
		return nil, err
	}

	// try has optional catch/finally tails.
	for p.at("catch") || p.at("finally") {
		p.advance()
		if p.at("(") {
			if err := p.consumeBalanced(); err != nil {
				return nil, err
			}
		}
		if !p.at("{") {
			return nil, p.errorf("expected block, found %q", p.cur().Text)
		}
		if err := p.consumeBalanced(); err != nil {
			return nil, err
		}
	}
	return p.close(node), nil
}

// parseRawStatement consumes an import/export statement up to its
// semicolon, or to the first token on a new line at bracket depth zero.
func (p *state) parseRawStatement() (*jsast.Node, error) {
	start := p.cur().Start
	node := p.newNode(jsast.NodeRaw, start)
	p.advance() // leading import/export keyword
	depth := 0

	for !p.atEOF() {
		tok := p.cur()
		if depth == 0 && tok.Start.Line > p.prevEnd().Line {
			break
		}
		switch tok.Text {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
		case ";":
			if depth == 0 {
				p.advance()
				return p.close(node), nil
			}
		}
		p.advance()
	}
	return p.close(node), nil
}

// consumeBalanced consumes one bracketed region: the current token must
// be an opener, and everything through its matching closer is consumed.
func (p *state) consumeBalanced() error {
	open := p.cur().Text
	var closer string
	switch open {
	case "(":
		closer = ")"
	case "[":
		closer = "]"
	case "{":
		closer = "}"
	default:
		return p.errorf("expected bracket, found %q", open)
	}

	depth := 0
	for {
		if p.atEOF() {
			return p.errorf("unterminated %q", open)
		}
		tok := p.advance()
		switch tok.Text {
		case open:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return nil
			}
		}
	}
}
