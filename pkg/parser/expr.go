package parser

import "github.com/jsuplift/jsuplift/pkg/jsast"

// binaryPrec maps binary operators to precedence levels; higher binds
// tighter. Logical operators live here too and get NodeLogical kinds.
var binaryPrec = map[string]int{
	"??": 1,
	"||": 2,
	"&&": 3,
	"|":  4,
	"^":  5,
	"&":  6,
	"==": 7, "!=": 7, "===": 7, "!==": 7,
	"<": 8, ">": 8, "<=": 8, ">=": 8, "instanceof": 8, "in": 8,
	"<<": 9, ">>": 9, ">>>": 9,
	"+": 10, "-": 10,
	"*": 11, "/": 11, "%": 11,
	"**": 12,
}

var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"**=": true, "<<=": true, ">>=": true, ">>>=": true,
	"&=": true, "|=": true, "^=": true,
	"&&=": true, "||=": true, "??=": true,
}

var unaryOps = map[string]bool{
	"!": true, "~": true, "+": true, "-": true,
	"typeof": true, "void": true, "delete": true, "await": true,
}

// parseExpression parses a full expression including the comma operator.
func (p *state) parseExpression() (*jsast.Node, error) {
	start := p.cur().Start
	expr, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if !p.at(",") {
		return expr, nil
	}

	seq := p.newNode(jsast.NodeBinary, start)
	seq.Operator = ","
	seq.AppendChild(expr)
	for p.accept(",") {
		next, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		seq.AppendChild(next)
	}
	return p.close(seq), nil
}

func (p *state) parseAssignment() (*jsast.Node, error) {
	start := p.cur().Start
	left, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	if !assignOps[p.cur().Text] {
		return left, nil
	}

	op := p.advance()
	right, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}

	node := p.newNode(jsast.NodeAssign, start)
	node.Operator = op.Text
	node.AppendChild(left)
	node.AppendChild(right)
	return p.close(node), nil
}

func (p *state) parseConditional() (*jsast.Node, error) {
	start := p.cur().Start
	cond, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}
	if !p.at("?") {
		return cond, nil
	}
	p.advance()

	node := p.newNode(jsast.NodeConditional, start)
	node.AppendChild(cond)

	then, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	node.AppendChild(then)

	if _, err := p.expect(":"); err != nil {
		return nil, err
	}
	alt, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	node.AppendChild(alt)
	return p.close(node), nil
}

// parseBinary implements precedence climbing over binaryPrec.
func (p *state) parseBinary(minPrec int) (*jsast.Node, error) {
	start := p.cur().Start
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		op := p.cur().Text
		prec, ok := binaryPrec[op]
		if !ok || prec < minPrec {
			return left, nil
		}
		if op == "in" && p.noIn {
			return left, nil
		}
		p.advance()

		// ** is right-associative; everything else left.
		nextMin := prec + 1
		if op == "**" {
			nextMin = prec
		}
		right, err := p.parseBinary(nextMin)
		if err != nil {
			return nil, err
		}

		kind := jsast.NodeBinary
		if op == "&&" || op == "||" || op == "??" {
			kind = jsast.NodeLogical
		}
		node := p.newNode(kind, start)
		node.Operator = op
		node.AppendChild(left)
		node.AppendChild(right)
		left = p.close(node)
	}
}

func (p *state) parseUnary() (*jsast.Node, error) {
	tok := p.cur()

	if unaryOps[tok.Text] {
		start := p.advance().Start
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		node := p.newNode(jsast.NodeUnary, start)
		node.Operator = tok.Text
		node.AppendChild(operand)
		return p.close(node), nil
	}

	if tok.Is("++") || tok.Is("--") {
		start := p.advance().Start
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		node := p.newNode(jsast.NodeUpdate, start)
		node.Operator = tok.Text
		node.AppendChild(operand)
		return p.close(node), nil
	}

	return p.parsePostfix()
}

func (p *state) parsePostfix() (*jsast.Node, error) {
	start := p.cur().Start
	expr, err := p.parseCallMember()
	if err != nil {
		return nil, err
	}

	if p.at("++") || p.at("--") {
		op := p.advance()
		node := p.newNode(jsast.NodeUpdate, start)
		node.Operator = op.Text
		node.AppendChild(expr)
		return p.close(node), nil
	}
	return expr, nil
}

// parseCallMember parses a primary expression followed by any chain of
// member accesses, index accesses, calls, and tagged templates.
func (p *state) parseCallMember() (*jsast.Node, error) {
	start := p.cur().Start
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.at(".") || p.at("?."):
			p.advance()
			prop := p.cur()
			if prop.Kind != TokIdent && prop.Kind != TokKeyword {
				return nil, p.errorf("expected property name, found %q", prop.Text)
			}
			p.advance()
			member := p.newNode(jsast.NodeMember, start)
			member.Name = prop.Text
			member.AppendChild(expr)
			expr = p.close(member)

		case p.at("["):
			p.advance()
			idx, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect("]"); err != nil {
				return nil, err
			}
			index := p.newNode(jsast.NodeIndex, start)
			index.AppendChild(expr)
			index.AppendChild(idx)
			expr = p.close(index)

		case p.at("("):
			call := p.newNode(jsast.NodeCall, start)
			call.AppendChild(expr)
			if err := p.parseArguments(call); err != nil {
				return nil, err
			}
			expr = p.close(call)

		case p.cur().Kind == TokTemplate:
			// Tagged template.
			tmpl := p.advance()
			call := p.newNode(jsast.NodeCall, start)
			call.AppendChild(expr)
			lit := p.newNode(jsast.NodeTemplate, tmpl.Start)
			lit.Literal = tmpl.Text
			call.AppendChild(p.close(lit))
			expr = p.close(call)

		default:
			return expr, nil
		}
	}
}

// parseArguments consumes "(args...)" appending each argument to call.
func (p *state) parseArguments(call *jsast.Node) error {
	if _, err := p.expect("("); err != nil {
		return err
	}
	for !p.at(")") {
		if p.atEOF() {
			return p.errorf("unterminated argument list")
		}
		if p.at("...") {
			start := p.advance().Start
			spread := p.newNode(jsast.NodeSpread, start)
			arg, err := p.parseAssignment()
			if err != nil {
				return err
			}
			spread.AppendChild(arg)
			call.AppendChild(p.close(spread))
		} else {
			arg, err := p.parseAssignment()
			if err != nil {
				return err
			}
			call.AppendChild(arg)
		}
		if !p.accept(",") {
			break
		}
	}
	_, err := p.expect(")")
	return err
}

//nolint:cyclop // primary dispatch is a flat switch by design
func (p *state) parsePrimary() (*jsast.Node, error) {
	tok := p.cur()

	// Arrow function with a single unparenthesized parameter.
	if tok.Kind == TokIdent && p.peekNext().Is("=>") {
		return p.parseArrow(tok.Start)
	}
	// Arrow function with a parenthesized parameter list.
	if tok.Is("(") && p.isArrowAhead() {
		return p.parseArrow(tok.Start)
	}

	switch tok.Kind {
	case TokIdent:
		p.advance()
		node := p.newNode(jsast.NodeIdent, tok.Start)
		node.Name = tok.Text
		return p.close(node), nil
	case TokNumber:
		p.advance()
		node := p.newNode(jsast.NodeNumber, tok.Start)
		node.Literal = tok.Text
		return p.close(node), nil
	case TokString:
		p.advance()
		node := p.newNode(jsast.NodeString, tok.Start)
		node.Literal = tok.Text
		return p.close(node), nil
	case TokTemplate:
		p.advance()
		node := p.newNode(jsast.NodeTemplate, tok.Start)
		node.Literal = tok.Text
		return p.close(node), nil
	case TokRegex:
		p.advance()
		node := p.newNode(jsast.NodeRaw, tok.Start)
		node.Literal = tok.Text
		return p.close(node), nil
	case TokKeyword:
		return p.parseKeywordPrimary()
	case TokPunct:
		switch tok.Text {
		case "(":
			p.advance()
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			_, err = p.expect(")")
			return expr, err
		case "[":
			return p.parseArrayLiteral()
		case "{":
			return p.parseObjectLiteral()
		}
	}

	return nil, p.errorf("unexpected token %q", tok.Text)
}

func (p *state) parseKeywordPrimary() (*jsast.Node, error) {
	tok := p.cur()
	switch tok.Text {
	case "this", "super":
		p.advance()
		node := p.newNode(jsast.NodeIdent, tok.Start)
		node.Name = tok.Text
		return p.close(node), nil
	case "true", "false":
		p.advance()
		node := p.newNode(jsast.NodeBool, tok.Start)
		node.Literal = tok.Text
		return p.close(node), nil
	case "null":
		p.advance()
		node := p.newNode(jsast.NodeNull, tok.Start)
		node.Literal = tok.Text
		return p.close(node), nil
	case "function":
		return p.parseFunction(false)
	case "new":
		return p.parseNew()
	case "async":
		// async function expression or async arrow; the async marker
		// itself is not modeled.
		p.advance()
		if p.at("function") {
			return p.parseFunction(false)
		}
		return p.parsePrimary()
	case "class":
		return p.parseRawBraced()
	default:
		return nil, p.errorf("unexpected keyword %q", tok.Text)
	}
}

// parseFunction parses a function declaration (isDecl) or expression.
// The parameter list is consumed but not modeled; the body block is the
// single child.
func (p *state) parseFunction(isDecl bool) (*jsast.Node, error) {
	start := p.cur().Start
	if _, err := p.expect("function"); err != nil {
		return nil, err
	}
	p.accept("*") // generator

	kind := jsast.NodeFuncExpr
	if isDecl {
		kind = jsast.NodeFuncDecl
	}
	node := p.newNode(kind, start)

	if p.cur().Kind == TokIdent {
		node.Name = p.advance().Text
	}

	if !p.at("(") {
		return nil, p.errorf("expected parameter list, found %q", p.cur().Text)
	}
	if err := p.consumeBalanced(); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.AppendChild(body)
	return p.close(node), nil
}

// isArrowAhead reports whether the current "(" begins an arrow function
// parameter list, by finding its matching ")" and checking for "=>".
func (p *state) isArrowAhead() bool {
	depth := 0
	for i := p.idx; i < len(p.tokens); i++ {
		switch p.tokens[i].Text {
		case "(":
			depth++
		case ")":
			depth--
			if depth == 0 {
				return p.tokens[i+1].Is("=>")
			}
		}
		if p.tokens[i].Kind == TokEOF {
			return false
		}
	}
	return false
}

func (p *state) parseArrow(start jsast.Position) (*jsast.Node, error) {
	node := p.newNode(jsast.NodeArrowFunc, start)

	if p.at("(") {
		if err := p.consumeBalanced(); err != nil {
			return nil, err
		}
	} else {
		node.Name = p.advance().Text // single parameter
	}
	if _, err := p.expect("=>"); err != nil {
		return nil, err
	}

	var body *jsast.Node
	var err error
	if p.at("{") {
		body, err = p.parseBlock()
	} else {
		body, err = p.parseAssignment()
	}
	if err != nil {
		return nil, err
	}
	node.AppendChild(body)
	return p.close(node), nil
}

// parseNew parses `new Callee(...)`. The callee may be a member chain
// but its calls bind to the new expression, not the callee.
func (p *state) parseNew() (*jsast.Node, error) {
	start := p.advance().Start
	node := p.newNode(jsast.NodeNew, start)

	callee, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.at(".") {
		p.advance()
		prop := p.cur()
		if prop.Kind != TokIdent && prop.Kind != TokKeyword {
			return nil, p.errorf("expected property name, found %q", prop.Text)
		}
		p.advance()
		member := p.newNode(jsast.NodeMember, start)
		member.Name = prop.Text
		member.AppendChild(callee)
		callee = p.close(member)
	}
	node.AppendChild(callee)

	if p.at("(") {
		if err := p.parseArguments(node); err != nil {
			return nil, err
		}
	}
	return p.close(node), nil
}

func (p *state) parseArrayLiteral() (*jsast.Node, error) {
	start := p.cur().Start
	p.advance()
	node := p.newNode(jsast.NodeArray, start)

	for !p.at("]") {
		if p.atEOF() {
			return nil, p.errorf("unterminated array literal")
		}
		if p.accept(",") {
			continue // elision
		}
		if p.at("...") {
			spreadStart := p.advance().Start
			spread := p.newNode(jsast.NodeSpread, spreadStart)
			elem, err := p.parseAssignment()
			if err != nil {
				return nil, err
			}
			spread.AppendChild(elem)
			node.AppendChild(p.close(spread))
		} else {
			elem, err := p.parseAssignment()
			if err != nil {
				return nil, err
			}
			node.AppendChild(elem)
		}
		if !p.at("]") {
			if _, err := p.expect(","); err != nil {
				return nil, err
			}
		}
	}
	p.advance()
	return p.close(node), nil
}

//nolint:cyclop // property forms (shorthand, method, computed) in one loop
func (p *state) parseObjectLiteral() (*jsast.Node, error) {
	start := p.cur().Start
	p.advance()
	node := p.newNode(jsast.NodeObject, start)

	for !p.at("}") {
		if p.atEOF() {
			return nil, p.errorf("unterminated object literal")
		}

		if p.at("...") {
			spreadStart := p.advance().Start
			spread := p.newNode(jsast.NodeSpread, spreadStart)
			value, err := p.parseAssignment()
			if err != nil {
				return nil, err
			}
			spread.AppendChild(value)
			node.AppendChild(p.close(spread))
			p.accept(",")
			continue
		}

		prop, err := p.parseProperty()
		if err != nil {
			return nil, err
		}
		node.AppendChild(prop)

		if !p.at("}") {
			if _, err := p.expect(","); err != nil {
				return nil, err
			}
		}
	}
	p.advance()
	return p.close(node), nil
}

func (p *state) parseProperty() (*jsast.Node, error) {
	start := p.cur().Start
	prop := p.newNode(jsast.NodeProperty, start)

	// get/set accessor methods.
	if (p.at("get") || p.at("set")) && !p.peekNext().Is(":") &&
		!p.peekNext().Is(",") && !p.peekNext().Is("}") && !p.peekNext().Is("(") {
		p.advance()
	}

	key := p.cur()
	switch {
	case key.Kind == TokIdent || key.Kind == TokKeyword ||
		key.Kind == TokString || key.Kind == TokNumber:
		prop.Name = key.Text
		p.advance()
	case key.Is("["):
		// Computed key, consumed but not modeled.
		if err := p.consumeBalanced(); err != nil {
			return nil, err
		}
	default:
		return nil, p.errorf("expected property key, found %q", key.Text)
	}

	switch {
	case p.accept(":"):
		value, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		prop.AppendChild(value)
	case p.at("("):
		// Method shorthand: params consumed raw, body is a block.
		method := p.newNode(jsast.NodeFuncExpr, key.Start)
		method.Name = prop.Name
		if err := p.consumeBalanced(); err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		method.AppendChild(body)
		prop.AppendChild(p.close(method))
	default:
		// Shorthand property {a}.
		value := p.newNode(jsast.NodeIdent, key.Start)
		value.Name = key.Text
		value.Pos.EndLine = key.End.Line
		value.Pos.EndCol = key.End.Col
		prop.AppendChild(value)
	}

	return p.close(prop), nil
}
