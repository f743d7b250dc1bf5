package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsuplift/jsuplift/pkg/jsast"
)

func firstKind(root *jsast.Node, kind jsast.NodeKind) *jsast.Node {
	return jsast.FindFirst(root, func(n *jsast.Node) bool { return n.Kind == kind })
}

func parseText(t *testing.T, src string) *jsast.FileSnapshot {
	t.Helper()
	snapshot, err := New().Parse(context.Background(), "test.js", []byte(src))
	require.NoError(t, err)
	require.NotNil(t, snapshot.Root)
	return snapshot
}

func TestParseVarDecl(t *testing.T) {
	snapshot := parseText(t, "var count = 1, total;")

	decl := firstKind(snapshot.Root, jsast.NodeVarDecl)
	require.NotNil(t, decl)
	assert.Equal(t, "var", decl.Keyword)
	assert.Equal(t, 2, decl.ChildCount())

	first := decl.FirstChild
	assert.Equal(t, jsast.NodeVarDeclarator, first.Kind)
	assert.Equal(t, "count", first.Name)
	assert.Equal(t, 1, first.ChildCount()) // initializer

	second := first.Next
	assert.Equal(t, "total", second.Name)
	assert.Equal(t, 0, second.ChildCount())
}

func TestParseVarDeclPositions(t *testing.T) {
	snapshot := parseText(t, "  var x = 1;")

	decl := firstKind(snapshot.Root, jsast.NodeVarDecl)
	require.NotNil(t, decl)
	assert.Equal(t, 1, decl.Pos.StartLine)
	assert.Equal(t, 2, decl.Pos.StartCol)
	assert.Equal(t, "var x = 1;", decl.Text())
}

func TestParseDestructuringDeclarator(t *testing.T) {
	snapshot := parseText(t, "const { a, b } = obj;\nlet [x, y] = pair;")

	decls := jsast.FindByKind(snapshot.Root, jsast.NodeVarDeclarator)
	require.Len(t, decls, 2)
	// Patterns are consumed but unnamed, keeping them out of the
	// binding heuristics.
	assert.Empty(t, decls[0].Name)
	assert.Empty(t, decls[1].Name)
}

func TestParseMemberCallChain(t *testing.T) {
	snapshot := parseText(t, "items.indexOf(needle) !== -1;")

	call := firstKind(snapshot.Root, jsast.NodeCall)
	require.NotNil(t, call)

	callee := call.FirstChild
	require.Equal(t, jsast.NodeMember, callee.Kind)
	assert.Equal(t, "indexOf", callee.Name)
	assert.Equal(t, jsast.NodeIdent, callee.FirstChild.Kind)
	assert.Equal(t, "items", callee.FirstChild.Name)

	arg := callee.Next
	require.NotNil(t, arg)
	assert.Equal(t, "needle", arg.Name)

	binary := firstKind(snapshot.Root, jsast.NodeBinary)
	require.NotNil(t, binary)
	assert.Equal(t, "!==", binary.Operator)
}

func TestParseOptionalChaining(t *testing.T) {
	snapshot := parseText(t, "a?.b?.c;")

	members := jsast.FindByKind(snapshot.Root, jsast.NodeMember)
	require.Len(t, members, 2)
	assert.Equal(t, "c", members[0].Name) // outermost first in pre-order
	assert.Equal(t, "b", members[1].Name)
}

func TestParseBinaryPrecedence(t *testing.T) {
	snapshot := parseText(t, "a + b * c;")

	top := firstKind(snapshot.Root, jsast.NodeBinary)
	require.NotNil(t, top)
	assert.Equal(t, "+", top.Operator)

	inner := top.LastChild
	require.Equal(t, jsast.NodeBinary, inner.Kind)
	assert.Equal(t, "*", inner.Operator)
}

func TestParseLogicalVersusBinary(t *testing.T) {
	snapshot := parseText(t, "a && b | c;")

	logical := firstKind(snapshot.Root, jsast.NodeLogical)
	require.NotNil(t, logical)
	assert.Equal(t, "&&", logical.Operator)

	binary := firstKind(snapshot.Root, jsast.NodeBinary)
	require.NotNil(t, binary)
	assert.Equal(t, "|", binary.Operator)
}

func TestParseExponentRightAssociative(t *testing.T) {
	snapshot := parseText(t, "a ** b ** c;")

	top := firstKind(snapshot.Root, jsast.NodeBinary)
	require.NotNil(t, top)
	assert.Equal(t, "**", top.Operator)
	assert.Equal(t, "a", top.FirstChild.Name)
	assert.Equal(t, jsast.NodeBinary, top.LastChild.Kind)
}

func TestParseAssignAndUpdate(t *testing.T) {
	snapshot := parseText(t, "x += 1; y++; --z;")

	assign := firstKind(snapshot.Root, jsast.NodeAssign)
	require.NotNil(t, assign)
	assert.Equal(t, "+=", assign.Operator)
	assert.Equal(t, "x", assign.FirstChild.Name)

	updates := jsast.FindByKind(snapshot.Root, jsast.NodeUpdate)
	require.Len(t, updates, 2)
	assert.Equal(t, "++", updates[0].Operator)
	assert.Equal(t, "--", updates[1].Operator)
}

func TestParseConditional(t *testing.T) {
	snapshot := parseText(t, "var v = ok ? a : b;")

	cond := firstKind(snapshot.Root, jsast.NodeConditional)
	require.NotNil(t, cond)
	assert.Equal(t, 3, cond.ChildCount())
}

func TestParseForClassic(t *testing.T) {
	snapshot := parseText(t, "for (var i = 0; i < n; i++) { sum += i; }")

	loop := firstKind(snapshot.Root, jsast.NodeFor)
	require.NotNil(t, loop)
	assert.Equal(t, 4, loop.ChildCount())
	assert.Equal(t, jsast.NodeVarDecl, loop.FirstChild.Kind)
	assert.Equal(t, jsast.NodeBlock, loop.LastChild.Kind)
}

func TestParseForInAndForOf(t *testing.T) {
	snapshot := parseText(t, "for (var k in obj) {}\nfor (const item of list) {}")

	forIn := firstKind(snapshot.Root, jsast.NodeForIn)
	require.NotNil(t, forIn)
	assert.Equal(t, jsast.NodeVarDecl, forIn.FirstChild.Kind)

	forOf := firstKind(snapshot.Root, jsast.NodeForOf)
	require.NotNil(t, forOf)
	assert.Equal(t, "const", forOf.FirstChild.Keyword)
}

func TestParseFunctionDecl(t *testing.T) {
	snapshot := parseText(t, "function add(a, b) { return a + b; }")

	fn := firstKind(snapshot.Root, jsast.NodeFuncDecl)
	require.NotNil(t, fn)
	assert.Equal(t, "add", fn.Name)
	require.Equal(t, jsast.NodeBlock, fn.FirstChild.Kind)

	ret := firstKind(fn, jsast.NodeReturn)
	require.NotNil(t, ret)
	assert.Equal(t, 1, ret.ChildCount())
}

func TestParseFunctionExpressionAndArrow(t *testing.T) {
	snapshot := parseText(t, "var f = function (x) { return x; };\nvar g = (a, b) => a + b;\nvar h = v => v * 2;")

	fn := firstKind(snapshot.Root, jsast.NodeFuncExpr)
	require.NotNil(t, fn)

	arrows := jsast.FindByKind(snapshot.Root, jsast.NodeArrowFunc)
	require.Len(t, arrows, 2)
	assert.Equal(t, "v", arrows[1].Name)
	assert.Equal(t, jsast.NodeBinary, arrows[1].FirstChild.Kind)
}

func TestParseNewExpression(t *testing.T) {
	snapshot := parseText(t, "var req = new XMLHttpRequest();")

	node := firstKind(snapshot.Root, jsast.NodeNew)
	require.NotNil(t, node)
	assert.Equal(t, "XMLHttpRequest", node.FirstChild.Name)
}

func TestParseObjectAndArrayLiterals(t *testing.T) {
	snapshot := parseText(t, "var o = { a: 1, b, c() { return 2; }, ...rest };\nvar arr = [1, ...more, 3];")

	obj := firstKind(snapshot.Root, jsast.NodeObject)
	require.NotNil(t, obj)
	props := jsast.FindByKind(obj, jsast.NodeProperty)
	require.Len(t, props, 3)
	assert.Equal(t, "a", props[0].Name)
	assert.Equal(t, "b", props[1].Name)
	assert.Equal(t, jsast.NodeFuncExpr, props[2].FirstChild.Kind)

	arr := firstKind(snapshot.Root, jsast.NodeArray)
	require.NotNil(t, arr)
	assert.Equal(t, 3, arr.ChildCount())

	spreads := jsast.FindByKind(snapshot.Root, jsast.NodeSpread)
	assert.Len(t, spreads, 2)
}

func TestParseTemplateLiteral(t *testing.T) {
	snapshot := parseText(t, "var s = `hello ${name}`;")

	tmpl := firstKind(snapshot.Root, jsast.NodeTemplate)
	require.NotNil(t, tmpl)
	assert.Equal(t, "`hello ${name}`", tmpl.Literal)
}

func TestParseUnmodeledConstructsBecomeRaw(t *testing.T) {
	snapshot := parseText(t, `
class Widget extends Base {
  render() { return 1; }
}
switch (x) { case 1: break; }
try { risky(); } catch (e) { log(e); } finally { done(); }
import { a } from './mod';
export default thing;
`)

	raws := jsast.FindByKind(snapshot.Root, jsast.NodeRaw)
	assert.GreaterOrEqual(t, len(raws), 5)
	// Nothing leaked past the raw regions.
	assert.Nil(t, firstKind(snapshot.Root, jsast.NodeVarDecl))
}

func TestParseIfElseChain(t *testing.T) {
	snapshot := parseText(t, "if (a) b(); else if (c) d(); else e();")

	ifs := jsast.FindByKind(snapshot.Root, jsast.NodeIf)
	require.Len(t, ifs, 2)
	assert.Equal(t, 3, ifs[0].ChildCount()) // cond, then, else
}

func TestParseErrorReportsPosition(t *testing.T) {
	_, err := New().Parse(context.Background(), "bad.js", []byte("var = 1;"))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Pos.Line)
}

func TestParseCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Parse(ctx, "a.js", []byte("var x;"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParsePreOrderStatementOrder(t *testing.T) {
	snapshot := parseText(t, "var a = 1;\nvar b = 2;\nvar c = 3;")

	var names []string
	for _, d := range jsast.FindByKind(snapshot.Root, jsast.NodeVarDeclarator) {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}
