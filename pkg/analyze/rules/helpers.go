package rules

import (
	"github.com/jsuplift/jsuplift/pkg/fix"
	"github.com/jsuplift/jsuplift/pkg/jsast"
)

// nodeEdit builds an edit replacing a node's full source range.
func nodeEdit(n *jsast.Node, newText string) *fix.TextEdit {
	return &fix.TextEdit{
		Start:   fix.Position{Line: n.Pos.StartLine, Col: n.Pos.StartCol},
		End:     fix.Position{Line: n.Pos.EndLine, Col: n.Pos.EndCol},
		NewText: newText,
	}
}

// keywordEdit builds an edit replacing the leading keyword of a node,
// e.g. the "var" of a declaration.
func keywordEdit(n *jsast.Node, keyword, newText string) *fix.TextEdit {
	return &fix.TextEdit{
		Start:   fix.Position{Line: n.Pos.StartLine, Col: n.Pos.StartCol},
		End:     fix.Position{Line: n.Pos.StartLine, Col: n.Pos.StartCol + len(keyword)},
		NewText: newText,
	}
}

// memberCallee returns the member callee of a call node when its property
// name matches, or nil.
func memberCallee(call *jsast.Node, name string) *jsast.Node {
	if call.Kind != jsast.NodeCall {
		return nil
	}
	callee := call.FirstChild
	if callee == nil || callee.Kind != jsast.NodeMember || callee.Name != name {
		return nil
	}
	return callee
}

// containsInScope reports whether pred matches anywhere under root
// without descending into nested function declarations or expressions.
// Arrow functions are descended into: they share the enclosing scope's
// this and arguments bindings.
func containsInScope(root *jsast.Node, pred func(n *jsast.Node) bool) bool {
	for child := root.FirstChild; child != nil; child = child.Next {
		if pred(child) {
			return true
		}
		if child.Kind == jsast.NodeFuncDecl || child.Kind == jsast.NodeFuncExpr {
			continue
		}
		if containsInScope(child, pred) {
			return true
		}
	}
	return false
}
