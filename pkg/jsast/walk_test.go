package jsast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTestTree constructs:
//
//	Program
//	├── VarDecl
//	│   └── VarDeclarator "x"
//	└── ExprStmt
//	    └── Call
//	        └── Ident "fetch"
func buildTestTree() *Node {
	root := &Node{Kind: NodeProgram}

	decl := &Node{Kind: NodeVarDecl, Keyword: "var"}
	declarator := &Node{Kind: NodeVarDeclarator, Name: "x"}
	decl.AppendChild(declarator)
	root.AppendChild(decl)

	stmt := &Node{Kind: NodeExprStmt}
	call := &Node{Kind: NodeCall}
	callee := &Node{Kind: NodeIdent, Name: "fetch"}
	call.AppendChild(callee)
	stmt.AppendChild(call)
	root.AppendChild(stmt)

	return root
}

func TestWalkPreOrder(t *testing.T) {
	root := buildTestTree()

	var visited []NodeKind
	err := Walk(root, func(n *Node) error {
		visited = append(visited, n.Kind)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []NodeKind{
		NodeProgram, NodeVarDecl, NodeVarDeclarator,
		NodeExprStmt, NodeCall, NodeIdent,
	}, visited)
}

func TestWalkNilRoot(t *testing.T) {
	err := Walk(nil, func(_ *Node) error {
		t.Fatal("callback should not run for nil root")
		return nil
	})
	assert.NoError(t, err)
}

func TestWalkStopsOnError(t *testing.T) {
	root := buildTestTree()
	sentinel := errors.New("stop")

	var count int
	err := Walk(root, func(n *Node) error {
		count++
		if n.Kind == NodeVarDecl {
			return sentinel
		}
		return nil
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 2, count)
}

func TestFindAll(t *testing.T) {
	root := buildTestTree()

	idents := FindAll(root, func(n *Node) bool {
		return n.Kind == NodeIdent
	})
	require.Len(t, idents, 1)
	assert.Equal(t, "fetch", idents[0].Name)
}

func TestFindFirst(t *testing.T) {
	root := buildTestTree()

	decl := FindFirst(root, func(n *Node) bool {
		return n.Kind == NodeVarDeclarator
	})
	require.NotNil(t, decl)
	assert.Equal(t, "x", decl.Name)

	none := FindFirst(root, func(n *Node) bool {
		return n.Kind == NodeTemplate
	})
	assert.Nil(t, none)
}

func TestFindByKind(t *testing.T) {
	root := buildTestTree()

	calls := FindByKind(root, NodeCall)
	assert.Len(t, calls, 1)
}

func TestAppendChildSiblingLinks(t *testing.T) {
	parent := &Node{Kind: NodeBlock}
	a := &Node{Kind: NodeExprStmt}
	b := &Node{Kind: NodeReturn}

	parent.AppendChild(a)
	parent.AppendChild(b)

	assert.Same(t, a, parent.FirstChild)
	assert.Same(t, b, parent.LastChild)
	assert.Same(t, b, a.Next)
	assert.Same(t, a, b.Prev)
	assert.Same(t, parent, a.Parent)
	assert.Equal(t, 2, parent.ChildCount())
	assert.Same(t, b, parent.Child(1))
	assert.Nil(t, parent.Child(2))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Program", NodeProgram.String())
	assert.Equal(t, "VarDecl", NodeVarDecl.String())
	assert.Equal(t, "Raw", NodeRaw.String())
	assert.Equal(t, "Unknown", NodeKind(9999).String())
}
