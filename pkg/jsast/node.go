package jsast

// NodeKind classifies the type of an AST node. The set of kinds is closed:
// rules pattern-match on the kind instead of probing loosely-typed fields,
// so a switch over NodeKind can be checked for exhaustiveness.
type NodeKind uint16

// Node kinds for statement-level and expression-level JavaScript constructs.
const (
	NodeProgram NodeKind = iota

	// Statement-level nodes.
	NodeVarDecl
	NodeVarDeclarator
	NodeFuncDecl
	NodeBlock
	NodeIf
	NodeFor
	NodeForIn
	NodeForOf
	NodeWhile
	NodeReturn
	NodeBreak
	NodeContinue
	NodeExprStmt

	// Expression-level nodes.
	NodeCall
	NodeNew
	NodeMember
	NodeIndex
	NodeBinary
	NodeLogical
	NodeAssign
	NodeUnary
	NodeUpdate
	NodeConditional
	NodeFuncExpr
	NodeArrowFunc
	NodeIdent
	NodeString
	NodeNumber
	NodeBool
	NodeNull
	NodeTemplate
	NodeObject
	NodeProperty
	NodeArray
	NodeSpread

	// Fallback for constructs the parser recognizes but does not model.
	NodeRaw
)

var kindNames = [...]string{
	NodeProgram:       "Program",
	NodeVarDecl:       "VarDecl",
	NodeVarDeclarator: "VarDeclarator",
	NodeFuncDecl:      "FuncDecl",
	NodeBlock:         "Block",
	NodeIf:            "If",
	NodeFor:           "For",
	NodeForIn:         "ForIn",
	NodeForOf:         "ForOf",
	NodeWhile:         "While",
	NodeReturn:        "Return",
	NodeBreak:         "Break",
	NodeContinue:      "Continue",
	NodeExprStmt:      "ExprStmt",
	NodeCall:          "Call",
	NodeNew:           "New",
	NodeMember:        "Member",
	NodeIndex:         "Index",
	NodeBinary:        "Binary",
	NodeLogical:       "Logical",
	NodeAssign:        "Assign",
	NodeUnary:         "Unary",
	NodeUpdate:        "Update",
	NodeConditional:   "Conditional",
	NodeFuncExpr:      "FuncExpr",
	NodeArrowFunc:     "ArrowFunc",
	NodeIdent:         "Ident",
	NodeString:        "String",
	NodeNumber:        "Number",
	NodeBool:          "Bool",
	NodeNull:          "Null",
	NodeTemplate:      "Template",
	NodeObject:        "Object",
	NodeProperty:      "Property",
	NodeArray:         "Array",
	NodeSpread:        "Spread",
	NodeRaw:           "Raw",
}

// String returns the name of the node kind.
func (k NodeKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// Node represents a single node in the JavaScript AST.
// Nodes form a tree structure with parent/child/sibling relationships.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Pos is the source range this node covers.
	// Lines are 1-based; columns are 0-based.
	Pos SourcePosition

	// File is a back-reference to the containing FileSnapshot.
	File *FileSnapshot

	// Name holds the relevant identifier text for kinds that carry one:
	// the variable name for NodeVarDeclarator, the identifier for NodeIdent,
	// the property name for NodeMember, the function name for NodeFuncDecl.
	Name string

	// Operator holds the operator text for NodeBinary, NodeLogical,
	// NodeAssign, NodeUnary, and NodeUpdate.
	Operator string

	// Literal holds the raw source text for literal kinds
	// (NodeString, NodeNumber, NodeBool, NodeTemplate).
	Literal string

	// Keyword holds the declaration keyword for NodeVarDecl
	// ("var", "let", or "const").
	Keyword string
}

// IsStatement returns true if this is a statement-level node.
func (n *Node) IsStatement() bool {
	switch n.Kind {
	case NodeProgram, NodeVarDecl, NodeFuncDecl, NodeBlock, NodeIf,
		NodeFor, NodeForIn, NodeForOf, NodeWhile, NodeReturn,
		NodeBreak, NodeContinue, NodeExprStmt:
		return true
	default:
		return false
	}
}

// IsExpression returns true if this is an expression-level node.
func (n *Node) IsExpression() bool {
	return !n.IsStatement() && n.Kind != NodeRaw && n.Kind != NodeVarDeclarator
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// Child returns the i-th direct child, or nil if out of range.
func (n *Node) Child(i int) *Node {
	for child := n.FirstChild; child != nil; child = child.Next {
		if i == 0 {
			return child
		}
		i--
	}
	return nil
}

// AppendChild attaches child as the last child of n.
func (n *Node) AppendChild(child *Node) {
	if child == nil {
		return
	}
	child.Parent = n
	child.Prev = n.LastChild
	child.Next = nil
	if n.LastChild != nil {
		n.LastChild.Next = child
	} else {
		n.FirstChild = child
	}
	n.LastChild = child
}

// Text returns the source text this node covers.
// Returns "" if the node has no associated file or an invalid position.
func (n *Node) Text() string {
	if n.File == nil {
		return ""
	}
	return n.File.Slice(n.Pos)
}
