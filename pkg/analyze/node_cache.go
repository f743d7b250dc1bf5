package analyze

import "github.com/jsuplift/jsuplift/pkg/jsast"

// nodeCache holds derived per-file collections shared by every rule
// analyzing that file. Without it, each rule needing the reassignment
// set would walk the full tree from every node it visits, turning the
// engine's single traversal into O(rules × nodes) walks.
//
// The cache is built lazily: files where no rule requests a collection
// pay nothing, the first request pays one walk, later requests return
// the stored result. Rules must not mutate returned collections; they
// are shared across all rules for the file.
//
// Not safe for concurrent use. Rules for one file run sequentially and
// each file gets its own cache, so file-level parallelism stays safe.
type nodeCache struct {
	root *jsast.Node

	reassigned map[string]bool
}

func newNodeCache(root *jsast.Node) *nodeCache {
	return &nodeCache{root: root}
}

// reassignedNames returns every identifier observed as the target of an
// assignment, an update expression, or a for-in/for-of head. One walk
// on first call; cached afterwards.
func (nc *nodeCache) reassignedNames() map[string]bool {
	if nc.reassigned != nil {
		return nc.reassigned
	}

	assigned := make(map[string]bool)
	if nc.root != nil {
		//nolint:errcheck // the walk callback never returns an error
		jsast.Walk(nc.root, func(n *jsast.Node) error {
			switch n.Kind {
			case jsast.NodeAssign, jsast.NodeUpdate:
				if target := n.FirstChild; target != nil && target.Kind == jsast.NodeIdent {
					assigned[target.Name] = true
				}
			case jsast.NodeForIn, jsast.NodeForOf:
				if left := n.FirstChild; left != nil && left.Kind == jsast.NodeIdent {
					assigned[left.Name] = true
				}
			}
			return nil
		})
	}

	nc.reassigned = assigned
	return assigned
}
