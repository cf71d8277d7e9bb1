package ast

import (
	"errors"
	"fmt"

	"github.com/Iced-Tea/hevia-compiler/internal/types"
)

// ErrAlreadyResolved is returned when a node's resolved type is written twice
var ErrAlreadyResolved = errors.New("resolved type already set")

// Tree is an arena holding every node of one program. Parent links are
// stored as indices so upward queries never own their target.
type Tree struct {
	File string
	Root NodeID

	nodes    []Node
	parents  []NodeID
	resolved []*types.Descriptor // write-once, indexed by NodeID
}

// NewTree creates an empty tree for a file
func NewTree(file string) *Tree {
	return &Tree{File: file, Root: NoNode}
}

// Add appends a node without a parent and returns its id
func (t *Tree) Add(n Node) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	t.parents = append(t.parents, NoNode)
	t.resolved = append(t.resolved, nil)
	return id
}

// SetParent links child to parent; NoNode children are ignored
func (t *Tree) SetParent(child, parent NodeID) {
	if !t.Has(child) {
		return
	}
	t.parents[child] = parent
}

// Has reports whether id is a node of this tree
func (t *Tree) Has(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Len returns the number of nodes
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node for id, nil when absent
func (t *Tree) Node(id NodeID) Node {
	if !t.Has(id) {
		return nil
	}
	return t.nodes[id]
}

// Kind returns the kind of a node, KindInvalid when absent
func (t *Tree) Kind(id NodeID) Kind {
	if !t.Has(id) {
		return KindInvalid
	}
	return t.nodes[id].Kind()
}

// Parent returns the parent of id or NoNode
func (t *Tree) Parent(id NodeID) NodeID {
	if !t.Has(id) {
		return NoNode
	}
	return t.parents[id]
}

// ParentNode returns the parent node of id, nil for the root
func (t *Tree) ParentNode(id NodeID) Node {
	return t.Node(t.Parent(id))
}

// ResolvedType returns the cached type of a node, nil when not resolved yet
func (t *Tree) ResolvedType(id NodeID) *types.Descriptor {
	if !t.Has(id) {
		return nil
	}
	return t.resolved[id]
}

// SetResolvedType caches the type of a node. A node is typed at most once.
func (t *Tree) SetResolvedType(id NodeID, d *types.Descriptor) error {
	if !t.Has(id) {
		return fmt.Errorf("node %d: not in tree", id)
	}
	if t.resolved[id] != nil {
		return fmt.Errorf("node %d (%s): %w", id, t.Kind(id), ErrAlreadyResolved)
	}
	t.resolved[id] = d
	return nil
}

// Get returns the node for id asserted to T
func Get[T Node](t *Tree, id NodeID) (T, bool) {
	n, ok := t.Node(id).(T)
	return n, ok
}

// Children returns the child ids of a node in source order
func (t *Tree) Children(id NodeID) []NodeID {
	var out []NodeID
	add := func(ids ...NodeID) {
		for _, c := range ids {
			if c.Valid() {
				out = append(out, c)
			}
		}
	}

	switch n := t.Node(id).(type) {
	case *Program:
		add(n.Body...)
	case *BlockStatement:
		add(n.Body...)
	case *BinaryExpression:
		add(n.Left, n.Right)
	case *TernaryExpression:
		add(n.Test, n.Consequent, n.Alternate)
	case *MemberExpression:
		add(n.Object)
	case *CallExpression:
		add(n.Arguments...)
	case *VariableDeclaration:
		add(n.Declaration, n.Init)
	case *FunctionDeclaration:
		add(n.Arguments...)
		add(n.Body)
	case *ClassDeclaration:
		add(n.Body)
	case *ConstructorDeclaration:
		add(n.Arguments...)
		add(n.Body)
	case *OperatorDeclaration:
		add(n.Ctor)
	case *IfStatement:
		add(n.Test, n.Consequent, n.Alternate)
	case *ReturnStatement:
		add(n.Argument)
	}
	return out
}
