package controlflow

import (
	"github.com/Iced-Tea/hevia-compiler/internal/frontend/ast"
)

// Report is the outcome of annotating a tree
type Report struct {
	Unreachable []Range
	// OpenBranches maps a declaration that does not return on every path
	// to the if/else branches that fall through
	OpenBranches map[ast.NodeID][]ast.NodeID
}

// Annotate sets DoesReturn on every function, constructor, operator and
// class of the tree. Operators and classes take the flag of their
// constructor; a class without a constructor does not return.
func Annotate(tree *ast.Tree) *Report {
	b := NewCFGBuilder(tree)
	report := &Report{OpenBranches: make(map[ast.NodeID][]ast.NodeID)}

	body := func(id, block ast.NodeID) bool {
		cfg := b.BuildBodyCFG(block)
		if AllPathsReturn(cfg) {
			return true
		}
		if open := MissingReturnBranches(cfg); len(open) > 0 {
			report.OpenBranches[id] = open
		}
		return false
	}

	for id := ast.NodeID(0); int(id) < tree.Len(); id++ {
		switch n := tree.Node(id).(type) {
		case *ast.FunctionDeclaration:
			n.DoesReturn = body(id, n.Body)
		case *ast.ConstructorDeclaration:
			n.DoesReturn = body(id, n.Body)
		}
	}

	for id := ast.NodeID(0); int(id) < tree.Len(); id++ {
		switch n := tree.Node(id).(type) {
		case *ast.OperatorDeclaration:
			if ctor, ok := ast.Get[*ast.ConstructorDeclaration](tree, n.Ctor); ok {
				n.DoesReturn = ctor.DoesReturn
				report.inherit(id, n.Ctor)
			}
		case *ast.ClassDeclaration:
			first := firstConstructor(tree, n)
			if ctor, ok := ast.Get[*ast.ConstructorDeclaration](tree, first); ok {
				n.DoesReturn = ctor.DoesReturn
				report.inherit(id, first)
			}
		}
	}

	report.Unreachable = b.Unreachable()
	return report
}

func firstConstructor(tree *ast.Tree, class *ast.ClassDeclaration) ast.NodeID {
	body, ok := ast.Get[*ast.BlockStatement](tree, class.Body)
	if !ok {
		return ast.NoNode
	}
	for _, member := range body.Body {
		if tree.Kind(member) == ast.KindConstructorDeclaration {
			return member
		}
	}
	return ast.NoNode
}

func (r *Report) inherit(decl, ctor ast.NodeID) {
	if open, ok := r.OpenBranches[ctor]; ok {
		r.OpenBranches[decl] = open
	}
}
