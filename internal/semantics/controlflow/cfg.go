package controlflow

import (
	"github.com/Iced-Tea/hevia-compiler/internal/frontend/ast"
)

// ControlFlowGraph represents the control flow structure of one body
type ControlFlowGraph struct {
	Entry *BasicBlock
	Exit  *BasicBlock // virtual exit block
}

// BasicBlock represents a sequence of statements with single entry and exit
type BasicBlock struct {
	ID           int
	Nodes        []ast.NodeID
	Successors   []*BasicBlock
	Predecessors []*BasicBlock
	Terminator   ControlFlowKind
	Reachable    bool
	Returns      bool       // block ends in a return
	CanFallThru  bool       // execution can continue past the block
	BranchKind   string     // "if", "else" or empty
	Origin       ast.NodeID // statement that opened the branch
}

// ControlFlowKind represents how a basic block terminates
type ControlFlowKind int

const (
	FlowFallthrough ControlFlowKind = iota
	FlowReturn
	FlowConditional
)

// Range is a run of statements that can never execute
type Range struct {
	Start ast.NodeID
	End   ast.NodeID
}

// CFGBuilder builds control flow graphs from a tree
type CFGBuilder struct {
	tree         *ast.Tree
	blockCounter int
	unreachable  []Range
}

// NewCFGBuilder creates a new control flow graph builder
func NewCFGBuilder(tree *ast.Tree) *CFGBuilder {
	return &CFGBuilder{tree: tree}
}

// Unreachable returns every dead statement range found so far
func (b *CFGBuilder) Unreachable() []Range { return b.unreachable }

func (b *CFGBuilder) newBlock() *BasicBlock {
	b.blockCounter++
	return &BasicBlock{
		ID:          b.blockCounter,
		Terminator:  FlowFallthrough,
		CanFallThru: true,
		Origin:      ast.NoNode,
	}
}

func addEdge(from, to *BasicBlock) {
	if from != nil && to != nil {
		from.Successors = append(from.Successors, to)
		to.Predecessors = append(to.Predecessors, from)
	}
}

// BuildBodyCFG builds the graph of a function, constructor or operator body
func (b *CFGBuilder) BuildBodyCFG(body ast.NodeID) *ControlFlowGraph {
	cfg := &ControlFlowGraph{
		Entry: b.newBlock(),
		Exit:  b.newBlock(),
	}
	cfg.Entry.Reachable = true

	current := b.buildBlock(body, cfg.Entry, cfg.Exit)
	if current != nil && current.CanFallThru {
		addEdge(current, cfg.Exit)
	}
	return cfg
}

func (b *CFGBuilder) buildBlock(id ast.NodeID, current, exit *BasicBlock) *BasicBlock {
	block, ok := ast.Get[*ast.BlockStatement](b.tree, id)
	if !ok {
		return current
	}

	dead := Range{Start: ast.NoNode, End: ast.NoNode}
	for _, stmt := range block.Body {
		if current == nil {
			if !dead.Start.Valid() {
				dead.Start = stmt
			}
			dead.End = stmt
			continue
		}
		current = b.buildNode(stmt, current, exit)
	}
	if dead.Start.Valid() {
		b.unreachable = append(b.unreachable, dead)
	}
	return current
}

func (b *CFGBuilder) buildNode(id ast.NodeID, current, exit *BasicBlock) *BasicBlock {
	switch n := b.tree.Node(id).(type) {
	case *ast.ReturnStatement:
		current.Nodes = append(current.Nodes, id)
		current.Terminator = FlowReturn
		current.Returns = true
		current.CanFallThru = false
		addEdge(current, exit)
		return nil
	case *ast.IfStatement:
		return b.buildIf(id, n, current, exit)
	case *ast.BlockStatement:
		return b.buildBlock(id, current, exit)
	default:
		// declarations and expressions do not change the flow
		current.Nodes = append(current.Nodes, id)
		return current
	}
}

func (b *CFGBuilder) branch(kind string, origin ast.NodeID, from *BasicBlock) *BasicBlock {
	blk := b.newBlock()
	blk.Reachable = from.Reachable
	blk.BranchKind = kind
	blk.Origin = origin
	addEdge(from, blk)
	return blk
}

// buildIf handles an if statement and its else-if / else chain
func (b *CFGBuilder) buildIf(id ast.NodeID, stmt *ast.IfStatement, current, exit *BasicBlock) *BasicBlock {
	current.Nodes = append(current.Nodes, id)
	current.Terminator = FlowConditional

	afterIf := b.buildBlock(stmt.Consequent, b.branch("if", id, current), exit)

	merge := b.newBlock()
	if afterIf != nil && afterIf.CanFallThru {
		addEdge(afterIf, merge)
		merge.Reachable = true
	}

	alt, hasElse := ast.Get[*ast.IfStatement](b.tree, stmt.Alternate)
	if !hasElse {
		// no else: the condition can be false
		addEdge(current, merge)
		merge.Reachable = true
		return merge
	}

	elseBlock := b.branch("else", stmt.Alternate, current)
	var afterElse *BasicBlock
	if alt.IsElse() {
		afterElse = b.buildBlock(alt.Consequent, elseBlock, exit)
	} else {
		afterElse = b.buildIf(stmt.Alternate, alt, elseBlock, exit)
	}
	if afterElse != nil && afterElse.CanFallThru {
		addEdge(afterElse, merge)
		merge.Reachable = true
	}

	if !merge.Reachable {
		return nil
	}
	return merge
}

// AllPathsReturn checks if all paths through the CFG lead to a return
func AllPathsReturn(cfg *ControlFlowGraph) bool {
	visited := make(map[*BasicBlock]bool)
	return !canReachExitWithoutReturn(cfg.Entry, cfg.Exit, visited)
}

func canReachExitWithoutReturn(current, exit *BasicBlock, visited map[*BasicBlock]bool) bool {
	if current == nil || visited[current] {
		return false
	}
	visited[current] = true

	if current == exit {
		return true
	}
	if current.Returns {
		return false
	}
	for _, succ := range current.Successors {
		if canReachExitWithoutReturn(succ, exit, visited) {
			return true
		}
	}
	return false
}

// MissingReturnBranches returns the if/else branches through which
// execution reaches the end of the body without returning
func MissingReturnBranches(cfg *ControlFlowGraph) []ast.NodeID {
	var out []ast.NodeID
	seen := make(map[*BasicBlock]bool)
	queue := append([]*BasicBlock(nil), cfg.Exit.Predecessors...)
	for len(queue) > 0 {
		blk := queue[0]
		queue = queue[1:]
		if seen[blk] || blk.Returns {
			continue
		}
		seen[blk] = true
		if blk.BranchKind != "" {
			out = append(out, blk.Origin)
			continue
		}
		queue = append(queue, blk.Predecessors...)
	}
	return out
}
