package ast

import (
	"github.com/Iced-Tea/hevia-compiler/internal/source"
)

// Program is the root of a tree
type Program struct {
	Body []NodeID
	source.Location
}

func (p *Program) INode()                {} // Implements Node interface
func (p *Program) Kind() Kind            { return KindProgram }
func (p *Program) Loc() *source.Location { return &p.Location }

// BlockStatement represents a braced statement list
type BlockStatement struct {
	Body []NodeID
	source.Location
}

func (b *BlockStatement) INode()                {} // Implements Node interface
func (b *BlockStatement) Kind() Kind            { return KindBlockStatement }
func (b *BlockStatement) Loc() *source.Location { return &b.Location }

// IfStatement represents if / else if / else. A bare else is an IfStatement without a test.
type IfStatement struct {
	Test       NodeID // NoNode for a bare else
	Consequent NodeID // *BlockStatement
	Alternate  NodeID // *IfStatement or NoNode
	source.Location
}

func (i *IfStatement) INode()                {} // Implements Node interface
func (i *IfStatement) Kind() Kind            { return KindIfStatement }
func (i *IfStatement) Loc() *source.Location { return &i.Location }

// IsElse reports whether the statement is a bare else branch
func (i *IfStatement) IsElse() bool { return !i.Test.Valid() }

// ReturnStatement represents `return [argument]`
type ReturnStatement struct {
	Argument NodeID // NoNode for a bare return
	source.Location
}

func (r *ReturnStatement) INode()                {} // Implements Node interface
func (r *ReturnStatement) Kind() Kind            { return KindReturnStatement }
func (r *ReturnStatement) Loc() *source.Location { return &r.Location }
