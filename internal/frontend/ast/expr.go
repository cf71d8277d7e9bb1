package ast

import (
	"github.com/Iced-Tea/hevia-compiler/internal/source"
	"github.com/Iced-Tea/hevia-compiler/internal/tokens"
)

// Literal is an identifier, `this`, or a numeric/string/boolean/null literal
type Literal struct {
	Token       tokens.TOKEN // literal kind
	Value       string       // raw text (identifier name for identifiers)
	IsReference bool         // bound to an inout parameter (set during analysis)
	source.Location
}

func (l *Literal) INode()                {} // Implements Node interface
func (l *Literal) Expr()                 {} // Expr is a marker interface for all expressions
func (l *Literal) Kind() Kind            { return KindLiteral }
func (l *Literal) Loc() *source.Location { return &l.Location }

// IsIdentifier reports whether the literal names a binding
func (l *Literal) IsIdentifier() bool { return l.Token == tokens.IDENTIFIER_TOKEN }

// IsThis reports whether the literal is the implicit receiver
func (l *Literal) IsThis() bool { return l.Token == tokens.THIS_TOKEN }

// BinaryExpression covers native and overloaded operators, assignment included
type BinaryExpression struct {
	Operator        tokens.TOKEN
	Left            NodeID
	Right           NodeID
	IsParenthesized bool
	source.Location
}

func (b *BinaryExpression) INode()                {} // Implements Node interface
func (b *BinaryExpression) Expr()                 {} // Expr is a marker interface for all expressions
func (b *BinaryExpression) Kind() Kind            { return KindBinaryExpression }
func (b *BinaryExpression) Loc() *source.Location { return &b.Location }

// TernaryExpression represents `test ? consequent : alternate`
type TernaryExpression struct {
	Test       NodeID
	Consequent NodeID
	Alternate  NodeID
	source.Location
}

func (t *TernaryExpression) INode()                {} // Implements Node interface
func (t *TernaryExpression) Expr()                 {} // Expr is a marker interface for all expressions
func (t *TernaryExpression) Kind() Kind            { return KindTernaryExpression }
func (t *TernaryExpression) Loc() *source.Location { return &t.Location }

// MemberExpression represents `object.property`
type MemberExpression struct {
	Object     NodeID
	Property   string
	IsAbsolute bool // object is a literal, no runtime lookup needed (set during analysis)
	source.Location
}

func (m *MemberExpression) INode()                {} // Implements Node interface
func (m *MemberExpression) Expr()                 {} // Expr is a marker interface for all expressions
func (m *MemberExpression) Kind() Kind            { return KindMemberExpression }
func (m *MemberExpression) Loc() *source.Location { return &m.Location }

// CallExpression represents a function call or a class construction
type CallExpression struct {
	Callee              string
	Arguments           []NodeID
	IsInstantiatedClass bool // callee resolved to a class (set during analysis)
	source.Location
}

func (c *CallExpression) INode()                {} // Implements Node interface
func (c *CallExpression) Expr()                 {} // Expr is a marker interface for all expressions
func (c *CallExpression) Kind() Kind            { return KindCallExpression }
func (c *CallExpression) Loc() *source.Location { return &c.Location }
