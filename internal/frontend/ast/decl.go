package ast

import (
	"github.com/Iced-Tea/hevia-compiler/internal/source"
	"github.com/Iced-Tea/hevia-compiler/internal/tokens"
	"github.com/Iced-Tea/hevia-compiler/internal/types"
)

// TypeExpression binds a name to a declared type. Variables and parameters
// are entered into scope through their TypeExpression.
type TypeExpression struct {
	Name        string
	Type        *types.Descriptor // nil while the type is still to be inferred
	Init        NodeID            // initializer of the owning variable, NoNode for parameters
	IsReference bool              // inout parameter
	IsPointer   bool              // variable passed by reference somewhere (set during analysis)
	source.Location
}

func (t *TypeExpression) INode()                {} // Implements Node interface
func (t *TypeExpression) Kind() Kind            { return KindTypeExpression }
func (t *TypeExpression) Loc() *source.Location { return &t.Location }

// VariableDeclaration represents `var`/`let` declarations
type VariableDeclaration struct {
	Declaration     NodeID // *TypeExpression
	Init            NodeID
	IsConstant      bool
	HasInferredType bool // declared without a type annotation
	IsClassProperty bool // set during analysis
	source.Location
}

func (v *VariableDeclaration) INode()                {} // Implements Node interface
func (v *VariableDeclaration) Kind() Kind            { return KindVariableDeclaration }
func (v *VariableDeclaration) Loc() *source.Location { return &v.Location }

// FunctionDeclaration represents a free function or a class method
type FunctionDeclaration struct {
	Name            string
	Type            *types.Descriptor // declared return type
	Arguments       []NodeID          // *TypeExpression
	Body            NodeID            // *BlockStatement
	DoesReturn      bool              // every path returns (control-flow attribute)
	IsClassProperty bool              // set during analysis
	source.Location
}

func (f *FunctionDeclaration) INode()                {} // Implements Node interface
func (f *FunctionDeclaration) Kind() Kind            { return KindFunctionDeclaration }
func (f *FunctionDeclaration) Loc() *source.Location { return &f.Location }

// ClassDeclaration owns its member declarations; members point at the class as parent
type ClassDeclaration struct {
	Name       string
	Body       NodeID // *BlockStatement
	Ctor       NodeID // registered constructor, NoNode until one is visited
	DoesReturn bool
	source.Location
}

func (c *ClassDeclaration) INode()                {} // Implements Node interface
func (c *ClassDeclaration) Kind() Kind            { return KindClassDeclaration }
func (c *ClassDeclaration) Loc() *source.Location { return &c.Location }

// ConstructorDeclaration is a class initializer, or the signature and body of an operator overload
type ConstructorDeclaration struct {
	Type       *types.Descriptor
	Arguments  []NodeID // *TypeExpression
	Body       NodeID   // *BlockStatement
	DoesReturn bool
	source.Location
}

func (c *ConstructorDeclaration) INode()                {} // Implements Node interface
func (c *ConstructorDeclaration) Kind() Kind            { return KindConstructorDeclaration }
func (c *ConstructorDeclaration) Loc() *source.Location { return &c.Location }

// OperatorDeclaration is a user defined overload of a binary operator
type OperatorDeclaration struct {
	Operator   tokens.TOKEN
	Ctor       NodeID // *ConstructorDeclaration with exactly two arguments
	DoesReturn bool
	source.Location
}

func (o *OperatorDeclaration) INode()                {} // Implements Node interface
func (o *OperatorDeclaration) Kind() Kind            { return KindOperatorDeclaration }
func (o *OperatorDeclaration) Loc() *source.Location { return &o.Location }
