package ast

import (
	"github.com/Iced-Tea/hevia-compiler/internal/tokens"
	"github.com/Iced-Tea/hevia-compiler/internal/types"
)

// Builder assembles a Tree bottom-up, wiring parent links as nodes are
// combined. Type names left empty mean "inferred" for variables and Void
// for functions and constructors.
type Builder struct {
	tree *Tree
}

// NewBuilder creates a builder for a new tree
func NewBuilder(file string) *Builder {
	return &Builder{tree: NewTree(file)}
}

// Tree returns the tree under construction
func (b *Builder) Tree() *Tree { return b.tree }

func (b *Builder) adopt(parent NodeID, children ...NodeID) {
	for _, c := range children {
		b.tree.SetParent(c, parent)
	}
}

func declaredType(name string) *types.Descriptor {
	if name == "" {
		return types.Named(types.DEFAULT_FUNC_TYPE)
	}
	return types.NewFakeLiteral(name)
}

// Program creates the root node
func (b *Builder) Program(body ...NodeID) NodeID {
	id := b.tree.Add(&Program{Body: body})
	b.adopt(id, body...)
	b.tree.Root = id
	return id
}

// Block creates a statement list
func (b *Builder) Block(body ...NodeID) NodeID {
	id := b.tree.Add(&BlockStatement{Body: body})
	b.adopt(id, body...)
	return id
}

// Literal creates a literal of any token kind
func (b *Builder) Literal(tok tokens.TOKEN, value string) NodeID {
	return b.tree.Add(&Literal{Token: tok, Value: value})
}

func (b *Builder) Ident(name string) NodeID { return b.Literal(tokens.IDENTIFIER_TOKEN, name) }
func (b *Builder) Number(raw string) NodeID { return b.Literal(tokens.NUMBER_TOKEN, raw) }
func (b *Builder) String(val string) NodeID { return b.Literal(tokens.STRING_TOKEN, val) }
func (b *Builder) Bool(val string) NodeID { return b.Literal(tokens.BOOLEAN_TOKEN, val) }
func (b *Builder) Null() NodeID { return b.Literal(tokens.NULL_TOKEN, "null") }
func (b *Builder) This() NodeID { return b.Literal(tokens.THIS_TOKEN, "this") }

// Binary creates a binary expression
func (b *Builder) Binary(op tokens.TOKEN, left, right NodeID) NodeID {
	id := b.tree.Add(&BinaryExpression{Operator: op, Left: left, Right: right})
	b.adopt(id, left, right)
	return id
}

// Ternary creates `test ? consequent : alternate`
func (b *Builder) Ternary(test, consequent, alternate NodeID) NodeID {
	id := b.tree.Add(&TernaryExpression{Test: test, Consequent: consequent, Alternate: alternate})
	b.adopt(id, test, consequent, alternate)
	return id
}

// Member creates `object.property`
func (b *Builder) Member(object NodeID, property string) NodeID {
	id := b.tree.Add(&MemberExpression{Object: object, Property: property})
	b.adopt(id, object)
	return id
}

// Call creates a call of a named callee
func (b *Builder) Call(callee string, args ...NodeID) NodeID {
	id := b.tree.Add(&CallExpression{Callee: callee, Arguments: args})
	b.adopt(id, args...)
	return id
}

// Var creates a variable declaration; an empty typeName requests inference
func (b *Builder) Var(name, typeName string, init NodeID, isConst bool) NodeID {
	decl := &TypeExpression{Name: name, Init: init}
	if typeName != "" {
		decl.Type = types.NewFakeLiteral(typeName)
	}
	declID := b.tree.Add(decl)
	id := b.tree.Add(&VariableDeclaration{
		Declaration:     declID,
		Init:            init,
		IsConstant:      isConst,
		HasInferredType: typeName == "",
	})
	b.adopt(id, declID, init)
	return id
}

// Param creates a formal parameter
func (b *Builder) Param(name, typeName string, isReference bool) NodeID {
	return b.tree.Add(&TypeExpression{
		Name:        name,
		Type:        types.NewFakeLiteral(typeName),
		Init:        NoNode,
		IsReference: isReference,
	})
}

// Func creates a function declaration with its body block
func (b *Builder) Func(name, returnType string, params []NodeID, body ...NodeID) NodeID {
	block := b.Block(body...)
	id := b.tree.Add(&FunctionDeclaration{
		Name:      name,
		Type:      declaredType(returnType),
		Arguments: params,
		Body:      block,
	})
	b.adopt(id, params...)
	b.adopt(id, block)
	return id
}

// Class creates a class; its members are parented to the class itself
func (b *Builder) Class(name string, members ...NodeID) NodeID {
	block := b.tree.Add(&BlockStatement{Body: members})
	id := b.tree.Add(&ClassDeclaration{Name: name, Body: block, Ctor: NoNode})
	b.adopt(id, block)
	b.adopt(id, members...)
	return id
}

// Ctor creates a constructor declaration
func (b *Builder) Ctor(returnType string, params []NodeID, body ...NodeID) NodeID {
	block := b.Block(body...)
	id := b.tree.Add(&ConstructorDeclaration{
		Type:      declaredType(returnType),
		Arguments: params,
		Body:      block,
	})
	b.adopt(id, params...)
	b.adopt(id, block)
	return id
}

// Operator creates an overload whose signature and body live in ctor
func (b *Builder) Operator(op tokens.TOKEN, ctor NodeID) NodeID {
	id := b.tree.Add(&OperatorDeclaration{Operator: op, Ctor: ctor})
	b.adopt(id, ctor)
	return id
}

// If creates an if statement; alternate is another If/Else or NoNode
func (b *Builder) If(test NodeID, consequent []NodeID, alternate NodeID) NodeID {
	block := b.Block(consequent...)
	id := b.tree.Add(&IfStatement{Test: test, Consequent: block, Alternate: alternate})
	b.adopt(id, test, block, alternate)
	return id
}

// Else creates a bare else branch
func (b *Builder) Else(consequent ...NodeID) NodeID {
	return b.If(NoNode, consequent, NoNode)
}

// Return creates a return statement; arg may be NoNode
func (b *Builder) Return(arg NodeID) NodeID {
	id := b.tree.Add(&ReturnStatement{Argument: arg})
	b.adopt(id, arg)
	return id
}
