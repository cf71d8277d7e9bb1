package ast

import (
	"github.com/Iced-Tea/hevia-compiler/internal/source"
)

// NodeID is a stable index into a Tree arena
type NodeID int32

// NoNode marks an absent child or the parent of the root
const NoNode NodeID = -1

// Valid reports whether id refers to a node
func (id NodeID) Valid() bool { return id >= 0 }

// Kind tags every node with its syntactic category
type Kind int

// KindInvalid is reported for ids that are not in the tree
const KindInvalid Kind = -1

const (
	KindProgram Kind = iota
	KindBlockStatement
	KindLiteral
	KindBinaryExpression
	KindTernaryExpression
	KindMemberExpression
	KindCallExpression
	KindTypeExpression
	KindVariableDeclaration
	KindFunctionDeclaration
	KindClassDeclaration
	KindConstructorDeclaration
	KindOperatorDeclaration
	KindIfStatement
	KindReturnStatement
)

var kindNames = [...]string{
	KindProgram:                "Program",
	KindBlockStatement:         "BlockStatement",
	KindLiteral:                "Literal",
	KindBinaryExpression:       "BinaryExpression",
	KindTernaryExpression:      "TernaryExpression",
	KindMemberExpression:       "MemberExpression",
	KindCallExpression:         "CallExpression",
	KindTypeExpression:         "TypeExpression",
	KindVariableDeclaration:    "VariableDeclaration",
	KindFunctionDeclaration:    "FunctionDeclaration",
	KindClassDeclaration:       "ClassDeclaration",
	KindConstructorDeclaration: "ConstructorDeclaration",
	KindOperatorDeclaration:    "OperatorDeclaration",
	KindIfStatement:            "IfStatement",
	KindReturnStatement:        "ReturnStatement",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// KindFromString maps a kind name back to its tag
func KindFromString(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Node is the base interface for all AST nodes
type Node interface {
	INode()
	Kind() Kind
	Loc() *source.Location
}

// Expression is implemented by nodes that produce a value
type Expression interface {
	Node
	Expr()
}

// IsExpressionKind reports whether nodes of kind k carry a resolved type
func IsExpressionKind(k Kind) bool {
	switch k {
	case KindLiteral, KindBinaryExpression, KindTernaryExpression, KindMemberExpression, KindCallExpression:
		return true
	}
	return false
}
