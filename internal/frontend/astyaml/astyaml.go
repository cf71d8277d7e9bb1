// Package astyaml loads a parsed program from its YAML form. Every node is
// a mapping with a `kind` and the fields of that kind; child nodes nest.
//
//	kind: Program
//	body:
//	  - kind: VariableDeclaration
//	    name: x
//	    type: Int
//	    init: {kind: Literal, token: number, value: "5"}
//
// Positions are optional (`line`, `column`, `endLine`, `endColumn`).
package astyaml

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Iced-Tea/hevia-compiler/internal/frontend/ast"
	"github.com/Iced-Tea/hevia-compiler/internal/source"
	"github.com/Iced-Tea/hevia-compiler/internal/tokens"

	"gopkg.in/yaml.v3"
)

// nodeDisk is the on-disk shape shared by every node kind
type nodeDisk struct {
	Kind      string `yaml:"kind"`
	Line      int    `yaml:"line"`
	Column    int    `yaml:"column"`
	EndLine   int    `yaml:"endLine"`
	EndColumn int    `yaml:"endColumn"`

	// Literal
	Token string `yaml:"token"`
	Value string `yaml:"value"`

	// BinaryExpression, OperatorDeclaration
	Operator      string    `yaml:"operator"`
	Left          *nodeDisk `yaml:"left"`
	Right         *nodeDisk `yaml:"right"`
	Parenthesized bool      `yaml:"parenthesized"`

	// TernaryExpression, IfStatement
	Test       *nodeDisk   `yaml:"test"`
	Consequent []*nodeDisk `yaml:"consequent"`
	Then       *nodeDisk   `yaml:"then"`
	Alternate  *nodeDisk   `yaml:"alternate"`

	// MemberExpression
	Object   *nodeDisk `yaml:"object"`
	Property string    `yaml:"property"`

	// CallExpression
	Callee    string      `yaml:"callee"`
	Arguments []*nodeDisk `yaml:"arguments"`

	// declarations
	Name       string      `yaml:"name"`
	Type       string      `yaml:"type"`
	Init       *nodeDisk   `yaml:"init"`
	Constant   bool        `yaml:"constant"`
	Reference  bool        `yaml:"reference"`
	Params     []*nodeDisk `yaml:"params"`
	Body       []*nodeDisk `yaml:"body"`
	Ctor       *nodeDisk   `yaml:"ctor"`
	DoesReturn bool        `yaml:"doesReturn"`

	// ReturnStatement
	Argument *nodeDisk `yaml:"argument"`
}

var literalTokens = map[string]tokens.TOKEN{
	"identifier": tokens.IDENTIFIER_TOKEN,
	"number":     tokens.NUMBER_TOKEN,
	"string":     tokens.STRING_TOKEN,
	"boolean":    tokens.BOOLEAN_TOKEN,
	"null":       tokens.NULL_TOKEN,
	"this":       tokens.THIS_TOKEN,
}

// Load reads a YAML program from disk
func Load(path string) (*ast.Tree, error) {
	if path == "" {
		return nil, fmt.Errorf("astyaml: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("astyaml: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Decode(file, path)
}

// Decode reads a YAML program. filename is recorded in every node location.
func Decode(r io.Reader, filename string) (*ast.Tree, error) {
	var raw nodeDisk
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("astyaml: parse %s: empty document", filename)
		}
		return nil, fmt.Errorf("astyaml: parse %s: %w", filename, err)
	}
	if raw.Kind != ast.KindProgram.String() {
		return nil, fmt.Errorf("astyaml: %s: root must be a Program, got %q", filename, raw.Kind)
	}

	l := &loader{b: ast.NewBuilder(filename), file: filename}
	if _, err := l.node(&raw); err != nil {
		return nil, err
	}
	return l.b.Tree(), nil
}

type loader struct {
	b    *ast.Builder
	file string
}

func (l *loader) errorf(n *nodeDisk, format string, args ...any) error {
	return fmt.Errorf("astyaml: %s:%d:%d: %s", l.file, n.Line, n.Column, fmt.Sprintf(format, args...))
}

// optional builds n, or returns NoNode when it is absent
func (l *loader) optional(n *nodeDisk) (ast.NodeID, error) {
	if n == nil {
		return ast.NoNode, nil
	}
	return l.node(n)
}

func (l *loader) required(parent *nodeDisk, field string, n *nodeDisk) (ast.NodeID, error) {
	if n == nil {
		return ast.NoNode, l.errorf(parent, "%s is missing %q", parent.Kind, field)
	}
	return l.node(n)
}

func (l *loader) list(ns []*nodeDisk) ([]ast.NodeID, error) {
	ids := make([]ast.NodeID, 0, len(ns))
	for _, n := range ns {
		id, err := l.node(n)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (l *loader) params(ns []*nodeDisk) ([]ast.NodeID, error) {
	ids := make([]ast.NodeID, 0, len(ns))
	for _, n := range ns {
		if n.Name == "" || n.Type == "" {
			return nil, l.errorf(n, "parameter needs a name and a type")
		}
		id := l.b.Param(n.Name, n.Type, n.Reference)
		l.locate(id, n)
		ids = append(ids, id)
	}
	return ids, nil
}

func (l *loader) operator(n *nodeDisk) (tokens.TOKEN, error) {
	tok := tokens.TOKEN(n.Operator)
	if !tokens.IsOperator(tok) {
		return "", l.errorf(n, "unknown operator %q", n.Operator)
	}
	return tok, nil
}

func (l *loader) node(n *nodeDisk) (ast.NodeID, error) {
	id, err := l.build(n)
	if err != nil {
		return ast.NoNode, err
	}
	l.locate(id, n)
	return id, nil
}

func (l *loader) locate(id ast.NodeID, n *nodeDisk) {
	if n.Line <= 0 {
		return
	}
	var end *source.Position
	if n.EndLine > 0 {
		end = &source.Position{Line: n.EndLine, Column: n.EndColumn}
	}
	file := l.file
	loc := source.NewLocation(&file, &source.Position{Line: n.Line, Column: n.Column}, end)
	*l.b.Tree().Node(id).Loc() = *loc
}

func (l *loader) build(n *nodeDisk) (ast.NodeID, error) {
	kind, ok := ast.KindFromString(n.Kind)
	if !ok {
		return ast.NoNode, l.errorf(n, "unknown node kind %q", n.Kind)
	}

	switch kind {
	case ast.KindProgram:
		body, err := l.list(n.Body)
		if err != nil {
			return ast.NoNode, err
		}
		return l.b.Program(body...), nil

	case ast.KindBlockStatement:
		body, err := l.list(n.Body)
		if err != nil {
			return ast.NoNode, err
		}
		return l.b.Block(body...), nil

	case ast.KindLiteral:
		tok, ok := literalTokens[n.Token]
		if !ok {
			return ast.NoNode, l.errorf(n, "unknown literal token %q", n.Token)
		}
		if tok == tokens.THIS_TOKEN {
			return l.b.This(), nil
		}
		return l.b.Literal(tok, n.Value), nil

	case ast.KindBinaryExpression:
		op, err := l.operator(n)
		if err != nil {
			return ast.NoNode, err
		}
		left, err := l.required(n, "left", n.Left)
		if err != nil {
			return ast.NoNode, err
		}
		right, err := l.required(n, "right", n.Right)
		if err != nil {
			return ast.NoNode, err
		}
		id := l.b.Binary(op, left, right)
		bin, _ := ast.Get[*ast.BinaryExpression](l.b.Tree(), id)
		bin.IsParenthesized = n.Parenthesized
		return id, nil

	case ast.KindTernaryExpression:
		test, err := l.required(n, "test", n.Test)
		if err != nil {
			return ast.NoNode, err
		}
		then, err := l.required(n, "then", n.Then)
		if err != nil {
			return ast.NoNode, err
		}
		alt, err := l.required(n, "alternate", n.Alternate)
		if err != nil {
			return ast.NoNode, err
		}
		return l.b.Ternary(test, then, alt), nil

	case ast.KindMemberExpression:
		object, err := l.required(n, "object", n.Object)
		if err != nil {
			return ast.NoNode, err
		}
		if n.Property == "" {
			return ast.NoNode, l.errorf(n, "MemberExpression is missing \"property\"")
		}
		return l.b.Member(object, n.Property), nil

	case ast.KindCallExpression:
		if n.Callee == "" {
			return ast.NoNode, l.errorf(n, "CallExpression is missing \"callee\"")
		}
		args, err := l.list(n.Arguments)
		if err != nil {
			return ast.NoNode, err
		}
		return l.b.Call(n.Callee, args...), nil

	case ast.KindVariableDeclaration:
		if n.Name == "" {
			return ast.NoNode, l.errorf(n, "VariableDeclaration is missing \"name\"")
		}
		init, err := l.optional(n.Init)
		if err != nil {
			return ast.NoNode, err
		}
		return l.b.Var(n.Name, n.Type, init, n.Constant), nil

	case ast.KindFunctionDeclaration:
		params, err := l.params(n.Params)
		if err != nil {
			return ast.NoNode, err
		}
		body, err := l.list(n.Body)
		if err != nil {
			return ast.NoNode, err
		}
		id := l.b.Func(n.Name, n.Type, params, body...)
		fn, _ := ast.Get[*ast.FunctionDeclaration](l.b.Tree(), id)
		fn.DoesReturn = n.DoesReturn
		return id, nil

	case ast.KindConstructorDeclaration:
		params, err := l.params(n.Params)
		if err != nil {
			return ast.NoNode, err
		}
		body, err := l.list(n.Body)
		if err != nil {
			return ast.NoNode, err
		}
		id := l.b.Ctor(n.Type, params, body...)
		ctor, _ := ast.Get[*ast.ConstructorDeclaration](l.b.Tree(), id)
		ctor.DoesReturn = n.DoesReturn
		return id, nil

	case ast.KindClassDeclaration:
		members, err := l.list(n.Body)
		if err != nil {
			return ast.NoNode, err
		}
		id := l.b.Class(n.Name, members...)
		class, _ := ast.Get[*ast.ClassDeclaration](l.b.Tree(), id)
		class.DoesReturn = n.DoesReturn
		return id, nil

	case ast.KindOperatorDeclaration:
		op, err := l.operator(n)
		if err != nil {
			return ast.NoNode, err
		}
		if n.Ctor == nil || n.Ctor.Kind != ast.KindConstructorDeclaration.String() {
			return ast.NoNode, l.errorf(n, "OperatorDeclaration needs a ConstructorDeclaration \"ctor\"")
		}
		ctor, err := l.node(n.Ctor)
		if err != nil {
			return ast.NoNode, err
		}
		id := l.b.Operator(op, ctor)
		decl, _ := ast.Get[*ast.OperatorDeclaration](l.b.Tree(), id)
		decl.DoesReturn = n.DoesReturn
		return id, nil

	case ast.KindIfStatement:
		test, err := l.optional(n.Test)
		if err != nil {
			return ast.NoNode, err
		}
		consequent, err := l.list(n.Consequent)
		if err != nil {
			return ast.NoNode, err
		}
		if n.Alternate != nil && n.Alternate.Kind != ast.KindIfStatement.String() {
			return ast.NoNode, l.errorf(n.Alternate, "alternate must be an IfStatement, got %q", n.Alternate.Kind)
		}
		alt, err := l.optional(n.Alternate)
		if err != nil {
			return ast.NoNode, err
		}
		return l.b.If(test, consequent, alt), nil

	case ast.KindReturnStatement:
		arg, err := l.optional(n.Argument)
		if err != nil {
			return ast.NoNode, err
		}
		return l.b.Return(arg), nil
	}

	return ast.NoNode, l.errorf(n, "%s cannot appear as a statement", n.Kind)
}
