package diagnostics

import (
	"errors"
	"fmt"

	"github.com/Iced-Tea/hevia-compiler/internal/frontend/ast"
	"github.com/Iced-Tea/hevia-compiler/internal/source"
)

// SemanticError is the single failure type of the analysis pass. The first
// SemanticError aborts the pass; it is returned, never collected.
type SemanticError struct {
	Code     Code
	Message  string
	Node     ast.NodeID       // originating node, NoNode when unknown
	Location *source.Location // position of Node, may be nil
}

// Errorf builds a SemanticError for a node
func Errorf(code Code, tree *ast.Tree, node ast.NodeID, format string, args ...any) *SemanticError {
	err := &SemanticError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Node:    node,
	}
	if tree != nil {
		if n := tree.Node(node); n != nil && !n.Loc().IsZero() {
			err.Location = n.Loc()
		}
	}
	return err
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("[%s] %s", string(e.Code), e.Message)
}

// CodeOf extracts the code of a SemanticError anywhere in err's chain
func CodeOf(err error) (Code, bool) {
	var semErr *SemanticError
	if errors.As(err, &semErr) {
		return semErr.Code, true
	}
	return "", false
}

// HasCode reports whether err carries the given code
func HasCode(err error, code Code) bool {
	got, ok := CodeOf(err)
	return ok && got == code
}

// ToDiagnostic converts the error into a printable diagnostic
func (e *SemanticError) ToDiagnostic(filepath string) *Diagnostic {
	diag := NewError(e.Message).WithCode(string(e.Code))
	if e.Location != nil {
		if file := e.Location.File(); file != "" {
			filepath = file
		}
		diag.WithPrimaryLabel(filepath, e.Location, e.Code.Name())
	} else {
		diag.FilePath = filepath
	}
	if help := HelpFor(e.Code); help != "" {
		diag.WithHelp(help)
	}
	return diag
}
