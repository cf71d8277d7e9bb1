package diagnostics

import (
	"strings"

	"github.com/Iced-Tea/hevia-compiler/internal/types"
)

// Suggestions attached to printed diagnostics

var helpByCode = map[Code]string{
	ErrUndefinedIdentifier:          "check if the symbol is declared before it is used",
	ErrUndefinedType:                "declare a class with this name or use one of " + nativeTypeList(),
	ErrOperatorArgumentTypeMismatch: "operands must match the overload's parameter types exactly",
	ErrReferenceNotMutable:          "inout arguments must be plain variable names",
	ErrConstantAsReference:          "declare the variable with 'var' to pass it as inout",
	ErrConstantMutation:             "declare the variable with 'var' to allow assignment",
	ErrMissingReturn:                "make sure every branch returns, or add a final return",
	ErrMissingConstructor:           "add an 'init' declaration to the class",
	ErrInvalidReturnContext:         "return statements are only allowed inside functions, operators and initializers",
	ErrRedeclaration:                "use a different name or remove one of the declarations",
}

// HelpFor returns the fix suggestion for a code, or an empty string
func HelpFor(code Code) string {
	return helpByCode[code]
}

func nativeTypeList() string {
	names := types.NativeTypeNames()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return strings.Join(out, ", ")
}
