package diagnostics

// Code identifies a kind of semantic error. Every violation the analyzer
// reports carries exactly one code.
type Code string

// Error codes for the semantic pass (T prefix)
const (
	ErrUndefinedIdentifier          Code = "T0001"
	ErrUndefinedType                Code = "T0002"
	ErrTypeMismatch                 Code = "T0003"
	ErrBranchTypeMismatch           Code = "T0004"
	ErrDeclarationTypeMismatch      Code = "T0005"
	ErrOperatorArgumentTypeMismatch Code = "T0006"
	ErrAssignmentTypeMismatch       Code = "T0007"
	ErrReturnTypeMismatch           Code = "T0008"
	ErrConditionTypeMismatch        Code = "T0009"
	ErrReferenceNotMutable          Code = "T0010"
	ErrConstantAsReference          Code = "T0011"
	ErrConstantMutation             Code = "T0012"
	ErrInvalidAssignmentTarget      Code = "T0013"
	ErrUnknownMember                Code = "T0014"
	ErrUnsupportedMemberTarget      Code = "T0015"
	ErrTooManyArguments             Code = "T0016"
	ErrInvalidReturnContext         Code = "T0017"
	ErrVoidReturnViolation          Code = "T0018"
	ErrMissingReturn                Code = "T0019"
	ErrMissingConstructor           Code = "T0020"
	ErrUnsupportedNodeKind          Code = "T0021"
	ErrUnsupportedCalleeKind        Code = "T0022"
	ErrRedeclaration                Code = "T0023"

	// Internal invariant violations (I prefix)
	ErrResolvedTwice Code = "I0001"

	// Input errors (L prefix)
	ErrMalformedTree Code = "L0001"
)

var codeNames = map[Code]string{
	ErrUndefinedIdentifier:          "UndefinedIdentifier",
	ErrUndefinedType:                "UndefinedType",
	ErrTypeMismatch:                 "TypeMismatch",
	ErrBranchTypeMismatch:           "BranchTypeMismatch",
	ErrDeclarationTypeMismatch:      "DeclarationTypeMismatch",
	ErrOperatorArgumentTypeMismatch: "OperatorArgumentTypeMismatch",
	ErrAssignmentTypeMismatch:       "AssignmentTypeMismatch",
	ErrReturnTypeMismatch:           "ReturnTypeMismatch",
	ErrConditionTypeMismatch:        "ConditionTypeMismatch",
	ErrReferenceNotMutable:          "ReferenceNotMutable",
	ErrConstantAsReference:          "ConstantAsReference",
	ErrConstantMutation:             "ConstantMutation",
	ErrInvalidAssignmentTarget:      "InvalidAssignmentTarget",
	ErrUnknownMember:                "UnknownMember",
	ErrUnsupportedMemberTarget:      "UnsupportedMemberTarget",
	ErrTooManyArguments:             "TooManyArguments",
	ErrInvalidReturnContext:         "InvalidReturnContext",
	ErrVoidReturnViolation:          "VoidReturnViolation",
	ErrMissingReturn:                "MissingReturn",
	ErrMissingConstructor:           "MissingConstructor",
	ErrUnsupportedNodeKind:          "UnsupportedNodeKind",
	ErrUnsupportedCalleeKind:        "UnsupportedCalleeKind",
	ErrRedeclaration:                "Redeclaration",
	ErrResolvedTwice:                "ResolvedTwice",
	ErrMalformedTree:                "MalformedTree",
}

// Name returns the symbolic name of the code, e.g. "TypeMismatch"
func (c Code) Name() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "Unknown"
}

func (c Code) String() string {
	return string(c) + " " + c.Name()
}
