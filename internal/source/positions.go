package source

// Position represents a specific location in the source code with line and column information.
type Position struct {
	Line   int // Line number in the source code.
	Column int // Column number in the source code.
}
