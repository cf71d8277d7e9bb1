package diagnostics

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/Iced-Tea/hevia-compiler/colors"
	str "github.com/Iced-Tea/hevia-compiler/internal/utils/strings"
)

const (
	compileFailedMsg          = "\nCompilation failed with %s"
	andWarningMsg             = " and %s"
	compileSuccessWithWarning = "\nCompilation succeeded with %s\n"
)

// DiagnosticBag collects diagnostics of one compilation.
// The analysis is single threaded, so the bag is not locked.
type DiagnosticBag struct {
	filepath    string
	sources     *SourceCache
	diagnostics []*Diagnostic
	errorCount  int
	warnCount   int
}

// NewDiagnosticBag creates a new diagnostic bag for a file
func NewDiagnosticBag(filepath string) *DiagnosticBag {
	return &DiagnosticBag{filepath: filepath, sources: NewSourceCache()}
}

// AddSourceContent registers in-memory content so labels can show source lines
func (db *DiagnosticBag) AddSourceContent(filepath, content string) {
	db.sources.AddSource(filepath, content)
}

// Add adds a diagnostic to the bag
func (db *DiagnosticBag) Add(diag *Diagnostic) {
	db.diagnostics = append(db.diagnostics, diag)
	switch diag.Severity {
	case Error:
		db.errorCount++
	case Warning:
		db.warnCount++
	}
}

// AddError converts err into a diagnostic. Semantic errors keep their code
// and location; anything else becomes a plain error.
func (db *DiagnosticBag) AddError(err error) {
	if err == nil {
		return
	}
	var semErr *SemanticError
	if errors.As(err, &semErr) {
		db.Add(semErr.ToDiagnostic(db.filepath))
		return
	}
	diag := NewError(err.Error())
	diag.FilePath = db.filepath
	db.Add(diag)
}

func (db *DiagnosticBag) HasErrors() bool  { return db.errorCount > 0 }
func (db *DiagnosticBag) ErrorCount() int   { return db.errorCount }
func (db *DiagnosticBag) WarningCount() int { return db.warnCount }

// Diagnostics returns a copy of all diagnostics
func (db *DiagnosticBag) Diagnostics() []*Diagnostic {
	result := make([]*Diagnostic, len(db.diagnostics))
	copy(result, db.diagnostics)
	return result
}

// EmitAll prints every diagnostic followed by a summary line
func (db *DiagnosticBag) EmitAll(w io.Writer) {
	emitter := NewEmitterWithCache(w, db.sources)
	for _, diag := range db.diagnostics {
		emitter.Emit(diag)
	}
	db.printSummary(w)
}

// EmitAllToString is EmitAll into a string
func (db *DiagnosticBag) EmitAllToString() string {
	var buf bytes.Buffer
	db.EmitAll(&buf)
	return buf.String()
}

func (db *DiagnosticBag) printSummary(w io.Writer) {
	if db.errorCount > 0 {
		colors.RED.Fprintf(w, compileFailedMsg, str.Count(db.errorCount, "error", "errors"))
		if db.warnCount > 0 {
			colors.RED.Fprintf(w, andWarningMsg, str.Count(db.warnCount, "warning", "warnings"))
		}
		fmt.Fprintln(w)
	} else if db.warnCount > 0 {
		colors.ORANGE.Fprintf(w, compileSuccessWithWarning, str.Count(db.warnCount, "warning", "warnings"))
	}
}

// Clear removes all diagnostics
func (db *DiagnosticBag) Clear() {
	db.diagnostics = nil
	db.errorCount = 0
	db.warnCount = 0
}
