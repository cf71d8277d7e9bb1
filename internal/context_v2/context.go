// Package context_v2 provides the central compilation state shared by the
// phases of one analysis run: the tree being checked, the scope facade, the
// diagnostics bag and the phase the run has reached.
package context_v2

import (
	"fmt"
	"io"
	"os"

	"github.com/Iced-Tea/hevia-compiler/colors"
	"github.com/Iced-Tea/hevia-compiler/internal/diagnostics"
	"github.com/Iced-Tea/hevia-compiler/internal/frontend/ast"
	"github.com/Iced-Tea/hevia-compiler/internal/semantics/scope"
	"github.com/Iced-Tea/hevia-compiler/internal/source"
)

// Phase tracks how far the tree has progressed
//
// Phase progression is sequential:
// NotStarted -> Loaded -> FlowAnalyzed -> Checked
type Phase int

const (
	PhaseNotStarted   Phase = iota // nothing loaded yet
	PhaseLoaded                    // tree decoded
	PhaseFlowAnalyzed              // doesReturn flags available
	PhaseChecked                   // every node resolved
)

var phasePrerequisites = map[Phase]Phase{
	PhaseLoaded:       PhaseNotStarted,
	PhaseFlowAnalyzed: PhaseLoaded,
	PhaseChecked:      PhaseFlowAnalyzed,
}

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseLoaded:
		return "Loaded"
	case PhaseFlowAnalyzed:
		return "FlowAnalyzed"
	case PhaseChecked:
		return "Checked"
	default:
		return "Unknown"
	}
}

// ControlFlowMode selects where doesReturn flags come from
type ControlFlowMode string

const (
	ControlFlowAnalyze ControlFlowMode = "analyze" // compute from the tree
	ControlFlowInput   ControlFlowMode = "input"   // trust the flags in the input
)

// Config holds compiler configuration
type Config struct {
	EntryPoint  string
	ControlFlow ControlFlowMode
}

// CompilerContext is the state of one analysis run
type CompilerContext struct {
	Config *Config

	Tree  *ast.Tree
	Scope *scope.Scope
	Phase Phase

	Diagnostics *diagnostics.DiagnosticBag

	Debug bool
	Trace io.Writer // debug output, stdout when nil
}

// New creates a new compiler context
func New(config *Config, debug bool) *CompilerContext {
	if config == nil {
		config = &Config{}
	}
	if config.ControlFlow == "" {
		config.ControlFlow = ControlFlowAnalyze
	}
	return &CompilerContext{
		Config:      config,
		Scope:       scope.New(),
		Phase:       PhaseNotStarted,
		Diagnostics: diagnostics.NewDiagnosticBag(config.EntryPoint),
		Debug:       debug,
	}
}

// NewWithTree creates a context for an already built tree
func NewWithTree(tree *ast.Tree, debug bool) *CompilerContext {
	ctx := New(&Config{EntryPoint: tree.File}, debug)
	ctx.Tree = tree
	ctx.Phase = PhaseLoaded
	return ctx
}

// AdvancePhase moves to target if the current phase is its prerequisite
func (ctx *CompilerContext) AdvancePhase(target Phase) error {
	required, ok := phasePrerequisites[target]
	if !ok {
		return fmt.Errorf("cannot advance to phase %s", target)
	}
	if ctx.Phase != required {
		return fmt.Errorf("cannot advance to phase %s from %s (requires %s)", target, ctx.Phase, required)
	}
	ctx.Phase = target
	return nil
}

// Tracef writes a debug trace line when debug mode is on
func (ctx *CompilerContext) Tracef(format string, args ...any) {
	if ctx == nil || !ctx.Debug {
		return
	}
	w := ctx.Trace
	if w == nil {
		w = os.Stdout
	}
	colors.GREY.Fprintf(w, format+"\n", args...)
}

// HasErrors reports whether any error diagnostic has been recorded
func (ctx *CompilerContext) HasErrors() bool {
	return ctx.Diagnostics.HasErrors()
}

// ReportError records err as a diagnostic
func (ctx *CompilerContext) ReportError(err error) {
	ctx.Diagnostics.AddError(err)
}

// ReportWarning records a warning at a location
func (ctx *CompilerContext) ReportWarning(message string, location *source.Location, help string) {
	diag := diagnostics.NewWarning(message)
	if location.IsZero() {
		diag.FilePath = ctx.Config.EntryPoint
	} else {
		diag.WithPrimaryLabel(ctx.Config.EntryPoint, location, "")
	}
	if help != "" {
		diag.WithHelp(help)
	}
	ctx.Diagnostics.Add(diag)
}

// EmitDiagnostics prints every recorded diagnostic to stderr
func (ctx *CompilerContext) EmitDiagnostics() {
	ctx.Diagnostics.EmitAll(os.Stderr)
}
