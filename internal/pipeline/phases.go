package pipeline

import (
	"errors"
	"fmt"

	"github.com/Iced-Tea/hevia-compiler/colors"
	"github.com/Iced-Tea/hevia-compiler/internal/context_v2"
	"github.com/Iced-Tea/hevia-compiler/internal/diagnostics"
	"github.com/Iced-Tea/hevia-compiler/internal/frontend/astyaml"
	"github.com/Iced-Tea/hevia-compiler/internal/semantics/controlflow"
	"github.com/Iced-Tea/hevia-compiler/internal/semantics/walker"
)

// ErrCheckFailed is returned when the program is rejected
var ErrCheckFailed = errors.New("type checking failed with errors")

// runLoadPhase decodes the entry file unless the context already holds a tree
func (p *Pipeline) runLoadPhase() error {
	if p.ctx.Tree != nil {
		if p.ctx.Phase == context_v2.PhaseNotStarted {
			return p.advance(context_v2.PhaseLoaded)
		}
		return nil
	}

	tree, err := astyaml.Load(p.ctx.Config.EntryPoint)
	if err != nil {
		p.ctx.Diagnostics.Add(diagnostics.NewError(err.Error()).WithCode(string(diagnostics.ErrMalformedTree)))
		return fmt.Errorf("cannot load %s: %w", p.ctx.Config.EntryPoint, err)
	}
	p.ctx.Tree = tree

	if p.ctx.Debug {
		colors.PURPLE.Printf("  ✓ %s (%d nodes)\n", p.ctx.Config.EntryPoint, tree.Len())
	}
	return p.advance(context_v2.PhaseLoaded)
}

// runControlFlowPhase computes doesReturn flags, or keeps those of the
// input. Dead statements are reported as warnings.
func (p *Pipeline) runControlFlowPhase() error {
	if p.ctx.Config.ControlFlow != context_v2.ControlFlowInput {
		report := controlflow.Annotate(p.ctx.Tree)
		p.flow = report
		for _, dead := range report.Unreachable {
			p.ctx.ReportWarning("unreachable code", p.ctx.Tree.Node(dead.Start).Loc(), "remove the statements after the return")
		}
		if p.ctx.Debug {
			colors.PURPLE.Printf("  ✓ %d unreachable range(s)\n", len(report.Unreachable))
		}
	}
	return p.advance(context_v2.PhaseFlowAnalyzed)
}

// runCheckPhase walks the tree and stops at the first semantic error
func (p *Pipeline) runCheckPhase() error {
	if err := walker.Walk(p.ctx); err != nil {
		p.report(err)
		return fmt.Errorf("%w: %w", ErrCheckFailed, err)
	}
	return p.advance(context_v2.PhaseChecked)
}

// report records a check failure. A missing return also points at the
// branches that fall through.
func (p *Pipeline) report(err error) {
	var semErr *diagnostics.SemanticError
	if !errors.As(err, &semErr) || semErr.Code != diagnostics.ErrMissingReturn || p.flow == nil || semErr.Location.IsZero() {
		p.ctx.ReportError(err)
		return
	}

	file := p.ctx.Config.EntryPoint
	diag := semErr.ToDiagnostic(file)
	for _, branch := range p.flow.OpenBranches[semErr.Node] {
		if loc := p.ctx.Tree.Node(branch).Loc(); !loc.IsZero() {
			diag.WithSecondaryLabel(file, loc, "this branch does not return")
		}
	}
	p.ctx.Diagnostics.Add(diag)
}
