package pipeline

import (
	"fmt"

	"github.com/Iced-Tea/hevia-compiler/colors"
	"github.com/Iced-Tea/hevia-compiler/internal/context_v2"
	"github.com/Iced-Tea/hevia-compiler/internal/semantics/controlflow"
)

// Pipeline coordinates the analysis of one program
type Pipeline struct {
	ctx *context_v2.CompilerContext

	// flow is nil when doesReturn flags come from the input
	flow *controlflow.Report
}

// New creates a new analysis pipeline
func New(ctx *context_v2.CompilerContext) *Pipeline {
	return &Pipeline{
		ctx: ctx,
	}
}

// Run executes load, control flow and check in order. Every failure is
// recorded in the context's diagnostics before Run returns.
func (p *Pipeline) Run() error {
	if p.ctx.Debug {
		colors.CYAN.Printf("\n[Phase 1] Load\n")
	}
	if err := p.runLoadPhase(); err != nil {
		return err
	}

	if p.ctx.Debug {
		colors.CYAN.Printf("\n[Phase 2] Control Flow (%s)\n", p.ctx.Config.ControlFlow)
	}
	if err := p.runControlFlowPhase(); err != nil {
		return err
	}

	if p.ctx.Debug {
		colors.CYAN.Printf("\n[Phase 3] Type Checking\n")
	}
	if err := p.runCheckPhase(); err != nil {
		return err
	}

	if p.ctx.Debug {
		colors.GREEN.Printf("\n✓ Analysis successful! (%d nodes)\n", p.ctx.Tree.Len())
	}
	return nil
}

func (p *Pipeline) advance(target context_v2.Phase) error {
	if err := p.ctx.AdvancePhase(target); err != nil {
		p.ctx.ReportError(err)
		return fmt.Errorf("pipeline: %w", err)
	}
	return nil
}
