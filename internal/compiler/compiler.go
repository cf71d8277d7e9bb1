package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Iced-Tea/hevia-compiler/colors"
	"github.com/Iced-Tea/hevia-compiler/internal/context_v2"
	"github.com/Iced-Tea/hevia-compiler/internal/frontend/astyaml"
	"github.com/Iced-Tea/hevia-compiler/internal/pipeline"
)

type FORMAT int

const (
	ANSI  FORMAT = iota // colored, printed to stderr
	PLAIN               // uncolored, returned in Result.Output
)

// Options for compilation
type Options struct {
	// For file-based compilation
	EntryFile string
	// For in-memory compilation, a YAML program
	Code string
	// Project file; hevia.yaml next to EntryFile when empty
	ConfigFile string

	Debug       bool
	ControlFlow context_v2.ControlFlowMode
	LogFormat   FORMAT
	// Print the analysis summary after the run
	Summary bool
}

// Result of compilation
type Result struct {
	Success bool
	Output  string
	Err     error
}

// Compile analyzes a Hevia program and returns the result
func Compile(opts *Options) Result {
	cfg, err := loadConfig(opts)
	if err != nil {
		return Result{Success: false, Output: err.Error(), Err: err}
	}
	cfg.apply(opts)

	entry := "main"
	if opts.EntryFile != "" {
		absPath, err := filepath.Abs(opts.EntryFile)
		if err != nil {
			return Result{Success: false, Output: fmt.Sprintf("Failed to resolve path: %v", err), Err: err}
		}
		if _, err := os.Stat(absPath); os.IsNotExist(err) {
			return Result{Success: false, Output: fmt.Sprintf("File not found: %s", opts.EntryFile), Err: err}
		}
		entry = absPath
	}

	ctx := context_v2.New(&context_v2.Config{
		EntryPoint:  entry,
		ControlFlow: opts.ControlFlow,
	}, opts.Debug)

	if opts.Code != "" {
		ctx.Diagnostics.AddSourceContent(entry, opts.Code)
		tree, err := astyaml.Decode(strings.NewReader(opts.Code), entry)
		if err != nil {
			ctx.ReportError(err)
			return finish(ctx, opts, nil, err)
		}
		ctx.Tree = tree
	}

	p := pipeline.New(ctx)
	err = p.Run()
	return finish(ctx, opts, p, err)
}

func loadConfig(opts *Options) (*Config, error) {
	if opts.ConfigFile != "" {
		return LoadConfig(opts.ConfigFile)
	}
	return findConfig(opts.EntryFile)
}

// finish emits diagnostics in the requested format
func finish(ctx *context_v2.CompilerContext, opts *Options, p *pipeline.Pipeline, err error) Result {
	if p != nil && opts.Summary {
		p.PrintSummary()
	}

	result := Result{Success: err == nil && !ctx.HasErrors(), Err: err}
	if opts.LogFormat == PLAIN {
		result.Output = colors.StripANSI(ctx.Diagnostics.EmitAllToString())
		return result
	}
	ctx.EmitDiagnostics()
	return result
}
