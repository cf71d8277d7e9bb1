package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Iced-Tea/hevia-compiler/colors"
	"github.com/Iced-Tea/hevia-compiler/internal/compiler"
	"github.com/Iced-Tea/hevia-compiler/internal/context_v2"
)

const version = "0.1.0"

func main() {
	// Define flags
	debug := flag.Bool("d", false, "Enable debug output")
	showVersion := flag.Bool("v", false, "Show version")
	flag.BoolVar(debug, "debug", false, "Enable debug output")
	flag.BoolVar(showVersion, "version", false, "Show version")
	configFile := flag.String("config", "", "Project file (default: hevia.yaml next to the entry file)")
	controlFlow := flag.String("control-flow", "", "Where doesReturn flags come from: analyze or input")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	summary := flag.Bool("summary", false, "Print an analysis summary")

	flag.Parse()

	// Handle version
	if *showVersion {
		fmt.Printf("Hevia compiler version %s\n", version)
		os.Exit(0)
	}

	// Get entry file
	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: hevia [options] <program.yaml>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	format := compiler.ANSI
	if *noColor {
		colors.SetEnabled(false)
		format = compiler.PLAIN
	}

	result := compiler.Compile(&compiler.Options{
		EntryFile:   args[0],
		ConfigFile:  *configFile,
		Debug:       *debug,
		ControlFlow: context_v2.ControlFlowMode(*controlFlow),
		LogFormat:   format,
		Summary:     *summary,
	})

	if result.Output != "" {
		fmt.Fprint(os.Stderr, result.Output)
	}

	// Exit code
	if !result.Success {
		os.Exit(1)
	}
}
