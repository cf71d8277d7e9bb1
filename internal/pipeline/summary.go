package pipeline

import (
	"fmt"

	"github.com/Iced-Tea/hevia-compiler/colors"
	"github.com/Iced-Tea/hevia-compiler/internal/frontend/ast"
	str "github.com/Iced-Tea/hevia-compiler/internal/utils/strings"
)

// PrintSummary prints a summary of the analysis
func (p *Pipeline) PrintSummary() {
	fmt.Println()
	colors.CYAN.Println("═══════════════════════════════════════")
	colors.CYAN.Println("        ANALYSIS SUMMARY")
	colors.CYAN.Println("═══════════════════════════════════════")

	fmt.Printf("Entry: %s\n", p.ctx.Config.EntryPoint)
	fmt.Printf("Phase: %s\n", p.ctx.Phase)
	fmt.Printf("Diagnostics: %s, %s\n",
		str.Count(p.ctx.Diagnostics.ErrorCount(), "error", "errors"),
		str.Count(p.ctx.Diagnostics.WarningCount(), "warning", "warnings"))

	tree := p.ctx.Tree
	if tree == nil {
		return
	}

	counts := make(map[ast.Kind]int)
	typed := 0
	for id := ast.NodeID(0); int(id) < tree.Len(); id++ {
		counts[tree.Kind(id)]++
		if tree.ResolvedType(id) != nil {
			typed++
		}
	}
	fmt.Printf("Nodes: %d (%d typed)\n\n", tree.Len(), typed)
	for k := ast.KindProgram; k <= ast.KindReturnStatement; k++ {
		if counts[k] > 0 {
			fmt.Printf(" - %s: %d\n", k, counts[k])
		}
	}
}
