// Package emit renders a validated grammar into Rust source text: the sum
// type (enum), the visitor trait, and the dispatch impl with accept and
// per-variant constructors. Every emitter is a pure function of its input;
// generating the same grammar twice yields byte-identical text.
package emit

import (
	"strings"

	"github.com/Sumatoshi-tech/astgen/internal/grammar"
)

// indent is one level of indentation in emitted Rust.
const indent = "    "

// Unit renders the complete generation unit for one grammar: the import
// preamble followed by the sum type, the visitor trait and the dispatch
// impl, in that order. The result is handed to a sink as-is; no component
// reads it back.
func Unit(g *grammar.Grammar) string {
	var b strings.Builder

	for _, imp := range g.Imports {
		b.WriteString(imp)
		b.WriteString("\n")
	}

	if len(g.Imports) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(SumType(g))
	b.WriteString("\n")
	b.WriteString(VisitorTrait(g))
	b.WriteString("\n")
	b.WriteString(DispatchImpl(g))

	return b.String()
}
