package emit

import (
	"strings"

	"github.com/Sumatoshi-tech/astgen/internal/grammar"
)

// VisitorTrait renders the dispatch interface: a trait generic over the
// result type T with one method per data variant, named
// visit_<variant>_<sumtype> (both lowercased). Each method takes a shared
// reference to the whole sum type value so an implementor can reach any
// field. The sentinel contributes no method; it is undispatchable.
func VisitorTrait(g *grammar.Grammar) string {
	var b strings.Builder

	b.WriteString("pub trait ")
	b.WriteString(g.VisitorName)
	b.WriteString("<T> {\n")

	for _, v := range g.DataVariants() {
		b.WriteString(indent)
		b.WriteString("fn ")
		b.WriteString(v.MethodName(g))
		b.WriteString("(&mut self, ")
		b.WriteString(g.LowerName())
		b.WriteString(": &")
		b.WriteString(g.Name)
		b.WriteString(") -> T;\n")
	}

	b.WriteString("}\n")

	return b.String()
}
