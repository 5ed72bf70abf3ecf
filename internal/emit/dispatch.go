package emit

import (
	"strings"

	"github.com/Sumatoshi-tech/astgen/internal/grammar"
)

// DispatchImpl renders the impl block bundling the accept function and the
// per-variant constructors. Both iterate the same variant list, so the
// match arms, trait methods and constructors cannot drift apart.
func DispatchImpl(g *grammar.Grammar) string {
	var b strings.Builder

	b.WriteString("impl ")
	b.WriteString(g.Name)
	b.WriteString(" {\n")

	writeAccept(&b, g)

	for _, v := range g.DataVariants() {
		b.WriteString("\n")
		writeConstructor(&b, g, v)
	}

	b.WriteString("}\n")

	return b.String()
}

// writeAccept emits the exhaustive routing function. Every variant gets an
// arm: data variants forward the whole value to the matching visitor
// method, the sentinel arm panics. Exhaustiveness over the closed enum is
// then checked by the Rust compiler itself.
func writeAccept(b *strings.Builder, g *grammar.Grammar) {
	visitorArg := strings.ToLower(g.VisitorName)

	b.WriteString(indent)
	b.WriteString("pub fn accept<T>(&self, ")
	b.WriteString(visitorArg)
	b.WriteString(": &mut impl ")
	b.WriteString(g.VisitorName)
	b.WriteString("<T>) -> T {\n")

	b.WriteString(indent)
	b.WriteString(indent)
	b.WriteString("match self {\n")

	for _, v := range g.Variants {
		b.WriteString(indent)
		b.WriteString(indent)
		b.WriteString(indent)

		if v.Sentinel {
			b.WriteString(g.Name)
			b.WriteString("::")
			b.WriteString(v.Name)
			b.WriteString(" => panic!(\"calling visit on ")
			b.WriteString(g.Name)
			b.WriteString("::")
			b.WriteString(v.Name)
			b.WriteString("\"),\n")

			continue
		}

		b.WriteString(g.Name)
		b.WriteString("::")
		b.WriteString(v.Name)
		b.WriteString(" { .. } => ")
		b.WriteString(visitorArg)
		b.WriteString(".")
		b.WriteString(v.MethodName(g))
		b.WriteString("(self),\n")
	}

	b.WriteString(indent)
	b.WriteString(indent)
	b.WriteString("}\n")

	b.WriteString(indent)
	b.WriteString("}\n")
}

// writeConstructor emits a factory function for one data variant, taking
// the declared fields as positional parameters and building the enum value
// with field shorthand. Pure construction; it cannot fail.
func writeConstructor(b *strings.Builder, g *grammar.Grammar, v grammar.Variant) {
	b.WriteString(indent)
	b.WriteString("#[inline]\n")

	b.WriteString(indent)
	b.WriteString("pub fn ")
	b.WriteString(v.LowerName())
	b.WriteString("(")

	for i, f := range v.Fields {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.Type)
	}

	b.WriteString(") -> ")
	b.WriteString(g.Name)
	b.WriteString(" {\n")

	b.WriteString(indent)
	b.WriteString(indent)
	b.WriteString(g.Name)
	b.WriteString("::")
	b.WriteString(v.Name)

	if len(v.Fields) == 0 {
		b.WriteString(" {}\n")
	} else {
		b.WriteString(" {\n")

		for _, f := range v.Fields {
			b.WriteString(indent)
			b.WriteString(indent)
			b.WriteString(indent)
			b.WriteString(f.Name)
			b.WriteString(",\n")
		}

		b.WriteString(indent)
		b.WriteString(indent)
		b.WriteString("}\n")
	}

	b.WriteString(indent)
	b.WriteString("}\n")
}
