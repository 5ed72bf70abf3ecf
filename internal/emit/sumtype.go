package emit

import (
	"strings"

	"github.com/Sumatoshi-tech/astgen/internal/grammar"
)

// SumType renders the enum definition: one struct-like arm per data variant
// carrying its declared fields in declaration order, and one empty arm for
// the sentinel. The pragmas line is copied through verbatim above the enum.
func SumType(g *grammar.Grammar) string {
	var b strings.Builder

	if g.Pragmas != "" {
		b.WriteString(g.Pragmas)
		b.WriteString("\n")
	}

	b.WriteString("pub enum ")
	b.WriteString(g.Name)
	b.WriteString(" {\n")

	for _, v := range g.Variants {
		writeEnumArm(&b, v)
	}

	b.WriteString("}\n")

	return b.String()
}

func writeEnumArm(b *strings.Builder, v grammar.Variant) {
	if v.Sentinel {
		b.WriteString(indent)
		b.WriteString(v.Name)
		b.WriteString(",\n")

		return
	}

	b.WriteString(indent)
	b.WriteString(v.Name)
	b.WriteString(" {\n")

	for _, f := range v.Fields {
		b.WriteString(indent)
		b.WriteString(indent)
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.Type)
		b.WriteString(",\n")
	}

	b.WriteString(indent)
	b.WriteString("},\n")
}
