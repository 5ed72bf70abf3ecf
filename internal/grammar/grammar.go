// Package grammar defines the declarative model for AST node families:
// a named sum type with an ordered list of variants, each carrying an
// ordered list of typed fields. Emitters consume a validated Grammar and
// render the generated artifacts from it.
package grammar

import (
	"errors"
	"fmt"
	"strings"
)

// SentinelName is the reserved name of the payload-free marker variant.
// It renders as an empty enum arm, is excluded from the visitor trait and
// constructors, and its dispatch arm panics.
const SentinelName = "Null"

// DefaultVisitorName is the trait name used when a grammar does not declare
// its own.
const DefaultVisitorName = "Visitor"

// ErrNoGrammars is returned when a grammar file declares no grammars.
var ErrNoGrammars = errors.New("no grammars defined")

// ErrNoVariants is returned when a grammar declares no variants.
var ErrNoVariants = errors.New("grammar has no variants")

// ErrEmptyName is returned when a grammar, variant or field name is empty.
var ErrEmptyName = errors.New("empty name")

// ErrDuplicateVariant is returned when two variants share a name after
// lowercasing. Generated method and constructor identifiers use the
// lowercased form, so case-insensitive uniqueness is required.
var ErrDuplicateVariant = errors.New("duplicate variant name")

// ErrDuplicateField is returned when a variant declares the same field twice.
var ErrDuplicateField = errors.New("duplicate field name")

// ErrMultipleSentinels is returned when a grammar declares the sentinel
// variant more than once.
var ErrMultipleSentinels = errors.New("multiple sentinel variants")

// ErrSentinelFields is returned when the sentinel variant carries fields.
var ErrSentinelFields = errors.New("sentinel variant must not carry fields")

// ErrReservedName is returned when a data variant uses the sentinel's
// reserved name.
var ErrReservedName = errors.New("variant name is reserved for the sentinel")

// Field is one typed field of a variant. Type is opaque text copied
// verbatim into emitted signatures; the generator never interprets it,
// even when it references the sum type under construction (e.g. Box<Expr>).
type Field struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Variant is one member of the sum type. A sentinel variant has no fields
// and uses the reserved SentinelName.
type Variant struct {
	Name     string  `yaml:"name"`
	Fields   []Field `yaml:"fields"`
	Sentinel bool    `yaml:"sentinel"`
}

// Grammar describes one family of AST nodes. Pragmas is an opaque attribute
// line carried through verbatim; Imports are the preamble lines prepended to
// the generated unit. A Grammar is immutable once constructed.
type Grammar struct {
	Name        string    `yaml:"name"`
	VisitorName string    `yaml:"visitor"`
	Pragmas     string    `yaml:"pragmas"`
	Imports     []string  `yaml:"imports"`
	Variants    []Variant `yaml:"variants"`
}

// LowerName returns the lowercased sum type name. All emitters derive
// identifiers through this single rule so generated names cannot diverge.
func (g *Grammar) LowerName() string {
	return strings.ToLower(g.Name)
}

// FileName returns the destination key for this grammar's generated unit.
func (g *Grammar) FileName() string {
	return g.LowerName() + ".rs"
}

// DataVariants returns the non-sentinel variants in declaration order.
func (g *Grammar) DataVariants() []Variant {
	out := make([]Variant, 0, len(g.Variants))

	for _, v := range g.Variants {
		if !v.Sentinel {
			out = append(out, v)
		}
	}

	return out
}

// LowerName returns the lowercased variant name used for visitor method and
// constructor identifiers.
func (v *Variant) LowerName() string {
	return strings.ToLower(v.Name)
}

// MethodName returns the visitor trait method name for this variant within
// the given grammar, e.g. visit_binary_expr.
func (v *Variant) MethodName(g *Grammar) string {
	return "visit_" + v.LowerName() + "_" + g.LowerName()
}

// Validate checks the grammar invariants before any text is emitted.
// A failed validation aborts generation for this grammar with no partial
// output.
func (g *Grammar) Validate() error {
	if g.Name == "" || g.VisitorName == "" {
		return fmt.Errorf("grammar %q: %w", g.Name, ErrEmptyName)
	}

	if len(g.Variants) == 0 {
		return fmt.Errorf("grammar %q: %w", g.Name, ErrNoVariants)
	}

	seen := make(map[string]bool, len(g.Variants))
	sentinels := 0

	for _, v := range g.Variants {
		if v.Name == "" {
			return fmt.Errorf("grammar %q: variant: %w", g.Name, ErrEmptyName)
		}

		lower := v.LowerName()
		if seen[lower] {
			return fmt.Errorf("grammar %q: variant %q: %w", g.Name, v.Name, ErrDuplicateVariant)
		}

		seen[lower] = true

		if v.Sentinel {
			sentinels++
			if sentinels > 1 {
				return fmt.Errorf("grammar %q: %w", g.Name, ErrMultipleSentinels)
			}

			if len(v.Fields) > 0 {
				return fmt.Errorf("grammar %q: variant %q: %w", g.Name, v.Name, ErrSentinelFields)
			}

			continue
		}

		if v.Name == SentinelName {
			return fmt.Errorf("grammar %q: variant %q: %w", g.Name, v.Name, ErrReservedName)
		}

		validateErr := validateFields(g.Name, v)
		if validateErr != nil {
			return validateErr
		}
	}

	return nil
}

func validateFields(grammarName string, v Variant) error {
	names := make(map[string]bool, len(v.Fields))

	for _, f := range v.Fields {
		if f.Name == "" || f.Type == "" {
			return fmt.Errorf("grammar %q: variant %q: field: %w", grammarName, v.Name, ErrEmptyName)
		}

		if names[f.Name] {
			return fmt.Errorf("grammar %q: variant %q: field %q: %w", grammarName, v.Name, f.Name, ErrDuplicateField)
		}

		names[f.Name] = true
	}

	return nil
}
