// Package gen orchestrates generation: it holds the built-in grammars and
// drives the emitters against a sink, one unit per grammar.
package gen

import "github.com/Sumatoshi-tech/astgen/internal/grammar"

// derivePragmas is the attribute line carried verbatim onto every generated
// enum.
const derivePragmas = "#[derive(Clone, Debug, PartialEq)]"

// Grammars returns the two built-in node families of the interpreter:
// expressions and statements. They are fixed, in-process configuration; the
// generator's job is to regenerate this pair whenever the grammar changes.
func Grammars() []grammar.Grammar {
	return []grammar.Grammar{exprGrammar(), stmtGrammar()}
}

func exprGrammar() grammar.Grammar {
	return grammar.Grammar{
		Name:        "Expr",
		VisitorName: grammar.DefaultVisitorName,
		Pragmas:     derivePragmas,
		Imports:     []string{"use crate::token::{Token, Literal};"},
		Variants: []grammar.Variant{
			{Name: "Binary", Fields: []grammar.Field{
				{Name: "left", Type: "Box<Expr>"},
				{Name: "operator", Type: "Token"},
				{Name: "right", Type: "Box<Expr>"},
			}},
			{Name: "Grouping", Fields: []grammar.Field{
				{Name: "expression", Type: "Box<Expr>"},
			}},
			{Name: "Literal", Fields: []grammar.Field{
				{Name: "value", Type: "Literal"},
			}},
			{Name: "Unary", Fields: []grammar.Field{
				{Name: "operator", Type: "Token"},
				{Name: "right", Type: "Box<Expr>"},
			}},
			{Name: "Variable", Fields: []grammar.Field{
				{Name: "name", Type: "Token"},
			}},
			{Name: "Assign", Fields: []grammar.Field{
				{Name: "name", Type: "Token"},
				{Name: "value", Type: "Box<Expr>"},
			}},
			{Name: "Logical", Fields: []grammar.Field{
				{Name: "left", Type: "Box<Expr>"},
				{Name: "operator", Type: "Token"},
				{Name: "right", Type: "Box<Expr>"},
			}},
			{Name: "Call", Fields: []grammar.Field{
				{Name: "callee", Type: "Box<Expr>"},
				{Name: "paren", Type: "Token"},
				{Name: "arguments", Type: "Vec<Expr>"},
			}},
			{Name: grammar.SentinelName, Sentinel: true},
		},
	}
}

func stmtGrammar() grammar.Grammar {
	return grammar.Grammar{
		Name:        "Stmt",
		VisitorName: grammar.DefaultVisitorName,
		Pragmas:     derivePragmas,
		Imports: []string{
			"use crate::expr::Expr;",
			"use crate::token::Token;",
		},
		Variants: []grammar.Variant{
			{Name: "Expression", Fields: []grammar.Field{
				{Name: "expr", Type: "Expr"},
			}},
			{Name: "Print", Fields: []grammar.Field{
				{Name: "expr", Type: "Expr"},
			}},
			{Name: "Var", Fields: []grammar.Field{
				{Name: "name", Type: "Token"},
				{Name: "initializer", Type: "Box<Expr>"},
			}},
			{Name: "Block", Fields: []grammar.Field{
				{Name: "statements", Type: "Vec<Stmt>"},
			}},
			{Name: "IfStmt", Fields: []grammar.Field{
				{Name: "condition", Type: "Expr"},
				{Name: "then_branch", Type: "Box<Stmt>"},
				{Name: "else_branch", Type: "Box<Stmt>"},
			}},
			{Name: "WhileStmt", Fields: []grammar.Field{
				{Name: "condition", Type: "Expr"},
				{Name: "body", Type: "Box<Stmt>"},
			}},
			{Name: grammar.SentinelName, Sentinel: true},
		},
	}
}
