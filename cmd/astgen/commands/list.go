package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/astgen/internal/grammar"
)

const (
	listCmdUse   = "list"
	listCmdShort = "Show the grammars and what will be generated for them"

	sentinelMarker = "(sentinel)"
)

// NewListCommand creates the list subcommand.
func NewListCommand() *cobra.Command {
	var grammarFile string

	cmd := &cobra.Command{
		Use:   listCmdUse,
		Short: listCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			grammars, loadErr := loadGrammars(grammarFile)
			if loadErr != nil {
				return loadErr
			}

			for i := range grammars {
				printGrammar(&grammars[i])
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&grammarFile, grammarFlag, "", grammarFlagUsage)

	return cmd
}

func printGrammar(g *grammar.Grammar) {
	fmt.Fprintf(os.Stdout, "%s -> %s\n", g.Name, g.FileName())

	tbl := table.NewWriter()
	tbl.SetOutputMirror(os.Stdout)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Variant", "Fields", "Constructor", "Visitor method"})

	for _, v := range g.Variants {
		if v.Sentinel {
			tbl.AppendRow(table.Row{v.Name, sentinelMarker, "-", "-"})

			continue
		}

		tbl.AppendRow(table.Row{v.Name, formatFields(v.Fields), v.LowerName(), v.MethodName(g)})
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("%d variants", len(g.Variants))})
	tbl.Render()
	fmt.Fprintln(os.Stdout)
}

func formatFields(fields []grammar.Field) string {
	if len(fields) == 0 {
		return "-"
	}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f.Name+": "+f.Type)
	}

	return strings.Join(parts, ", ")
}
