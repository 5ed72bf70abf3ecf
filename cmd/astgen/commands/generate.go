package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/astgen/internal/config"
	"github.com/Sumatoshi-tech/astgen/internal/gen"
	"github.com/Sumatoshi-tech/astgen/internal/grammar"
	"github.com/Sumatoshi-tech/astgen/internal/sink"
)

const (
	generateCmdUse   = "generate"
	generateCmdShort = "Regenerate the AST definition files"

	outputFlag       = "output"
	outputFlagShort  = "o"
	outputFlagUsage  = "output directory for generated files"
	grammarFlag      = "grammar"
	grammarFlagUsage = "YAML grammar file overriding the built-in grammars"
	fmtFlag          = "formatter"
	fmtFlagUsage     = "external formatter run over each written file"
	noFormatFlag     = "no-format"
	noFormatUsage    = "skip the external formatting step"
	checkFlag        = "check"
	checkFlagUsage   = "verify generated files are up to date without writing"
	configFlag       = "config"
	configFlagUsage  = "explicit config file path"
)

// NewGenerateCommand creates the generate subcommand.
func NewGenerateCommand() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   generateCmdUse,
		Short: generateCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, outputFlag, outputFlagShort, "", outputFlagUsage)
	cmd.Flags().StringVar(&opts.grammarFile, grammarFlag, "", grammarFlagUsage)
	cmd.Flags().StringVar(&opts.formatter, fmtFlag, "", fmtFlagUsage)
	cmd.Flags().BoolVar(&opts.noFormat, noFormatFlag, false, noFormatUsage)
	cmd.Flags().BoolVar(&opts.check, checkFlag, false, checkFlagUsage)
	cmd.Flags().StringVar(&opts.configPath, configFlag, "", configFlagUsage)

	return cmd
}

type generateOptions struct {
	output      string
	grammarFile string
	formatter   string
	noFormat    bool
	check       bool
	configPath  string
}

// resolve merges flags over the loaded configuration. Flags win.
func (o *generateOptions) resolve(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed(outputFlag) {
		o.output = cfg.Output
	}

	if !cmd.Flags().Changed(grammarFlag) {
		o.grammarFile = cfg.GrammarFile
	}

	if !cmd.Flags().Changed(fmtFlag) {
		o.formatter = cfg.Formatter
	}

	if !cmd.Flags().Changed(noFormatFlag) && !cfg.Format {
		o.noFormat = true
	}
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	cfg, cfgErr := config.LoadConfig(opts.configPath)
	if cfgErr != nil {
		return cfgErr
	}

	opts.resolve(cmd, cfg)

	grammars, loadErr := loadGrammars(opts.grammarFile)
	if loadErr != nil {
		return loadErr
	}

	formatter := opts.formatter
	if opts.noFormat {
		formatter = ""
	}

	if opts.check {
		return runCheck(grammars, opts.output, formatter)
	}

	fileSink := sink.NewFileSink(opts.output, formatter, slog.Default())

	runner := gen.NewRunner(fileSink, slog.Default())

	runErr := runner.Run(grammars)
	if runErr != nil {
		return runErr
	}

	color.New(color.FgGreen).Fprintf(os.Stdout, "Generated %d file(s) in %s\n", len(grammars), opts.output)

	return nil
}

func runCheck(grammars []grammar.Grammar, dir, formatter string) error {
	drifts, checkErr := gen.Check(grammars, dir, formatter, slog.Default())
	if checkErr != nil {
		return checkErr
	}

	if len(drifts) == 0 {
		color.New(color.FgGreen).Fprintf(os.Stdout, "Generated files are up to date\n")

		return nil
	}

	for _, d := range drifts {
		color.New(color.FgYellow).Fprintf(os.Stdout, "stale: %s\n", d.File)
		fmt.Fprintln(os.Stdout, d.Diff)
	}

	return fmt.Errorf("%d file(s): %w", len(drifts), gen.ErrStale)
}

// loadGrammars returns the built-in grammars unless an external grammar
// file overrides them.
func loadGrammars(path string) ([]grammar.Grammar, error) {
	if path == "" {
		return gen.Grammars(), nil
	}

	return grammar.LoadFile(path)
}
