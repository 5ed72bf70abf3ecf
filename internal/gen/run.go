package gen

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/Sumatoshi-tech/astgen/internal/emit"
	"github.com/Sumatoshi-tech/astgen/internal/grammar"
	"github.com/Sumatoshi-tech/astgen/internal/sink"
)

// ErrStale is returned by Check when a generated file on disk no longer
// matches its grammar.
var ErrStale = errors.New("generated output is stale")

// Runner drives the emitters for a set of grammars against one sink.
type Runner struct {
	Sink   sink.Sink
	Logger *slog.Logger
}

// NewRunner creates a Runner writing to s.
func NewRunner(s sink.Sink, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{Sink: s, Logger: logger}
}

// Run validates every grammar, then emits one unit per grammar and hands it
// to the sink. Validation failures abort the whole run before any text is
// produced. Sink failures are reported per grammar and do not stop the
// sibling grammars; the units share no state.
func (r *Runner) Run(grammars []grammar.Grammar) error {
	validateErr := validateAll(grammars)
	if validateErr != nil {
		return validateErr
	}

	var errs []error

	for i := range grammars {
		g := &grammars[i]
		content := emit.Unit(g)

		writeErr := r.Sink.Write(g.FileName(), content)
		if writeErr != nil {
			errs = append(errs, fmt.Errorf("grammar %q: %w", g.Name, writeErr))

			continue
		}

		r.Logger.Info("generated unit",
			"grammar", g.Name,
			"file", g.FileName(),
			"variants", len(g.Variants),
			"size", humanize.Bytes(uint64(len(content))))
	}

	return errors.Join(errs...)
}

// Drift describes one stale generated file.
type Drift struct {
	File string
	Diff string
}

// Check regenerates every grammar into a scratch directory, running the
// same formatter the real sink would, and compares the result against the
// files under dir. It never touches dir. A non-empty result means the
// checked tree is stale; the caller decides how to present the diffs.
func Check(grammars []grammar.Grammar, dir, formatter string, logger *slog.Logger) ([]Drift, error) {
	validateErr := validateAll(grammars)
	if validateErr != nil {
		return nil, validateErr
	}

	scratch, tmpErr := os.MkdirTemp("", "astgen-check-*")
	if tmpErr != nil {
		return nil, fmt.Errorf("create scratch dir: %w", tmpErr)
	}

	defer os.RemoveAll(scratch)

	scratchSink := sink.NewFileSink(scratch, formatter, logger)
	dmp := diffmatchpatch.New()

	var drifts []Drift

	for i := range grammars {
		g := &grammars[i]

		writeErr := scratchSink.Write(g.FileName(), emit.Unit(g))
		if writeErr != nil {
			return nil, fmt.Errorf("grammar %q: %w", g.Name, writeErr)
		}

		want, readErr := os.ReadFile(filepath.Join(scratch, g.FileName()))
		if readErr != nil {
			return nil, fmt.Errorf("grammar %q: read scratch: %w", g.Name, readErr)
		}

		// A missing destination file counts as drift, not as an error.
		got, readErr := os.ReadFile(filepath.Join(dir, g.FileName()))
		if readErr != nil && !os.IsNotExist(readErr) {
			return nil, fmt.Errorf("grammar %q: read current: %w", g.Name, readErr)
		}

		if string(got) == string(want) {
			continue
		}

		diffs := dmp.DiffMain(string(got), string(want), false)
		drifts = append(drifts, Drift{File: g.FileName(), Diff: dmp.DiffPrettyText(diffs)})
	}

	return drifts, nil
}

func validateAll(grammars []grammar.Grammar) error {
	if len(grammars) == 0 {
		return grammar.ErrNoGrammars
	}

	for i := range grammars {
		validateErr := grammars[i].Validate()
		if validateErr != nil {
			return validateErr
		}
	}

	return nil
}
