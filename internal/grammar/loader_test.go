package grammar_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/astgen/internal/grammar"
)

func writeGrammarFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "grammar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

const validGrammarYAML = `grammars:
  - name: Shape
    visitor: Visitor
    pragmas: "#[derive(Clone, Debug)]"
    imports:
      - "use crate::token::Token;"
    variants:
      - name: Circle
        fields:
          - name: radius
            type: f64
      - name: Square
        fields:
          - name: side
            type: f64
      - sentinel: true
`

func TestLoadFile_ValidFile_ReturnsGrammars(t *testing.T) {
	t.Parallel()

	path := writeGrammarFile(t, validGrammarYAML)

	grammars, err := grammar.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, grammars, 1)

	g := grammars[0]
	assert.Equal(t, "Shape", g.Name)
	assert.Equal(t, "#[derive(Clone, Debug)]", g.Pragmas)
	assert.Equal(t, []string{"use crate::token::Token;"}, g.Imports)
	require.Len(t, g.Variants, 3)
	assert.Equal(t, "f64", g.Variants[0].Fields[0].Type)
}

func TestLoadFile_OmittedDefaults_Normalized(t *testing.T) {
	t.Parallel()

	path := writeGrammarFile(t, `grammars:
  - name: Shape
    variants:
      - name: Circle
        fields:
          - name: radius
            type: f64
      - sentinel: true
`)

	grammars, err := grammar.LoadFile(path)
	require.NoError(t, err)

	g := grammars[0]
	assert.Equal(t, grammar.DefaultVisitorName, g.VisitorName)
	assert.Equal(t, grammar.SentinelName, g.Variants[1].Name)
	assert.True(t, g.Variants[1].Sentinel)
}

func TestLoadFile_MissingFile_ReturnsError(t *testing.T) {
	t.Parallel()

	_, err := grammar.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read grammar file")
}

func TestLoadFile_MalformedYAML_ReturnsError(t *testing.T) {
	t.Parallel()

	path := writeGrammarFile(t, "grammars: [\n")

	_, err := grammar.LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse grammar file")
}

func TestLoadFile_NoGrammars_ReturnsError(t *testing.T) {
	t.Parallel()

	path := writeGrammarFile(t, "grammars: []\n")

	_, err := grammar.LoadFile(path)
	assert.ErrorIs(t, err, grammar.ErrNoGrammars)
}

func TestLoadFile_InvalidGrammar_ReturnsValidationError(t *testing.T) {
	t.Parallel()

	path := writeGrammarFile(t, `grammars:
  - name: Shape
    variants: []
`)

	_, err := grammar.LoadFile(path)
	assert.ErrorIs(t, err, grammar.ErrNoVariants)
}
