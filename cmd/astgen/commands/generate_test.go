package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/astgen/internal/gen"
)

// chdir changes the working directory for the duration of the test,
// standing in for t.Chdir which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestGenerateCommand_WritesBuiltinGrammars(t *testing.T) {
	chdir(t, t.TempDir())

	outDir := filepath.Join(t.TempDir(), "src")

	cmd := NewGenerateCommand()
	cmd.SetArgs([]string{"--output", outDir, "--no-format"})

	require.NoError(t, cmd.Execute())

	exprData, readErr := os.ReadFile(filepath.Join(outDir, "expr.rs"))
	require.NoError(t, readErr)
	assert.Contains(t, string(exprData), "pub enum Expr {")

	assert.FileExists(t, filepath.Join(outDir, "stmt.rs"))
}

func TestGenerateCommand_CheckOnFreshOutput_Succeeds(t *testing.T) {
	chdir(t, t.TempDir())

	outDir := filepath.Join(t.TempDir(), "src")

	writeCmd := NewGenerateCommand()
	writeCmd.SetArgs([]string{"--output", outDir, "--no-format"})
	require.NoError(t, writeCmd.Execute())

	checkCmd := NewGenerateCommand()
	checkCmd.SetArgs([]string{"--output", outDir, "--no-format", "--check"})
	require.NoError(t, checkCmd.Execute())
}

func TestGenerateCommand_CheckOnEmptyDir_ReportsStale(t *testing.T) {
	chdir(t, t.TempDir())

	cmd := NewGenerateCommand()
	cmd.SetArgs([]string{"--output", filepath.Join(t.TempDir(), "src"), "--no-format", "--check"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, gen.ErrStale)
}

func TestGenerateCommand_GrammarFileOverride(t *testing.T) {
	chdir(t, t.TempDir())

	grammarPath := filepath.Join(t.TempDir(), "grammar.yaml")
	require.NoError(t, os.WriteFile(grammarPath, []byte(`grammars:
  - name: Shape
    variants:
      - name: Circle
        fields:
          - name: radius
            type: f64
      - sentinel: true
`), 0o644))

	outDir := filepath.Join(t.TempDir(), "src")

	cmd := NewGenerateCommand()
	cmd.SetArgs([]string{"--output", outDir, "--no-format", "--grammar", grammarPath})

	require.NoError(t, cmd.Execute())

	data, readErr := os.ReadFile(filepath.Join(outDir, "shape.rs"))
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "pub fn circle(radius: f64) -> Shape {")

	assert.NoFileExists(t, filepath.Join(outDir, "expr.rs"))
}

func TestGenerateCommand_InvalidGrammarFile_Fails(t *testing.T) {
	chdir(t, t.TempDir())

	grammarPath := filepath.Join(t.TempDir(), "grammar.yaml")
	require.NoError(t, os.WriteFile(grammarPath, []byte("grammars: []\n"), 0o644))

	cmd := NewGenerateCommand()
	cmd.SetArgs([]string{"--output", filepath.Join(t.TempDir(), "src"), "--no-format", "--grammar", grammarPath})

	assert.Error(t, cmd.Execute())
}

func TestListCommand_BuiltinGrammars_Runs(t *testing.T) {
	chdir(t, t.TempDir())

	cmd := NewListCommand()
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
}
