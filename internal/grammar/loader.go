package grammar

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// grammarFile is the top-level shape of an external grammar file.
type grammarFile struct {
	Grammars []Grammar `yaml:"grammars"`
}

// LoadFile reads grammar definitions from a YAML file. Every grammar is
// validated; the first invalid one fails the whole load so a broken file
// never produces partial output downstream.
func LoadFile(path string) ([]Grammar, error) {
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return nil, fmt.Errorf("read grammar file: %w", readErr)
	}

	var file grammarFile

	unmarshalErr := yaml.Unmarshal(data, &file)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("parse grammar file %s: %w", path, unmarshalErr)
	}

	if len(file.Grammars) == 0 {
		return nil, fmt.Errorf("grammar file %s: %w", path, ErrNoGrammars)
	}

	for i := range file.Grammars {
		normalize(&file.Grammars[i])

		validateErr := file.Grammars[i].Validate()
		if validateErr != nil {
			return nil, fmt.Errorf("grammar file %s: %w", path, validateErr)
		}
	}

	return file.Grammars, nil
}

// normalize fills defaults an external file may omit: the visitor trait
// name and the sentinel's reserved name.
func normalize(g *Grammar) {
	if g.VisitorName == "" {
		g.VisitorName = DefaultVisitorName
	}

	for i := range g.Variants {
		if g.Variants[i].Sentinel && g.Variants[i].Name == "" {
			g.Variants[i].Name = SentinelName
		}
	}
}
