// Package yaml loads the classification lexicon from YAML. A default
// English lexicon is embedded in the binary; an external file can replace
// it without recompiling.
package yaml

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/fwojciec/mise"
	yamlv3 "gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var defaultLexicon []byte

var loadDefault = sync.OnceValue(func() *mise.Lexicon {
	lex, err := ParseLexicon(defaultLexicon)
	if err != nil {
		panic(fmt.Sprintf("embedded lexicon: %v", err))
	}
	return lex
})

// DefaultLexicon returns the embedded lexicon. The returned value is shared
// and must not be modified.
func DefaultLexicon() *mise.Lexicon {
	return loadDefault()
}

// ParseLexicon decodes and validates a lexicon document.
func ParseLexicon(data []byte) (*mise.Lexicon, error) {
	var lex mise.Lexicon
	if err := yamlv3.Unmarshal(data, &lex); err != nil {
		return nil, mise.Errorf(mise.EINVALID, "decode lexicon: %v", err)
	}
	if err := lex.Validate(); err != nil {
		return nil, err
	}
	return &lex, nil
}

// LoadLexicon reads a lexicon file from path.
func LoadLexicon(path string) (*mise.Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	return ParseLexicon(data)
}
