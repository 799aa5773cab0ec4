package lang

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/6112/ciel"
)

// Error codes used by lang:
const (
	// ErrBadDefinition indicates a language definition file that cannot be parsed.
	ErrBadDefinition = ciel.ConfigErrors + iota

	// ErrNoName indicates a definition missing the "name" field.
	ErrNoName

	// ErrEmptyPattern indicates an extra rule with an empty pattern.
	ErrEmptyPattern
)

// ParseYAML parses a language definition written in YAML.
// name is used for error messages only; the language name comes from
// the definition's "name" field. Pattern validity is not checked here,
// it is checked when the spec is compiled.
func ParseYAML(name string, content []byte) (*Spec, error) {
	sp := new(Spec)
	if e := yaml.Unmarshal(content, sp); e != nil {
		return nil, ciel.FormatError(ErrBadDefinition, "cannot parse %s: %s", name, e.Error())
	}
	if sp.Name == "" {
		return nil, ciel.FormatError(ErrNoName, "missing language name in %s", name)
	}
	for i, r := range sp.Extra {
		if r.Pattern == "" {
			return nil, ciel.FormatError(ErrEmptyPattern, "empty pattern for rule #%d in %s", i+1, name)
		}
	}
	return sp, nil
}

// LoadDir parses every .yaml and .yml file in dir, non-recursively.
// Returns parsed specs in directory order and the first error encountered.
func LoadDir(dir string) ([]*Spec, error) {
	entries, e := os.ReadDir(dir)
	if e != nil {
		return nil, ciel.FormatError(ErrBadDefinition, "cannot read language dir: %s", e.Error())
	}

	var specs []*Spec
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		content, e := os.ReadFile(path)
		if e != nil {
			return nil, ciel.FormatError(ErrBadDefinition, "cannot read %s: %s", path, e.Error())
		}
		sp, e := ParseYAML(path, content)
		if e != nil {
			return nil, e
		}
		specs = append(specs, sp)
	}
	return specs, nil
}
