// Package registry holds compiled rule lists keyed by language name.
package registry

import (
	"sort"
	"sync"

	"github.com/6112/ciel"
	"github.com/6112/ciel/lang"
	"github.com/6112/ciel/rule"
	"github.com/6112/ciel/scanner"
)

// Error codes used by registry:
const (
	// ErrUnknownLanguage indicates a lookup for a name that was never registered.
	ErrUnknownLanguage = ciel.RegistryErrors + iota

	// ErrLanguageDefined indicates an attempt to register a name twice.
	ErrLanguageDefined
)

// Registry maps language names to compiled rule lists. Populate it at
// startup and treat it as read-only afterwards: lookups take no lock,
// so concurrent scans may resolve languages freely once registration
// is done.
type Registry struct {
	rules map[string][]rule.Rule
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{rules: map[string][]rule.Rule{}}
}

// Register compiles spec and stores the result under spec.Name.
// Returns a ciel.Error if the name is already taken or a pattern in
// the spec does not compile.
func (r *Registry) Register(spec *lang.Spec) error {
	if _, defined := r.rules[spec.Name]; defined {
		return ciel.FormatError(ErrLanguageDefined, "language %q already registered", spec.Name)
	}

	compiled, e := rule.Compile(spec)
	if e != nil {
		return e
	}
	r.rules[spec.Name] = compiled
	return nil
}

// RegisterAll registers every spec, stopping at the first error.
func (r *Registry) RegisterAll(specs []*lang.Spec) error {
	for _, sp := range specs {
		if e := r.Register(sp); e != nil {
			return e
		}
	}
	return nil
}

// Resolve returns the compiled rule list for name.
// An unknown name is a normal condition, reported through the second
// result; the caller typically skips highlighting when it occurs.
func (r *Registry) Resolve(name string) ([]rule.Rule, bool) {
	rules, found := r.rules[name]
	return rules, found
}

// Names returns all registered language names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Highlight scans text with the named language's rules and renders the
// spans as HTML. Returns "" and a ciel.Error with ErrUnknownLanguage
// code when the name is not registered.
func (r *Registry) Highlight(name, text string) (string, error) {
	rules, found := r.Resolve(name)
	if !found {
		return "", ciel.FormatError(ErrUnknownLanguage, "no such language: %q", name)
	}
	return scanner.HTML(scanner.Scan(text, rules)), nil
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the shared registry of builtin language definitions,
// built on first use. Builtin definitions are expected to compile, so
// a failure here is a defect in the lang package and panics.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = New()
		for _, sp := range lang.Builtin() {
			if e := defaultReg.Register(sp); e != nil {
				panic(e)
			}
		}
	})
	return defaultReg
}
