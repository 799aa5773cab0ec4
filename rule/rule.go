// Package rule compiles declarative language descriptions into ordered
// matcher lists used by the scanner.
package rule

import (
	"regexp"
	"strings"

	"github.com/6112/ciel"
	"github.com/6112/ciel/lang"
)

// Error codes used by rule:
const (
	// ErrBadPattern indicates a pattern in the language description
	// that is not a valid regular expression.
	ErrBadPattern = ciel.CompileErrors + iota
)

// Rule is one compiled matcher. Start is anchored so it can only match
// at the very beginning of the text it is tested against; this is what
// makes "first match wins, consume exactly that much" well-defined.
type Rule struct {
	// Start matches the whole lexeme (Simple rule) or its opening
	// delimiter (Delimited rule) at the start of the remaining line.
	Start *regexp.Regexp

	// End is nil for Simple rules. For Delimited rules it is searched,
	// unanchored, in each successive line until it matches.
	End *regexp.Regexp

	// Class is the label for the matched span, empty for skip rules.
	Class string
}

// Delimited reports whether the rule spans lines until End matches.
func (r Rule) Delimited() bool {
	return r.End != nil
}

// Compile translates a language description into an ordered rule list.
// Priority is list order, first tried first:
//
//  1. whitespace skip
//  2. spec.Extra, in the given order
//  3. keyword, constant, and builtin word lists (each when present)
//  4. numeric literals
//  5. quoted strings (when enabled)
//  6. single-line comments (when a delimiter is set)
//  7. word-run skip
//
// Compilation is pure: the same spec always yields the same list.
// Returns nil and a ciel.Error if any pattern fails to compile.
func Compile(spec *lang.Spec) ([]Rule, error) {
	rules := make([]Rule, 0, len(spec.Extra)+8)
	rules = append(rules, Rule{Start: anchored(`\s+`)})

	for _, er := range spec.Extra {
		start, e := anchor(er.Pattern, spec.Name)
		if e != nil {
			return nil, e
		}
		r := Rule{Start: start, Class: er.Class}
		if er.End != "" {
			r.End, e = compile(er.End, spec.Name)
			if e != nil {
				return nil, e
			}
		}
		rules = append(rules, r)
	}

	if len(spec.Keywords) > 0 {
		rules = append(rules, wordRule(spec.Keywords, lang.ClassKeyword))
	}
	if len(spec.Constants) > 0 {
		rules = append(rules, wordRule(spec.Constants, lang.ClassValue))
	}
	if len(spec.Builtins) > 0 {
		rules = append(rules, wordRule(spec.Builtins, lang.ClassBuiltin))
	}

	// Hexadecimal form first: alternatives are tried in order, and the
	// decimal form would otherwise claim the "0" of "0x1f".
	rules = append(rules, Rule{
		Start: anchored(`0x[0-9a-fA-F]+|-?\d+(?:\.\d+)?|\.\d+`),
		Class: lang.ClassValue,
	})

	if str := stringPattern(spec); str != "" {
		rules = append(rules, Rule{Start: anchored(str), Class: lang.ClassString})
	}
	if spec.Comment != "" {
		rules = append(rules, Rule{
			Start: anchored(regexp.QuoteMeta(spec.Comment) + `.*`),
			Class: lang.ClassComment,
		})
	}

	rules = append(rules, Rule{Start: anchored(`\w+`)})
	return rules, nil
}

func compile(pattern, name string) (*regexp.Regexp, error) {
	re, e := regexp.Compile(pattern)
	if e != nil {
		return nil, ciel.FormatError(ErrBadPattern, "incorrect pattern /%s/ for %q (%s)", pattern, name, e.Error())
	}
	return re, nil
}

func anchor(pattern, name string) (*regexp.Regexp, error) {
	return compile(`^(?:`+pattern+`)`, name)
}

// anchored is anchor for patterns known to be valid.
func anchored(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + pattern + `)`)
}

func wordRule(words []string, class string) Rule {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return Rule{
		Start: anchored(`(?:` + strings.Join(quoted, `|`) + `)\b`),
		Class: class,
	}
}

func stringPattern(spec *lang.Spec) string {
	const (
		double = `"(?:[^"\\]|\\.)*"`
		single = `'(?:[^'\\]|\\.)*'`
	)
	switch {
	case spec.DoubleQuoted && spec.SingleQuoted:
		return double + `|` + single
	case spec.DoubleQuoted:
		return double
	case spec.SingleQuoted:
		return single
	}
	return ""
}
