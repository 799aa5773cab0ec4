// Package lang defines declarative language descriptions compiled by the rule package.
package lang

// Class labels attached to recognized spans. A renderer maps these to
// presentation (CSS classes, terminal colors). An empty class means the
// matched text is recognized but left unwrapped.
const (
	ClassKeyword = "keyword"
	ClassValue   = "value"
	ClassBuiltin = "builtin"
	ClassString  = "string"
	ClassComment = "comment"
	ClassRegexp  = "regexp"
)

// ExtraRule is one explicit matcher in a language description.
// Patterns use Go regexp syntax; they are anchored during compilation,
// so a pattern must describe the lexeme itself, not its position.
type ExtraRule struct {
	// Pattern matches the lexeme (Simple rule) or its opening
	// delimiter (Delimited rule) at the start of the remaining line.
	Pattern string `yaml:"pattern"`

	// End, if non-empty, makes the rule Delimited: after Pattern
	// matches, input is consumed line by line until End matches.
	End string `yaml:"end,omitempty"`

	// Class is the label for the matched span, empty to skip.
	Class string `yaml:"class,omitempty"`
}

// Spec is a declarative description of one language's lexical rules.
// A Spec is plain data: it is compiled into matchers by rule.Compile
// and never mutated afterwards.
type Spec struct {
	// Name is the language name used for registry lookup.
	Name string `yaml:"name"`

	// Extra contains explicit rules tried before all standard rules,
	// in the given order.
	Extra []ExtraRule `yaml:"rules,omitempty"`

	// Keywords, Constants, and Builtins list exact words recognized as
	// ClassKeyword, ClassValue, and ClassBuiltin respectively.
	Keywords  []string `yaml:"keywords,omitempty"`
	Constants []string `yaml:"constants,omitempty"`
	Builtins  []string `yaml:"builtins,omitempty"`

	// DoubleQuoted and SingleQuoted enable the standard escape-aware
	// string rule for the corresponding delimiter.
	DoubleQuoted bool `yaml:"double_quoted,omitempty"`
	SingleQuoted bool `yaml:"single_quoted,omitempty"`

	// Comment is the single-line comment delimiter, empty if the
	// language has none.
	Comment string `yaml:"comment,omitempty"`
}
