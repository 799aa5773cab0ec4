package lang

import (
	"path/filepath"
	"strings"
)

// Builtin returns the builtin language definitions shipped with ciel.
// The slice and its specs are freshly allocated on each call, so callers
// may extend them freely before registration.
func Builtin() []*Spec {
	return []*Spec{
		javascript(), css(), ruby(), html(), golang(), shell(),
	}
}

var extensions = map[string]string{
	".js":   "javascript",
	".mjs":  "javascript",
	".cjs":  "javascript",
	".css":  "css",
	".rb":   "ruby",
	".html": "html",
	".htm":  "html",
	".xml":  "html",
	".go":   "go",
	".sh":   "sh",
	".bash": "sh",
}

// ByExtension maps a file name to a builtin language name by its suffix.
// Returns "" when the suffix is not recognized.
func ByExtension(name string) string {
	return extensions[strings.ToLower(filepath.Ext(name))]
}

func javascript() *Spec {
	return &Spec{
		Name: "javascript",
		Extra: []ExtraRule{
			{Pattern: `/\*`, End: `\*/`, Class: ClassComment},
			{Pattern: `/(?:[^/\\\n]|\\.)+/[gimsuy]*`, Class: ClassRegexp},
		},
		Keywords: []string{
			"break", "case", "catch", "class", "const", "continue", "default",
			"delete", "do", "else", "extends", "finally", "for", "function",
			"if", "in", "instanceof", "let", "new", "of", "return", "switch",
			"this", "throw", "try", "typeof", "var", "void", "while", "yield",
		},
		Constants: []string{"true", "false", "null", "undefined", "NaN", "Infinity"},
		Builtins: []string{
			"document", "window", "console", "Array", "Boolean", "Date",
			"JSON", "Math", "Number", "Object", "Promise", "RegExp", "String",
			"parseInt", "parseFloat", "isNaN", "setTimeout", "setInterval",
		},
		DoubleQuoted: true,
		SingleQuoted: true,
		Comment:      "//",
	}
}

func css() *Spec {
	return &Spec{
		Name: "css",
		Extra: []ExtraRule{
			{Pattern: `/\*`, End: `\*/`, Class: ClassComment},
			{Pattern: `@[\w-]+`, Class: ClassKeyword},
			{Pattern: `!important\b`, Class: ClassKeyword},
			{Pattern: `#[0-9a-fA-F]{3,8}\b`, Class: ClassValue},
		},
		// Property names double as selector words; first-match order
		// decides the ambiguity, so these stay after Extra.
		Builtins: []string{
			"background-color", "background", "border-radius", "border",
			"box-shadow", "color", "display", "flex-direction", "flex",
			"font-family", "font-size", "font-weight", "font", "height",
			"justify-content", "line-height", "margin", "opacity", "overflow",
			"padding", "position", "text-align", "text-decoration", "top",
			"left", "right", "bottom", "width", "z-index",
		},
		DoubleQuoted: true,
		SingleQuoted: true,
	}
}

func ruby() *Spec {
	return &Spec{
		Name: "ruby",
		Extra: []ExtraRule{
			{Pattern: `=begin\b`, End: `=end`, Class: ClassComment},
			{Pattern: `:[A-Za-z_]\w*[?!]?`, Class: ClassValue},
			{Pattern: `@@?[A-Za-z_]\w*`, Class: ClassBuiltin},
			{Pattern: `/(?:[^/\\\n]|\\.)+/[eimnosux]*`, Class: ClassRegexp},
		},
		Keywords: []string{
			"alias", "and", "begin", "break", "case", "class", "def", "do",
			"elsif", "else", "end", "ensure", "for", "if", "in", "module",
			"next", "not", "or", "raise", "redo", "require", "rescue", "retry",
			"return", "self", "super", "then", "undef", "unless", "until",
			"when", "while", "yield",
		},
		Constants:    []string{"true", "false", "nil"},
		Builtins:     []string{"puts", "print", "p", "lambda", "proc", "attr_accessor", "attr_reader", "attr_writer", "new"},
		DoubleQuoted: true,
		SingleQuoted: true,
		Comment:      "#",
	}
}

// html expects entity-escaped input: the markup being highlighted must
// already have its angle brackets written as &lt; and &gt;.
func html() *Spec {
	return &Spec{
		Name: "html",
		Extra: []ExtraRule{
			{Pattern: `&lt;!--`, End: `--&gt;`, Class: ClassComment},
			{Pattern: `&lt;!\w[^&]*&gt;`, Class: ClassComment},
			{Pattern: `&lt;/?[A-Za-z][\w:-]*`, Class: ClassKeyword},
			{Pattern: `/?&gt;`, Class: ClassKeyword},
			{Pattern: `[\w-]+=`, Class: ClassBuiltin},
			{Pattern: `&(?:amp|quot|apos|nbsp|#\d+);`, Class: ClassValue},
		},
		DoubleQuoted: true,
		SingleQuoted: true,
	}
}

func golang() *Spec {
	return &Spec{
		Name: "go",
		Extra: []ExtraRule{
			{Pattern: `/\*`, End: `\*/`, Class: ClassComment},
			{Pattern: "`", End: "`", Class: ClassString},
		},
		Keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer",
			"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
			"interface", "map", "package", "range", "return", "select",
			"struct", "switch", "type", "var",
		},
		Constants: []string{"true", "false", "nil", "iota"},
		Builtins: []string{
			"append", "bool", "byte", "cap", "close", "complex128",
			"complex64", "copy", "delete", "error", "float32", "float64",
			"int16", "int32", "int64", "int8", "int", "len", "make", "new",
			"panic", "print", "println", "recover", "rune", "string",
			"uint16", "uint32", "uint64", "uint8", "uint", "uintptr",
		},
		DoubleQuoted: true,
		SingleQuoted: true,
		Comment:      "//",
	}
}

func shell() *Spec {
	return &Spec{
		Name: "sh",
		Extra: []ExtraRule{
			{Pattern: `\$\{[^}]*\}`, Class: ClassValue},
			{Pattern: `\$[A-Za-z_]\w*`, Class: ClassValue},
			{Pattern: `\$[?$#!@*]`, Class: ClassValue},
		},
		Keywords: []string{
			"case", "do", "done", "elif", "else", "esac", "fi", "for",
			"function", "if", "in", "local", "return", "select", "then",
			"until", "while",
		},
		Builtins: []string{
			"cd", "echo", "eval", "exec", "exit", "export", "printf", "read",
			"set", "shift", "source", "test", "trap", "unset",
		},
		DoubleQuoted: true,
		SingleQuoted: true,
		Comment:      "#",
	}
}
