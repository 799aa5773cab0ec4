// Package scanner walks an input text with a compiled rule list and
// emits a flat stream of classified spans.
package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/6112/ciel/rule"
)

// Span is one contiguous run of output text, either labeled with a
// class or left unclassified (Class == ""). Line and Col are the
// 1-based position of the span's first character in the input.
// Concatenating the texts of all spans emitted for an input reproduces
// that input exactly; the scanner re-annotates, it never transforms.
type Span struct {
	Text  string
	Class string

	Line, Col int
}

// Scanner applies one rule list to one input text. A Scanner serves a
// single Run call and is discarded afterwards; it owns its cursor
// exclusively, so concurrent scans only need to share the read-only
// rule list.
type Scanner struct {
	rules []rule.Rule
	cur   *cursor
	spans []Span
}

// New creates a Scanner for the given input text.
func New(text string, rules []rule.Rule) *Scanner {
	return &Scanner{rules: rules, cur: newCursor(text)}
}

// Scan tokenizes text with rules in one call.
func Scan(text string, rules []rule.Rule) []Span {
	return New(text, rules).Run()
}

// Run consumes the whole input and returns the emitted spans.
// Rules are tried in list order and the first match wins, even when a
// later rule would match a longer lexeme; when no rule matches, one
// raw character is emitted unclassified. Run never fails: every input
// produces output, and it terminates for any rule list whose anchored
// patterns cannot match the empty string.
func (s *Scanner) Run() []Span {
	for !s.cur.done() {
		if !s.step() {
			s.fallback()
		}
	}
	return s.spans
}

// step tries every rule against the remainder of the current line and
// applies the first one that matches. Reports whether any rule matched.
func (s *Scanner) step() bool {
	rem := s.cur.remainder()
	for _, r := range s.rules {
		loc := r.Start.FindStringIndex(rem)
		if loc == nil || loc[1] == 0 {
			continue
		}
		if r.Delimited() {
			s.applyDelimited(r, rem[:loc[1]])
		} else {
			s.emit(rem[:loc[1]], r.Class)
			s.cur.advance(loc[1])
		}
		return true
	}
	return false
}

// applyDelimited consumes from the matched start delimiter up to and
// including the first match of the end pattern, crossing line
// boundaries as needed, and emits the whole stretch as one span.
// An end pattern never found leaves the span running silently to the
// end of input.
func (s *Scanner) applyDelimited(r rule.Rule, start string) {
	line, col := s.cur.position()
	var b strings.Builder
	b.WriteString(start)
	s.cur.advance(len(start))

	for {
		rem := s.cur.remainder()
		if loc := r.End.FindStringIndex(rem); loc != nil {
			b.WriteString(rem[:loc[1]])
			s.cur.advance(loc[1])
			break
		}

		b.WriteString(rem)
		s.cur.advance(len(rem))
		if s.cur.lastRow() {
			break
		}
		b.WriteString("\n")
		s.cur.nextLine()
	}

	s.spans = append(s.spans, Span{b.String(), r.Class, line, col})
}

// fallback emits exactly one raw character (a newline when the cursor
// sits at end of line) and advances past it. This is what guarantees
// forward progress and total coverage of the input.
func (s *Scanner) fallback() {
	if s.cur.atLineEnd() {
		s.emit("\n", "")
		s.cur.nextLine()
		return
	}

	rem := s.cur.remainder()
	_, size := utf8.DecodeRuneInString(rem)
	s.emit(rem[:size], "")
	s.cur.advance(size)
}

func (s *Scanner) emit(text, class string) {
	line, col := s.cur.position()
	s.spans = append(s.spans, Span{text, class, line, col})
}

// HTML renders spans in the highlighter's output format: every
// classified span is wrapped as <span class="...">...</span>, every
// unclassified span appears verbatim. Span text is not escaped; when
// the input needs HTML escaping, escape it before scanning.
func HTML(spans []Span) string {
	var b strings.Builder
	for _, sp := range spans {
		if sp.Class == "" {
			b.WriteString(sp.Text)
			continue
		}
		b.WriteString(`<span class="`)
		b.WriteString(sp.Class)
		b.WriteString(`">`)
		b.WriteString(sp.Text)
		b.WriteString(`</span>`)
	}
	return b.String()
}

// Text concatenates span texts, reproducing the scanned input exactly.
func Text(spans []Span) string {
	var b strings.Builder
	for _, sp := range spans {
		b.WriteString(sp.Text)
	}
	return b.String()
}
