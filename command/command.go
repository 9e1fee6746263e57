// Package command assembles ordered shell command token sequences.
package command

import "strings"

// Line accumulates command tokens in a fixed order. The zero value is not
// usable; start with New.
type Line struct {
	tokens []string
}

// New starts a line with the tool's invocation name.
func New(name string) *Line {
	return &Line{tokens: []string{name}}
}

// Arg appends a positional token. Empty values are suppressed.
func (l *Line) Arg(v string) *Line {
	if v != "" {
		l.tokens = append(l.tokens, v)
	}
	return l
}

// Quoted appends a positional token wrapped in double quotes. Empty values
// are suppressed. Embedded quote characters are not escaped.
func (l *Line) Quoted(v string) *Line {
	if v != "" {
		l.tokens = append(l.tokens, `"`+v+`"`)
	}
	return l
}

// Flag appends a bare flag token.
func (l *Line) Flag(name string) *Line {
	l.tokens = append(l.tokens, name)
	return l
}

// FlagIf appends a bare flag token when on is true.
func (l *Line) FlagIf(name string, on bool) *Line {
	if on {
		l.tokens = append(l.tokens, name)
	}
	return l
}

// FlagValue appends "name v" when v is non-empty. Numeric-like values pass
// through as literal strings.
func (l *Line) FlagValue(name, v string) *Line {
	if v != "" {
		l.tokens = append(l.tokens, name, v)
	}
	return l
}

// FlagQuoted appends `name "v"` when v is non-empty. Used for file paths,
// URLs and header strings. Embedded quote characters are not escaped.
func (l *Line) FlagQuoted(name, v string) *Line {
	if v != "" {
		l.tokens = append(l.tokens, name, `"`+v+`"`)
	}
	return l
}

// FlagSingle appends `name 'v'` when v is non-empty. Used for raw textual
// bodies. Embedded quote characters are not escaped.
func (l *Line) FlagSingle(name, v string) *Line {
	if v != "" {
		l.tokens = append(l.tokens, name, `'`+v+`'`)
	}
	return l
}

// Raw appends free-text extra options verbatim, unvalidated. Surrounding
// whitespace is trimmed; empty text is suppressed.
func (l *Line) Raw(s string) *Line {
	s = strings.TrimSpace(s)
	if s != "" {
		l.tokens = append(l.tokens, s)
	}
	return l
}

// String joins the accumulated tokens with single spaces.
func (l *Line) String() string {
	return strings.Join(l.tokens, " ")
}
