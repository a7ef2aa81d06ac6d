// Package domain implements the oztags pipeline: lexical scanning,
// declaration extraction, and the indexing workflow.
package domain

import (
	m "github.com/kennytm/oztags/internal/model"
)

// LexRules describes the lexical shape of the scanned language as
// data. The exact comment and quoting rules of Oz are approximate, so
// they are configuration rather than hard-coded assumptions.
type LexRules struct {
	// LineComment starts a comment running to end of line.
	LineComment string
	// BlockOpen/BlockClose delimit block comments. Block comments
	// nest: only the close matching the outermost open ends the span.
	BlockOpen  string
	BlockClose string
	// Keywords maps declaration and block keywords to token kinds.
	Keywords map[string]m.TokenKind
	// ScopeStarts are keywords opening an anonymous block that a
	// matching `end` will close.
	ScopeStarts map[string]struct{}
}

// OzRules returns the lexical rules for Oz source.
func OzRules() LexRules {
	scopeStarts := make(map[string]struct{})
	for _, kw := range []string{
		"local", "if", "case", "lock", "thread", "try", "raise",
		"not", "cond", "or", "dis", "choice",
		"functor", "for",
	} {
		scopeStarts[kw] = struct{}{}
	}

	return LexRules{
		LineComment: "%",
		BlockOpen:   "/*",
		BlockClose:  "*/",
		Keywords: map[string]m.TokenKind{
			"class": m.TokenClass,
			"proc":  m.TokenProc,
			"fun":   m.TokenProc,
			"meth":  m.TokenMeth,
			"end":   m.TokenEnd,
		},
		ScopeStarts: scopeStarts,
	}
}

// Scanner converts source lines into tokens, carrying block-comment
// state across lines. One Scanner instance scans one file.
type Scanner struct {
	rules        LexRules
	commentDepth int
	commentLine  int // line where the outermost open block comment started
}

// NewScanner creates a Scanner for the given rules.
func NewScanner(rules LexRules) *Scanner {
	return &Scanner{rules: rules}
}

// ScanLine tokenizes a single line. lineno is 1-based.
func (s *Scanner) ScanLine(line string, lineno int) []m.Token {
	var tokens []m.Token

	i := 0
	for i < len(line) {
		if s.commentDepth > 0 {
			i = s.skipBlockComment(line, i)
			continue
		}

		c := line[i]

		switch {
		case c == ' ' || c == '\t':
			i++

		case hasPrefixAt(line, i, s.rules.LineComment):
			return tokens

		case hasPrefixAt(line, i, s.rules.BlockOpen):
			s.commentDepth = 1
			s.commentLine = lineno
			i += len(s.rules.BlockOpen)

		case c == '"':
			// String literal: opaque span, never produces tokens.
			_, i = skipQuoted(line, i, '"')

		case c == '\'':
			text, next := skipQuoted(line, i, '\'')
			tokens = append(tokens, m.Token{Kind: m.TokenAtom, Text: text, Line: lineno})
			i = next

		case c == '`':
			text, next := skipQuoted(line, i, '`')
			tokens = append(tokens, m.Token{Kind: m.TokenVariable, Text: text, Line: lineno})
			i = next

		case c == '&':
			i = skipCharLiteral(line, i)

		case c == '{':
			tokens = append(tokens, m.Token{Kind: m.TokenLBrace, Text: "{", Line: lineno})
			i++

		case c == '!':
			if i+1 < len(line) && line[i+1] == '!' {
				i += 2
			} else {
				tokens = append(tokens, m.Token{Kind: m.TokenExcl, Text: "!", Line: lineno})
				i++
			}

		case c == '$':
			tokens = append(tokens, m.Token{Kind: m.TokenDollar, Text: "$", Line: lineno})
			i++

		case isWordStart(c):
			word, next := scanWord(line, i)
			if tok, ok := s.classifyWord(word, lineno); ok {
				tokens = append(tokens, tok)
			}
			i = next

		default:
			i++
		}
	}

	return tokens
}

// Finish reports scanner-level diagnostics once the whole file has
// been fed. An unterminated block comment extends to EOF; that is a
// warning, not an error.
func (s *Scanner) Finish(file m.Path) []m.Diagnostic {
	if s.commentDepth > 0 {
		return []m.Diagnostic{{
			File:    file,
			Line:    s.commentLine,
			Message: "unterminated block comment",
		}}
	}

	return nil
}

func (s *Scanner) skipBlockComment(line string, i int) int {
	switch {
	case hasPrefixAt(line, i, s.rules.BlockOpen):
		s.commentDepth++
		return i + len(s.rules.BlockOpen)

	case hasPrefixAt(line, i, s.rules.BlockClose):
		s.commentDepth--
		return i + len(s.rules.BlockClose)

	default:
		return i + 1
	}
}

func (s *Scanner) classifyWord(word string, lineno int) (m.Token, bool) {
	if kind, ok := s.rules.Keywords[word]; ok {
		return m.Token{Kind: kind, Text: word, Line: lineno}, true
	}

	if _, ok := s.rules.ScopeStarts[word]; ok {
		return m.Token{Kind: m.TokenScopeStart, Text: word, Line: lineno}, true
	}

	c := word[0]
	switch {
	case c >= 'a' && c <= 'z':
		return m.Token{Kind: m.TokenAtom, Text: word, Line: lineno}, true
	case c >= 'A' && c <= 'Z':
		return m.Token{Kind: m.TokenVariable, Text: word, Line: lineno}, true
	}

	// Leading underscore or digit: not a name.
	return m.Token{}, false
}

func hasPrefixAt(s string, i int, prefix string) bool {
	return prefix != "" && i+len(prefix) <= len(s) && s[i:i+len(prefix)] == prefix
}

// skipQuoted consumes a quoted form starting at the opening quote and
// returns the raw text (quotes included) and the index past the
// closing quote. An unterminated quote extends to end of line.
func skipQuoted(line string, i int, quote byte) (string, int) {
	j := i + 1
	for j < len(line) {
		switch line[j] {
		case '\\':
			j += 2
		case quote:
			return line[i : j+1], j + 1
		default:
			j++
		}
	}

	return line[i:], len(line)
}

// skipCharLiteral consumes an Oz character literal like &a, &\n or &\x41.
func skipCharLiteral(line string, i int) int {
	j := i + 1
	if j >= len(line) {
		return j
	}

	if line[j] != '\\' {
		return j + 1
	}

	j++
	if j < len(line) && (line[j] == 'x' || line[j] == 'X') {
		return j + 3
	}

	return j + 1
}

func isWordStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func scanWord(line string, i int) (string, int) {
	j := i
	for j < len(line) && isWordStart(line[j]) {
		j++
	}

	return line[i:j], j
}
