// Package model defines the data structures shared by the oztags pipeline.
package model

import "strings"

// Path represents a file system path.
type Path string

// SymbolKind classifies a declaration found in Oz source.
type SymbolKind string

const (
	// KindProcedure covers both `proc` and `fun` declarations.
	KindProcedure SymbolKind = "procedure"
	// KindClass covers `class` declarations.
	KindClass SymbolKind = "class"
	// KindMethod covers `meth` declarations inside a class body.
	KindMethod SymbolKind = "method"
)

// Access distinguishes public methods (atom names) from private ones
// (variable names, with or without a leading `!`).
type Access string

// Available Access values.
const (
	AccessPublic  Access = "public"
	AccessPrivate Access = "private"
)

// kindChars is the fixed kind-character table consumed by the editor
// integration. Any new SymbolKind needs a matching entry on the
// consumer side before it may be added here.
var kindChars = map[SymbolKind]byte{
	KindProcedure: 'f',
	KindClass:     'c',
	KindMethod:    'm',
}

var charKinds = map[byte]SymbolKind{
	'f': KindProcedure,
	'c': KindClass,
	'm': KindMethod,
}

// Char returns the single-character tag kind for k, or 0 for an
// unknown kind.
func (k SymbolKind) Char() byte {
	return kindChars[k]
}

// KindForChar is the inverse of SymbolKind.Char.
func KindForChar(c byte) (SymbolKind, bool) {
	k, ok := charKinds[c]
	return k, ok
}

// Symbol is one tag record: a named declaration with its location and
// enclosing scope chain.
type Symbol struct {
	Name string
	Kind SymbolKind
	// Access is only meaningful for methods.
	Access Access
	File   Path
	Line   int
	// Scope holds the names of the enclosing named declarations,
	// outermost first. Empty for top-level symbols.
	Scope []string
	// ScopeKind is the kind of the innermost enclosing named
	// declaration. Only meaningful when Scope is non-empty.
	ScopeKind SymbolKind
	// Signature is reserved for the declaration's argument list.
	// TODO: populate from the tokens between `{` and `}`.
	Signature string
}

// Key identifies a symbol for deduplication.
type Key struct {
	Name string
	File Path
	Line int
}

// Key returns the deduplication key for s.
func (s Symbol) Key() Key {
	return Key{Name: s.Name, File: s.File, Line: s.Line}
}

// ScopeName returns the comma-joined scope chain, outermost first.
// Empty for top-level symbols.
func (s Symbol) ScopeName() string {
	return strings.Join(s.Scope, ",")
}
