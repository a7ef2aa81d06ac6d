package model

// TokenKind represents the type of token identified by the scanner.
type TokenKind uint8

// Token kinds. Comments, strings and character literals never produce
// tokens; the scanner skips them as opaque spans.
const (
	TokenClass TokenKind = iota
	TokenProc            // `proc` or `fun`
	TokenMeth
	TokenEnd
	TokenScopeStart // local, if, thread, ... anonymous block openers
	TokenAtom       // lowercase identifier or '...' quoted form
	TokenVariable   // uppercase identifier or `...` quoted form
	TokenLBrace     // {
	TokenExcl       // ! (but not !!)
	TokenDollar     // $
)

// Token is a lexical unit with its source position. Tokens are
// produced transiently by the scanner and consumed by the extractor;
// they are never persisted.
type Token struct {
	Kind TokenKind
	Text string
	Line int
}
