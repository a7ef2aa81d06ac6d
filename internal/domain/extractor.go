package domain

import (
	m "github.com/kennytm/oztags/internal/model"
)

type extractorState uint8

const (
	stInit extractorState = iota
	stProc                // after `proc`/`fun`, before `{` or a bare name
	stProcBrace           // after `proc ... {`, expecting the name or `$`
	stClass               // after `class`, expecting the name
	stMeth                // after `meth`, expecting the name or `!`
)

// scopeFrame is one entry of the nesting stack. Anonymous blocks
// (local, if, thread, ...) push frames with an empty name so `end`
// bookkeeping stays balanced.
type scopeFrame struct {
	name string
	kind m.SymbolKind
}

// Extractor walks one file's token stream and collects tag records for
// the declarations it recognizes. The scanning heuristic is
// approximate for the real grammar; it never fails, it only degrades.
type Extractor struct {
	file          m.Path
	state         extractorState
	candidate     string // bare name seen after proc/fun, used if no `{Name}` follows
	candidateLine int
	stack         []scopeFrame
	symbols       []m.Symbol
	diags         []m.Diagnostic
}

// NewExtractor creates an Extractor for the given file.
func NewExtractor(file m.Path) *Extractor {
	return &Extractor{file: file}
}

// Feed advances the state machine by one token.
func (e *Extractor) Feed(tok m.Token) {
	// A token that terminates a pending declaration is fed again from
	// the initial state, so e.g. the `end` in `proc p1 end` still pops.
	for !e.step(tok) {
	}
}

// Finish closes any unterminated scopes and returns the collected
// records in file-scan order.
func (e *Extractor) Finish() ([]m.Symbol, []m.Diagnostic) {
	e.stack = nil
	e.state = stInit
	e.candidate = ""

	return e.symbols, e.diags
}

// step processes tok in the current state and reports whether the
// token was consumed.
func (e *Extractor) step(tok m.Token) bool {
	switch e.state {
	case stProc:
		return e.stepProc(tok)
	case stProcBrace:
		return e.stepProcBrace(tok)
	case stClass:
		return e.stepClass(tok)
	case stMeth:
		return e.stepMeth(tok)
	default:
		return e.stepInit(tok)
	}
}

func (e *Extractor) stepInit(tok m.Token) bool {
	switch tok.Kind {
	case m.TokenProc:
		e.state = stProc
		e.candidate = ""

	case m.TokenClass:
		e.state = stClass

	case m.TokenMeth:
		e.state = stMeth

	case m.TokenEnd:
		e.pop(tok.Line)

	case m.TokenScopeStart:
		e.push(scopeFrame{kind: m.KindProcedure})
	}

	return true
}

func (e *Extractor) stepProc(tok m.Token) bool {
	switch tok.Kind {
	case m.TokenAtom, m.TokenVariable:
		// Could be the name (`proc p1 ... end`) or a modifier before
		// the head (`fun lazy {F ...}`); the braced form wins.
		e.candidate = tok.Text
		e.candidateLine = tok.Line

		return true

	case m.TokenLBrace:
		e.state = stProcBrace
		return true

	default:
		e.state = stInit

		if e.candidate != "" {
			e.emit(m.Symbol{
				Name: e.candidate,
				Kind: m.KindProcedure,
				File: e.file,
				Line: e.candidateLine,
			}, scopeFrame{name: e.candidate, kind: m.KindProcedure})
			e.candidate = ""
		}

		return false
	}
}

func (e *Extractor) stepProcBrace(tok m.Token) bool {
	e.state = stInit

	switch tok.Kind {
	case m.TokenVariable:
		e.emit(m.Symbol{
			Name: tok.Text,
			Kind: m.KindProcedure,
			File: e.file,
			Line: tok.Line,
		}, scopeFrame{name: tok.Text, kind: m.KindProcedure})

		return true

	case m.TokenDollar:
		// Anonymous procedure: opens a block, produces no record.
		e.push(scopeFrame{kind: m.KindProcedure})
		return true

	default:
		return false
	}
}

func (e *Extractor) stepClass(tok m.Token) bool {
	e.state = stInit

	switch tok.Kind {
	case m.TokenVariable, m.TokenAtom:
		e.emit(m.Symbol{
			Name: tok.Text,
			Kind: m.KindClass,
			File: e.file,
			Line: tok.Line,
		}, scopeFrame{name: tok.Text, kind: m.KindClass})

		return true

	default:
		return false
	}
}

func (e *Extractor) stepMeth(tok m.Token) bool {
	switch tok.Kind {
	case m.TokenExcl:
		return true

	case m.TokenAtom:
		e.emitMethod(tok, m.AccessPublic)
		return true

	case m.TokenVariable:
		e.emitMethod(tok, m.AccessPrivate)
		return true

	default:
		e.state = stInit
		return false
	}
}

// emitMethod records a method declaration, demoting it to a plain
// procedure when the innermost named scope is not a class.
func (e *Extractor) emitMethod(tok m.Token, access m.Access) {
	e.state = stInit

	if e.nearestNamedKind() == m.KindClass {
		e.emit(m.Symbol{
			Name:   tok.Text,
			Kind:   m.KindMethod,
			Access: access,
			File:   e.file,
			Line:   tok.Line,
		}, scopeFrame{name: tok.Text, kind: m.KindMethod})

		return
	}

	e.emit(m.Symbol{
		Name: tok.Text,
		Kind: m.KindProcedure,
		File: e.file,
		Line: tok.Line,
	}, scopeFrame{name: tok.Text, kind: m.KindProcedure})
}

// emit records sym with the current scope chain and pushes its frame.
func (e *Extractor) emit(sym m.Symbol, frame scopeFrame) {
	sym.Scope = e.namedChain()
	sym.ScopeKind = e.nearestNamedKind()
	e.symbols = append(e.symbols, sym)
	e.push(frame)
}

func (e *Extractor) push(frame scopeFrame) {
	e.stack = append(e.stack, frame)
}

// pop removes the innermost frame. Underflow is a no-op; heuristic
// scanning can misjudge block boundaries, so it is only a warning.
func (e *Extractor) pop(line int) {
	if len(e.stack) == 0 {
		e.diags = append(e.diags, m.Diagnostic{
			File:    e.file,
			Line:    line,
			Message: "unmatched end",
		})

		return
	}

	e.stack = e.stack[:len(e.stack)-1]
}

// namedChain returns the names of the enclosing named frames,
// outermost first. Anonymous frames are skipped.
func (e *Extractor) namedChain() []string {
	var chain []string

	for _, frame := range e.stack {
		if frame.name != "" {
			chain = append(chain, frame.name)
		}
	}

	return chain
}

// nearestNamedKind returns the kind of the innermost named frame, or
// "" when every enclosing frame is anonymous.
func (e *Extractor) nearestNamedKind() m.SymbolKind {
	for i := len(e.stack) - 1; i >= 0; i-- {
		if e.stack[i].name != "" {
			return e.stack[i].kind
		}
	}

	return ""
}
