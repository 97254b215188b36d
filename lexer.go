package logos

import "fmt"

// Span is a half-open range of byte offsets into the source.
type Span struct {
	Start, End int
}

// Spanned pairs a token with the span it was produced from. It is the item
// type of the Spanned adaptor.
type Spanned[T any] struct {
	Token T
	Span  Span
}

// Lexable is implemented by token types. Lex is the per-token-type
// transition function: invoked once per produced item, it inspects input
// through ReadAhead and friends, advances the span, and terminates by
// committing exactly one result (an Apply function, Set, SetErr, Fail or
// End). Lex implementations are ordinarily generated from a token grammar,
// but hand-written matchers work the same way; the receiver is always the
// zero value and carries no state.
type Lexable[T any, S Source] interface {
	Lex(*Lexer[T, S])
}

type slotState uint8

const (
	slotUnset slotState = iota
	slotToken
	slotEnd
	slotRescan
)

// Lexer drives a token type's transition function over a source buffer,
// tracking the span of the current token and handing out zero-copy views of
// the input. T is the token type, S the source type it lexes.
//
// A lexer is owned by one logical caller at a time and performs no
// synchronization of its own.
type Lexer[T any, S Source] struct {
	// Extras is arbitrary user state riding along with the lexer, readable
	// and writable from callbacks. Morph carries it to the new lexer
	// unchanged.
	Extras any

	source S
	text   bool

	tokenStart int
	tokenEnd   int

	state  slotState
	result Result[T]

	lex  func(*Lexer[T, S])
	errf func(*Lexer[T, S]) error
}

// New builds a lexer for token type T over source, with the cursor at offset
// zero and no committed token.
//
//	lex := logos.New[Token]("1 + alpha")
func New[T Lexable[T, S], S Source](source S) *Lexer[T, S] {
	return WithExtras[T](source, nil)
}

// WithExtras builds a lexer carrying initial user state in Extras.
func WithExtras[T Lexable[T, S], S Source](source S, extras any) *Lexer[T, S] {
	var zero T
	l := &Lexer[T, S]{
		Extras: extras,
		source: source,
		text:   isText[S](),
		lex:    zero.Lex,
	}
	if ep, ok := any(zero).(ErrorProvider[T, S]); ok {
		l.errf = ep.UnknownToken
	} else {
		l.errf = func(*Lexer[T, S]) error { return UnknownTokenError{} }
	}
	return l
}

// Morph rebinds a lexer to a different token type, preserving the source,
// the cursor position and Extras, and discarding any pending result. It is
// the mode-switch operation for context-sensitive input: match a delimiter,
// morph to the inner token type, lex to the closing delimiter, morph back.
// The original lexer should be considered relinquished.
func Morph[T2 Lexable[T2, S], T any, S Source](l *Lexer[T, S]) *Lexer[T2, S] {
	out := WithExtras[T2](l.source, l.Extras)
	out.tokenStart = l.tokenStart
	out.tokenEnd = l.tokenEnd
	return out
}

// Span returns the current token's byte offsets.
func (l *Lexer[T, S]) Span() Span {
	return Span{l.tokenStart, l.tokenEnd}
}

// Source returns the buffer the lexer reads.
func (l *Lexer[T, S]) Source() S {
	return l.source
}

// Slice returns the source under the current span. The view is zero-copy
// and stays valid as long as the source does.
func (l *Lexer[T, S]) Slice() S {
	return sliceRaw(l.source, l.tokenStart, l.tokenEnd, l.text)
}

// Remainder returns everything past the current span, zero-copy.
func (l *Lexer[T, S]) Remainder() S {
	return sliceRaw(l.source, l.tokenEnd, len(l.source), l.text)
}

// UnknownToken builds, without committing it, the error value an
// unrecognized token at the current position would produce: an
// UnknownTokenError, or whatever the token type's ErrorProvider returns.
// Callbacks use it to fail with the standard error.
func (l *Lexer[T, S]) UnknownToken() error {
	return l.errf(l)
}

// Bump advances the end of the current span by n bytes. It panics if the new
// offset is not a legal boundary for the source kind: manual lexing logic
// must only advance by amounts it has verified against the input.
func (l *Lexer[T, S]) Bump(n int) {
	if n < 0 {
		panic(fmt.Sprintf("logos: Bump(%d) with negative size", n))
	}
	l.tokenEnd += n
	if !boundaryAt(l.source, l.tokenEnd, l.text) {
		panic(fmt.Sprintf("logos: Bump(%d) lands at %d, which is not a boundary", n, l.tokenEnd))
	}
}

// Clone returns an independent lexer at the same position. The clone shares
// the source buffer, and shares Extras if it holds a reference type.
func (l *Lexer[T, S]) Clone() *Lexer[T, S] {
	clone := *l
	return &clone
}
