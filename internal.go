package logos

// The operations in this file, together with the Apply functions, form the
// contract between the lexer and a token type's transition function. They
// are exported because generated matchers live in other packages, but they
// are not meant for code that merely consumes tokens.

// ReadAhead performs a bounds-checked chunk read n bytes past the end of the
// current span. A false result means the read would cross the end of input.
func ReadAhead[C Chunk, T any, S Source](l *Lexer[T, S], n int) (C, bool) {
	return Read[C](l.source, l.tokenEnd+n)
}

// ReadAheadUnchecked reads a chunk n bytes past the end of the current span
// with no bounds checks. The matcher must already have proven the read
// in-bounds.
func ReadAheadUnchecked[C Chunk, T any, S Source](l *Lexer[T, S], n int) C {
	return ReadUnchecked[C](l.source, l.tokenEnd+n)
}

// TestAhead reads a chunk n bytes past the end of the current span and
// reports whether pred accepts it. A read that would cross the end of input
// is false without invoking pred; this is how matchers ask "does the next
// window match class X" without a separate bounds check.
func TestAhead[C Chunk, T any, S Source](l *Lexer[T, S], n int, pred func(C) bool) bool {
	c, ok := Read[C](l.source, l.tokenEnd+n)
	return ok && pred(c)
}

// BumpUnchecked advances the end of the current span by n bytes without
// boundary validation. Matchers know the shape of what they matched and must
// only advance by amounts that keep the offset on a boundary.
func (l *Lexer[T, S]) BumpUnchecked(n int) {
	l.tokenEnd += n
}

// Trivia discards the current candidate span, moving its start up to its
// end.
func (l *Lexer[T, S]) Trivia() {
	l.tokenStart = l.tokenEnd
}

// End commits end of input as the result of the current pull.
func (l *Lexer[T, S]) End() {
	l.state = slotEnd
}

// Set commits token as the result of the current match.
func (l *Lexer[T, S]) Set(token T) {
	l.state = slotToken
	l.result = Result[T]{Value: token}
}

// SetErr commits err as the result of the current match.
func (l *Lexer[T, S]) SetErr(err error) {
	l.state = slotToken
	l.result = Result[T]{Err: err}
}

// Fail moves the end of the span forward to the nearest boundary, then
// commits the unknown-token error. Matchers call it when no branch matches;
// the correction keeps an error span from ending inside a multi-byte
// character the match attempt gave up on.
func (l *Lexer[T, S]) Fail() {
	l.tokenEnd = nextBoundary(l.source, l.tokenEnd, l.text)
	l.SetErr(l.UnknownToken())
}

// skip discards the current match and marks the slot so the pull loop in
// Next rescans from the new cursor position.
func (l *Lexer[T, S]) skip() {
	l.Trivia()
	l.state = slotRescan
}
