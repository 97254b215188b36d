package logos

// Result is one produced item: a token, or the error that stands in its
// place. Err is nil exactly when Value holds a token.
type Result[V any] struct {
	Value V
	Err   error
}

// Stream is the contract satisfied by every iterator that owns a lexer,
// directly or through other wrappers: pulling the next item, plus read
// access and consuming extraction of the underlying lexer. Wrappers also
// share the lexer-derived queries (Span, Slice, Remainder, Source, Extras)
// through an embedded handle, so stacking adaptors never hides the lexer.
type Stream[T any, S Source, I any] interface {
	Next() (I, bool)
	AsLexer() *Lexer[T, S]
	IntoLexer() *Lexer[T, S]
}

// lexref carries the underlying lexer for wrapper types. Every wrapper in a
// stack sees the same lexer, so the handle is captured once at construction
// and the derived queries below are promoted into each wrapper.
type lexref[T any, S Source] struct {
	lex *Lexer[T, S]
}

// AsLexer returns the underlying lexer.
func (r lexref[T, S]) AsLexer() *Lexer[T, S] { return r.lex }

// Span returns the underlying lexer's current span.
func (r lexref[T, S]) Span() Span { return r.lex.Span() }

// Source returns the buffer the underlying lexer reads.
func (r lexref[T, S]) Source() S { return r.lex.Source() }

// Slice returns the source under the underlying lexer's current span.
func (r lexref[T, S]) Slice() S { return r.lex.Slice() }

// Remainder returns everything past the underlying lexer's current span.
func (r lexref[T, S]) Remainder() S { return r.lex.Remainder() }

// Extras returns the user state carried by the underlying lexer. Mutate it
// through AsLexer.
func (r lexref[T, S]) Extras() any { return r.lex.Extras }

// Next pulls one item: it moves the span's start up to its end, invokes the
// transition function (again after every skipped match) and hands out
// whatever it committed. It returns false once input is exhausted; the
// cursor cannot advance past the end, so every later pull returns false
// too. Next panics if the transition function breaks its contract by
// committing nothing or by skipping a zero-width match.
func (l *Lexer[T, S]) Next() (Result[T], bool) {
	l.tokenStart = l.tokenEnd
	for {
		l.state = slotUnset
		l.result = Result[T]{}
		before := l.tokenEnd
		l.lex(l)
		switch l.state {
		case slotToken:
			r := l.result
			l.state = slotUnset
			l.result = Result[T]{}
			return r, true
		case slotEnd:
			l.state = slotUnset
			return Result[T]{}, false
		case slotRescan:
			if l.tokenEnd == before {
				panic("logos: skipped a zero-width match, which would rescan the same position forever")
			}
		default:
			panic("logos: transition function returned without committing a result")
		}
	}
}

// AsLexer returns the lexer itself, making a bare lexer usable wherever a
// Stream is expected.
func (l *Lexer[T, S]) AsLexer() *Lexer[T, S] { return l }

// IntoLexer returns the lexer itself, ending its use as a Stream.
func (l *Lexer[T, S]) IntoLexer() *Lexer[T, S] { return l }

// ReadAll pulls the lexer to exhaustion and returns every produced item.
func ReadAll[T any, S Source](l *Lexer[T, S]) []Result[T] {
	out := []Result[T]{}
	for {
		r, ok := l.Next()
		if !ok {
			return out
		}
		out = append(out, r)
	}
}

// MapWithLexer yields op(item, lexer) for each item of an inner stream. The
// inner stream advances before op runs, so the lexer state op observes
// reflects the item just produced, not the previous one.
type MapWithLexer[T any, S Source, I, O any] struct {
	lexref[T, S]
	inner Stream[T, S, I]
	op    func(I, *Lexer[T, S]) O
}

// MapWith wraps inner so that every item is transformed by op, which also
// receives the underlying lexer.
func MapWith[T any, S Source, I, O any](inner Stream[T, S, I], op func(I, *Lexer[T, S]) O) *MapWithLexer[T, S, I, O] {
	return &MapWithLexer[T, S, I, O]{
		lexref: lexref[T, S]{inner.AsLexer()},
		inner:  inner,
		op:     op,
	}
}

// Spanned wraps the lexer so every token comes paired with its span. Errors
// pass through unpaired. It is an instance of MapWith, not a special case.
func (l *Lexer[T, S]) Spanned() *MapWithLexer[T, S, Result[T], Result[Spanned[T]]] {
	return MapWith[T, S, Result[T], Result[Spanned[T]]](l, func(r Result[T], lex *Lexer[T, S]) Result[Spanned[T]] {
		if r.Err != nil {
			return Result[Spanned[T]]{Err: r.Err}
		}
		return Result[Spanned[T]]{Value: Spanned[T]{Token: r.Value, Span: lex.Span()}}
	})
}

// Next pulls from the inner stream and transforms the item.
func (m *MapWithLexer[T, S, I, O]) Next() (O, bool) {
	item, ok := m.inner.Next()
	if !ok {
		var zero O
		return zero, false
	}
	return m.op(item, m.lex), true
}

// IntoLexer extracts the underlying lexer from the inner stream.
func (m *MapWithLexer[T, S, I, O]) IntoLexer() *Lexer[T, S] {
	return m.inner.IntoLexer()
}

// iterator is the dynamically dispatched face of a boxed stream. IntoLexer
// is deliberately absent: extraction from a box must go through the
// statically captured unbox function.
type iterator[I any] interface {
	Next() (I, bool)
}

// BoxedLexer erases the concrete type of a lexer-bearing stream while
// keeping the way back: alongside the erased handle it carries the unbox
// function its Boxed constructor captured, which reconstitutes the concrete
// lexer. Exactly one of two things may happen to a box: it is dropped with
// the rest of the stream, or IntoLexer extracts the lexer, after which the
// box is spent.
type BoxedLexer[T any, S Source, I any] struct {
	lexref[T, S]
	inner iterator[I]
	unbox func(iterator[I]) *Lexer[T, S]
}

// Next pulls from the erased stream.
func (b *BoxedLexer[T, S, I]) Next() (I, bool) {
	return b.inner.Next()
}

// IntoLexer reverses the erasure and returns the concrete lexer. The box is
// spent afterwards; a second extraction panics.
func (b *BoxedLexer[T, S, I]) IntoLexer() *Lexer[T, S] {
	if b.inner == nil {
		panic("logos: lexer already extracted from this BoxedLexer")
	}
	inner, unbox := b.inner, b.unbox
	b.inner = nil
	b.unbox = nil
	b.lexref.lex = nil
	return unbox(inner)
}

// Boxed erases the lexer behind dynamic dispatch.
func (l *Lexer[T, S]) Boxed() *BoxedLexer[T, S, Result[T]] {
	return &BoxedLexer[T, S, Result[T]]{
		lexref: lexref[T, S]{l},
		inner:  l,
		unbox: func(it iterator[Result[T]]) *Lexer[T, S] {
			return it.(*Lexer[T, S]).IntoLexer()
		},
	}
}

// Boxed erases the adaptor behind dynamic dispatch.
func (m *MapWithLexer[T, S, I, O]) Boxed() *BoxedLexer[T, S, O] {
	return &BoxedLexer[T, S, O]{
		lexref: m.lexref,
		inner:  m,
		unbox: func(it iterator[O]) *Lexer[T, S] {
			return it.(*MapWithLexer[T, S, I, O]).IntoLexer()
		},
	}
}

// Boxed re-boxes an already erased stream.
func (b *BoxedLexer[T, S, I]) Boxed() *BoxedLexer[T, S, I] {
	return &BoxedLexer[T, S, I]{
		lexref: b.lexref,
		inner:  b,
		unbox: func(it iterator[I]) *Lexer[T, S] {
			return it.(*BoxedLexer[T, S, I]).IntoLexer()
		},
	}
}

// Lookahead adds single-item lookahead to a stream. The pending item is
// pulled lazily on the first peek and handed back by the next consuming
// call, so side effects of the inner stream happen exactly once per item no
// matter how often it is peeked.
type Lookahead[T any, S Source, I any] struct {
	lexref[T, S]
	inner  Stream[T, S, I]
	item   I
	itemOK bool
	filled bool
}

// Lookahead wraps the lexer in a single-item lookahead.
func (l *Lexer[T, S]) Lookahead() *Lookahead[T, S, Result[T]] {
	return &Lookahead[T, S, Result[T]]{lexref: lexref[T, S]{l}, inner: l}
}

// Lookahead wraps the adaptor in a single-item lookahead.
func (m *MapWithLexer[T, S, I, O]) Lookahead() *Lookahead[T, S, O] {
	return &Lookahead[T, S, O]{lexref: m.lexref, inner: m}
}

// Lookahead wraps the erased stream in a single-item lookahead.
func (b *BoxedLexer[T, S, I]) Lookahead() *Lookahead[T, S, I] {
	return &Lookahead[T, S, I]{lexref: b.lexref, inner: b}
}

func (p *Lookahead[T, S, I]) fill() {
	if !p.filled {
		p.item, p.itemOK = p.inner.Next()
		p.filled = true
	}
}

// Peek returns the next item without consuming it, pulling the inner stream
// only if nothing is pending. The second result is false once input is
// exhausted.
func (p *Lookahead[T, S, I]) Peek() (I, bool) {
	p.fill()
	return p.item, p.itemOK
}

// PeekMut returns a pointer to the pending item so it can be edited in
// place before being consumed. The pointer is valid until a consuming call.
func (p *Lookahead[T, S, I]) PeekMut() (*I, bool) {
	p.fill()
	if !p.itemOK {
		return nil, false
	}
	return &p.item, true
}

// Next consumes the pending item if there is one, and pulls the inner
// stream directly otherwise.
func (p *Lookahead[T, S, I]) Next() (I, bool) {
	if p.filled {
		p.filled = false
		item := p.item
		var zero I
		p.item = zero
		return item, p.itemOK
	}
	return p.inner.Next()
}

// NextIf consumes and returns the next item only if pred accepts it.
// Otherwise NextIf reports false and the item, including an exhausted
// result, stays pending for the next call.
func (p *Lookahead[T, S, I]) NextIf(pred func(I) bool) (I, bool) {
	item, ok := p.Next()
	if ok && pred(item) {
		return item, true
	}
	p.item = item
	p.itemOK = ok
	p.filled = true
	var zero I
	return zero, false
}

// IntoLexer extracts the underlying lexer, discarding any pending item.
func (p *Lookahead[T, S, I]) IntoLexer() *Lexer[T, S] {
	return p.inner.IntoLexer()
}

// Boxed erases the lookahead behind dynamic dispatch. A pending item stays
// pending and is delivered through the box.
func (p *Lookahead[T, S, I]) Boxed() *BoxedLexer[T, S, I] {
	return &BoxedLexer[T, S, I]{
		lexref: p.lexref,
		inner:  p,
		unbox: func(it iterator[I]) *Lexer[T, S] {
			return it.(*Lookahead[T, S, I]).IntoLexer()
		},
	}
}

// NextIfEq consumes and returns the next item only if it equals want.
func NextIfEq[T any, S Source, I comparable](p *Lookahead[T, S, I], want I) (I, bool) {
	return p.NextIf(func(item I) bool { return item == want })
}
