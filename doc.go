// Package logos is the runtime engine for generated lexers. It owns the
// cursor and token state machine, zero-copy views into the input, and the
// iteration layer; the per-token-type matching logic is supplied from
// outside as a transition function, ordinarily produced by a code generator
// from a token grammar, though hand-written matchers satisfy the same
// contract.
//
// A token type implements Lexable by providing that transition function.
// Each call must inspect input through the chunked reads (ReadAhead,
// TestAhead and friends), advance the span, and finish by committing exactly
// one result:
//
//	type Token int
//
//	const (
//	    Word Token = iota
//	    Number
//	)
//
//	func (Token) Lex(l *logos.Lexer[Token, string]) {
//	    b, ok := logos.ReadAhead[byte](l, 0)
//	    if !ok {
//	        l.End()
//	        return
//	    }
//	    switch {
//	    case b == ' ':
//	        l.BumpUnchecked(1)
//	        logos.ApplySkip(l, logos.Skip{})
//	    case b >= '0' && b <= '9':
//	        l.BumpUnchecked(1)
//	        l.Set(Number)
//	    case b >= 'a' && b <= 'z':
//	        l.BumpUnchecked(1)
//	        l.Set(Word)
//	    default:
//	        l.BumpUnchecked(1)
//	        l.Fail()
//	    }
//	}
//
// Lexing is pull-based:
//
//	lex := logos.New[Token]("ab 12")
//	for {
//	    r, ok := lex.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(r, lex.Slice(), lex.Span())
//	}
//
// Sources are either text (~string, offsets respect UTF-8 character
// boundaries) or raw bytes (~[]byte, any offset is legal). Slice, Remainder
// and Source alias the input; nothing is copied.
//
// Callbacks attached to token patterns report their outcome in whatever
// shape is natural (a payload, a bool, comma-ok, value-and-error, Skip, a
// Filter, or a full Output); the Apply functions normalize every shape into
// skip/construct/emit/error. Skipping rescans from the end of the skipped
// match within the same pull, so skipped input never surfaces as a token.
//
// The iteration layer composes: Spanned pairs tokens with their spans,
// MapWith transforms items while exposing the lexer, Lookahead buffers a
// single item for peeking, and Boxed erases the concrete stream type behind
// dynamic dispatch while IntoLexer can still recover the concrete lexer.
// Morph switches an in-flight lexer to a different token type at the same
// position for context-sensitive input.
package logos
