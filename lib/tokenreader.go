package lib

// TokenReader is the surface a downstream consumer (a future parser, a
// renderer) reads a completed token sequence through.
type TokenReader interface {
	Next() (tok Token, done bool)
	Peek() (tok Token, done bool)
}

// sliceReader is a plain cursor over an already-complete token sequence.
// Scanning is fully sequential here, so no buffering is needed between the
// lexer and its consumers.
type sliceReader struct {
	tokens []Token
	pos    int
}

// NewTokenReader returns a TokenReader over tokens, yielding them in order.
// done becomes true once the sequence (including its EOF token) is
// exhausted.
func NewTokenReader(tokens []Token) TokenReader {
	return &sliceReader{tokens: tokens}
}

func (r *sliceReader) Next() (Token, bool) {
	if r.pos >= len(r.tokens) {
		return Token{}, true
	}
	tok := r.tokens[r.pos]
	r.pos++
	return tok, false
}

func (r *sliceReader) Peek() (Token, bool) {
	if r.pos >= len(r.tokens) {
		return Token{}, true
	}
	return r.tokens[r.pos], false
}
