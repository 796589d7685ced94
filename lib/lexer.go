package lib

import (
	"fmt"
	"unicode"
)

// LexicalError is the single failure mode of a scan: no pattern matched at
// the current offset. It is fatal; a failed run yields no tokens and no
// symbols.
type LexicalError struct {
	Char   rune
	Line   int
	Column int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("Lexical Error: Invalid character '%c' at line %d, column %d", e.Char, e.Line, e.Column)
}

// Result holds the two outputs of a successful scan. Both are read-only
// once returned.
type Result struct {
	Tokens      []Token
	SymbolTable *SymbolTable
}

// Tokenize scans one source text start to finish. On success the token
// sequence ends with exactly one EOF token; on failure the only product is
// a *LexicalError.
func Tokenize(source string) (*Result, error) {
	l := newLexer(source)
	if err := l.scan(); err != nil {
		return nil, err
	}
	return &Result{Tokens: l.tokens, SymbolTable: l.symbols}, nil
}

type lexer struct {
	source  []rune
	pos     int
	line    int
	column  int
	pending string // most recent unconsumed type keyword, "" when none
	tokens  []Token
	symbols *SymbolTable
}

func newLexer(source string) *lexer {
	return &lexer{
		source:  []rune(source),
		pos:     0,
		line:    1,
		column:  1,
		symbols: NewSymbolTable(),
	}
}

func (l *lexer) scan() error {
	for {
		l.skipWhitespace()
		if l.pos >= len(l.source) {
			break
		}

		startLine := l.line
		startCol := l.column

		kind, length := l.matchAt(l.pos)
		if length == 0 {
			return &LexicalError{Char: l.source[l.pos], Line: l.line, Column: l.column}
		}

		lexeme := string(l.source[l.pos : l.pos+length])
		l.advance(length)

		if kind == KindComment {
			continue
		}

		kind = l.classify(kind, lexeme)
		l.recordSymbol(kind, lexeme, startLine)

		l.tokens = append(l.tokens, Token{
			Kind:   kind,
			Lexeme: lexeme,
			Line:   startLine,
			Column: startCol,
		})
	}

	l.tokens = append(l.tokens, Token{
		Kind:   KindEOF,
		Lexeme: EOFLexeme,
		Line:   l.line,
		Column: l.column,
	})
	return nil
}

// matchAt tries the pattern table rules in order and takes the first rule
// matching at pos. Priority match: list order alone disambiguates, no
// longest-match comparison, no backtracking.
func (l *lexer) matchAt(pos int) (TokenKind, int) {
	for _, p := range patternTable {
		if n := p.match(l.source, pos); n > 0 {
			return p.kind, n
		}
	}
	return 0, 0
}

// classify re-checks identifier lexemes against the reserved-word set. The
// table order already guarantees keywords never reach the identifier rule;
// the re-check stays as a guard against a future reordering mistake.
func (l *lexer) classify(kind TokenKind, lexeme string) TokenKind {
	if kind != KindIdentifier {
		return kind
	}
	if kw, ok := reservedWords[lexeme]; ok {
		return kw
	}
	return kind
}

// recordSymbol runs the pending-type state machine over the classified
// token. A type keyword arms the pending type (overwriting any earlier
// one), a control keyword disarms it, and an identifier consumes it,
// appending a symbol and clearing the slot whether or not a type was
// actually pending. Everything else leaves the slot alone.
func (l *lexer) recordSymbol(kind TokenKind, lexeme string, line int) {
	switch {
	case kind.isTypeKeyword():
		l.pending = kind.typeName()
	case kind.isControlKeyword():
		l.pending = ""
	case kind == KindIdentifier:
		dataType := l.pending
		if dataType == "" {
			dataType = UnknownType
		}
		l.symbols.Add(lexeme, "variable", dataType, line)
		l.pending = ""
	}
}

func (l *lexer) skipWhitespace() {
	for l.pos < len(l.source) {
		ch := l.source[l.pos]
		if ch == '\n' {
			l.line++
			l.column = 1
		} else if unicode.IsSpace(ch) {
			l.column++
		} else {
			return
		}
		l.pos++
	}
}

// advance moves the cursor over n runes, walking each one so embedded
// newlines keep line/column tracking honest (block comments span lines).
func (l *lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.source[l.pos] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		l.pos++
	}
}
