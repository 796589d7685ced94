package lib

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// A test helper that runs a full scan and hands back both outputs.
func getTokens(t *testing.T, source string) ([]Token, *SymbolTable) {
	res, err := Tokenize(source)
	require.NoError(t, err)
	return res.Tokens, res.SymbolTable
}

func requireTok(t *testing.T, actual Token, kind TokenKind, lexeme string, line int, col int) {
	require.Equal(t, kind, actual.Kind, "token kind")
	require.Equal(t, lexeme, actual.Lexeme, "token lexeme")
	require.Equal(t, line, actual.Line, "token line")
	require.Equal(t, col, actual.Column, "token column")
}

func TestTokenizeEmptySource(t *testing.T) {
	tokens, symbols := getTokens(t, "")
	require.Len(t, tokens, 1)
	requireTok(t, tokens[0], KindEOF, "EOF", 1, 1)
	require.Equal(t, 0, symbols.Len())
}

func TestTokenizeSimpleDeclaration(t *testing.T) {
	tokens, symbols := getTokens(t, "int x;")
	require.Len(t, tokens, 4)
	requireTok(t, tokens[0], KindInt, "int", 1, 1)
	requireTok(t, tokens[1], KindIdentifier, "x", 1, 5)
	requireTok(t, tokens[2], KindSemicolon, ";", 1, 6)
	requireTok(t, tokens[3], KindEOF, "EOF", 1, 7)

	require.Equal(t, 1, symbols.Len())
	sym := symbols.Symbols()[0]
	require.Equal(t, "x", sym.Name)
	require.Equal(t, "variable", sym.SymbolType)
	require.Equal(t, "int", sym.DataType)
	require.Equal(t, "global", sym.Scope)
	require.Equal(t, 1, sym.Line)
}

func TestFloatBeforeInteger(t *testing.T) {
	tokens, _ := getTokens(t, "3.14")
	require.Len(t, tokens, 2)
	requireTok(t, tokens[0], KindFloatLiteral, "3.14", 1, 1)
	requireTok(t, tokens[1], KindEOF, "EOF", 1, 5)
}

func TestFloatWithExponent(t *testing.T) {
	tokens, _ := getTokens(t, "2.5e-3 1.0E+10 7.5e")
	requireTok(t, tokens[0], KindFloatLiteral, "2.5e-3", 1, 1)
	requireTok(t, tokens[1], KindFloatLiteral, "1.0E+10", 1, 8)
	// A dangling exponent marker is not part of the literal.
	requireTok(t, tokens[2], KindFloatLiteral, "7.5", 1, 16)
	requireTok(t, tokens[3], KindIdentifier, "e", 1, 19)
}

func TestKeywordOverIdentifier(t *testing.T) {
	tokens, _ := getTokens(t, "return")
	require.Len(t, tokens, 2)
	requireTok(t, tokens[0], KindReturn, "return", 1, 1)
}

func TestKeywordPrefixIsIdentifier(t *testing.T) {
	tokens, symbols := getTokens(t, "int interval;")
	requireTok(t, tokens[0], KindInt, "int", 1, 1)
	requireTok(t, tokens[1], KindIdentifier, "interval", 1, 5)
	require.Equal(t, 1, symbols.Len())
	require.Equal(t, "interval", symbols.Symbols()[0].Name)
}

func TestBoolLiterals(t *testing.T) {
	tokens, _ := getTokens(t, "true false trueish")
	requireTok(t, tokens[0], KindBoolLiteral, "true", 1, 1)
	requireTok(t, tokens[1], KindBoolLiteral, "false", 1, 6)
	requireTok(t, tokens[2], KindIdentifier, "trueish", 1, 12)
}

func TestTwoCharOperatorsBeforeOneChar(t *testing.T) {
	tokens, _ := getTokens(t, "a && b || c == d != e <= f >= g")
	kinds := []TokenKind{}
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	require.Equal(t, []TokenKind{
		KindIdentifier, KindLogicalAnd,
		KindIdentifier, KindLogicalOr,
		KindIdentifier, KindEqual,
		KindIdentifier, KindNotEqual,
		KindIdentifier, KindLessEqual,
		KindIdentifier, KindGreaterEqual,
		KindIdentifier, KindEOF,
	}, kinds)
}

func TestIncrementDecrement(t *testing.T) {
	tokens, _ := getTokens(t, "i++ + --j")
	requireTok(t, tokens[0], KindIdentifier, "i", 1, 1)
	requireTok(t, tokens[1], KindIncrement, "++", 1, 2)
	requireTok(t, tokens[2], KindPlus, "+", 1, 5)
	requireTok(t, tokens[3], KindDecrement, "--", 1, 7)
	requireTok(t, tokens[4], KindIdentifier, "j", 1, 9)
}

func TestLineCommentErasure(t *testing.T) {
	tokens, _ := getTokens(t, "// c\nint x;")
	requireTok(t, tokens[0], KindInt, "int", 2, 1)
	for _, tok := range tokens {
		require.NotEqual(t, KindComment, tok.Kind)
	}
}

func TestBlockCommentSpansLines(t *testing.T) {
	tokens, _ := getTokens(t, "/* a\nb */int x;")
	requireTok(t, tokens[0], KindInt, "int", 2, 5)
	requireTok(t, tokens[1], KindIdentifier, "x", 2, 9)
}

func TestUnterminatedBlockComment(t *testing.T) {
	// Without a closing */ the comment rule fails to match and the slash
	// lexes as the divide operator.
	tokens, _ := getTokens(t, "/*x")
	requireTok(t, tokens[0], KindDivide, "/", 1, 1)
	requireTok(t, tokens[1], KindMultiply, "*", 1, 2)
	requireTok(t, tokens[2], KindIdentifier, "x", 1, 3)
}

func TestCommentBeforeDivide(t *testing.T) {
	tokens, _ := getTokens(t, "a / b // half\n/* done */")
	requireTok(t, tokens[0], KindIdentifier, "a", 1, 1)
	requireTok(t, tokens[1], KindDivide, "/", 1, 3)
	requireTok(t, tokens[2], KindIdentifier, "b", 1, 5)
	requireTok(t, tokens[3], KindEOF, "EOF", 2, 11)
}

func TestStringLiteralKeepsDelimitersAndEscapes(t *testing.T) {
	tokens, _ := getTokens(t, `"say \"hi\""`)
	require.Len(t, tokens, 2)
	requireTok(t, tokens[0], KindStringLiteral, `"say \"hi\""`, 1, 1)
}

func TestCharLiterals(t *testing.T) {
	tokens, _ := getTokens(t, `'a' '\n'`)
	requireTok(t, tokens[0], KindCharLiteral, "'a'", 1, 1)
	requireTok(t, tokens[1], KindCharLiteral, `'\n'`, 1, 5)
}

func TestPreprocessorDirectives(t *testing.T) {
	tokens, symbols := getTokens(t, "#include <iostream>\n#define MAX 100")
	requireTok(t, tokens[0], KindInclude, "#include", 1, 1)
	requireTok(t, tokens[1], KindLessThan, "<", 1, 10)
	requireTok(t, tokens[2], KindIdentifier, "iostream", 1, 11)
	requireTok(t, tokens[3], KindGreaterThan, ">", 1, 19)
	requireTok(t, tokens[4], KindDefine, "#define", 2, 1)
	requireTok(t, tokens[5], KindIdentifier, "MAX", 2, 9)
	requireTok(t, tokens[6], KindIntegerLiteral, "100", 2, 13)

	// No type keyword precedes MAX, so it is recorded with unknown type.
	require.Equal(t, 2, symbols.Len())
	require.Equal(t, "iostream", symbols.Symbols()[0].Name)
	require.Equal(t, "MAX", symbols.Symbols()[1].Name)
	require.Equal(t, "unknown", symbols.Symbols()[1].DataType)
}

func TestLexicalErrorPrecision(t *testing.T) {
	res, err := Tokenize("x @ y;")
	require.Nil(t, res)
	require.Error(t, err)

	var lexErr *LexicalError
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, '@', lexErr.Char)
	require.Equal(t, 1, lexErr.Line)
	require.Equal(t, 3, lexErr.Column)
	require.Equal(t, "Lexical Error: Invalid character '@' at line 1, column 3", err.Error())
}

func TestLexicalErrorOnLaterLine(t *testing.T) {
	_, err := Tokenize("int x;\n\t$")
	var lexErr *LexicalError
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, '$', lexErr.Char)
	require.Equal(t, 2, lexErr.Line)
	require.Equal(t, 2, lexErr.Column)
}

func TestTerminationToken(t *testing.T) {
	tokens, _ := getTokens(t, "int x = 5;\nfloat y = 2.5;\n")
	eofCount := 0
	for _, tok := range tokens {
		if tok.Kind == KindEOF {
			eofCount++
		}
	}
	require.Equal(t, 1, eofCount)
	requireTok(t, tokens[len(tokens)-1], KindEOF, "EOF", 3, 1)
}

func TestPositionMonotonicity(t *testing.T) {
	source := "int main() {\n\t// comment\n\tint x = 1;\n\twhile (x <= 10) {\n\t\tx++;\n\t}\n\treturn x;\n}\n"
	tokens, _ := getTokens(t, source)
	for i := 1; i < len(tokens); i++ {
		prev, cur := tokens[i-1], tokens[i]
		after := cur.Line > prev.Line || (cur.Line == prev.Line && cur.Column >= prev.Column)
		require.True(t, after, "token %d (%s) precedes token %d (%s)", i, cur.CompilerFormat(), i-1, prev.CompilerFormat())
	}
}

func TestTokenizeExampleFile(t *testing.T) {
	source, err := os.ReadFile("../examples/example1.mcpp")
	require.NoError(t, err)

	res, err := Tokenize(string(source))
	require.NoError(t, err)
	require.NotEmpty(t, res.Tokens)
	require.Equal(t, KindEOF, res.Tokens[len(res.Tokens)-1].Kind)
	for _, tok := range res.Tokens {
		require.NotEqual(t, KindComment, tok.Kind)
	}
	require.NotZero(t, res.SymbolTable.Len())
}
