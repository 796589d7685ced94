package lib

// A matchFunc reports the length of a match beginning exactly at src[pos],
// or 0 for no match. Recognizers are anchored against the shared rune buffer
// so no substring is ever copied or rescanned.
type matchFunc func(src []rune, pos int) int

type pattern struct {
	kind  TokenKind
	match matchFunc
}

// patternTable is consulted in order at every scan step; the first rule
// matching at the current offset wins. The order is the disambiguation
// policy: comments before the divide operator, float before integer, bool
// literals and keywords before the identifier catch-all, and every
// two-character operator before its one-character prefix.
var patternTable = []pattern{
	{KindComment, matchBlockComment},
	{KindComment, matchLineComment},
	{KindStringLiteral, matchStringLiteral},
	{KindCharLiteral, matchCharLiteral},
	{KindFloatLiteral, matchFloatLiteral},
	{KindIntegerLiteral, matchIntegerLiteral},
	{KindBoolLiteral, matchBoolLiteral},
	{KindLogicalAnd, matchExact("&&")},
	{KindLogicalOr, matchExact("||")},
	{KindEqual, matchExact("==")},
	{KindNotEqual, matchExact("!=")},
	{KindLessEqual, matchExact("<=")},
	{KindGreaterEqual, matchExact(">=")},
	{KindIncrement, matchExact("++")},
	{KindDecrement, matchExact("--")},
	{KindPlus, matchExact("+")},
	{KindMinus, matchExact("-")},
	{KindMultiply, matchExact("*")},
	{KindDivide, matchExact("/")},
	{KindModulo, matchExact("%")},
	{KindAssign, matchExact("=")},
	{KindLessThan, matchExact("<")},
	{KindGreaterThan, matchExact(">")},
	{KindSemicolon, matchExact(";")},
	{KindComma, matchExact(",")},
	{KindLeftParen, matchExact("(")},
	{KindRightParen, matchExact(")")},
	{KindLeftBrace, matchExact("{")},
	{KindRightBrace, matchExact("}")},
	{KindLeftBracket, matchExact("[")},
	{KindRightBracket, matchExact("]")},
	{KindInclude, matchWord("#include")},
	{KindDefine, matchWord("#define")},
	{KindInt, matchWord("int")},
	{KindFloat, matchWord("float")},
	{KindChar, matchWord("char")},
	{KindBool, matchWord("bool")},
	{KindString, matchWord("string")},
	{KindIf, matchWord("if")},
	{KindElse, matchWord("else")},
	{KindWhile, matchWord("while")},
	{KindFor, matchWord("for")},
	{KindReturn, matchWord("return")},
	{KindIdentifier, matchIdentifier},
}

// reservedWords backs the re-check applied to every lexeme the identifier
// rule produces. Under the table order above an identifier match can never
// actually be a keyword, but the check guards against reordering mistakes.
var reservedWords = map[string]TokenKind{
	"int":      KindInt,
	"float":    KindFloat,
	"char":     KindChar,
	"bool":     KindBool,
	"string":   KindString,
	"if":       KindIf,
	"else":     KindElse,
	"while":    KindWhile,
	"for":      KindFor,
	"return":   KindReturn,
	"#include": KindInclude,
	"#define":  KindDefine,
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentChar(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}

// matchExact matches the given text verbatim.
func matchExact(text string) matchFunc {
	runes := []rune(text)
	return func(src []rune, pos int) int {
		if pos+len(runes) > len(src) {
			return 0
		}
		for i, r := range runes {
			if src[pos+i] != r {
				return 0
			}
		}
		return len(runes)
	}
}

// matchWord matches the given text only when it is not followed by another
// identifier character, so "int" never matches the front of "interval".
func matchWord(text string) matchFunc {
	exact := matchExact(text)
	return func(src []rune, pos int) int {
		n := exact(src, pos)
		if n == 0 {
			return 0
		}
		if pos+n < len(src) && isIdentChar(src[pos+n]) {
			return 0
		}
		return n
	}
}

// matchBlockComment matches "/*" through the first "*/", newlines included.
// An unterminated block comment is not a match; the slash then lexes as the
// divide operator.
func matchBlockComment(src []rune, pos int) int {
	if pos+1 >= len(src) || src[pos] != '/' || src[pos+1] != '*' {
		return 0
	}
	for i := pos + 2; i+1 < len(src); i++ {
		if src[i] == '*' && src[i+1] == '/' {
			return i + 2 - pos
		}
	}
	return 0
}

// matchLineComment matches "//" through the end of the line, excluding the
// newline itself.
func matchLineComment(src []rune, pos int) int {
	if pos+1 >= len(src) || src[pos] != '/' || src[pos+1] != '/' {
		return 0
	}
	i := pos + 2
	for i < len(src) && src[i] != '\n' {
		i++
	}
	return i - pos
}

// matchStringLiteral matches a double-quoted literal. A backslash escapes
// the next character, whatever it is; escape legality is not validated and
// the lexeme keeps its quotes and raw escape text.
func matchStringLiteral(src []rune, pos int) int {
	if src[pos] != '"' {
		return 0
	}
	i := pos + 1
	for i < len(src) {
		switch src[i] {
		case '"':
			return i + 1 - pos
		case '\\':
			i += 2
		default:
			i++
		}
	}
	return 0
}

// matchCharLiteral matches a single-quoted literal holding exactly one
// character or one backslash escape.
func matchCharLiteral(src []rune, pos int) int {
	if src[pos] != '\'' || pos+2 >= len(src) {
		return 0
	}
	if src[pos+1] == '\\' {
		if pos+3 < len(src) && src[pos+3] == '\'' {
			return 4
		}
		return 0
	}
	if src[pos+1] != '\'' && src[pos+2] == '\'' {
		return 3
	}
	return 0
}

// matchFloatLiteral matches digits '.' digits with an optional exponent.
// Tried before the integer rule so "3.14" is never split at the dot.
func matchFloatLiteral(src []rune, pos int) int {
	i := pos
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	if i == pos || i >= len(src) || src[i] != '.' {
		return 0
	}
	i++
	fracStart := i
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	if i == fracStart {
		return 0
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		expStart := j
		for j < len(src) && isDigit(src[j]) {
			j++
		}
		if j > expStart {
			i = j
		}
	}
	return i - pos
}

func matchIntegerLiteral(src []rune, pos int) int {
	i := pos
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	return i - pos
}

var (
	matchTrue  = matchWord("true")
	matchFalse = matchWord("false")
)

func matchBoolLiteral(src []rune, pos int) int {
	if n := matchTrue(src, pos); n > 0 {
		return n
	}
	return matchFalse(src, pos)
}

func matchIdentifier(src []rune, pos int) int {
	if !isIdentStart(src[pos]) {
		return 0
	}
	i := pos + 1
	for i < len(src) && isIdentChar(src[i]) {
		i++
	}
	return i - pos
}
