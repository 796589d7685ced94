package lib

import (
	"encoding/json"
	"fmt"
)

type TokenKind int

const (
	// Type keywords
	KindInt TokenKind = iota
	KindFloat
	KindChar
	KindBool
	KindString

	// Control keywords
	KindIf
	KindElse
	KindWhile
	KindFor
	KindReturn

	// Preprocessor directives
	KindInclude
	KindDefine

	// Operators
	KindPlus
	KindMinus
	KindMultiply
	KindDivide
	KindModulo
	KindAssign
	KindEqual
	KindNotEqual
	KindLessThan
	KindGreaterThan
	KindLessEqual
	KindGreaterEqual
	KindLogicalAnd
	KindLogicalOr
	KindIncrement
	KindDecrement

	// Delimiters
	KindSemicolon
	KindComma
	KindLeftParen
	KindRightParen
	KindLeftBrace
	KindRightBrace
	KindLeftBracket
	KindRightBracket

	// Literals
	KindIntegerLiteral
	KindFloatLiteral
	KindCharLiteral
	KindStringLiteral
	KindBoolLiteral

	KindIdentifier

	// Comments are matched and consumed but never appear in the output
	// sequence.
	KindComment

	KindEOF
)

// EOFLexeme is the sentinel lexeme carried by the single terminating token.
const EOFLexeme = "EOF"

var kindNames = map[TokenKind]string{
	KindInt:            "Int",
	KindFloat:          "Float",
	KindChar:           "Char",
	KindBool:           "Bool",
	KindString:         "String",
	KindIf:             "If",
	KindElse:           "Else",
	KindWhile:          "While",
	KindFor:            "For",
	KindReturn:         "Return",
	KindInclude:        "Include",
	KindDefine:         "Define",
	KindPlus:           "Plus",
	KindMinus:          "Minus",
	KindMultiply:       "Multiply",
	KindDivide:         "Divide",
	KindModulo:         "Modulo",
	KindAssign:         "Assign",
	KindEqual:          "Equal",
	KindNotEqual:       "NotEqual",
	KindLessThan:       "LessThan",
	KindGreaterThan:    "GreaterThan",
	KindLessEqual:      "LessEqual",
	KindGreaterEqual:   "GreaterEqual",
	KindLogicalAnd:     "LogicalAnd",
	KindLogicalOr:      "LogicalOr",
	KindIncrement:      "Increment",
	KindDecrement:      "Decrement",
	KindSemicolon:      "Semicolon",
	KindComma:          "Comma",
	KindLeftParen:      "LeftParen",
	KindRightParen:     "RightParen",
	KindLeftBrace:      "LeftBrace",
	KindRightBrace:     "RightBrace",
	KindLeftBracket:    "LeftBracket",
	KindRightBracket:   "RightBracket",
	KindIntegerLiteral: "IntegerLiteral",
	KindFloatLiteral:   "FloatLiteral",
	KindCharLiteral:    "CharLiteral",
	KindStringLiteral:  "StringLiteral",
	KindBoolLiteral:    "BoolLiteral",
	KindIdentifier:     "Identifier",
	KindComment:        "Comment",
	KindEOF:            "EOF",
}

var kindsByName = func() map[string]TokenKind {
	m := make(map[string]TokenKind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

func (k TokenKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

func (k TokenKind) MarshalJSON() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown token kind %d", int(k))
	}
	return json.Marshal(name)
}

func (k *TokenKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	kind, ok := kindsByName[name]
	if !ok {
		return fmt.Errorf("unknown token kind %q", name)
	}
	*k = kind
	return nil
}

// Token is one classified lexical unit. Lexeme is the exact source substring
// matched, including any literal delimiters. Line and Column are 1-indexed
// and point at the lexeme's first character.
type Token struct {
	Kind   TokenKind `json:"kind"`
	Lexeme string    `json:"lexeme"`
	Line   int       `json:"line"`
	Column int       `json:"column"`
}

// CompilerFormat renders the token as "<Kind, lexeme, line, column>".
func (t Token) CompilerFormat() string {
	return fmt.Sprintf("<%s, %s, %d, %d>", t.Kind, t.Lexeme, t.Line, t.Column)
}

func (k TokenKind) isTypeKeyword() bool {
	switch k {
	case KindInt, KindFloat, KindChar, KindBool, KindString:
		return true
	}
	return false
}

func (k TokenKind) isControlKeyword() bool {
	switch k {
	case KindIf, KindElse, KindWhile, KindFor, KindReturn:
		return true
	}
	return false
}

// typeName returns the declared-type name a type keyword contributes to the
// symbol table.
func (k TokenKind) typeName() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindChar:
		return "char"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	}
	return ""
}
