package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cfrontend/cfrontend/lexer"
	"github.com/cfrontend/cfrontend/number"
	"github.com/cfrontend/cfrontend/token"
)

func TestLexHexFloatDeclaration(t *testing.T) {
	toks, diags := lexer.Lex("a.c", "int x = 0x1p+3;")
	require.Empty(t, diags)

	var kinds []token.Kind
	for _, tk := range toks {
		kinds = append(kinds, tk.Value.Kind())
	}
	require.Equal(t, []token.Kind{
		token.KindKeyword, token.KindIdent, token.KindSymbol,
		token.KindNumber, token.KindSymbol,
	}, kinds)

	nv := toks[3].Value.(token.NumberValue)
	require.Equal(t, number.Double, nv.Number.Type)
	require.Equal(t, 8.0, nv.Number.F)
}

func TestLexShortUnicodeEscape(t *testing.T) {
	toks, diags := lexer.Lex("a.c", "'\\u00e9'")
	require.Empty(t, diags)
	require.Len(t, toks, 1)
	cv := toks[0].Value.(token.CharValue)
	require.Equal(t, 'é', cv.C)
}

func TestLexShortUnicodeEscapeTooFewDigits(t *testing.T) {
	_, diags := lexer.Lex("a.c", "'\\u00e'")
	require.Len(t, diags, 1)
	require.Contains(t, diags[0].Message, "must contain 4 digits, but found only 3")
}

func TestLexAdjacentStringConcatenation(t *testing.T) {
	toks, diags := lexer.Lex("a.c", `"\x41\x42" "C"`)
	require.Empty(t, diags)
	require.Len(t, toks, 1)
	sv := toks[0].Value.(token.StrValue)
	require.Equal(t, "ABC", sv.S)
}

func TestLexOctalLiteral(t *testing.T) {
	toks, diags := lexer.Lex("a.c", "0777")
	require.Empty(t, diags)
	require.Len(t, toks, 1)
	nv := toks[0].Value.(token.NumberValue)
	require.Equal(t, number.Int, nv.Number.Type)
	require.Equal(t, uint64(511), nv.Number.I)
}

func TestLexOctalInvalidDigitIsError(t *testing.T) {
	_, diags := lexer.Lex("a.c", "08")
	require.Len(t, diags, 1)
	require.Contains(t, diags[0].Message, "octal constant")
}

func TestLexDeprecatedBoolWarns(t *testing.T) {
	toks, diags := lexer.Lex("a.c", "_Bool x;")
	require.Len(t, diags, 1)
	require.Contains(t, diags[0].Message, "deprecated")

	kv := toks[0].Value.(token.KeywordValue)
	require.Equal(t, token.KwBool, kv.Keyword)
}

func TestLexGreedySymbolMatching(t *testing.T) {
	toks, diags := lexer.Lex("a.c", "a<<=b")
	require.Empty(t, diags)
	require.Len(t, toks, 3)
	sv := toks[1].Value.(token.SymbolValue)
	require.Equal(t, token.SymShlAssn, sv.Symbol)
}

func TestLexLineCommentIgnoredToEndOfLine(t *testing.T) {
	toks, diags := lexer.Lex("a.c", "a // comment\nb")
	require.Empty(t, diags)
	require.Len(t, toks, 2)
	require.Equal(t, "a", toks[0].Value.(token.IdentValue).Name)
	require.Equal(t, "b", toks[1].Value.(token.IdentValue).Name)
}

func TestLexBlockCommentSpansLines(t *testing.T) {
	toks, diags := lexer.Lex("a.c", "a /* multi\nline */ b")
	require.Empty(t, diags)
	require.Len(t, toks, 2)
}

func TestLexLineContinuationInsideIdentifier(t *testing.T) {
	toks, diags := lexer.Lex("a.c", "ab\\\ncd")
	require.Empty(t, diags)
	require.Len(t, toks, 1)
	require.Equal(t, "abcd", toks[0].Value.(token.IdentValue).Name)
}

func TestLexDivisionNotConfusedWithComment(t *testing.T) {
	toks, diags := lexer.Lex("a.c", "a/b")
	require.Empty(t, diags)
	require.Len(t, toks, 3)
	require.Equal(t, token.SymSlash, toks[1].Value.(token.SymbolValue).Symbol)
}

func TestLexLocationsAreMonotonic(t *testing.T) {
	toks, _ := lexer.Lex("a.c", "int\nx = 1;")
	for i := 1; i < len(toks); i++ {
		prev, cur := toks[i-1].Loc, toks[i].Loc
		require.GreaterOrEqual(t, cur.Line, prev.Line)
		require.GreaterOrEqual(t, cur.Column, 1)
	}
}
