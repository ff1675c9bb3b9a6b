package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cfrontend/cfrontend/token"
)

func TestLookupKeyword(t *testing.T) {
	kw, ok := token.LookupKeyword("if")
	require.True(t, ok)
	require.Equal(t, token.KwIf, kw)

	_, ok = token.LookupKeyword("banana")
	require.False(t, ok)
}

func TestDeprecatedKeywordTranslatesToC23Spelling(t *testing.T) {
	kw, ok := token.LookupKeyword("_Bool")
	require.True(t, ok)
	require.Equal(t, token.KwBool, kw)
	require.Equal(t, "bool", kw.String())

	replacement, ok := token.Deprecated("_Bool")
	require.True(t, ok)
	require.Equal(t, "bool", replacement)
}

func TestSymbolLookupAndLen(t *testing.T) {
	tests := []struct {
		text string
		want token.Symbol
	}{
		{"<<=", token.SymShlAssn},
		{"->", token.SymArrow},
		{"...", token.SymEllipsis},
		{"++", token.SymIncr},
		{"+", token.SymPlus},
	}
	for _, tt := range tests {
		sym, ok := token.LookupSymbol(tt.text)
		require.True(t, ok, tt.text)
		require.Equal(t, tt.want, sym, tt.text)
		require.Equal(t, len(tt.text), sym.Len(), tt.text)
	}
}

func TestKeywordFamilies(t *testing.T) {
	require.Equal(t, token.FamilyLiteral, token.KwTrue.Family())
	require.Equal(t, token.FamilyFunctionLike, token.KwSizeof.Family())
	require.Equal(t, token.FamilyControlFlow, token.KwIf.Family())
	require.Equal(t, token.FamilyAttribute, token.KwInt.Family())
	require.Equal(t, token.FamilyAttribute, token.KwDefault.Family())
}
