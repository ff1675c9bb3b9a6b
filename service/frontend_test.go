package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cfrontend/cfrontend/service"
)

func TestCompileCachesResultByFilename(t *testing.T) {
	f := service.New(nil)

	res := f.Compile("a.c", "int x = 1;")
	require.Equal(t, "a.c", res.Filename)
	require.NotEmpty(t, res.Tokens)
	require.False(t, res.HasErrors())

	cached, ok := f.Lookup("a.c")
	require.True(t, ok)
	require.Same(t, res, cached)
}

func TestCompileOverwritesPreviousResult(t *testing.T) {
	f := service.New(nil)

	f.Compile("a.c", "int x;")
	first, _ := f.Lookup("a.c")

	second := f.Compile("a.c", "int y;")
	cached, ok := f.Lookup("a.c")
	require.True(t, ok)
	require.Same(t, second, cached)
	require.NotSame(t, first, cached)
}

func TestLookupMissingFileReturnsFalse(t *testing.T) {
	f := service.New(nil)
	_, ok := f.Lookup("nope.c")
	require.False(t, ok)
}

func TestForgetDropsCachedResult(t *testing.T) {
	f := service.New(nil)
	f.Compile("a.c", "int x;")
	f.Forget("a.c")
	_, ok := f.Lookup("a.c")
	require.False(t, ok)
}

func TestCompileSurfacesLexerDiagnostics(t *testing.T) {
	f := service.New(nil)
	res := f.Compile("bad.c", "'")
	require.True(t, res.HasErrors())
}

func TestFilesListsCachedNames(t *testing.T) {
	f := service.New(nil)
	f.Compile("a.c", "int x;")
	f.Compile("b.c", "int y;")
	require.ElementsMatch(t, []string{"a.c", "b.c"}, f.Files())
}

func TestConfigDefaultsWhenNilPassed(t *testing.T) {
	f := service.New(nil)
	require.NotNil(t, f.Config())
}
