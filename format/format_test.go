package format_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cfrontend/cfrontend/format"
	"github.com/cfrontend/cfrontend/location"
)

func TestDisplayErrorsReturnsZeroWhenClean(t *testing.T) {
	var buf strings.Builder
	code := format.DisplayErrors(&buf, nil, nil, "lex")
	require.Equal(t, 0, code)
}

func TestDisplayErrorsReturnsOneOnError(t *testing.T) {
	loc := location.Location{File: "a.c", Line: 2, Column: 5}
	diags := []location.Diagnostic{location.Errorf(loc, "unexpected token")}
	files := map[string]string{"a.c": "int x;\nint +y;\n"}

	var buf strings.Builder
	code := format.DisplayErrors(&buf, diags, files, "parse")

	require.Equal(t, 1, code)
	out := buf.String()
	require.Contains(t, out, "a.c:2:5")
	require.Contains(t, out, "unexpected token")
	require.Contains(t, out, "int +y;")
	require.Contains(t, out, "^")
}

func TestDisplayErrorsReturnsZeroOnWarningsOnly(t *testing.T) {
	loc := location.Location{File: "a.c", Line: 1, Column: 1}
	diags := []location.Diagnostic{location.Warningf(loc, "deprecated spelling")}

	var buf strings.Builder
	code := format.DisplayErrors(&buf, diags, nil, "lex")
	require.Equal(t, 0, code)
}

func TestDisplayErrorsSkipsSourceLineWhenFileMissing(t *testing.T) {
	loc := location.Location{File: "missing.c", Line: 1, Column: 1}
	diags := []location.Diagnostic{location.Errorf(loc, "boom")}

	var buf strings.Builder
	format.DisplayErrors(&buf, diags, nil, "lex")
	require.NotContains(t, buf.String(), "    \n")
}

func TestSummaryCountsEachLevel(t *testing.T) {
	loc := location.Location{File: "a.c", Line: 1, Column: 1}
	diags := []location.Diagnostic{
		location.Errorf(loc, "e1"),
		location.Errorf(loc, "e2"),
		location.Warningf(loc, "w1"),
		location.Suggestf(loc, "s1"),
	}
	require.Equal(t, "2 error(s), 1 warning(s), 1 suggestion(s)", format.Summary(diags))
}
