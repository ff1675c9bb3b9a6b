// Package format renders location.Diagnostic slices to a terminal the way
// a compiler front end reports lexer/parser findings.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/cfrontend/cfrontend/location"
)

// DisplayErrors writes one block per diagnostic to w: the "file:line:col:
// level: message" header, the offending source line (looked up in files by
// diag.Loc.File), and a "^~~~" underline spanning Length columns starting
// at Loc.Column. files missing an entry are rendered without a source
// line, the same as when Context is empty in the teacher's Error.Error().
//
// It returns the process exit code for the phase: 0 if diags has no
// Error-level entry, 1 otherwise.
func DisplayErrors(w io.Writer, diags []location.Diagnostic, files map[string]string, phase string) int {
	if len(diags) == 0 {
		fmt.Fprintf(w, "%s: no diagnostics\n", phase)
		return 0
	}

	for _, d := range diags {
		fmt.Fprintf(w, "%s: %s: %s\n", d.Loc, d.Level, d.Message)

		line, ok := sourceLine(files, d.Loc.File, d.Loc.Line)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "    %s\n", line)
		fmt.Fprintf(w, "    %s\n", underline(d.Loc.Column, d.Length))
	}

	if location.HasErrors(diags) {
		return 1
	}
	return 0
}

// sourceLine returns the 1-indexed lineNo'th line of files[name].
func sourceLine(files map[string]string, name string, lineNo int) (string, bool) {
	content, ok := files[name]
	if !ok {
		return "", false
	}
	lines := strings.Split(content, "\n")
	if lineNo < 1 || lineNo > len(lines) {
		return "", false
	}
	return lines[lineNo-1], true
}

// underline builds "   ^~~~" style markers: col-1 leading spaces, then a
// caret, then length-1 tildes. length of 0 or 1 renders a bare caret.
func underline(col, length int) string {
	if length < 1 {
		length = 1
	}
	var sb strings.Builder
	for i := 1; i < col; i++ {
		sb.WriteByte(' ')
	}
	sb.WriteByte('^')
	for i := 1; i < length; i++ {
		sb.WriteByte('~')
	}
	return sb.String()
}

// Summary renders a one-line "N error(s), M warning(s), K suggestion(s)"
// count, used by the
// CLI after a full diagnostic dump.
func Summary(diags []location.Diagnostic) string {
	var errs, warns, suggs int
	for _, d := range diags {
		switch d.Level {
		case location.Error:
			errs++
		case location.Warning:
			warns++
		case location.Suggestion:
			suggs++
		}
	}
	return fmt.Sprintf("%d error(s), %d warning(s), %d suggestion(s)", errs, warns, suggs)
}
