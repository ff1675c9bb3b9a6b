package api

import (
	"net/http"

	"github.com/cfrontend/cfrontend/ast"
	"github.com/cfrontend/cfrontend/location"
	"github.com/cfrontend/cfrontend/token"
)

// handleLex handles POST /api/v1/lex: lexes (and parses, since
// service.Frontend.Compile always runs both) the given content and
// returns only the token stream and diagnostics.
func (s *Server) handleLex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CompileRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Filename == "" {
		writeError(w, http.StatusBadRequest, "filename required")
		return
	}

	res := s.frontend.Compile(req.Filename, req.Content)

	writeJSON(w, http.StatusOK, LexResponse{
		Filename:    res.Filename,
		Tokens:      renderTokens(res.Tokens),
		Diagnostics: renderDiagnostics(res.Diags),
	})
}

// handleParse handles POST /api/v1/parse: lexes and parses the given
// content and returns a rendered AST tree plus diagnostics.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CompileRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Filename == "" {
		writeError(w, http.StatusBadRequest, "filename required")
		return
	}

	res := s.frontend.Compile(req.Filename, req.Content)

	writeJSON(w, http.StatusOK, ParseResponse{
		Filename:    res.Filename,
		Tree:        ast.Dump(res.Tree),
		Diagnostics: renderDiagnostics(res.Diags),
	})
}

func renderTokens(toks []token.Token) []TokenResponse {
	out := make([]TokenResponse, 0, len(toks))
	for _, t := range toks {
		out = append(out, TokenResponse{
			Kind:     t.Value.Kind().String(),
			Text:     t.Value.String(),
			Location: t.Loc.String(),
		})
	}
	return out
}

func renderDiagnostics(diags []location.Diagnostic) []DiagnosticResponse {
	out := make([]DiagnosticResponse, 0, len(diags))
	for _, d := range diags {
		out = append(out, DiagnosticResponse{
			Location: d.Loc.String(),
			Level:    d.Level.String(),
			Message:  d.Message,
			Length:   d.Length,
		})
	}
	return out
}
