package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cfrontend/cfrontend/api"
	"github.com/cfrontend/cfrontend/service"
)

func testServer() *api.Server {
	return api.NewServer(8080, service.New(nil))
}

func TestHealthCheck(t *testing.T) {
	server := testServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp api.HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}
}

func TestLexEndpointReturnsTokens(t *testing.T) {
	server := testServer()

	body, _ := json.Marshal(api.CompileRequest{Filename: "a.c", Content: "int x;"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lex", bytes.NewReader(body))
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp api.LexResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Tokens) == 0 {
		t.Fatal("expected at least one token")
	}
}

func TestParseEndpointReturnsTree(t *testing.T) {
	server := testServer()

	body, _ := json.Marshal(api.CompileRequest{Filename: "a.c", Content: "x = 1;"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", bytes.NewReader(body))
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp api.ParseResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Tree == "" {
		t.Fatal("expected a non-empty rendered tree")
	}
}

func TestLexEndpointRejectsMissingFilename(t *testing.T) {
	server := testServer()

	body, _ := json.Marshal(api.CompileRequest{Content: "int x;"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lex", bytes.NewReader(body))
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestLexEndpointRejectsWrongMethod(t *testing.T) {
	server := testServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lex", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", w.Code)
	}
}

func TestCORSAllowsLocalhostOrigin(t *testing.T) {
	server := testServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("expected CORS origin echoed, got %q", got)
	}
}

func TestFilesEndpointListsCompiledFiles(t *testing.T) {
	server := testServer()

	body, _ := json.Marshal(api.CompileRequest{Filename: "a.c", Content: "int x;"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lex", bytes.NewReader(body))
	server.Handler().ServeHTTP(httptest.NewRecorder(), req)

	listReq := httptest.NewRequest(http.MethodGet, "/api/v1/files", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, listReq)

	var files []string
	if err := json.NewDecoder(w.Body).Decode(&files); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(files) != 1 || files[0] != "a.c" {
		t.Errorf("expected [a.c], got %v", files)
	}
}
