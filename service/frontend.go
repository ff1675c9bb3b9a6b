// Package service exposes the single seam the CLI, the HTTP API, and the
// TUI inspector all call through: lexing and parsing one named source and
// caching the result so repeated inspection (token dump, AST dump, error
// report) doesn't re-run the front end.
package service

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/cfrontend/cfrontend/ast"
	"github.com/cfrontend/cfrontend/config"
	"github.com/cfrontend/cfrontend/lexer"
	"github.com/cfrontend/cfrontend/location"
	"github.com/cfrontend/cfrontend/parser"
	"github.com/cfrontend/cfrontend/token"
)

var frontendLog *log.Logger

func init() {
	if os.Getenv("CFRONTEND_DEBUG") != "" {
		logPath := filepath.Join(os.TempDir(), "cfrontend-service-debug.log")
		f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600) // #nosec G304 -- fixed filename in temp dir
		if err != nil {
			frontendLog = log.New(os.Stderr, "FRONTEND: ", log.Ltime|log.Lmicroseconds|log.Lshortfile)
		} else {
			frontendLog = log.New(f, "FRONTEND: ", log.Ltime|log.Lmicroseconds|log.Lshortfile)
		}
	} else {
		frontendLog = log.New(io.Discard, "", 0)
	}
}

// Result is one file's compile output: the tokens the lexer produced, the
// AST the parser built from them, and every diagnostic raised by either
// phase, in emission order.
type Result struct {
	Filename string
	Tokens   []token.Token
	Tree     ast.Node
	Diags    []location.Diagnostic
}

// HasErrors reports whether any Diags entry is Error-level.
func (r *Result) HasErrors() bool {
	return location.HasErrors(r.Diags)
}

// Frontend is a thread-safe façade over the lexer and parser, shared by
// cmd/cfrontend, api, and inspect so none of them duplicates the
// lex-then-parse-then-cache sequence.
//
// Lock ordering: Frontend has its own sync.RWMutex (f.mu) guarding the
// results cache and cfg. Neither the lexer nor the parser holds a mutex of
// its own, so there is only one lock here — callers never need to reason
// about acquisition order across packages.
type Frontend struct {
	mu      sync.RWMutex
	cfg     *config.Config
	results map[string]*Result
}

// New returns a Frontend configured with cfg. A nil cfg falls back to
// config.DefaultConfig().
func New(cfg *config.Config) *Frontend {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Frontend{
		cfg:     cfg,
		results: make(map[string]*Result),
	}
}

// Compile lexes and parses content under filename, caches the Result under
// filename, and returns it. A later Compile call with the same filename
// overwrites the cache entry; Frontend never merges across calls.
func (f *Frontend) Compile(filename, content string) *Result {
	frontendLog.Printf("compiling %s (%d bytes)", filename, len(content))

	toks, lexDiags := lexer.Lex(filename, content)
	tree, parseDiags := parser.Parse(toks)

	diags := make([]location.Diagnostic, 0, len(lexDiags)+len(parseDiags))
	diags = append(diags, lexDiags...)
	diags = append(diags, parseDiags...)

	res := &Result{Filename: filename, Tokens: toks, Tree: tree, Diags: diags}

	f.mu.Lock()
	f.results[filename] = res
	f.mu.Unlock()

	frontendLog.Printf("compiled %s: %d tokens, %d diagnostics", filename, len(toks), len(diags))
	return res
}

// Lookup returns the cached Result for filename, if Compile has been
// called for it since the Frontend was created or the entry was last
// overwritten.
func (f *Frontend) Lookup(filename string) (*Result, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	res, ok := f.results[filename]
	return res, ok
}

// Forget drops filename's cached Result, if any.
func (f *Frontend) Forget(filename string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.results, filename)
}

// Files returns the filenames currently cached, in no particular order.
func (f *Frontend) Files() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.results))
	for name := range f.results {
		names = append(names, name)
	}
	return names
}

// Config returns the Frontend's active configuration.
func (f *Frontend) Config() *config.Config {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.cfg
}

// SetConfig replaces the Frontend's active configuration. It does not
// invalidate already-cached Results; call Compile again to re-run a file
// under the new settings.
func (f *Frontend) SetConfig(cfg *config.Config) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cfg = cfg
}

// Describe renders a one-line human-readable summary of res, in the spirit
// of a quick status line rather than a full diagnostic report.
func (r *Result) Describe() string {
	if r.HasErrors() {
		return fmt.Sprintf("%s: %d tokens, %d diagnostics (errors present)", r.Filename, len(r.Tokens), len(r.Diags))
	}
	return fmt.Sprintf("%s: %d tokens, %d diagnostics", r.Filename, len(r.Tokens), len(r.Diags))
}
