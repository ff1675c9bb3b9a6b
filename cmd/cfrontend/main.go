package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cfrontend/cfrontend/api"
	"github.com/cfrontend/cfrontend/ast"
	"github.com/cfrontend/cfrontend/config"
	"github.com/cfrontend/cfrontend/format"
	"github.com/cfrontend/cfrontend/inspect"
	"github.com/cfrontend/cfrontend/service"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		tuiMode     = flag.Bool("tui", false, "Browse the compiled file in a text user interface")
		apiServer   = flag.Bool("api-server", false, "Start HTTP API server mode")
		apiPort     = flag.Int("port", 8080, "API server port (used with -api-server)")
		configFile  = flag.String("config", "", "Load configuration from this TOML file (default: platform config path)")
		dialect     = flag.String("dialect", "", "Override the configured C dialect (c17 or c23)")
		tokensOnly  = flag.Bool("tokens", false, "Print only the token stream, without diagnostics")
		printTree   = flag.Bool("ast", false, "Print the parsed AST alongside diagnostics")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("cfrontend %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *dialect != "" {
		cfg.Dialect.Standard = config.Dialect(*dialect)
	}

	frontend := service.New(cfg)

	if *apiServer {
		runAPIServer(frontend, *apiPort)
		return
	}

	if flag.NArg() == 0 {
		printHelp()
		os.Exit(0)
	}

	path := flag.Arg(0)
	content, err := os.ReadFile(path) // #nosec G304 -- user-specified source file path
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot read %s: %v\n", path, err)
		os.Exit(1)
	}

	if *tuiMode {
		tui := inspect.NewTUI(frontend, path, string(content))
		if err := tui.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	res := frontend.Compile(path, string(content))

	if *tokensOnly {
		for _, tok := range res.Tokens {
			fmt.Printf("%-6s %-20s %s\n", tok.Value.Kind(), tok.Value.String(), tok.Loc)
		}
		os.Exit(0)
	}

	if *printTree {
		fmt.Print(ast.Dump(res.Tree))
		fmt.Println()
	}

	files := map[string]string{path: string(content)}
	code := format.DisplayErrors(os.Stdout, res.Diags, files, cfg.Display.Phase)
	fmt.Println(format.Summary(res.Diags))
	os.Exit(code)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

func runAPIServer(frontend *service.Frontend, port int) {
	server := api.NewServer(port, frontend)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "API server error: %v\n", err)
			os.Exit(1)
		}
	}()

	<-sigChan
	fmt.Println("\nShutting down API server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("API server stopped")
}

func printHelp() {
	fmt.Printf(`cfrontend %s

Usage: cfrontend [options] <source-file>
       cfrontend -api-server [-port N]
       cfrontend -tui <source-file>

Options:
  -help              Show this help message
  -version           Show version information
  -tui               Browse the compiled file in a text user interface
  -api-server        Start HTTP API server mode (no source file required)
  -port N            API server port (default: 8080, used with -api-server)
  -config FILE       Load configuration from this TOML file
  -dialect STD       Override the configured C dialect (c17 or c23)
  -tokens            Print only the token stream, without diagnostics
  -ast               Print the parsed AST alongside diagnostics

Examples:
  cfrontend main.c
  cfrontend -tokens main.c
  cfrontend -ast main.c
  cfrontend -tui main.c
  cfrontend -api-server -port 3000
`, Version)
}
