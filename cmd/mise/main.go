package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mise"
	"github.com/fwojciec/mise/batch"
	"github.com/fwojciec/mise/goquery"
	"github.com/fwojciec/mise/htmltomarkdown"
	misehttp "github.com/fwojciec/mise/http"
	"github.com/fwojciec/mise/readability"
	"github.com/fwojciec/mise/rod"
	miseslog "github.com/fwojciec/mise/slog"
	"github.com/fwojciec/mise/sqlite"
	"github.com/fwojciec/mise/trafilatura"
	"github.com/fwojciec/mise/yaml"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); MISE_DB or --db override it.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Fetcher overrides the HTTP fetcher. Used for end-to-end testing.
	Fetcher mise.Fetcher

	// RecipeService overrides the SQLite store. Used for end-to-end testing.
	RecipeService mise.RecipeService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mise"),
		kong.Description("Extract structured recipes from recipe web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'mise --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Command()

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	lex := yaml.DefaultLexicon()
	if cli.Lexicon != "" {
		lex, err = yaml.LoadLexicon(cli.Lexicon)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: MISE_LEXICON must point to a valid lexicon YAML file")
			return err
		}
	}

	var extractor mise.Extractor = trafilatura.NewExtractor()
	if cli.Extractor == "readability" {
		extractor = readability.NewExtractor()
	}
	registry := goquery.NewDefaultRegistry(goquery.NewGenericProfile(extractor, htmltomarkdown.NewConverter()))
	deps.Registry = registry
	deps.Parser = miseslog.NewLoggingParser(
		goquery.NewParser(lex, goquery.WithRegistry(registry), goquery.WithLogger(deps.Logger)),
		registry,
		deps.Logger,
	)

	userAgent := cli.UserAgent
	if userAgent == "" {
		userAgent = mise.DefaultUserAgent
	}

	var fetcher mise.Fetcher = m.Fetcher
	switch {
	case fetcher != nil:
	case cli.Batch.Browser && cmd == "batch <file>":
		f, err := rod.NewFetcher(rod.WithUserAgent(userAgent))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer f.Close()
		fetcher = f
	default:
		fetcher = misehttp.NewFetcher(misehttp.WithUserAgent(userAgent))
	}
	deps.Fetcher = miseslog.NewLoggingFetcher(fetcher, deps.Logger)

	if needsDB(cmd) {
		if cli.DB != "" {
			m.DBPath = cli.DB
		}
		recipes := m.RecipeService
		if recipes == nil {
			if m.DBPath != ":memory:" {
				if err := os.MkdirAll(filepath.Dir(m.DBPath), 0o755); err != nil {
					return fmt.Errorf("failed to create database directory: %w", err)
				}
			}
			m.DB = sqlite.NewDB(m.DBPath)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintf(stderr, "Hint: Set MISE_DB to use a different database path\n")
				return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
			}
			defer m.Close()
			recipes = sqlite.NewRecipeService(m.DB)
		}
		deps.Recipes = miseslog.NewLoggingRecipeService(recipes, deps.Logger)
	}

	if cmd == "batch <file>" {
		deps.Runner = &batch.Runner{
			Fetcher:     deps.Fetcher,
			Parser:      deps.Parser,
			Registry:    registry,
			Recipes:     deps.Recipes,
			Limiter:     batch.NewDomainLimiter(cli.Batch.RPS),
			Concurrency: cli.Batch.Concurrency,
			Logger:      deps.Logger,
		}
	}

	return kongCtx.Run(deps)
}

// needsDB reports whether the kong command reads or writes stored recipes.
func needsDB(cmd string) bool {
	switch cmd {
	case "batch <file>", "list", "show <id>", "delete <id>":
		return true
	}
	return false
}

func defaultDBPath() string {
	if path := os.Getenv("MISE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "mise.db"
	}
	return filepath.Join(home, ".mise", "mise.db")
}
