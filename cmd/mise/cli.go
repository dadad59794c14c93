package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/mise"
	"github.com/fwojciec/mise/batch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Parser   mise.Parser
	Registry mise.ProfileRegistry
	Fetcher  mise.Fetcher
	Recipes  mise.RecipeService
	Runner   *batch.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB        string `name:"db" env:"MISE_DB" help:"Path to the recipe database"`
	Lexicon   string `env:"MISE_LEXICON" type:"existingfile" help:"Replace the built-in lexicon with a YAML file"`
	UserAgent string `env:"MISE_USER_AGENT" help:"User-Agent sent when fetching pages"`
	Extractor string `enum:"trafilatura,readability" default:"trafilatura" help:"Main-content extractor for unknown sites"`
	Verbose   bool   `short:"v" help:"Log debug output to stderr"`

	Parse    ParseCmd    `cmd:"" help:"Parse a recipe page from a file or URL"`
	Batch    BatchCmd    `cmd:"" help:"Parse and store every URL listed in a file"`
	List     ListCmd     `cmd:"" help:"List stored recipes"`
	Show     ShowCmd     `cmd:"" help:"Show a stored recipe"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a stored recipe"`
	Profiles ProfilesCmd `cmd:"" help:"List supported site profiles"`
	Validate ValidateCmd `cmd:"" help:"Parse a recipe page and report missing content"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Source string `arg:"" help:"HTML file path or http(s) URL"`
	URL    string `short:"u" help:"Source URL of a local file, used to pick the site profile"`
	JSON   bool   `help:"Print the full parse result as JSON"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	File        string  `arg:"" help:"File with one URL per line, or - for stdin"`
	Concurrency int     `short:"c" default:"4" help:"Concurrent fetch limit"`
	RPS         float64 `name:"rps" default:"1" help:"Requests per second per domain (0 disables the limit)"`
	Browser     bool    `help:"Render pages in headless Chrome"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Profile string `help:"Only recipes parsed with this profile"`
	Tag     string `help:"Only recipes with this tag"`
	Limit   int    `short:"n" default:"50" help:"Maximum number of recipes"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Recipe ID"`
	JSON bool   `help:"Print the stored recipe as JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Recipe ID"`
	Force bool   `help:"Confirm deletion"`
}

// ProfilesCmd is the "profiles" subcommand.
type ProfilesCmd struct{}

// ValidateCmd is the "validate" subcommand.
type ValidateCmd struct {
	Source string `arg:"" help:"HTML file path or http(s) URL"`
	URL    string `short:"u" help:"Source URL of a local file, used to pick the site profile"`
}
