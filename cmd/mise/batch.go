package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/mise/batch"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	urls, err := c.readURLs()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	if c.Concurrency > 0 {
		deps.Runner.Concurrency = c.Concurrency
	}
	deps.Runner.OnEvent = func(e batch.Event) {
		switch e.Type {
		case batch.EventStarted:
			fmt.Fprintf(deps.Stdout, "Processing %d URLs\n", e.Total)
		case batch.EventSkipped:
			fmt.Fprintf(deps.Stderr, "  duplicate %s\n", batch.TruncateURL(e.URL, 70))
		case batch.EventFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %s\n", batch.TruncateURL(e.URL, 70), errorText(e.Error))
		case batch.EventParsed:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", e.Completed, e.Total, e.Title)
		}
	}

	summary, err := deps.Runner.Run(deps.Ctx, urls)
	fmt.Fprintf(deps.Stdout, "Done: %s\n", summary)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

func (c *BatchCmd) readURLs() ([]string, error) {
	var r io.Reader = os.Stdin
	if c.File != "-" {
		f, err := os.Open(c.File)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return readURLList(r)
}

// readURLList returns the non-empty, non-comment lines of r.
func readURLList(r io.Reader) ([]string, error) {
	var urls []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, scanner.Err()
}
