// Package batch runs the parser over many source URLs. It coordinates
// deduplication, per-domain politeness, fetching, parsing and storage of
// recipes.
package batch

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fwojciec/mise"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Runner.Concurrency is not positive.
const DefaultConcurrency = 4

// Runner fetches, parses and stores a list of recipe pages.
type Runner struct {
	Fetcher  mise.Fetcher
	Parser   mise.Parser
	Registry mise.ProfileRegistry

	// Recipes stores successful parses. Nil disables storage.
	Recipes mise.RecipeService

	// Limiter throttles requests per host. Nil disables throttling.
	Limiter mise.DomainLimiter

	Concurrency int
	RetryDelays []time.Duration

	// OnEvent receives progress events. It is never called concurrently.
	OnEvent EventFunc

	Logger *slog.Logger
}

// Summary holds the outcome of a batch run.
type Summary struct {
	Total     int
	Saved     int
	Unchanged int
	Skipped   int
	Failed    int

	// Items holds one entry per processed URL in input order. Duplicate
	// URLs are counted in Skipped and have no entry.
	Items []Item
}

// Item is the outcome for a single URL.
type Item struct {
	URL      string
	Profile  string
	Result   mise.ParseResult
	StoredID string

	// Unchanged is set when the page was already stored with the same
	// content hash.
	Unchanged bool

	// Err is a fetch or storage failure. Parse failures are reported in
	// Result instead.
	Err error
}

// Failed reports whether the item counts as a failure.
func (i Item) Failed() bool {
	return i.Err != nil || !i.Result.Success()
}

// EventType indicates the type of progress event.
type EventType int

const (
	EventStarted EventType = iota
	EventParsed
	EventFailed
	EventSkipped
	EventFinished
)

// Event reports progress during a batch run.
type Event struct {
	Type      EventType
	Completed int
	Total     int
	URL       string
	Title     string
	Error     error
}

// EventFunc is a callback for reporting batch progress.
type EventFunc func(event Event)

type job struct {
	position int
	url      string
}

type outcome struct {
	position int
	item     Item
}

// Run processes urls and returns a summary. Blank lines are ignored and
// repeated URLs are skipped. Per-URL failures are recorded in the summary;
// Run returns an error only when ctx is canceled.
func (r *Runner) Run(ctx context.Context, urls []string) (Summary, error) {
	var summary Summary
	seen := NewFilter(uint(max(len(urls), 1)), 0.001)

	var jobs []job
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if seen.Test(u) {
			summary.Skipped++
			r.emit(Event{Type: EventSkipped, URL: u})
			continue
		}
		seen.Add(u)
		jobs = append(jobs, job{position: len(jobs), url: u})
	}
	summary.Total = len(jobs)

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	r.emit(Event{Type: EventStarted, Total: len(jobs)})

	resultCh := make(chan outcome, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, j := range jobs {
			g.Go(func() error {
				resultCh <- outcome{position: j.position, item: r.process(gctx, j.url)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	items := make([]Item, len(jobs))
	var completed atomic.Int64
	for res := range resultCh {
		n := int(completed.Add(1))
		items[res.position] = res.item
		item := res.item

		switch {
		case item.Failed():
			summary.Failed++
			r.emit(Event{Type: EventFailed, Completed: n, Total: len(jobs), URL: item.URL, Error: itemError(item)})
		default:
			if item.Unchanged {
				summary.Unchanged++
			} else if item.StoredID != "" {
				summary.Saved++
			}
			r.emit(Event{Type: EventParsed, Completed: n, Total: len(jobs), URL: item.URL, Title: item.Result.Recipe().Title})
		}
	}
	summary.Items = items

	r.emit(Event{Type: EventFinished, Completed: len(jobs), Total: len(jobs)})

	if err := ctx.Err(); err != nil {
		return summary, err
	}
	return summary, nil
}

// process fetches, parses and stores a single URL.
func (r *Runner) process(ctx context.Context, rawURL string) Item {
	item := Item{URL: rawURL}

	if r.Registry != nil {
		profile, err := r.Registry.Resolve(rawURL)
		if err != nil {
			item.Result = mise.FailedWith(err, mise.EPARSER)
			return item
		}
		item.Profile = profile
	}

	if r.Limiter != nil {
		if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
			if err := r.Limiter.Wait(ctx, u.Host); err != nil {
				item.Err = err
				return item
			}
		}
	}

	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetry(ctx, rawURL, r.Fetcher.Fetch, delays, r.logRetry)
	if err != nil {
		item.Err = err
		return item
	}

	item.Result = r.Parser.Parse(html, rawURL)
	if !item.Result.Success() || r.Recipes == nil {
		return item
	}

	stored := &mise.StoredRecipe{
		SourceURL:   rawURL,
		Profile:     item.Profile,
		ContentHash: ComputeHash(html),
		Recipe:      item.Result.Recipe(),
	}
	if err := r.Recipes.CreateRecipe(ctx, stored); err != nil {
		if mise.ErrorCode(err) == mise.ECONFLICT {
			item.Unchanged = true
			return item
		}
		item.Err = err
		return item
	}
	item.StoredID = stored.ID
	return item
}

func (r *Runner) emit(e Event) {
	if r.OnEvent != nil {
		r.OnEvent(e)
	}
}

func (r *Runner) logRetry(url string, attempt int, err error) {
	if r.Logger != nil {
		r.Logger.Warn("retrying fetch", "url", url, "attempt", attempt, "err", err)
	}
}

func itemError(item Item) error {
	if item.Err != nil {
		return item.Err
	}
	return item.Result.Err()
}
