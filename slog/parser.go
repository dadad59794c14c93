package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/mise"
)

// Ensure LoggingParser implements mise.Parser.
var _ mise.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with logging of each parse outcome.
type LoggingParser struct {
	next     mise.Parser
	registry mise.ProfileRegistry
	logger   *slog.Logger
}

// NewLoggingParser creates a new LoggingParser. The registry is used only
// to name the profile in log records and may be nil.
func NewLoggingParser(next mise.Parser, registry mise.ProfileRegistry, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, registry: registry, logger: logger}
}

// Parse delegates to the wrapped parser and logs the result.
func (p *LoggingParser) Parse(html, sourceURL string) (res mise.ParseResult) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", sourceURL,
			"bytes", len(html),
			"duration", time.Since(begin),
		}
		if p.registry != nil {
			if name, err := p.registry.Resolve(sourceURL); err == nil {
				attrs = append(attrs, "profile", name)
			}
		}
		if res.Success() {
			r := res.Recipe()
			attrs = append(attrs,
				"title", r.Title,
				"ingredients", len(r.Ingredients),
				"steps", len(r.Steps),
			)
			p.logger.Info("parse", attrs...)
			return
		}
		if e := res.Error(); e != nil {
			attrs = append(attrs, "code", e.Code, "err", e.Message)
		}
		p.logger.Warn("parse", attrs...)
	}(time.Now())
	return p.next.Parse(html, sourceURL)
}
