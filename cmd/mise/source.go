package main

import (
	"errors"
	"os"
	"strings"

	"github.com/fwojciec/mise"
)

// loadSource returns the HTML of a file path or http(s) URL together with
// the source URL used for profile dispatch. For files, sourceURL is the
// URL the page was saved from, if known.
func loadSource(deps *Dependencies, source, sourceURL string) (html, url string, err error) {
	if isURL(source) {
		html, err = deps.Fetcher.Fetch(deps.Ctx, source)
		if err != nil {
			return "", "", err
		}
		return html, source, nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", "", mise.Errorf(mise.EINVALID, "cannot read %s: %v", source, err)
	}
	return string(data), sourceURL, nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// errorText formats err for terminal output, showing the code and message
// of application errors.
func errorText(err error) string {
	var e *mise.Error
	if errors.As(err, &e) {
		return e.Code + ": " + e.Message
	}
	return err.Error()
}
