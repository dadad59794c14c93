package mise

import (
	"encoding/json"
	"errors"
)

// ParseResult is the envelope returned by every parse call. A successful
// result carries a Recipe and no error; a failed result carries a
// ParseError and no Recipe. Use Succeeded and Failed to construct one.
type ParseResult struct {
	success bool
	recipe  *Recipe
	err     *ParseError
}

// ParseError describes why a parse failed.
type ParseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Succeeded returns a successful result wrapping r.
// A nil recipe yields a PARSER_ERROR failure instead.
func Succeeded(r *Recipe) ParseResult {
	if r == nil {
		return Failed(EPARSER, "parser produced no recipe")
	}
	return ParseResult{success: true, recipe: r}
}

// Failed returns a failed result with the given code and message.
func Failed(code, message string) ParseResult {
	if code == "" {
		code = EPARSER
	}
	return ParseResult{err: &ParseError{Code: code, Message: message}}
}

// FailedWith converts err into a failed result, using fallback as the code
// when err is not an application error.
func FailedWith(err error, fallback string) ParseResult {
	var e *Error
	if errors.As(err, &e) {
		return Failed(e.Code, e.Message)
	}
	return Failed(fallback, err.Error())
}

// Success reports whether the parse produced a recipe.
func (r ParseResult) Success() bool { return r.success }

// Recipe returns the parsed recipe, or nil for a failed result.
func (r ParseResult) Recipe() *Recipe { return r.recipe }

// Error returns the parse error, or nil for a successful result.
func (r ParseResult) Error() *ParseError { return r.err }

// Err returns the failure as an application error, or nil on success.
func (r ParseResult) Err() error {
	if r.success {
		return nil
	}
	return Errorf(r.err.Code, "%s", r.err.Message)
}

type parseResultJSON struct {
	Success bool        `json:"success"`
	Recipe  *Recipe     `json:"recipe,omitempty"`
	Error   *ParseError `json:"error,omitempty"`
}

// MarshalJSON encodes the result as {"success":true,"recipe":...} or
// {"success":false,"error":{"code":...,"message":...}}.
func (r ParseResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(parseResultJSON{Success: r.success, Recipe: r.recipe, Error: r.err})
}

// UnmarshalJSON decodes a result and rejects envelopes that carry both or
// neither of recipe and error.
func (r *ParseResult) UnmarshalJSON(data []byte) error {
	var v parseResultJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch {
	case v.Success && v.Recipe != nil && v.Error == nil:
		*r = ParseResult{success: true, recipe: v.Recipe}
	case !v.Success && v.Error != nil && v.Recipe == nil:
		*r = ParseResult{err: v.Error}
	default:
		return Errorf(EINVALID, "parse result must carry exactly one of recipe or error")
	}
	return nil
}
