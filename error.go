package mise

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	ECONFLICT = "conflict"
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
)

// Parse error codes reported in a ParseResult.
const (
	// EPARSER reports empty or malformed HTML, or any unexpected failure
	// during extraction.
	EPARSER = "PARSER_ERROR"

	// EMISSING reports a field a profile requires that is absent from both
	// structured data and markup.
	EMISSING = "MISSING_ELEMENT"

	// EPARSE is the internal failure code for profiles that distinguish it
	// from EPARSER.
	EPARSE = "PARSE_ERROR"

	// EUNSUPPORTED reports a source that cannot be parsed without
	// authentication, such as social media posts.
	EUNSUPPORTED = "UNSUPPORTED_SITE"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("mise error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error."
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
