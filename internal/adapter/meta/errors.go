package meta

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
)

// ErrUnavailable marks failures where the Graph API could not be reached or
// did not answer in time.
var ErrUnavailable = errors.New("graph api unavailable")

// transientCodes are Graph error codes documented as temporary: unknown
// error, service down, app and user request limits.
var transientCodes = []int{1, 2, 4, 17, 341}

// APIError is the error envelope returned by the Graph API.
type APIError struct {
	HTTPStatus  int    `json:"-"`
	Message     string `json:"message"`
	Type        string `json:"type"`
	Code        int    `json:"code"`
	Subcode     int    `json:"error_subcode"`
	IsTransient bool   `json:"is_transient"`
	FBTraceID   string `json:"fbtrace_id"`
	UserTitle   string `json:"error_user_title"`
	UserMessage string `json:"error_user_msg"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("graph api: %s (status %d, code %d, subcode %d, trace %s)",
		e.Message, e.HTTPStatus, e.Code, e.Subcode, e.FBTraceID)
}

// Transient reports whether retrying the same request may succeed.
func (e *APIError) Transient() bool {
	return e.IsTransient ||
		e.HTTPStatus >= http.StatusInternalServerError ||
		e.HTTPStatus == http.StatusTooManyRequests ||
		slices.Contains(transientCodes, e.Code)
}

// IsTransient reports whether err is worth retrying.
func IsTransient(err error) bool {
	if errors.Is(err, ErrUnavailable) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Transient()
}
