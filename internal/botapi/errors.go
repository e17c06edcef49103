package botapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Category is the normalized failure taxonomy for platform calls.
type Category string

const (
	// CategoryTransient covers network failures, timeouts and 5xx responses.
	CategoryTransient Category = "transient"
	// CategoryRateLimited is a 429; Error.RetryAfter carries the hint.
	CategoryRateLimited Category = "rate_limited"
	// CategoryNotFound means the user, chat or join request does not exist.
	CategoryNotFound Category = "not_found"
	// CategoryPermissionDenied is a 403 or a missing admin right.
	CategoryPermissionDenied Category = "permission_denied"
	// CategoryUnauthorized means the bot token was rejected.
	CategoryUnauthorized Category = "unauthorized"
	// CategoryBadRequest is any other rejected request.
	CategoryBadRequest Category = "bad_request"
)

// Error is returned by every Client method.
type Error struct {
	Category    Category
	Method      string
	StatusCode  int
	Description string
	RetryAfter  time.Duration
	Err         error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("botapi %s [%s]", e.Method, e.Category)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" status %d", e.StatusCode)
	}
	if e.Description != "" {
		msg += ": " + e.Description
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether the same call may succeed later.
func (e *Error) Retryable() bool {
	return e.Category == CategoryTransient || e.Category == CategoryRateLimited
}

// CategoryOf extracts the category of err. Errors that did not come from the
// client are reported as transient.
func CategoryOf(err error) Category {
	var be *Error
	if errors.As(err, &be) {
		return be.Category
	}
	return CategoryTransient
}

// IsNotFound reports whether err is a not_found platform error.
func IsNotFound(err error) bool {
	var be *Error
	return errors.As(err, &be) && be.Category == CategoryNotFound
}

// Descriptions the platform returns with a 400 that really mean "absent" or
// "not allowed".
var (
	notFoundMarkers = []string{
		"user not found",
		"chat not found",
		"participant_id_invalid",
		"user_id_invalid",
		"hide_requester_missing",
		"member not found",
	}
	permissionMarkers = []string{
		"not enough rights",
		"chat_admin_required",
		"bot is not a member",
		"bot was kicked",
		"have no rights",
	}
)

// mapResponse turns a failed platform response into a typed Error.
func mapResponse(method string, status int, description string, retryAfter int) *Error {
	e := &Error{Method: method, StatusCode: status, Description: description}
	lower := strings.ToLower(description)

	switch {
	case status == http.StatusTooManyRequests:
		e.Category = CategoryRateLimited
		e.RetryAfter = time.Duration(retryAfter) * time.Second
	case status == http.StatusUnauthorized:
		e.Category = CategoryUnauthorized
	case status == http.StatusForbidden:
		e.Category = CategoryPermissionDenied
	case status == http.StatusNotFound:
		e.Category = CategoryNotFound
	case status >= http.StatusInternalServerError:
		e.Category = CategoryTransient
	case containsAny(lower, notFoundMarkers):
		e.Category = CategoryNotFound
	case containsAny(lower, permissionMarkers):
		e.Category = CategoryPermissionDenied
	default:
		e.Category = CategoryBadRequest
	}
	return e
}

// transportError wraps a failure that happened before a response was read.
func transportError(method string, err error) *Error {
	return &Error{Category: CategoryTransient, Method: method, Err: err}
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
