package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrOrderNotFound = errors.New("order not found")
)

// ValidationError reports a malformed or missing request field. It is
// raised before any transaction is opened.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ItemUnavailableError reports a requested menu item that is missing or
// marked unavailable at commit time. The whole order transaction rolls
// back when it is raised.
type ItemUnavailableError struct {
	MenuItemID int64
}

func (e ItemUnavailableError) Error() string {
	return fmt.Sprintf("menu item %d not found or unavailable", e.MenuItemID)
}

// InvalidStatusError reports an unrecognized order status value.
type InvalidStatusError struct {
	Value string
	Valid []string
}

func (e InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid status %q, must be one of: %s", e.Value, strings.Join(e.Valid, ", "))
}

// TransitionNotAllowedError reports a status change out of a terminal
// state.
type TransitionNotAllowedError struct {
	From string
	To   string
}

func (e TransitionNotAllowedError) Error() string {
	return fmt.Sprintf("cannot change status of a %s order to %s", e.From, e.To)
}
