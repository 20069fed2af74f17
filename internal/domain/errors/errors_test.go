package errors

import (
	stderrors "errors"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := ValidationError{Field: "customer_name", Reason: "is required"}
	if err.Error() != "customer_name: is required" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	var target ValidationError
	if !stderrors.As(error(err), &target) || target.Field != "customer_name" {
		t.Fatalf("errors.As failed: %+v", target)
	}
}

func TestItemUnavailableError(t *testing.T) {
	err := ItemUnavailableError{MenuItemID: 99}
	if err.Error() != "menu item 99 not found or unavailable" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestInvalidStatusError(t *testing.T) {
	err := InvalidStatusError{Value: "brewing", Valid: []string{"pending", "ready"}}
	want := `invalid status "brewing", must be one of: pending, ready`
	if err.Error() != want {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestTransitionNotAllowedError(t *testing.T) {
	err := TransitionNotAllowedError{From: "completed", To: "pending"}
	if err.Error() != "cannot change status of a completed order to pending" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestSentinels(t *testing.T) {
	if stderrors.Is(ErrOrderNotFound, ErrNotFound) {
		t.Fatal("sentinels must be distinct")
	}
}
