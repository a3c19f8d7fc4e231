package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindsMatchWithErrorsIs(t *testing.T) {
	cases := []struct {
		err  error
		kind error
	}{
		{NotFound("order %d missing", 7), ErrNotFound},
		{InvalidArgument("bad quantity"), ErrInvalidArgument},
		{Conflict("already paid"), ErrConflict},
		{PreconditionFailed("no address"), ErrPreconditionFailed},
		{Processing("gateway down"), ErrProcessing},
	}
	for _, tc := range cases {
		if !errors.Is(tc.err, tc.kind) {
			t.Errorf("%v should match %v", tc.err, tc.kind)
		}
	}
}

func TestKindsDoNotCrossMatch(t *testing.T) {
	if errors.Is(NotFound("x"), ErrConflict) {
		t.Error("NotFound must not match ErrConflict")
	}
}

func TestMessageStripsKindPrefix(t *testing.T) {
	err := NotFound("cart not found for user")
	if got := Message(err); got != "cart not found for user" {
		t.Errorf("Message = %q", got)
	}
}

func TestMessagePassesThroughPlainErrors(t *testing.T) {
	err := fmt.Errorf("boom")
	if got := Message(err); got != "boom" {
		t.Errorf("Message = %q", got)
	}
}
