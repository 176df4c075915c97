package approval

import (
	"testing"

	approvalerrors "go-leave/internal/approval/errors"
	"go-leave/internal/request"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	cases := []struct {
		from   Status
		action request.Action
		want   Status
	}{
		{StatusPending, request.ActionApprove, StatusApproved},
		{StatusPending, request.ActionReject, StatusRejected},
		{StatusPending, request.ActionCancel, StatusCancelled},
		{StatusPending, ActionEscalate, StatusEscalated},
	}
	for _, tc := range cases {
		got, err := Transition(tc.from, tc.action)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	for _, from := range []Status{StatusApproved, StatusRejected, StatusCancelled, StatusEscalated} {
		_, err := Transition(from, request.ActionApprove)
		assert.ErrorIs(t, err, approvalerrors.ErrInvalidTransition, string(from))
	}
}
