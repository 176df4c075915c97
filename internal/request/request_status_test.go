package request

import (
	"testing"

	requesterrors "go-leave/internal/request/errors"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from   Status
		action Action
		want   Status
		ok     bool
	}{
		{StatusPending, ActionApprove, StatusApproved, true},
		{StatusPending, ActionReject, StatusRejected, true},
		{StatusPending, ActionCancel, StatusCancelled, true},
		{StatusApproved, ActionCancel, StatusCancelled, true},
		{StatusApproved, ActionApprove, "", false},
		{StatusApproved, ActionReject, "", false},
		{StatusRejected, ActionCancel, "", false},
		{StatusCancelled, ActionApprove, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_"+string(tt.action), func(t *testing.T) {
			got, err := Transition(tt.from, tt.action)
			if tt.ok {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			assert.ErrorIs(t, err, requesterrors.ErrInvalidTransition)
		})
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("wfh")
	assert.NoError(t, err)
	assert.Equal(t, KindWFH, k)

	k, err = ParseKind(" Leave ")
	assert.NoError(t, err)
	assert.Equal(t, KindLeave, k)

	_, err = ParseKind("overtime")
	assert.ErrorIs(t, err, requesterrors.ErrInvalidKind)
}
