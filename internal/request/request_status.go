package request

import (
	"strings"

	requesterrors "go-leave/internal/request/errors"
)

type Kind string

const (
	KindLeave Kind = "LEAVE"
	KindWFH   Kind = "WFH"
)

// ParseKind accepts the path forms "leave" and "wfh" in any case.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToUpper(strings.TrimSpace(s))) {
	case KindLeave:
		return KindLeave, nil
	case KindWFH:
		return KindWFH, nil
	}
	return "", requesterrors.ErrInvalidKind
}

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

// Active statuses block the calendar for overlap purposes.
var ActiveStatuses = []Status{StatusPending, StatusApproved}

// Terminal reports whether the approval chain has finished with the request.
// An approved request can still be cancelled by its owner but awaits no
// approver.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionCancel  Action = "cancel"
)

var transitions = map[Status]map[Action]Status{
	StatusPending: {
		ActionApprove: StatusApproved,
		ActionReject:  StatusRejected,
		ActionCancel:  StatusCancelled,
	},
	StatusApproved: {
		ActionCancel: StatusCancelled,
	},
}

// Transition returns the status reached by applying action to from.
func Transition(from Status, action Action) (Status, error) {
	if to, ok := transitions[from][action]; ok {
		return to, nil
	}
	return "", requesterrors.ErrInvalidTransition
}

func StatusStrings(statuses []Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
