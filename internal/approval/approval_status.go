package approval

import (
	approvalerrors "go-leave/internal/approval/errors"
	"go-leave/internal/request"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
	StatusEscalated Status = "ESCALATED"
)

// ActionEscalate only applies to approval rows; requests never escalate.
const ActionEscalate request.Action = "escalate"

var transitions = map[Status]map[request.Action]Status{
	StatusPending: {
		request.ActionApprove: StatusApproved,
		request.ActionReject:  StatusRejected,
		request.ActionCancel:  StatusCancelled,
		ActionEscalate:        StatusEscalated,
	},
}

// Transition returns the status an approval row reaches under action. Every
// status other than PENDING is final.
func Transition(from Status, action request.Action) (Status, error) {
	if to, ok := transitions[from][action]; ok {
		return to, nil
	}
	return "", approvalerrors.ErrInvalidTransition
}
