package workflow

import (
	"time"

	workflowerrors "go-logbook/internal/workflow/errors"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Decided reports whether the entry has left the approval queue.
func (s Status) Decided() bool {
	return s == StatusApproved || s == StatusRejected
}

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// ParseAction treats an omitted action as approve. Any value that is
// present must match exactly.
func ParseAction(s *string) (Action, error) {
	if s == nil {
		return ActionApprove, nil
	}
	switch Action(*s) {
	case ActionApprove:
		return ActionApprove, nil
	case ActionReject:
		return ActionReject, nil
	}
	return "", workflowerrors.ErrInvalidAction.Field("action")
}

func (a Action) target() Status {
	if a == ActionReject {
		return StatusRejected
	}
	return StatusApproved
}

// transitions lists the only forward moves an entry can make.
var transitions = map[Status][]Status{
	StatusDraft:   {StatusPending},
	StatusPending: {StatusApproved, StatusRejected},
}

func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Approval is embedded by every log entry.
type Approval struct {
	Status       Status     `gorm:"column:status;type:varchar(20);not null;default:draft;index"`
	ApprovedByID *uuid.UUID `gorm:"column:approved_by_id;type:uuid"`
	ApprovedAt   *time.Time `gorm:"column:approved_at"`
	Remarks      string     `gorm:"column:remarks;type:text"`
}

func (a Approval) ApprovalState() Approval {
	return a
}
