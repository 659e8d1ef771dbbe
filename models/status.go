package models

import "errors"

// Record/section lifecycle. Every verifiable value in the system moves
// through the same three states:
//
//	pending  -> no data submitted yet (section never filled in)
//	edited   -> written by a staff role, awaiting review
//	confirmed -> passed head/boss review, authoritative for reporting
//
// An edit by a non-verifier on a confirmed record drops it back to edited
// and clears verification; only an edited record can be confirmed.
type Status string

const (
	StatusPending   Status = "pending"
	StatusEdited    Status = "edited"
	StatusConfirmed Status = "confirmed"
)

var (
	ErrNotConfirmable = errors.New("only an edited record can be confirmed")
	ErrUnknownStatus  = errors.New("unknown status value")
)

// ParseStatus validates a caller-supplied status string against the enum.
func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPending, StatusEdited, StatusConfirmed:
		return Status(value), nil
	}
	return "", ErrUnknownStatus
}

// Confirm is the head/boss review transition.
func Confirm(current Status) (Status, error) {
	if current != StatusEdited {
		return current, ErrNotConfirmable
	}
	return StatusConfirmed, nil
}

// AfterEdit is the state a record lands in after any write by a staff role.
func AfterEdit(Status) Status {
	return StatusEdited
}

// Unconfirm reopens a record for review (PATCH verify with isVerified=false).
func Unconfirm(Status) Status {
	return StatusEdited
}

func (s Status) Verified() bool {
	return s == StatusConfirmed
}
