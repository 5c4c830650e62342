package entities

import "fmt"

type Status string

const (
	StatusIdle                Status = "idle"
	StatusInitializing        Status = "initializing"
	StatusSigned              Status = "signed"
	StatusRedirected          Status = "redirected"
	StatusPendingVerification Status = "pending_verification"
	StatusPaid                Status = "paid"
	StatusRejected            Status = "rejected"
	StatusFailed              Status = "failed"
)

var transitions = map[Status][]Status{
	StatusIdle:                {StatusInitializing},
	StatusInitializing:        {StatusSigned, StatusIdle},
	StatusSigned:              {StatusRedirected},
	StatusRedirected:          {StatusPendingVerification, StatusFailed},
	StatusPendingVerification: {StatusPaid, StatusRejected, StatusPendingVerification},
}

func (s Status) CanTransition(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal statuses are never left.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

// Advance moves the attempt to the next status.
func (a *Attempt) Advance(to Status) error {
	if !a.Status.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, to)
	}
	a.Status = to
	return nil
}
