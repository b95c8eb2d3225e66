// Package moderation implements the status workflow shared by ideas,
// project contributions, and project feature suggestions.
//
// Every submission is created Pending and is moved exactly once, by an
// admin, to a terminal status (Approved or Rejected). Public pages show
// only Approved entities. The store layer calls Transition before any
// status write, so an entity can never leave a terminal status.
package moderation

import "errors"

// Status is the three-valued moderation state gating public visibility.
type Status string

const (
	Pending  Status = "pending"
	Approved Status = "approved"
	Rejected Status = "rejected"
)

// FilterAll is the admin list filter meaning "no status restriction".
// It is a list-query concept, never a stored value.
const FilterAll = "all"

var (
	// ErrUnknownStatus is returned when a value outside the three
	// workflow states reaches Parse or Transition.
	ErrUnknownStatus = errors.New("unknown moderation status")

	// ErrIllegalTransition is returned when a transition would move an
	// entity out of a terminal status.
	ErrIllegalTransition = errors.New("illegal status transition")
)

// Parse validates a raw status value.
func Parse(s string) (Status, error) {
	switch Status(s) {
	case Pending, Approved, Rejected:
		return Status(s), nil
	}
	return "", ErrUnknownStatus
}

// ParseFilter validates an admin list filter: the three statuses plus
// "all" (and the empty string, which means "all").
func ParseFilter(s string) (Status, error) {
	if s == "" || s == FilterAll {
		return "", nil
	}
	return Parse(s)
}

// IsTerminal reports whether s is a terminal state.
func IsTerminal(s Status) bool {
	return s == Approved || s == Rejected
}

// Transition decides whether an entity may move from one status to
// another. It returns changed=false with a nil error for a same-status
// no-op (repeating an admin action is harmless), and an error for
// anything that would reopen a terminal status.
func Transition(from, to Status) (changed bool, err error) {
	if _, err := Parse(string(from)); err != nil {
		return false, err
	}
	if _, err := Parse(string(to)); err != nil {
		return false, err
	}
	if from == to {
		return false, nil
	}
	if IsTerminal(from) {
		return false, ErrIllegalTransition
	}
	return true, nil
}
