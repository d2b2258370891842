package timeline

import (
	"errors"
	"fmt"
)

var (
	// ErrEventNotFound is returned when an event ID does not resolve.
	ErrEventNotFound = errors.New("timeline event not found")
	// ErrDuplicateEvent is returned when an event ID is already in use.
	ErrDuplicateEvent = errors.New("timeline event id already in use")
	// ErrInvalidEvent is returned for an event with a negative id, day or duration.
	ErrInvalidEvent = errors.New("timeline event id, day and duration must be zero or greater")
	// ErrDuplicateActivity is returned when two events carry the same single
	// occurrence activity.
	ErrDuplicateActivity = errors.New("activity can only occur in one timeline event")
)

// Code classifies a timeline conflict.
type Code int

const (
	CodeOverlapsPreviousEvent Code = iota + 1
	CodeOverrunsNextEvent
	CodeConstructSegmentsRequired
	CodeErectPiersRequired
	CodeErectSegmentsRequired
	CodeClosureJointsRequired
	CodeStressTendonsRequired
	CodeRemoveTemporarySupportsRequired
	CodeCastDeckRequired
	CodeRailingSystemRequired
	CodeOverlayRequired
	CodeLiveLoadRequired
	CodeUserLoadRequired
	CodeRailingSystemBeforeDeck
)

var codeMessages = map[Code]string{
	CodeOverlapsPreviousEvent:           "The event begins before the previous event has ended.",
	CodeOverrunsNextEvent:               "The event does not end before the next event begins.",
	CodeConstructSegmentsRequired:       "The timeline does not include an activity for constructing segments.",
	CodeErectPiersRequired:              "The timeline does not include an activity for erecting piers.",
	CodeErectSegmentsRequired:           "The timeline does not include an activity for erecting segments.",
	CodeClosureJointsRequired:           "The timeline does not include an activity for casting closure joints.",
	CodeStressTendonsRequired:           "The timeline does not include an activity for stressing tendons.",
	CodeRemoveTemporarySupportsRequired: "The timeline does not include an activity for removing temporary supports.",
	CodeCastDeckRequired:                "The timeline does not include an activity for casting the deck.",
	CodeRailingSystemRequired:           "The timeline does not include an activity for installing the traffic barrier/railing system.",
	CodeOverlayRequired:                 "The timeline does not include an activity for installing the overlay.",
	CodeLiveLoadRequired:                "The timeline does not include an activity for opening the bridge to traffic.",
	CodeUserLoadRequired:                "User defined loads are assigned to this event.",
	CodeRailingSystemBeforeDeck:         "The traffic barrier/railing system has been installed before the deck was cast.",
}

// Message returns the user facing description of the code.
func (c Code) Message() string {
	if msg, ok := codeMessages[c]; ok {
		return msg
	}
	return fmt.Sprintf("timeline conflict %d", int(c))
}

// ConflictError reports a timeline change that would break the schedule.
type ConflictError struct {
	Code    Code
	EventID EventID
}

func (e *ConflictError) Error() string {
	return e.Code.Message()
}

// Adjustable reports whether re-adding the event with adjust enabled resolves
// the conflict.
func (e *ConflictError) Adjustable() bool {
	return e.Code == CodeOverlapsPreviousEvent || e.Code == CodeOverrunsNextEvent
}

// IsConflict reports whether err is a ConflictError with the given code.
func IsConflict(err error, code Code) bool {
	var cerr *ConflictError
	return errors.As(err, &cerr) && cerr.Code == code
}
