package coordinator

import "errors"

// ErrParticipantNotFound is returned when an account has no registered
// participant.
var ErrParticipantNotFound = errors.New("coordinator: participant not found for account")
