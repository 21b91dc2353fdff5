package exam

import "errors"

// Domain errors surfaced to the transport layer as typed response codes.
var (
	ErrNoQuestions      = errors.New("no questions loaded for this test")
	ErrQuestionNotFound = errors.New("question not found in this paper")
	ErrOptionOutOfRange = errors.New("option index out of range")
	ErrSectionLimit     = errors.New("section answer limit reached")
	ErrSessionNotActive = errors.New("exam session is not active")
	ErrAlreadyStarted   = errors.New("exam session already started")
	ErrAlreadyFinalized = errors.New("exam session already finalized")
	ErrSessionNotScored = errors.New("exam session has not been finalized yet")
)
