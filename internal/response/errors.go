package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrTestNotFound    ErrCode = "TEST_NOT_FOUND"
	ErrSessionNotFound ErrCode = "SESSION_NOT_FOUND"

	// ─── Session lifecycle ─────────────────────────────────────────────
	ErrSessionNotActive     ErrCode = "SESSION_NOT_ACTIVE"
	ErrSessionStarted       ErrCode = "SESSION_ALREADY_STARTED"
	ErrSessionFinalized     ErrCode = "SESSION_ALREADY_FINALIZED"
	ErrResultNotReady       ErrCode = "RESULT_NOT_READY"
	ErrConfirmationRequired ErrCode = "CONFIRMATION_REQUIRED"

	// ─── Exam rules ────────────────────────────────────────────────────
	ErrSectionLimitReached ErrCode = "SECTION_LIMIT_REACHED"
	ErrQuestionNotFound    ErrCode = "QUESTION_NOT_FOUND"
	ErrOptionOutOfRange    ErrCode = "OPTION_OUT_OF_RANGE"
	ErrNoQuestions         ErrCode = "NO_QUESTIONS"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid id format."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrTestNotFound:
		return "No mock test exists with this id."
	case ErrSessionNotFound:
		return "Exam session not found. It may have been discarded."
	case ErrSessionNotActive:
		return "The exam is not in progress."
	case ErrSessionStarted:
		return "The exam has already started."
	case ErrSessionFinalized:
		return "The exam has already been submitted."
	case ErrResultNotReady:
		return "The score card is available only after submission."
	case ErrConfirmationRequired:
		return "Submission must be confirmed explicitly."
	case ErrSectionLimitReached:
		return "You have already answered the maximum number of questions allowed in this section. Clear one to attempt another."
	case ErrQuestionNotFound:
		return "This question is not part of the paper."
	case ErrOptionOutOfRange:
		return "The chosen option does not exist for this question."
	case ErrNoQuestions:
		return "No questions could be loaded for this test."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
