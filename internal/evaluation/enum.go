package evaluation

// Status is derived from the attempt history on every call; it is never
// persisted.
type Status string

const (
	StatusLocked            Status = "LOCKED"
	StatusAlreadyPassed     Status = "ALREADY_PASSED"
	StatusExhaustedAttempts Status = "EXHAUSTED_ATTEMPTS"
	StatusOpen              Status = "OPEN"
)

// MaxAttempts is the total submission quota per (user, evaluation) unless
// one of the attempts passed first.
const MaxAttempts = 3
