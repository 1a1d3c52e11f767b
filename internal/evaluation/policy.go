package evaluation

import "errors"

var (
	ErrEvaluationNotFound = errors.New("evaluation not found")
	ErrLevelNotCompleted  = errors.New("level not completed")
	ErrAlreadyPassed      = errors.New("evaluation already passed")
	ErrMaxAttempts        = errors.New("maximum attempts reached")
)

// DeriveStatus computes the (user, evaluation) state from the gate result
// and the attempt history. A passed attempt locks the evaluation for good,
// regardless of remaining quota.
func DeriveStatus(levelCompleted bool, attempts []Attempt) Status {
	if !levelCompleted {
		return StatusLocked
	}
	for _, a := range attempts {
		if a.Passed {
			return StatusAlreadyPassed
		}
	}
	if len(attempts) >= MaxAttempts {
		return StatusExhaustedAttempts
	}
	return StatusOpen
}

func statusError(s Status) error {
	switch s {
	case StatusLocked:
		return ErrLevelNotCompleted
	case StatusAlreadyPassed:
		return ErrAlreadyPassed
	case StatusExhaustedAttempts:
		return ErrMaxAttempts
	default:
		return nil
	}
}
