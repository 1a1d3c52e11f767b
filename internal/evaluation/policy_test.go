package evaluation

import "testing"

func TestDeriveStatus(t *testing.T) {
	failed := Attempt{Passed: false}
	passed := Attempt{Passed: true}

	t.Run("LockedWhenLevelNotCompleted", func(t *testing.T) {
		if got := DeriveStatus(false, nil); got != StatusLocked {
			t.Errorf("Expected LOCKED, got %s", got)
		}
		// even with quota exhausted, the gate wins
		if got := DeriveStatus(false, []Attempt{failed, failed, failed}); got != StatusLocked {
			t.Errorf("Expected LOCKED, got %s", got)
		}
	})

	t.Run("OpenWithQuotaRemaining", func(t *testing.T) {
		if got := DeriveStatus(true, nil); got != StatusOpen {
			t.Errorf("Expected OPEN with no attempts, got %s", got)
		}
		if got := DeriveStatus(true, []Attempt{failed, failed}); got != StatusOpen {
			t.Errorf("Expected OPEN with 2 failed attempts, got %s", got)
		}
	})

	t.Run("ExhaustedAtThreeFailures", func(t *testing.T) {
		if got := DeriveStatus(true, []Attempt{failed, failed, failed}); got != StatusExhaustedAttempts {
			t.Errorf("Expected EXHAUSTED_ATTEMPTS, got %s", got)
		}
	})

	t.Run("AlreadyPassedBeatsQuota", func(t *testing.T) {
		if got := DeriveStatus(true, []Attempt{passed}); got != StatusAlreadyPassed {
			t.Errorf("Expected ALREADY_PASSED, got %s", got)
		}
		// a pass on the last attempt still locks, not exhausts
		if got := DeriveStatus(true, []Attempt{failed, failed, passed}); got != StatusAlreadyPassed {
			t.Errorf("Expected ALREADY_PASSED over EXHAUSTED_ATTEMPTS, got %s", got)
		}
	})
}

func TestStatusError(t *testing.T) {
	cases := map[Status]error{
		StatusLocked:            ErrLevelNotCompleted,
		StatusAlreadyPassed:     ErrAlreadyPassed,
		StatusExhaustedAttempts: ErrMaxAttempts,
		StatusOpen:              nil,
	}
	for status, want := range cases {
		if got := statusError(status); got != want {
			t.Errorf("statusError(%s) = %v, want %v", status, got, want)
		}
	}
}
