package evaluation

import "testing"

func TestThresholdBoundary(t *testing.T) {
	t.Run("ExactThresholdPasses", func(t *testing.T) {
		if !passes(50.00, 50) {
			t.Error("A score exactly at the threshold must pass")
		}
		if !passes(100, 100) {
			t.Error("100 at threshold 100 must pass")
		}
	})

	t.Run("BelowThresholdFails", func(t *testing.T) {
		if passes(50.00, 60) {
			t.Error("50 must fail against threshold 60")
		}
		if passes(59.99, 60) {
			t.Error("59.99 must fail against threshold 60")
		}
	})

	t.Run("ZeroThreshold", func(t *testing.T) {
		if !passes(0, 0) {
			t.Error("Threshold 0 admits any score")
		}
	})
}
