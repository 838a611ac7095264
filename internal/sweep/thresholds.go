package sweep

import "errors"

// ErrInvalidStep is returned when a sweep is requested with a zero step.
var ErrInvalidStep = errors.New("sweep step cannot be zero")

// BuildThresholds produces the candidate thresholds from start towards end in
// increments of step. Direction follows the sign of step. The sequence always
// includes one value past the nominal bound: sweeping 1100 down to 695 by -25
// also emits 675, because 700 - 25 falls below 695. The list is fully
// materialized; sweeps are finite by construction for any non-zero step.
func BuildThresholds(start, end, step float64) ([]float64, error) {
	if step == 0 {
		return nil, ErrInvalidStep
	}
	var hs []float64
	h := start
	if step < 0 {
		for {
			hs = append(hs, h)
			next := h + step
			if next < end {
				hs = append(hs, next)
				break
			}
			h = next
		}
	} else {
		for {
			hs = append(hs, h)
			next := h + step
			if next > end {
				hs = append(hs, next)
				break
			}
			h = next
		}
	}
	return hs, nil
}
