package who

import "math"

// ZScore computes the Z-score of an observed value against the reference
// curve set for (indicator, sex) at the given age in months.
//
// The median and the SD band adjacent to the deviation (+1 when the
// observation is at or above the median, -1 below it) are linearly
// interpolated between the two bracketing age points; the interpolated SD is
// the absolute distance between band and median. An age that lands exactly on
// a table row collapses the bracket to a single point (zero-distance case, no
// division by zero).
//
// Returns nil when the Z-score is not computable: age outside the table's
// covered range (no extrapolation), or no curve set bundled for the
// combination. Non-computability is a valid terminal state, not an error.
//
// Only height-for-age is currently supported; weight-for-age needs the LMS
// transform over the skewed weight standard and deliberately returns nil so
// it can never read as a silent zero.
func ZScore(ind Indicator, sex Sex, ageMonths int, observed float64) *float64 {
	if ind != HeightForAge {
		return nil
	}

	rows := curveSet(ind, sex)
	if rows == nil {
		return nil
	}
	if ageMonths < rows[0].AgeMonths || ageMonths > rows[len(rows)-1].AgeMonths {
		return nil
	}

	lo, hi := bracket(rows, ageMonths)

	var t float64
	if hi.AgeMonths > lo.AgeMonths {
		t = float64(ageMonths-lo.AgeMonths) / float64(hi.AgeMonths-lo.AgeMonths)
	}

	median := lerp(lo.Median, hi.Median, t)

	band := 1.0
	if observed < median {
		band = -1.0
	}
	bandValue := lerp(lo.Median+band*lo.SD, hi.Median+band*hi.SD, t)

	sd := math.Abs(bandValue - median)
	if sd == 0 {
		return nil
	}

	z := (observed - median) / sd
	return &z
}

// bracket finds the adjacent rows lo, hi with lo.Age <= age <= hi.Age.
// Caller guarantees age is within [first, last].
func bracket(rows []refRow, ageMonths int) (refRow, refRow) {
	for i := 1; i < len(rows); i++ {
		if ageMonths <= rows[i].AgeMonths {
			if ageMonths == rows[i].AgeMonths {
				return rows[i], rows[i]
			}
			return rows[i-1], rows[i]
		}
	}
	return rows[0], rows[0]
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Round2 rounds a Z-score to two decimals for display. Stored and aggregated
// values keep full precision.
func Round2(z float64) float64 {
	return round2(z)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
