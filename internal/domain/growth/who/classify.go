package who

// Status is a nutritional status category derived from a Z-score.
type Status string

const (
	StatusSeverelyLow  Status = "severely_low"
	StatusLow          Status = "low"
	StatusNormal       Status = "normal"
	StatusHigh         Status = "high"
	StatusSeverelyHigh Status = "severely_high"
	StatusUnknown      Status = "unknown"
)

// Classify maps a Z-score to a status category for the given indicator.
// A nil Z-score (not computable) is StatusUnknown.
//
// The two indicators keep separate threshold tables: the WHO cutoffs differ
// above the median (height tolerates up to +2 as normal, weight only +1).
// Boundary values belong to the better category on both tables.
func Classify(ind Indicator, z *float64) Status {
	if z == nil {
		return StatusUnknown
	}

	switch ind {
	case HeightForAge:
		return classifyHeightForAge(*z)
	case WeightForAge:
		return classifyWeightForAge(*z)
	default:
		return StatusUnknown
	}
}

func classifyHeightForAge(z float64) Status {
	switch {
	case z < -3:
		return StatusSeverelyLow
	case z < -2:
		return StatusLow
	case z <= 2:
		return StatusNormal
	case z <= 3:
		return StatusHigh
	default:
		return StatusSeverelyHigh
	}
}

func classifyWeightForAge(z float64) Status {
	switch {
	case z < -3:
		return StatusSeverelyLow
	case z < -2:
		return StatusLow
	case z <= 1:
		return StatusNormal
	default:
		return StatusHigh
	}
}

// Label returns the display label for a status under the given indicator,
// matching the wording used by the posyandu forms.
func (s Status) Label(ind Indicator) string {
	if ind == WeightForAge {
		switch s {
		case StatusSeverelyLow:
			return "Berat Badan Sangat Kurang"
		case StatusLow:
			return "Berat Badan Kurang"
		case StatusNormal:
			return "Normal"
		case StatusHigh:
			return "Risiko Berat Lebih"
		default:
			return "N/A"
		}
	}

	switch s {
	case StatusSeverelyLow:
		return "Sangat Pendek"
	case StatusLow:
		return "Pendek"
	case StatusNormal:
		return "Normal"
	case StatusHigh:
		return "Tinggi"
	case StatusSeverelyHigh:
		return "Sangat Tinggi"
	default:
		return "N/A"
	}
}
