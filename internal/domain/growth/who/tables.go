// Package who holds the WHO child growth standards used to annotate growth
// records: age bucketing, reference tables, Z-score computation and
// nutritional status classification. Reference data is compiled in, loaded
// once and read-only for the lifetime of the process.
package who

// Indicator names an anthropometric indicator.
type Indicator string

const (
	HeightForAge Indicator = "height_for_age"
	WeightForAge Indicator = "weight_for_age"
)

// Sex of the child as modeled by the WHO standards (binary).
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// refRow is one age point of a reference curve set. Height-for-age and
// weight-for-age are stored in compact (median, sd) form; the seven SD bands
// published by WHO are median + z*sd for z in -3..3.
type refRow struct {
	AgeMonths int
	Median    float64
	SD        float64
}

// CurvePoint is one (age, value) sample of an expanded reference band.
type CurvePoint struct {
	AgeMonths int     `json:"ageInMonths"`
	Value     float64 `json:"value"`
}

// Curve is one SD band of a reference curve set, ready for plotting.
type Curve struct {
	Indicator Indicator    `json:"indicator"`
	Sex       Sex          `json:"gender"`
	Z         int          `json:"z"`
	Points    []CurvePoint `json:"points"`
}

// WHO length/height-for-age, birth to 60 months. Length convention below
// 24 months, standing height from 24 months on.
var heightForAgeBoys = []refRow{
	{0, 49.9, 1.9},
	{2, 58.4, 2.0},
	{4, 63.9, 2.1},
	{6, 67.6, 2.2},
	{9, 72.0, 2.3},
	{12, 75.7, 2.4},
	{15, 79.1, 2.6},
	{18, 82.3, 2.7},
	{21, 85.1, 2.9},
	{24, 87.1, 3.0},
	{30, 91.9, 3.2},
	{36, 96.1, 3.4},
	{42, 99.9, 3.6},
	{48, 103.3, 3.9},
	{54, 106.7, 4.1},
	{60, 110.0, 4.3},
}

var heightForAgeGirls = []refRow{
	{0, 49.1, 1.9},
	{2, 57.1, 2.0},
	{4, 62.1, 2.2},
	{6, 65.7, 2.3},
	{9, 70.1, 2.4},
	{12, 74.0, 2.5},
	{15, 77.5, 2.7},
	{18, 80.7, 2.9},
	{21, 83.7, 3.0},
	{24, 85.7, 3.1},
	{30, 90.7, 3.3},
	{36, 95.1, 3.5},
	{42, 99.0, 3.8},
	{48, 102.7, 4.0},
	{54, 106.2, 4.3},
	{60, 109.4, 4.5},
}

// WHO weight-for-age, birth to 60 months. Weight bands are served to chart
// consumers as reference only; weight-for-age Z-scores are not computed in
// this version (the published weight standard is skewed and needs the LMS
// transform, see ZScore).
var weightForAgeBoys = []refRow{
	{0, 3.3, 0.5},
	{2, 5.6, 0.7},
	{4, 7.0, 0.8},
	{6, 7.9, 0.9},
	{9, 8.9, 1.0},
	{12, 9.6, 1.1},
	{15, 10.3, 1.2},
	{18, 10.9, 1.3},
	{21, 11.5, 1.4},
	{24, 12.2, 1.5},
	{30, 13.3, 1.6},
	{36, 14.3, 1.8},
	{42, 15.3, 2.0},
	{48, 16.3, 2.2},
	{54, 17.3, 2.4},
	{60, 18.3, 2.6},
}

var weightForAgeGirls = []refRow{
	{0, 3.2, 0.5},
	{2, 5.1, 0.7},
	{4, 6.4, 0.8},
	{6, 7.3, 0.9},
	{9, 8.2, 1.0},
	{12, 8.9, 1.1},
	{15, 9.6, 1.2},
	{18, 10.2, 1.3},
	{21, 10.9, 1.4},
	{24, 11.5, 1.5},
	{30, 12.7, 1.7},
	{36, 13.9, 1.9},
	{42, 15.0, 2.1},
	{48, 16.1, 2.3},
	{54, 17.2, 2.5},
	{60, 18.2, 2.7},
}

// curveSet returns the reference rows for (indicator, sex), or nil when no
// curve set is bundled for the combination.
func curveSet(ind Indicator, sex Sex) []refRow {
	switch ind {
	case HeightForAge:
		switch sex {
		case SexMale:
			return heightForAgeBoys
		case SexFemale:
			return heightForAgeGirls
		}
	case WeightForAge:
		switch sex {
		case SexMale:
			return weightForAgeBoys
		case SexFemale:
			return weightForAgeGirls
		}
	}
	return nil
}

// Curves expands the reference set for (indicator, sex) into the seven SD
// bands (-3..+3). Returns nil when the combination has no bundled data.
func Curves(ind Indicator, sex Sex) []Curve {
	rows := curveSet(ind, sex)
	if rows == nil {
		return nil
	}

	out := make([]Curve, 0, 7)
	for z := -3; z <= 3; z++ {
		points := make([]CurvePoint, 0, len(rows))
		for _, row := range rows {
			points = append(points, CurvePoint{
				AgeMonths: row.AgeMonths,
				Value:     round2(row.Median + float64(z)*row.SD),
			})
		}
		out = append(out, Curve{
			Indicator: ind,
			Sex:       sex,
			Z:         z,
			Points:    points,
		})
	}
	return out
}

// MaxAgeMonths is the upper bound of the bundled tables. Ages beyond it are
// outside the standard and Z-scores are not computable.
const MaxAgeMonths = 60
