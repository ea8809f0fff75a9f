package growth

// Aggregate folds a child's record set into Stats. The reduction is
// order-independent: any permutation of the same records yields the same
// result. Empty input returns the zero-sentinel Stats, never an error.
func Aggregate(records []Record) Stats {
	st := Stats{Count: len(records)}
	if len(records) == 0 {
		return st
	}

	var (
		sumHeight, sumWeight, sumZ float64
		minDate, maxDate           = records[0].Date, records[0].Date
	)

	st.MinHeight = records[0].Height
	st.MaxHeight = records[0].Height
	st.MinWeight = records[0].Weight
	st.MaxWeight = records[0].Weight

	for _, rec := range records {
		sumHeight += rec.Height
		sumWeight += rec.Weight

		if rec.Height < st.MinHeight {
			st.MinHeight = rec.Height
		}
		if rec.Height > st.MaxHeight {
			st.MaxHeight = rec.Height
		}
		if rec.Weight < st.MinWeight {
			st.MinWeight = rec.Weight
		}
		if rec.Weight > st.MaxWeight {
			st.MaxWeight = rec.Weight
		}

		if rec.Date.Before(minDate) {
			minDate = rec.Date
		}
		if rec.Date.After(maxDate) {
			maxDate = rec.Date
		}

		// Z-score aggregates cover computable records only.
		if rec.HeightZScore != nil {
			z := *rec.HeightZScore
			if st.HeightZScoreCount == 0 {
				st.MinHeightZScore = z
				st.MaxHeightZScore = z
			} else {
				if z < st.MinHeightZScore {
					st.MinHeightZScore = z
				}
				if z > st.MaxHeightZScore {
					st.MaxHeightZScore = z
				}
			}
			sumZ += z
			st.HeightZScoreCount++
		}
	}

	n := float64(len(records))
	st.AvgHeight = sumHeight / n
	st.AvgWeight = sumWeight / n
	if st.HeightZScoreCount > 0 {
		st.AvgHeightZScore = sumZ / float64(st.HeightZScoreCount)
	}

	st.MinDate = minDate.Format("2006-01-02")
	st.MaxDate = maxDate.Format("2006-01-02")

	return st
}
