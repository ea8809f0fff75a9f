package growth

import (
	"time"

	"child-growth-tracker/internal/domain/growth/who"
)

// Record is one measurement of a child. Records are append-only: created by
// staff input, never mutated, not deleted in normal operation.
//
// AgeInMonths and HeightZScore are derived at write time from the child's
// birth date and the bundled WHO standards; they are never trusted from
// input. HeightZScore is nil when not computable (age outside the reference
// range) and stays nil — weight Z-scores are not computed in this version.
type Record struct {
	ID      string `json:"id"`
	ChildID string `json:"childId"`

	Date time.Time `json:"date"`

	Height            float64  `json:"height"` // cm
	Weight            float64  `json:"weight"` // kg
	HeadCircumference *float64 `json:"headCircumference,omitempty"` // cm, optional

	AgeInMonths  int        `json:"ageInMonths"`
	HeightZScore *float64   `json:"heightZScore"` // full precision
	HeightStatus who.Status `json:"heightStatus"`

	CreatedAt time.Time `json:"createdAt"`
}

// Stats is the derived aggregate over a child's record set. Ephemeral:
// recomputed on demand, never persisted as source of truth.
//
// With zero records every field holds its zero sentinel — consumers rely on
// that instead of nil checks. Z-score aggregates cover only records with a
// computable Z-score; HeightZScoreCount says how many that was, so an
// average of 0 over zero computable records is distinguishable from a true
// zero average.
type Stats struct {
	Count int `json:"count"`

	AvgHeight float64 `json:"avgHeight"`
	MinHeight float64 `json:"minHeight"`
	MaxHeight float64 `json:"maxHeight"`

	AvgWeight float64 `json:"avgWeight"`
	MinWeight float64 `json:"minWeight"`
	MaxWeight float64 `json:"maxWeight"`

	AvgHeightZScore   float64 `json:"avgHeightZScore"`
	MinHeightZScore   float64 `json:"minHeightZScore"`
	MaxHeightZScore   float64 `json:"maxHeightZScore"`
	HeightZScoreCount int     `json:"heightZScoreCount"`

	MinDate string `json:"minDate"` // ISO date, "" when no records
	MaxDate string `json:"maxDate"`
}

// Chart bundles a child's record series with the WHO reference bands the
// client plots them against.
type Chart struct {
	Records []Record    `json:"records"`
	Curves  []who.Curve `json:"whoCurves"`
}
