package postgres

import (
	"context"
	"database/sql"
	"strings"

	"child-growth-tracker/internal/domain/growth"
	"child-growth-tracker/internal/domain/growth/who"
)

type GrowthRepo struct {
	db *sql.DB
}

func NewGrowthRepo(db *sql.DB) *GrowthRepo {
	return &GrowthRepo{db: db}
}

func (r *GrowthRepo) Create(ctx context.Context, rec growth.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO growth_records (
			id, child_id,
			measured_at, height_cm, weight_kg, head_circumference_cm,
			age_in_months, height_z_score, height_status,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		rec.ID,
		rec.ChildID,
		rec.Date,
		rec.Height,
		rec.Weight,
		rec.HeadCircumference,
		rec.AgeInMonths,
		rec.HeightZScore,
		string(rec.HeightStatus),
		rec.CreatedAt,
	)
	return err
}

func (r *GrowthRepo) ListByChild(ctx context.Context, childID string) ([]growth.Record, error) {
	childID = strings.TrimSpace(childID)
	if childID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, child_id,
			measured_at, height_cm, weight_kg, head_circumference_cm,
			age_in_months, height_z_score, height_status,
			created_at
		FROM growth_records
		WHERE child_id = $1
		ORDER BY measured_at ASC, created_at ASC
	`, childID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]growth.Record, 0)
	for rows.Next() {
		var rec growth.Record
		var status string
		var headCirc sql.NullFloat64
		var zScore sql.NullFloat64

		if err := rows.Scan(
			&rec.ID,
			&rec.ChildID,
			&rec.Date,
			&rec.Height,
			&rec.Weight,
			&headCirc,
			&rec.AgeInMonths,
			&zScore,
			&status,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}

		if headCirc.Valid {
			v := headCirc.Float64
			rec.HeadCircumference = &v
		}
		if zScore.Valid {
			v := zScore.Float64
			rec.HeightZScore = &v
		}
		rec.HeightStatus = who.Status(status)

		out = append(out, rec)
	}

	return out, rows.Err()
}
