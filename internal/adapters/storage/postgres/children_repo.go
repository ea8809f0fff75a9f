package postgres

import (
	"context"
	"database/sql"
	"strings"

	"child-growth-tracker/internal/domain/children"
)

type ChildrenRepo struct {
	db *sql.DB
}

func NewChildrenRepo(db *sql.DB) *ChildrenRepo {
	return &ChildrenRepo{db: db}
}

func (r *ChildrenRepo) Create(ctx context.Context, c children.Child) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO children (
			id, name, birth_date, sex, nik, parent_user_id, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		c.ID,
		c.Name,
		c.BirthDate,
		string(c.Sex),
		c.NIK,
		c.ParentUserID,
		c.CreatedAt,
	)
	return err
}

func (r *ChildrenRepo) GetByID(ctx context.Context, id string) (children.Child, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return children.Child{}, ErrNotFound
	}
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, name, birth_date, sex, nik, parent_user_id, created_at
		FROM children
		WHERE id = $1
	`, id))
}

func (r *ChildrenRepo) GetByNIK(ctx context.Context, nik string) (children.Child, error) {
	nik = strings.TrimSpace(nik)
	if nik == "" {
		return children.Child{}, ErrNotFound
	}
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, name, birth_date, sex, nik, parent_user_id, created_at
		FROM children
		WHERE nik = $1
	`, nik))
}

func (r *ChildrenRepo) List(ctx context.Context) ([]children.Child, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, birth_date, sex, nik, parent_user_id, created_at
		FROM children
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *ChildrenRepo) ListByParent(ctx context.Context, parentUserID string) ([]children.Child, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, birth_date, sex, nik, parent_user_id, created_at
		FROM children
		WHERE parent_user_id = $1
		ORDER BY created_at ASC
	`, parentUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *ChildrenRepo) scanOne(row *sql.Row) (children.Child, error) {
	var c children.Child
	var sex string
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.BirthDate,
		&sex,
		&c.NIK,
		&c.ParentUserID,
		&c.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return children.Child{}, ErrNotFound
		}
		return children.Child{}, err
	}
	c.Sex = children.Sex(sex)
	return c, nil
}

func (r *ChildrenRepo) scanAll(rows *sql.Rows) ([]children.Child, error) {
	out := make([]children.Child, 0)
	for rows.Next() {
		var c children.Child
		var sex string
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.BirthDate,
			&sex,
			&c.NIK,
			&c.ParentUserID,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		c.Sex = children.Sex(sex)
		out = append(out, c)
	}
	return out, rows.Err()
}
