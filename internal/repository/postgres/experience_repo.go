package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-resume-builder/internal/domain"
)

type experienceRepo struct {
	db *pgxpool.Pool
}

func NewExperienceRepository(db *pgxpool.Pool) domain.ExperienceRepository {
	return &experienceRepo{db: db}
}

func (r *experienceRepo) Create(ctx context.Context, exp *domain.Experience) error {
	query := `INSERT INTO experiences (resume_id, job_title, company, start_date, end_date, currently_working, description, "order", created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRow(ctx, query,
		exp.ResumeID, exp.JobTitle, exp.Company, exp.StartDate, exp.EndDate,
		exp.CurrentlyWorking, exp.Description, exp.Order, exp.CreatedAt, exp.UpdatedAt,
	).Scan(&exp.ID)
}

func (r *experienceRepo) GetByID(ctx context.Context, id int64) (*domain.Experience, error) {
	query := `SELECT id, resume_id, job_title, company, start_date, end_date, currently_working, description, "order", created_at, updated_at
              FROM experiences WHERE id = $1`
	var exp domain.Experience
	err := r.db.QueryRow(ctx, query, id).Scan(
		&exp.ID, &exp.ResumeID, &exp.JobTitle, &exp.Company, &exp.StartDate, &exp.EndDate,
		&exp.CurrentlyWorking, &exp.Description, &exp.Order, &exp.CreatedAt, &exp.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &exp, nil
}

// FetchByResumeID orders by "order" then id, keeping duplicate orders
// insertion-stable.
func (r *experienceRepo) FetchByResumeID(ctx context.Context, resumeID int64) ([]domain.Experience, error) {
	query := `SELECT id, resume_id, job_title, company, start_date, end_date, currently_working, description, "order", created_at, updated_at
              FROM experiences WHERE resume_id = $1 ORDER BY "order" ASC, id ASC`

	rows, err := r.db.Query(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	experiences := []domain.Experience{}
	for rows.Next() {
		var exp domain.Experience
		if err := rows.Scan(
			&exp.ID, &exp.ResumeID, &exp.JobTitle, &exp.Company, &exp.StartDate, &exp.EndDate,
			&exp.CurrentlyWorking, &exp.Description, &exp.Order, &exp.CreatedAt, &exp.UpdatedAt,
		); err != nil {
			return nil, err
		}
		experiences = append(experiences, exp)
	}
	return experiences, rows.Err()
}

func (r *experienceRepo) Update(ctx context.Context, exp *domain.Experience) error {
	query := `UPDATE experiences SET
		job_title = $2,
		company = $3,
		start_date = $4,
		end_date = $5,
		currently_working = $6,
		description = $7,
		"order" = $8,
		updated_at = $9
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		exp.ID, exp.JobTitle, exp.Company, exp.StartDate, exp.EndDate,
		exp.CurrentlyWorking, exp.Description, exp.Order, exp.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *experienceRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
