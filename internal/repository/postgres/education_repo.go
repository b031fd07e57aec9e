package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-resume-builder/internal/domain"
)

type educationRepo struct {
	db *pgxpool.Pool
}

func NewEducationRepository(db *pgxpool.Pool) domain.EducationRepository {
	return &educationRepo{db: db}
}

func (r *educationRepo) Create(ctx context.Context, edu *domain.Education) error {
	query := `INSERT INTO educations (resume_id, degree, field_of_study, school, graduation_year, "order", created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRow(ctx, query,
		edu.ResumeID, edu.Degree, edu.FieldOfStudy, edu.School,
		edu.GraduationYear, edu.Order, edu.CreatedAt, edu.UpdatedAt,
	).Scan(&edu.ID)
}

func (r *educationRepo) GetByID(ctx context.Context, id int64) (*domain.Education, error) {
	query := `SELECT id, resume_id, degree, field_of_study, school, graduation_year, "order", created_at, updated_at
              FROM educations WHERE id = $1`
	var edu domain.Education
	err := r.db.QueryRow(ctx, query, id).Scan(
		&edu.ID, &edu.ResumeID, &edu.Degree, &edu.FieldOfStudy, &edu.School,
		&edu.GraduationYear, &edu.Order, &edu.CreatedAt, &edu.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &edu, nil
}

func (r *educationRepo) FetchByResumeID(ctx context.Context, resumeID int64) ([]domain.Education, error) {
	query := `SELECT id, resume_id, degree, field_of_study, school, graduation_year, "order", created_at, updated_at
              FROM educations WHERE resume_id = $1 ORDER BY "order" ASC, id ASC`

	rows, err := r.db.Query(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	educations := []domain.Education{}
	for rows.Next() {
		var edu domain.Education
		if err := rows.Scan(
			&edu.ID, &edu.ResumeID, &edu.Degree, &edu.FieldOfStudy, &edu.School,
			&edu.GraduationYear, &edu.Order, &edu.CreatedAt, &edu.UpdatedAt,
		); err != nil {
			return nil, err
		}
		educations = append(educations, edu)
	}
	return educations, rows.Err()
}

func (r *educationRepo) Update(ctx context.Context, edu *domain.Education) error {
	query := `UPDATE educations SET
		degree = $2,
		field_of_study = $3,
		school = $4,
		graduation_year = $5,
		"order" = $6,
		updated_at = $7
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		edu.ID, edu.Degree, edu.FieldOfStudy, edu.School,
		edu.GraduationYear, edu.Order, edu.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *educationRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM educations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
