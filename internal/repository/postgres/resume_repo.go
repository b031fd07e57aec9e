package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-resume-builder/internal/domain"
)

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

const resumeColumns = `id, user_id, title, email, phone, location, linkedin, github, summary, is_default, created_at, updated_at, deleted_at`

func scanResume(row pgx.Row) (*domain.Resume, error) {
	var resume domain.Resume
	err := row.Scan(
		&resume.ID, &resume.UserID, &resume.Title, &resume.Email, &resume.Phone,
		&resume.Location, &resume.Linkedin, &resume.Github, &resume.Summary,
		&resume.IsDefault, &resume.CreatedAt, &resume.UpdatedAt, &resume.DeletedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	query := `INSERT INTO resumes (user_id, title, email, phone, location, linkedin, github, summary, is_default, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRow(ctx, query,
		resume.UserID, resume.Title, resume.Email, resume.Phone,
		resume.Location, resume.Linkedin, resume.Github, resume.Summary,
		resume.IsDefault, resume.CreatedAt, resume.UpdatedAt,
	).Scan(&resume.ID)
}

func (r *resumeRepo) GetByID(ctx context.Context, id int64) (*domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1 AND deleted_at IS NULL`
	return scanResume(r.db.QueryRow(ctx, query, id))
}

func (r *resumeRepo) FetchByUserID(ctx context.Context, userID string) ([]domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes
              WHERE user_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumes []domain.Resume
	for rows.Next() {
		var resume domain.Resume
		if err := rows.Scan(
			&resume.ID, &resume.UserID, &resume.Title, &resume.Email, &resume.Phone,
			&resume.Location, &resume.Linkedin, &resume.Github, &resume.Summary,
			&resume.IsDefault, &resume.CreatedAt, &resume.UpdatedAt, &resume.DeletedAt,
		); err != nil {
			return nil, err
		}
		resumes = append(resumes, resume)
	}
	return resumes, rows.Err()
}

// Update replaces the mutable scalar field set. user_id is deliberately absent
// from the SET clause: ownership never changes after creation.
func (r *resumeRepo) Update(ctx context.Context, resume *domain.Resume) error {
	query := `UPDATE resumes SET
		title = $2,
		email = $3,
		phone = $4,
		location = $5,
		linkedin = $6,
		github = $7,
		summary = $8,
		is_default = $9,
		updated_at = $10
	WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.db.Exec(ctx, query,
		resume.ID, resume.Title, resume.Email, resume.Phone,
		resume.Location, resume.Linkedin, resume.Github, resume.Summary,
		resume.IsDefault, resume.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *resumeRepo) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE resumes SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *resumeRepo) Purge(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
