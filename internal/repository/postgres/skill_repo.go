package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-resume-builder/internal/domain"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	query := `INSERT INTO skills (resume_id, category, items, "order", created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(ctx, query,
		skill.ResumeID, skill.Category, skill.Items, skill.Order, skill.CreatedAt, skill.UpdatedAt,
	).Scan(&skill.ID)
}

func (r *skillRepo) GetByID(ctx context.Context, id int64) (*domain.Skill, error) {
	query := `SELECT id, resume_id, category, items, "order", created_at, updated_at FROM skills WHERE id = $1`
	var skill domain.Skill
	err := r.db.QueryRow(ctx, query, id).Scan(
		&skill.ID, &skill.ResumeID, &skill.Category, &skill.Items,
		&skill.Order, &skill.CreatedAt, &skill.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepo) FetchByResumeID(ctx context.Context, resumeID int64) ([]domain.Skill, error) {
	query := `SELECT id, resume_id, category, items, "order", created_at, updated_at
              FROM skills WHERE resume_id = $1 ORDER BY "order" ASC, id ASC`

	rows, err := r.db.Query(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		var skill domain.Skill
		if err := rows.Scan(
			&skill.ID, &skill.ResumeID, &skill.Category, &skill.Items,
			&skill.Order, &skill.CreatedAt, &skill.UpdatedAt,
		); err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, rows.Err()
}

func (r *skillRepo) Update(ctx context.Context, skill *domain.Skill) error {
	query := `UPDATE skills SET
		category = $2,
		items = $3,
		"order" = $4,
		updated_at = $5
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		skill.ID, skill.Category, skill.Items, skill.Order, skill.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *skillRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
