package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-resume-builder/internal/domain"
)

type projectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) domain.ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, project *domain.Project) error {
	query := `INSERT INTO projects (resume_id, name, description, technologies, link, "order", created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRow(ctx, query,
		project.ResumeID, project.Name, project.Description, project.Technologies,
		project.Link, project.Order, project.CreatedAt, project.UpdatedAt,
	).Scan(&project.ID)
}

func (r *projectRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	query := `SELECT id, resume_id, name, description, technologies, link, "order", created_at, updated_at
              FROM projects WHERE id = $1`
	var project domain.Project
	err := r.db.QueryRow(ctx, query, id).Scan(
		&project.ID, &project.ResumeID, &project.Name, &project.Description,
		&project.Technologies, &project.Link, &project.Order, &project.CreatedAt, &project.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepo) FetchByResumeID(ctx context.Context, resumeID int64) ([]domain.Project, error) {
	query := `SELECT id, resume_id, name, description, technologies, link, "order", created_at, updated_at
              FROM projects WHERE resume_id = $1 ORDER BY "order" ASC, id ASC`

	rows, err := r.db.Query(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var project domain.Project
		if err := rows.Scan(
			&project.ID, &project.ResumeID, &project.Name, &project.Description,
			&project.Technologies, &project.Link, &project.Order, &project.CreatedAt, &project.UpdatedAt,
		); err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

func (r *projectRepo) Update(ctx context.Context, project *domain.Project) error {
	query := `UPDATE projects SET
		name = $2,
		description = $3,
		technologies = $4,
		link = $5,
		"order" = $6,
		updated_at = $7
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		project.ID, project.Name, project.Description, project.Technologies,
		project.Link, project.Order, project.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
