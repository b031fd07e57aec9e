package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-resume-builder/internal/domain"
)

type certificationRepo struct {
	db *pgxpool.Pool
}

func NewCertificationRepository(db *pgxpool.Pool) domain.CertificationRepository {
	return &certificationRepo{db: db}
}

func (r *certificationRepo) Create(ctx context.Context, cert *domain.Certification) error {
	query := `INSERT INTO certifications (resume_id, name, issuer, date, link, "order", created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRow(ctx, query,
		cert.ResumeID, cert.Name, cert.Issuer, cert.Date,
		cert.Link, cert.Order, cert.CreatedAt, cert.UpdatedAt,
	).Scan(&cert.ID)
}

func (r *certificationRepo) GetByID(ctx context.Context, id int64) (*domain.Certification, error) {
	query := `SELECT id, resume_id, name, issuer, date, link, "order", created_at, updated_at
              FROM certifications WHERE id = $1`
	var cert domain.Certification
	err := r.db.QueryRow(ctx, query, id).Scan(
		&cert.ID, &cert.ResumeID, &cert.Name, &cert.Issuer, &cert.Date,
		&cert.Link, &cert.Order, &cert.CreatedAt, &cert.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *certificationRepo) FetchByResumeID(ctx context.Context, resumeID int64) ([]domain.Certification, error) {
	query := `SELECT id, resume_id, name, issuer, date, link, "order", created_at, updated_at
              FROM certifications WHERE resume_id = $1 ORDER BY "order" ASC, id ASC`

	rows, err := r.db.Query(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	certifications := []domain.Certification{}
	for rows.Next() {
		var cert domain.Certification
		if err := rows.Scan(
			&cert.ID, &cert.ResumeID, &cert.Name, &cert.Issuer, &cert.Date,
			&cert.Link, &cert.Order, &cert.CreatedAt, &cert.UpdatedAt,
		); err != nil {
			return nil, err
		}
		certifications = append(certifications, cert)
	}
	return certifications, rows.Err()
}

func (r *certificationRepo) Update(ctx context.Context, cert *domain.Certification) error {
	query := `UPDATE certifications SET
		name = $2,
		issuer = $3,
		date = $4,
		link = $5,
		"order" = $6,
		updated_at = $7
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		cert.ID, cert.Name, cert.Issuer, cert.Date, cert.Link, cert.Order, cert.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *certificationRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
