package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"go-resume-builder/internal/authz"
	"go-resume-builder/internal/domain"
	"go-resume-builder/pkg/apperror"
	"go-resume-builder/pkg/validation"
)

type certificationUsecase struct {
	certificationRepo domain.CertificationRepository
	resumeRepo        domain.ResumeRepository
	gate              *authz.Gate
	validate          *validator.Validate
}

func NewCertificationUsecase(certificationRepo domain.CertificationRepository, resumeRepo domain.ResumeRepository, gate *authz.Gate, validate *validator.Validate) domain.CertificationUsecase {
	return &certificationUsecase{
		certificationRepo: certificationRepo,
		resumeRepo:        resumeRepo,
		gate:              gate,
		validate:          validate,
	}
}

func (u *certificationUsecase) CreateCertification(ctx context.Context, userID string, in *domain.CertificationInput) (*domain.Certification, error) {
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}
	if _, err := authorizeResume(ctx, u.resumeRepo, u.gate, userID, in.ResumeID, authz.ActionUpdate); err != nil {
		return nil, err
	}

	date, err := validation.NormalizeDate("date", in.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cert := &domain.Certification{
		ResumeID:  in.ResumeID,
		Name:      in.Name,
		Issuer:    in.Issuer,
		Date:      date,
		Link:      in.Link,
		Order:     in.Order,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.certificationRepo.Create(ctx, cert); err != nil {
		return nil, err
	}
	return cert, nil
}

func (u *certificationUsecase) UpdateCertification(ctx context.Context, userID string, id int64, in *domain.CertificationUpdate) (*domain.Certification, error) {
	cert, err := u.certificationRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Certification not found")
	}
	if err != nil {
		return nil, err
	}
	if _, err := authorizeResume(ctx, u.resumeRepo, u.gate, userID, cert.ResumeID, authz.ActionUpdate); err != nil {
		return nil, err
	}
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}

	if in.Name != nil {
		cert.Name = *in.Name
	}
	if in.Issuer != nil {
		cert.Issuer = *in.Issuer
	}
	if in.Date != nil && *in.Date != "" {
		dt, err := validation.NormalizeDate("date", *in.Date)
		if err != nil {
			return nil, err
		}
		cert.Date = dt
	}
	if in.Link != nil {
		if *in.Link == "" {
			cert.Link = nil
		} else {
			cert.Link = in.Link
		}
	}
	if in.Order != nil {
		cert.Order = *in.Order
	}
	cert.UpdatedAt = time.Now()

	if err := u.certificationRepo.Update(ctx, cert); err != nil {
		return nil, err
	}
	return cert, nil
}

func (u *certificationUsecase) DeleteCertification(ctx context.Context, userID string, id int64) error {
	cert, err := u.certificationRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Certification not found")
	}
	if err != nil {
		return err
	}
	if _, err := authorizeResume(ctx, u.resumeRepo, u.gate, userID, cert.ResumeID, authz.ActionDelete); err != nil {
		return err
	}
	return u.certificationRepo.Delete(ctx, id)
}
