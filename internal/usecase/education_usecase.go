package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"go-resume-builder/internal/authz"
	"go-resume-builder/internal/domain"
	"go-resume-builder/pkg/apperror"
)

type educationUsecase struct {
	educationRepo domain.EducationRepository
	resumeRepo    domain.ResumeRepository
	gate          *authz.Gate
	validate      *validator.Validate
}

func NewEducationUsecase(educationRepo domain.EducationRepository, resumeRepo domain.ResumeRepository, gate *authz.Gate, validate *validator.Validate) domain.EducationUsecase {
	return &educationUsecase{
		educationRepo: educationRepo,
		resumeRepo:    resumeRepo,
		gate:          gate,
		validate:      validate,
	}
}

func (u *educationUsecase) CreateEducation(ctx context.Context, userID string, in *domain.EducationInput) (*domain.Education, error) {
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}
	if _, err := authorizeResume(ctx, u.resumeRepo, u.gate, userID, in.ResumeID, authz.ActionUpdate); err != nil {
		return nil, err
	}

	now := time.Now()
	edu := &domain.Education{
		ResumeID:       in.ResumeID,
		Degree:         in.Degree,
		FieldOfStudy:   in.FieldOfStudy,
		School:         in.School,
		GraduationYear: in.GraduationYear,
		Order:          in.Order,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := u.educationRepo.Create(ctx, edu); err != nil {
		return nil, err
	}
	return edu, nil
}

func (u *educationUsecase) UpdateEducation(ctx context.Context, userID string, id int64, in *domain.EducationUpdate) (*domain.Education, error) {
	edu, err := u.educationRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Education not found")
	}
	if err != nil {
		return nil, err
	}
	if _, err := authorizeResume(ctx, u.resumeRepo, u.gate, userID, edu.ResumeID, authz.ActionUpdate); err != nil {
		return nil, err
	}
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}

	if in.Degree != nil {
		edu.Degree = *in.Degree
	}
	if in.FieldOfStudy != nil {
		edu.FieldOfStudy = *in.FieldOfStudy
	}
	if in.School != nil {
		edu.School = *in.School
	}
	if in.GraduationYear != nil {
		edu.GraduationYear = *in.GraduationYear
	}
	if in.Order != nil {
		edu.Order = *in.Order
	}
	edu.UpdatedAt = time.Now()

	if err := u.educationRepo.Update(ctx, edu); err != nil {
		return nil, err
	}
	return edu, nil
}

func (u *educationUsecase) DeleteEducation(ctx context.Context, userID string, id int64) error {
	edu, err := u.educationRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Education not found")
	}
	if err != nil {
		return err
	}
	if _, err := authorizeResume(ctx, u.resumeRepo, u.gate, userID, edu.ResumeID, authz.ActionDelete); err != nil {
		return err
	}
	return u.educationRepo.Delete(ctx, id)
}
