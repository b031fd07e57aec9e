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

type experienceUsecase struct {
	experienceRepo domain.ExperienceRepository
	resumeRepo     domain.ResumeRepository
	gate           *authz.Gate
	validate       *validator.Validate
}

func NewExperienceUsecase(experienceRepo domain.ExperienceRepository, resumeRepo domain.ResumeRepository, gate *authz.Gate, validate *validator.Validate) domain.ExperienceUsecase {
	return &experienceUsecase{
		experienceRepo: experienceRepo,
		resumeRepo:     resumeRepo,
		gate:           gate,
		validate:       validate,
	}
}

func (u *experienceUsecase) CreateExperience(ctx context.Context, userID string, in *domain.ExperienceInput) (*domain.Experience, error) {
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}
	if _, err := authorizeResume(ctx, u.resumeRepo, u.gate, userID, in.ResumeID, authz.ActionUpdate); err != nil {
		return nil, err
	}

	startDate, err := validation.NormalizeDate("start_date", in.StartDate)
	if err != nil {
		return nil, err
	}

	var endDate *time.Time
	if in.EndDate != nil && *in.EndDate != "" {
		dt, err := validation.NormalizeDate("end_date", *in.EndDate)
		if err != nil {
			return nil, err
		}
		endDate = &dt
	}

	now := time.Now()
	exp := &domain.Experience{
		ResumeID:         in.ResumeID,
		JobTitle:         in.JobTitle,
		Company:          in.Company,
		StartDate:        startDate,
		EndDate:          endDate,
		CurrentlyWorking: in.CurrentlyWorking,
		Description:      in.Description,
		Order:            in.Order,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := u.experienceRepo.Create(ctx, exp); err != nil {
		return nil, err
	}
	return exp, nil
}

func (u *experienceUsecase) UpdateExperience(ctx context.Context, userID string, id int64, in *domain.ExperienceUpdate) (*domain.Experience, error) {
	exp, err := u.experienceRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Experience not found")
	}
	if err != nil {
		return nil, err
	}
	if _, err := authorizeResume(ctx, u.resumeRepo, u.gate, userID, exp.ResumeID, authz.ActionUpdate); err != nil {
		return nil, err
	}
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}

	if in.JobTitle != nil {
		exp.JobTitle = *in.JobTitle
	}
	if in.Company != nil {
		exp.Company = *in.Company
	}
	if in.StartDate != nil {
		dt, err := validation.NormalizeDate("start_date", *in.StartDate)
		if err != nil {
			return nil, err
		}
		exp.StartDate = dt
	}
	// end_date: absent keeps the value, empty string clears it.
	if in.EndDate != nil {
		if *in.EndDate == "" {
			exp.EndDate = nil
		} else {
			dt, err := validation.NormalizeDate("end_date", *in.EndDate)
			if err != nil {
				return nil, err
			}
			exp.EndDate = &dt
		}
	}
	if in.CurrentlyWorking != nil {
		exp.CurrentlyWorking = *in.CurrentlyWorking
	}
	if in.Description != nil {
		exp.Description = *in.Description
	}
	if in.Order != nil {
		exp.Order = *in.Order
	}
	exp.UpdatedAt = time.Now()

	if err := u.experienceRepo.Update(ctx, exp); err != nil {
		return nil, err
	}
	return exp, nil
}

func (u *experienceUsecase) DeleteExperience(ctx context.Context, userID string, id int64) error {
	exp, err := u.experienceRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Experience not found")
	}
	if err != nil {
		return err
	}
	if _, err := authorizeResume(ctx, u.resumeRepo, u.gate, userID, exp.ResumeID, authz.ActionDelete); err != nil {
		return err
	}
	return u.experienceRepo.Delete(ctx, id)
}
