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

type skillUsecase struct {
	skillRepo  domain.SkillRepository
	resumeRepo domain.ResumeRepository
	gate       *authz.Gate
	validate   *validator.Validate
}

func NewSkillUsecase(skillRepo domain.SkillRepository, resumeRepo domain.ResumeRepository, gate *authz.Gate, validate *validator.Validate) domain.SkillUsecase {
	return &skillUsecase{
		skillRepo:  skillRepo,
		resumeRepo: resumeRepo,
		gate:       gate,
		validate:   validate,
	}
}

func (u *skillUsecase) CreateSkill(ctx context.Context, userID string, in *domain.SkillInput) (*domain.Skill, error) {
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}
	if _, err := authorizeResume(ctx, u.resumeRepo, u.gate, userID, in.ResumeID, authz.ActionUpdate); err != nil {
		return nil, err
	}

	now := time.Now()
	skill := &domain.Skill{
		ResumeID:  in.ResumeID,
		Category:  in.Category,
		Items:     in.Items,
		Order:     in.Order,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (u *skillUsecase) UpdateSkill(ctx context.Context, userID string, id int64, in *domain.SkillUpdate) (*domain.Skill, error) {
	skill, err := u.skillRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Skill not found")
	}
	if err != nil {
		return nil, err
	}
	if _, err := authorizeResume(ctx, u.resumeRepo, u.gate, userID, skill.ResumeID, authz.ActionUpdate); err != nil {
		return nil, err
	}
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}

	if in.Category != nil {
		skill.Category = *in.Category
	}
	if in.Items != nil {
		skill.Items = *in.Items
	}
	if in.Order != nil {
		skill.Order = *in.Order
	}
	skill.UpdatedAt = time.Now()

	if err := u.skillRepo.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (u *skillUsecase) DeleteSkill(ctx context.Context, userID string, id int64) error {
	skill, err := u.skillRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Skill not found")
	}
	if err != nil {
		return err
	}
	if _, err := authorizeResume(ctx, u.resumeRepo, u.gate, userID, skill.ResumeID, authz.ActionDelete); err != nil {
		return err
	}
	return u.skillRepo.Delete(ctx, id)
}
