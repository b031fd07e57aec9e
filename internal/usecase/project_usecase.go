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

type projectUsecase struct {
	projectRepo domain.ProjectRepository
	resumeRepo  domain.ResumeRepository
	gate        *authz.Gate
	validate    *validator.Validate
}

func NewProjectUsecase(projectRepo domain.ProjectRepository, resumeRepo domain.ResumeRepository, gate *authz.Gate, validate *validator.Validate) domain.ProjectUsecase {
	return &projectUsecase{
		projectRepo: projectRepo,
		resumeRepo:  resumeRepo,
		gate:        gate,
		validate:    validate,
	}
}

func (u *projectUsecase) CreateProject(ctx context.Context, userID string, in *domain.ProjectInput) (*domain.Project, error) {
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}
	if _, err := authorizeResume(ctx, u.resumeRepo, u.gate, userID, in.ResumeID, authz.ActionUpdate); err != nil {
		return nil, err
	}

	now := time.Now()
	project := &domain.Project{
		ResumeID:     in.ResumeID,
		Name:         in.Name,
		Description:  in.Description,
		Technologies: in.Technologies,
		Link:         in.Link,
		Order:        in.Order,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (u *projectUsecase) UpdateProject(ctx context.Context, userID string, id int64, in *domain.ProjectUpdate) (*domain.Project, error) {
	project, err := u.projectRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Project not found")
	}
	if err != nil {
		return nil, err
	}
	if _, err := authorizeResume(ctx, u.resumeRepo, u.gate, userID, project.ResumeID, authz.ActionUpdate); err != nil {
		return nil, err
	}
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}

	if in.Name != nil {
		project.Name = *in.Name
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.Technologies != nil {
		project.Technologies = *in.Technologies
	}
	if in.Link != nil {
		if *in.Link == "" {
			project.Link = nil
		} else {
			project.Link = in.Link
		}
	}
	if in.Order != nil {
		project.Order = *in.Order
	}
	project.UpdatedAt = time.Now()

	if err := u.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (u *projectUsecase) DeleteProject(ctx context.Context, userID string, id int64) error {
	project, err := u.projectRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Project not found")
	}
	if err != nil {
		return err
	}
	if _, err := authorizeResume(ctx, u.resumeRepo, u.gate, userID, project.ResumeID, authz.ActionDelete); err != nil {
		return err
	}
	return u.projectRepo.Delete(ctx, id)
}
