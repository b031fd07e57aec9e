package usecase

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"go-resume-builder/internal/authz"
	"go-resume-builder/internal/domain"
)

type resumeUsecase struct {
	resumeRepo        domain.ResumeRepository
	experienceRepo    domain.ExperienceRepository
	projectRepo       domain.ProjectRepository
	skillRepo         domain.SkillRepository
	educationRepo     domain.EducationRepository
	certificationRepo domain.CertificationRepository
	gate              *authz.Gate
	validate          *validator.Validate
}

func NewResumeUsecase(
	resumeRepo domain.ResumeRepository,
	experienceRepo domain.ExperienceRepository,
	projectRepo domain.ProjectRepository,
	skillRepo domain.SkillRepository,
	educationRepo domain.EducationRepository,
	certificationRepo domain.CertificationRepository,
	gate *authz.Gate,
	validate *validator.Validate,
) domain.ResumeUsecase {
	return &resumeUsecase{
		resumeRepo:        resumeRepo,
		experienceRepo:    experienceRepo,
		projectRepo:       projectRepo,
		skillRepo:         skillRepo,
		educationRepo:     educationRepo,
		certificationRepo: certificationRepo,
		gate:              gate,
		validate:          validate,
	}
}

func (u *resumeUsecase) ListResumes(ctx context.Context, userID string) ([]domain.Resume, error) {
	return u.resumeRepo.FetchByUserID(ctx, userID)
}

func (u *resumeUsecase) CreateResume(ctx context.Context, userID string, in *domain.ResumeInput) (*domain.Resume, error) {
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}

	now := time.Now()
	resume := &domain.Resume{
		UserID:    userID,
		Title:     in.Title,
		Email:     in.Email,
		Phone:     in.Phone,
		Location:  in.Location,
		Linkedin:  in.Linkedin,
		Github:    in.Github,
		Summary:   in.Summary,
		IsDefault: in.IsDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.resumeRepo.Create(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

// GetResume eager-loads all five child collections. Each read is an explicit
// repository call; nothing is lazily fetched.
func (u *resumeUsecase) GetResume(ctx context.Context, userID string, id int64) (*domain.ResumeWithSections, error) {
	resume, err := authorizeResume(ctx, u.resumeRepo, u.gate, userID, id, authz.ActionView)
	if err != nil {
		return nil, err
	}

	out := &domain.ResumeWithSections{Resume: *resume}

	if out.Experiences, err = u.experienceRepo.FetchByResumeID(ctx, id); err != nil {
		return nil, err
	}
	if out.Projects, err = u.projectRepo.FetchByResumeID(ctx, id); err != nil {
		return nil, err
	}
	if out.Skills, err = u.skillRepo.FetchByResumeID(ctx, id); err != nil {
		return nil, err
	}
	if out.Educations, err = u.educationRepo.FetchByResumeID(ctx, id); err != nil {
		return nil, err
	}
	if out.Certifications, err = u.certificationRepo.FetchByResumeID(ctx, id); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateResume replaces the whole mutable scalar field set. UserID and
// timestamps are managed here, never by the caller.
func (u *resumeUsecase) UpdateResume(ctx context.Context, userID string, id int64, in *domain.ResumeInput) (*domain.Resume, error) {
	resume, err := authorizeResume(ctx, u.resumeRepo, u.gate, userID, id, authz.ActionUpdate)
	if err != nil {
		return nil, err
	}
	if err := validateStruct(u.validate, in); err != nil {
		return nil, err
	}

	resume.Title = in.Title
	resume.Email = in.Email
	resume.Phone = in.Phone
	resume.Location = in.Location
	resume.Linkedin = in.Linkedin
	resume.Github = in.Github
	resume.Summary = in.Summary
	resume.IsDefault = in.IsDefault
	resume.UpdatedAt = time.Now()

	if err := u.resumeRepo.Update(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

// DeleteResume soft-deletes: the row is marked, children stay in place. A
// permanent purge cascades through the schema's foreign keys instead.
func (u *resumeUsecase) DeleteResume(ctx context.Context, userID string, id int64) error {
	if _, err := authorizeResume(ctx, u.resumeRepo, u.gate, userID, id, authz.ActionDelete); err != nil {
		return err
	}
	return u.resumeRepo.SoftDelete(ctx, id)
}
