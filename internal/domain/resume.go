package domain

import (
	"context"
	"time"
)

type Resume struct {
	ID        int64      `json:"id"`
	UserID    string     `json:"user_id"` // immutable after creation
	Title     string     `json:"title"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Location  *string    `json:"location"`
	Linkedin  *string    `json:"linkedin"`
	Github    *string    `json:"github"`
	Summary   *string    `json:"summary"`
	IsDefault bool       `json:"is_default"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

// Kind and OwnerID satisfy the authorization gate's resource contract.
func (r *Resume) Kind() string    { return "resume" }
func (r *Resume) OwnerID() string { return r.UserID }

// ResumeWithSections is a Resume with all five child collections eagerly
// loaded, each ordered ascending by their order column.
type ResumeWithSections struct {
	Resume
	Experiences    []Experience
	Projects       []Project
	Skills         []Skill
	Educations     []Education
	Certifications []Certification
}

// ResumeInput is the mutable scalar field set. Updates replace the whole set;
// user_id is never part of it.
type ResumeInput struct {
	Title     string  `json:"title" validate:"required,max=255"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     string  `json:"phone" validate:"required"`
	Location  *string `json:"location"`
	Linkedin  *string `json:"linkedin" validate:"omitempty,url"`
	Github    *string `json:"github" validate:"omitempty,url"`
	Summary   *string `json:"summary"`
	IsDefault bool    `json:"is_default"`
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	// GetByID returns only non-soft-deleted resumes.
	GetByID(ctx context.Context, id int64) (*Resume, error)
	// FetchByUserID lists the user's resumes newest-created first.
	FetchByUserID(ctx context.Context, userID string) ([]Resume, error)
	Update(ctx context.Context, resume *Resume) error
	// SoftDelete marks the resume deleted; child rows are untouched.
	SoftDelete(ctx context.Context, id int64) error
	// Purge removes the row permanently; the schema cascades to children.
	Purge(ctx context.Context, id int64) error
}

type ResumeUsecase interface {
	ListResumes(ctx context.Context, userID string) ([]Resume, error)
	CreateResume(ctx context.Context, userID string, in *ResumeInput) (*Resume, error)
	GetResume(ctx context.Context, userID string, id int64) (*ResumeWithSections, error)
	UpdateResume(ctx context.Context, userID string, id int64, in *ResumeInput) (*Resume, error)
	DeleteResume(ctx context.Context, userID string, id int64) error
}
