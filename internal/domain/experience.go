package domain

import (
	"context"
	"time"
)

type Experience struct {
	ID               int64      `json:"id"`
	ResumeID         int64      `json:"resume_id"`
	JobTitle         string     `json:"job_title"`
	Company          string     `json:"company"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	CurrentlyWorking bool       `json:"currently_working"`
	Description      string     `json:"description"`
	Order            int        `json:"order"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// ExperienceInput carries raw date strings; the usecase normalizes them.
type ExperienceInput struct {
	ResumeID         int64   `json:"resume_id" validate:"required"`
	JobTitle         string  `json:"job_title" validate:"required"`
	Company          string  `json:"company" validate:"required"`
	StartDate        string  `json:"start_date" validate:"required"`
	EndDate          *string `json:"end_date"`
	CurrentlyWorking bool    `json:"currently_working"`
	Description      string  `json:"description" validate:"required"`
	Order            int     `json:"order" validate:"gte=0"`
}

// ExperienceUpdate allows partial updates: nil fields keep their value.
type ExperienceUpdate struct {
	JobTitle         *string `json:"job_title"`
	Company          *string `json:"company"`
	StartDate        *string `json:"start_date"`
	EndDate          *string `json:"end_date"`
	CurrentlyWorking *bool   `json:"currently_working"`
	Description      *string `json:"description"`
	Order            *int    `json:"order" validate:"omitempty,gte=0"`
}

type ExperienceRepository interface {
	Create(ctx context.Context, exp *Experience) error
	GetByID(ctx context.Context, id int64) (*Experience, error)
	// FetchByResumeID returns entries ordered by "order" ASC, id ASC.
	FetchByResumeID(ctx context.Context, resumeID int64) ([]Experience, error)
	Update(ctx context.Context, exp *Experience) error
	Delete(ctx context.Context, id int64) error
}

type ExperienceUsecase interface {
	CreateExperience(ctx context.Context, userID string, in *ExperienceInput) (*Experience, error)
	UpdateExperience(ctx context.Context, userID string, id int64, in *ExperienceUpdate) (*Experience, error)
	DeleteExperience(ctx context.Context, userID string, id int64) error
}
