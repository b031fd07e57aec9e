package domain

import (
	"context"
	"time"
)

type Project struct {
	ID           int64     `json:"id"`
	ResumeID     int64     `json:"resume_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Technologies string    `json:"technologies"` // comma-separated, stored as opaque text
	Link         *string   `json:"link"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ProjectInput struct {
	ResumeID     int64   `json:"resume_id" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	Technologies string  `json:"technologies" validate:"required"`
	Link         *string `json:"link" validate:"omitempty,url"`
	Order        int     `json:"order" validate:"gte=0"`
}

type ProjectUpdate struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Technologies *string `json:"technologies"`
	Link         *string `json:"link" validate:"omitempty,url"`
	Order        *int    `json:"order" validate:"omitempty,gte=0"`
}

type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, id int64) (*Project, error)
	FetchByResumeID(ctx context.Context, resumeID int64) ([]Project, error)
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id int64) error
}

type ProjectUsecase interface {
	CreateProject(ctx context.Context, userID string, in *ProjectInput) (*Project, error)
	UpdateProject(ctx context.Context, userID string, id int64, in *ProjectUpdate) (*Project, error)
	DeleteProject(ctx context.Context, userID string, id int64) error
}
