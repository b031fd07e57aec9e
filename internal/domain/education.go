package domain

import (
	"context"
	"time"
)

type Education struct {
	ID             int64     `json:"id"`
	ResumeID       int64     `json:"resume_id"`
	Degree         string    `json:"degree"`
	FieldOfStudy   string    `json:"field_of_study"`
	School         string    `json:"school"`
	GraduationYear int       `json:"graduation_year"`
	Order          int       `json:"order"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type EducationInput struct {
	ResumeID       int64  `json:"resume_id" validate:"required"`
	Degree         string `json:"degree" validate:"required"`
	FieldOfStudy   string `json:"field_of_study" validate:"required"`
	School         string `json:"school" validate:"required"`
	GraduationYear int    `json:"graduation_year" validate:"required,gte=1900,lte=2100"`
	Order          int    `json:"order" validate:"gte=0"`
}

type EducationUpdate struct {
	Degree         *string `json:"degree"`
	FieldOfStudy   *string `json:"field_of_study"`
	School         *string `json:"school"`
	GraduationYear *int    `json:"graduation_year" validate:"omitempty,gte=1900,lte=2100"`
	Order          *int    `json:"order" validate:"omitempty,gte=0"`
}

type EducationRepository interface {
	Create(ctx context.Context, edu *Education) error
	GetByID(ctx context.Context, id int64) (*Education, error)
	FetchByResumeID(ctx context.Context, resumeID int64) ([]Education, error)
	Update(ctx context.Context, edu *Education) error
	Delete(ctx context.Context, id int64) error
}

type EducationUsecase interface {
	CreateEducation(ctx context.Context, userID string, in *EducationInput) (*Education, error)
	UpdateEducation(ctx context.Context, userID string, id int64, in *EducationUpdate) (*Education, error)
	DeleteEducation(ctx context.Context, userID string, id int64) error
}
