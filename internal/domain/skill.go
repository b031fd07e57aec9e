package domain

import (
	"context"
	"time"
)

type Skill struct {
	ID        int64     `json:"id"`
	ResumeID  int64     `json:"resume_id"`
	Category  string    `json:"category"`
	Items     string    `json:"items"` // comma-separated, stored as opaque text
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SkillInput struct {
	ResumeID int64  `json:"resume_id" validate:"required"`
	Category string `json:"category" validate:"required"`
	Items    string `json:"items" validate:"required"`
	Order    int    `json:"order" validate:"gte=0"`
}

type SkillUpdate struct {
	Category *string `json:"category"`
	Items    *string `json:"items"`
	Order    *int    `json:"order" validate:"omitempty,gte=0"`
}

type SkillRepository interface {
	Create(ctx context.Context, skill *Skill) error
	GetByID(ctx context.Context, id int64) (*Skill, error)
	FetchByResumeID(ctx context.Context, resumeID int64) ([]Skill, error)
	Update(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id int64) error
}

type SkillUsecase interface {
	CreateSkill(ctx context.Context, userID string, in *SkillInput) (*Skill, error)
	UpdateSkill(ctx context.Context, userID string, id int64, in *SkillUpdate) (*Skill, error)
	DeleteSkill(ctx context.Context, userID string, id int64) error
}
