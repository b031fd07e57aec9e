package domain

import (
	"context"
	"time"
)

type Certification struct {
	ID        int64     `json:"id"`
	ResumeID  int64     `json:"resume_id"`
	Name      string    `json:"name"`
	Issuer    string    `json:"issuer"`
	Date      time.Time `json:"date"`
	Link      *string   `json:"link"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CertificationInput struct {
	ResumeID int64   `json:"resume_id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Issuer   string  `json:"issuer" validate:"required"`
	Date     string  `json:"date" validate:"required"`
	Link     *string `json:"link" validate:"omitempty,url"`
	Order    int     `json:"order" validate:"gte=0"`
}

type CertificationUpdate struct {
	Name   *string `json:"name"`
	Issuer *string `json:"issuer"`
	Date   *string `json:"date"`
	Link   *string `json:"link" validate:"omitempty,url"`
	Order  *int    `json:"order" validate:"omitempty,gte=0"`
}

type CertificationRepository interface {
	Create(ctx context.Context, cert *Certification) error
	GetByID(ctx context.Context, id int64) (*Certification, error)
	FetchByResumeID(ctx context.Context, resumeID int64) ([]Certification, error)
	Update(ctx context.Context, cert *Certification) error
	Delete(ctx context.Context, id int64) error
}

type CertificationUsecase interface {
	CreateCertification(ctx context.Context, userID string, in *CertificationInput) (*Certification, error)
	UpdateCertification(ctx context.Context, userID string, id int64, in *CertificationUpdate) (*Certification, error)
	DeleteCertification(ctx context.Context, userID string, id int64) error
}
