package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"go-resume-builder/internal/authz"
	"go-resume-builder/internal/domain"
	"go-resume-builder/pkg/apperror"
	"go-resume-builder/pkg/validation"
)

// validateStruct turns validator failures into a single 422 that names every
// offending field.
func validateStruct(v *validator.Validate, s interface{}) error {
	if err := v.Struct(s); err != nil {
		return apperror.Unprocessable("The given data was invalid", validation.FieldErrors(err))
	}
	return nil
}

// authorizeResume loads the parent resume and applies the ownership gate.
// A missing resume is 404; an existing resume owned by someone else is 403.
func authorizeResume(ctx context.Context, repo domain.ResumeRepository, gate *authz.Gate, userID string, resumeID int64, action authz.Action) (*domain.Resume, error) {
	resume, err := repo.GetByID(ctx, resumeID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Resume not found")
	}
	if err != nil {
		return nil, err
	}
	if err := gate.Authorize(userID, action, resume); err != nil {
		return nil, err
	}
	return resume, nil
}
