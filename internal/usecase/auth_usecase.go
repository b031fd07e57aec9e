package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"go-resume-builder/internal/domain"
	"go-resume-builder/pkg/apperror"
	"go-resume-builder/pkg/token"
)

type authUsecase struct {
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	tokens      *token.Manager
	validate    *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, sessionRepo domain.SessionRepository, tokens *token.Manager, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		validate:    validate,
	}
}

func (u *authUsecase) Register(ctx context.Context, in *domain.RegisterInput) (*domain.User, string, error) {
	if err := validateStruct(u.validate, in); err != nil {
		return nil, "", err
	}

	if _, err := u.userRepo.GetByEmail(ctx, in.Email); err == nil {
		return nil, "", apperror.Unprocessable("The given data was invalid", map[string][]string{
			"email": {"The email has already been taken"},
		})
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	tokenString, err := u.openSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, tokenString, nil
}

func (u *authUsecase) Login(ctx context.Context, in *domain.LoginInput) (*domain.User, string, error) {
	if err := validateStruct(u.validate, in); err != nil {
		return nil, "", err
	}

	user, err := u.userRepo.GetByEmail(ctx, in.Email)
	if errors.Is(err, domain.ErrNotFound) {
		// Same message as a wrong password so email existence is not leaked.
		return nil, "", apperror.Unauthorized("Invalid credentials")
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, "", apperror.Unauthorized("Invalid credentials")
	}

	tokenString, err := u.openSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, tokenString, nil
}

// Logout revokes the presented token's session. Revoking an already-revoked
// session is not an error.
func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	err := u.sessionRepo.Delete(ctx, sessionID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("User not found")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) openSession(ctx context.Context, user *domain.User) (string, error) {
	tokenString, claims, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", err
	}
	session := &domain.Session{
		ID:        claims.SessionID,
		UserID:    user.ID,
		ExpiresAt: claims.ExpiresAt,
		CreatedAt: time.Now(),
	}
	if err := u.sessionRepo.Create(ctx, session); err != nil {
		return "", err
	}
	return tokenString, nil
}
