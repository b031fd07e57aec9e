package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"go-resume-builder/internal/authz"
	"go-resume-builder/internal/domain"
	"go-resume-builder/internal/usecase"
	"go-resume-builder/pkg/apperror"
	"go-resume-builder/pkg/token"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Create(ctx context.Context, session *domain.Session) error {
	return m.Called(ctx, session).Error(0)
}
func (m *MockSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
func (m *MockSessionRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockSessionRepo) DeleteExpired(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	return m.Called(ctx, resume).Error(0)
}
func (m *MockResumeRepo) GetByID(ctx context.Context, id int64) (*domain.Resume, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}
func (m *MockResumeRepo) FetchByUserID(ctx context.Context, userID string) ([]domain.Resume, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resume), args.Error(1)
}
func (m *MockResumeRepo) Update(ctx context.Context, resume *domain.Resume) error {
	return m.Called(ctx, resume).Error(0)
}
func (m *MockResumeRepo) SoftDelete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockResumeRepo) Purge(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockExperienceRepo struct {
	mock.Mock
}

func (m *MockExperienceRepo) Create(ctx context.Context, exp *domain.Experience) error {
	return m.Called(ctx, exp).Error(0)
}
func (m *MockExperienceRepo) GetByID(ctx context.Context, id int64) (*domain.Experience, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Experience), args.Error(1)
}
func (m *MockExperienceRepo) FetchByResumeID(ctx context.Context, resumeID int64) ([]domain.Experience, error) {
	args := m.Called(ctx, resumeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Experience), args.Error(1)
}
func (m *MockExperienceRepo) Update(ctx context.Context, exp *domain.Experience) error {
	return m.Called(ctx, exp).Error(0)
}
func (m *MockExperienceRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	return m.Called(ctx, project).Error(0)
}
func (m *MockProjectRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectRepo) FetchByResumeID(ctx context.Context, resumeID int64) ([]domain.Project, error) {
	args := m.Called(ctx, resumeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}
func (m *MockProjectRepo) Update(ctx context.Context, project *domain.Project) error {
	return m.Called(ctx, project).Error(0)
}
func (m *MockProjectRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}
func (m *MockSkillRepo) GetByID(ctx context.Context, id int64) (*domain.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) FetchByResumeID(ctx context.Context, resumeID int64) ([]domain.Skill, error) {
	args := m.Called(ctx, resumeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) Update(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}
func (m *MockSkillRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockEducationRepo struct {
	mock.Mock
}

func (m *MockEducationRepo) Create(ctx context.Context, edu *domain.Education) error {
	return m.Called(ctx, edu).Error(0)
}
func (m *MockEducationRepo) GetByID(ctx context.Context, id int64) (*domain.Education, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Education), args.Error(1)
}
func (m *MockEducationRepo) FetchByResumeID(ctx context.Context, resumeID int64) ([]domain.Education, error) {
	args := m.Called(ctx, resumeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Education), args.Error(1)
}
func (m *MockEducationRepo) Update(ctx context.Context, edu *domain.Education) error {
	return m.Called(ctx, edu).Error(0)
}
func (m *MockEducationRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCertificationRepo struct {
	mock.Mock
}

func (m *MockCertificationRepo) Create(ctx context.Context, cert *domain.Certification) error {
	return m.Called(ctx, cert).Error(0)
}
func (m *MockCertificationRepo) GetByID(ctx context.Context, id int64) (*domain.Certification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certification), args.Error(1)
}
func (m *MockCertificationRepo) FetchByResumeID(ctx context.Context, resumeID int64) ([]domain.Certification, error) {
	args := m.Called(ctx, resumeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certification), args.Error(1)
}
func (m *MockCertificationRepo) Update(ctx context.Context, cert *domain.Certification) error {
	return m.Called(ctx, cert).Error(0)
}
func (m *MockCertificationRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// Helpers

func appCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	if !assert.ErrorAs(t, err, &appErr) {
		return 0
	}
	return appErr.Code
}

func newResumeUC(resumeRepo *MockResumeRepo, expRepo *MockExperienceRepo, projRepo *MockProjectRepo, skillRepo *MockSkillRepo, eduRepo *MockEducationRepo, certRepo *MockCertificationRepo) domain.ResumeUsecase {
	return usecase.NewResumeUsecase(resumeRepo, expRepo, projRepo, skillRepo, eduRepo, certRepo, authz.NewResumeGate(), validator.New())
}

// Auth

func TestRegister(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)

	t.Run("rejects duplicate email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		sessionRepo := new(MockSessionRepo)
		userRepo.On("GetByEmail", mock.Anything, "taken@example.com").
			Return(&domain.User{ID: "existing", Email: "taken@example.com"}, nil)

		uc := usecase.NewAuthUsecase(userRepo, sessionRepo, tokens, validator.New())
		_, _, err := uc.Register(context.Background(), &domain.RegisterInput{
			Name:     "Jane",
			Email:    "taken@example.com",
			Password: "password123",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, appCode(t, err))
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, []string{"The email has already been taken"}, appErr.Fields["email"])
	})

	t.Run("rejects short password before touching the repo", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo), new(MockSessionRepo), tokens, validator.New())
		_, _, err := uc.Register(context.Background(), &domain.RegisterInput{
			Name:     "Jane",
			Email:    "jane@example.com",
			Password: "short",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, appCode(t, err))
	})

	t.Run("hashes the password and opens a session", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		sessionRepo := new(MockSessionRepo)
		userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
		sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Session")).Return(nil)

		uc := usecase.NewAuthUsecase(userRepo, sessionRepo, tokens, validator.New())
		user, tokenString, err := uc.Register(context.Background(), &domain.RegisterInput{
			Name:     "Jane",
			Email:    "jane@example.com",
			Password: "password123",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, tokenString)
		assert.NotEmpty(t, user.ID)
		assert.NotEqual(t, "password123", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
		sessionRepo.AssertCalled(t, "Create", mock.Anything, mock.AnythingOfType("*domain.Session"))

		claims, err := tokens.Parse(tokenString)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
	})
}

func TestLogin(t *testing.T) {
	tokens := token.NewManager("test-secret", time.Hour)
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	stored := &domain.User{ID: "user1", Email: "jane@example.com", PasswordHash: string(hash)}

	t.Run("unknown email and wrong password share one message", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)
		userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(stored, nil)

		uc := usecase.NewAuthUsecase(userRepo, new(MockSessionRepo), tokens, validator.New())

		_, _, unknownErr := uc.Login(context.Background(), &domain.LoginInput{Email: "ghost@example.com", Password: "password123"})
		_, _, wrongErr := uc.Login(context.Background(), &domain.LoginInput{Email: "jane@example.com", Password: "wrong-password"})

		assert.Equal(t, http.StatusUnauthorized, appCode(t, unknownErr))
		assert.Equal(t, http.StatusUnauthorized, appCode(t, wrongErr))
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})

	t.Run("valid credentials open a session", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		sessionRepo := new(MockSessionRepo)
		userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(stored, nil)
		sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Session")).Return(nil)

		uc := usecase.NewAuthUsecase(userRepo, sessionRepo, tokens, validator.New())
		user, tokenString, err := uc.Login(context.Background(), &domain.LoginInput{Email: "jane@example.com", Password: "password123"})

		assert.NoError(t, err)
		assert.Equal(t, "user1", user.ID)
		assert.NotEmpty(t, tokenString)
		sessionRepo.AssertCalled(t, "Create", mock.Anything, mock.AnythingOfType("*domain.Session"))
	})
}

func TestLogoutIdempotent(t *testing.T) {
	sessionRepo := new(MockSessionRepo)
	sessionRepo.On("Delete", mock.Anything, "gone-session").Return(domain.ErrNotFound)

	uc := usecase.NewAuthUsecase(new(MockUserRepo), sessionRepo, token.NewManager("test-secret", time.Hour), validator.New())
	assert.NoError(t, uc.Logout(context.Background(), "gone-session"))
}

// Resumes

func TestResumeOwnership(t *testing.T) {
	owned := &domain.Resume{ID: 7, UserID: "owner", Title: "Backend Engineer", Email: "o@example.com", Phone: "123"}

	t.Run("missing resume is 404", func(t *testing.T) {
		resumeRepo := new(MockResumeRepo)
		resumeRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		uc := newResumeUC(resumeRepo, new(MockExperienceRepo), new(MockProjectRepo), new(MockSkillRepo), new(MockEducationRepo), new(MockCertificationRepo))
		_, err := uc.GetResume(context.Background(), "owner", 99)
		assert.Equal(t, http.StatusNotFound, appCode(t, err))
	})

	t.Run("someone else's resume is 403, not 404", func(t *testing.T) {
		resumeRepo := new(MockResumeRepo)
		resumeRepo.On("GetByID", mock.Anything, int64(7)).Return(owned, nil)

		uc := newResumeUC(resumeRepo, new(MockExperienceRepo), new(MockProjectRepo), new(MockSkillRepo), new(MockEducationRepo), new(MockCertificationRepo))

		_, err := uc.GetResume(context.Background(), "intruder", 7)
		assert.Equal(t, http.StatusForbidden, appCode(t, err))

		_, err = uc.UpdateResume(context.Background(), "intruder", 7, &domain.ResumeInput{Title: "x", Email: "x@example.com", Phone: "1"})
		assert.Equal(t, http.StatusForbidden, appCode(t, err))

		err = uc.DeleteResume(context.Background(), "intruder", 7)
		assert.Equal(t, http.StatusForbidden, appCode(t, err))
	})

	t.Run("delete soft-deletes and never purges", func(t *testing.T) {
		resumeRepo := new(MockResumeRepo)
		resumeRepo.On("GetByID", mock.Anything, int64(7)).Return(owned, nil)
		resumeRepo.On("SoftDelete", mock.Anything, int64(7)).Return(nil)

		uc := newResumeUC(resumeRepo, new(MockExperienceRepo), new(MockProjectRepo), new(MockSkillRepo), new(MockEducationRepo), new(MockCertificationRepo))
		assert.NoError(t, uc.DeleteResume(context.Background(), "owner", 7))

		resumeRepo.AssertCalled(t, "SoftDelete", mock.Anything, int64(7))
		resumeRepo.AssertNotCalled(t, "Purge", mock.Anything, mock.Anything)
	})
}

func TestCreateResumeForcesOwner(t *testing.T) {
	resumeRepo := new(MockResumeRepo)
	resumeRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Resume) bool {
		return r.UserID == "caller"
	})).Return(nil)

	uc := newResumeUC(resumeRepo, new(MockExperienceRepo), new(MockProjectRepo), new(MockSkillRepo), new(MockEducationRepo), new(MockCertificationRepo))
	resume, err := uc.CreateResume(context.Background(), "caller", &domain.ResumeInput{
		Title: "Backend Engineer",
		Email: "c@example.com",
		Phone: "555-0100",
	})

	assert.NoError(t, err)
	assert.Equal(t, "caller", resume.UserID)
}

func TestUpdateResumeKeepsOwner(t *testing.T) {
	owned := &domain.Resume{ID: 7, UserID: "owner", Title: "Old", Email: "o@example.com", Phone: "123"}

	resumeRepo := new(MockResumeRepo)
	resumeRepo.On("GetByID", mock.Anything, int64(7)).Return(owned, nil)
	resumeRepo.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.Resume) bool {
		return r.UserID == "owner" && r.Title == "New Title"
	})).Return(nil)

	uc := newResumeUC(resumeRepo, new(MockExperienceRepo), new(MockProjectRepo), new(MockSkillRepo), new(MockEducationRepo), new(MockCertificationRepo))
	updated, err := uc.UpdateResume(context.Background(), "owner", 7, &domain.ResumeInput{
		Title: "New Title",
		Email: "o@example.com",
		Phone: "123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "owner", updated.UserID)
	assert.Equal(t, "New Title", updated.Title)
}

func TestGetResumeEagerLoadsSections(t *testing.T) {
	owned := &domain.Resume{ID: 7, UserID: "owner"}

	resumeRepo := new(MockResumeRepo)
	expRepo := new(MockExperienceRepo)
	projRepo := new(MockProjectRepo)
	skillRepo := new(MockSkillRepo)
	eduRepo := new(MockEducationRepo)
	certRepo := new(MockCertificationRepo)

	resumeRepo.On("GetByID", mock.Anything, int64(7)).Return(owned, nil)
	expRepo.On("FetchByResumeID", mock.Anything, int64(7)).Return([]domain.Experience{{ID: 1, ResumeID: 7}}, nil)
	projRepo.On("FetchByResumeID", mock.Anything, int64(7)).Return([]domain.Project{}, nil)
	skillRepo.On("FetchByResumeID", mock.Anything, int64(7)).Return([]domain.Skill{{ID: 3, ResumeID: 7}}, nil)
	eduRepo.On("FetchByResumeID", mock.Anything, int64(7)).Return([]domain.Education{}, nil)
	certRepo.On("FetchByResumeID", mock.Anything, int64(7)).Return([]domain.Certification{}, nil)

	uc := newResumeUC(resumeRepo, expRepo, projRepo, skillRepo, eduRepo, certRepo)
	out, err := uc.GetResume(context.Background(), "owner", 7)

	assert.NoError(t, err)
	assert.Len(t, out.Experiences, 1)
	assert.Len(t, out.Skills, 1)
	// Loaded-but-empty collections stay non-nil so responses render [] not null.
	assert.NotNil(t, out.Projects)
	assert.NotNil(t, out.Educations)
	assert.NotNil(t, out.Certifications)
}

// Experiences

func TestCreateExperience(t *testing.T) {
	owned := &domain.Resume{ID: 7, UserID: "owner"}

	t.Run("normalizes month-year dates to the first of the month", func(t *testing.T) {
		resumeRepo := new(MockResumeRepo)
		expRepo := new(MockExperienceRepo)
		resumeRepo.On("GetByID", mock.Anything, int64(7)).Return(owned, nil)
		expRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Experience")).Return(nil)

		uc := usecase.NewExperienceUsecase(expRepo, resumeRepo, authz.NewResumeGate(), validator.New())
		endDate := "06/2021"
		exp, err := uc.CreateExperience(context.Background(), "owner", &domain.ExperienceInput{
			ResumeID:    7,
			JobTitle:    "Engineer",
			Company:     "Acme",
			StartDate:   "03/2019",
			EndDate:     &endDate,
			Description: "Built things",
		})

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC), exp.StartDate)
		assert.NotNil(t, exp.EndDate)
		assert.Equal(t, time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC), *exp.EndDate)
	})

	t.Run("rejects an unparseable date with the raw value in the message", func(t *testing.T) {
		resumeRepo := new(MockResumeRepo)
		resumeRepo.On("GetByID", mock.Anything, int64(7)).Return(owned, nil)

		uc := usecase.NewExperienceUsecase(new(MockExperienceRepo), resumeRepo, authz.NewResumeGate(), validator.New())
		_, err := uc.CreateExperience(context.Background(), "owner", &domain.ExperienceInput{
			ResumeID:    7,
			JobTitle:    "Engineer",
			Company:     "Acme",
			StartDate:   "soonish",
			Description: "Built things",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, appCode(t, err))
		assert.Contains(t, err.Error(), "soonish")
	})

	t.Run("creating under someone else's resume is forbidden", func(t *testing.T) {
		resumeRepo := new(MockResumeRepo)
		resumeRepo.On("GetByID", mock.Anything, int64(7)).Return(owned, nil)

		uc := usecase.NewExperienceUsecase(new(MockExperienceRepo), resumeRepo, authz.NewResumeGate(), validator.New())
		_, err := uc.CreateExperience(context.Background(), "intruder", &domain.ExperienceInput{
			ResumeID:    7,
			JobTitle:    "Engineer",
			Company:     "Acme",
			StartDate:   "2020-01-01",
			Description: "Built things",
		})

		assert.Equal(t, http.StatusForbidden, appCode(t, err))
	})

	t.Run("missing required fields fail validation", func(t *testing.T) {
		uc := usecase.NewExperienceUsecase(new(MockExperienceRepo), new(MockResumeRepo), authz.NewResumeGate(), validator.New())
		_, err := uc.CreateExperience(context.Background(), "owner", &domain.ExperienceInput{ResumeID: 7})

		assert.Equal(t, http.StatusUnprocessableEntity, appCode(t, err))
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Fields, "job_title")
		assert.Contains(t, appErr.Fields, "start_date")
	})
}

func TestUpdateExperience(t *testing.T) {
	owned := &domain.Resume{ID: 7, UserID: "owner"}
	existingEnd := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("missing experience is 404", func(t *testing.T) {
		expRepo := new(MockExperienceRepo)
		expRepo.On("GetByID", mock.Anything, int64(5)).Return(nil, domain.ErrNotFound)

		uc := usecase.NewExperienceUsecase(expRepo, new(MockResumeRepo), authz.NewResumeGate(), validator.New())
		_, err := uc.UpdateExperience(context.Background(), "owner", 5, &domain.ExperienceUpdate{})
		assert.Equal(t, http.StatusNotFound, appCode(t, err))
	})

	t.Run("empty end_date clears, absent keeps", func(t *testing.T) {
		resumeRepo := new(MockResumeRepo)
		resumeRepo.On("GetByID", mock.Anything, int64(7)).Return(owned, nil)

		t.Run("clears", func(t *testing.T) {
			expRepo := new(MockExperienceRepo)
			end := existingEnd
			expRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Experience{ID: 5, ResumeID: 7, EndDate: &end}, nil)
			expRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Experience")).Return(nil)

			uc := usecase.NewExperienceUsecase(expRepo, resumeRepo, authz.NewResumeGate(), validator.New())
			empty := ""
			updated, err := uc.UpdateExperience(context.Background(), "owner", 5, &domain.ExperienceUpdate{EndDate: &empty})
			assert.NoError(t, err)
			assert.Nil(t, updated.EndDate)
		})

		t.Run("keeps", func(t *testing.T) {
			expRepo := new(MockExperienceRepo)
			end := existingEnd
			expRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Experience{ID: 5, ResumeID: 7, EndDate: &end}, nil)
			expRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Experience")).Return(nil)

			uc := usecase.NewExperienceUsecase(expRepo, resumeRepo, authz.NewResumeGate(), validator.New())
			updated, err := uc.UpdateExperience(context.Background(), "owner", 5, &domain.ExperienceUpdate{})
			assert.NoError(t, err)
			assert.NotNil(t, updated.EndDate)
			assert.True(t, existingEnd.Equal(*updated.EndDate))
		})
	})
}

// Child sections route authorization through the parent resume.

func TestSkillOwnership(t *testing.T) {
	owned := &domain.Resume{ID: 7, UserID: "owner"}

	t.Run("deleting under someone else's resume is forbidden", func(t *testing.T) {
		resumeRepo := new(MockResumeRepo)
		skillRepo := new(MockSkillRepo)
		resumeRepo.On("GetByID", mock.Anything, int64(7)).Return(owned, nil)
		skillRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Skill{ID: 3, ResumeID: 7}, nil)

		uc := usecase.NewSkillUsecase(skillRepo, resumeRepo, authz.NewResumeGate(), validator.New())
		err := uc.DeleteSkill(context.Background(), "intruder", 3)

		assert.Equal(t, http.StatusForbidden, appCode(t, err))
		skillRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("owner deletes", func(t *testing.T) {
		resumeRepo := new(MockResumeRepo)
		skillRepo := new(MockSkillRepo)
		resumeRepo.On("GetByID", mock.Anything, int64(7)).Return(owned, nil)
		skillRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Skill{ID: 3, ResumeID: 7}, nil)
		skillRepo.On("Delete", mock.Anything, int64(3)).Return(nil)

		uc := usecase.NewSkillUsecase(skillRepo, resumeRepo, authz.NewResumeGate(), validator.New())
		assert.NoError(t, uc.DeleteSkill(context.Background(), "owner", 3))
	})
}
