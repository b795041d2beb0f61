package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"siteseekers-backend/internal/domain"
	"siteseekers-backend/internal/usecase"
	"siteseekers-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepo) GetByContractorID(ctx context.Context, contractorID int64) (*domain.Profile, error) {
	args := m.Called(ctx, contractorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepo) ContractorExists(ctx context.Context, contractorID int64) (bool, error) {
	args := m.Called(ctx, contractorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepo) GetSkills(ctx context.Context, profileID int64) (*domain.SkillSet, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SkillSet), args.Error(1)
}

func (m *MockProfileRepo) ReplaceSkills(ctx context.Context, profileID int64, skills []domain.Skill) error {
	return m.Called(ctx, profileID, skills).Error(0)
}

func (m *MockProfileRepo) GetExperiences(ctx context.Context, profileID int64) ([]domain.Experience, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Experience), args.Error(1)
}

func (m *MockProfileRepo) ReplaceExperiences(ctx context.Context, profileID int64, experiences []domain.Experience) error {
	return m.Called(ctx, profileID, experiences).Error(0)
}

func (m *MockProfileRepo) GetClient(ctx context.Context, clientID int64) (*domain.ClientInfo, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientInfo), args.Error(1)
}

func (m *MockProfileRepo) UpdateClient(ctx context.Context, info *domain.ClientInfo) error {
	return m.Called(ctx, info).Error(0)
}

func newProfileUC(repo *MockProfileRepo) domain.ProfileUsecase {
	return usecase.NewProfileUsecase(repo, validator.New())
}

func TestGetProfileAutoCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown contractor is a 404", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		mockRepo.On("ContractorExists", ctx, int64(99)).Return(false, nil).Once()

		_, err := newProfileUC(mockRepo).GetProfile(ctx, 99)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("First read creates a default profile", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		mockRepo.On("ContractorExists", ctx, int64(5)).Return(true, nil).Once()
		mockRepo.On("GetByContractorID", ctx, int64(5)).Return(nil, nil).Once()
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil).Once()

		profile, err := newProfileUC(mockRepo).GetProfile(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), profile.ContractorID)
		assert.Equal(t, domain.DefaultRoleStatus, profile.RoleStatus)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Existing profile is returned as stored", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		stored := &domain.Profile{ID: 2, ContractorID: 5, Bio: "Framing carpenter", RoleStatus: "Employed"}
		mockRepo.On("ContractorExists", ctx, int64(5)).Return(true, nil).Once()
		mockRepo.On("GetByContractorID", ctx, int64(5)).Return(stored, nil).Once()

		profile, err := newProfileUC(mockRepo).GetProfile(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, "Framing carpenter", profile.Bio)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdateProfileMerge(t *testing.T) {
	ctx := context.Background()

	t.Run("Update never auto-creates", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		mockRepo.On("GetByContractorID", ctx, int64(5)).Return(nil, nil).Once()

		bio := "Updated bio"
		_, err := newProfileUC(mockRepo).UpdateProfile(ctx, 5, &domain.ProfileUpdate{Bio: &bio})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})

	t.Run("Nil patch fields keep stored values", func(t *testing.T) {
		phone := "555-0101"
		stored := &domain.Profile{ID: 2, ContractorID: 5, Bio: "Old bio", PhoneNumber: &phone, RoleStatus: "Employed"}

		mockRepo := new(MockProfileRepo)
		mockRepo.On("GetByContractorID", ctx, int64(5)).Return(stored, nil).Once()
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil).Once()

		bio := "New bio"
		updated, err := newProfileUC(mockRepo).UpdateProfile(ctx, 5, &domain.ProfileUpdate{Bio: &bio})
		assert.NoError(t, err)
		assert.Equal(t, "New bio", updated.Bio)
		assert.Equal(t, "Employed", updated.RoleStatus)
		assert.Equal(t, &phone, updated.PhoneNumber)
	})
}

func TestUpdateSkillsFiltersBlanks(t *testing.T) {
	ctx := context.Background()
	profile := &domain.Profile{ID: 2, ContractorID: 5, RoleStatus: "Employed"}

	mockRepo := new(MockProfileRepo)
	mockRepo.On("GetByContractorID", ctx, int64(5)).Return(profile, nil).Once()
	mockRepo.On("ReplaceSkills", ctx, int64(2), mock.AnythingOfType("[]domain.Skill")).Return(nil).Run(func(args mock.Arguments) {
		skills := args.Get(2).([]domain.Skill)
		assert.Equal(t, []domain.Skill{{SkillName: "Welding"}, {SkillName: "Roofing"}}, skills)
	}).Once()
	mockRepo.On("GetSkills", ctx, int64(2)).Return(&domain.SkillSet{
		Skills: []domain.Skill{{SkillName: "Welding"}, {SkillName: "Roofing"}},
	}, nil).Once()

	set, err := newProfileUC(mockRepo).UpdateSkills(ctx, 5, []domain.Skill{
		{SkillName: " Welding "},
		{SkillName: "   "},
		{SkillName: "Roofing"},
	})
	assert.NoError(t, err)
	assert.Len(t, set.Skills, 2)
	mockRepo.AssertExpectations(t)
}

func TestSkillsRequireProfile(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockProfileRepo)
	mockRepo.On("GetByContractorID", ctx, int64(5)).Return(nil, nil).Once()

	_, err := newProfileUC(mockRepo).GetSkills(ctx, 5)

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}
