package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"siteseekers-backend/internal/domain"
	"siteseekers-backend/internal/usecase"
	"siteseekers-backend/pkg/apperror"
	"siteseekers-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testTokens() *auth.TokenIssuer {
	return auth.NewTokenIssuer("test-secret", time.Hour)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewAuthUsecase(new(MockUserRepo), testTokens())

	t.Run("Should reject unknown user types", func(t *testing.T) {
		_, err := uc.Register(ctx, "Sam", "sam@example.com", "hunter2secret", "admin", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "user_type")
	})

	t.Run("Should require a location for clients", func(t *testing.T) {
		_, err := uc.Register(ctx, "Sam", "sam@example.com", "hunter2secret", domain.UserTypeClient, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Location")
	})

	t.Run("Contractors register without a location", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("CreateContractor", ctx, mock.AnythingOfType("*domain.Contractor")).Return(nil).Run(func(args mock.Arguments) {
			c := args.Get(1).(*domain.Contractor)
			// Password must be stored hashed, never verbatim
			assert.NotEqual(t, "hunter2secret", c.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte("hunter2secret")))
		}).Once()

		uc := usecase.NewAuthUsecase(mockRepo, testTokens())
		_, err := uc.Register(ctx, "Sam", "sam@example.com", "hunter2secret", domain.UserTypeContractor, "")
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2secret"), 10)
	contractor := &domain.Contractor{ID: 4, Name: "Sam", Email: "sam@example.com", PasswordHash: string(hash)}

	t.Run("Valid credentials return the identity with a token", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetContractorByEmail", ctx, "sam@example.com").Return(contractor, nil).Once()

		uc := usecase.NewAuthUsecase(mockRepo, testTokens())
		identity, err := uc.Login(ctx, "sam@example.com", "hunter2secret", domain.UserTypeContractor)
		assert.NoError(t, err)
		assert.Equal(t, int64(4), identity.UserID)
		assert.Equal(t, domain.UserTypeContractor, identity.UserType)
		assert.NotEmpty(t, identity.Token)
	})

	t.Run("Wrong password and unknown account return the same 401", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetContractorByEmail", ctx, "sam@example.com").Return(contractor, nil).Once()
		mockRepo.On("GetContractorByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrNotFound).Once()

		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		_, wrongPass := uc.Login(ctx, "sam@example.com", "not-the-password", domain.UserTypeContractor)
		_, noAccount := uc.Login(ctx, "ghost@example.com", "hunter2secret", domain.UserTypeContractor)

		var appErr1, appErr2 *apperror.AppError
		assert.ErrorAs(t, wrongPass, &appErr1)
		assert.ErrorAs(t, noAccount, &appErr2)
		assert.Equal(t, http.StatusUnauthorized, appErr1.Code)
		assert.Equal(t, appErr1.Code, appErr2.Code)
		assert.Equal(t, appErr1.Message, appErr2.Message)

		// Both failures carry the same sentinel for errors.Is callers
		assert.ErrorIs(t, wrongPass, domain.ErrInvalidCredentials)
		assert.ErrorIs(t, noAccount, domain.ErrInvalidCredentials)
	})

	t.Run("Login checks the table matching user_type", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetClientByEmail", ctx, "sam@example.com").Return(nil, domain.ErrNotFound).Once()

		uc := usecase.NewAuthUsecase(mockRepo, testTokens())
		_, err := uc.Login(ctx, "sam@example.com", "hunter2secret", domain.UserTypeClient)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
		mockRepo.AssertNotCalled(t, "GetContractorByEmail", mock.Anything, mock.Anything)
	})
}
