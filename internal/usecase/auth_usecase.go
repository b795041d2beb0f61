package usecase

import (
	"context"
	"errors"
	"net/http"
	"siteseekers-backend/internal/domain"
	"siteseekers-backend/pkg/apperror"
	"siteseekers-backend/pkg/auth"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// errInvalidLogin wraps the domain sentinel so callers can test for it while
// the response stays silent on which part of the pair was wrong.
var errInvalidLogin = apperror.New(http.StatusUnauthorized, "Invalid credentials", domain.ErrInvalidCredentials)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenIssuer
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenIssuer) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

func (u *authUsecase) Register(ctx context.Context, name, email, password, userType, location string) (int64, error) {
	if name == "" || email == "" || password == "" {
		return 0, apperror.BadRequest("Invalid input")
	}
	if userType != domain.UserTypeClient && userType != domain.UserTypeContractor {
		return 0, apperror.BadRequest("user_type must be client or contractor")
	}
	if userType == domain.UserTypeClient && location == "" {
		return 0, apperror.BadRequest("Location is required for clients")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return 0, apperror.Internal(err)
	}

	now := time.Now()
	if userType == domain.UserTypeClient {
		client := &domain.Client{
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			Location:     location,
			DateJoined:   now,
		}
		if err := u.userRepo.CreateClient(ctx, client); err != nil {
			return 0, apperror.Internal(err)
		}
		return client.ID, nil
	}

	contractor := &domain.Contractor{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		DateJoined:   now,
	}
	if err := u.userRepo.CreateContractor(ctx, contractor); err != nil {
		return 0, apperror.Internal(err)
	}
	return contractor.ID, nil
}

// Login checks the credentials against the table matching user_type and
// issues a session marker. A missing account and a wrong password both map
// to the same 401.
func (u *authUsecase) Login(ctx context.Context, email, password, userType string) (*domain.AuthIdentity, error) {
	if email == "" || password == "" {
		return nil, apperror.BadRequest("Invalid input")
	}

	var (
		userID int64
		name   string
		hash   string
	)

	switch userType {
	case domain.UserTypeClient:
		client, err := u.userRepo.GetClientByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, errInvalidLogin
			}
			return nil, apperror.Internal(err)
		}
		userID, name, hash = client.ID, client.Name, client.PasswordHash
	case domain.UserTypeContractor:
		contractor, err := u.userRepo.GetContractorByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, errInvalidLogin
			}
			return nil, apperror.Internal(err)
		}
		userID, name, hash = contractor.ID, contractor.Name, contractor.PasswordHash
	default:
		return nil, apperror.BadRequest("user_type must be client or contractor")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, errInvalidLogin
	}

	token, err := u.tokens.Issue(userID, userType, email)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AuthIdentity{
		UserID:   userID,
		Name:     name,
		Email:    email,
		UserType: userType,
		Token:    token,
	}, nil
}
