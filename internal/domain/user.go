package domain

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidCredentials is wrapped into every login failure. Callers can
// match it with errors.Is; the 401 never reveals which part of the
// credential pair was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// User types accepted by register/login
const (
	UserTypeClient     = "client"
	UserTypeContractor = "contractor"
)

type Client struct {
	ID           int64     `json:"client_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Location     string    `json:"location"`
	Company      string    `json:"company,omitempty"`
	IsHiring     bool      `json:"isHiring,omitempty"`
	DateJoined   time.Time `json:"-"`
}

type Contractor struct {
	ID           int64     `json:"contractor_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DateJoined   time.Time `json:"-"`
}

// AuthIdentity is the login response payload. The token is a client-stored
// marker; the core API routes do not require it.
type AuthIdentity struct {
	UserID   int64  `json:"userId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
	Token    string `json:"token"`
}

type UserRepository interface {
	CreateClient(ctx context.Context, client *Client) error
	CreateContractor(ctx context.Context, contractor *Contractor) error
	GetClientByEmail(ctx context.Context, email string) (*Client, error)
	GetContractorByEmail(ctx context.Context, email string) (*Contractor, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, name, email, password, userType, location string) (int64, error)
	Login(ctx context.Context, email, password, userType string) (*AuthIdentity, error)
}
