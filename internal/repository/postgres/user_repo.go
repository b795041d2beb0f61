package postgres

import (
	"context"
	"errors"
	"siteseekers-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateClient(ctx context.Context, client *domain.Client) error {
	query := `INSERT INTO clients (name, email, password, location, date_joined)
              VALUES ($1, $2, $3, $4, $5) RETURNING client_id`
	return r.db.QueryRow(ctx, query,
		client.Name, client.Email, client.PasswordHash, client.Location, client.DateJoined,
	).Scan(&client.ID)
}

func (r *userRepo) CreateContractor(ctx context.Context, contractor *domain.Contractor) error {
	query := `INSERT INTO contractors (name, email, password, date_joined)
              VALUES ($1, $2, $3, $4) RETURNING contractor_id`
	return r.db.QueryRow(ctx, query,
		contractor.Name, contractor.Email, contractor.PasswordHash, contractor.DateJoined,
	).Scan(&contractor.ID)
}

func (r *userRepo) GetClientByEmail(ctx context.Context, email string) (*domain.Client, error) {
	query := `SELECT client_id, name, email, password, COALESCE(location, ''), date_joined
              FROM clients WHERE email = $1`
	var c domain.Client
	err := r.db.QueryRow(ctx, query, email).Scan(
		&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.Location, &c.DateJoined,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *userRepo) GetContractorByEmail(ctx context.Context, email string) (*domain.Contractor, error) {
	query := `SELECT contractor_id, name, email, password, date_joined
              FROM contractors WHERE email = $1`
	var c domain.Contractor
	err := r.db.QueryRow(ctx, query, email).Scan(
		&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.DateJoined,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
