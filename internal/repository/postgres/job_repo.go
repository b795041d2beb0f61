package postgres

import (
	"context"
	"errors"
	"siteseekers-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (client_id, title, description, location, status, min_salary, max_salary, actual_salary, rate_type, date_posted)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING job_id`
	return r.db.QueryRow(ctx, query,
		job.ClientID, job.Title, job.Description, job.Location, job.Status,
		job.MinSalary, job.MaxSalary, job.ActualSalary, job.RateType,
		job.DatePosted,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT job_id, client_id, title, description, location, status, min_salary, max_salary, actual_salary, rate_type, date_posted
              FROM jobs WHERE job_id = $1`
	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.ClientID, &job.Title, &job.Description, &job.Location, &job.Status,
		&job.MinSalary, &job.MaxSalary, &job.ActualSalary, &job.RateType,
		&job.DatePosted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FetchWithClient retrieves all jobs with the posting client's name,
// newest first
func (r *jobRepo) FetchWithClient(ctx context.Context) ([]domain.JobWithClient, error) {
	query := `
		SELECT
			j.job_id, j.client_id, j.title, j.description, j.location, j.status,
			j.min_salary, j.max_salary, j.actual_salary, j.rate_type, j.date_posted,
			c.name AS client_name
		FROM jobs j
		LEFT JOIN clients c ON j.client_id = c.client_id
		ORDER BY j.date_posted DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobWithClient
	for rows.Next() {
		var job domain.JobWithClient
		if err := rows.Scan(
			&job.ID, &job.ClientID, &job.Title, &job.Description, &job.Location, &job.Status,
			&job.MinSalary, &job.MaxSalary, &job.ActualSalary, &job.RateType, &job.DatePosted,
			&job.ClientName,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// FetchByClientID retrieves a single client's postings for their dashboard
func (r *jobRepo) FetchByClientID(ctx context.Context, clientID int64) ([]domain.Job, error) {
	query := `SELECT job_id, client_id, title, description, location, status, min_salary, max_salary, actual_salary, rate_type, date_posted
              FROM jobs WHERE client_id = $1 ORDER BY date_posted DESC`

	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.ClientID, &job.Title, &job.Description, &job.Location, &job.Status,
			&job.MinSalary, &job.MaxSalary, &job.ActualSalary, &job.RateType, &job.DatePosted,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE jobs SET status = $2 WHERE job_id = $1`
	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
