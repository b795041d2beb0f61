package postgres

import (
	"context"
	"errors"
	"siteseekers-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. The (contractor_id, job_id) uniqueness is
// enforced by the database, so two racing submissions cannot both land.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO job_applications (contractor_id, job_id, date_applied, status, tell_answer, fit_answer, ambitious_answer, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING application_id`

	if app.DateApplied.IsZero() {
		app.DateApplied = time.Now()
	}
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	err := r.db.QueryRow(ctx, query,
		app.ContractorID,
		app.JobID,
		app.DateApplied,
		app.Status,
		app.TellAnswer,
		app.FitAnswer,
		app.AmbitiousAnswer,
		app.Location,
	).Scan(&app.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateApplication
		}
		return err
	}
	return nil
}

// Exists checks whether an application already exists for the pair
func (r *applicationRepo) Exists(ctx context.Context, contractorID, jobID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM job_applications WHERE contractor_id = $1 AND job_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, contractorID, jobID).Scan(&exists)
	return exists, err
}

// GetByJobID retrieves all applications for a job joined with contractor
// identity and profile contact details
func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Applicant, error) {
	query := `
		SELECT
			a.application_id, a.contractor_id,
			ct.name, ct.email,
			p.phone_number, p.bio,
			a.status, a.tell_answer, a.fit_answer, a.ambitious_answer, a.location, a.date_applied
		FROM job_applications a
		JOIN contractors ct ON a.contractor_id = ct.contractor_id
		LEFT JOIN profiles p ON a.contractor_id = p.contractor_id
		WHERE a.job_id = $1
		ORDER BY a.date_applied DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applicants []domain.Applicant
	for rows.Next() {
		var ap domain.Applicant
		if err := rows.Scan(
			&ap.ApplicationID, &ap.ContractorID,
			&ap.Name, &ap.Email,
			&ap.PhoneNumber, &ap.Bio,
			&ap.Status, &ap.TellAnswer, &ap.FitAnswer, &ap.AmbitiousAnswer, &ap.Location, &ap.DateApplied,
		); err != nil {
			return nil, err
		}
		applicants = append(applicants, ap)
	}
	return applicants, rows.Err()
}

// GetAppliedJobs retrieves the jobs a contractor has applied to, with the
// application status alongside each job
func (r *applicationRepo) GetAppliedJobs(ctx context.Context, contractorID int64) ([]domain.AppliedJob, error) {
	query := `
		SELECT
			j.job_id, j.client_id, j.title, j.description, j.location, j.status,
			j.min_salary, j.max_salary, j.actual_salary, j.rate_type, j.date_posted,
			c.name AS client_name,
			a.status AS application_status
		FROM job_applications a
		JOIN jobs j ON a.job_id = j.job_id
		LEFT JOIN clients c ON j.client_id = c.client_id
		WHERE a.contractor_id = $1
		ORDER BY a.date_applied DESC`

	rows, err := r.db.Query(ctx, query, contractorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.AppliedJob
	for rows.Next() {
		var aj domain.AppliedJob
		if err := rows.Scan(
			&aj.ID, &aj.ClientID, &aj.Title, &aj.Description, &aj.Location, &aj.Status,
			&aj.MinSalary, &aj.MaxSalary, &aj.ActualSalary, &aj.RateType, &aj.DatePosted,
			&aj.ClientName,
			&aj.ApplicationStatus,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, aj)
	}
	return jobs, rows.Err()
}
