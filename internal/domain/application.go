package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateApplication is returned when a contractor applies twice to the
// same job. The uniqueness is enforced by the database constraint, so
// concurrent duplicate submissions cannot both succeed.
var ErrDuplicateApplication = errors.New("application already exists for this contractor and job")

// Application status constants
const (
	ApplicationStatusPending  = "Pending"
	ApplicationStatusAccepted = "Accepted"
	ApplicationStatusRejected = "Rejected"
)

// Application represents a contractor's submitted response to a job listing
type Application struct {
	ID              int64     `json:"application_id"`
	ContractorID    int64     `json:"contractor_id"`
	JobID           int64     `json:"job_id"`
	DateApplied     time.Time `json:"-"`
	Status          string    `json:"status"`
	TellAnswer      string    `json:"tell_answer"`
	FitAnswer       string    `json:"fit_answer"`
	AmbitiousAnswer string    `json:"ambitious_answer"`
	Location        string    `json:"location"`
}

// Applicant is an application joined with the contractor's identity and
// profile for the employer-facing applicants view
type Applicant struct {
	ApplicationID   int64     `json:"application_id"`
	ContractorID    int64     `json:"contractor_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	PhoneNumber     *string   `json:"phone_number"`
	Bio             *string   `json:"bio"`
	Status          string    `json:"status"`
	TellAnswer      string    `json:"tell_answer"`
	FitAnswer       string    `json:"fit_answer"`
	AmbitiousAnswer string    `json:"ambitious_answer"`
	Location        string    `json:"location"`
	DateApplied     time.Time `json:"-"`
}

// AppliedJob is a job joined with the contractor's application status for
// the contractor-facing "my applications" view
type AppliedJob struct {
	JobWithClient
	ApplicationStatus string `json:"application_status"`
}

type ApplicationRepository interface {
	// Create inserts the application. Returns ErrDuplicateApplication when
	// the (contractor_id, job_id) pair already has a row.
	Create(ctx context.Context, app *Application) error
	Exists(ctx context.Context, contractorID, jobID int64) (bool, error)
	GetByJobID(ctx context.Context, jobID int64) ([]Applicant, error)
	GetAppliedJobs(ctx context.Context, contractorID int64) ([]AppliedJob, error)
}

type ApplicationUsecase interface {
	HasApplied(ctx context.Context, contractorID, jobID int64) (bool, error)
	Apply(ctx context.Context, app *Application) error
	ListApplicantsForJob(ctx context.Context, jobID int64) ([]Applicant, error)
	ListAppliedJobs(ctx context.Context, contractorID int64) ([]AppliedJob, error)
}
