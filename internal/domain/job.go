package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job status values
const (
	JobStatusOpen   = "Open"
	JobStatusClosed = "Closed"
)

// Rate type values
const (
	RateTypeHourly = "hourly"
	RateTypeFixed  = "fixed"
	RateTypeYearly = "yearly"
)

type Job struct {
	ID           int64     `json:"job_id"`
	ClientID     int64     `json:"client_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	MinSalary    float64   `json:"min_salary"`
	MaxSalary    float64   `json:"max_salary"`
	ActualSalary float64   `json:"actual_salary"`
	RateType     string    `json:"rate_type"` // hourly, fixed, yearly
	Status       string    `json:"status"`    // Open, Closed
	DatePosted   time.Time `json:"-"`
}

// JobWithClient extends Job with the posting client's name for listing pages
type JobWithClient struct {
	Job
	ClientName *string `json:"client_name"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	FetchWithClient(ctx context.Context) ([]JobWithClient, error)
	FetchByClientID(ctx context.Context, clientID int64) ([]Job, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type JobUsecase interface {
	CreateListing(ctx context.Context, job *Job) error
	GetJob(ctx context.Context, id int64) (*Job, error)
	ListListings(ctx context.Context) ([]JobWithClient, error)
	ListByClient(ctx context.Context, clientID int64) ([]Job, error)
	SetStatus(ctx context.Context, id int64, status string) error
}
