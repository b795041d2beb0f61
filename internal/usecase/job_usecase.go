package usecase

import (
	"context"
	"errors"
	"siteseekers-backend/internal/domain"
	"siteseekers-backend/pkg/apperror"
	"time"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) CreateListing(ctx context.Context, job *domain.Job) error {
	// Business Validation
	if job.ClientID == 0 {
		return apperror.BadRequest("Client ID is required")
	}
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.MinSalary > job.MaxSalary {
		return apperror.BadRequest("min_salary cannot be greater than max_salary")
	}
	switch job.RateType {
	case domain.RateTypeHourly, domain.RateTypeFixed, domain.RateTypeYearly:
	default:
		return apperror.BadRequest("rate_type must be hourly, fixed or yearly")
	}

	// New listings always start open
	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}
	job.DatePosted = time.Now()

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) ListListings(ctx context.Context) ([]domain.JobWithClient, error) {
	jobs, err := u.jobRepo.FetchWithClient(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) ListByClient(ctx context.Context, clientID int64) ([]domain.Job, error) {
	jobs, err := u.jobRepo.FetchByClientID(ctx, clientID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

// SetStatus toggles a listing between Open and Closed. There is no transition
// guard: closing an already-closed listing succeeds and leaves it closed.
func (u *jobUsecase) SetStatus(ctx context.Context, id int64, status string) error {
	if status != domain.JobStatusOpen && status != domain.JobStatusClosed {
		return apperror.BadRequest("status must be Open or Closed")
	}
	if err := u.jobRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
