package usecase

import (
	"context"
	"errors"
	"siteseekers-backend/internal/domain"
	"siteseekers-backend/pkg/apperror"
	"strings"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
	}
}

// HasApplied is the advisory pre-check used by the apply form. The real
// guarantee comes from the database constraint checked in Apply.
func (uc *applicationUsecase) HasApplied(ctx context.Context, contractorID, jobID int64) (bool, error) {
	applied, err := uc.applicationRepo.Exists(ctx, contractorID, jobID)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return applied, nil
}

// Apply records a contractor's application. All three free-text answers are
// mandatory and validated here, not only in the frontend.
func (uc *applicationUsecase) Apply(ctx context.Context, app *domain.Application) error {
	if app.ContractorID == 0 || app.JobID == 0 {
		return apperror.BadRequest("contractor_id and job_id are required")
	}
	if strings.TrimSpace(app.TellAnswer) == "" ||
		strings.TrimSpace(app.FitAnswer) == "" ||
		strings.TrimSpace(app.AmbitiousAnswer) == "" {
		return apperror.BadRequest("All three application answers are required")
	}

	// Validate the listing exists before inserting
	job, err := uc.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	if job.Status != domain.JobStatusOpen {
		return apperror.BadRequest("Cannot apply to a closed listing")
	}

	app.Status = domain.ApplicationStatusPending

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicateApplication) {
			return apperror.Conflict("You have already applied to this job")
		}
		return apperror.Internal(err)
	}
	return nil
}

// ListApplicantsForJob returns applications joined with contractor identity
// and profile contact details for the employer view
func (uc *applicationUsecase) ListApplicantsForJob(ctx context.Context, jobID int64) ([]domain.Applicant, error) {
	if _, err := uc.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	applicants, err := uc.applicationRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return applicants, nil
}

func (uc *applicationUsecase) ListAppliedJobs(ctx context.Context, contractorID int64) ([]domain.AppliedJob, error) {
	jobs, err := uc.applicationRepo.GetAppliedJobs(ctx, contractorID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}
