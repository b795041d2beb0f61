package usecase

import (
	"context"
	"siteseekers-backend/internal/domain"
	"siteseekers-backend/pkg/apperror"
	"time"
)

type premiumUsecase struct {
	premiumRepo domain.PremiumRepository
	now         func() time.Time
}

// NewPremiumUsecase creates a new premium usecase. The clock is injectable
// for the date-boundary tests.
func NewPremiumUsecase(premiumRepo domain.PremiumRepository) domain.PremiumUsecase {
	return &premiumUsecase{
		premiumRepo: premiumRepo,
		now:         time.Now,
	}
}

// NewPremiumUsecaseWithClock builds the usecase against a fixed clock.
func NewPremiumUsecaseWithClock(premiumRepo domain.PremiumRepository, now func() time.Time) domain.PremiumUsecase {
	return &premiumUsecase{premiumRepo: premiumRepo, now: now}
}

// Status is the contractor-facing subscription summary. Entitlement is
// derived from the covering ledger row, never from a stored flag, so this
// view and IsPremiumActive cannot disagree.
func (uc *premiumUsecase) Status(ctx context.Context, contractorID int64) (*domain.PremiumStatusView, error) {
	payment, err := uc.premiumRepo.LatestCovering(ctx, contractorID, uc.now())
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if payment == nil {
		return &domain.PremiumStatusView{
			ContractorID:  contractorID,
			PremiumStatus: domain.PremiumStatusRegular,
		}, nil
	}
	return &domain.PremiumStatusView{
		PremiumID:     payment.PremiumID,
		ContractorID:  contractorID,
		StartDate:     payment.SubscriptionStart.Format("2006-01-02"),
		EndDate:       payment.SubscriptionEnd.Format("2006-01-02"),
		PremiumStatus: domain.PremiumStatusPremium,
	}, nil
}

func (uc *premiumUsecase) IsPremiumActive(ctx context.Context, contractorID int64) (bool, error) {
	active, err := uc.premiumRepo.IsActive(ctx, contractorID, uc.now())
	if err != nil {
		return false, apperror.Internal(err)
	}
	return active, nil
}

// Subscribe upserts the ledger anchor and appends a success payment covering
// [today, today+months). The two statements are deliberately not wrapped in a
// transaction; ProcessPayment is the atomic path. Re-invoking Subscribe
// creates an additional valid ledger row (no idempotency key), matching the
// legacy billing behavior.
func (uc *premiumUsecase) Subscribe(ctx context.Context, contractorID int64, months int) (int64, int64, error) {
	if contractorID == 0 {
		return 0, 0, apperror.BadRequest("contractor_id is required")
	}
	if months < 1 {
		months = 1
	}

	premiumID, err := uc.premiumRepo.UpsertSubscription(ctx, contractorID)
	if err != nil {
		return 0, 0, apperror.Internal(err)
	}

	start := domain.Midnight(uc.now())
	payment := &domain.PremiumPayment{
		ContractorID:      contractorID,
		PremiumID:         premiumID,
		Amount:            domain.MonthlyPremiumAmount,
		PaymentStatus:     domain.PaymentStatusSuccess,
		SubscriptionStart: start,
		SubscriptionEnd:   start.AddDate(0, months, 0),
	}
	if err := uc.premiumRepo.InsertPayment(ctx, payment); err != nil {
		return 0, 0, apperror.Internal(err)
	}

	return premiumID, payment.ID, nil
}

// Cancel truncates every still-running payment's end date to today. With the
// end-exclusive boundary the contractor loses entitlement immediately, and
// the payment history stays intact.
func (uc *premiumUsecase) Cancel(ctx context.Context, contractorID int64) error {
	if err := uc.premiumRepo.TruncateActive(ctx, contractorID, uc.now()); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// ProcessPayment is the transactional charge path: the anchor upsert and the
// fixed one-month $35 payment land together or not at all.
func (uc *premiumUsecase) ProcessPayment(ctx context.Context, contractorID int64) (*domain.PaymentReceipt, error) {
	if contractorID == 0 {
		return nil, apperror.BadRequest("contractor_id is required")
	}

	start := domain.Midnight(uc.now())
	receipt, err := uc.premiumRepo.ProcessPayment(ctx, contractorID, domain.MonthlyPremiumAmount, start, start.AddDate(0, 1, 0))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return receipt, nil
}
