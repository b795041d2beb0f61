package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"siteseekers-backend/internal/domain"
	"siteseekers-backend/internal/usecase"
	"siteseekers-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestPremiumLifecycle(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC)

	repo := newFakePremiumRepo()
	uc := usecase.NewPremiumUsecaseWithClock(repo, fixedClock(day))

	t.Run("New contractor is regular", func(t *testing.T) {
		view, err := uc.Status(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, domain.PremiumStatusRegular, view.PremiumStatus)
		assert.Empty(t, view.StartDate)

		active, err := uc.IsPremiumActive(ctx, 7)
		assert.NoError(t, err)
		assert.False(t, active)
	})

	t.Run("Subscribe activates immediately", func(t *testing.T) {
		premiumID, paymentID, err := uc.Subscribe(ctx, 7, 1)
		assert.NoError(t, err)
		assert.NotZero(t, premiumID)
		assert.NotZero(t, paymentID)

		active, err := uc.IsPremiumActive(ctx, 7)
		assert.NoError(t, err)
		assert.True(t, active)

		view, err := uc.Status(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, domain.PremiumStatusPremium, view.PremiumStatus)
		assert.Equal(t, "2026-03-10", view.StartDate)
		assert.Equal(t, "2026-04-10", view.EndDate)
	})

	t.Run("Cancel revokes entitlement the same day", func(t *testing.T) {
		assert.NoError(t, uc.Cancel(ctx, 7))

		active, err := uc.IsPremiumActive(ctx, 7)
		assert.NoError(t, err)
		assert.False(t, active)

		view, err := uc.Status(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, domain.PremiumStatusRegular, view.PremiumStatus)
	})

	t.Run("Ledger rows survive cancellation", func(t *testing.T) {
		assert.Len(t, repo.ledger, 1)
		assert.Equal(t, domain.PaymentStatusSuccess, repo.ledger[0].PaymentStatus)
	})

	t.Run("Resubscribing restores entitlement", func(t *testing.T) {
		firstPremiumID := repo.anchors[int64(7)]
		premiumID, _, err := uc.Subscribe(ctx, 7, 2)
		assert.NoError(t, err)
		// Anchor row is reused, never duplicated
		assert.Equal(t, firstPremiumID, premiumID)

		active, err := uc.IsPremiumActive(ctx, 7)
		assert.NoError(t, err)
		assert.True(t, active)

		view, err := uc.Status(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, "2026-05-10", view.EndDate)
	})
}

func TestPremiumExpiryBoundary(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC)

	repo := newFakePremiumRepo()
	_, _, err := usecase.NewPremiumUsecaseWithClock(repo, fixedClock(start)).Subscribe(ctx, 3, 1)
	assert.NoError(t, err)

	t.Run("Active on the last covered day", func(t *testing.T) {
		lastDay := time.Date(2026, time.February, 14, 23, 59, 0, 0, time.UTC)
		uc := usecase.NewPremiumUsecaseWithClock(repo, fixedClock(lastDay))
		active, err := uc.IsPremiumActive(ctx, 3)
		assert.NoError(t, err)
		assert.True(t, active)
	})

	t.Run("Inactive on the end date itself", func(t *testing.T) {
		endDay := time.Date(2026, time.February, 15, 0, 0, 1, 0, time.UTC)
		uc := usecase.NewPremiumUsecaseWithClock(repo, fixedClock(endDay))
		active, err := uc.IsPremiumActive(ctx, 3)
		assert.NoError(t, err)
		assert.False(t, active)
	})
}

func TestSubscribeValidation(t *testing.T) {
	ctx := context.Background()
	repo := newFakePremiumRepo()
	uc := usecase.NewPremiumUsecase(repo)

	t.Run("Should require a contractor ID", func(t *testing.T) {
		_, _, err := uc.Subscribe(ctx, 0, 1)
		assert.Error(t, err)
	})

	t.Run("Months below one defaults to a single cycle", func(t *testing.T) {
		_, _, err := uc.Subscribe(ctx, 5, -3)
		assert.NoError(t, err)
		p := repo.ledger[len(repo.ledger)-1]
		assert.Equal(t, p.SubscriptionStart.AddDate(0, 1, 0), p.SubscriptionEnd)
	})
}

func TestProcessPayment(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2026, time.June, 1, 8, 0, 0, 0, time.UTC)

	repo := newFakePremiumRepo()
	uc := usecase.NewPremiumUsecaseWithClock(repo, fixedClock(day))

	receipt, err := uc.ProcessPayment(ctx, 9)
	assert.NoError(t, err)
	assert.Equal(t, domain.MonthlyPremiumAmount, receipt.Amount)
	assert.Equal(t, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), receipt.SubscriptionStart)
	assert.Equal(t, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), receipt.SubscriptionEnd)

	active, err := uc.IsPremiumActive(ctx, 9)
	assert.NoError(t, err)
	assert.True(t, active)
}

func TestProcessPaymentFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2026, time.June, 1, 8, 0, 0, 0, time.UTC)

	repo := newFakePremiumRepo()
	repo.failPayment = errors.New("insert payment: connection reset by peer")
	uc := usecase.NewPremiumUsecaseWithClock(repo, fixedClock(day))

	receipt, err := uc.ProcessPayment(ctx, 9)
	assert.Nil(t, receipt)

	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)

	// The rolled-back charge leaves no anchor, no ledger row, no entitlement
	assert.Empty(t, repo.anchors)
	assert.Empty(t, repo.ledger)

	active, err := uc.IsPremiumActive(ctx, 9)
	assert.NoError(t, err)
	assert.False(t, active)

	// Nothing half-written blocks the retry once the charge goes through
	repo.failPayment = nil
	receipt, err = uc.ProcessPayment(ctx, 9)
	assert.NoError(t, err)
	assert.NotZero(t, receipt.PaymentID)
	assert.Len(t, repo.ledger, 1)
}
