package postgres

import (
	"context"
	"errors"
	"siteseekers-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type premiumRepo struct {
	db *pgxpool.Pool
}

// NewPremiumRepository creates a new premium subscription repository
func NewPremiumRepository(db *pgxpool.Pool) domain.PremiumRepository {
	return &premiumRepo{db: db}
}

// UpsertSubscription creates the contractor's anchor row if missing and
// returns its premium_id either way.
func (r *premiumRepo) UpsertSubscription(ctx context.Context, contractorID int64) (int64, error) {
	query := `
		INSERT INTO profile_premium (contractor_id, created_at)
		VALUES ($1, NOW())
		ON CONFLICT (contractor_id) DO UPDATE SET contractor_id = EXCLUDED.contractor_id
		RETURNING premium_id`
	var premiumID int64
	err := r.db.QueryRow(ctx, query, contractorID).Scan(&premiumID)
	return premiumID, err
}

func (r *premiumRepo) InsertPayment(ctx context.Context, payment *domain.PremiumPayment) error {
	query := `
		INSERT INTO premium_payments (contractor_id, premium_id, amount, payment_status, subscription_start, subscription_end)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING payment_id`
	return r.db.QueryRow(ctx, query,
		payment.ContractorID,
		payment.PremiumID,
		payment.Amount,
		payment.PaymentStatus,
		payment.SubscriptionStart,
		payment.SubscriptionEnd,
	).Scan(&payment.ID)
}

// LatestCovering returns the most recent success payment whose range covers
// the given day. The range is start-inclusive, end-exclusive.
func (r *premiumRepo) LatestCovering(ctx context.Context, contractorID int64, day time.Time) (*domain.PremiumPayment, error) {
	query := `
		SELECT payment_id, contractor_id, premium_id, amount, payment_status, subscription_start, subscription_end
		FROM premium_payments
		WHERE contractor_id = $1
		  AND payment_status = 'success'
		  AND subscription_start <= $2
		  AND subscription_end > $2
		ORDER BY subscription_end DESC
		LIMIT 1`

	var p domain.PremiumPayment
	err := r.db.QueryRow(ctx, query, contractorID, domain.Midnight(day)).Scan(
		&p.ID, &p.ContractorID, &p.PremiumID, &p.Amount, &p.PaymentStatus,
		&p.SubscriptionStart, &p.SubscriptionEnd,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *premiumRepo) IsActive(ctx context.Context, contractorID int64, day time.Time) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1
			FROM premium_payments pp
			JOIN profile_premium pr ON pp.premium_id = pr.premium_id
			WHERE pp.contractor_id = $1
			  AND pp.payment_status = 'success'
			  AND pp.subscription_start <= $2
			  AND pp.subscription_end > $2
		)`
	var active bool
	err := r.db.QueryRow(ctx, query, contractorID, domain.Midnight(day)).Scan(&active)
	return active, err
}

// TruncateActive ends every still-running success payment at the given day.
// Rows are updated, never deleted, so the payment history is preserved.
func (r *premiumRepo) TruncateActive(ctx context.Context, contractorID int64, day time.Time) error {
	query := `
		UPDATE premium_payments
		SET subscription_end = $2
		WHERE contractor_id = $1
		  AND subscription_end > $2
		  AND payment_status = 'success'`
	_, err := r.db.Exec(ctx, query, contractorID, domain.Midnight(day))
	return err
}

// ProcessPayment runs the anchor upsert and the payment insert in a single
// transaction. A failure at either step rolls back both.
func (r *premiumRepo) ProcessPayment(ctx context.Context, contractorID int64, amount float64, start, end time.Time) (*domain.PaymentReceipt, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	upsert := `
		INSERT INTO profile_premium (contractor_id, created_at)
		VALUES ($1, NOW())
		ON CONFLICT (contractor_id) DO UPDATE SET contractor_id = EXCLUDED.contractor_id
		RETURNING premium_id`
	var premiumID int64
	if err := tx.QueryRow(ctx, upsert, contractorID).Scan(&premiumID); err != nil {
		return nil, err
	}

	insert := `
		INSERT INTO premium_payments (contractor_id, premium_id, amount, payment_status, subscription_start, subscription_end)
		VALUES ($1, $2, $3, 'success', $4, $5)
		RETURNING payment_id`
	var paymentID int64
	if err := tx.QueryRow(ctx, insert, contractorID, premiumID, amount, start, end).Scan(&paymentID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &domain.PaymentReceipt{
		PaymentID:         paymentID,
		PremiumID:         premiumID,
		Amount:            amount,
		SubscriptionStart: start,
		SubscriptionEnd:   end,
	}, nil
}
