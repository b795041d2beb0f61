package domain

import (
	"context"
	"time"
)

// Premium status values. The status is never stored: it is derived from the
// payment ledger, so the enum and the date ranges cannot disagree.
const (
	PremiumStatusRegular = "regular"
	PremiumStatusPremium = "premium"
)

// Payment status values
const (
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

// MonthlyPremiumAmount is the fixed charge per billing cycle.
const MonthlyPremiumAmount = 35.00

// PremiumSubscription anchors a contractor's payment ledger. One row per
// contractor; it carries no entitlement on its own.
type PremiumSubscription struct {
	ID           int64     `json:"premium_id"`
	ContractorID int64     `json:"contractor_id"`
	CreatedAt    time.Time `json:"-"`
}

// PremiumPayment is one row of the append-style payment ledger.
type PremiumPayment struct {
	ID                int64     `json:"payment_id"`
	ContractorID      int64     `json:"contractor_id"`
	PremiumID         int64     `json:"premium_id"`
	Amount            float64   `json:"amount"`
	PaymentStatus     string    `json:"payment_status"`
	SubscriptionStart time.Time `json:"subscription_start"`
	SubscriptionEnd   time.Time `json:"subscription_end"`
}

// ActiveOn reports whether the payment grants premium entitlement on the
// given day. The range is start-inclusive, end-exclusive: a subscription
// cancelled today (end truncated to today) is inactive immediately.
func (p *PremiumPayment) ActiveOn(day time.Time) bool {
	if p.PaymentStatus != PaymentStatusSuccess {
		return false
	}
	d := Midnight(day)
	return !d.Before(Midnight(p.SubscriptionStart)) && d.Before(Midnight(p.SubscriptionEnd))
}

// Midnight truncates a timestamp to its calendar day. All ledger date math
// compares whole days, never clock times.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// PremiumStatusView is the contractor-facing subscription summary. Status is
// computed from the covering ledger row at read time.
type PremiumStatusView struct {
	PremiumID     int64  `json:"premium_id,omitempty"`
	ContractorID  int64  `json:"contractor_id"`
	StartDate     string `json:"start_date,omitempty"`
	EndDate       string `json:"end_date,omitempty"`
	PremiumStatus string `json:"premium_status"`
}

// PaymentReceipt is returned by the transactional charge path.
type PaymentReceipt struct {
	PaymentID         int64     `json:"payment_id"`
	PremiumID         int64     `json:"premium_id"`
	Amount            float64   `json:"amount"`
	SubscriptionStart time.Time `json:"subscription_start"`
	SubscriptionEnd   time.Time `json:"subscription_end"`
}

type PremiumRepository interface {
	// UpsertSubscription creates the contractor's anchor row if missing and
	// returns its premium_id either way.
	UpsertSubscription(ctx context.Context, contractorID int64) (int64, error)
	InsertPayment(ctx context.Context, payment *PremiumPayment) error
	// LatestCovering returns the most recent success payment whose range
	// covers the given day, or nil when there is none.
	LatestCovering(ctx context.Context, contractorID int64, day time.Time) (*PremiumPayment, error)
	IsActive(ctx context.Context, contractorID int64, day time.Time) (bool, error)
	// TruncateActive sets subscription_end = day on every success payment
	// still running past the given day. Rows are never deleted.
	TruncateActive(ctx context.Context, contractorID int64, day time.Time) error
	// ProcessPayment runs the anchor upsert and the payment insert in a
	// single transaction: either both rows land or neither does.
	ProcessPayment(ctx context.Context, contractorID int64, amount float64, start, end time.Time) (*PaymentReceipt, error)
}

type PremiumUsecase interface {
	Status(ctx context.Context, contractorID int64) (*PremiumStatusView, error)
	IsPremiumActive(ctx context.Context, contractorID int64) (bool, error)
	Subscribe(ctx context.Context, contractorID int64, months int) (premiumID, paymentID int64, err error)
	Cancel(ctx context.Context, contractorID int64) error
	ProcessPayment(ctx context.Context, contractorID int64) (*PaymentReceipt, error)
}
