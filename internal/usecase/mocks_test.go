package usecase_test

import (
	"context"
	"time"

	"siteseekers-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) FetchWithClient(ctx context.Context) ([]domain.JobWithClient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobWithClient), args.Error(1)
}

func (m *MockJobRepo) FetchByClientID(ctx context.Context, clientID int64) ([]domain.Job, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) Exists(ctx context.Context, contractorID, jobID int64) (bool, error) {
	args := m.Called(ctx, contractorID, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Applicant, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Applicant), args.Error(1)
}

func (m *MockApplicationRepo) GetAppliedJobs(ctx context.Context, contractorID int64) ([]domain.AppliedJob, error) {
	args := m.Called(ctx, contractorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AppliedJob), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateClient(ctx context.Context, client *domain.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockUserRepo) CreateContractor(ctx context.Context, contractor *domain.Contractor) error {
	return m.Called(ctx, contractor).Error(0)
}

func (m *MockUserRepo) GetClientByEmail(ctx context.Context, email string) (*domain.Client, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockUserRepo) GetContractorByEmail(ctx context.Context, email string) (*domain.Contractor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contractor), args.Error(1)
}

// fakePremiumRepo is a stateful in-memory ledger. The premium tests exercise
// date-range behavior across calls, which a call-by-call mock cannot express.
type fakePremiumRepo struct {
	nextPremiumID int64
	nextPaymentID int64
	anchors       map[int64]int64 // contractorID -> premiumID
	ledger        []domain.PremiumPayment

	// failPayment makes ProcessPayment fail after the anchor upsert and
	// roll its state back, the way the real transaction does.
	failPayment error
}

func newFakePremiumRepo() *fakePremiumRepo {
	return &fakePremiumRepo{
		nextPremiumID: 1,
		nextPaymentID: 1,
		anchors:       map[int64]int64{},
	}
}

func (f *fakePremiumRepo) UpsertSubscription(ctx context.Context, contractorID int64) (int64, error) {
	if id, ok := f.anchors[contractorID]; ok {
		return id, nil
	}
	id := f.nextPremiumID
	f.nextPremiumID++
	f.anchors[contractorID] = id
	return id, nil
}

func (f *fakePremiumRepo) InsertPayment(ctx context.Context, payment *domain.PremiumPayment) error {
	payment.ID = f.nextPaymentID
	f.nextPaymentID++
	f.ledger = append(f.ledger, *payment)
	return nil
}

func (f *fakePremiumRepo) LatestCovering(ctx context.Context, contractorID int64, day time.Time) (*domain.PremiumPayment, error) {
	var best *domain.PremiumPayment
	for i := range f.ledger {
		p := f.ledger[i]
		if p.ContractorID != contractorID || !p.ActiveOn(day) {
			continue
		}
		if best == nil || p.SubscriptionEnd.After(best.SubscriptionEnd) {
			best = &f.ledger[i]
		}
	}
	return best, nil
}

func (f *fakePremiumRepo) IsActive(ctx context.Context, contractorID int64, day time.Time) (bool, error) {
	p, _ := f.LatestCovering(ctx, contractorID, day)
	return p != nil, nil
}

func (f *fakePremiumRepo) TruncateActive(ctx context.Context, contractorID int64, day time.Time) error {
	d := domain.Midnight(day)
	for i := range f.ledger {
		p := &f.ledger[i]
		if p.ContractorID == contractorID && p.PaymentStatus == domain.PaymentStatusSuccess && p.SubscriptionEnd.After(d) {
			p.SubscriptionEnd = d
		}
	}
	return nil
}

func (f *fakePremiumRepo) ProcessPayment(ctx context.Context, contractorID int64, amount float64, start, end time.Time) (*domain.PaymentReceipt, error) {
	anchorsBefore := make(map[int64]int64, len(f.anchors))
	for k, v := range f.anchors {
		anchorsBefore[k] = v
	}
	premiumBefore := f.nextPremiumID

	premiumID, err := f.UpsertSubscription(ctx, contractorID)
	if err != nil {
		return nil, err
	}
	if f.failPayment != nil {
		f.anchors = anchorsBefore
		f.nextPremiumID = premiumBefore
		return nil, f.failPayment
	}
	payment := &domain.PremiumPayment{
		ContractorID:      contractorID,
		PremiumID:         premiumID,
		Amount:            amount,
		PaymentStatus:     domain.PaymentStatusSuccess,
		SubscriptionStart: start,
		SubscriptionEnd:   end,
	}
	if err := f.InsertPayment(ctx, payment); err != nil {
		return nil, err
	}
	return &domain.PaymentReceipt{
		PaymentID:         payment.ID,
		PremiumID:         premiumID,
		Amount:            amount,
		SubscriptionStart: start,
		SubscriptionEnd:   end,
	}, nil
}
