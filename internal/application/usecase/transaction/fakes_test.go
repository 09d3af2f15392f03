package transaction

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/finance-tracker/reports-api/internal/domain/entity"
	domainerror "github.com/finance-tracker/reports-api/internal/domain/error"
)

type fakeTransactionRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.Transaction
}

func newFakeTransactionRepo(txns ...*entity.Transaction) *fakeTransactionRepo {
	repo := &fakeTransactionRepo{items: make(map[uuid.UUID]*entity.Transaction)}
	for _, t := range txns {
		repo.items[t.ID] = t
	}
	return repo
}

func (r *fakeTransactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[t.ID] = t
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.items[id]; ok {
		return t, nil
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	return r.filter(func(t *entity.Transaction) bool { return t.UserID == userID }), nil
}

func (r *fakeTransactionRepo) FindByPeriod(_ context.Context, userID uuid.UUID, month, year int) ([]*entity.Transaction, error) {
	return r.filter(func(t *entity.Transaction) bool {
		return t.UserID == userID && int(t.Date.Month()) == month && t.Date.Year() == year
	}), nil
}

func (r *fakeTransactionRepo) filter(keep func(*entity.Transaction) bool) []*entity.Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Transaction
	for _, t := range r.items {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (r *fakeTransactionRepo) Update(_ context.Context, t *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[t.ID] = t
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	delete(r.items, id)
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []entity.LedgerEvent
	fail   bool
}

func (p *recordingPublisher) Publish(_ context.Context, event entity.LedgerEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("broker unavailable")
	}
	p.events = append(p.events, event)
	return nil
}

func txnCode(err error) domainerror.TransactionErrorCode {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		return txnErr.Code
	}
	return ""
}
