package store

import (
	"context"
	"sync"
	"time"

	"pgnest/internal/utils"
	"pgnest/pkg/types"
)

type PaymentRepository struct {
	mu      sync.Mutex
	history []types.Payment
	dues    []types.PendingDue
	stats   types.PaymentStats
}

func NewPaymentRepository(history []types.Payment, dues []types.PendingDue, stats types.PaymentStats) *PaymentRepository {
	return &PaymentRepository{
		history: history,
		dues:    dues,
		stats:   stats,
	}
}

// History returns the transaction list, newest first.
func (r *PaymentRepository) History(ctx context.Context) []types.Payment {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]types.Payment, len(r.history))
	copy(out, r.history)
	return out
}

func (r *PaymentRepository) PendingDues(ctx context.Context) []types.PendingDue {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]types.PendingDue, len(r.dues))
	copy(out, r.dues)
	return out
}

func (r *PaymentRepository) Stats(ctx context.Context) types.PaymentStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// Pay settles a pending due: the due is removed, a paid debit is
// prepended to the history, and the dues total drops accordingly.
func (r *PaymentRepository) Pay(ctx context.Context, dueID string) (*types.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, due := range r.dues {
		if due.ID != dueID {
			continue
		}

		r.dues = append(r.dues[:i], r.dues[i+1:]...)

		payment := types.Payment{
			ID:          utils.NanoIDSize(12),
			Description: due.Label,
			Amount:      due.Amount,
			Date:        utils.FormatDate(time.Now()),
			Status:      types.PaymentStatusPaid,
			Direction:   types.PaymentDebit,
		}
		r.history = append([]types.Payment{payment}, r.history...)

		r.stats.CurrentDues -= due.Amount
		if r.stats.CurrentDues < 0 {
			r.stats.CurrentDues = 0
		}
		r.stats.TotalPaid += due.Amount

		return &payment, nil
	}

	return nil, types.ErrDueNotFound
}
