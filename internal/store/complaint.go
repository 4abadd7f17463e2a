package store

import (
	"context"
	"sync"

	"pgnest/internal/utils"
	"pgnest/pkg/types"
)

type ComplaintRepository struct {
	mu          sync.Mutex
	active      []types.Complaint
	resolved    []types.Complaint
	categories  map[string][]string
	maintenance []types.MaintenanceSlot
}

func NewComplaintRepository(active, resolved []types.Complaint, categories map[string][]string, maintenance []types.MaintenanceSlot) *ComplaintRepository {
	return &ComplaintRepository{
		active:      active,
		resolved:    resolved,
		categories:  categories,
		maintenance: maintenance,
	}
}

func (r *ComplaintRepository) Active(ctx context.Context) []types.Complaint {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]types.Complaint, len(r.active))
	copy(out, r.active)
	return out
}

func (r *ComplaintRepository) Resolved(ctx context.Context) []types.Complaint {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]types.Complaint, len(r.resolved))
	copy(out, r.resolved)
	return out
}

func (r *ComplaintRepository) Stats(ctx context.Context) types.ComplaintStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	var stats types.ComplaintStats
	for _, c := range r.active {
		switch c.Status {
		case types.ComplaintStatusPending:
			stats.Pending++
		case types.ComplaintStatusInProgress:
			stats.InProgress++
		case types.ComplaintStatusEscalated:
			stats.Escalated++
		}
	}
	stats.Resolved = len(r.resolved)
	return stats
}

// Categories returns the raise-complaint category map.
func (r *ComplaintRepository) Categories(ctx context.Context) map[string][]string {
	out := make(map[string][]string, len(r.categories))
	for k, v := range r.categories {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func (r *ComplaintRepository) Maintenance(ctx context.Context) []types.MaintenanceSlot {
	out := make([]types.MaintenanceSlot, len(r.maintenance))
	copy(out, r.maintenance)
	return out
}

// ValidSubCategory reports whether sub belongs to category.
func (r *ComplaintRepository) ValidSubCategory(category, sub string) bool {
	for _, s := range r.categories[category] {
		if s == sub {
			return true
		}
	}
	return false
}

// Raise files a new complaint in pending state at the top of the
// active list.
func (r *ComplaintRepository) Raise(ctx context.Context, req types.ComplaintRequest) *types.Complaint {
	complaint := types.Complaint{
		ID:          utils.NanoIDSize(12),
		Category:    req.Category,
		Title:       req.SubCategory,
		Description: req.Description,
		Status:      types.ComplaintStatusPending,
		Priority:    types.PriorityMedium,
		CreatedAt:   "just now",
		AssignedTo:  "Maintenance",
		Progress:    0,
	}

	r.mu.Lock()
	r.active = append([]types.Complaint{complaint}, r.active...)
	r.mu.Unlock()

	return &complaint
}
