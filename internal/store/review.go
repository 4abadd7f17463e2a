package store

import (
	"context"
	"sync"
	"time"

	"pgnest/internal/utils"
	"pgnest/pkg/types"
)

type ReviewRepository struct {
	mu      sync.Mutex
	reviews []types.Review
}

func NewReviewRepository(seeded []types.Review) *ReviewRepository {
	return &ReviewRepository{reviews: seeded}
}

func (r *ReviewRepository) Reviews(ctx context.Context) []types.Review {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]types.Review, len(r.reviews))
	copy(out, r.reviews)
	return out
}

// Submit publishes a review at the top of the tenant's list. Aspect
// ratings left at zero are dropped.
func (r *ReviewRepository) Submit(ctx context.Context, req types.ReviewRequest, l types.Listing) *types.Review {
	categories := make(map[string]int)
	for label, score := range req.Categories {
		if score > 0 {
			categories[label] = score
		}
	}

	photos := req.Photos
	if photos == nil {
		photos = []string{}
	}

	review := types.Review{
		ID:         "r-" + utils.NanoIDSize(8),
		PGID:       l.ID,
		PGName:     l.Name,
		Rating:     req.Rating,
		Date:       utils.FormatDate(time.Now()),
		Comment:    req.Comment,
		Helpful:    0,
		Categories: categories,
		Photos:     photos,
	}

	r.mu.Lock()
	r.reviews = append([]types.Review{review}, r.reviews...)
	r.mu.Unlock()

	return &review
}

// MarkHelpful bumps a review's helpful count.
func (r *ReviewRepository) MarkHelpful(ctx context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.reviews {
		if r.reviews[i].ID == id {
			r.reviews[i].Helpful++
			return r.reviews[i].Helpful, nil
		}
	}
	return 0, types.ErrReviewNotFound
}

// Delete removes one of the tenant's reviews.
func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.reviews {
		if r.reviews[i].ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return types.ErrReviewNotFound
}
