package store

import (
	"context"
	"sync"

	"pgnest/internal/engine"
	"pgnest/pkg/types"
)

type WishlistRepository struct {
	mu      sync.Mutex
	entries []types.WishlistEntry
	folders []types.WishlistFolder
	compare []string
}

func NewWishlistRepository(entries []types.WishlistEntry, folders []types.WishlistFolder) *WishlistRepository {
	return &WishlistRepository{
		entries: entries,
		folders: folders,
	}
}

// Entries returns the saved listings matching the criteria, plus the
// folder list with live counts and the current compare selection.
func (r *WishlistRepository) Entries(ctx context.Context, c types.FilterCriteria) ([]types.WishlistEntry, []types.WishlistFolder, []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	filtered := engine.ApplyWishlistFilters(r.entries, c)

	folders := make([]types.WishlistFolder, len(r.folders))
	for i, f := range r.folders {
		f.Count = r.countByTagLocked(f.Tag)
		folders[i] = f
	}

	compare := make([]string, len(r.compare))
	copy(compare, r.compare)

	return filtered, folders, compare
}

func (r *WishlistRepository) countByTagLocked(tag string) int {
	if tag == types.FolderAll || tag == "" {
		return len(r.entries)
	}
	n := 0
	for _, e := range r.entries {
		for _, t := range e.Tags {
			if t == tag {
				n++
				break
			}
		}
	}
	return n
}

// Save adds a listing to the wishlist. Saving an already-saved listing
// is a no-op.
func (r *WishlistRepository) Save(ctx context.Context, l types.Listing) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries {
		if e.ID == l.ID {
			return
		}
	}

	r.entries = append(r.entries, types.WishlistEntry{
		Listing: l,
		Tags:    []string{},
		IsSaved: true,
	})
}

// Unsave removes a listing outright; its folder tags are not kept.
func (r *WishlistRepository) Unsave(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			r.removeFromCompareLocked(id)
			return nil
		}
	}
	return types.ErrWishlistEntryMissing
}

// removeFromCompareLocked drops an unsaved listing from the compare
// selection.
func (r *WishlistRepository) removeFromCompareLocked(id string) {
	for i, c := range r.compare {
		if c == id {
			r.compare = append(r.compare[:i], r.compare[i+1:]...)
			return
		}
	}
}

// ToggleTag files an entry into or out of a folder.
func (r *WishlistRepository) ToggleTag(ctx context.Context, id, tag string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].ID == id {
			r.entries[i].Tags = engine.ToggleMembership(r.entries[i].Tags, tag)
			return nil
		}
	}
	return types.ErrWishlistEntryMissing
}

// ToggleCompare flips an entry's comparison selection, honoring the
// selection cap.
func (r *WishlistRepository) ToggleCompare(ctx context.Context, id string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	for _, e := range r.entries {
		if e.ID == id {
			found = true
			break
		}
	}
	if !found {
		return nil, types.ErrWishlistEntryMissing
	}

	r.compare = engine.ToggleCompare(r.compare, id)

	out := make([]string, len(r.compare))
	copy(out, r.compare)
	return out, nil
}
