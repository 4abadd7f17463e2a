package types

import "errors"

var (
	ErrListingNotFound      = errors.New("listing not found")
	ErrWishlistEntryMissing = errors.New("wishlist entry not found")
	ErrDocumentNotFound     = errors.New("document not found")
	ErrNoFileAttached       = errors.New("no file attached for this document")
	ErrDueNotFound          = errors.New("pending due not found")
	ErrReviewNotFound       = errors.New("review not found")
	ErrNotificationMissing  = errors.New("notification not found")
	ErrNotEditing           = errors.New("profile is not in edit mode")
)
