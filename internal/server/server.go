package server

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"pgnest/internal/preview"
	"pgnest/internal/store"
	"pgnest/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/securecookie"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

type Service struct {
	logger *logrus.Logger
	config *types.Config

	listingRepo      *store.ListingRepository
	wishlistRepo     *store.WishlistRepository
	documentRepo     *store.DocumentRepository
	bookingRepo      *store.BookingRepository
	paymentRepo      *store.PaymentRepository
	complaintRepo    *store.ComplaintRepository
	reviewRepo       *store.ReviewRepository
	notificationRepo *store.NotificationRepository
	profileRepo      *store.ProfileRepository

	previews *preview.Registry
	cookie   *securecookie.SecureCookie

	server *http.Server
}

type Repositories struct {
	Listings      *store.ListingRepository
	Wishlist      *store.WishlistRepository
	Documents     *store.DocumentRepository
	Bookings      *store.BookingRepository
	Payments      *store.PaymentRepository
	Complaints    *store.ComplaintRepository
	Reviews       *store.ReviewRepository
	Notifications *store.NotificationRepository
	Profile       *store.ProfileRepository
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	repos Repositories,
	previews *preview.Registry,
) (*Service, error) {
	mux := flow.New()

	hashKey, _ := base64.StdEncoding.DecodeString(config.CookieHashKey)
	blockKey, _ := base64.StdEncoding.DecodeString(config.CookieBlockKey)

	// unconfigured keys get ephemeral ones; sessions then reset on
	// restart, which is fine for a single-tenant demo
	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(32)
	}
	if len(blockKey) == 0 {
		blockKey = securecookie.GenerateRandomKey(32)
	}

	s := &Service{
		logger: logger,
		config: config,

		listingRepo:      repos.Listings,
		wishlistRepo:     repos.Wishlist,
		documentRepo:     repos.Documents,
		bookingRepo:      repos.Bookings,
		paymentRepo:      repos.Payments,
		complaintRepo:    repos.Complaints,
		reviewRepo:       repos.Reviews,
		notificationRepo: repos.Notifications,
		profileRepo:      repos.Profile,

		previews: previews,
		cookie:   securecookie.New(hashKey, blockKey),

		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)
	r.Use(s.TenantSession)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc("/api/listings", s.handleGetListings, http.MethodGet)
	r.HandleFunc("/api/listings/:id", s.handleGetListing, http.MethodGet)

	r.HandleFunc("/api/wishlist", s.handleGetWishlist, http.MethodGet)
	r.HandleFunc("/api/wishlist/:id/save", s.handlePostWishlistSave, http.MethodPost)
	r.HandleFunc("/api/wishlist/:id/unsave", s.handlePostWishlistUnsave, http.MethodPost)
	r.HandleFunc("/api/wishlist/:id/tag", s.handlePostWishlistTag, http.MethodPost)
	r.HandleFunc("/api/wishlist/:id/compare", s.handlePostWishlistCompare, http.MethodPost)

	r.HandleFunc("/api/documents", s.handleGetDocuments, http.MethodGet)
	r.HandleFunc("/api/documents", s.handlePostDocumentUpload, http.MethodPost)
	r.HandleFunc("/api/documents/:id/download", s.handleGetDocumentDownload, http.MethodGet)
	r.HandleFunc("/api/documents/:id/delete", s.handlePostDocumentDelete, http.MethodPost)
	r.HandleFunc("/api/documents/photo", s.handlePostProfilePhoto, http.MethodPost)
	r.HandleFunc("/api/documents/photo/remove", s.handlePostProfilePhotoRemove, http.MethodPost)

	r.HandleFunc("/api/profile", s.handleGetProfile, http.MethodGet)
	r.HandleFunc("/api/profile/edit", s.handlePostProfileEdit, http.MethodPost)
	r.HandleFunc("/api/profile", s.handlePostProfileDraft, http.MethodPost)
	r.HandleFunc("/api/profile/save", s.handlePostProfileSave, http.MethodPost)
	r.HandleFunc("/api/profile/cancel", s.handlePostProfileCancel, http.MethodPost)

	r.HandleFunc("/api/settings", s.handleGetSettings, http.MethodGet)
	r.HandleFunc("/api/settings", s.handlePostSettings, http.MethodPost)
	r.HandleFunc("/api/settings/reset", s.handlePostSettingsReset, http.MethodPost)
	r.HandleFunc("/api/settings/password", s.handlePostChangePassword, http.MethodPost)
	r.HandleFunc("/api/settings/photo", s.handlePostSettingsPhoto, http.MethodPost)
	r.HandleFunc("/api/settings/photo", s.handleGetSettingsPhoto, http.MethodGet)
	r.HandleFunc("/api/settings/photo/remove", s.handlePostSettingsPhotoRemove, http.MethodPost)

	r.HandleFunc("/api/bookings", s.handleGetBookings, http.MethodGet)
	r.HandleFunc("/api/bookings/visit", s.handlePostVisitRequest, http.MethodPost)

	r.HandleFunc("/api/payments", s.handleGetPayments, http.MethodGet)
	r.HandleFunc("/api/payments/:id/pay", s.handlePostPayDue, http.MethodPost)

	r.HandleFunc("/api/complaints", s.handleGetComplaints, http.MethodGet)
	r.HandleFunc("/api/complaints", s.handlePostComplaint, http.MethodPost)

	r.HandleFunc("/api/reviews", s.handleGetReviews, http.MethodGet)
	r.HandleFunc("/api/reviews", s.handlePostReview, http.MethodPost)
	r.HandleFunc("/api/reviews/:id/helpful", s.handlePostReviewHelpful, http.MethodPost)
	r.HandleFunc("/api/reviews/:id/delete", s.handlePostReviewDelete, http.MethodPost)

	r.HandleFunc("/api/notifications", s.handleGetNotifications, http.MethodGet)
	r.HandleFunc("/api/notifications/:id/read", s.handlePostNotificationRead, http.MethodPost)
	r.HandleFunc("/api/notifications/read-all", s.handlePostNotificationsReadAll, http.MethodPost)
	r.HandleFunc("/api/notifications/:id/delete", s.handlePostNotificationDelete, http.MethodPost)
	r.HandleFunc("/api/notifications/settings/:id/toggle", s.handlePostNotificationSettingToggle, http.MethodPost)
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
