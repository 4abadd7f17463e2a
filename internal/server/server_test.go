package server

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"pgnest/internal/localstore"
	"pgnest/internal/preview"
	"pgnest/internal/seed"
	"pgnest/internal/store"
	"pgnest/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	local := localstore.New(afero.NewMemMapFs(), "/data", logger)
	previews := preview.NewRegistry()

	config := &types.Config{
		ServerPort:      8080,
		ReadTimeoutSec:  10,
		WriteTimeoutSec: 15,
		CookieName:      "pgnest_session",
	}

	repos := Repositories{
		Listings:      store.NewListingRepository(seed.Listings()),
		Wishlist:      store.NewWishlistRepository(seed.WishlistEntries(), seed.WishlistFolders()),
		Documents:     store.NewDocumentRepository(local, seed.Documents(), seed.Agreement(), seed.MoveInChecklist()),
		Bookings:      store.NewBookingRepository(seed.Bookings()),
		Payments:      store.NewPaymentRepository(seed.PaymentHistory(), seed.PendingDues(), seed.PaymentStats()),
		Complaints:    store.NewComplaintRepository(seed.ActiveComplaints(), seed.ResolvedComplaints(), seed.ComplaintCategories(), seed.MaintenanceSchedule()),
		Reviews:       store.NewReviewRepository(seed.Reviews()),
		Notifications: store.NewNotificationRepository(seed.Notifications(), seed.NotificationSettings()),
		Profile:       store.NewProfileRepository(local, previews, seed.Profile(), seed.Verification()),
	}

	svc, err := New(config, logger, repos, previews)
	require.NoError(t, err)
	return svc
}

func doRequest(t *testing.T, svc *Service, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	svc.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestGetListingsWithFilters(t *testing.T) {
	svc := newTestService(t)

	rec := doRequest(t, svc, http.MethodGet, "/api/listings?type=boys&amenity=food&sort=price-low", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[types.ListingsResponse](t, rec)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "Sunrise Men's PG", resp.Listings[0].Name)
	assert.Equal(t, "City View PG", resp.Listings[1].Name)
	assert.Equal(t, types.SortPriceLow, resp.SortBy)
}

func TestGetListingsPriceRange(t *testing.T) {
	svc := newTestService(t)

	rec := doRequest(t, svc, http.MethodGet, "/api/listings?price_min=9000&price_max=10000", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[types.ListingsResponse](t, rec)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Happy Residency", resp.Listings[0].Name)
}

func TestGetListingNotFound(t *testing.T) {
	svc := newTestService(t)

	rec := doRequest(t, svc, http.MethodGet, "/api/listings/999", nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeBody[types.ErrorResponse](t, rec)
	assert.Equal(t, "no data found", resp.Error)
	assert.Equal(t, "/api/listings", resp.BackTo)
}

func TestSessionCookieIsSet(t *testing.T) {
	svc := newTestService(t)

	rec := doRequest(t, svc, http.MethodGet, "/healthz", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "pgnest_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestWishlistCompareFlow(t *testing.T) {
	svc := newTestService(t)

	for _, id := range []string{"w1", "w2", "w3", "w4"} {
		rec := doRequest(t, svc, http.MethodPost, "/api/wishlist/"+id+"/compare", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	// saving a fifth entry and toggling it stays capped at four
	rec := doRequest(t, svc, http.MethodPost, "/api/wishlist/1/save", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(t, svc, http.MethodPost, "/api/wishlist/1/compare", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	list := doRequest(t, svc, http.MethodGet, "/api/wishlist", nil, "")
	resp := decodeBody[types.WishlistResponse](t, list)
	assert.Equal(t, []string{"w1", "w2", "w3", "w4"}, resp.Compare)
	assert.Len(t, resp.Entries, 5)
}

func TestWishlistTagValidation(t *testing.T) {
	svc := newTestService(t)

	form := url.Values{"tag": {""}}
	rec := doRequest(t, svc, http.MethodPost, "/api/wishlist/w1/tag", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeBody[types.ErrorResponse](t, rec)
	assert.Contains(t, resp.FieldErrors, "tag")
}

func multipartUpload(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="` + field + `"; filename="` + filename + `"`}
	header["Content-Type"] = []string{contentType}
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestDocumentUploadAndDownload(t *testing.T) {
	svc := newTestService(t)

	body, contentType := multipartUpload(t, "file", "offer-letter.pdf", "application/pdf", []byte("pdf-bytes"))
	rec := doRequest(t, svc, http.MethodPost, "/api/documents", body, contentType)
	require.Equal(t, http.StatusCreated, rec.Code)

	doc := decodeBody[types.Document](t, rec)
	assert.Equal(t, "offer-letter", doc.Name)

	dl := doRequest(t, svc, http.MethodGet, "/api/documents/"+doc.ID+"/download", nil, "")
	require.Equal(t, http.StatusOK, dl.Code)
	assert.Equal(t, "application/pdf", dl.Header().Get("Content-Type"))
	assert.Equal(t, "pdf-bytes", dl.Body.String())
}

func TestDocumentUploadRejectsWrongType(t *testing.T) {
	svc := newTestService(t)

	body, contentType := multipartUpload(t, "file", "payload.exe", "application/octet-stream", []byte("x"))
	rec := doRequest(t, svc, http.MethodPost, "/api/documents", body, contentType)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeBody[types.ErrorResponse](t, rec)
	assert.Contains(t, resp.FieldErrors, "file")
}

func TestVisitRequestValidation(t *testing.T) {
	svc := newTestService(t)

	form := url.Values{
		"pg_id":      {""},
		"visit_date": {"not-a-date"},
		"full_name":  {"  "},
		"phone":      {"12345"},
	}
	rec := doRequest(t, svc, http.MethodPost, "/api/bookings/visit", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeBody[types.ErrorResponse](t, rec)
	assert.Contains(t, resp.FieldErrors, "pg_id")
	assert.Contains(t, resp.FieldErrors, "visit_date")
	assert.Contains(t, resp.FieldErrors, "full_name")
	assert.Contains(t, resp.FieldErrors, "phone")
}

func TestVisitRequestHappyPath(t *testing.T) {
	svc := newTestService(t)

	form := url.Values{
		"pg_id":      {"1"},
		"visit_date": {"2026-09-15"},
		"full_name":  {"Rahul Kumar"},
		"phone":      {"9876543210"},
		"visitors":   {"2"},
	}
	rec := doRequest(t, svc, http.MethodPost, "/api/bookings/visit", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusCreated, rec.Code)

	booking := decodeBody[types.Booking](t, rec)
	assert.Equal(t, "City View PG", booking.PGName)
	assert.Equal(t, types.BookingStatusPending, booking.Status)
	assert.Equal(t, types.BookingKindVisit, booking.Kind)
}

func TestChangePasswordValidation(t *testing.T) {
	svc := newTestService(t)

	form := url.Values{
		"old_password":     {"old-secret"},
		"new_password":     {"new-secret"},
		"confirm_password": {"different"},
	}
	rec := doRequest(t, svc, http.MethodPost, "/api/settings/password", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeBody[types.ErrorResponse](t, rec)
	assert.Equal(t, "Passwords do not match.", resp.FieldErrors["confirm_password"])

	// every field is required
	rec = doRequest(t, svc, http.MethodPost, "/api/settings/password", strings.NewReader(""), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp = decodeBody[types.ErrorResponse](t, rec)
	assert.Contains(t, resp.FieldErrors, "old_password")
	assert.Contains(t, resp.FieldErrors, "new_password")
	assert.Contains(t, resp.FieldErrors, "confirm_password")
}

func TestChangePasswordHappyPath(t *testing.T) {
	svc := newTestService(t)

	form := url.Values{
		"old_password":     {"old-secret"},
		"new_password":     {"new-secret"},
		"confirm_password": {"new-secret"},
	}
	rec := doRequest(t, svc, http.MethodPost, "/api/settings/password", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusOK, rec.Code)

	notice := decodeBody[types.NoticeResponse](t, rec)
	assert.Equal(t, "Your password has been changed successfully.", notice.Notice)
}

func TestPayDue(t *testing.T) {
	svc := newTestService(t)

	rec := doRequest(t, svc, http.MethodPost, "/api/payments/due-rent/pay", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	payment := decodeBody[types.Payment](t, rec)
	assert.Equal(t, "Current Month Rent", payment.Description)

	// paying again surfaces the missing-data state
	rec = doRequest(t, svc, http.MethodPost, "/api/payments/due-rent/pay", nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeBody[types.ErrorResponse](t, rec)
	assert.Equal(t, "/api/payments", resp.BackTo)
}

func TestComplaintValidationAndRaise(t *testing.T) {
	svc := newTestService(t)

	form := url.Values{
		"category":     {"Water"},
		"sub_category": {"Router issue"},
		"description":  {""},
	}
	rec := doRequest(t, svc, http.MethodPost, "/api/complaints", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeBody[types.ErrorResponse](t, rec)
	assert.Contains(t, resp.FieldErrors, "sub_category")
	assert.Contains(t, resp.FieldErrors, "description")

	form = url.Values{
		"category":     {"Water"},
		"sub_category": {"Leakage"},
		"description":  {"Water leaking from the bathroom ceiling"},
	}
	rec = doRequest(t, svc, http.MethodPost, "/api/complaints", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusCreated, rec.Code)

	complaint := decodeBody[types.Complaint](t, rec)
	assert.Equal(t, types.ComplaintStatusPending, complaint.Status)
	assert.Equal(t, "Leakage", complaint.Title)
}

func TestReviewSubmitValidation(t *testing.T) {
	svc := newTestService(t)

	form := url.Values{
		"pg_id":   {"1"},
		"rating":  {"0"},
		"comment": {"too short"},
	}
	rec := doRequest(t, svc, http.MethodPost, "/api/reviews", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeBody[types.ErrorResponse](t, rec)
	assert.Contains(t, resp.FieldErrors, "rating")

	form = url.Values{
		"pg_id":           {"1"},
		"rating":          {"4"},
		"comment":         {"Great place to stay, friendly warden."},
		"cat_Cleanliness": {"5"},
	}
	rec = doRequest(t, svc, http.MethodPost, "/api/reviews", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusCreated, rec.Code)

	review := decodeBody[types.Review](t, rec)
	assert.Equal(t, "City View PG", review.PGName)
	assert.Equal(t, map[string]int{"Cleanliness": 5}, review.Categories)
}

func TestNotificationsTabAndMarkAll(t *testing.T) {
	svc := newTestService(t)

	rec := doRequest(t, svc, http.MethodGet, "/api/notifications?tab=unread", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[types.NotificationsResponse](t, rec)
	assert.Len(t, resp.Notifications, 3)
	assert.Equal(t, 3, resp.UnreadCount)

	rec = doRequest(t, svc, http.MethodPost, "/api/notifications/read-all", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, svc, http.MethodGet, "/api/notifications?tab=unread", nil, "")
	resp = decodeBody[types.NotificationsResponse](t, rec)
	assert.Empty(t, resp.Notifications)
	assert.Zero(t, resp.UnreadCount)
}

func TestProfileEditSaveFlow(t *testing.T) {
	svc := newTestService(t)

	rec := doRequest(t, svc, http.MethodPost, "/api/profile/edit", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	form := url.Values{
		"first_name":        {"Rohit"},
		"last_name":         {"Kumar"},
		"email":             {"rohit.kumar@email.com"},
		"phone":             {"+91 98765 43210"},
		"dob":               {"15 Aug 1998"},
		"gender":            {"Male"},
		"current_address":   {"Green Valley PG, Kondapur, Hyderabad - 500084"},
		"permanent_address": {"123, Main Street, Delhi - 110001"},
		"emergency_name":    {"Amit Kumar (Father)"},
		"emergency_phone":   {"+91 98765 12345"},
	}
	rec = doRequest(t, svc, http.MethodPost, "/api/profile", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, svc, http.MethodPost, "/api/profile/save", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	saved := decodeBody[types.ProfileResponse](t, rec)
	assert.Equal(t, "Rohit", saved.Profile.FirstName)
	assert.Equal(t, types.EditModeViewing, saved.Mode)

	// saving again without an open draft conflicts
	rec = doRequest(t, svc, http.MethodPost, "/api/profile/save", nil, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSettingsPhotoRoundTrip(t *testing.T) {
	svc := newTestService(t)

	body, contentType := multipartUpload(t, "photo", "me.png", "image/png", []byte("png-bytes"))
	rec := doRequest(t, svc, http.MethodPost, "/api/settings/photo", body, contentType)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[types.SettingsResponse](t, rec)
	require.NotEmpty(t, resp.PhotoURL)

	photo := doRequest(t, svc, http.MethodGet, resp.PhotoURL, nil, "")
	require.Equal(t, http.StatusOK, photo.Code)
	assert.Equal(t, "png-bytes", photo.Body.String())

	rec = doRequest(t, svc, http.MethodPost, "/api/settings/photo/remove", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decodeBody[types.SettingsResponse](t, rec)
	assert.Empty(t, resp.PhotoURL)

	// the revoked preview is gone
	gone := doRequest(t, svc, http.MethodGet, "/api/settings/photo", nil, "")
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestTrailingSlashRedirect(t *testing.T) {
	svc := newTestService(t)

	rec := doRequest(t, svc, http.MethodGet, "/api/listings/", nil, "")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/api/listings", rec.Header().Get("Location"))
}
