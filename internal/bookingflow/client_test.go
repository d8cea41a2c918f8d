package bookingflow

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"busline/internal/domain"
	"busline/internal/domain/models"
)

func sampleBookingRequest() models.BookingRequest {
	return models.BookingRequest{
		Currency:   "VND",
		AccountID:  7,
		OperatorID: "OP01",
		TripID:     12,
		FareID:     3,
		SeatCodes:  []string{"A1"},
	}
}

func TestFetchTripNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/schedule/trips/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "trip not found"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.FetchTrip(context.Background(), 999)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestFetchBookedSeatsFailOpen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadGateway, map[string]any{"error": "upstream down"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	booked, err := client.FetchBookedSeats(context.Background(), 12)
	if err == nil {
		t.Fatal("expected error to be reported")
	}
	if booked == nil {
		t.Fatal("expected a usable empty set, got nil")
	}
	if len(booked) != 0 {
		t.Fatalf("expected empty set, got %v", booked)
	}
}

func TestFetchBookedSeatsNormalizesCodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"booked_seats": []string{" a1 ", "B2"}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	booked, err := client.FetchBookedSeats(context.Background(), 12)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !booked["A1"] || !booked["B2"] {
		t.Fatalf("expected normalized codes A1 and B2, got %v", booked)
	}
}

func TestSubmitBookingAttachesBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusCreated, map[string]any{"booking_id": 1})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, loggedInStore(t))
	if _, err := client.SubmitBooking(context.Background(), sampleBookingRequest()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestSubmitBookingNonJSONFailureBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	_, err := client.SubmitBooking(context.Background(), sampleBookingRequest())
	if !IsServerRejected(err) {
		t.Fatalf("expected ServerRejectedError, got %v", err)
	}
	// No server message available; the generic fallback applies.
	if got := err.Error(); got != "booking failed (status 502)" {
		t.Fatalf("expected generic fallback message, got %q", got)
	}
}

func TestDecodeServerMessagePrefersError(t *testing.T) {
	if got := decodeServerMessage([]byte(`{"error":"seat taken","message":"other"}`)); got != "seat taken" {
		t.Fatalf("expected error field preferred, got %q", got)
	}
	if got := decodeServerMessage([]byte(`{"message":"only message"}`)); got != "only message" {
		t.Fatalf("expected message fallback, got %q", got)
	}
	if got := decodeServerMessage([]byte(`not json`)); got != "" {
		t.Fatalf("expected empty for non-JSON body, got %q", got)
	}
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "nested", "session.json"))

	if s := store.Load(); s.Authenticated() {
		t.Fatal("missing file must yield an unauthenticated session")
	}

	saved := AuthSession{Token: "tok"}
	saved.User.AccountID = 42
	if err := store.Save(saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := store.Load()
	if !loaded.Authenticated() {
		t.Fatal("expected authenticated session after save")
	}
	if loaded.User.AccountID != 42 {
		t.Fatalf("expected account 42, got %d", loaded.User.AccountID)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if s := store.Load(); s.Authenticated() {
		t.Fatal("expected unauthenticated session after clear")
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear must be a no-op, got %v", err)
	}
}

func TestSessionStoreNilSafe(t *testing.T) {
	var store *SessionStore
	if s := store.Load(); s.Authenticated() {
		t.Fatal("nil store must load an empty session")
	}
	if err := store.Save(AuthSession{Token: "x"}); err != nil {
		t.Fatalf("nil store save must be a no-op, got %v", err)
	}
}
