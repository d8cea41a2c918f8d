package bookingflow

import (
	"context"
	"strings"
	"sync"

	"busline/internal/domain/models"
	"busline/internal/seatmap"
)

const bookingCurrency = "VND"

// TripView holds everything one open booking view owns: the fetched trip,
// the booked-seat overlay, and the in-progress selection. The view is meant
// for a single user on a single trip; the submit guard only protects against
// double-clicks, not against other sessions (the server arbitrates those).
type TripView struct {
	client *Client

	mu         sync.Mutex
	trip       *models.Trip
	layout     seatmap.Layout
	booked     map[string]bool
	selection  *Selection
	submitting bool
}

func NewTripView(client *Client) *TripView {
	return &TripView{
		client:    client,
		booked:    map[string]bool{},
		selection: NewSelection(),
	}
}

// Open loads the trip and overlays the booked seats. The booked-seat fetch
// is fail-open: its error is returned for display while the view stays
// usable with an empty overlay. A trip fetch failure is fatal to the view.
func (v *TripView) Open(ctx context.Context, tripID int64) error {
	trip, err := v.client.FetchTrip(ctx, tripID)
	if err != nil {
		return err
	}

	booked, overlayErr := v.client.FetchBookedSeats(ctx, tripID)

	v.mu.Lock()
	v.trip = trip
	v.layout = seatmap.Generate(seatmap.ParseVehicleType(trip.VehicleType), trip.Capacity)
	v.booked = booked
	v.selection.Reset()
	v.mu.Unlock()

	return overlayErr
}

// Trip returns the currently loaded trip, nil before Open succeeds.
func (v *TripView) Trip() *models.Trip {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.trip
}

// Layout returns the generated seat grid for rendering.
func (v *TripView) Layout() seatmap.Layout {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.layout
}

// Toggle flips a seat in the selection; booked seats are a no-op.
func (v *TripView) Toggle(code string) {
	code = strings.ToUpper(strings.TrimSpace(code))
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selection.Toggle(code, v.booked)
}

// Classify derives the display status of one seat code.
func (v *TripView) Classify(code string) seatmap.Status {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selection.Classify(code, v.booked)
}

// SelectedSeats returns the selection in insertion order.
func (v *TripView) SelectedSeats() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selection.Codes()
}

// TotalPrice is the running total for the current selection.
func (v *TripView) TotalPrice() int64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.trip == nil {
		return 0
	}
	return v.selection.TotalPrice(v.trip.Price)
}

// Submit runs the booking submission protocol:
//
//  1. local preconditions (authenticated account, non-empty selection,
//     resolvable fare), all checked before any network call;
//  2. POST the booking with the selected seats in insertion order;
//  3. on success, optimistically decrement the trip's available-seat count
//     (clamped at zero), merge the confirmed seats into the booked overlay,
//     and reset the selection;
//  4. on rejection or network failure, keep the selection intact so the
//     user can adjust and retry by hand.
//
// A second Submit while one is in flight fails with ErrSubmitInFlight.
func (v *TripView) Submit(ctx context.Context) (*models.BookingResult, error) {
	v.mu.Lock()
	if v.submitting {
		v.mu.Unlock()
		return nil, ErrSubmitInFlight
	}

	session := v.client.Session.Load()
	if !session.Authenticated() {
		v.mu.Unlock()
		return nil, ErrAuthRequired
	}

	seats, err := v.selection.Confirm()
	if err != nil {
		v.mu.Unlock()
		return nil, err
	}

	trip := v.trip
	if trip == nil || trip.FareID <= 0 {
		v.mu.Unlock()
		return nil, ErrMissingFare
	}

	v.submitting = true
	v.mu.Unlock()

	defer func() {
		v.mu.Lock()
		v.submitting = false
		v.mu.Unlock()
	}()

	result, err := v.client.SubmitBooking(ctx, models.BookingRequest{
		Currency:   bookingCurrency,
		AccountID:  session.User.AccountID,
		OperatorID: trip.OperatorID,
		TripID:     trip.TripID,
		FareID:     trip.FareID,
		SeatCodes:  seats,
	})
	if err != nil {
		return nil, err
	}

	if result.TotalAmount == 0 {
		result.TotalAmount = trip.Price * int64(len(seats))
	}

	v.mu.Lock()
	trip.AvailableSeats -= len(seats)
	if trip.AvailableSeats < 0 {
		trip.AvailableSeats = 0
	}
	for _, code := range seats {
		v.booked[code] = true
	}
	v.selection.Reset()
	v.mu.Unlock()

	// Best-effort overlay refresh; the merged local set already covers the
	// seats we just booked, so a failure here is not surfaced.
	if booked, err := v.client.FetchBookedSeats(ctx, trip.TripID); err == nil {
		v.mu.Lock()
		v.booked = booked
		v.mu.Unlock()
	}

	return result, nil
}

// RefreshAvailability re-fetches the booked overlay, fail-open as in Open.
func (v *TripView) RefreshAvailability(ctx context.Context) error {
	v.mu.Lock()
	trip := v.trip
	v.mu.Unlock()
	if trip == nil {
		return nil
	}
	booked, err := v.client.FetchBookedSeats(ctx, trip.TripID)
	v.mu.Lock()
	v.booked = booked
	v.mu.Unlock()
	return err
}
