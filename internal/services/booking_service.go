package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"busline/internal/cache"
	intconfig "busline/internal/config"
	"busline/internal/domain"
	"busline/internal/domain/models"
	"busline/internal/repositories"
	"busline/internal/seatmap"
	"busline/internal/utils"
)

// BookingService creates bookings with their tickets. The seat-conflict
// check and every insert run inside one transaction, so two sessions racing
// for the same seat cannot both come out with an Issued ticket.
type BookingService struct {
	DB          *sql.DB
	TripRepo    repositories.TripRepository
	AccountRepo repositories.AccountRepository
	SeatCache   cache.SeatCache
	RequestID   string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) trips() repositories.TripRepository {
	if s.TripRepo.DB != nil {
		return s.TripRepo
	}
	return repositories.TripRepository{DB: s.db()}
}

func (s BookingService) accounts() repositories.AccountRepository {
	if s.AccountRepo.DB != nil {
		return s.AccountRepo
	}
	return repositories.AccountRepository{DB: s.db()}
}

// CreateBooking validates the request, rejects seats that already carry an
// active ticket on the trip, and writes booking plus one ticket per seat.
func (s BookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (models.BookingResult, error) {
	var out models.BookingResult

	if err := validateBookingRequest(req); err != nil {
		return out, err
	}

	seatCodes := normalizeSeatCodes(req.SeatCodes)
	if len(seatCodes) == 0 {
		return out, domain.ValidationError{Field: "seat_codes", Msg: "seat_codes must be a non-empty array"}
	}

	exists, err := s.accounts().ExistsByID(req.AccountID)
	if err != nil {
		return out, err
	}
	if !exists {
		return out, domain.ValidationError{Field: "account_id", Msg: "unknown account"}
	}

	trip, err := s.trips().GetTripCore(req.TripID)
	if err != nil {
		return out, err
	}

	if invalid := invalidSeatCodes(seatCodes, trip.VehicleType, trip.Capacity); len(invalid) > 0 {
		return out, domain.ValidationError{
			Field: "seat_codes",
			Msg:   fmt.Sprintf("invalid seat codes: %s", strings.Join(invalid, ", ")),
		}
	}

	db := s.db()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return out, domain.InternalError{Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	var (
		fareRouteID int64
		seatPrice   int64
	)
	err = tx.QueryRowContext(ctx, `
		SELECT route_id, seat_price
		FROM fare
		WHERE fare_id = ?`, req.FareID).Scan(&fareRouteID, &seatPrice)
	if err != nil {
		if err == sql.ErrNoRows {
			return out, domain.NotFoundError{Resource: "fare", Err: err}
		}
		return out, domain.InternalError{Err: err}
	}
	if fareRouteID != trip.RouteID {
		return out, domain.ValidationError{Field: "fare_id", Msg: "fare does not belong to the trip's route"}
	}

	taken, err := takenSeats(ctx, tx, req.TripID, seatCodes)
	if err != nil {
		return out, err
	}
	if len(taken) > 0 {
		return out, domain.ConflictError{
			Resource: "seat",
			Msg:      "seat_already_taken",
			Details:  taken,
		}
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO booking (currency, total_amount, booking_status, account_id, operator_id)
		VALUES (?, 0, 'Confirmed', ?, ?)`,
		req.Currency, req.AccountID, req.OperatorID)
	if err != nil {
		return out, domain.InternalError{Err: err}
	}
	bookingID, err := res.LastInsertId()
	if err != nil {
		return out, domain.InternalError{Err: err}
	}

	ticketIDs := make([]int64, 0, len(seatCodes))
	serials := make([]models.TicketSerial, 0, len(seatCodes))
	for _, seat := range seatCodes {
		serial := newTicketSerial()
		res, err := tx.ExecContext(ctx, `
			INSERT INTO ticket (trip_id, account_id, booking_id, fare_id, serial_number,
			                    qr_code_link, ticket_status, seat_price, seat_code)
			VALUES (?, ?, ?, ?, ?, NULL, ?, ?, ?)`,
			req.TripID, req.AccountID, bookingID, req.FareID, serial, models.TicketStatusIssued, seatPrice, seat)
		if err != nil {
			return out, domain.InternalError{Err: err}
		}
		ticketID, err := res.LastInsertId()
		if err != nil {
			return out, domain.InternalError{Err: err}
		}
		ticketIDs = append(ticketIDs, ticketID)
		serials = append(serials, models.TicketSerial{TicketID: ticketID, SerialNumber: serial})
	}

	total := seatPrice * int64(len(seatCodes))
	if _, err := tx.ExecContext(ctx, `
		UPDATE booking SET total_amount = ? WHERE booking_id = ?`, total, bookingID); err != nil {
		return out, domain.InternalError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		return out, domain.InternalError{Err: err}
	}

	if s.SeatCache != nil {
		if err := s.SeatCache.InvalidateTrip(ctx, req.TripID); err != nil {
			utils.LogEvent(s.RequestID, "booking", "cache_invalidate", fmt.Sprintf("trip_id=%d err=%v", req.TripID, err))
		}
	}

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("booking_id=%d trip_id=%d seats=%d", bookingID, req.TripID, len(seatCodes)))

	out = models.BookingResult{
		BookingID:     bookingID,
		SeatCodes:     seatCodes,
		TicketIDs:     ticketIDs,
		TicketSerials: serials,
		Currency:      req.Currency,
		TotalAmount:   total,
	}
	return out, nil
}

func validateBookingRequest(req models.BookingRequest) error {
	switch {
	case strings.TrimSpace(req.Currency) == "":
		return domain.ValidationError{Field: "currency", Msg: "missing_field"}
	case req.AccountID <= 0:
		return domain.ValidationError{Field: "account_id", Msg: "missing_field"}
	case strings.TrimSpace(req.OperatorID) == "":
		return domain.ValidationError{Field: "operator_id", Msg: "missing_field"}
	case req.TripID <= 0:
		return domain.ValidationError{Field: "trip_id", Msg: "missing_field"}
	case req.FareID <= 0:
		return domain.ValidationError{Field: "fare_id", Msg: "missing_field"}
	case len(req.SeatCodes) == 0:
		return domain.ValidationError{Field: "seat_codes", Msg: "missing_field"}
	}
	return nil
}

// normalizeSeatCodes trims, upper-cases, and de-duplicates while keeping
// the caller's order.
func normalizeSeatCodes(raw []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(raw))
	for _, code := range raw {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	return out
}

// invalidSeatCodes rejects codes that the vehicle's generated layout cannot
// contain, so typos fail fast instead of producing orphan tickets.
func invalidSeatCodes(codes []string, vehicleType string, capacity int) []string {
	layout := seatmap.Generate(seatmap.ParseVehicleType(vehicleType), capacity)
	known := map[string]bool{}
	for _, code := range layout.Codes() {
		known[code] = true
	}
	invalid := []string{}
	for _, code := range codes {
		if !known[code] {
			invalid = append(invalid, code)
		}
	}
	return invalid
}

func takenSeats(ctx context.Context, tx *sql.Tx, tripID int64, seatCodes []string) ([]string, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(seatCodes)), ",")
	args := make([]any, 0, len(seatCodes)+1)
	args = append(args, tripID)
	for _, code := range seatCodes {
		args = append(args, code)
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT seat_code
		FROM ticket
		WHERE trip_id = ?
		  AND seat_code IN (`+placeholders+`)
		  AND ticket_status IN ('Issued', 'Used')`, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	taken := []string{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return taken, domain.InternalError{Err: err}
		}
		taken = append(taken, code)
	}
	return taken, rows.Err()
}

// newTicketSerial produces the printed serial number. The original schema
// filled this from a trigger; generating it app-side keeps the insert self
// contained.
func newTicketSerial() string {
	id := uuid.New()
	return "TKT-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:12])
}
