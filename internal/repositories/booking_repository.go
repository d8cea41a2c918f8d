package repositories

import (
	"database/sql"

	intconfig "busline/internal/config"
	"busline/internal/domain"
	"busline/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByID returns the booking row with its ticket count.
func (r BookingRepository) GetByID(bookingID int64) (models.Booking, []models.Ticket, error) {
	var out models.Booking
	if bookingID <= 0 {
		return out, nil, domain.ValidationError{Field: "booking_id", Msg: "invalid id"}
	}

	err := r.db().QueryRow(`
		SELECT booking_id, currency, total_amount, COALESCE(booking_status, ''), account_id, operator_id
		FROM booking
		WHERE booking_id = ?`, bookingID).Scan(
		&out.BookingID,
		&out.Currency,
		&out.TotalAmount,
		&out.BookingStatus,
		&out.AccountID,
		&out.OperatorID,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return out, nil, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return out, nil, domain.InternalError{Err: err}
	}

	rows, err := r.db().Query(`
		SELECT ticket_id, serial_number, seat_code, seat_price, ticket_status,
		       COALESCE(qr_code_link, ''), trip_id, fare_id
		FROM ticket
		WHERE booking_id = ?`, bookingID)
	if err != nil {
		return out, nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	tickets := []models.Ticket{}
	for rows.Next() {
		var t models.Ticket
		if err := rows.Scan(
			&t.TicketID,
			&t.SerialNumber,
			&t.SeatCode,
			&t.SeatPrice,
			&t.TicketStatus,
			&t.QRCodeLink,
			&t.TripID,
			&t.FareID,
		); err != nil {
			return out, tickets, domain.InternalError{Err: err}
		}
		t.BookingID = bookingID
		tickets = append(tickets, t)
	}
	return out, tickets, rows.Err()
}
