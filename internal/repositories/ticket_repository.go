package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "busline/internal/config"
	"busline/internal/domain"
	"busline/internal/domain/models"
	"busline/internal/utils"
)

type TicketRepository struct {
	DB *sql.DB
}

func (r TicketRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// TripExists guards the booked-seats endpoint's 404.
func (r TicketRepository) TripExists(tripID int64) (bool, error) {
	var count int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM trip WHERE trip_id = ?`, tripID).Scan(&count)
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	return count > 0, nil
}

// ListBookedSeats returns seat codes with active tickets on a trip.
func (r TicketRepository) ListBookedSeats(tripID int64) ([]string, error) {
	rows, err := r.db().Query(`
		SELECT seat_code
		FROM ticket
		WHERE trip_id = ?
		  AND ticket_status IN ('Issued', 'Used')`, tripID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return out, domain.InternalError{Err: err}
		}
		out = append(out, code)
	}
	return out, rows.Err()
}

// TripCapacity reads the bus capacity behind a trip; zero when unknown.
func (r TicketRepository) TripCapacity(tripID int64) (int, error) {
	var capacity sql.NullInt64
	err := r.db().QueryRow(`
		SELECT b.capacity
		FROM trip t
		JOIN bus b ON t.bus_id = b.bus_id
		WHERE t.trip_id = ?`, tripID).Scan(&capacity)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, domain.NotFoundError{Resource: "trip", Err: err}
		}
		return 0, domain.InternalError{Err: err}
	}
	return int(capacity.Int64), nil
}

// ListByAccount returns a user's full purchase history, newest trips first.
func (r TicketRepository) ListByAccount(accountID int64) ([]models.TicketHistoryItem, error) {
	if accountID <= 0 {
		return nil, domain.ValidationError{Field: "account_id", Msg: "invalid id"}
	}

	rows, err := r.db().Query(`
		SELECT
			t.ticket_id,
			t.booking_id,
			t.trip_id,
			t.seat_code,
			t.serial_number,
			t.seat_price,
			tr.service_date,
			tr.arrival_datetime,
			tr.trip_status,
			b.vehicle_type,
			b.plate_number,
			o.brand_name,
			dep.city,
			arr.city
		FROM ticket t
		JOIN trip tr ON t.trip_id = tr.trip_id
		JOIN booking bk ON t.booking_id = bk.booking_id
		JOIN bus b ON tr.bus_id = b.bus_id
		JOIN routetrip rt ON tr.route_id = rt.route_id
		JOIN station dep ON rt.station_id = dep.station_id
		LEFT JOIN station arr ON rt.arrival_station = arr.station_id
		JOIN operator o ON bk.operator_id = o.operator_id
		WHERE t.account_id = ?
		ORDER BY tr.service_date DESC`, accountID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.TicketHistoryItem{}
	for rows.Next() {
		var (
			item                     models.TicketHistoryItem
			ticketID, bookingID      int64
			serviceDate, arrivalTime sql.NullTime
			tripStatus               string
			arrCity                  sql.NullString
		)
		if err := rows.Scan(
			&ticketID,
			&bookingID,
			&item.TripID,
			&item.SeatCode,
			&item.SerialNumber,
			&item.Price,
			&serviceDate,
			&arrivalTime,
			&tripStatus,
			&item.VehicleType,
			&item.PlateNumber,
			&item.Operator,
			&item.Route,
			&arrCity,
		); err != nil {
			return out, domain.InternalError{Err: err}
		}
		item.TicketRef = fmt.Sprintf("TK%03d", ticketID)
		item.BookingRef = fmt.Sprintf("BK%05d", bookingID)
		if arrCity.Valid && arrCity.String != "" {
			item.Route = item.Route + " -> " + arrCity.String
		}
		if serviceDate.Valid {
			item.DepartureDate = utils.FormatDateTime(serviceDate.Time)
		}
		if arrivalTime.Valid {
			item.ArrivalDate = utils.FormatDateTime(arrivalTime.Time)
		}
		item.Status = displayTicketStatus(tripStatus)
		out = append(out, item)
	}
	return out, rows.Err()
}

// displayTicketStatus maps the trip lifecycle onto the history labels the
// profile page shows.
func displayTicketStatus(tripStatus string) string {
	switch tripStatus {
	case "Cancelled":
		return "Cancelled"
	case "Departed":
		return "In Use"
	case "Arrived":
		return "Completed"
	default:
		return "Not Used"
	}
}

// Lookup finds a ticket by its serial number plus the holder's phone. The
// leading zero of local phone numbers is tolerated on both sides.
func (r TicketRepository) Lookup(serialNumber, phone string) (models.TicketLookup, error) {
	var out models.TicketLookup

	serialNumber = strings.TrimSpace(serialNumber)
	phone = strings.TrimSpace(phone)
	phone = strings.TrimPrefix(phone, "0")
	if serialNumber == "" || phone == "" {
		return out, domain.ValidationError{Field: "serial_number", Msg: "serial number and phone are required"}
	}

	var (
		serviceDate sql.NullTime
		duration    sql.NullString
		qrLink      sql.NullString
	)
	err := r.db().QueryRow(`
		SELECT
			t.ticket_id,
			t.serial_number,
			t.seat_code,
			t.seat_price,
			t.ticket_status,
			t.qr_code_link,
			t.booking_id,
			tr.trip_id,
			tr.service_date,
			tr.trip_status,
			rt.route_id,
			COALESCE(rt.distance, 0),
			rt.default_duration_time,
			b.plate_number,
			b.vehicle_type,
			b.capacity,
			a.phone,
			a.email,
			s1.station_name,
			s1.city
		FROM ticket t
		JOIN trip tr ON t.trip_id = tr.trip_id
		JOIN routetrip rt ON tr.route_id = rt.route_id
		JOIN bus b ON tr.bus_id = b.bus_id
		JOIN account a ON t.account_id = a.account_id
		JOIN station s1 ON rt.station_id = s1.station_id
		WHERE t.serial_number = ?
		  AND (a.phone = ? OR a.phone = CONCAT('0', ?))`,
		serialNumber, phone, phone).Scan(
		&out.TicketID,
		&out.SerialNumber,
		&out.SeatCode,
		&out.SeatPrice,
		&out.TicketStatus,
		&qrLink,
		&out.BookingID,
		&out.TripID,
		&serviceDate,
		&out.TripStatus,
		&out.RouteID,
		&out.Distance,
		&duration,
		&out.PlateNumber,
		&out.VehicleType,
		&out.Capacity,
		&out.Phone,
		&out.Email,
		&out.DepartureStation,
		&out.DepartureCity,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return out, domain.NotFoundError{Resource: "ticket", Err: err}
		}
		return out, domain.InternalError{Err: err}
	}

	out.QRCodeLink = qrLink.String
	out.Duration = utils.FormatDuration(duration.String)
	if serviceDate.Valid {
		out.ServiceDate = utils.FormatDateTime(serviceDate.Time)
	}
	return out, nil
}

// GetByID loads one ticket with its lookup context for document rendering.
func (r TicketRepository) GetByID(ticketID int64) (models.TicketLookup, error) {
	var out models.TicketLookup
	if ticketID <= 0 {
		return out, domain.ValidationError{Field: "ticket_id", Msg: "invalid id"}
	}

	var (
		serviceDate sql.NullTime
		duration    sql.NullString
		qrLink      sql.NullString
	)
	err := r.db().QueryRow(`
		SELECT
			t.ticket_id,
			t.serial_number,
			t.seat_code,
			t.seat_price,
			t.ticket_status,
			t.qr_code_link,
			t.booking_id,
			tr.trip_id,
			tr.service_date,
			tr.trip_status,
			rt.route_id,
			rt.default_duration_time,
			b.plate_number,
			b.vehicle_type,
			a.phone,
			a.email,
			s1.station_name,
			s1.city
		FROM ticket t
		JOIN trip tr ON t.trip_id = tr.trip_id
		JOIN routetrip rt ON tr.route_id = rt.route_id
		JOIN bus b ON tr.bus_id = b.bus_id
		JOIN account a ON t.account_id = a.account_id
		JOIN station s1 ON rt.station_id = s1.station_id
		WHERE t.ticket_id = ?`, ticketID).Scan(
		&out.TicketID,
		&out.SerialNumber,
		&out.SeatCode,
		&out.SeatPrice,
		&out.TicketStatus,
		&qrLink,
		&out.BookingID,
		&out.TripID,
		&serviceDate,
		&out.TripStatus,
		&out.RouteID,
		&duration,
		&out.PlateNumber,
		&out.VehicleType,
		&out.Phone,
		&out.Email,
		&out.DepartureStation,
		&out.DepartureCity,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return out, domain.NotFoundError{Resource: "ticket", Err: err}
		}
		return out, domain.InternalError{Err: err}
	}

	out.QRCodeLink = qrLink.String
	out.Duration = utils.FormatDuration(duration.String)
	if serviceDate.Valid {
		out.ServiceDate = utils.FormatDateTime(serviceDate.Time)
	}
	return out, nil
}
