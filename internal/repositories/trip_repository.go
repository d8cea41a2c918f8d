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

// availableSeatsExpr computes seats still free on a trip: bus capacity minus
// active tickets. Cancelled tickets release their seat.
const availableSeatsExpr = `b.capacity - (
		SELECT COUNT(*)
		FROM ticket tk
		WHERE tk.trip_id = t.trip_id
		  AND tk.ticket_status IN ('Issued', 'Used')
	)`

// latestFareExpr picks the most recent fare attached to the route.
const latestFareExpr = `
	COALESCE((
		SELECT f.seat_price
		FROM fare f
		WHERE f.route_id = rt.route_id
		ORDER BY f.valid_from DESC
		LIMIT 1
	), 0) AS seat_price,
	(
		SELECT f2.fare_id
		FROM fare f2
		WHERE f2.route_id = rt.route_id
		ORDER BY f2.valid_from DESC
		LIMIT 1
	) AS fare_id`

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetTripDetail loads the full booking-view payload for one trip.
func (r TripRepository) GetTripDetail(tripID int64) (models.Trip, error) {
	var out models.Trip
	if tripID <= 0 {
		return out, domain.ValidationError{Field: "trip_id", Msg: "invalid id"}
	}

	query := `
		SELECT
			t.trip_id,
			t.service_date,
			t.arrival_datetime,
			t.trip_status,
			rt.route_id,
			rt.default_duration_time,
			COALESCE(rt.distance, 0),
			dep.station_id,
			dep.station_name,
			dep.city,
			COALESCE(dep.address_station, ''),
			arr.station_id,
			arr.station_name,
			arr.city,
			arr.address_station,
			bus.bus_id,
			bus.plate_number,
			bus.capacity,
			bus.vehicle_type,
			op.operator_id,
			op.brand_name,
			COALESCE(op.legal_name, ''),` + latestFareExpr + `,
			` + strings.ReplaceAll(availableSeatsExpr, "b.capacity", "bus.capacity") + ` AS available_seats
		FROM trip t
		JOIN routetrip rt ON t.route_id = rt.route_id
		JOIN station dep ON rt.station_id = dep.station_id
		LEFT JOIN station arr ON rt.arrival_station = arr.station_id
		JOIN bus ON t.bus_id = bus.bus_id
		JOIN operator op ON rt.operator_id = op.operator_id
		WHERE t.trip_id = ?`

	var (
		serviceDate, arrivalDatetime sql.NullTime
		duration                     sql.NullString
		depStationID                 int64
		arrStationID                 sql.NullInt64
		arrName, arrCity, arrAddress sql.NullString
		fareID                       sql.NullInt64
	)

	err := r.db().QueryRow(query, tripID).Scan(
		&out.TripID,
		&serviceDate,
		&arrivalDatetime,
		&out.TripStatus,
		&out.RouteID,
		&duration,
		&out.Distance,
		&depStationID,
		&out.StationName,
		&out.City,
		&out.DepartureAddress,
		&arrStationID,
		&arrName,
		&arrCity,
		&arrAddress,
		&out.BusID,
		&out.PlateNumber,
		&out.Capacity,
		&out.VehicleType,
		&out.OperatorID,
		&out.BrandName,
		&out.LegalName,
		&out.Price,
		&fareID,
		&out.AvailableSeats,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return out, domain.NotFoundError{Resource: "trip", Err: err}
		}
		return out, domain.InternalError{Err: err}
	}

	out.StationID = fmt.Sprintf("%d", depStationID)
	out.RouteName = out.City
	if arrCity.Valid && arrCity.String != "" {
		out.RouteName = out.City + " -> " + arrCity.String
		out.ArrivalCity = arrCity.String
	}
	if arrStationID.Valid {
		out.ArrivalStationID = fmt.Sprintf("%d", arrStationID.Int64)
	}
	out.ArrivalStationName = arrName.String
	out.ArrivalAddress = arrAddress.String
	out.Duration = utils.FormatDuration(duration.String)
	if fareID.Valid {
		out.FareID = fareID.Int64
	}
	if serviceDate.Valid {
		out.ServiceDate = utils.FormatDateTime(serviceDate.Time)
		out.TimeStart = utils.FormatClock(serviceDate.Time)
	}
	if arrivalDatetime.Valid {
		out.ArrivalDatetime = utils.FormatDateTime(arrivalDatetime.Time)
		out.TimeEnd = utils.FormatClock(arrivalDatetime.Time)
	}
	if out.AvailableSeats < 0 {
		out.AvailableSeats = 0
	}
	return out, nil
}

// ListTrips searches scheduled departures from a station on a date,
// optionally filtered by destination station.
func (r TripRepository) ListTrips(stationID int64, date string, destinationID int64) ([]models.TripSummary, error) {
	if stationID <= 0 {
		return nil, domain.ValidationError{Field: "station_id", Msg: "invalid id"}
	}
	if _, err := utils.ParseDate(date); err != nil {
		return nil, domain.ValidationError{Field: "date", Msg: "date must follow YYYY-MM-DD"}
	}

	query := `
		SELECT
			t.trip_id,
			t.service_date,
			t.arrival_datetime,
			rt.default_duration_time,
			dep.station_id,
			dep.station_name,
			dep.city,
			arr.station_id,
			arr.city,
			bus.vehicle_type,
			op.brand_name,` + latestFareExpr + `,
			` + strings.ReplaceAll(availableSeatsExpr, "b.capacity", "bus.capacity") + ` AS available_seats
		FROM trip t
		JOIN routetrip rt ON t.route_id = rt.route_id
		JOIN station dep ON rt.station_id = dep.station_id
		LEFT JOIN station arr ON rt.arrival_station = arr.station_id
		JOIN bus ON t.bus_id = bus.bus_id
		JOIN operator op ON rt.operator_id = op.operator_id
		WHERE dep.station_id = ?
		  AND DATE(t.service_date) = ?
		  AND t.trip_status = 'Scheduled'`

	args := []any{stationID, date}
	if destinationID > 0 {
		query += "\n\t\t  AND arr.station_id = ?"
		args = append(args, destinationID)
	}
	query += "\n\t\tORDER BY t.service_date ASC"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.TripSummary{}
	for rows.Next() {
		var (
			s                        models.TripSummary
			serviceDate, arrivalTime sql.NullTime
			duration                 sql.NullString
			depStationID             int64
			arrStationID             sql.NullInt64
			arrCity                  sql.NullString
			fareID                   sql.NullInt64
		)
		if err := rows.Scan(
			&s.TripID,
			&serviceDate,
			&arrivalTime,
			&duration,
			&depStationID,
			&s.StationName,
			&s.RouteName,
			&arrStationID,
			&arrCity,
			&s.VehicleType,
			&s.BrandName,
			&s.Price,
			&fareID,
			&s.AvailableSeats,
		); err != nil {
			return out, domain.InternalError{Err: err}
		}
		s.StationID = fmt.Sprintf("%d", depStationID)
		if arrCity.Valid && arrCity.String != "" {
			s.RouteName = s.RouteName + " -> " + arrCity.String
			s.ArrivalCity = arrCity.String
		}
		if arrStationID.Valid {
			s.ArrivalStationID = fmt.Sprintf("%d", arrStationID.Int64)
		}
		s.Duration = utils.FormatDuration(duration.String)
		if serviceDate.Valid {
			s.TimeStart = utils.FormatClock(serviceDate.Time)
		}
		if arrivalTime.Valid {
			s.TimeEnd = utils.FormatClock(arrivalTime.Time)
		}
		if s.AvailableSeats < 0 {
			s.AvailableSeats = 0
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// TripCore is just what booking creation needs from the trip row.
type TripCore struct {
	RouteID     int64
	Capacity    int
	VehicleType string
}

func (r TripRepository) GetTripCore(tripID int64) (TripCore, error) {
	var out TripCore
	err := r.db().QueryRow(`
		SELECT t.route_id, b.capacity, b.vehicle_type
		FROM trip t
		JOIN bus b ON t.bus_id = b.bus_id
		WHERE t.trip_id = ?`, tripID).Scan(&out.RouteID, &out.Capacity, &out.VehicleType)
	if err == sql.ErrNoRows {
		return out, domain.NotFoundError{Resource: "trip", Err: err}
	}
	if err != nil {
		return out, domain.InternalError{Err: err}
	}
	return out, nil
}
