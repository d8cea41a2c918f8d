package models

// Ticket statuses as stored in the ticket table. Issued and Used tickets
// block their seat on the trip.
const (
	TicketStatusIssued    = "Issued"
	TicketStatusUsed      = "Used"
	TicketStatusCancelled = "Cancelled"
)

// Ticket is the per-seat ticket row belonging to a booking.
type Ticket struct {
	TicketID     int64  `json:"ticket_id"`
	SerialNumber string `json:"serial_number"`
	SeatCode     string `json:"seat_code"`
	SeatPrice    int64  `json:"seat_price"`
	TicketStatus string `json:"ticket_status"`
	QRCodeLink   string `json:"qr_code_link,omitempty"`
	TripID       int64  `json:"trip_id"`
	FareID       int64  `json:"fare_id"`
	BookingID    int64  `json:"booking_id"`
	AccountID    int64  `json:"account_id"`
}

// TicketLookup is the detail returned by the serial+phone lookup.
type TicketLookup struct {
	Ticket
	ServiceDate      string  `json:"service_date"`
	TripStatus       string  `json:"trip_status"`
	RouteID          int64   `json:"route_id"`
	Distance         float64 `json:"distance,omitempty"`
	Duration         string  `json:"duration"`
	PlateNumber      string  `json:"plate_number"`
	VehicleType      string  `json:"vehicle_type"`
	Capacity         int     `json:"capacity"`
	Phone            string  `json:"phone"`
	Email            string  `json:"email"`
	DepartureStation string  `json:"departure_station"`
	DepartureCity    string  `json:"departure_city"`
}
