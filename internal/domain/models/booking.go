package models

// BookingRequest is the payload posted to create a booking with tickets.
type BookingRequest struct {
	Currency   string   `json:"currency"`
	AccountID  int64    `json:"account_id"`
	OperatorID string   `json:"operator_id"`
	TripID     int64    `json:"trip_id"`
	FareID     int64    `json:"fare_id"`
	SeatCodes  []string `json:"seat_codes"`
}

// TicketSerial pairs a ticket id with its printed serial number.
type TicketSerial struct {
	TicketID     int64  `json:"ticket_id"`
	SerialNumber string `json:"serial_number"`
}

// BookingResult is produced once per successful booking and is immutable
// from the caller's point of view.
type BookingResult struct {
	BookingID     int64          `json:"booking_id"`
	SeatCodes     []string       `json:"seat_codes"`
	TicketIDs     []int64        `json:"ticket_ids"`
	TicketSerials []TicketSerial `json:"ticket_serials"`
	Currency      string         `json:"currency"`
	TotalAmount   int64          `json:"total_amount,omitempty"`
}

// Booking is the persisted booking row.
type Booking struct {
	BookingID     int64  `json:"booking_id"`
	Currency      string `json:"currency"`
	TotalAmount   int64  `json:"total_amount"`
	BookingStatus string `json:"booking_status"`
	AccountID     int64  `json:"account_id"`
	OperatorID    string `json:"operator_id"`
}
