package models

// Profile is the account card shown on the profile page.
type Profile struct {
	AccountID   int64  `json:"account_id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	MemberSince string `json:"member_since"`
}

// TicketHistoryItem is one row of a user's purchase history. Refs are the
// display identifiers ("TK007", "BK00012") the front end prints; Status is
// derived from the trip's lifecycle, not the raw ticket status.
type TicketHistoryItem struct {
	TicketRef     string `json:"ticket_ref"`
	BookingRef    string `json:"booking_ref"`
	TripID        int64  `json:"trip_id"`
	Route         string `json:"route"`
	DepartureDate string `json:"departure_date"`
	ArrivalDate   string `json:"arrival_date"`
	SeatCode      string `json:"seat_code"`
	SerialNumber  string `json:"serial_number"`
	Price         int64  `json:"price"`
	Status        string `json:"status"`
	VehicleType   string `json:"vehicle_type"`
	Operator      string `json:"operator"`
	PlateNumber   string `json:"plate_number"`
}
