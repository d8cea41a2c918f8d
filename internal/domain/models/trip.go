package models

// Trip is the full trip detail used by the booking view. Field names mirror
// the JSON payload served to the front end.
type Trip struct {
	TripID     int64  `json:"trip_id"`
	TripStatus string `json:"trip_status,omitempty"`

	RouteID   int64   `json:"route_id,omitempty"`
	RouteName string  `json:"route_name"`
	Distance  float64 `json:"distance,omitempty"`
	Duration  string  `json:"duration"`

	StationID        string `json:"station_id"`
	StationName      string `json:"station_name"`
	City             string `json:"city"`
	DepartureAddress string `json:"departure_address,omitempty"`

	ArrivalStationID   string `json:"arrival_station_id,omitempty"`
	ArrivalStationName string `json:"arrival_station_name,omitempty"`
	ArrivalCity        string `json:"arrival_city,omitempty"`
	ArrivalAddress     string `json:"arrival_address,omitempty"`

	ServiceDate     string `json:"service_date,omitempty"`
	TimeStart       string `json:"time_start"`
	ArrivalDatetime string `json:"arrival_datetime,omitempty"`
	TimeEnd         string `json:"time_end"`

	BusID       int64  `json:"bus_id,omitempty"`
	PlateNumber string `json:"plate_number,omitempty"`
	VehicleType string `json:"vehicle_type"`
	Capacity    int    `json:"capacity"`

	OperatorID string `json:"operator_id"`
	BrandName  string `json:"brand_name"`
	LegalName  string `json:"legal_name,omitempty"`

	// FareID is zero when the route has no fare on record yet.
	FareID         int64 `json:"fare_id"`
	Price          int64 `json:"price"`
	AvailableSeats int   `json:"available_seats"`
}

// TripSummary is the lighter row returned by the trip search listing.
type TripSummary struct {
	TripID           int64  `json:"trip_id"`
	StationID        string `json:"station_id"`
	StationName      string `json:"station_name"`
	RouteName        string `json:"route_name"`
	TimeStart        string `json:"time_start"`
	TimeEnd          string `json:"time_end"`
	Duration         string `json:"duration"`
	VehicleType      string `json:"vehicle_type"`
	BrandName        string `json:"brand_name"`
	Price            int64  `json:"price"`
	AvailableSeats   int    `json:"available_seats"`
	ArrivalStationID string `json:"arrival_station_id,omitempty"`
	ArrivalCity      string `json:"arrival_city,omitempty"`
}

// SeatSummary reports per-trip occupancy for the seat selector overlay.
type SeatSummary struct {
	TripID         int64    `json:"trip_id"`
	TotalCapacity  int      `json:"total_capacity"`
	AvailableSeats int      `json:"available_seats"`
	BookedSeats    []string `json:"booked_seats"`
	OccupancyRate  float64  `json:"occupancy_rate"`
}
