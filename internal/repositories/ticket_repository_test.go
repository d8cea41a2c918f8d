package repositories

import (
	"testing"
	"time"

	"busline/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func ticketHistoryColumns() []string {
	return []string{
		"ticket_id", "booking_id", "trip_id", "seat_code", "serial_number", "seat_price",
		"service_date", "arrival_datetime", "trip_status",
		"vehicle_type", "plate_number", "brand_name", "dep_city", "arr_city",
	}
}

func TestListByAccountMapsHistory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	depart := time.Date(2026, 3, 14, 8, 30, 0, 0, time.Local)
	arrive := time.Date(2026, 3, 14, 14, 0, 0, 0, time.Local)

	mock.ExpectQuery(`FROM ticket t`).WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(ticketHistoryColumns()).
			AddRow(7, 12, 12, "A1", "TKT-AB12CD34EF56", 200000,
				depart, arrive, "Arrived",
				"Seater", "51B-123.45", "Phuong Trang", "Saigon", "Dalat").
			AddRow(8, 13, 15, "S2", "TKT-FFEEDDCCBBAA", 350000,
				depart, nil, "Scheduled",
				"Sleeper", "51B-678.90", "Thanh Buoi", "Saigon", nil))

	items, err := TicketRepository{DB: db}.ListByAccount(7)
	if err != nil {
		t.Fatalf("list by account: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 history rows, got %d", len(items))
	}

	first := items[0]
	if first.TicketRef != "TK007" || first.BookingRef != "BK00012" {
		t.Fatalf("expected zero-padded refs TK007/BK00012, got %s/%s", first.TicketRef, first.BookingRef)
	}
	if first.Route != "Saigon -> Dalat" {
		t.Fatalf("expected joined route, got %q", first.Route)
	}
	if first.Status != "Completed" {
		t.Fatalf("expected Completed for an arrived trip, got %q", first.Status)
	}
	if first.DepartureDate == "" || first.ArrivalDate == "" {
		t.Fatalf("expected formatted dates, got %q/%q", first.DepartureDate, first.ArrivalDate)
	}

	second := items[1]
	if second.Status != "Not Used" {
		t.Fatalf("expected Not Used for a scheduled trip, got %q", second.Status)
	}
	if second.Route != "Saigon" {
		t.Fatalf("expected departure city alone without arrival, got %q", second.Route)
	}
	if second.ArrivalDate != "" {
		t.Fatalf("expected empty arrival date, got %q", second.ArrivalDate)
	}
}

func TestListByAccountInvalidID(t *testing.T) {
	if _, err := (TicketRepository{}).ListByAccount(0); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestDisplayTicketStatus(t *testing.T) {
	cases := map[string]string{
		"Cancelled": "Cancelled",
		"Scheduled": "Not Used",
		"Departed":  "In Use",
		"Arrived":   "Completed",
		"":          "Not Used",
	}
	for tripStatus, want := range cases {
		if got := displayTicketStatus(tripStatus); got != want {
			t.Fatalf("%q: expected %q, got %q", tripStatus, want, got)
		}
	}
}
