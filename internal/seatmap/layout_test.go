package seatmap

import "testing"

func TestGenerateSeater40(t *testing.T) {
	layout := Generate(Seater, 40)

	if len(layout) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(layout))
	}

	first := layout[0]
	if len(first) != 5 {
		t.Fatalf("expected 5 cells per seater row (aisle included), got %d", len(first))
	}
	if first[2] != nil {
		t.Fatalf("expected aisle at cell 2, got seat %q", first[2].Code)
	}

	want := []string{"A1", "A2", "B1", "B2"}
	got := []string{first[0].Code, first[1].Code, first[3].Code, first[4].Code}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row 1 seat %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	if codes := layout.Codes(); len(codes) != 40 {
		t.Fatalf("expected 40 seat codes, got %d", len(codes))
	}
}

func TestGenerateRowCountsAndUniqueness(t *testing.T) {
	cases := []struct {
		vehicle  VehicleType
		capacity int
		rows     int
		codes    int
	}{
		{Seater, 40, 10, 40},
		{Seater, 41, 11, 44}, // last row stays whole
		{Sleeper, 34, 17, 34},
		{Sleeper, 33, 17, 34},
		{Limousine, 22, 8, 24},
		{Limousine, 21, 7, 21},
	}

	for _, tc := range cases {
		layout := Generate(tc.vehicle, tc.capacity)
		if len(layout) != tc.rows {
			t.Fatalf("%s cap %d: expected %d rows, got %d", tc.vehicle, tc.capacity, tc.rows, len(layout))
		}
		codes := layout.Codes()
		if len(codes) != tc.codes {
			t.Fatalf("%s cap %d: expected %d codes, got %d", tc.vehicle, tc.capacity, tc.codes, len(codes))
		}
		seen := map[string]bool{}
		for _, code := range codes {
			if seen[code] {
				t.Fatalf("%s cap %d: duplicate seat code %s", tc.vehicle, tc.capacity, code)
			}
			seen[code] = true
		}
	}
}

func TestGenerateZeroCapacityFallsBack(t *testing.T) {
	layout := Generate(Seater, 0)
	if got := len(layout.Codes()); got != 40 {
		t.Fatalf("expected fallback capacity 40, got %d codes", got)
	}
	layout = Generate(Sleeper, -5)
	if got := len(layout.Codes()); got != 40 {
		t.Fatalf("expected fallback capacity 40 for sleeper, got %d codes", got)
	}
}

func TestGenerateSeaterNumberingInterleaves(t *testing.T) {
	layout := Generate(Seater, 16)
	row2 := layout[1]
	want := []string{"A3", "A4", "B3", "B4"}
	got := []string{row2[0].Code, row2[1].Code, row2[3].Code, row2[4].Code}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row 2 seat %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestParseVehicleType(t *testing.T) {
	if got := ParseVehicleType("  sleeper "); got != Sleeper {
		t.Fatalf("expected Sleeper, got %s", got)
	}
	if got := ParseVehicleType("LIMOUSINE"); got != Limousine {
		t.Fatalf("expected Limousine, got %s", got)
	}
	if got := ParseVehicleType("double-decker"); got != Seater {
		t.Fatalf("expected Seater fallback, got %s", got)
	}
	if got := ParseVehicleType(""); got != Seater {
		t.Fatalf("expected Seater for empty input, got %s", got)
	}
}

func TestClassifyPrecedence(t *testing.T) {
	booked := map[string]bool{"A1": true, "B2": true}
	selection := map[string]bool{"A2": true, "A1": true}

	if got := Classify("A1", booked, selection); got != Booked {
		t.Fatalf("A1: expected booked, got %s", got)
	}
	if got := Classify("B2", booked, selection); got != Booked {
		t.Fatalf("B2: expected booked, got %s", got)
	}
	if got := Classify("A2", booked, selection); got != Selected {
		t.Fatalf("A2: expected selected, got %s", got)
	}
	if got := Classify("A3", booked, selection); got != Available {
		t.Fatalf("A3: expected available, got %s", got)
	}
}
