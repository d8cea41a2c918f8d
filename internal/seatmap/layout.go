// Package seatmap builds the deterministic seat layout for a trip's vehicle
// and classifies seat codes against the booked/selected sets. The generated
// codes are the only seat identifiers the rest of the booking flow knows
// about; nothing here touches the network or the database.
package seatmap

import (
	"strconv"
	"strings"
)

// VehicleType selects the layout rules. Unknown values fall back to Seater.
type VehicleType string

const (
	Seater    VehicleType = "Seater"
	Sleeper   VehicleType = "Sleeper"
	Limousine VehicleType = "Limousine"
)

// ParseVehicleType maps free-form vehicle strings onto a known type.
func ParseVehicleType(s string) VehicleType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sleeper":
		return Sleeper
	case "limousine":
		return Limousine
	default:
		return Seater
	}
}

// Status is the derived occupancy state of a single seat.
type Status int

const (
	Available Status = iota
	Selected
	Booked
)

func (s Status) String() string {
	switch s {
	case Booked:
		return "booked"
	case Selected:
		return "selected"
	default:
		return "available"
	}
}

// Seat is one position in the layout grid.
type Seat struct {
	Code string
}

// Row is an ordered run of cells; a nil cell marks the aisle gap and must be
// kept so rows stay visually aligned.
type Row []*Seat

// Layout is the whole grid, front row first.
type Layout []Row

const defaultCapacity = 40

// RowWidth returns how many seat codes one row of the given type carries.
func RowWidth(t VehicleType) int {
	switch t {
	case Sleeper:
		return 2
	case Limousine:
		return 3
	default:
		return 4
	}
}

// Generate builds the seat grid for a vehicle type and capacity. Rows are
// always emitted whole: when capacity is not divisible by the row width the
// last row still carries its full set of codes, matching what the seat
// selector has always rendered.
//
// Seater rows read A{n} A{n+1} [aisle] B{n} B{n+1} with n advancing by two
// per row, so numbering interleaves A1,A2,B1,B2,A3,A4,B3,B4,...
// Sleeper rows are S{n} S{n+1} and Limousine rows L{n} L{n+1} L{n+2}, both
// without an aisle cell.
func Generate(t VehicleType, capacity int) Layout {
	if capacity <= 0 {
		capacity = defaultCapacity
	}

	switch t {
	case Sleeper:
		return generateStraight("S", 2, capacity)
	case Limousine:
		return generateStraight("L", 3, capacity)
	default:
		return generateSeater(capacity)
	}
}

func generateSeater(capacity int) Layout {
	rows := (capacity + 3) / 4
	layout := make(Layout, 0, rows)
	num := 1
	for r := 0; r < rows; r++ {
		layout = append(layout, Row{
			{Code: code("A", num)},
			{Code: code("A", num+1)},
			nil, // aisle
			{Code: code("B", num)},
			{Code: code("B", num+1)},
		})
		num += 2
	}
	return layout
}

func generateStraight(prefix string, width, capacity int) Layout {
	rows := (capacity + width - 1) / width
	layout := make(Layout, 0, rows)
	num := 1
	for r := 0; r < rows; r++ {
		row := make(Row, 0, width)
		for i := 0; i < width; i++ {
			row = append(row, &Seat{Code: code(prefix, num+i)})
		}
		layout = append(layout, row)
		num += width
	}
	return layout
}

func code(prefix string, n int) string {
	return prefix + strconv.Itoa(n)
}

// Codes flattens the layout into its seat codes, skipping aisle cells.
func (l Layout) Codes() []string {
	out := make([]string, 0, len(l)*4)
	for _, row := range l {
		for _, seat := range row {
			if seat != nil {
				out = append(out, seat.Code)
			}
		}
	}
	return out
}

// Classify derives the occupancy state of one seat code. Booked always wins
// over Selected; everything else is Available.
func Classify(code string, booked map[string]bool, selection map[string]bool) Status {
	if booked[code] {
		return Booked
	}
	if selection[code] {
		return Selected
	}
	return Available
}
