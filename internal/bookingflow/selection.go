package bookingflow

import "busline/internal/seatmap"

// Selection is the user's in-progress seat choice for one trip. It keeps
// insertion order so the submitted seat list matches the order seats were
// picked, and it is scoped to a single booking view (no locking needed).
type Selection struct {
	order  []string
	member map[string]bool
}

func NewSelection() *Selection {
	return &Selection{member: map[string]bool{}}
}

// Toggle adds the seat if absent and removes it if present. Seats in the
// booked set are ignored entirely.
func (s *Selection) Toggle(code string, booked map[string]bool) {
	if booked[code] {
		return
	}
	if s.member[code] {
		delete(s.member, code)
		for i, c := range s.order {
			if c == code {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return
	}
	s.member[code] = true
	s.order = append(s.order, code)
}

// Contains reports membership without touching order.
func (s *Selection) Contains(code string) bool {
	return s.member[code]
}

// Len returns the number of selected seats.
func (s *Selection) Len() int {
	return len(s.order)
}

// Codes returns the selected seat codes in insertion order.
func (s *Selection) Codes() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Members exposes the selection as a set for seat classification.
func (s *Selection) Members() map[string]bool {
	return s.member
}

// TotalPrice is always len(selection) × price, including the empty case.
func (s *Selection) TotalPrice(pricePerSeat int64) int64 {
	return int64(s.Len()) * pricePerSeat
}

// Confirm yields the ordered seat list for submission, or ErrEmptySelection.
func (s *Selection) Confirm() ([]string, error) {
	if s.Len() == 0 {
		return nil, ErrEmptySelection
	}
	return s.Codes(), nil
}

// Reset empties the selection (trip change or successful booking).
func (s *Selection) Reset() {
	s.order = nil
	s.member = map[string]bool{}
}

// Classify derives the seat status against this selection.
func (s *Selection) Classify(code string, booked map[string]bool) seatmap.Status {
	return seatmap.Classify(code, booked, s.member)
}
