package bookingflow

import (
	"errors"
	"testing"
)

func TestSelectionToggleKeepsInsertionOrder(t *testing.T) {
	sel := NewSelection()
	booked := map[string]bool{}

	sel.Toggle("A3", booked)
	sel.Toggle("A1", booked)
	sel.Toggle("B2", booked)

	got := sel.Codes()
	want := []string{"A3", "A1", "B2"}
	if len(got) != len(want) {
		t.Fatalf("expected %d codes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	// toggling again removes without disturbing the rest
	sel.Toggle("A1", booked)
	got = sel.Codes()
	if len(got) != 2 || got[0] != "A3" || got[1] != "B2" {
		t.Fatalf("expected [A3 B2] after removal, got %v", got)
	}
}

func TestSelectionToggleBookedIsNoOp(t *testing.T) {
	sel := NewSelection()
	booked := map[string]bool{"A1": true}

	sel.Toggle("A1", booked)
	if sel.Len() != 0 {
		t.Fatalf("expected booked seat toggle to be ignored, got %v", sel.Codes())
	}
	if sel.Contains("A1") {
		t.Fatal("booked seat must never enter the selection")
	}
}

func TestSelectionToggleTwiceRestoresState(t *testing.T) {
	sel := NewSelection()
	booked := map[string]bool{}

	sel.Toggle("A2", booked)
	sel.Toggle("A2", booked)
	if sel.Len() != 0 {
		t.Fatalf("double toggle should leave selection empty, got %v", sel.Codes())
	}
}

func TestSelectionTotalPrice(t *testing.T) {
	sel := NewSelection()
	booked := map[string]bool{}

	if got := sel.TotalPrice(200000); got != 0 {
		t.Fatalf("empty selection total: expected 0, got %d", got)
	}

	sel.Toggle("A1", booked)
	sel.Toggle("A2", booked)
	if got := sel.TotalPrice(200000); got != 400000 {
		t.Fatalf("expected total 400000, got %d", got)
	}
}

func TestSelectionConfirmEmpty(t *testing.T) {
	sel := NewSelection()
	if _, err := sel.Confirm(); !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}
}

func TestSelectionReset(t *testing.T) {
	sel := NewSelection()
	booked := map[string]bool{}
	sel.Toggle("A1", booked)
	sel.Toggle("A2", booked)

	sel.Reset()
	if sel.Len() != 0 {
		t.Fatalf("expected empty selection after reset, got %v", sel.Codes())
	}

	sel.Toggle("B1", booked)
	if got := sel.Codes(); len(got) != 1 || got[0] != "B1" {
		t.Fatalf("selection must be usable after reset, got %v", got)
	}
}
