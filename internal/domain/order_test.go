package domain

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusPending, StatusShipped, true},
		{StatusPending, StatusCanceled, true},
		{StatusPending, StatusDelivered, false},
		{StatusShipped, StatusDelivered, true},
		{StatusShipped, StatusCanceled, false},
		{StatusShipped, StatusPending, false},
		{StatusDelivered, StatusPending, false},
		{StatusDelivered, StatusShipped, false},
		{StatusCanceled, StatusPending, false},
		{StatusCanceled, StatusShipped, false},
	}

	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.want {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusShipped, StatusDelivered, StatusCanceled} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if OrderStatus("returned").Valid() {
		t.Error("unknown status should not be valid")
	}
}

func TestLineItemSubtotal(t *testing.T) {
	item := OrderLineItem{ProductID: "p1", Quantity: 3, UnitPrice: 12.5}
	if got := item.Subtotal(); got != 37.5 {
		t.Errorf("Subtotal() = %v, want 37.5", got)
	}
}
