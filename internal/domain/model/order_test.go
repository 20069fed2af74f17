package model

import "testing"

func TestParseOrderStatus(t *testing.T) {
	for _, status := range OrderStatuses() {
		parsed, ok := ParseOrderStatus(string(status))
		if !ok || parsed != status {
			t.Fatalf("expected %q to parse, got %q ok=%v", status, parsed, ok)
		}
	}

	for _, raw := range []string{"", "brewing", "PENDING", "done"} {
		if _, ok := ParseOrderStatus(raw); ok {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	terminal := map[OrderStatus]bool{
		OrderStatusCompleted: true,
		OrderStatusCancelled: true,
	}
	for _, status := range OrderStatuses() {
		if status.Terminal() != terminal[status] {
			t.Fatalf("status %q: expected terminal=%v", status, terminal[status])
		}
	}
}

func TestOrderStatusCanTransitionTo(t *testing.T) {
	for _, from := range OrderStatuses() {
		for _, to := range OrderStatuses() {
			got := from.CanTransitionTo(to)
			want := !from.Terminal()
			if got != want {
				t.Fatalf("transition %q -> %q: expected %v, got %v", from, to, want, got)
			}
		}
	}
}

func TestParseOrderType(t *testing.T) {
	for _, orderType := range []OrderType{OrderTypeDineIn, OrderTypeTakeaway, OrderTypeDelivery} {
		parsed, ok := ParseOrderType(string(orderType))
		if !ok || parsed != orderType {
			t.Fatalf("expected %q to parse, got %q ok=%v", orderType, parsed, ok)
		}
	}

	for _, raw := range []string{"", "drive_through", "DINE_IN"} {
		if _, ok := ParseOrderType(raw); ok {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}
