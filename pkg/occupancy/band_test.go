package occupancy

import "testing"

func TestBandOf(t *testing.T) {
	const capacity = 10

	tests := []struct {
		name      string
		occupancy int
		want      Band
	}{
		{"Empty", 0, BandEmpty},
		{"FirstEntry", 1, BandNormal},
		{"MidRange", 5, BandNormal},
		{"UpperNormal", 8, BandNormal},
		{"OneSlotLeft", 9, BandWarning},
		{"Full", 10, BandFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BandOf(tt.occupancy, capacity); got != tt.want {
				t.Errorf("BandOf(%d, %d) = %v, want %v", tt.occupancy, capacity, got, tt.want)
			}
		})
	}
}

func TestBandTransitionsBothDirections(t *testing.T) {
	c, _ := New(4)

	// Empty → Normal → Warning → Full going up, then back down.
	steps := []struct {
		inc  bool
		want Band
	}{
		{true, BandNormal},  // 1
		{true, BandNormal},  // 2
		{true, BandWarning}, // 3
		{true, BandFull},    // 4
		{false, BandWarning},
		{false, BandNormal},
		{false, BandNormal},
		{false, BandEmpty},
	}

	for i, st := range steps {
		if st.inc {
			_, _ = c.TryIncrement()
		} else {
			_, _ = c.TryDecrement()
		}
		if got := c.Observe().Band(); got != st.want {
			t.Fatalf("step %d: Band() = %v, want %v", i, got, st.want)
		}
	}
}

func TestBandMinimumCapacity(t *testing.T) {
	// With capacity 2 the normal band is empty: 1 is already the warning.
	c, _ := New(2)

	_, _ = c.TryIncrement()
	if got := c.Observe().Band(); got != BandWarning {
		t.Errorf("Band() at 1/2 = %v, want BandWarning", got)
	}
	_, _ = c.TryIncrement()
	if got := c.Observe().Band(); got != BandFull {
		t.Errorf("Band() at 2/2 = %v, want BandFull", got)
	}
}

func TestBandString(t *testing.T) {
	tests := []struct {
		band Band
		want string
	}{
		{BandEmpty, "EMPTY"},
		{BandNormal, "NORMAL"},
		{BandWarning, "WARNING"},
		{BandFull, "FULL"},
		{Band(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.band.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
