package clock

import "testing"

func TestAdvanceExactMultiples(t *testing.T) {
	tests := []struct {
		k    int64
		want int
	}{
		{0, 0},
		{1, 1},
		{3, 3},
		{10, 10},
		{11, 10},
		{50, 10},
	}
	for _, tt := range tests {
		c := Default(1000)
		if got := c.Advance(1000 + tt.k*DefaultIntervalMs); got != tt.want {
			t.Errorf("k=%d: expected %d ticks, got %d", tt.k, tt.want, got)
		}
	}
}

func TestAdvanceStrictlyAfterDue(t *testing.T) {
	c := Default(0)
	if got := c.Advance(0); got != 0 {
		t.Errorf("expected no tick at the due instant, got %d", got)
	}
	if got := c.Advance(1); got != 1 {
		t.Errorf("expected one tick just past due, got %d", got)
	}
	if got := c.Advance(1); got != 0 {
		t.Errorf("expected no further tick in the same interval, got %d", got)
	}
	if c.Next() != DefaultIntervalMs {
		t.Errorf("expected next due at %d, got %d", DefaultIntervalMs, c.Next())
	}
}

func TestAdvanceLargeStall(t *testing.T) {
	c := Default(0)
	now := int64(1_000_000)
	total := 0
	for i := 0; i < 5; i++ {
		got := c.Advance(now)
		if got < 0 || got > DefaultMaxCatchUp {
			t.Fatalf("call %d: tick count %d outside [0,%d]", i, got, DefaultMaxCatchUp)
		}
		total += got
	}
	if total != 5*DefaultMaxCatchUp {
		t.Errorf("expected every call to saturate, got %d ticks total", total)
	}
	if c.Saturated() != 5 {
		t.Errorf("expected 5 saturated calls, got %d", c.Saturated())
	}
}

func TestAdvanceSteadyRate(t *testing.T) {
	c := Default(0)
	total := 0
	// 60 fps for ten seconds
	for frame := 1; frame <= 600; frame++ {
		total += c.Advance(int64(frame) * 1000 / 60)
	}
	if total != 19 && total != 20 {
		t.Errorf("expected about 20 ticks in 10s, got %d", total)
	}
	if c.Saturated() != 0 {
		t.Errorf("expected no saturation at steady frame rate, got %d", c.Saturated())
	}
}

func TestReset(t *testing.T) {
	c := Default(0)
	c.Reset(100_000)
	if got := c.Advance(100_000); got != 0 {
		t.Errorf("expected backlog discarded, got %d ticks", got)
	}
}

func TestNewDefaults(t *testing.T) {
	c := New(0, 0, 0)
	if c.Interval() != DefaultIntervalMs || c.MaxCatchUp() != DefaultMaxCatchUp {
		t.Errorf("expected defaults, got interval=%d cap=%d", c.Interval(), c.MaxCatchUp())
	}
	if c.Rate() != 2 {
		t.Errorf("expected 2 ticks per second, got %f", c.Rate())
	}
}
