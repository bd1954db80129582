package timestamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClock_TicksMonotonic(t *testing.T) {
	clk := New()

	a := clk.Ticks()
	b := clk.Ticks()
	c := clk.Ticks()

	assert.GreaterOrEqual(t, a, int64(0))
	assert.GreaterOrEqual(t, b, a, "ticks must never decrease")
	assert.GreaterOrEqual(t, c, b, "ticks must never decrease")
}

func TestClock_TicksAdvance(t *testing.T) {
	clk := New()

	before := clk.Ticks()
	time.Sleep(5 * time.Millisecond)
	after := clk.Ticks()

	assert.Greater(t, after, before)
	assert.GreaterOrEqual(t, Between(before, after), 5*time.Millisecond)
}

func TestNewAt(t *testing.T) {
	clk := NewAt(time.Now().Add(-time.Second))

	ticks := clk.Ticks()
	require.Greater(t, ticks, int64(0))
	assert.GreaterOrEqual(t, time.Duration(ticks), time.Second)
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name     string
		earlier  int64
		later    int64
		expected time.Duration
	}{
		{"zero to zero", 0, 0, 0},
		{"forward", 1000, 3500, 2500 * time.Nanosecond},
		{"swapped arguments", 3500, 1000, -2500 * time.Nanosecond},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Between(test.earlier, test.later))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0s", Format(0))
	assert.Equal(t, "1.5s", Format(int64(1500*time.Millisecond)))
	assert.Equal(t, "250ms", Format(int64(250*time.Millisecond)))
}

func TestSeconds(t *testing.T) {
	assert.InDelta(t, 0.0, Seconds(0), 1e-9)
	assert.InDelta(t, 1.5, Seconds(int64(1500*time.Millisecond)), 1e-9)
}

func TestIsZero(t *testing.T) {
	assert.True(t, IsZero(0))
	assert.False(t, IsZero(1))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(0))
	assert.NoError(t, Validate(12345))
	assert.Error(t, Validate(-1))
}
