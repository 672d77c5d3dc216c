package coerce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Clock
	}{
		{"08:30:15", Clock{8, 30, 15}},
		{"08:30", Clock{8, 30, 0}},
		{"8:05", Clock{8, 5, 0}},
		{"23:59:59", Clock{23, 59, 59}},
		{"00:00:00", Clock{}},
		{" 07:45 ", Clock{7, 45, 0}},
		{"08:30:00:00", Clock{8, 30, 0}},
		{"14:05:09:xx", Clock{14, 5, 9}},
		{"", Clock{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseClock(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseClock_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"08:xx:00", "08", "ab:cd", "24:00", "12:60", "12:00:60", "-1:00", "08::00"} {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			_, err := ParseClock(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidClock)
		})
	}
}

func TestClock_RoundTrip(t *testing.T) {
	t.Parallel()

	for h := 0; h < 24; h += 5 {
		for m := 0; m < 60; m += 7 {
			for _, withSeconds := range []bool{false, true} {
				in := Clock{Hour: h, Minute: m}.String()[:5]
				if withSeconds {
					in += ":42"
				}
				first, err := ParseClock(in)
				require.NoError(t, err)
				second, err := ParseClock(first.String())
				require.NoError(t, err)
				assert.Equal(t, first, second, in)
				if !withSeconds {
					assert.Zero(t, first.Second, in)
				}
			}
		}
	}
}

func TestClock_Text(t *testing.T) {
	t.Parallel()

	c := Clock{7, 5, 9}
	text, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "07:05:09", string(text))

	var back Clock
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, c, back)

	assert.Error(t, back.UnmarshalText([]byte("nope")))
	assert.Equal(t, c, back, "failed unmarshal leaves value untouched")
}

func TestClock_Helpers(t *testing.T) {
	t.Parallel()

	c := Clock{7, 30, 0}
	assert.Equal(t, 7*time.Hour+30*time.Minute, c.SinceMidnight())
	assert.True(t, Clock{}.IsZero())
	assert.False(t, c.IsZero())
	assert.True(t, Clock{6, 59, 59}.Before(c))
	assert.False(t, c.Before(c))

	loc := time.FixedZone("EST", -5*3600)
	day := time.Date(2024, time.January, 15, 22, 10, 0, 0, loc)
	assert.Equal(t, time.Date(2024, time.January, 15, 7, 30, 0, 0, loc), c.On(day))
}
