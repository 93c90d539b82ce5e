package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9:30", 0, true},
		{"0930", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestFormatClockWrapsWithinDay(t *testing.T) {
	assert.Equal(t, "23:30", FormatClock(-30))
	assert.Equal(t, "00:30", FormatClock(1470))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "00:00", FormatClock(MinutesPerDay))
}

func TestShiftClock(t *testing.T) {
	got, err := ShiftClock("09:00", 30)
	require.NoError(t, err)
	assert.Equal(t, "09:30", got)

	got, err = ShiftClock("00:00", -30)
	require.NoError(t, err)
	assert.Equal(t, "23:30", got)

	_, err = ShiftClock("bad", 30)
	assert.Error(t, err)
}

func TestValidGridTime(t *testing.T) {
	assert.True(t, ValidGridTime("09:00"))
	assert.True(t, ValidGridTime("09:30"))
	assert.False(t, ValidGridTime("09:15"))
	assert.False(t, ValidGridTime("25:00"))
	assert.False(t, ValidGridTime("nope"))
}

func TestValidDuration(t *testing.T) {
	assert.True(t, ValidDuration(30))
	assert.True(t, ValidDuration(50))
	assert.True(t, ValidDuration(80))
	assert.False(t, ValidDuration(60))
	assert.False(t, ValidDuration(0))
}
