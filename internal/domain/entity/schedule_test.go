package entity

import (
	"encoding/json"
	"testing"
	"time"

	domainerrors "lowkey/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekdays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Weekdays
	}{
		{input: "Mon,Tue", want: NewWeekdays(time.Monday, time.Tuesday)},
		{input: "monday; FRIDAY  sat", want: NewWeekdays(time.Monday, time.Friday, time.Saturday)},
		{input: "Thurs|Sun", want: NewWeekdays(time.Thursday, time.Sunday)},
		{input: "daily", want: AllWeek},
		{input: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseWeekdays(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWeekdays_Unknown(t *testing.T) {
	t.Parallel()

	_, err := ParseWeekdays("Mon,Funday")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOffer)

	_, err = ParseWeekdays("tu")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOffer)
}

func TestWeekdays_StringAndJSON(t *testing.T) {
	t.Parallel()

	days := NewWeekdays(time.Saturday, time.Monday)
	assert.Equal(t, "Mon,Sat", days.String())
	assert.False(t, days.IsEmpty())
	assert.True(t, Weekdays(0).IsEmpty())

	raw, err := json.Marshal(days)
	require.NoError(t, err)
	assert.JSONEq(t, `["Monday","Saturday"]`, string(raw))

	var decoded Weekdays
	require.NoError(t, json.Unmarshal([]byte(`["sat","Mon"]`), &decoded))
	assert.Equal(t, days, decoded)
}

func TestHourWindow(t *testing.T) {
	t.Parallel()

	window := HourWindow{Start: 9, End: 21}
	require.NoError(t, window.Validate())

	assert.False(t, window.Contains(8))
	assert.True(t, window.Contains(9))
	assert.True(t, window.Contains(20))
	assert.False(t, window.Contains(21))
	assert.Equal(t, "09-21", window.String())

	assert.NoError(t, HourWindow{Start: 0, End: 24}.Validate())
	assert.Error(t, HourWindow{Start: 5, End: 5}.Validate())
	assert.Error(t, HourWindow{Start: -1, End: 5}.Validate())
	assert.Error(t, HourWindow{Start: 0, End: 25}.Validate())
}

func TestCoordinate_Validate(t *testing.T) {
	t.Parallel()

	_, err := NewCoordinate(90, 180)
	require.NoError(t, err)

	_, err = NewCoordinate(-90.0001, 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}
