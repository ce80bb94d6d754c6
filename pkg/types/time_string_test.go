package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "корректное время", input: "09:30"},
		{name: "полночь", input: "00:00"},
		{name: "конец суток", input: "23:59"},
		{name: "без ведущего нуля", input: "9:30", wantErr: true},
		{name: "с секундами", input: "09:30:00", wantErr: true},
		{name: "часы вне диапазона", input: "24:00", wantErr: true},
		{name: "минуты вне диапазона", input: "10:60", wantErr: true},
		{name: "мусор", input: "abc", wantErr: true},
		{name: "пустая строка", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(570)
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	ts, err = NewTimeStringFromMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, "00:00", ts.String())

	_, err = NewTimeStringFromMinutes(-1)
	require.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = NewTimeStringFromMinutes(24 * 60)
	require.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("11:45")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 705, minutes)

	_, err = TimeString("bad").Minutes()
	require.ErrorIs(t, err, ErrInvalidTimeString)

	// Неканоничная форма ломает лексикографический порядок и не должна проходить дальше
	_, err = TimeString("9:30").Minutes()
	require.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("23:00")

	moved, err := ts.AddMinutes(59)
	require.NoError(t, err)
	assert.Equal(t, "23:59", moved.String())

	// Выход за пределы суток недопустим
	_, err = ts.AddMinutes(60)
	require.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Compare(t *testing.T) {
	early := TimeString("09:00")
	late := TimeString("18:00")

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(early))
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("строка HH:MM", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("10:30"))
		assert.Equal(t, "10:30", ts.String())
	})

	t.Run("строка с секундами", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("10:30:00"))
		assert.Equal(t, "10:30", ts.String())
	})

	t.Run("байты", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("08:15")))
		assert.Equal(t, "08:15", ts.String())
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2026, 1, 1, 14, 45, 0, 0, time.UTC)))
		assert.Equal(t, "14:45", ts.String())
	})

	t.Run("неподдерживаемый тип", func(t *testing.T) {
		var ts TimeString
		require.Error(t, ts.Scan(42))
	})
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)

	_, err = TimeString("25:00").Value()
	require.ErrorIs(t, err, ErrInvalidTimeString)
}
