package types

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGoLayout(t *testing.T) {
	assert.Equal(t, "2006-01-02 15:04:05", ToGoLayout(DefaultLayout24h))
	assert.Equal(t, "20060102_150405", ToGoLayout(StampLayout))
	assert.Equal(t, "January 2006", ToGoLayout("MMMM yyyy"))
	assert.Equal(t, "2006-01-02 15:04:05", ToGoLayout("2006-01-02 15:04:05"))
	assert.Equal(t, "Mon 2", ToGoLayout("EEE d"))
	assert.Equal(t, "Monday, Jan 2", ToGoLayout("EEEE, MMM d"))
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2024, 6, 10, 9, 5, 7, 0, time.Local)
	assert.Equal(t, "2024-06-10 09:05:07", FormatTime(ts))
	assert.Equal(t, "20240610_090507", FormatTime(ts, StampLayout))
	assert.Equal(t, "", FormatTime(time.Time{}))
}

func TestParseLocalTime(t *testing.T) {
	got, err := ParseLocalTime("2024-06-10 09:05:07")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 9, 5, 7, 0, time.Local), got)

	got, err = ParseLocalTime("2024-06-10T09:05:07Z")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())

	_, err = ParseLocalTime("not a date")
	assert.True(t, errors.Is(err, ErrUnparseableTime))

	_, err = ParseLocalTime("  ")
	assert.ErrorIs(t, err, ErrUnparseableTime)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", FormatDate(d))

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)
}
