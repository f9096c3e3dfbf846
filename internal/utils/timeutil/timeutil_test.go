package timeutil_test

import (
	"testing"
	"time"

	"github.com/hpvvs/salesops_backend/internal/utils/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTimeConvertsToBusinessZone(t *testing.T) {
	tu := timeutil.MustNew("America/Los_Angeles")

	cases := []struct{ input, want string }{
		{"2024-07-04T17:15:00Z", "2024-07-04T10:15:00-07:00"},
		{"2024-07-01T08:00:00-07:00", "2024-07-01T08:00:00-07:00"},
		{"2024-07-01T11:00:00.250-04:00", "2024-07-01T08:00:00.25-07:00"},
		{"2024-07-01T15:00Z", "2024-07-01T08:00:00-07:00"},
		{"2024-07-01T08:00:00", "2024-07-01T08:00:00-07:00"},
		{"2024-07-01T08:00", "2024-07-01T08:00:00-07:00"},
		{"  2024-07-01T08:00:00-07:00[America/Los_Angeles] ", "2024-07-01T08:00:00-07:00"},
		{"2024-07-01T11:00:00[America/New_York]", "2024-07-01T08:00:00-07:00"},
	}
	for _, tc := range cases {
		got, err := tu.ParseDateTime(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, tu.FormatDateTime(got), tc.input)
	}
}

func TestParseDateTimeRejectsGarbage(t *testing.T) {
	tu := timeutil.MustNew("")
	for _, input := range []string{"", "   ", "yesterday", "2024-13-01T00:00:00Z", "2024-07-01", "2024-07-01T08:00:00[Mars/Olympus]"} {
		_, err := tu.ParseDateTime(input)
		assert.ErrorIs(t, err, timeutil.ErrInvalidDateTime, input)
	}
}

func TestFormatDateTimePtr(t *testing.T) {
	tu := timeutil.MustNew("UTC")
	assert.Nil(t, tu.FormatDateTimePtr(nil))

	ts := time.Date(2024, 7, 5, 18, 45, 0, 0, time.UTC)
	assert.Equal(t, "2024-07-05T18:45:00Z", *tu.FormatDateTimePtr(&ts))
}

func TestNewRejectsUnknownZone(t *testing.T) {
	_, err := timeutil.New("Nowhere/Special")
	assert.Error(t, err)
}
