package timeutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultZone is the business timezone used when none is configured.
const DefaultZone = "America/Los_Angeles"

// ErrInvalidDateTime is returned when a value is not an ISO-8601 date-time.
var ErrInvalidDateTime = errors.New("invalid ISO-8601 date-time")

var offsetLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
}

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// TimeUtil parses and renders timestamps in a fixed business zone.
type TimeUtil struct {
	loc *time.Location
}

// New returns a TimeUtil for the IANA zone name (empty selects DefaultZone).
func New(zone string) (*TimeUtil, error) {
	if strings.TrimSpace(zone) == "" {
		zone = DefaultZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", zone, err)
	}
	return &TimeUtil{loc: loc}, nil
}

// FromLocation wraps an already loaded zone. A nil loc selects UTC.
func FromLocation(loc *time.Location) *TimeUtil {
	if loc == nil {
		loc = time.UTC
	}
	return &TimeUtil{loc: loc}
}

// MustNew is New that panics; for tests and static defaults.
func MustNew(zone string) *TimeUtil {
	tu, err := New(zone)
	if err != nil {
		panic(err)
	}
	return tu
}

// Location returns the configured zone.
func (u *TimeUtil) Location() *time.Location {
	return u.loc
}

// ParseDateTime accepts offset date-times (2024-07-01T08:00:00-07:00, ...Z),
// zoned date-times with a bracketed region suffix, and local date-times which are
// read in the configured zone. The result is expressed in the configured zone.
func (u *TimeUtil) ParseDateTime(value string) (time.Time, error) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return time.Time{}, ErrInvalidDateTime
	}

	loc := u.loc
	if i := strings.IndexByte(raw, '['); i > 0 && strings.HasSuffix(raw, "]") {
		zoneLoc, err := time.LoadLocation(raw[i+1 : len(raw)-1])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDateTime, value)
		}
		loc = zoneLoc
		raw = raw[:i]
	}

	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.In(u.loc), nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.In(u.loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDateTime, value)
}

// FormatDateTime renders t as an ISO-8601 offset date-time in the configured zone.
func (u *TimeUtil) FormatDateTime(t time.Time) string {
	return t.In(u.loc).Format(time.RFC3339Nano)
}

// FormatDateTimePtr is FormatDateTime for nullable values.
func (u *TimeUtil) FormatDateTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := u.FormatDateTime(*t)
	return &s
}
