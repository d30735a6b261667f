package filters

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
	dateTimeText   = "2006-01-02T15:04:05.999999999"
)

// Single-digit month, day, hour, minute and second are accepted on input.
var dateTimeLayouts = []string{
	"2006-1-2T15:4:5",
	"2006-1-2 15:4:5",
}

// Date is a calendar day without a time or a zone.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-1-2", strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	v, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	return d.UnmarshalText([]byte(s))
}

// Value binds the day as an ISO 8601 literal, which every dialect casts to DATE.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// DateTime is a wall-clock timestamp without a zone, stored as UTC.
type DateTime struct {
	time.Time
}

func NewDateTime(year int, month time.Month, day, hour, minute, sec int) DateTime {
	return DateTime{time.Date(year, month, day, hour, minute, sec, 0, time.UTC)}
}

func ParseDateTime(s string) (DateTime, error) {
	s = strings.TrimSpace(s)
	var err error
	for _, layout := range dateTimeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return DateTime{t}, nil
		}
	}
	return DateTime{}, fmt.Errorf("parse datetime %q: %w", s, err)
}

func (d DateTime) String() string {
	return d.Format(dateTimeLayout)
}

func (d DateTime) MarshalText() ([]byte, error) {
	return []byte(d.Format(dateTimeText)), nil
}

func (d *DateTime) UnmarshalText(b []byte) error {
	v, err := ParseDateTime(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateTimeText))
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("datetime must be a string: %w", err)
	}
	return d.UnmarshalText([]byte(s))
}

func (d DateTime) Value() (driver.Value, error) {
	return d.UTC(), nil
}
