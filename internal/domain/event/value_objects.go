package event

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrEmptyID     = errors.New("event id is empty")
	ErrInvalidID   = errors.New("event id must be a JSON number or string")
	ErrInvalidDate = errors.New("event date must be YYYY-MM-DD")
	ErrEmptyTitle  = errors.New("event title is empty")
)

const dateLayout = "2006-01-02"

// ID is the backend's opaque event identifier. It is never interpreted:
// an ID that arrived as a JSON number is sent back as that number, anything
// else as a string.
type ID struct {
	value   string
	numeric bool
}

// NewID builds a string identifier.
func NewID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ID{}, ErrEmptyID
	}
	return ID{value: s}, nil
}

// NewNumericID builds an identifier that is written as a JSON number. s must
// be a valid JSON number literal.
func NewNumericID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ID{}, ErrEmptyID
	}
	if !isJSONNumber(s) {
		return ID{}, ErrInvalidID
	}
	return ID{value: s, numeric: true}, nil
}

func (id ID) String() string {
	return id.value
}

func (id ID) IsZero() bool {
	return id.value == ""
}

func (id ID) Numeric() bool {
	return id.numeric
}

// Equal compares identifiers by value. The backend keys events by the token
// text, so 7 and "7" name the same event.
func (id ID) Equal(other ID) bool {
	return id.value == other.value
}

func (id ID) MarshalJSON() ([]byte, error) {
	switch {
	case id.IsZero():
		return []byte("null"), nil
	case id.numeric:
		return []byte(id.value), nil
	default:
		return json.Marshal(id.value)
	}
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return ErrEmptyID
	}

	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return ErrInvalidID
		}
		parsed, err := NewID(raw)
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return ErrInvalidID
	}
	parsed, err := NewNumericID(num.String())
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func isJSONNumber(s string) bool {
	if s[0] != '-' && (s[0] < '0' || s[0] > '9') {
		return false
	}
	var num json.Number
	return json.Unmarshal([]byte(s), &num) == nil
}

// Date is a calendar date without time of day.
type Date struct {
	year  int
	month time.Month
	day   int
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func (d Date) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

func (d Date) Before(other Date) bool {
	return d.Time(time.UTC).Before(other.Time(time.UTC))
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrInvalidDate
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
