package reservation

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Seats is the requested seat count. It is parsed leniently from the form
// value and never bounds-checked on the client; an unparseable value is sent
// as null so the backend can reject it.
type Seats struct {
	value *int
}

func NewSeats(n int) Seats {
	return Seats{value: &n}
}

// ParseSeats reads the leading integer of s: surrounding whitespace and
// trailing garbage are ignored ("3 personas" is 3), a 0x prefix selects
// hexadecimal, and input without leading digits yields an unset value.
func ParseSeats(s string) Seats {
	s = strings.TrimSpace(s)
	sign := 1
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	base := 10
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return Seats{}
	}

	n, err := strconv.ParseInt(s[:end], base, 64)
	if err != nil {
		return Seats{}
	}
	v := sign * int(n)
	return Seats{value: &v}
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f':
		return true
	case base == 16 && c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}

func (s Seats) Value() (int, bool) {
	if s.value == nil {
		return 0, false
	}
	return *s.value, true
}

func (s Seats) String() string {
	if s.value == nil {
		return "NaN"
	}
	return strconv.Itoa(*s.value)
}

func (s Seats) MarshalJSON() ([]byte, error) {
	if s.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*s.value)
}

func (s *Seats) UnmarshalJSON(data []byte) error {
	var v *int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	s.value = v
	return nil
}
