//go:build unit || e2e

package builder

import (
	"encoding/json"
	"strconv"
	"strings"

	"reservas-web/internal/domain/event"
)

// EventID reads s the way a catalog lists it: canonical integers as numbers,
// anything else as a string. Blank text is the zero ID.
func EventID(s string) event.ID {
	s = strings.TrimSpace(s)
	if s == "" {
		return event.ID{}
	}
	if n, err := strconv.Atoi(s); err == nil && strconv.Itoa(n) == s {
		id, err := event.NewNumericID(s)
		if err != nil {
			panic(err)
		}
		return id
	}
	id, err := event.NewID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func eventIDValue(id event.ID) any {
	if id.Numeric() {
		return json.Number(id.String())
	}
	return id.String()
}
