//go:build unit

package event_test

import (
	"encoding/json"
	"testing"
	"time"

	"reservas-web/internal/domain/event"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, s string) event.ID {
	t.Helper()
	id, err := event.NewID(s)
	require.NoError(t, err)
	return id
}

func mustDate(t *testing.T, s string) event.Date {
	t.Helper()
	d, err := event.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestNewEvent(t *testing.T) {
	t.Run("label combines title and date", func(t *testing.T) {
		e, err := event.NewEvent(mustID(t, "7"), "Taller de cerámica", mustDate(t, "2025-03-14"))
		require.NoError(t, err)

		assert.Equal(t, "Taller de cerámica (2025-03-14)", e.Label())
		assert.Equal(t, "7", e.ID().String())
	})

	t.Run("missing id", func(t *testing.T) {
		e, err := event.NewEvent(event.ID{}, "Yoga", event.DateOf(time.Now()))
		assert.Nil(t, e)
		assert.ErrorIs(t, err, event.ErrEmptyID)
	})

	t.Run("blank title with id", func(t *testing.T) {
		_, err := event.NewEvent(mustID(t, "1"), " ", mustDate(t, "2025-01-01"))
		assert.ErrorIs(t, err, event.ErrEmptyTitle)
	})

	t.Run("zero date with id", func(t *testing.T) {
		_, err := event.NewEvent(mustID(t, "1"), "Yoga", event.Date{})
		assert.ErrorIs(t, err, event.ErrInvalidDate)
	})
}

func TestOptionsFor(t *testing.T) {
	a, err := event.NewEvent(mustID(t, "1"), "Yoga", mustDate(t, "2025-04-01"))
	require.NoError(t, err)
	b, err := event.NewEvent(mustID(t, "abc-2"), "Meditación", mustDate(t, "2025-04-02"))
	require.NoError(t, err)

	got := event.OptionsFor([]*event.Event{a, b})
	want := []event.Option{
		{Value: mustID(t, "1"), Label: "Yoga (2025-04-01)"},
		{Value: mustID(t, "abc-2"), Label: "Meditación (2025-04-02)"},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(event.ID{})); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, event.OptionsFor(nil))
}

func TestIDJSON(t *testing.T) {
	t.Run("accepts numbers and strings", func(t *testing.T) {
		var ids []event.ID
		require.NoError(t, json.Unmarshal([]byte(`[12, "x-9", "34"]`), &ids))
		assert.Equal(t, []string{"12", "x-9", "34"}, []string{ids[0].String(), ids[1].String(), ids[2].String()})
	})

	t.Run("ids are sent back in the form they arrived", func(t *testing.T) {
		var ids []event.ID
		require.NoError(t, json.Unmarshal([]byte(`[12, "x-9", "34", "007", 1.5]`), &ids))

		b, err := json.Marshal(ids)
		require.NoError(t, err)
		assert.JSONEq(t, `[12, "x-9", "34", "007", 1.5]`, string(b))
	})

	t.Run("text ids marshal as strings", func(t *testing.T) {
		b, err := json.Marshal(map[string]event.ID{"a": mustID(t, "12"), "b": mustID(t, "007")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"a": "12", "b": "007"}`, string(b))
	})

	t.Run("numeric ids need a number literal", func(t *testing.T) {
		id, err := event.NewNumericID("42")
		require.NoError(t, err)
		assert.True(t, id.Numeric())
		assert.True(t, id.Equal(mustID(t, "42")))

		for _, s := range []string{"007", "4 2", "x", "+1", "0x10"} {
			_, err := event.NewNumericID(s)
			assert.ErrorIs(t, err, event.ErrInvalidID, s)
		}
	})

	t.Run("rejects null, objects and empty strings", func(t *testing.T) {
		var id event.ID
		assert.ErrorIs(t, json.Unmarshal([]byte(`null`), &id), event.ErrEmptyID)
		assert.ErrorIs(t, json.Unmarshal([]byte(`{"id":1}`), &id), event.ErrInvalidID)
		assert.ErrorIs(t, json.Unmarshal([]byte(`""`), &id), event.ErrEmptyID)
	})
}

func TestDate(t *testing.T) {
	d := mustDate(t, "2025-12-31")
	assert.Equal(t, "2025-12-31", d.String())
	assert.True(t, mustDate(t, "2025-01-01").Before(d))

	_, err := event.ParseDate("31/12/2025")
	assert.ErrorIs(t, err, event.ErrInvalidDate)

	var parsed event.Date
	assert.ErrorIs(t, json.Unmarshal([]byte(`20251231`), &parsed), event.ErrInvalidDate)
}
