package api

import (
	"context"
	"encoding/json"
	"net/http"

	"reservas-web/internal/domain/event"
	"reservas-web/internal/pkg/errs"
)

// ListAvailableEvents fetches the bookable events. Every record is checked
// against the catalog schema; one bad record fails the whole list.
func (c *Client) ListAvailableEvents(ctx context.Context) ([]*event.Event, error) {
	endpoint := "GET " + pathAvailableEvents

	resp, err := c.do(ctx, http.MethodGet, pathAvailableEvents, nil, "")
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, errs.Wrap(rejected(resp.status, resp.body), endpoint)
	}

	var records []eventResponse
	if err := json.Unmarshal(resp.body, &records); err != nil {
		return nil, decodeErr(endpoint, err)
	}

	events := make([]*event.Event, 0, len(records))
	for i, record := range records {
		e, err := record.toDomain()
		if err != nil {
			return nil, decodeErr(endpoint, errs.Wrapf(err, "record %d", i))
		}
		events = append(events, e)
	}
	return events, nil
}
