package api

import (
	"context"
	"encoding/json"
	"net/http"

	"reservas-web/internal/domain/reservation"
	"reservas-web/internal/pkg/errs"
)

// CreateReservation posts one booking. Success is decided by the status code
// alone; the body of a 2xx answer is not interpreted. A non-2xx answer
// returns *errs.RejectedError with the server detail, if any.
func (c *Client) CreateReservation(ctx context.Context, req reservation.Request) error {
	endpoint := "POST " + pathReservations

	body, err := json.Marshal(newReservationRequest(req))
	if err != nil {
		return errs.Wrapf(err, "%s: encode body", endpoint)
	}

	resp, err := c.do(ctx, http.MethodPost, pathReservations, body, "application/json")
	if err != nil {
		return err
	}
	if !resp.ok() {
		return errs.Wrap(rejected(resp.status, resp.body), endpoint)
	}
	return nil
}
