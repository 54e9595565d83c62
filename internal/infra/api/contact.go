package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"sort"

	"reservas-web/internal/domain/contact"
	"reservas-web/internal/pkg/errs"
)

var errMissingSuccess = errors.New("missing success")

// SendContact posts the contact form as multipart form data and returns the
// backend's success flag.
func (c *Client) SendContact(ctx context.Context, msg contact.Message) (bool, error) {
	endpoint := "POST " + pathContact

	body, contentType, err := encodeMultipart(msg.Fields())
	if err != nil {
		return false, errs.Wrapf(err, "%s: encode body", endpoint)
	}

	resp, err := c.do(ctx, http.MethodPost, pathContact, body, contentType)
	if err != nil {
		return false, err
	}
	if !resp.ok() {
		return false, errs.Wrap(rejected(resp.status, resp.body), endpoint)
	}

	var payload contactResponse
	if err := json.Unmarshal(resp.body, &payload); err != nil {
		return false, decodeErr(endpoint, err)
	}
	if payload.Success == nil {
		return false, decodeErr(endpoint, errMissingSuccess)
	}
	return *payload.Success, nil
}

func encodeMultipart(fields map[string]string) ([]byte, string, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, k := range keys {
		if err := w.WriteField(k, fields[k]); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
