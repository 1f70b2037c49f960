package transport

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Envelope is the wrapper the API puts around every JSON response. Code 0
// means success; any other code carries an error message and no payload.
type Envelope struct {
	Code      int             `json:"code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data,omitempty"`
	RequestID string          `json:"request_id"`
}

// ErrorPayload is the optional data of an error envelope.
type ErrorPayload struct {
	Details string `json:"details,omitempty"`
}

// apiError converts an error envelope into an APIError.
func (e *Envelope) apiError(statusCode int) *APIError {
	apiErr := &APIError{
		Code:       e.Code,
		Message:    e.Message,
		RequestID:  e.RequestID,
		StatusCode: statusCode,
	}
	if hasPayload(e.Data) {
		var payload ErrorPayload
		if err := json.Unmarshal(e.Data, &payload); err == nil {
			apiErr.Details = payload.Details
		}
	}
	return apiErr
}

// responseBody is a decoded success body. Exactly one of envelope and raw is
// set: envelope when the body was an object with a "code" key, raw otherwise.
type responseBody struct {
	envelope *Envelope
	raw      json.RawMessage
}

// payload returns the bytes to decode into the caller's result.
func (b responseBody) payload() json.RawMessage {
	if b.envelope != nil {
		return b.envelope.Data
	}
	return b.raw
}

var emptyObject = json.RawMessage("{}")

// parseResponseBody decides once, by the presence of a "code" key, whether a
// success body is an envelope or a bare response.
func parseResponseBody(data []byte) (responseBody, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return responseBody{raw: emptyObject}, nil
	}
	if !json.Valid(trimmed) {
		return responseBody{}, &DecodeError{Body: data, Err: errors.New("response body is not valid JSON")}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		// Valid JSON but not an object.
		return responseBody{raw: trimmed}, nil
	}
	if _, ok := fields["code"]; !ok {
		return responseBody{raw: trimmed}, nil
	}

	var env Envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return responseBody{}, &DecodeError{Body: data, Err: err}
	}
	return responseBody{envelope: &env}, nil
}

// decodeErrorEnvelope reads a non-2xx body as an error envelope. It reports
// false unless the body is an object with a numeric "code".
func decodeErrorEnvelope(statusCode int, data []byte) (*APIError, bool) {
	var env struct {
		Code      *int            `json:"code"`
		Message   string          `json:"message"`
		Data      json.RawMessage `json:"data"`
		RequestID string          `json:"request_id"`
	}
	if err := json.Unmarshal(data, &env); err != nil || env.Code == nil {
		return nil, false
	}

	e := &Envelope{
		Code:      *env.Code,
		Message:   env.Message,
		Data:      env.Data,
		RequestID: env.RequestID,
	}
	return e.apiError(statusCode), true
}

func hasPayload(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}
