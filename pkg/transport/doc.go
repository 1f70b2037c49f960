// Package transport sends JSON requests to the NewNanManager management API
// and turns the responses into typed results or typed failures.
//
// # Request Pipeline
//
// Every call goes through Client.Do:
//
//  1. The query is encoded with EncodeQuery; nil entries are dropped.
//  2. The body is marshaled once; optional request fields use omitempty so
//     absent fields are not sent.
//  3. The request is sent with the bearer token in both the Authorization
//     and X-API-Token headers, plus a per-call X-Request-ID.
//  4. Failures that occur before any response arrives are retried with
//     exponential backoff (RetryDelay * 2^n, no jitter) up to MaxRetries
//     times. HTTP responses are never retried, whatever their status.
//  5. The body is decoded. An object with a "code" key is an envelope:
//     code 0 unwraps "data", anything else is an APIError. Other bodies are
//     decoded as-is.
//
// # Error Handling
//
// Failures can be told apart with errors.As and errors.Is:
//
//	err := client.Get(ctx, "/api/v1/players/1", nil, &player)
//	var apiErr *transport.APIError
//	switch {
//	case errors.As(err, &apiErr):
//	    // business error: apiErr.Code, apiErr.Message, apiErr.RequestID
//	case errors.Is(err, transport.ErrTimeout):
//	    // every attempt timed out
//	case errors.Is(err, transport.ErrConnection):
//	    // every attempt failed to connect
//	}
//
// # Lifecycle
//
// A Client holds one pooled *http.Client. Release it with Close when done:
//
//	client, err := transport.New(transport.NewConfig(baseURL, token))
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
package transport
