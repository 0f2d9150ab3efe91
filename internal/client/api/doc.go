// Package api is the client side of the tourplanner REST backend.
//
// # Overview
//
// Client is the transport-agnostic contract used by the services layer;
// HTTPClient is the concrete implementation. HTTPClient:
//  1. injects the access token as "Authorization: Bearer <token>",
//  2. refreshes an expired access token before sending when the token's
//     "exp" claim says so, and on a 401 refreshes once and replays the
//     request once,
//  3. replaces empty "images" arrays in every response object with the
//     configured default image,
//  4. throttles outgoing requests with a token-bucket limiter.
//
// # Error Handling
//
// Transport failures and 5xx answers map to ErrUnavailable, 401/403 to
// ErrUnauthorized and 404 to ErrNotFound. Any other non-2xx status is
// returned as *StatusError. Match with errors.Is / errors.As.
package api
