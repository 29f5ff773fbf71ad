// Package api provides an HTTP client for the VidStream server API.
//
// # Overview
//
// This package defines the typed client vidterm uses to talk to a
// self-hosted VidStream instance: channel profiles, video listings,
// playlists, subscription toggles, session login, and the admin account
// endpoints. It handles HTTP communication, the server's uniform response
// envelope, and error classification.
//
// # Response Envelope
//
// Every endpoint wraps its payload in a JSON envelope:
//
//	{"statusCode": 200, "data": {...}, "message": "OK", "success": true}
//
// The client decodes the envelope once and unmarshals the data field into
// the caller's destination type. Listing endpoints that paginate server-side
// nest their documents one level deeper ({"data": {"docs": [...]}}).
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Carry Accept, User-Agent, and a per-call X-Request-Id header
//   - Attach the session bearer token when one is configured
//   - Have a 10-second timeout (configurable via http.Client)
//
// # Error Classification
//
// Failures are returned as *Error with a Kind the caller can branch on:
//
//   - KindNotFound: the handle or resource does not resolve (HTTP 404)
//   - KindConflict: the operation is not a valid transition (HTTP 409,
//     or rejected locally before any call is made)
//   - KindValidation: input rejected locally; no request was issued
//   - KindNetwork: transport failures, decode failures, other 4xx/5xx
//
// Use ErrKind or the Is* helpers rather than matching error strings.
//
// # Design Rationale
//
// The client is intentionally minimal: no caching (the view layers own
// refresh cadence), no retries (callers decide retry policy), no streaming
// (the product is pure request/response polling).
package api
