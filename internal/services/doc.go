// Package services implements the HTTP clients for the radio streamer server.
//
// # Remote Interface
//
// [Remote] covers every operation the server exposes: station listing and
// management, transport control (play/stop/pause/resume), volume and status.
// [RadioService] is the production implementation; tests substitute doubles.
//
// Each operation issues exactly one blocking request with the client's fixed
// timeout. There is no retry and no backoff: a failed call surfaces an error
// and the caller decides whether to try again on the next tick.
//
// # Status Semantics
//
// [RadioService.Status] never returns a partially-populated snapshot. On any
// failure (transport error, non-2xx status, malformed JSON) it returns the
// zero [models.Status] with Connected=false alongside the error, so callers
// that only look at the snapshot still see a consistent "disconnected" state.
//
// # Raw Access
//
// [APIService] performs raw GET/POST requests against arbitrary server paths
// and backs the `radiodeck api` debugging commands.
//
// # Error Handling
//
// Failures wrap typed errors from the shared package:
//   - [shared.ErrAPIRequest] : non-success HTTP status
//   - [shared.ErrMalformedResponse] : undecodable JSON body
package services
