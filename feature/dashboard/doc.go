// Package dashboard serves the client onboarding overview.
//
// # HTTP Endpoints
//
//   - GET / : Renders the index template with the current overview.
//   - GET /api/dashboard : Returns the same overview as JSON.
package dashboard
