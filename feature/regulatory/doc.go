// Package regulatory implements the regulatory due diligence stage of client onboarding.
//
// A classification selects the regulations applicable to a client and runs
// three categories of checks concurrently:
//
//   - High-level: eligibility rules on AUM, jurisdiction, entity type and business type.
//   - Document: compliance document fetched from the document source and validated.
//   - Data quality: per-field scores from the data quality system.
//
// Progress is the share of checks in a terminal state. The overall status is
// failed if any high-level or data quality check failed, manual_review if a
// document needs a human, and passed otherwise.
//
// Results live in an in-memory Store for the life of the process.
//
// # HTTP Endpoints
//
//   - GET /regulatory : Renders the due diligence page.
//   - POST /api/regulatory/trigger : Runs a classification for a client.
//   - GET /api/regulatory/status/:id : Returns a classification with all checks.
//   - GET /api/regulatory/list : Lists classification summaries.
package regulatory
