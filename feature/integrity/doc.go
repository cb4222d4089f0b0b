// Package integrity provides health checks of the dashboard's dependencies.
//
// # Checks Provided
//
//   - Assets: Verifies the templates and static files (index.html, regulatory.html,
//     tailwind.min.css, chart.min.js) exist and are non-empty in the active asset filesystem.
//   - Storage: When documents come from object storage, checks that the bucket and
//     the documents/ folder exist.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/assets : Runs the assets check.
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
package integrity
