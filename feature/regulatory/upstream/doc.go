// Package upstream contains the external systems the regulatory engine talks to.
//
// # Interfaces
//
//   - DocumentSource: fetches a client's compliance document per regulation.
//   - Validator: analyses document content (LLM stand-in).
//   - QualitySource: scores the client record field by field.
//
// # Implementations
//
// Simulator implements all three with randomised outcomes and optional
// latency. StorageDocuments reads real document text from the MinIO/S3
// bucket, selected with REGULATORY_DOCUMENT_SOURCE=storage.
package upstream
