package upstream

import (
	"context"
	"time"
)

// Document is a compliance document fetched from an upstream system.
type Document struct {
	ID       string           `json:"document_id"`
	Type     string           `json:"document_type"`
	Content  string           `json:"content"`
	Metadata DocumentMetadata `json:"metadata"`
}

// DocumentMetadata describes the stored document.
type DocumentMetadata struct {
	FileSizeKB   int       `json:"file_size_kb"`
	Pages        int       `json:"pages"`
	CreatedDate  time.Time `json:"created_date"`
	SourceSystem string    `json:"source_system"`
}

// Validation is the outcome of analysing a document.
type Validation struct {
	IsCompliant      bool     `json:"is_compliant"`
	ConfidenceScore  float64  `json:"confidence_score"`
	ValidationPoints []string `json:"validation_points"`
	IssuesFound      []string `json:"issues_found"`
	Recommendation   string   `json:"recommendation"`
	AnalysisSummary  string   `json:"analysis_summary"`
}

// FieldResult is the data quality verdict for one client field.
type FieldResult struct {
	Score  float64  `json:"score"`
	Status string   `json:"status"`
	Issues []string `json:"issues"`
}

// QualityReport aggregates the data quality verdicts for one regulation.
type QualityReport struct {
	ClientID        string                 `json:"client_id"`
	Regulation      string                 `json:"regulation"`
	OverallScore    float64                `json:"overall_dq_score"`
	OverallStatus   string                 `json:"overall_status"`
	FieldResults    map[string]FieldResult `json:"field_results"`
	CheckedAt       time.Time              `json:"checked_at"`
	Recommendations []string               `json:"recommendations"`
}

// DocumentSource fetches the compliance document of a client for a regulation.
type DocumentSource interface {
	FetchDocument(ctx context.Context, clientID, regulation string) (*Document, error)
}

// Validator analyses document content against a regulation.
type Validator interface {
	Validate(ctx context.Context, content, regulation string) (*Validation, error)
}

// QualitySource runs data quality checks on the stored client record.
type QualitySource interface {
	CheckQuality(ctx context.Context, clientID, regulation string) (*QualityReport, error)
}

// Upstream verdicts.
const (
	StatusPassed = "PASSED"
	StatusFailed = "FAILED"

	RecommendApproved     = "APPROVED"
	RecommendManualReview = "MANUAL_REVIEW_REQUIRED"
)

// Thresholds applied by the simulated systems.
const (
	ComplianceThreshold = 0.8
	QualityThreshold    = 0.8
)

// QualityFields are the client fields checked per regulation, in report order.
var QualityFields = []string{
	"entity_name",
	"registration_number",
	"jurisdiction",
	"business_address",
	"contact_information",
	"financial_data",
	"regulatory_permissions",
	"reporting_obligations",
}
