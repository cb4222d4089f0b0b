package upstream

import (
	"context"
	"fmt"
	"time"

	"onboarding-dashboard/core/utils"
)

const simulatedDocumentType = "regulatory_compliance_statement"

// Simulator stands in for the document API, the LLM validator and the data
// quality API. It implements DocumentSource, Validator and QualitySource.
type Simulator struct {
	rnd     *utils.Random
	latency bool
	now     func() time.Time
}

// NewSimulator creates a simulator. With latency enabled every call sleeps
// for a random delay in the range of the real system.
func NewSimulator(rnd *utils.Random, latency bool) *Simulator {
	return &Simulator{rnd: rnd, latency: latency, now: time.Now}
}

// FetchDocument returns a synthetic OCR extract for the client.
func (s *Simulator) FetchDocument(ctx context.Context, clientID, regulation string) (*Document, error) {
	if err := s.delay(ctx, 0.1, 0.3); err != nil {
		return nil, err
	}

	return &Document{
		ID:   fmt.Sprintf("DOC_%s_%s_%d", clientID, regulation, s.rnd.IntRange(1000, 9999)),
		Type: simulatedDocumentType,
		Content: fmt.Sprintf("Mock OCR extracted content for %s compliance document. "+
			"This document certifies that %s meets the requirements for %s regulation. "+
			"Key compliance points: 1) Entity registration verified 2) Business activities approved "+
			"3) Financial thresholds met 4) Reporting obligations understood.", regulation, clientID, regulation),
		Metadata: DocumentMetadata{
			FileSizeKB:   s.rnd.IntRange(50, 500),
			Pages:        s.rnd.IntRange(1, 10),
			CreatedDate:  s.now(),
			SourceSystem: "upstream_compliance_db",
		},
	}, nil
}

// Validate scores the document. Confidence above ComplianceThreshold means compliant.
func (s *Simulator) Validate(ctx context.Context, content, regulation string) (*Validation, error) {
	if err := s.delay(ctx, 0.2, 0.5); err != nil {
		return nil, err
	}

	confidence := s.rnd.Uniform(0.7, 0.95)
	compliant := confidence > ComplianceThreshold

	points := []string{
		fmt.Sprintf("Document type matches expected %s compliance format", regulation),
		"Entity registration information present",
		"Business activity descriptions align with regulatory requirements",
		"Financial disclosure sections complete",
		"Signature and authorization sections validated",
	}

	v := &Validation{
		IsCompliant:      compliant,
		ConfidenceScore:  confidence,
		ValidationPoints: points[:s.rnd.IntRange(3, 5)],
		IssuesFound:      []string{},
		Recommendation:   RecommendApproved,
		AnalysisSummary:  fmt.Sprintf("Document analysis for %s shows strong compliance indicators.", regulation),
	}
	if !compliant {
		v.IssuesFound = []string{
			fmt.Sprintf("Missing specific %s compliance sections", regulation),
			"Incomplete entity information",
			"Unclear business activity descriptions",
		}
		v.Recommendation = RecommendManualReview
		v.AnalysisSummary = fmt.Sprintf("Document analysis for %s shows areas requiring manual review.", regulation)
	}
	return v, nil
}

// CheckQuality scores every field in QualityFields.
func (s *Simulator) CheckQuality(ctx context.Context, clientID, regulation string) (*QualityReport, error) {
	if err := s.delay(ctx, 0.1, 0.4); err != nil {
		return nil, err
	}

	results := make(map[string]FieldResult, len(QualityFields))
	total := 0.0

	for _, field := range QualityFields {
		score := s.rnd.Uniform(0.6, 1.0)
		res := FieldResult{Score: score, Status: StatusPassed, Issues: []string{}}

		if score < QualityThreshold {
			issues := []string{
				fmt.Sprintf("Data completeness: %s missing required sub-fields", field),
				fmt.Sprintf("Data format: %s format validation failed", field),
				fmt.Sprintf("Data freshness: %s last updated > 90 days ago", field),
			}
			res.Status = StatusFailed
			res.Issues = issues[:s.rnd.IntRange(0, 2)]
		}

		results[field] = res
		total += score
	}

	overall := total / float64(len(QualityFields))
	report := &QualityReport{
		ClientID:        clientID,
		Regulation:      regulation,
		OverallScore:    overall,
		OverallStatus:   StatusPassed,
		FieldResults:    results,
		CheckedAt:       s.now(),
		Recommendations: []string{},
	}
	if overall < QualityThreshold {
		report.OverallStatus = StatusFailed
		report.Recommendations = []string{
			"Update stale data fields within 30 days",
			"Validate business address against official registries",
			"Complete missing regulatory permission documentation",
		}
	}
	return report, nil
}

func (s *Simulator) delay(ctx context.Context, lo, hi float64) error {
	if !s.latency {
		return ctx.Err()
	}
	d := time.Duration(s.rnd.Uniform(lo, hi) * float64(time.Second))
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
