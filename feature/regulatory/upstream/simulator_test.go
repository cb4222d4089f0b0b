package upstream

import (
	"context"
	"testing"
	"time"

	"onboarding-dashboard/core/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator() *Simulator {
	return NewSimulator(utils.NewRandom(99), false)
}

func TestSimulator_FetchDocument(t *testing.T) {
	s := newTestSimulator()

	doc, err := s.FetchDocument(context.Background(), "C-1", "MiFID II")
	require.NoError(t, err)

	assert.Contains(t, doc.ID, "DOC_C-1_MiFID II_")
	assert.Equal(t, simulatedDocumentType, doc.Type)
	assert.Contains(t, doc.Content, "C-1")
	assert.GreaterOrEqual(t, doc.Metadata.FileSizeKB, 50)
	assert.LessOrEqual(t, doc.Metadata.FileSizeKB, 500)
	assert.GreaterOrEqual(t, doc.Metadata.Pages, 1)
	assert.LessOrEqual(t, doc.Metadata.Pages, 10)
}

func TestSimulator_Validate(t *testing.T) {
	s := newTestSimulator()

	for range 100 {
		v, err := s.Validate(context.Background(), "content", "GDPR")
		require.NoError(t, err)

		assert.GreaterOrEqual(t, v.ConfidenceScore, 0.7)
		assert.Less(t, v.ConfidenceScore, 0.95)
		assert.Equal(t, v.ConfidenceScore > ComplianceThreshold, v.IsCompliant)
		assert.GreaterOrEqual(t, len(v.ValidationPoints), 3)
		assert.LessOrEqual(t, len(v.ValidationPoints), 5)

		if v.IsCompliant {
			assert.Empty(t, v.IssuesFound)
			assert.Equal(t, RecommendApproved, v.Recommendation)
		} else {
			assert.Len(t, v.IssuesFound, 3)
			assert.Equal(t, RecommendManualReview, v.Recommendation)
		}
	}
}

func TestSimulator_CheckQuality(t *testing.T) {
	s := newTestSimulator()

	for range 50 {
		r, err := s.CheckQuality(context.Background(), "C-1", "EMIR")
		require.NoError(t, err)

		require.Len(t, r.FieldResults, len(QualityFields))
		sum := 0.0
		for _, field := range QualityFields {
			res, ok := r.FieldResults[field]
			require.True(t, ok, field)
			assert.GreaterOrEqual(t, res.Score, 0.6)
			assert.Less(t, res.Score, 1.0)
			if res.Score >= QualityThreshold {
				assert.Equal(t, StatusPassed, res.Status)
				assert.Empty(t, res.Issues)
			} else {
				assert.Equal(t, StatusFailed, res.Status)
				assert.LessOrEqual(t, len(res.Issues), 2)
			}
			sum += res.Score
		}

		assert.InDelta(t, sum/float64(len(QualityFields)), r.OverallScore, 1e-9)
		if r.OverallScore < QualityThreshold {
			assert.Equal(t, StatusFailed, r.OverallStatus)
			assert.NotEmpty(t, r.Recommendations)
		} else {
			assert.Equal(t, StatusPassed, r.OverallStatus)
			assert.Empty(t, r.Recommendations)
		}
	}
}

func TestSimulator_LatencyHonoursContext(t *testing.T) {
	s := NewSimulator(utils.NewRandom(1), true)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := s.FetchDocument(ctx, "C-1", "MAR")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestConfig_IsValidSource(t *testing.T) {
	assert.True(t, Config{DocumentSource: SourceMock}.IsValidSource())
	assert.True(t, Config{DocumentSource: SourceStorage}.IsValidSource())
	assert.False(t, Config{DocumentSource: "ftp"}.IsValidSource())
	assert.False(t, Config{}.IsValidSource())
}
