package regulatory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"onboarding-dashboard/core/utils"
	"onboarding-dashboard/feature/regulatory/upstream"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AUMThreshold is the minimum AUM in USD for fund regulations.
const AUMThreshold = 100_000_000

var (
	aumRegulations         = []string{"AIFMD", "UCITS"}
	supportedJurisdictions = []string{"US", "UK", "EU", "SG"}
	eligibleEntityTypes    = []EntityType{EntityHedgeFund, EntityInvestmentAdvisor, EntityBank}
)

// Engine runs regulatory classifications against the upstream systems.
type Engine struct {
	documents upstream.DocumentSource
	validator upstream.Validator
	quality   upstream.QualitySource
	rnd       *utils.Random
	logger    *zap.Logger
	minRegs   int
	maxRegs   int
	now       func() time.Time
}

// EngineConfig bundles the Engine dependencies.
type EngineConfig struct {
	Documents      upstream.DocumentSource
	Validator      upstream.Validator
	Quality        upstream.QualitySource
	Random         *utils.Random
	Logger         *zap.Logger
	MinRegulations int
	MaxRegulations int
}

// NewEngine creates an Engine. Regulation bounds default to 5..10.
func NewEngine(cfg EngineConfig) *Engine {
	e := &Engine{
		documents: cfg.Documents,
		validator: cfg.Validator,
		quality:   cfg.Quality,
		rnd:       cfg.Random,
		logger:    cfg.Logger,
		minRegs:   cfg.MinRegulations,
		maxRegs:   cfg.MaxRegulations,
		now:       time.Now,
	}
	if e.rnd == nil {
		e.rnd = utils.NewRandom(0)
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if e.minRegs <= 0 {
		e.minRegs = 5
	}
	if e.maxRegs < e.minRegs {
		e.maxRegs = max(e.minRegs, 10)
	}
	return e
}

// SelectRegulations draws the applicable regulations for a client.
func (e *Engine) SelectRegulations() []string {
	return e.rnd.Sample(Regulations, e.rnd.IntRange(e.minRegs, e.maxRegs))
}

// Classify runs all three check categories concurrently and aggregates them.
func (e *Engine) Classify(ctx context.Context, client ClientData) (*Classification, error) {
	regs := e.SelectRegulations()
	e.logger.Info("Starting regulatory classification",
		zap.String("client_id", client.ClientID),
		zap.Strings("regulations", regs))

	var (
		highLevel []HighLevelCheck
		documents []DocumentCheck
		quality   []DataQualityCheck
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		highLevel = e.HighLevelChecks(client, regs)
		return nil
	})
	g.Go(func() error {
		var err error
		documents, err = e.DocumentChecks(gctx, client.ClientID, regs)
		return err
	})
	g.Go(func() error {
		var err error
		quality, err = e.QualityChecks(gctx, client.ClientID, regs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := &Classification{
		ClientID:         client.ClientID,
		ClassificationID: uuid.NewString(),
		Regulations:      regs,
		HighLevelChecks:  highLevel,
		DocumentChecks:   documents,
		DQChecks:         quality,
		CreatedAt:        e.now(),
	}
	c.OverallProgress = Progress(highLevel, documents, quality)
	c.Status = OverallStatus(highLevel, documents, quality)
	if c.Status.IsTerminal() {
		done := e.now()
		c.CompletedAt = &done
	}

	e.logger.Info("Regulatory classification completed",
		zap.String("client_id", client.ClientID),
		zap.String("classification_id", c.ClassificationID),
		zap.String("status", string(c.Status)),
		zap.Float64("progress", c.OverallProgress))

	return c, nil
}

// HighLevelChecks evaluates the eligibility rules for every regulation.
func (e *Engine) HighLevelChecks(client ClientData, regs []string) []HighLevelCheck {
	checks := make([]HighLevelCheck, 0, len(regs))

	for _, reg := range regs {
		result := map[string]bool{
			"aum_threshold_met":      !slices.Contains(aumRegulations, reg) || client.AUMUSD >= AUMThreshold,
			"jurisdiction_supported": slices.Contains(supportedJurisdictions, client.Jurisdiction),
			"entity_type_eligible":   slices.Contains(eligibleEntityTypes, client.EntityType),
			"business_type_approved": strings.Contains(strings.ToLower(client.BusinessType), "investment"),
		}

		status := StatusPassed
		for _, ok := range result {
			if !ok {
				status = StatusFailed
				break
			}
		}

		now := e.now()
		checks = append(checks, HighLevelCheck{
			CheckID:          uuid.NewString(),
			RegulationName:   reg,
			CheckDescription: fmt.Sprintf("High-level eligibility check for %s", reg),
			Status:           status,
			ResultData:       result,
			CreatedAt:        now,
			CompletedAt:      &now,
		})
	}

	return checks
}

// DocumentChecks fetches and validates one document per regulation.
// A document that cannot be fetched is routed to manual review.
func (e *Engine) DocumentChecks(ctx context.Context, clientID string, regs []string) ([]DocumentCheck, error) {
	checks := make([]DocumentCheck, 0, len(regs))

	for _, reg := range regs {
		created := e.now()
		check := DocumentCheck{
			CheckID:            uuid.NewString(),
			RegulationName:     reg,
			AIValidationStatus: StatusManualReview,
			ManualReviewStatus: StatusPending,
			CreatedAt:          created,
		}

		doc, err := e.documents.FetchDocument(ctx, clientID, reg)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			e.logger.Warn("Document fetch failed",
				zap.String("client_id", clientID),
				zap.String("regulation", reg),
				zap.Error(err))
			check.AIFeedback = fmt.Sprintf("Document could not be retrieved: %v", err)
			checks = append(checks, check)
			continue
		}

		v, err := e.validator.Validate(ctx, doc.Content, reg)
		if err != nil {
			return nil, fmt.Errorf("failed to validate %s document: %w", reg, err)
		}

		check.DocumentType = doc.Type
		check.DocumentID = doc.ID
		check.AIConfidence = v.ConfidenceScore
		check.AIFeedback = v.AnalysisSummary
		if v.IsCompliant {
			done := e.now()
			check.AIValidationStatus = StatusPassed
			check.ManualReviewStatus = StatusPassed
			check.CompletedAt = &done
		}

		checks = append(checks, check)
	}

	return checks, nil
}

// QualityChecks produces one check per regulation and field.
func (e *Engine) QualityChecks(ctx context.Context, clientID string, regs []string) ([]DataQualityCheck, error) {
	checks := make([]DataQualityCheck, 0, len(regs)*len(upstream.QualityFields))

	for _, reg := range regs {
		report, err := e.quality.CheckQuality(ctx, clientID, reg)
		if err != nil {
			return nil, fmt.Errorf("failed to check data quality for %s: %w", reg, err)
		}

		for _, field := range upstream.QualityFields {
			res, ok := report.FieldResults[field]
			if !ok {
				continue
			}

			status := StatusFailed
			if res.Status == upstream.StatusPassed {
				status = StatusPassed
			}

			now := e.now()
			checks = append(checks, DataQualityCheck{
				CheckID:        uuid.NewString(),
				RegulationName: reg,
				FieldName:      field,
				Status:         status,
				DQScore:        res.Score,
				Issues:         res.Issues,
				CreatedAt:      now,
				CompletedAt:    &now,
			})
		}
	}

	return checks, nil
}

// Progress is the percentage of checks in a terminal state. Document checks
// count by their AI validation status.
func Progress(highLevel []HighLevelCheck, documents []DocumentCheck, quality []DataQualityCheck) float64 {
	total := len(highLevel) + len(documents) + len(quality)
	if total == 0 {
		return 0
	}

	completed := 0
	for _, c := range highLevel {
		if c.Status.IsTerminal() {
			completed++
		}
	}
	for _, c := range documents {
		if c.AIValidationStatus.IsTerminal() {
			completed++
		}
	}
	for _, c := range quality {
		if c.Status.IsTerminal() {
			completed++
		}
	}

	return float64(completed) / float64(total) * 100
}

// OverallStatus is failed when any high-level or data quality check failed,
// manual_review when a document awaits review, passed otherwise.
func OverallStatus(highLevel []HighLevelCheck, documents []DocumentCheck, quality []DataQualityCheck) CheckStatus {
	for _, c := range highLevel {
		if c.Status == StatusFailed {
			return StatusFailed
		}
	}
	for _, c := range quality {
		if c.Status == StatusFailed {
			return StatusFailed
		}
	}
	for _, c := range documents {
		if c.AIValidationStatus == StatusManualReview {
			return StatusManualReview
		}
	}
	return StatusPassed
}
