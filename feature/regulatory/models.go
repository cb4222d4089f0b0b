package regulatory

import (
	"fmt"
	"time"
)

// CheckStatus is the lifecycle state of a check or classification.
type CheckStatus string

const (
	StatusPending      CheckStatus = "pending"
	StatusInProgress   CheckStatus = "in_progress"
	StatusPassed       CheckStatus = "passed"
	StatusFailed       CheckStatus = "failed"
	StatusManualReview CheckStatus = "manual_review"
)

// IsTerminal reports whether the status counts as completed for progress.
func (s CheckStatus) IsTerminal() bool {
	return s == StatusPassed || s == StatusFailed
}

// EntityType is the legal form of the onboarding client.
type EntityType string

const (
	EntityHedgeFund         EntityType = "hedge_fund"
	EntityInvestmentAdvisor EntityType = "investment_advisor"
	EntityPensionFund       EntityType = "pension_fund"
	EntityInsuranceCompany  EntityType = "insurance_company"
	EntityBank              EntityType = "bank"
	EntityCorporate         EntityType = "corporate"
)

// ParseEntityType validates an entity type string.
func ParseEntityType(s string) (EntityType, error) {
	switch t := EntityType(s); t {
	case EntityHedgeFund, EntityInvestmentAdvisor, EntityPensionFund,
		EntityInsuranceCompany, EntityBank, EntityCorporate:
		return t, nil
	default:
		return "", fmt.Errorf("'%s' is not a valid EntityType", s)
	}
}

// Regulations is the catalogue from which applicable regulations are drawn.
var Regulations = []string{
	"MiFID II", "AIFMD", "UCITS", "CRD IV", "Solvency II",
	"FATCA", "CRS", "AML/KYC", "GDPR", "Basel III",
	"EMIR", "SFDR", "PRIIPs", "MAR", "BMR",
	"CASS", "CSDR", "Settlement Finality", "Market Abuse", "Prospectus",
}

// ClientData is the onboarding request sent by the upstream system.
type ClientData struct {
	ClientID      string     `json:"client_id"`
	EntityName    string     `json:"entity_name"`
	EntityType    EntityType `json:"entity_type"`
	Jurisdiction  string     `json:"jurisdiction"`
	AUMUSD        float64    `json:"aum_usd"`
	BusinessType  string     `json:"business_type"`
	ContactPerson string     `json:"contact_person"`
	Email         string     `json:"email"`
	CreatedAt     time.Time  `json:"created_at"`
}

// HighLevelCheck is an eligibility check derived from client data alone.
type HighLevelCheck struct {
	CheckID          string          `json:"check_id"`
	RegulationName   string          `json:"regulation_name"`
	CheckDescription string          `json:"check_description"`
	Status           CheckStatus     `json:"status"`
	ResultData       map[string]bool `json:"result_data"`
	CreatedAt        time.Time       `json:"created_at"`
	CompletedAt      *time.Time      `json:"completed_at"`
}

// DocumentCheck is the AI and manual review of one compliance document.
type DocumentCheck struct {
	CheckID            string      `json:"check_id"`
	RegulationName     string      `json:"regulation_name"`
	DocumentType       string      `json:"document_type"`
	DocumentID         string      `json:"document_id"`
	AIValidationStatus CheckStatus `json:"ai_validation_status"`
	ManualReviewStatus CheckStatus `json:"manual_review_status"`
	AIConfidence       float64     `json:"ai_confidence"`
	AIFeedback         string      `json:"ai_feedback"`
	ManualNotes        string      `json:"manual_notes"`
	CreatedAt          time.Time   `json:"created_at"`
	CompletedAt        *time.Time  `json:"completed_at"`
}

// DataQualityCheck is the quality verdict for one field under one regulation.
type DataQualityCheck struct {
	CheckID        string      `json:"check_id"`
	RegulationName string      `json:"regulation_name"`
	FieldName      string      `json:"field_name"`
	Status         CheckStatus `json:"status"`
	DQScore        float64     `json:"dq_score"`
	Issues         []string    `json:"issues"`
	CreatedAt      time.Time   `json:"created_at"`
	CompletedAt    *time.Time  `json:"completed_at"`
}

// Classification is the result of one regulatory due diligence run.
type Classification struct {
	ClientID         string             `json:"client_id"`
	ClassificationID string             `json:"classification_id"`
	Status           CheckStatus        `json:"status"`
	Regulations      []string           `json:"regulations"`
	HighLevelChecks  []HighLevelCheck   `json:"high_level_checks"`
	DocumentChecks   []DocumentCheck    `json:"document_checks"`
	DQChecks         []DataQualityCheck `json:"dq_checks"`
	OverallProgress  float64            `json:"progress"`
	CreatedAt        time.Time          `json:"created_at"`
	CompletedAt      *time.Time         `json:"completed_at"`
}

// TotalChecks counts the checks of all three categories.
func (c *Classification) TotalChecks() int {
	return len(c.HighLevelChecks) + len(c.DocumentChecks) + len(c.DQChecks)
}

// Summary is the list view of a classification.
type Summary struct {
	ClassificationID string      `json:"classification_id"`
	ClientID         string      `json:"client_id"`
	ClientName       string      `json:"client_name"`
	Status           CheckStatus `json:"status"`
	Progress         float64     `json:"progress"`
	CreatedAt        time.Time   `json:"created_at"`
	CompletedAt      *time.Time  `json:"completed_at"`
	TotalChecks      int         `json:"total_checks"`
}

// TriggerResponse is returned when a classification has been run.
type TriggerResponse struct {
	Status           string      `json:"status"`
	ClassificationID string      `json:"classification_id"`
	OverallStatus    CheckStatus `json:"overall_status"`
	Progress         float64     `json:"progress"`
	Message          string      `json:"message"`
}
