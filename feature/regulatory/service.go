package regulatory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"onboarding-dashboard/core/utils"

	"go.uber.org/zap"
)

// ErrMissingFields is returned when a trigger request lacks required fields.
var ErrMissingFields = errors.New("missing required fields")

// ErrNotFound is returned for unknown classification ids.
var ErrNotFound = errors.New("classification not found")

// RequiredFields must be present in every trigger request.
var RequiredFields = []string{"client_id", "entity_name", "entity_type", "jurisdiction", "aum_usd", "business_type"}

// ValidationError describes a malformed trigger request.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Service handles regulatory classification requests.
type Service struct {
	engine *Engine
	store  *Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new regulatory service.
func NewService(engine *Engine, store *Store, logger *zap.Logger) *Service {
	return &Service{
		engine: engine,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// ParseClient builds ClientData from a decoded JSON body. Field presence is
// checked before any value is interpreted.
func (s *Service) ParseClient(body map[string]any) (ClientData, error) {
	var missing []string
	for _, f := range RequiredFields {
		if _, ok := body[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return ClientData{}, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	entityType, err := ParseEntityType(utils.ToString(body["entity_type"]))
	if err != nil {
		return ClientData{}, &ValidationError{Field: "entity_type", Err: err}
	}

	aum, err := utils.ToFloat(body["aum_usd"])
	if err != nil {
		return ClientData{}, &ValidationError{Field: "aum_usd", Err: err}
	}

	return ClientData{
		ClientID:      utils.ToString(body["client_id"]),
		EntityName:    utils.ToString(body["entity_name"]),
		EntityType:    entityType,
		Jurisdiction:  utils.ToString(body["jurisdiction"]),
		AUMUSD:        aum,
		BusinessType:  utils.ToString(body["business_type"]),
		ContactPerson: utils.ToString(body["contact_person"]),
		Email:         utils.ToString(body["email"]),
		CreatedAt:     s.now(),
	}, nil
}

// Trigger stores the client and runs its classification.
func (s *Service) Trigger(ctx context.Context, client ClientData) (*Classification, error) {
	s.store.SaveClient(client)

	c, err := s.engine.Classify(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("classification for %s failed: %w", client.ClientID, err)
	}

	s.store.SaveClassification(c)
	return c, nil
}

// Status returns the full classification.
func (s *Service) Status(id string) (*Classification, error) {
	c, ok := s.store.Classification(id)
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

// List returns summaries of all classifications.
func (s *Service) List() []Summary {
	return s.store.Summaries()
}
