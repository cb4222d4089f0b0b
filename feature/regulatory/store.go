package regulatory

import "sync"

// Store keeps clients and classifications for the lifetime of the process.
type Store struct {
	mu              sync.RWMutex
	clients         map[string]ClientData
	classifications map[string]*Classification
	order           []string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		clients:         make(map[string]ClientData),
		classifications: make(map[string]*Classification),
	}
}

// SaveClient inserts or replaces a client record.
func (s *Store) SaveClient(c ClientData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[c.ClientID] = c
}

// Client returns the client record by id.
func (s *Store) Client(id string) (ClientData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clients[id]
	return c, ok
}

// SaveClassification stores a classification. Listing follows insertion order.
func (s *Store) SaveClassification(c *Classification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.classifications[c.ClassificationID]; !exists {
		s.order = append(s.order, c.ClassificationID)
	}
	s.classifications[c.ClassificationID] = c
}

// Classification returns a classification by id.
func (s *Store) Classification(id string) (*Classification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.classifications[id]
	return c, ok
}

// Summaries lists all classifications in insertion order.
func (s *Store) Summaries() []Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Summary, 0, len(s.order))
	for _, id := range s.order {
		c := s.classifications[id]
		name := "Unknown"
		if client, ok := s.clients[c.ClientID]; ok {
			name = client.EntityName
		}
		out = append(out, Summary{
			ClassificationID: c.ClassificationID,
			ClientID:         c.ClientID,
			ClientName:       name,
			Status:           c.Status,
			Progress:         c.OverallProgress,
			CreatedAt:        c.CreatedAt,
			CompletedAt:      c.CompletedAt,
			TotalChecks:      c.TotalChecks(),
		})
	}
	return out
}
