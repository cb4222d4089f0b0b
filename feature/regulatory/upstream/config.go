package upstream

// Document sources.
const (
	SourceMock    = "mock"
	SourceStorage = "storage"
)

// Config holds configuration for the upstream systems used by the
// regulatory engine.
type Config struct {
	// DocumentSource selects where compliance documents come from (mock, storage).
	DocumentSource string `mapstructure:"document_source" default:"mock"`
	// SimulateLatency adds the artificial delays of the real upstream APIs.
	SimulateLatency bool `mapstructure:"simulate_latency" default:"true"`
	// Seed fixes the random source. Zero picks a random seed.
	Seed uint64 `mapstructure:"seed" default:"0"`
	// MinRegulations is the lower bound of applicable regulations per client.
	MinRegulations int `mapstructure:"min_regulations" default:"5"`
	// MaxRegulations is the upper bound of applicable regulations per client.
	MaxRegulations int `mapstructure:"max_regulations" default:"10"`
}

// IsValidSource checks if the configured document source is known.
func (c Config) IsValidSource() bool {
	switch c.DocumentSource {
	case SourceMock, SourceStorage:
		return true
	default:
		return false
	}
}
