package teamdraw

import (
	"fmt"
	"time"

	"github.com/arloliu/teamdraw/strategy"
)

// SuggestionConfig controls the fuzzy suggestions offered when a name is not found.
type SuggestionConfig struct {
	// MaxResults is the maximum number of suggestions returned per query.
	MaxResults int `yaml:"maxResults" mapstructure:"maxResults"`

	// MinSimilarity is the lowest similarity ratio (0.0-1.0) a candidate needs
	// to be suggested. Zero means "use the default"; set a small positive value
	// such as 0.01 to suggest almost everything.
	MinSimilarity float64 `yaml:"minSimilarity" mapstructure:"minSimilarity"`
}

// MirrorConfig configures the NATS JetStream KV bucket holding the published snapshot.
type MirrorConfig struct {
	// Bucket is the KV bucket name. It is created on Start when missing.
	Bucket string `yaml:"bucket" mapstructure:"bucket"`

	// Key is the key the snapshot envelope is stored under.
	Key string `yaml:"key" mapstructure:"key"`

	// Replicas is the bucket replica count used when the bucket is created.
	Replicas int `yaml:"replicas" mapstructure:"replicas"`

	// OperationTimeout bounds every KV get and put.
	OperationTimeout time.Duration `yaml:"operationTimeout" mapstructure:"operationTimeout"`

	// StartupTimeout bounds Start: bucket creation, version discovery and the
	// initial replay of the published snapshot.
	StartupTimeout time.Duration `yaml:"startupTimeout" mapstructure:"startupTimeout"`
}

// Config is the configuration for the Manager.
//
// Zero-valued fields are replaced by their defaults in SetDefaults (Seed
// excepted), including Suggestions.MinSimilarity.
//
// All duration fields accept standard Go duration strings like "5s", "1m".
type Config struct {
	// DefaultTeams is the team count used by Draw when teams <= 0.
	DefaultTeams int `yaml:"defaultTeams" mapstructure:"defaultTeams"`

	// MinTeams and MaxTeams bound the team count the organizer may request.
	// MinTeams cannot go below two.
	MinTeams int `yaml:"minTeams" mapstructure:"minTeams"`
	MaxTeams int `yaml:"maxTeams" mapstructure:"maxTeams"`

	// Strategy names the allocation strategy ("department" or "round_robin").
	// Ignored when WithStrategy is given.
	Strategy string `yaml:"strategy" mapstructure:"strategy"`

	// Seed makes draws reproducible. Zero seeds every Manager randomly.
	Seed uint64 `yaml:"seed" mapstructure:"seed"`

	// Suggestions controls fuzzy suggestions for unknown names.
	Suggestions SuggestionConfig `yaml:"suggestions" mapstructure:"suggestions"`

	// Mirror controls the NATS KV mirror of the published snapshot.
	Mirror MirrorConfig `yaml:"mirror" mapstructure:"mirror"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		DefaultTeams: 7,
		MinTeams:     strategy.MinTeams,
		MaxTeams:     20,
		Strategy:     strategy.NameDepartment,
		Seed:         0,
		Suggestions: SuggestionConfig{
			MaxResults:    5,
			MinSimilarity: 0.75,
		},
		Mirror: MirrorConfig{
			Bucket:           "teamdraw-published",
			Key:              "published",
			Replicas:         1,
			OperationTimeout: 5 * time.Second,
			StartupTimeout:   30 * time.Second,
		},
	}
}

// SetDefaults fills in missing configuration values with production defaults.
//
// Zero is "unset" for every field except Seed, so Suggestions.MinSimilarity: 0
// becomes the default cutoff; configure a small positive ratio instead.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.DefaultTeams == 0 {
		cfg.DefaultTeams = defaults.DefaultTeams
	}
	if cfg.MinTeams == 0 {
		cfg.MinTeams = defaults.MinTeams
	}
	if cfg.MaxTeams == 0 {
		cfg.MaxTeams = defaults.MaxTeams
	}
	if cfg.Strategy == "" {
		cfg.Strategy = defaults.Strategy
	}
	if cfg.Suggestions.MaxResults == 0 {
		cfg.Suggestions.MaxResults = defaults.Suggestions.MaxResults
	}
	if cfg.Suggestions.MinSimilarity == 0 {
		cfg.Suggestions.MinSimilarity = defaults.Suggestions.MinSimilarity
	}
	if cfg.Mirror.Bucket == "" {
		cfg.Mirror.Bucket = defaults.Mirror.Bucket
	}
	if cfg.Mirror.Key == "" {
		cfg.Mirror.Key = defaults.Mirror.Key
	}
	if cfg.Mirror.Replicas == 0 {
		cfg.Mirror.Replicas = defaults.Mirror.Replicas
	}
	if cfg.Mirror.OperationTimeout == 0 {
		cfg.Mirror.OperationTimeout = defaults.Mirror.OperationTimeout
	}
	if cfg.Mirror.StartupTimeout == 0 {
		cfg.Mirror.StartupTimeout = defaults.Mirror.StartupTimeout
	}
	// Seed 0 is meaningful (random), so no default is applied.
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Hard Validation Rules:
//   - MinTeams >= 2
//   - MinTeams <= DefaultTeams <= MaxTeams
//   - Strategy names a built-in strategy
//   - Suggestions.MaxResults >= 1 and 0 <= Suggestions.MinSimilarity <= 1
//   - Mirror.Bucket and Mirror.Key are set, Mirror.Replicas >= 1
//   - Mirror timeouts > 0
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.MinTeams < strategy.MinTeams {
		return fmt.Errorf("MinTeams (%d) must be >= %d", cfg.MinTeams, strategy.MinTeams)
	}

	if cfg.MaxTeams < cfg.MinTeams {
		return fmt.Errorf("MaxTeams (%d) must be >= MinTeams (%d)", cfg.MaxTeams, cfg.MinTeams)
	}

	if cfg.DefaultTeams < cfg.MinTeams || cfg.DefaultTeams > cfg.MaxTeams {
		return fmt.Errorf(
			"DefaultTeams (%d) must be within [MinTeams, MaxTeams] = [%d, %d]",
			cfg.DefaultTeams, cfg.MinTeams, cfg.MaxTeams,
		)
	}

	if _, err := strategy.New(cfg.Strategy); err != nil {
		return fmt.Errorf("Strategy %q: %w", cfg.Strategy, err)
	}

	if cfg.Suggestions.MaxResults < 1 {
		return fmt.Errorf("Suggestions.MaxResults must be >= 1, got %d", cfg.Suggestions.MaxResults)
	}

	if cfg.Suggestions.MinSimilarity < 0 || cfg.Suggestions.MinSimilarity > 1 {
		return fmt.Errorf("Suggestions.MinSimilarity must be within [0, 1], got %v", cfg.Suggestions.MinSimilarity)
	}

	if cfg.Mirror.Bucket == "" || cfg.Mirror.Key == "" {
		return fmt.Errorf("Mirror.Bucket (%q) and Mirror.Key (%q) must be set", cfg.Mirror.Bucket, cfg.Mirror.Key)
	}

	if cfg.Mirror.Replicas < 1 {
		return fmt.Errorf("Mirror.Replicas must be >= 1, got %d", cfg.Mirror.Replicas)
	}

	if cfg.Mirror.OperationTimeout <= 0 || cfg.Mirror.StartupTimeout <= 0 {
		return fmt.Errorf(
			"Mirror.OperationTimeout (%v) and Mirror.StartupTimeout (%v) must be > 0",
			cfg.Mirror.OperationTimeout, cfg.Mirror.StartupTimeout,
		)
	}

	return nil
}

// ValidateWithWarnings logs warnings for valid but unusual values.
//
// This is called after Validate() in NewManager() to provide operator guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if cfg.Seed != 0 {
		logger.Warn("fixed seed configured, every draw sequence is reproducible", "seed", cfg.Seed)
	}

	if cfg.Suggestions.MinSimilarity < 0.5 {
		logger.Warn(
			"MinSimilarity is low, suggestions may be unrelated names",
			"minSimilarity", cfg.Suggestions.MinSimilarity,
			"recommended", 0.75,
		)
	}

	if cfg.Mirror.StartupTimeout < cfg.Mirror.OperationTimeout {
		logger.Warn(
			"Mirror.StartupTimeout is shorter than a single KV operation",
			"startupTimeout", cfg.Mirror.StartupTimeout,
			"operationTimeout", cfg.Mirror.OperationTimeout,
		)
	}
}

// TestConfig returns a configuration tuned for tests.
//
// The seed is fixed so draws are reproducible and mirror timeouts are short.
//
// Returns:
//   - Config: Configuration with fast timings for tests
//
// Example:
//
//	cfg := teamdraw.TestConfig()
//	cfg.Mirror.Bucket = "test-published"
//	mgr, err := teamdraw.NewManager(&cfg, teamdraw.WithRosterSource(src))
func TestConfig() Config {
	cfg := DefaultConfig()

	cfg.Seed = 1
	cfg.Mirror.OperationTimeout = 1 * time.Second
	cfg.Mirror.StartupTimeout = 5 * time.Second

	return cfg
}
