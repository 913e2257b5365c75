package requirement

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"

	"github.com/thenoobsbr/lib-requirement/requirement/internal/pattern"
	"github.com/thenoobsbr/lib-requirement/requirement/log"
)

// ErrInvalidConfig is returned when configuration cannot be parsed or applied.
var ErrInvalidConfig = errors.New("invalid requirement config")

const productionEnvironment = "production"

// Config is the process-wide failure-path policy. It never changes whether a
// check passes.
type Config struct {
	// Environment and GoEnvironment mirror the ENV / GO_ENV conventions; either
	// one set to "production" enables production mode.
	Environment   string `env:"ENV"`
	GoEnvironment string `env:"GO_ENV"`
	// ProductionMode forces production mode regardless of the environment names.
	ProductionMode bool `env:"REQUIREMENT_PRODUCTION_MODE" envDefault:"false"`
	// IncludeStack appends a stack trace to failure logs and span events outside production.
	IncludeStack bool `env:"REQUIREMENT_INCLUDE_STACK" envDefault:"true"`
	// FailureLogLevel is the level requirement failures are logged at.
	// Invalid-argument errors are always logged at error level.
	FailureLogLevel log.Level `env:"REQUIREMENT_FAILURE_LOG_LEVEL" envDefault:"warn"`
	// PatternCacheSize bounds the compiled pattern cache.
	PatternCacheSize int `env:"REQUIREMENT_PATTERN_CACHE_SIZE" envDefault:"1024"`
}

// DefaultConfig returns the policy in effect before Configure is called.
func DefaultConfig() Config {
	return Config{
		IncludeStack:     true,
		FailureLogLevel:  log.LevelWarn,
		PatternCacheSize: pattern.DefaultCacheSize,
	}
}

// LoadConfig reads Config from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// LoadConfigFrom reads Config from the given variables instead of the process environment.
func LoadConfigFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// IsProduction reports whether cfg selects production mode.
func (c Config) IsProduction() bool {
	return c.ProductionMode ||
		strings.EqualFold(strings.TrimSpace(c.Environment), productionEnvironment) ||
		strings.EqualFold(strings.TrimSpace(c.GoEnvironment), productionEnvironment)
}

// Validate checks that every field can be applied.
func (c Config) Validate() error {
	if !c.FailureLogLevel.Valid() {
		return fmt.Errorf("%w: failure log level: %w: %s", ErrInvalidConfig, log.ErrInvalidLevel, c.FailureLogLevel)
	}

	if c.PatternCacheSize <= 0 {
		return fmt.Errorf("%w: pattern cache size must be positive, got %d", ErrInvalidConfig, c.PatternCacheSize)
	}

	return nil
}

type policy struct {
	production   bool
	includeStack bool
	failureLevel log.Level
}

var (
	policyMu      sync.RWMutex
	currentPolicy = policy{includeStack: true, failureLevel: log.LevelWarn}
)

// Configure validates and applies cfg.
func Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := pattern.SetCacheSize(cfg.PatternCacheSize); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	policyMu.Lock()
	defer policyMu.Unlock()

	currentPolicy = policy{
		production:   cfg.IsProduction(),
		includeStack: cfg.IncludeStack,
		failureLevel: cfg.FailureLogLevel,
	}

	return nil
}

// SetProductionMode enables or disables production mode. In production mode
// stack traces are left out of failure logs and span events.
func SetProductionMode(enabled bool) {
	policyMu.Lock()
	defer policyMu.Unlock()

	currentPolicy.production = enabled
}

// IsProductionMode returns whether production mode is enabled.
func IsProductionMode() bool {
	policyMu.RLock()
	defer policyMu.RUnlock()

	return currentPolicy.production
}

func loadPolicy() policy {
	policyMu.RLock()
	defer policyMu.RUnlock()

	return currentPolicy
}

func shouldIncludeStack() bool {
	p := loadPolicy()
	if p.production || !p.includeStack {
		return false
	}

	// Fallback for processes that never called Configure.
	return !strings.EqualFold(strings.TrimSpace(os.Getenv("ENV")), productionEnvironment) &&
		!strings.EqualFold(strings.TrimSpace(os.Getenv("GO_ENV")), productionEnvironment)
}
