package zap

import (
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	logpkg "github.com/thenoobsbr/lib-requirement/requirement/log"

	constant "github.com/thenoobsbr/lib-requirement/requirement/constants"
)

// ErrInvalidConfig is returned by New for unusable settings.
var ErrInvalidConfig = errors.New("invalid zap config")

const callerSkipFrames = 1

// Environment selects the baseline logger profile.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentStaging     Environment = "staging"
	EnvironmentUAT         Environment = "uat"
	EnvironmentDevelopment Environment = "development"
	EnvironmentLocal       Environment = "local"
)

func (e Environment) verbose() bool {
	return e == EnvironmentDevelopment || e == EnvironmentLocal
}

func (e Environment) valid() bool {
	switch e {
	case EnvironmentProduction, EnvironmentStaging, EnvironmentUAT, EnvironmentDevelopment, EnvironmentLocal:
		return true
	default:
		return false
	}
}

// Config holds the inputs of New.
type Config struct {
	Environment Environment
	// Level is a log level name ("debug", "info", "warn", "error"). Empty
	// selects debug for development and local, info otherwise.
	Level string
	// OTelLibraryName is the instrumentation scope of bridged entries.
	// Empty selects the requirement library name.
	OTelLibraryName string
}

// New builds a JSON logger for cfg.Environment, teed into the OpenTelemetry
// log bridge. Its level can be changed later with SetLevel.
func New(cfg Config) (*Logger, error) {
	if !cfg.Environment.valid() {
		return nil, fmt.Errorf("%w: environment %q", ErrInvalidConfig, cfg.Environment)
	}

	level, err := resolveLevel(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	scope := cfg.OTelLibraryName
	if strings.TrimSpace(scope) == "" {
		scope = constant.TelemetryLibraryName
	}

	atomic := zap.NewAtomicLevelAt(toZapLevel(level))

	zapCfg := profile(cfg.Environment)
	zapCfg.Level = atomic

	built, err := zapCfg.Build(
		zap.AddCallerSkip(callerSkipFrames),
		zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, otelzap.NewCore(scope))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	return &Logger{base: built, level: &atomic}, nil
}

func resolveLevel(cfg Config) (logpkg.Level, error) {
	if strings.TrimSpace(cfg.Level) != "" {
		return logpkg.ParseLevel(cfg.Level)
	}

	if cfg.Environment.verbose() {
		return logpkg.LevelDebug, nil
	}

	return logpkg.LevelInfo, nil
}

func profile(environment Environment) zap.Config {
	cfg := zap.NewProductionConfig()
	if environment.verbose() {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.Encoding = "json"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	// Stack traces are attached by the requirement package itself.
	cfg.DisableStacktrace = true

	return cfg
}
