package starter

import (
	"errors"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds environment-driven runner settings.
type Config struct {
	// MaxConcurrent caps the number of operations executing at once.
	MaxConcurrent int `env:"STARTER_MAX_CONCURRENT" envDefault:"4"`
	// QueueCapacity caps how many accepted submissions may wait for a slot.
	QueueCapacity int `env:"STARTER_QUEUE_CAPACITY" envDefault:"64"`
	// DrainTimeout bounds how long Stop waits for in-flight operations.
	DrainTimeout time.Duration `env:"STARTER_DRAIN_TIMEOUT" envDefault:"30s"`
}

var defaultEnvLoaded sync.Once

// LoadConfig populates a Config from the environment, loading a .env file
// first if one exists.
//
// Example:
//
//	cfg, err := starter.LoadConfig()
//	if err != nil {
//	    return err
//	}
//	r := starter.NewRunner(starter.WithConfig(cfg))
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the runner cannot operate
// with.
func (c Config) Validate() error {
	if c.MaxConcurrent < 1 {
		return ErrInvalidMaxConcurrent
	}
	if c.QueueCapacity < 1 {
		return ErrInvalidQueueCapacity
	}
	if c.DrainTimeout <= 0 {
		return ErrInvalidDrainTimeout
	}
	return nil
}
