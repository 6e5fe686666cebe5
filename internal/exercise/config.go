// Package exercise drives ring queues with random push/pull sequences and
// verifies that every value comes back out in order.
package exercise

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/randomizedcoder/ring-queues/internal/ring"
)

// ErrInvalidConfig is returned by Validate and LoadConfig.
var ErrInvalidConfig = errors.New("exercise: invalid configuration")

// Config describes one exercise run. It can be loaded from YAML:
//
//	strategies: [sentinel, backward-sentinel, slot-sacrifice]
//	capacity: 4
//	items: 100
//	seed: 42
//	self_check: true
type Config struct {
	// Strategies lists the strategies to exercise, by name. Empty means all.
	Strategies []string `yaml:"strategies"`
	Capacity   int      `yaml:"capacity"`
	Items      int      `yaml:"items"`
	// Seed makes runs reproducible. Zero picks a random seed.
	Seed      uint64 `yaml:"seed"`
	SelfCheck bool   `yaml:"self_check"`
}

// DefaultConfig mirrors the classic demo: every strategy, four slots,
// values 1 through 100.
func DefaultConfig() Config {
	return Config{
		Capacity:  4,
		Items:     100,
		SelfCheck: true,
	}
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks sizes and strategy names.
func (c Config) Validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("%w: capacity %d, must be at least 1", ErrInvalidConfig, c.Capacity)
	}
	if c.Items < 0 {
		return fmt.Errorf("%w: items %d, must not be negative", ErrInvalidConfig, c.Items)
	}
	if _, err := c.Kinds(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Kinds resolves Strategies, defaulting to every strategy.
func (c Config) Kinds() ([]ring.Kind, error) {
	if len(c.Strategies) == 0 {
		return ring.Kinds(), nil
	}
	kinds := make([]ring.Kind, 0, len(c.Strategies))
	for _, name := range c.Strategies {
		k, err := ring.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Options returns the ring options implied by the configuration.
func (c Config) Options() []ring.Option {
	if c.SelfCheck {
		return []ring.Option{ring.WithSelfCheck()}
	}
	return nil
}
