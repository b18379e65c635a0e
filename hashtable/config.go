package hashtable

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/xyproto/env/v2"
)

const (
	DefaultCapacity    = 10
	DefaultMinCapacity = 1
	DefaultGrowAt      = 0.75
	DefaultShrinkAt    = 0.25
)

// Config controls the table's sizing. The zero value is not usable; start
// from DefaultConfig or ConfigFromEnv.
type Config struct {
	InitialCapacity int
	// MinCapacity is the floor for shrinking.
	MinCapacity int
	GrowAt      float64
	ShrinkAt    float64
	// Hasher is HashPositional or HashXX; ignored by NewWithHasher.
	Hasher string
	Logger *log.Entry
}

func DefaultConfig() Config {
	return Config{
		InitialCapacity: DefaultCapacity,
		MinCapacity:     DefaultMinCapacity,
		GrowAt:          DefaultGrowAt,
		ShrinkAt:        DefaultShrinkAt,
		Hasher:          HashPositional,
	}
}

// ConfigFromEnv overlays DefaultConfig with HASHTABLE_* environment variables.
// Load factors are given in percent.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.InitialCapacity = env.Int("HASHTABLE_CAPACITY", cfg.InitialCapacity)
	cfg.MinCapacity = env.Int("HASHTABLE_MIN_CAPACITY", cfg.MinCapacity)
	cfg.GrowAt = float64(env.Int("HASHTABLE_GROW_PERCENT", int(cfg.GrowAt*100))) / 100
	cfg.ShrinkAt = float64(env.Int("HASHTABLE_SHRINK_PERCENT", int(cfg.ShrinkAt*100))) / 100
	cfg.Hasher = env.Str("HASHTABLE_HASHER", cfg.Hasher)
	return cfg
}

func (c Config) Validate() error {
	if c.MinCapacity < 1 {
		return fmt.Errorf("%w: min capacity %d must be positive", ErrInvalidCapacity, c.MinCapacity)
	}
	if c.InitialCapacity < c.MinCapacity {
		return fmt.Errorf("%w: initial capacity %d below min capacity %d", ErrInvalidCapacity, c.InitialCapacity, c.MinCapacity)
	}
	if c.GrowAt <= 0 || c.ShrinkAt < 0 {
		return fmt.Errorf("%w: grow=%v shrink=%v", ErrInvalidLoadFactor, c.GrowAt, c.ShrinkAt)
	}
	// a grow must not land below the shrink threshold and vice versa
	if 2*c.ShrinkAt >= c.GrowAt {
		return fmt.Errorf("%w: shrink %v must be less than half of grow %v", ErrInvalidLoadFactor, c.ShrinkAt, c.GrowAt)
	}
	// below one entry per two buckets a grow fires on the first entry and
	// leaves the load at 1/(2*capacity), above GrowAt
	if 2*c.GrowAt*float64(c.MinCapacity) < 1 {
		return fmt.Errorf("%w: grow %v too small for min capacity %d", ErrInvalidLoadFactor, c.GrowAt, c.MinCapacity)
	}
	return nil
}
