package internal

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jateen67/minheap/heap"
	"github.com/jateen67/minheap/utils"
)

const (
	ConfigCapacity = "capacity"
	ConfigShards   = "shards"
	ConfigLogLevel = "log-level"
	ConfigRunSize  = "run-size"

	envPrefix = "MINHEAP"
)

type Config struct {
	Capacity int
	Shards   int
	LogLevel string
	RunSize  int
}

// NewViper returns a viper instance carrying the defaults and reading
// MINHEAP_* environment variables (MINHEAP_LOG_LEVEL for log-level).
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(ConfigCapacity, 16)
	v.SetDefault(ConfigShards, 1)
	v.SetDefault(ConfigLogLevel, "info")
	v.SetDefault(ConfigRunSize, 8)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func LoadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		Capacity: v.GetInt(ConfigCapacity),
		Shards:   v.GetInt(ConfigShards),
		LogLevel: v.GetString(ConfigLogLevel),
		RunSize:  v.GetInt(ConfigRunSize),
	}
	if cfg.Capacity <= 0 {
		return Config{}, errors.Wrapf(utils.ErrInvalidCapacity, "capacity %d", cfg.Capacity)
	}
	if cfg.Shards <= 0 {
		return Config{}, errors.Errorf("shards must be positive, got %d", cfg.Shards)
	}
	if cfg.RunSize < 0 {
		return Config{}, errors.Errorf("run-size must not be negative, got %d", cfg.RunSize)
	}
	return cfg, nil
}

// NewQueue builds a single heap, or a cluster when more than one shard is
// configured.
func NewQueue(cfg Config, logger *zap.Logger) (Queue, error) {
	if cfg.Shards == 1 {
		q, err := NewHeapQueue(cfg.Capacity, heap.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		return q, nil
	}

	c, err := NewCluster(cfg.Shards, cfg.Capacity, logger)
	if err != nil {
		return nil, err
	}
	return c, nil
}
