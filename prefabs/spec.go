package prefabs

import (
	"fmt"
	"time"

	"github.com/milk9111/pursuit/pursuer"
	"gopkg.in/yaml.v3"
)

const ArenaFile = "arena.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ArenaSpec configures one play session.
type ArenaSpec struct {
	Name       string         `yaml:"name"`
	Seed       uint64         `yaml:"seed"`
	Viewport   ViewportSpec   `yaml:"viewport"`
	Avatar     AvatarSpec     `yaml:"avatar"`
	Pursuer    PursuerSpec    `yaml:"pursuer"`
	Difficulty DifficultySpec `yaml:"difficulty"`
}

type ViewportSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type AvatarSpec struct {
	Speed          float64 `yaml:"speed"`
	Health         int     `yaml:"health"`
	RegenPerSecond int     `yaml:"regen_per_second"`
}

type PursuerSpec struct {
	Speed           float64 `yaml:"speed"`
	SpawnIntervalMS float64 `yaml:"spawn_interval_ms"`
	Tint            bool    `yaml:"tint"`
}

type DifficultySpec struct {
	Script  string  `yaml:"script"`
	EveryMS float64 `yaml:"every_ms"`
}

// LoadArenaSpec loads the arena from path, or the default arena.yaml when
// path is empty, and fills unset fields.
func LoadArenaSpec(path string) (*ArenaSpec, error) {
	if path == "" {
		path = ArenaFile
	}
	spec, err := LoadSpec[ArenaSpec](path)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	return &spec, nil
}

func (s *ArenaSpec) applyDefaults() {
	if s.Viewport.Width <= 0 {
		s.Viewport.Width = 800
	}
	if s.Viewport.Height <= 0 {
		s.Viewport.Height = 600
	}
	if s.Seed == 0 {
		s.Seed = 1
	}
	if s.Difficulty.EveryMS <= 0 {
		s.Difficulty.EveryMS = 1000
	}
}

// SpawnInterval converts spawn_interval_ms, reporting false for values the
// controller would reject.
func (s *ArenaSpec) SpawnInterval() (time.Duration, bool) {
	return pursuer.IntervalFromMillis(s.Pursuer.SpawnIntervalMS)
}

// RampEvery is how often the difficulty script runs.
func (s *ArenaSpec) RampEvery() time.Duration {
	d, ok := pursuer.IntervalFromMillis(s.Difficulty.EveryMS)
	if !ok {
		return time.Second
	}
	return d
}
