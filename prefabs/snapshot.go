package prefabs

import (
	"fmt"

	"github.com/milk9111/pursuit/pursuer"
	"gopkg.in/yaml.v3"
)

// Snapshot is a debug dump of the arena state.
type Snapshot struct {
	SpawnIntervalMS int64           `yaml:"spawn_interval_ms"`
	Speed           float64         `yaml:"speed"`
	Avatar          PointSpec       `yaml:"avatar"`
	Pursuers        []PursuerRecord `yaml:"pursuers"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PursuerRecord struct {
	ID       int       `yaml:"id"`
	Position PointSpec `yaml:"position"`
	Radius   float64   `yaml:"radius"`
	Speed    float64   `yaml:"speed"`
}

// NewSnapshot records the controller's population and settings.
func NewSnapshot(c *pursuer.Controller, avatar pursuer.Avatar) Snapshot {
	snap := Snapshot{
		SpawnIntervalMS: c.SpawnInterval().Milliseconds(),
		Speed:           c.Speed(),
	}
	if avatar != nil {
		pos := avatar.Position()
		snap.Avatar = PointSpec{X: pos.X, Y: pos.Y}
	}
	for _, p := range c.Population() {
		snap.Pursuers = append(snap.Pursuers, PursuerRecord{
			ID:       p.ID,
			Position: PointSpec{X: p.Position.X, Y: p.Position.Y},
			Radius:   p.Radius,
			Speed:    p.Speed,
		})
	}
	return snap
}

// Encode renders the snapshot as YAML.
func (s Snapshot) Encode() ([]byte, error) {
	b, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("prefabs: encode snapshot: %w", err)
	}
	return b, nil
}
