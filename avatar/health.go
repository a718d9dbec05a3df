package avatar

// Health is the avatar's hit points. Other collaborators may damage or heal
// it; values are always clamped to [0, Max].
type Health struct {
	Current int
	Max     int

	// RegenPerSecond is restored once per second of ticks while below Max.
	RegenPerSecond int
	regenTicks     int

	OnDamage func(h *Health, amount int)
}

// NewHealth creates a full Health with the given maximum.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Current: max, Max: max}
}

// IsAlive reports whether any health remains.
func (h *Health) IsAlive() bool {
	return h != nil && h.Current > 0
}

// TakeDamage lowers Current, never below zero.
func (h *Health) TakeDamage(amount int) {
	if h == nil || amount <= 0 {
		return
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.OnDamage != nil {
		h.OnDamage(h, amount)
	}
}

// Heal raises Current, never above Max.
func (h *Health) Heal(amount int) {
	if h == nil || amount <= 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// SetMax changes the maximum and clamps Current if needed.
func (h *Health) SetMax(v int) {
	if h == nil {
		return
	}
	h.Max = v
	if h.Max <= 0 {
		h.Max = 1
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Tick advances regeneration by one frame at tps frames per second.
func (h *Health) Tick(tps int) {
	if h == nil || h.RegenPerSecond <= 0 || tps <= 0 {
		return
	}
	if h.Current >= h.Max {
		h.regenTicks = 0
		return
	}
	h.regenTicks++
	if h.regenTicks >= tps {
		h.regenTicks = 0
		h.Heal(h.RegenPerSecond)
	}
}
