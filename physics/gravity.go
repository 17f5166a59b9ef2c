package physics

import "sync"

// Gravity is the shared gravity vector. The input handler writes it between
// ticks and every ball reads it while applying bounds.
type Gravity struct {
	mu   sync.RWMutex
	x, y float64
}

// NewGravity creates a gravity cell with the given components.
func NewGravity(x, y float64) *Gravity {
	return &Gravity{x: x, y: y}
}

// Get returns both components under a read lock.
func (g *Gravity) Get() (x, y float64) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.x, g.y
}

// Set replaces both components.
func (g *Gravity) Set(x, y float64) {
	g.mu.Lock()
	g.x, g.y = x, y
	g.mu.Unlock()
}

// ToggleX switches the x component between 0 and mag. Any non-zero value,
// whatever its sign, goes back to 0. Returns the new value.
func (g *Gravity) ToggleX(mag float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.x = toggle(g.x, mag)
	return g.x
}

// ToggleY is ToggleX for the y component. Positive y points down.
func (g *Gravity) ToggleY(mag float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.y = toggle(g.y, mag)
	return g.y
}

func toggle(cur, mag float64) float64 {
	if cur != 0 {
		return 0
	}
	return mag
}
