package gamemath

import "time"

// Collectible is a pickup that disappears when collected and reappears at
// a random spot once RespawnDelay has passed.
type Collectible struct {
	Body          RectBody
	Active        bool
	LastCollected time.Time
	RespawnDelay  time.Duration
	Bounds        Bounds
}

// NewCollectible creates an inactive pickup of the given size. Call Spawn
// to place it.
func NewCollectible(w, h int, delay time.Duration, bounds Bounds) Collectible {
	return Collectible{
		Body:         NewRectBody(0, 0, w, h),
		RespawnDelay: delay,
		Bounds:       bounds,
	}
}

// Spawn places the pickup uniformly at random fully inside the playfield and
// activates it.
func (c *Collectible) Spawn(r Rand) {
	c.Body.SetPosition(
		RandInt(r, 0, c.Bounds.Width-c.Body.Width()),
		RandInt(r, 0, c.Bounds.Height-c.Body.Height()),
	)
	c.Active = true
}

// Collect deactivates the pickup and records when it happened.
func (c *Collectible) Collect(now time.Time) {
	c.Active = false
	c.LastCollected = now
}

// Update respawns an inactive pickup once the delay has elapsed. It reports
// whether a respawn happened.
func (c *Collectible) Update(now time.Time, r Rand) bool {
	if c.Active || c.LastCollected.IsZero() {
		return false
	}
	if now.Sub(c.LastCollected) < c.RespawnDelay {
		return false
	}
	c.Spawn(r)
	return true
}
