package gamemath

import (
	"testing"
	"time"
)

func TestCollectibleSpawnInsideBounds(t *testing.T) {
	bounds := Bounds{Width: 800, Height: 600}
	r := NewRand(7)
	c := NewCollectible(48, 48, 2*time.Second, bounds)

	for i := 0; i < 1000; i++ {
		c.Spawn(r)
		if !c.Active {
			t.Fatal("Spawn did not activate collectible")
		}
		if c.Body.X < 0 || c.Body.Right() > bounds.Width || c.Body.Y < 0 || c.Body.Bottom() > bounds.Height {
			t.Fatalf("spawned outside bounds at (%d,%d)", c.Body.X, c.Body.Y)
		}
	}
}

func TestCollectibleRespawnDelay(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewRand(1)
	c := NewCollectible(48, 48, 2*time.Second, Bounds{Width: 800, Height: 600})
	c.Spawn(r)

	c.Collect(start)
	if c.Active {
		t.Fatal("collectible still active after Collect")
	}
	if !c.LastCollected.Equal(start) {
		t.Fatalf("LastCollected = %v, want %v", c.LastCollected, start)
	}

	for _, dt := range []time.Duration{0, 500 * time.Millisecond, time.Second, 1999 * time.Millisecond} {
		if c.Update(start.Add(dt), r) {
			t.Fatalf("respawned after %v, before the delay", dt)
		}
		if c.Active {
			t.Fatalf("active after %v, before the delay", dt)
		}
	}

	if !c.Update(start.Add(2*time.Second), r) {
		t.Fatal("did not respawn once the delay elapsed")
	}
	if !c.Active {
		t.Fatal("not active after respawn")
	}
}

func TestCollectibleUpdateWhileActiveIsNoop(t *testing.T) {
	r := NewRand(3)
	c := NewCollectible(48, 48, 2*time.Second, Bounds{Width: 800, Height: 600})
	c.Spawn(r)
	x, y := c.Body.X, c.Body.Y

	if c.Update(time.Now().Add(time.Hour), r) {
		t.Fatal("active collectible reported a respawn")
	}
	if c.Body.X != x || c.Body.Y != y {
		t.Fatal("active collectible moved on Update")
	}
}
