package gamemath

import (
	"testing"
	"time"
)

// stubRand always returns the low end of every roll.
type stubRand struct{}

func (stubRand) Intn(n int) int   { return 0 }
func (stubRand) Float64() float64 { return 0 }

var testBounds = Bounds{Width: 800, Height: 600}

// quietTuning removes oscillation and jitter so positions are exact.
func quietTuning() EnemyTuning {
	t := DefaultEnemyTuning()
	t.Jitter = IntRange{}
	t.DashOffset = IntRange{Min: 30, Max: 30}
	return t
}

func quietEnemy(x, y int, now time.Time) Enemy {
	return Enemy{
		Body:         NewRectBody(x, y, 48, 48),
		BaseSpeed:    2,
		Speed:        2,
		Amplitude:    0,
		Frequency:    0.03,
		VerticalDir:  1,
		LastDash:     now,
		DashCooldown: 2 * time.Second,
		SpawnTime:    now,
		Alive:        true,
	}
}

func TestEnemyStepHorizontalDrift(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	e := quietEnemy(500, 200, now)

	next, respawned := e.Step(EnemyFrame{Now: now, Difficulty: 1.0, PlayerCenterY: 224, Bounds: testBounds}, stubRand{}, quietTuning())
	if respawned {
		t.Fatal("unexpected respawn")
	}
	// speed = 2 + 1.0*1.5 = 3.5, floored to 3
	if next.Body.X != 497 {
		t.Fatalf("X = %d, want 497", next.Body.X)
	}
	if next.Speed != 3.5 {
		t.Fatalf("Speed = %v, want 3.5", next.Speed)
	}
	if next.Angle != 0.03 {
		t.Fatalf("Angle = %v, want 0.03", next.Angle)
	}
}

func TestEnemyStepScalesWithDifficulty(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	e := quietEnemy(500, 200, now)
	frame := EnemyFrame{Now: now, Difficulty: 4.0, PlayerCenterY: 224, Bounds: testBounds}

	next, _ := e.Step(frame, stubRand{}, quietTuning())
	// speed = 2 + 4.0*1.5 = 8
	if next.Body.X != 492 {
		t.Fatalf("X = %d, want 492", next.Body.X)
	}
}

func TestEnemyDash(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tuning := quietTuning()

	tests := []struct {
		name    string
		playerY int
		elapsed time.Duration
		wantY   int
		reset   bool
	}{
		{"player below, cooldown elapsed", 400, 3 * time.Second, 230, true},
		{"player above, cooldown elapsed", 50, 3 * time.Second, 170, true},
		{"level with player still resets timer", 224, 3 * time.Second, 200, true},
		{"cooldown not elapsed", 400, time.Second, 200, false},
		{"exactly at cooldown does not dash", 400, 2 * time.Second, 200, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := quietEnemy(500, 200, start)
			now := start.Add(tt.elapsed)

			next, _ := e.Step(EnemyFrame{Now: now, Difficulty: 1, PlayerCenterY: tt.playerY, Bounds: testBounds}, stubRand{}, tuning)
			if next.Body.Y != tt.wantY {
				t.Errorf("Y = %d, want %d", next.Body.Y, tt.wantY)
			}
			if tt.reset {
				if !next.LastDash.Equal(now) {
					t.Errorf("LastDash = %v, want %v", next.LastDash, now)
				}
				if next.DashCooldown != 1500*time.Millisecond {
					t.Errorf("DashCooldown = %v, want 1.5s", next.DashCooldown)
				}
			} else if !next.LastDash.Equal(start) {
				t.Errorf("LastDash changed without a dash")
			}
		})
	}
}

func TestEnemyBounceOnlyFlipsDirection(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	frame := EnemyFrame{Now: now, Difficulty: 1, PlayerCenterY: 300, Bounds: testBounds}

	top := quietEnemy(500, 0, now)
	next, _ := top.Step(frame, stubRand{}, quietTuning())
	if next.VerticalDir != -1 {
		t.Fatalf("VerticalDir at top = %d, want -1", next.VerticalDir)
	}
	if next.Body.Y != 0 {
		t.Fatalf("bounce corrected position to %d", next.Body.Y)
	}

	bottom := quietEnemy(500, 560, now)
	bottom.VerticalDir = -1
	next, _ = bottom.Step(frame, stubRand{}, quietTuning())
	if next.VerticalDir != 1 {
		t.Fatalf("VerticalDir past bottom = %d, want 1", next.VerticalDir)
	}
	if next.Body.Y != 560 {
		t.Fatalf("bounce corrected position to %d", next.Body.Y)
	}
}

func TestEnemyRespawnsPastThreshold(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tuning := DefaultEnemyTuning()
	e := quietEnemy(-250, 300, now.Add(-time.Minute))

	next, respawned := e.Step(EnemyFrame{Now: now, Difficulty: 1, PlayerCenterY: 300, Bounds: testBounds}, NewRand(42), tuning)
	if !respawned {
		t.Fatal("expected respawn")
	}
	if !next.Alive {
		t.Fatal("enemy not alive after Step")
	}
	if next.Body.X < testBounds.Width {
		t.Fatalf("X = %d, want >= %d", next.Body.X, testBounds.Width)
	}
	if !next.LastDash.Equal(now) || !next.SpawnTime.Equal(now) {
		t.Fatal("respawn did not reset dash timer and spawn time")
	}
}

func TestEnemyRespawnParametersInRange(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tuning := DefaultEnemyTuning()
	frame := EnemyFrame{Now: now, Difficulty: 1, PlayerCenterY: 300, Bounds: testBounds}

	for seed := int64(0); seed < 50; seed++ {
		r := NewRand(seed)
		e := NewEnemy(800, 100, 48, 48, 3, now, r, tuning)
		for i := 0; i < 20; i++ {
			e = e.Respawn(frame, r, tuning)

			if !tuning.Amplitude.Contains(e.Amplitude) {
				t.Fatalf("seed %d: amplitude %d out of range", seed, e.Amplitude)
			}
			if !tuning.Frequency.Contains(e.Frequency) {
				t.Fatalf("seed %d: frequency %v out of range", seed, e.Frequency)
			}
			if bonus := e.Speed - e.BaseSpeed; !tuning.RespawnSpeedBonus.Contains(bonus) {
				t.Fatalf("seed %d: speed offset %v out of range", seed, bonus)
			}
			if e.VerticalDir != 1 && e.VerticalDir != -1 {
				t.Fatalf("seed %d: vertical dir %d", seed, e.VerticalDir)
			}
			secs := e.DashCooldown.Seconds()
			if !tuning.InitialDashCooldown.Contains(secs) {
				t.Fatalf("seed %d: dash cooldown %v out of range", seed, e.DashCooldown)
			}
			if !tuning.RespawnOffsetX.Contains(e.Body.X - testBounds.Width) {
				t.Fatalf("seed %d: respawn x %d out of range", seed, e.Body.X)
			}
			if e.Body.Y < 0 || e.Body.Bottom() > testBounds.Height {
				t.Fatalf("seed %d: respawn y %d outside playfield", seed, e.Body.Y)
			}
		}
	}
}

func TestEnemyAlwaysAliveAfterStep(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tuning := DefaultEnemyTuning()
	r := NewRand(99)
	e := NewEnemy(800, 100, 48, 48, 4, start, r, tuning)

	respawns := 0
	for frame := 0; frame < 5000; frame++ {
		now := start.Add(time.Duration(frame) * time.Second / 60)
		var respawned bool
		e, respawned = e.Step(EnemyFrame{Now: now, Difficulty: 2, PlayerCenterY: 300, Bounds: testBounds}, r, tuning)
		if !e.Alive {
			t.Fatalf("frame %d: enemy observed dead", frame)
		}
		if respawned {
			respawns++
		}
	}
	if respawns == 0 {
		t.Fatal("enemy never cycled through a respawn")
	}
}

func TestNewEnemySeedReproducible(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tuning := DefaultEnemyTuning()

	a := NewEnemy(800, 100, 48, 48, 2, now, NewRand(5), tuning)
	b := NewEnemy(800, 100, 48, 48, 2, now, NewRand(5), tuning)
	if a != b {
		t.Fatalf("same seed produced different enemies:\n%+v\n%+v", a, b)
	}
}
