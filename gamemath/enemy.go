package gamemath

import (
	"math"
	"time"
)

// IntRange is an inclusive integer range.
type IntRange struct {
	Min, Max int
}

// Roll draws a value from the range.
func (ir IntRange) Roll(r Rand) int { return RandInt(r, ir.Min, ir.Max) }

// Contains reports whether v lies in the range.
func (ir IntRange) Contains(v int) bool { return v >= ir.Min && v <= ir.Max }

// FloatRange is a half-open float range [Min, Max).
type FloatRange struct {
	Min, Max float64
}

// Roll draws a value from the range.
func (fr FloatRange) Roll(r Rand) float64 { return Uniform(r, fr.Min, fr.Max) }

// Contains reports whether v lies in the range. Max is accepted to absorb
// float rounding in Uniform.
func (fr FloatRange) Contains(v float64) bool { return v >= fr.Min && v <= fr.Max }

// RollSeconds draws a duration, interpreting the range as seconds.
func (fr FloatRange) RollSeconds(r Rand) time.Duration {
	return time.Duration(fr.Roll(r) * float64(time.Second))
}

// EnemyTuning holds every constant and random range of the enemy model.
type EnemyTuning struct {
	SpeedPerDifficulty  float64
	OscillationScale    float64
	Jitter              IntRange
	Amplitude           IntRange
	Frequency           FloatRange // radians per frame
	DashOffset          IntRange
	DashCooldown        FloatRange // seconds, rolled after each dash
	InitialDashCooldown FloatRange // seconds, rolled on spawn and respawn
	RespawnOffsetX      IntRange
	RespawnSpeedBonus   FloatRange
	DespawnX            int // right edge threshold left of the window
}

// DefaultEnemyTuning returns the stock enemy behaviour.
func DefaultEnemyTuning() EnemyTuning {
	return EnemyTuning{
		SpeedPerDifficulty:  1.5,
		OscillationScale:    0.05,
		Jitter:              IntRange{Min: -1, Max: 2},
		Amplitude:           IntRange{Min: 30, Max: 80},
		Frequency:           FloatRange{Min: 0.02, Max: 0.05},
		DashOffset:          IntRange{Min: 20, Max: 40},
		DashCooldown:        FloatRange{Min: 1.5, Max: 3.5},
		InitialDashCooldown: FloatRange{Min: 2, Max: 4},
		RespawnOffsetX:      IntRange{Min: 0, Max: 150},
		RespawnSpeedBonus:   FloatRange{Min: 0, Max: 2},
		DespawnX:            -200,
	}
}

// Enemy is the movement state of one enemy. It is a plain value: Step and
// Respawn return the next state instead of mutating in place.
type Enemy struct {
	Body         RectBody
	BaseSpeed    float64
	Speed        float64
	Angle        float64
	Amplitude    int
	Frequency    float64
	VerticalDir  int
	LastDash     time.Time
	DashCooldown time.Duration
	SpawnTime    time.Time
	Alive        bool
}

// EnemyFrame is the read-only context an enemy sees for one frame.
type EnemyFrame struct {
	Now           time.Time
	Difficulty    float64
	PlayerCenterY int
	Bounds        Bounds
}

// NewEnemy creates an enemy at (x, y) with freshly rolled oscillation and
// dash parameters. The dash timer starts at now.
func NewEnemy(x, y, w, h int, baseSpeed float64, now time.Time, r Rand, t EnemyTuning) Enemy {
	return Enemy{
		Body:         NewRectBody(x, y, w, h),
		BaseSpeed:    baseSpeed,
		Speed:        baseSpeed,
		Amplitude:    t.Amplitude.Roll(r),
		Frequency:    t.Frequency.Roll(r),
		VerticalDir:  RandSign(r),
		LastDash:     now,
		DashCooldown: t.InitialDashCooldown.RollSeconds(r),
		SpawnTime:    now,
		Alive:        true,
	}
}

// Despawned reports whether the enemy has drifted far enough off the left
// edge to be recycled.
func (e Enemy) Despawned(t EnemyTuning) bool {
	return e.Body.Right() < t.DespawnX
}

// Step advances the enemy by one frame. When the enemy leaves the playfield
// it is respawned before Step returns, and respawned is true. The returned
// state always has Alive set.
func (e Enemy) Step(f EnemyFrame, r Rand, t EnemyTuning) (next Enemy, respawned bool) {
	e.Speed = e.BaseSpeed + f.Difficulty*t.SpeedPerDifficulty
	e.Body.X -= int(math.Floor(e.Speed))

	e.Angle += e.Frequency
	e.Body.Y += int(math.Sin(e.Angle) * float64(e.Amplitude) * t.OscillationScale)
	e.Body.Y += e.VerticalDir * t.Jitter.Roll(r)

	e = e.dash(f, r, t)

	if e.Body.Top() <= 0 || e.Body.Bottom() >= f.Bounds.Height {
		e.VerticalDir = -e.VerticalDir
	}

	if e.Despawned(t) {
		e.Alive = false
	}
	if !e.Alive {
		return e.Respawn(f, r, t), true
	}
	return e, false
}

// dash lunges vertically toward the player once the cooldown has elapsed.
// The timer resets even when the centers are level and no jump happens.
func (e Enemy) dash(f EnemyFrame, r Rand, t EnemyTuning) Enemy {
	if f.Now.Sub(e.LastDash) <= e.DashCooldown {
		return e
	}

	cy := e.Body.CenterY()
	switch {
	case cy < f.PlayerCenterY:
		e.Body.Y += t.DashOffset.Roll(r)
	case cy > f.PlayerCenterY:
		e.Body.Y -= t.DashOffset.Roll(r)
	}

	e.LastDash = f.Now
	e.DashCooldown = t.DashCooldown.RollSeconds(r)
	return e
}

// Respawn returns the enemy reset just past the right edge with freshly
// rolled parameters.
func (e Enemy) Respawn(f EnemyFrame, r Rand, t EnemyTuning) Enemy {
	e.Body.SetPosition(
		f.Bounds.Width+t.RespawnOffsetX.Roll(r),
		RandInt(r, 0, f.Bounds.Height-e.Body.Height()),
	)
	e.Speed = e.BaseSpeed + t.RespawnSpeedBonus.Roll(r)
	e.Amplitude = t.Amplitude.Roll(r)
	e.Frequency = t.Frequency.Roll(r)
	e.VerticalDir = RandSign(r)
	e.LastDash = f.Now
	e.DashCooldown = t.InitialDashCooldown.RollSeconds(r)
	e.SpawnTime = f.Now
	e.Alive = true
	return e
}
