package systems_test

import (
	"math/rand"
	"testing"

	"github.com/automoto/tileleap/components"
	cfg "github.com/automoto/tileleap/config"
	"github.com/automoto/tileleap/leveldata"
	"github.com/automoto/tileleap/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

// levelWithEnemy is flatLevel with a Birdman far from the start.
func levelWithEnemy() *leveldata.Level {
	level := flatLevel()
	level.EnemySpawns = []leveldata.EnemySpawn{{Type: "Birdman", X: 1500, Y: groundY}}
	return level
}

func runUntilGrounded(t *testing.T, e *ecs.ECS, maxTicks int) {
	t.Helper()
	physics := components.Physics.Get(playerOf(t, e))
	for i := 0; i < maxTicks; i++ {
		step(e, press())
		if physics.Grounded() {
			return
		}
	}
	t.Fatalf("player still airborne after %d ticks", maxTicks)
}

func TestPlayerSettlesOnGround(t *testing.T) {
	e := newGame(t, flatLevel())
	run(e, 3, press())

	player := playerOf(t, e)
	physics := components.Physics.Get(player)
	obj := components.Object.Get(player)

	assert.True(t, physics.Grounded())
	assert.NotNil(t, physics.OnGround)
	assert.Equal(t, groundY, obj.Y+obj.H)
	assert.Equal(t, cfg.Idle, components.State.Get(player).CurrentState)
	assert.Equal(t, 0, components.Player.Get(player).JumpCount)
}

func TestRunningSetsFacing(t *testing.T) {
	e := newGame(t, flatLevel())
	run(e, 2, press())

	player := playerOf(t, e)
	step(e, press(cfg.ActionMoveLeft))

	p := components.Player.Get(player)
	assert.Equal(t, cfg.DirectionLeft, p.Facing)
	assert.True(t, components.Sprite.Get(player).FlipX)
	assert.Equal(t, cfg.Running, components.State.Get(player).CurrentState)
	assert.Equal(t, -p.Speed, components.Physics.Get(player).VelocityX)

	step(e, press(cfg.ActionMoveRight))
	assert.Equal(t, cfg.DirectionRight, p.Facing)
	assert.False(t, components.Sprite.Get(player).FlipX)
}

func TestAnimationFollowsState(t *testing.T) {
	e := newGame(t, flatLevel())
	run(e, 3, press())

	anim := components.Animation.Get(playerOf(t, e)).Animator
	require.NotNil(t, anim)
	assert.Equal(t, cfg.Idle, anim.State())

	step(e, press(cfg.ActionMoveRight))
	assert.Equal(t, cfg.Running, anim.State())
	first := anim.Frame()

	// Staying in the same state does not restart the clip.
	run(e, 12, press(cfg.ActionMoveRight))
	assert.Equal(t, cfg.Running, anim.State())
	assert.NotEqual(t, first, anim.Frame())
}

func TestJumpOnPressEdgeNotHold(t *testing.T) {
	e := newGame(t, flatLevel())
	run(e, 3, press())

	player := playerOf(t, e)
	p := components.Player.Get(player)
	p.ConsecutiveJumps = 2
	physics := components.Physics.Get(player)

	step(e, press(cfg.ActionJump))
	require.Equal(t, 1, p.JumpCount)
	assert.False(t, physics.Grounded())
	assert.Less(t, physics.VelocityY, 0.0)
	assert.Equal(t, cfg.Jump, components.State.Get(player).CurrentState)

	// Holding the button does not jump again.
	run(e, 10, press(cfg.ActionJump))
	assert.Equal(t, 1, p.JumpCount)

	// A fresh press in the air uses the second jump.
	step(e, press())
	step(e, press(cfg.ActionJump))
	assert.Equal(t, 2, p.JumpCount)
	assert.InDelta(t, -p.Speed*p.JumpMultiplier+cfg.Player.Gravity/float64(cfg.C.TPS), physics.VelocityY, 1e-6)

	// Out of jumps.
	step(e, press())
	step(e, press(cfg.ActionJump))
	assert.Equal(t, 2, p.JumpCount)

	runUntilGrounded(t, e, 300)
	assert.Equal(t, 0, p.JumpCount, "landing resets the jump count")
}

func TestLandingResetsJumpCount(t *testing.T) {
	e := newGame(t, flatLevel())
	run(e, 3, press())

	p := components.Player.Get(playerOf(t, e))
	step(e, press(cfg.ActionJump))
	require.Equal(t, 1, p.JumpCount)

	runUntilGrounded(t, e, 300)
	assert.Equal(t, 0, p.JumpCount)

	// Jumping again from the ground is allowed.
	step(e, press(cfg.ActionJump))
	assert.Equal(t, 1, p.JumpCount)
}

func TestJumpCountInvariant(t *testing.T) {
	for _, consecutive := range []int{1, 2, 3} {
		e := newGame(t, flatLevel())
		p := components.Player.Get(playerOf(t, e))
		p.ConsecutiveJumps = consecutive

		rng := rand.New(rand.NewSource(int64(consecutive)))
		for i := 0; i < 3000; i++ {
			var snap components.InputSnapshot
			snap[cfg.ActionMoveLeft] = rng.Intn(4) == 0
			snap[cfg.ActionMoveRight] = rng.Intn(3) == 0
			snap[cfg.ActionJump] = rng.Intn(2) == 0
			step(e, snap)

			require.GreaterOrEqual(t, p.JumpCount, 0, "tick %d", i)
			require.LessOrEqual(t, p.JumpCount, p.ConsecutiveJumps, "tick %d", i)
		}
	}
}

func TestHitIgnoresInput(t *testing.T) {
	e := newGame(t, levelWithEnemy())
	run(e, 3, press())

	player := playerOf(t, e)
	systems.TakesHit(e, player, firstEnemy(t, e))

	for i := 0; i < 20; i++ {
		step(e, press(cfg.ActionMoveLeft, cfg.ActionJump))
		assert.Equal(t, cfg.Hit, components.State.Get(player).CurrentState)
		assert.Greater(t, components.Physics.Get(player).VelocityX, 0.0, "bounce keeps pushing right")
		assert.Equal(t, cfg.DirectionRight, components.Player.Get(player).Facing)
	}
	assert.Equal(t, 0, components.Player.Get(player).JumpCount)
}

func TestTakesHitIsIdempotent(t *testing.T) {
	e := newGame(t, levelWithEnemy())
	run(e, 3, press())

	player := playerOf(t, e)
	enemy := firstEnemy(t, e)
	bar := attachBar(player)

	systems.TakesHit(e, player, enemy)
	systems.TakesHit(e, player, enemy)
	step(e, press())
	systems.TakesHit(e, player, enemy)

	assert.Equal(t, 80, components.Health.Get(player).Current)
	assert.Equal(t, []int{80}, bar.values, "HUD told once, with health minus damage")
	assert.Equal(t, 1, systems.GetClock(e).Pending())
}

func TestBounceDirection(t *testing.T) {
	cases := []struct {
		name          string
		touchingRight bool
		wantVX        float64
	}{
		{"hit_from_right", true, -cfg.Player.BounceSpeed},
		{"hit_from_left", false, cfg.Player.BounceSpeed},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := newGame(t, levelWithEnemy())
			run(e, 3, press())

			player := playerOf(t, e)
			physics := components.Physics.Get(player)
			physics.Touching.Right = c.touchingRight

			systems.TakesHit(e, player, firstEnemy(t, e))
			assert.Equal(t, c.wantVX, physics.VelocityX)
			assert.Equal(t, -cfg.Player.BounceSpeed, physics.VelocityY)
			require.NotNil(t, physics.Impulse)

			// The queued impulse is applied again ahead of gravity.
			step(e, press())
			assert.Equal(t, c.wantVX, physics.VelocityX)
			assert.InDelta(t, -cfg.Player.BounceSpeed+cfg.Player.Gravity/float64(cfg.C.TPS), physics.VelocityY, 1e-6)
			assert.Nil(t, physics.Impulse)
		})
	}
}

func TestHitRecovery(t *testing.T) {
	e := newGame(t, levelWithEnemy())
	run(e, 3, press())

	player := playerOf(t, e)
	bar := attachBar(player)
	p := components.Player.Get(player)
	require.Equal(t, 100, components.Health.Get(player).Current)

	systems.TakesHit(e, player, firstEnemy(t, e))
	assert.Equal(t, 80, components.Health.Get(player).Current)
	assert.Equal(t, []int{80}, bar.values)
	assert.True(t, components.Tint.Get(player).Active())

	// 1500ms is a little over 89 ticks at 60 TPS.
	run(e, 89, press())
	assert.True(t, p.HasBeenHit)
	assert.Equal(t, cfg.Hit, components.State.Get(player).CurrentState)
	assert.True(t, components.Tint.Get(player).Active())

	run(e, 6, press())
	assert.False(t, p.HasBeenHit)
	assert.Nil(t, p.Recovery)
	assert.NotEqual(t, cfg.Hit, components.State.Get(player).CurrentState)
	assert.False(t, components.Tint.Get(player).Active())
	assert.Zero(t, components.Tint.Get(player).Amount)
	assert.Equal(t, 80, components.Health.Get(player).Current)

	// The player can be hit again after recovering.
	systems.TakesHit(e, player, firstEnemy(t, e))
	assert.Equal(t, 60, components.Health.Get(player).Current)
	assert.Equal(t, []int{80, 60}, bar.values)
}

func TestDamageTintPulses(t *testing.T) {
	e := newGame(t, levelWithEnemy())
	run(e, 3, press())

	player := playerOf(t, e)
	systems.TakesHit(e, player, firstEnemy(t, e))
	tint := components.Tint.Get(player)

	seen := map[bool]bool{}
	for i := 0; i < 30; i++ {
		step(e, press())
		require.GreaterOrEqual(t, tint.Amount, float32(0))
		require.LessOrEqual(t, tint.Amount, float32(1))
		seen[tint.Amount > 0.5] = true
	}
	assert.True(t, seen[true] && seen[false], "tint repeats over several periods")
}
