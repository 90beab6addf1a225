package systems

import (
	"log"

	"github.com/automoto/tileleap/components"
	cfg "github.com/automoto/tileleap/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(playerEntry)
	})
}

func updateSinglePlayer(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)
	input := components.Input.Get(playerEntry)

	if state.CurrentState == cfg.Die {
		physics.VelocityX = 0
		state.Set(cfg.Die)
		return
	}

	// Hit overrides everything; gravity and the bounce keep acting.
	if player.HasBeenHit {
		state.Set(cfg.Hit)
		return
	}

	handleMovementInput(input, player, physics, playerEntry)

	grounded := physics.Grounded()

	if grounded {
		if physics.VelocityX != 0 {
			state.Set(cfg.Running)
		} else {
			state.Set(cfg.Idle)
		}
	} else {
		state.Set(cfg.Jump)
	}

	if input.Action(cfg.ActionJump).JustPressed && (grounded || player.JumpCount < player.ConsecutiveJumps) {
		// A jump off the ground is always the first of a sequence, even on
		// the tick the player lands.
		if grounded {
			player.JumpCount = 0
		}
		physics.VelocityY = -player.Speed * player.JumpMultiplier
		player.JumpCount++
		grounded = false
		state.Set(cfg.Jump)
	}

	if grounded {
		player.JumpCount = 0
	}
}

func handleMovementInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, playerEntry *donburi.Entry) {
	switch {
	case input.Action(cfg.ActionMoveLeft).Pressed:
		physics.VelocityX = -player.Speed
		player.Facing = cfg.DirectionLeft
	case input.Action(cfg.ActionMoveRight).Pressed:
		physics.VelocityX = player.Speed
		player.Facing = cfg.DirectionRight
	default:
		physics.VelocityX = 0
	}

	components.Sprite.Get(playerEntry).FlipX = player.Facing < 0
}

// TakesHit applies damage from source to the player. It does nothing while
// the player is already recovering from a hit or is dead.
func TakesHit(e *ecs.ECS, playerEntry, source *donburi.Entry) {
	if !playerEntry.Valid() {
		return
	}
	player := components.Player.Get(playerEntry)
	state := components.State.Get(playerEntry)
	if player.HasBeenHit || state.CurrentState == cfg.Die {
		return
	}

	physics := components.Physics.Get(playerEntry)
	health := components.Health.Get(playerEntry)

	player.HasBeenHit = true
	state.Set(cfg.Hit)
	bounceOff(player, physics)
	startDamageTint(playerEntry)

	damage := damageFrom(source)
	health.Current -= damage
	if health.Bar != nil {
		health.Bar.Decrease(health.Current)
	}
	log.Printf("player hit for %d, health %d", damage, health.Current)

	world := e.World
	entity := playerEntry.Entity()
	player.Recovery = GetClock(e).AfterFunc(cfg.Player.HitRecovery, func() {
		recoverFromHit(world, entity)
	})

	if health.Current <= 0 {
		startDeath(playerEntry)
	}
}

// bounceOff pushes the player away from the side it was touched on. The
// impulse is also queued so the next physics pass re-applies it ahead of
// gravity.
func bounceOff(player *components.PlayerData, physics *components.PhysicsData) {
	b := player.BounceSpeed
	if physics.Touching.Right {
		physics.ApplyImpulse(-b, -b)
	} else {
		physics.ApplyImpulse(b, -b)
	}
}

func damageFrom(source *donburi.Entry) int {
	if source == nil || !source.Valid() || !source.HasComponent(components.Enemy) {
		return 0
	}
	return components.Enemy.Get(source).Damage
}

func recoverFromHit(world donburi.World, entity donburi.Entity) {
	if !world.Valid(entity) {
		return
	}
	entry := world.Entry(entity)

	player := components.Player.Get(entry)
	player.HasBeenHit = false
	player.Recovery = nil
	components.Tint.Get(entry).Clear()

	state := components.State.Get(entry)
	if state.CurrentState == cfg.Hit {
		state.Set(cfg.Idle)
	}
}

func startDamageTint(entry *donburi.Entry) {
	tint := components.Tint.Get(entry)
	tint.Tween = gween.New(0, 1, float32(cfg.Player.TintPeriod.Seconds()), ease.Linear)
	tint.Amount = 0
}

// startDeath puts the player into the Die state. The level restarts once
// the death timer runs out.
func startDeath(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	player.Recovery.Stop()
	player.Recovery = nil
	player.HasBeenHit = false

	components.Tint.Get(playerEntry).Clear()
	components.Physics.Get(playerEntry).VelocityX = 0
	components.State.Get(playerEntry).Set(cfg.Die)
	log.Printf("player died")

	donburi.Add(playerEntry, components.Death, &components.DeathData{
		Timer: cfg.Death.DelayTicks,
	})
}
