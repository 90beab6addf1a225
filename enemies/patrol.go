package enemies

import (
	"github.com/automoto/tileleap/components"
	"github.com/automoto/tileleap/config"
	"github.com/automoto/tileleap/gamemath"
	"github.com/yohamta/donburi"
)

// ledgeProbe is how far below the leading foot ground is looked for.
const ledgeProbe = 2.0

// patrol walks the enemy back and forth, turning at walls, ledges and the
// edge of its patrol range.
func patrol(entry *donburi.Entry, speed, distance float64) {
	enemy := components.Enemy.Get(entry)
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry)

	if enemy.Facing == 0 {
		enemy.Facing = config.DirectionRight
	}

	if shouldTurn(enemy, physics, obj, distance) {
		enemy.Facing = -enemy.Facing
	}
	physics.VelocityX = enemy.Facing * speed

	if entry.HasComponent(components.Sprite) {
		components.Sprite.Get(entry).FlipX = enemy.Facing < 0
	}
}

func shouldTurn(enemy *components.EnemyData, physics *components.PhysicsData, obj *components.ObjectData, distance float64) bool {
	if enemy.Facing > 0 && physics.Blocked.Right || enemy.Facing < 0 && physics.Blocked.Left {
		return true
	}

	centre := obj.X + obj.W/2
	if distance > 0 {
		if enemy.Facing > 0 && centre-enemy.SpawnX >= distance {
			return true
		}
		if enemy.Facing < 0 && enemy.SpawnX-centre >= distance {
			return true
		}
	}

	return physics.Grounded() && !groundAhead(enemy, obj)
}

// groundAhead reports whether there is a platform tile under the leading
// foot.
func groundAhead(enemy *components.EnemyData, obj *components.ObjectData) bool {
	if len(enemy.PlatformTags) == 0 || obj.Space == nil {
		return true
	}

	probe := gamemath.Rect{Y: obj.Y + obj.H, W: 1, H: ledgeProbe}
	if enemy.Facing > 0 {
		probe.X = obj.X + obj.W
	} else {
		probe.X = obj.X - 1
	}

	check := obj.Check(enemy.Facing*obj.W, ledgeProbe, enemy.PlatformTags...)
	if check == nil {
		return false
	}
	for _, o := range check.Objects {
		if probe.Overlaps(gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}) {
			return true
		}
	}
	return false
}
