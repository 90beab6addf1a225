package systems

import (
	"math"

	"github.com/automoto/tileleap/components"
	cfg "github.com/automoto/tileleap/config"
	"github.com/automoto/tileleap/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const sweepEpsilon = 1e-9

// staticHit is a tile that stopped a body during this pass.
type staticHit struct {
	target components.ColliderTarget
	obj    *resolv.Object
}

// UpdateCollisions moves every body by its velocity and resolves it against
// the static layers it collides with. Collide bindings to other bodies are
// resolved afterwards, once every body has moved, and then callbacks run.
func UpdateCollisions(ecs *ecs.ECS) {
	dt := tickSeconds()

	var bodies []*donburi.Entry
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Object) {
			bodies = append(bodies, e)
		}
	})

	hits := make(map[donburi.Entity][]staticHit, len(bodies))
	for _, e := range bodies {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		var solids []components.ColliderTarget
		if e.HasComponent(components.Collider) {
			solids = components.Collider.Get(e).SolidTargets()
		}

		hits[e.Entity()] = moveBody(obj, physics, solids, dt)
		if obj.Space != nil {
			obj.Update()
		}
	}

	// Collect owners first; callbacks may add components and move entries
	// between archetypes.
	var owners []*donburi.Entry
	components.Collider.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Object) {
			owners = append(owners, e)
		}
	})
	for _, e := range owners {
		runBindings(e, hits[e.Entity()])
	}

	// Landing, on a tile or on another body, resets the jump count in the
	// same pass.
	for _, e := range bodies {
		if !e.Valid() || !e.HasComponent(components.Player) {
			continue
		}
		if components.Physics.Get(e).Grounded() {
			components.Player.Get(e).JumpCount = 0
		}
	}
}

// moveBody moves obj horizontally then vertically, stopping at solid tiles
// and world bounds. It returns the tiles that stopped it.
func moveBody(obj *components.ObjectData, physics *components.PhysicsData, solids []components.ColliderTarget, dt float64) []staticHit {
	physics.Blocked = components.Sides{}
	physics.Touching = components.Sides{}
	physics.OnGround = nil

	var hits []staticHit

	// Positions snap to the edge of the tile that stopped the body so
	// resting bodies sit exactly on tile boundaries.
	dx := physics.VelocityX * dt
	if dx != 0 {
		blockers := sweep(obj, solids, dx, 0, false, func(r, o gamemath.Rect) (float64, bool) {
			return r.SweepX(dx, o)
		})
		if len(blockers) > 0 {
			tile := rectOf(blockers[0].obj)
			if dx > 0 {
				obj.X = tile.X - obj.W
				physics.Blocked.Right = true
			} else {
				obj.X = tile.Right()
				physics.Blocked.Left = true
			}
			physics.VelocityX = 0
			hits = append(hits, blockers...)
		} else {
			obj.X += dx
		}
	}

	dy := physics.VelocityY * dt
	probe := cfg.Physics.GroundProbe
	reach := dy
	if dy >= 0 {
		reach += probe
	}
	blockers := sweep(obj, solids, 0, reach, dy >= 0, func(r, o gamemath.Rect) (float64, bool) {
		return r.SweepY(dy, probe, o)
	})
	if len(blockers) > 0 {
		tile := rectOf(blockers[0].obj)
		if dy >= 0 {
			obj.Y = tile.Y - obj.H
			physics.Blocked.Down = true
			physics.OnGround = blockers[0].obj
			physics.VelocityY = math.Min(physics.VelocityY, 0)
		} else {
			obj.Y = tile.Bottom()
			physics.Blocked.Up = true
			physics.VelocityY = 0
		}
		hits = append(hits, blockers...)
	} else {
		obj.Y += dy
	}

	clampToWorld(obj, physics)
	physics.Touching = physics.Blocked
	return hits
}

// sweep returns the tiles that stop obj first along one axis. fn measures
// the allowed move against a single tile; checkX and checkY cover the area
// the move could reach.
func sweep(
	obj *components.ObjectData,
	solids []components.ColliderTarget,
	checkX, checkY float64,
	allowOneWay bool,
	fn func(r, o gamemath.Rect) (float64, bool),
) []staticHit {
	type candidate struct {
		hit   staticHit
		moved float64
	}

	rect := obj.Rect()
	var found []candidate
	for _, o := range broadphase(obj, checkX, checkY, solids) {
		target, ok := solidTargetFor(o, solids, allowOneWay)
		if !ok {
			continue
		}
		tile := rectOf(o)
		// One-way tiles only catch bodies that start above them.
		if target.Kind == components.TargetOneWayLayer && rect.Bottom() > tile.Y+sweepEpsilon {
			continue
		}
		if moved, hit := fn(rect, tile); hit {
			found = append(found, candidate{hit: staticHit{target: target, obj: o}, moved: moved})
		}
	}
	if len(found) == 0 {
		return nil
	}

	best := found[0].moved
	for _, c := range found[1:] {
		if math.Abs(c.moved) < math.Abs(best) {
			best = c.moved
		}
	}
	var hits []staticHit
	for _, c := range found {
		if math.Abs(c.moved-best) <= sweepEpsilon {
			hits = append(hits, c.hit)
		}
	}
	return hits
}

// broadphase returns the static objects with a solid tag in the cells obj
// would occupy after moving by dx, dy.
func broadphase(obj *components.ObjectData, dx, dy float64, solids []components.ColliderTarget) []*resolv.Object {
	if obj.Space == nil || len(solids) == 0 {
		return nil
	}
	tagList := make([]string, 0, len(solids))
	for _, t := range solids {
		tagList = append(tagList, t.Tag)
	}
	check := obj.Check(dx, dy, tagList...)
	if check == nil {
		return nil
	}
	return check.Objects
}

// solidTargetFor picks the binding target a tile belongs to, preferring a
// fully solid layer over a one-way one.
func solidTargetFor(o *resolv.Object, solids []components.ColliderTarget, allowOneWay bool) (components.ColliderTarget, bool) {
	var oneWay *components.ColliderTarget
	for i, t := range solids {
		if !t.Matches(o) {
			continue
		}
		if t.Kind == components.TargetLayer {
			return t, true
		}
		if allowOneWay && oneWay == nil {
			oneWay = &solids[i]
		}
	}
	if oneWay != nil {
		return *oneWay, true
	}
	return components.ColliderTarget{}, false
}

// clampToWorld keeps the body inside its world bounds. Resting on the
// bottom edge counts as ground.
func clampToWorld(obj *components.ObjectData, physics *components.PhysicsData) {
	b := physics.WorldBounds
	if b == nil {
		return
	}
	if obj.X < b.X {
		obj.X = b.X
		physics.Blocked.Left = true
		physics.VelocityX = math.Max(physics.VelocityX, 0)
	}
	if obj.X+obj.W > b.Right() {
		obj.X = b.Right() - obj.W
		physics.Blocked.Right = true
		physics.VelocityX = math.Min(physics.VelocityX, 0)
	}
	if obj.Y < b.Y {
		obj.Y = b.Y
		physics.Blocked.Up = true
		physics.VelocityY = math.Max(physics.VelocityY, 0)
	}
	if obj.Y+obj.H >= b.Bottom() {
		obj.Y = b.Bottom() - obj.H
		physics.Blocked.Down = true
		physics.VelocityY = math.Min(physics.VelocityY, 0)
	}
}

// runBindings finds what each of the owner's bindings is touching and calls
// back. Collide bindings call back on every pass in contact, Overlap
// bindings only when contact begins.
func runBindings(owner *donburi.Entry, hits []staticHit) {
	bindings := components.Collider.Get(owner).Bindings
	for _, b := range bindings {
		if !owner.Valid() {
			return
		}
		if !b.Active {
			continue
		}

		others := contactsFor(owner, b, hits)
		ids := make([]donburi.Entity, 0, len(others))
		var fire []*donburi.Entry
		for _, other := range others {
			ids = append(ids, other.Entity())
			if b.Kind == components.Collide && !b.Target.Static() {
				touchBodies(owner, other)
				separate(owner, other)
			}
			if b.Kind == components.Overlap && b.WasTouching(other.Entity()) {
				continue
			}
			fire = append(fire, other)
		}
		b.SetContacts(ids)

		if b.OnCollide == nil {
			continue
		}
		for _, other := range fire {
			if !b.Active || !owner.Valid() {
				break
			}
			if !other.Valid() {
				continue
			}
			b.OnCollide(owner, other)
		}
	}
}

func contactsFor(owner *donburi.Entry, b *components.Binding, hits []staticHit) []*donburi.Entry {
	obj := components.Object.Get(owner)
	rect := obj.Rect()

	switch {
	case b.Target.Kind == components.TargetBody:
		t := b.Target.Entry
		if t == nil || !t.Valid() || t.Entity() == owner.Entity() || !t.HasComponent(components.Object) {
			return nil
		}
		if rect.Overlaps(components.Object.Get(t).Rect()) {
			return []*donburi.Entry{t}
		}
		return nil

	case b.Kind == components.Collide && b.Target.Static():
		var out []*donburi.Entry
		seen := make(map[*resolv.Object]bool, len(hits))
		for _, h := range hits {
			if h.target != b.Target || seen[h.obj] {
				continue
			}
			seen[h.obj] = true
			if e, ok := h.obj.Data.(*donburi.Entry); ok {
				out = append(out, e)
			}
		}
		return out
	}

	return overlapping(owner, obj, rect, b.Target)
}

// overlapping returns the tagged entities whose bodies overlap rect.
func overlapping(owner *donburi.Entry, obj *components.ObjectData, rect gamemath.Rect, target components.ColliderTarget) []*donburi.Entry {
	if obj.Space == nil || target.Tag == "" {
		return nil
	}
	check := obj.Check(0, 0, target.Tag)
	if check == nil {
		return nil
	}

	var out []*donburi.Entry
	seen := map[*resolv.Object]bool{}
	for _, o := range check.ObjectsByTags(target.Tag) {
		if seen[o] || !rect.Overlaps(rectOf(o)) {
			continue
		}
		seen[o] = true
		e, ok := o.Data.(*donburi.Entry)
		if !ok || !e.Valid() || e.Entity() == owner.Entity() {
			continue
		}
		out = append(out, e)
	}
	return out
}

// touchBodies marks the sides on which two overlapping bodies meet. The
// axis with the smaller overlap is the one they met along.
func touchBodies(a, b *donburi.Entry) {
	ra := components.Object.Get(a).Rect()
	rb := components.Object.Get(b).Rect()

	overlapX := math.Min(ra.Right(), rb.Right()) - math.Max(ra.X, rb.X)
	overlapY := math.Min(ra.Bottom(), rb.Bottom()) - math.Max(ra.Y, rb.Y)

	var sa, sb components.Sides
	if overlapX <= overlapY {
		if rb.CenterX() >= ra.CenterX() {
			sa.Right, sb.Left = true, true
		} else {
			sa.Left, sb.Right = true, true
		}
	} else {
		if rb.CenterY() >= ra.CenterY() {
			sa.Down, sb.Up = true, true
		} else {
			sa.Up, sb.Down = true, true
		}
	}

	addTouching(a, sa)
	addTouching(b, sb)
}

// separate pushes owner out of other along the axis they overlap least on
// and stops owner's motion into other. other is not moved.
func separate(owner, other *donburi.Entry) {
	obj := components.Object.Get(owner)
	ra := obj.Rect()
	rb := components.Object.Get(other).Rect()
	if !ra.Overlaps(rb) {
		return
	}

	var physics *components.PhysicsData
	if owner.HasComponent(components.Physics) {
		physics = components.Physics.Get(owner)
	} else {
		physics = &components.PhysicsData{}
	}

	overlapX := math.Min(ra.Right(), rb.Right()) - math.Max(ra.X, rb.X)
	overlapY := math.Min(ra.Bottom(), rb.Bottom()) - math.Max(ra.Y, rb.Y)

	switch {
	case overlapX <= overlapY && rb.CenterX() >= ra.CenterX():
		obj.X = rb.X - obj.W
		physics.Blocked.Right = true
		physics.VelocityX = math.Min(physics.VelocityX, 0)
	case overlapX <= overlapY:
		obj.X = rb.Right()
		physics.Blocked.Left = true
		physics.VelocityX = math.Max(physics.VelocityX, 0)
	case rb.CenterY() >= ra.CenterY():
		// Standing on other.
		obj.Y = rb.Y - obj.H
		physics.Blocked.Down = true
		physics.OnGround = components.Object.Get(other).Object
		physics.VelocityY = math.Min(physics.VelocityY, 0)
	default:
		obj.Y = rb.Bottom()
		physics.Blocked.Up = true
		physics.VelocityY = math.Max(physics.VelocityY, 0)
	}

	clampToWorld(obj, physics)
	if obj.Space != nil {
		obj.Update()
	}
}

func addTouching(e *donburi.Entry, s components.Sides) {
	if !e.HasComponent(components.Physics) {
		return
	}
	t := &components.Physics.Get(e).Touching
	t.Up = t.Up || s.Up
	t.Down = t.Down || s.Down
	t.Left = t.Left || s.Left
	t.Right = t.Right || s.Right
}

func rectOf(o *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}
