package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// TargetKind says what a binding collides with.
type TargetKind int

const (
	TargetLayer       TargetKind = iota // Static bodies with a tag, solid from every side
	TargetOneWayLayer                   // Static bodies with a tag, solid only from above
	TargetBody                          // A single dynamic body
	TargetGroup                         // Every dynamic body with a tag
)

type ColliderTarget struct {
	Kind  TargetKind
	Tag   string
	Entry *donburi.Entry
}

func Layer(tag string) ColliderTarget       { return ColliderTarget{Kind: TargetLayer, Tag: tag} }
func OneWayLayer(tag string) ColliderTarget { return ColliderTarget{Kind: TargetOneWayLayer, Tag: tag} }
func Body(e *donburi.Entry) ColliderTarget  { return ColliderTarget{Kind: TargetBody, Entry: e} }
func Group(tag string) ColliderTarget       { return ColliderTarget{Kind: TargetGroup, Tag: tag} }

// Static reports whether the target is level geometry rather than another
// moving body.
func (t ColliderTarget) Static() bool {
	return t.Kind == TargetLayer || t.Kind == TargetOneWayLayer
}

// Matches reports whether obj belongs to the target.
func (t ColliderTarget) Matches(obj *resolv.Object) bool {
	if obj == nil {
		return false
	}
	if t.Kind == TargetBody {
		e, ok := obj.Data.(*donburi.Entry)
		return ok && t.Entry != nil && e.Entity() == t.Entry.Entity()
	}
	return t.Tag != "" && obj.HasTags(t.Tag)
}

// BindingKind selects how contact is handled.
type BindingKind int

const (
	// Collide bindings block motion against static targets and call back
	// on every pass while in contact.
	Collide BindingKind = iota
	// Overlap bindings never block and call back once per entry into
	// contact.
	Overlap
)

// CollideFunc is called with the binding's owner and the entity it touched.
// For static targets other is the tile's entry.
type CollideFunc func(self, other *donburi.Entry)

// Binding is one registered collision relationship. Bindings are never
// removed; Active turns one off.
type Binding struct {
	Target    ColliderTarget
	Kind      BindingKind
	OnCollide CollideFunc
	Active    bool

	contacts map[donburi.Entity]struct{}
}

func (b *Binding) Deactivate() { b.Active = false }

// WasTouching reports whether e was in contact during the previous pass.
func (b *Binding) WasTouching(e donburi.Entity) bool {
	_, ok := b.contacts[e]
	return ok
}

// SetContacts records the entities in contact during this pass.
func (b *Binding) SetContacts(es []donburi.Entity) {
	if len(es) == 0 {
		b.contacts = nil
		return
	}
	b.contacts = make(map[donburi.Entity]struct{}, len(es))
	for _, e := range es {
		b.contacts[e] = struct{}{}
	}
}

// ColliderData holds every binding owned by an entity. Registering a
// binding only stores it; the collision system does the rest.
type ColliderData struct {
	Bindings []*Binding
}

func (c *ColliderData) AddCollider(target ColliderTarget, onCollide CollideFunc) *Binding {
	return c.add(target, Collide, onCollide)
}

func (c *ColliderData) AddOverlap(target ColliderTarget, onCollide CollideFunc) *Binding {
	return c.add(target, Overlap, onCollide)
}

func (c *ColliderData) add(target ColliderTarget, kind BindingKind, onCollide CollideFunc) *Binding {
	b := &Binding{
		Target:    target,
		Kind:      kind,
		OnCollide: onCollide,
		Active:    true,
	}
	c.Bindings = append(c.Bindings, b)
	return b
}

// SolidTargets returns the active static targets that block motion.
func (c *ColliderData) SolidTargets() []ColliderTarget {
	var out []ColliderTarget
	for _, b := range c.Bindings {
		if b.Active && b.Kind == Collide && b.Target.Static() {
			out = append(out, b.Target)
		}
	}
	return out
}

var Collider = donburi.NewComponentType[ColliderData]()

// AddCollider gives any entry with an Object body a Collide binding,
// attaching the Collider component on first use.
func AddCollider(entry *donburi.Entry, target ColliderTarget, onCollide CollideFunc) *Binding {
	return colliderOf(entry).AddCollider(target, onCollide)
}

// AddOverlap is AddCollider for trigger-style bindings.
func AddOverlap(entry *donburi.Entry, target ColliderTarget, onCollide CollideFunc) *Binding {
	return colliderOf(entry).AddOverlap(target, onCollide)
}

func colliderOf(entry *donburi.Entry) *ColliderData {
	if !entry.HasComponent(Collider) {
		entry.AddComponent(Collider)
	}
	return Collider.Get(entry)
}

// ColliderGroup applies the same bindings to every member in one call.
type ColliderGroup struct {
	members []*donburi.Entry
}

func NewColliderGroup(members ...*donburi.Entry) *ColliderGroup {
	return &ColliderGroup{members: members}
}

func (g *ColliderGroup) Add(e *donburi.Entry) { g.members = append(g.members, e) }

// Members returns the entries in insertion order.
func (g *ColliderGroup) Members() []*donburi.Entry { return g.members }

func (g *ColliderGroup) Len() int { return len(g.members) }

func (g *ColliderGroup) AddCollider(target ColliderTarget, onCollide CollideFunc) *ColliderGroup {
	for _, e := range g.members {
		AddCollider(e, target, onCollide)
	}
	return g
}

func (g *ColliderGroup) AddOverlap(target ColliderTarget, onCollide CollideFunc) *ColliderGroup {
	for _, e := range g.members {
		AddOverlap(e, target, onCollide)
	}
	return g
}
