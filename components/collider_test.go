package components

import (
	"testing"

	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func newBody(w donburi.World, x, y float64, tags ...string) *donburi.Entry {
	e := w.Entry(w.Create(Object))
	obj := resolv.NewObject(x, y, 10, 10, tags...)
	obj.Data = e
	Object.SetValue(e, ObjectData{Object: obj})
	return e
}

func TestAddColliderAttachesComponent(t *testing.T) {
	w := donburi.NewWorld()
	e := newBody(w, 0, 0)
	require.False(t, e.HasComponent(Collider))

	b := AddCollider(e, Layer("solid"), nil)
	require.True(t, e.HasComponent(Collider))
	assert.True(t, b.Active)
	assert.Equal(t, Collide, b.Kind)

	o := AddOverlap(e, Group("Enemy"), func(self, other *donburi.Entry) {})
	assert.Equal(t, Overlap, o.Kind)

	c := Collider.Get(e)
	assert.Len(t, c.Bindings, 2)
	assert.Same(t, b, c.Bindings[0], "bindings keep their identity")
}

func TestRegistrationHasNoSideEffects(t *testing.T) {
	w := donburi.NewWorld()
	e := newBody(w, 5, 7)
	called := false
	AddCollider(e, Layer("solid"), func(self, other *donburi.Entry) { called = true })

	obj := Object.Get(e)
	assert.Equal(t, 5.0, obj.X)
	assert.Equal(t, 7.0, obj.Y)
	assert.False(t, called)
}

func TestSolidTargets(t *testing.T) {
	var c ColliderData
	c.AddCollider(Layer("solid"), nil)
	c.AddCollider(OneWayLayer("platform"), nil)
	c.AddOverlap(Layer("water"), nil)
	c.AddCollider(Group("Enemy"), nil)
	off := c.AddCollider(Layer("ice"), nil)
	off.Deactivate()

	assert.Equal(t, []ColliderTarget{Layer("solid"), OneWayLayer("platform")}, c.SolidTargets())
}

func TestTargetMatches(t *testing.T) {
	w := donburi.NewWorld()
	a := newBody(w, 0, 0, "Enemy")
	b := newBody(w, 0, 0, "solid")

	objA := Object.Get(a).Object
	objB := Object.Get(b).Object

	assert.True(t, Body(a).Matches(objA))
	assert.False(t, Body(a).Matches(objB))
	assert.True(t, Group("Enemy").Matches(objA))
	assert.True(t, Layer("solid").Matches(objB))
	assert.False(t, Layer("solid").Matches(objA))
	assert.False(t, Layer("solid").Matches(nil))
}

func TestBindingContacts(t *testing.T) {
	w := donburi.NewWorld()
	a := newBody(w, 0, 0)
	var b Binding

	assert.False(t, b.WasTouching(a.Entity()))
	b.SetContacts([]donburi.Entity{a.Entity()})
	assert.True(t, b.WasTouching(a.Entity()))
	b.SetContacts(nil)
	assert.False(t, b.WasTouching(a.Entity()))
}

func TestColliderGroupChains(t *testing.T) {
	w := donburi.NewWorld()
	player := newBody(w, 0, 0)
	group := NewColliderGroup(newBody(w, 0, 0), newBody(w, 20, 0))
	group.Add(newBody(w, 40, 0))

	hits := 0
	group.
		AddCollider(Layer("solid"), nil).
		AddCollider(Body(player), func(self, other *donburi.Entry) { hits++ })

	require.Equal(t, 3, group.Len())
	for _, m := range group.Members() {
		c := Collider.Get(m)
		require.Len(t, c.Bindings, 2)
		assert.Equal(t, Layer("solid"), c.Bindings[0].Target)
		assert.Nil(t, c.Bindings[0].OnCollide)
		assert.Equal(t, Body(player), c.Bindings[1].Target)
		c.Bindings[1].OnCollide(m, player)
	}
	assert.Equal(t, 3, hits)
}

func TestInputActions(t *testing.T) {
	var in InputData
	var snap InputSnapshot
	snap[2] = true

	in.Push(snap)
	s := in.Action(2)
	assert.True(t, s.Pressed)
	assert.True(t, s.JustPressed)

	in.Push(snap)
	s = in.Action(2)
	assert.True(t, s.Pressed)
	assert.False(t, s.JustPressed)

	in.Push(InputSnapshot{})
	s = in.Action(2)
	assert.False(t, s.Pressed)
	assert.True(t, s.JustReleased)
}
