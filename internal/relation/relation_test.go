package relation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Minimal owner/child pair mirroring the shape of the domain entities.

type owner struct {
	name     string
	children []*child
}

type child struct {
	name  string
	owner *owner
	fk    *string
}

func testEdge() Edge[owner, child] {
	return Edge[owner, child]{
		Children: func(o *owner) *[]*child { return &o.children },
		Owner:    func(c *child) **owner { return &c.owner },
		Bind: func(c *child, o *owner) {
			if o == nil {
				c.fk = nil
				return
			}
			c.fk = &o.name
		},
	}
}

func TestEdgeSetOwnerMovesChildBetweenOwners(t *testing.T) {
	e := testEdge()
	a := &owner{name: "a"}
	b := &owner{name: "b"}
	c := &child{name: "c"}

	e.SetOwner(c, a)
	assert.Same(t, a, c.owner)
	assert.Contains(t, a.children, c)

	// Moving to b must drop c from a's collection in the same operation.
	e.SetOwner(c, b)
	assert.Same(t, b, c.owner)
	assert.NotContains(t, a.children, c)
	assert.Contains(t, b.children, c)
	if assert.NotNil(t, c.fk) {
		assert.Equal(t, "b", *c.fk)
	}
}

func TestEdgeSetOwnerNilDetaches(t *testing.T) {
	e := testEdge()
	a := &owner{name: "a"}
	c := &child{name: "c"}

	e.SetOwner(c, a)
	e.SetOwner(c, nil)

	assert.Nil(t, c.owner)
	assert.Nil(t, c.fk)
	assert.NotContains(t, a.children, c)
}

func TestEdgeAddIsIdempotent(t *testing.T) {
	e := testEdge()
	a := &owner{name: "a"}
	c := &child{name: "c"}

	e.Add(a, c)
	e.Add(a, c)

	assert.Len(t, a.children, 1)
	assert.Same(t, a, c.owner)
}

func TestEdgeRemoveClearsBackRefEvenWhenAbsent(t *testing.T) {
	e := testEdge()
	a := &owner{name: "a"}
	b := &owner{name: "b"}
	c := &child{name: "c"}

	e.Add(a, c)

	// Removing from an owner that never held the child still nulls the
	// back-reference. The collection it actually lives in is untouched.
	e.Remove(b, c)

	assert.Nil(t, c.owner)
	assert.Nil(t, c.fk)
	assert.Contains(t, a.children, c)
}

func TestEdgeReplaceDetachesAllBeforeAttaching(t *testing.T) {
	e := testEdge()
	a := &owner{name: "a"}
	c1 := &child{name: "c1"}
	c2 := &child{name: "c2"}
	c3 := &child{name: "c3"}

	e.Add(a, c1)
	e.Add(a, c2)

	// c2 survives the replacement: it must end attached, not detached by the
	// bulk clear that runs first.
	e.Replace(a, []*child{c2, c3})

	assert.Nil(t, c1.owner)
	assert.Same(t, a, c2.owner)
	assert.Same(t, a, c3.owner)
	assert.Equal(t, []*child{c2, c3}, a.children)
}

func TestEdgeReplaceWithEmptyDetachesEverything(t *testing.T) {
	e := testEdge()
	a := &owner{name: "a"}
	c1 := &child{name: "c1"}
	c2 := &child{name: "c2"}
	e.Add(a, c1)
	e.Add(a, c2)

	e.Replace(a, nil)

	assert.Empty(t, a.children)
	assert.Nil(t, c1.owner)
	assert.Nil(t, c2.owner)
}

// One-to-one pair.

type left struct {
	peer *right
	fk   *string
}

type right struct {
	name string
	peer *left
}

func testPair() OneToOne[left, right] {
	return OneToOne[left, right]{
		PeerA: func(l *left) **right { return &l.peer },
		PeerB: func(r *right) **left { return &r.peer },
		Bind: func(l *left, r *right) {
			if r == nil {
				l.fk = nil
				return
			}
			l.fk = &r.name
		},
	}
}

func TestOneToOneSetLinksBothSides(t *testing.T) {
	p := testPair()
	l := &left{}
	r := &right{name: "r"}

	p.Set(l, r)

	assert.Same(t, r, l.peer)
	assert.Same(t, l, r.peer)
	if assert.NotNil(t, l.fk) {
		assert.Equal(t, "r", *l.fk)
	}
}

func TestOneToOneSetReplacesOldPeer(t *testing.T) {
	p := testPair()
	l := &left{}
	r1 := &right{name: "r1"}
	r2 := &right{name: "r2"}

	p.Set(l, r1)
	p.Set(l, r2)

	assert.Same(t, r2, l.peer)
	assert.Same(t, l, r2.peer)
	assert.Nil(t, r1.peer)
}

func TestOneToOneSetNilClears(t *testing.T) {
	p := testPair()
	l := &left{}
	r := &right{name: "r"}

	p.Set(l, r)
	p.Set(l, nil)

	assert.Nil(t, l.peer)
	assert.Nil(t, l.fk)
	assert.Nil(t, r.peer)
}

// Many-to-many.

type song struct {
	tags []*tag
}

type tag struct {
	songs []*song
}

func testM2M() ManyToMany[song, tag] {
	return ManyToMany[song, tag]{
		Left:  func(s *song) *[]*tag { return &s.tags },
		Right: func(t *tag) *[]*song { return &t.songs },
	}
}

func TestManyToManyAddRemove(t *testing.T) {
	m := testM2M()
	s := &song{}
	g := &tag{}

	m.Add(s, g)
	m.Add(s, g) // set semantics
	assert.Len(t, s.tags, 1)
	assert.Len(t, g.songs, 1)

	m.Remove(s, g)
	assert.Empty(t, s.tags)
	assert.Empty(t, g.songs)
}

func TestManyToManyReplaceRewiresInverseSides(t *testing.T) {
	m := testM2M()
	s := &song{}
	t1 := &tag{}
	t2 := &tag{}
	t3 := &tag{}

	m.Add(s, t1)
	m.Add(s, t2)

	m.Replace(s, []*tag{t2, t3})

	assert.Equal(t, []*tag{t2, t3}, s.tags)
	assert.Empty(t, t1.songs)
	assert.Contains(t, t2.songs, s)
	assert.Contains(t, t3.songs, s)
}
