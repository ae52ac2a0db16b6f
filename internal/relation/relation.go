// Package relation keeps both sides of a bidirectional association consistent.
//
// Every entity pair in the domain (Cliente↔Reserva, Mesa↔Pedido, Plato↔Insumo,
// Pedido↔Factura, Plato↔Categoria, ...) is described once as an edge value and
// every mutation — set, add, remove, bulk replace — goes through that edge, so
// the "one" side's collection and the "many" side's back-reference can never
// diverge within a single operation. Operations are pure and synchronous: they
// touch only the objects directly involved, do no I/O, and either apply to
// both sides or not at all.
package relation

// Edge describes one bidirectional one-to-many association between an owner
// type O (holds the collection) and a child type C (holds the back-reference).
// Bind, when present, mirrors the owner pointer into the child's foreign key
// column so the persisted row follows the in-memory graph.
type Edge[O any, C any] struct {
	Children func(*O) *[]*C
	Owner    func(*C) **O
	Bind     func(*C, *O)
}

// SetOwner points child at owner. If child currently references a different
// owner it is first removed from that owner's collection; a nil owner detaches
// the child from both sides.
func (e Edge[O, C]) SetOwner(child *C, owner *O) {
	if prev := *e.Owner(child); prev != nil && prev != owner {
		remove(e.Children(prev), child)
	}
	e.assign(child, owner)
	if owner != nil {
		add(e.Children(owner), child)
	}
}

// Add inserts child into owner's collection (set semantics: re-adding an
// existing element leaves the collection untouched) and assigns the
// back-reference either way.
func (e Edge[O, C]) Add(owner *O, child *C) {
	add(e.Children(owner), child)
	e.assign(child, owner)
}

// Remove takes child out of owner's collection and clears the back-reference.
// The clear is unconditional: it happens even when child was not actually
// present in the collection. That matches the source system's behavior; see
// DESIGN.md before tightening it.
func (e Edge[O, C]) Remove(owner *O, child *C) {
	remove(e.Children(owner), child)
	e.assign(child, nil)
}

// Replace swaps owner's entire collection for next. Every previous child is
// detached before any new child is attached, so a child present in both the
// old and new collections ends the operation attached, never stale.
func (e Edge[O, C]) Replace(owner *O, next []*C) {
	current := e.Children(owner)
	for _, c := range *current {
		e.assign(c, nil)
	}
	for _, c := range next {
		e.assign(c, owner)
	}
	*current = next
}

func (e Edge[O, C]) assign(child *C, owner *O) {
	*e.Owner(child) = owner
	if e.Bind != nil {
		e.Bind(child, owner)
	}
}

// OneToOne describes a symmetric one-to-one pair between types A and B.
// Peer accessors return each side's reference to the other; Bind mirrors
// the reference into A's foreign key column when one exists.
type OneToOne[A any, B any] struct {
	PeerA func(*A) **B
	PeerB func(*B) **A
	Bind  func(*A, *B)
}

// Set links a and b in both directions. Setting b to nil clears a's reference
// and nulls the old peer's back-reference if one existed.
func (o OneToOne[A, B]) Set(a *A, b *B) {
	if prev := *o.PeerA(a); prev != nil && prev != b {
		*o.PeerB(prev) = nil
	}
	*o.PeerA(a) = b
	if o.Bind != nil {
		o.Bind(a, b)
	}
	if b != nil {
		*o.PeerB(b) = a
	}
}

// ManyToMany describes a bidirectional many-to-many association. Both sides
// hold collections; only the owning side's reference list is persisted, the
// inverse side exists in memory only.
type ManyToMany[A any, B any] struct {
	Left  func(*A) *[]*B
	Right func(*B) *[]*A
}

func (m ManyToMany[A, B]) Add(a *A, b *B) {
	add(m.Left(a), b)
	add(m.Right(b), a)
}

func (m ManyToMany[A, B]) Remove(a *A, b *B) {
	remove(m.Left(a), b)
	remove(m.Right(b), a)
}

// Replace swaps a's collection for next, detaching a from every previous
// element's inverse collection before attaching it to the new ones.
func (m ManyToMany[A, B]) Replace(a *A, next []*B) {
	current := m.Left(a)
	for _, b := range *current {
		remove(m.Right(b), a)
	}
	for _, b := range next {
		add(m.Right(b), a)
	}
	*current = next
}

// add appends v unless already present. Membership is pointer identity, which
// is also how entity equality behaves for transient (zero-ID) entities.
func add[T any](s *[]*T, v *T) {
	for _, e := range *s {
		if e == v {
			return
		}
	}
	*s = append(*s, v)
}

func remove[T any](s *[]*T, v *T) {
	for i, e := range *s {
		if e == v {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return
		}
	}
}
