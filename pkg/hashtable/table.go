package hashtable

import (
	"math"

	"github.com/tidyware/stockroom/pkg/types"
)

// capacityFactor pads the expected capacity before the prime search so
// the table starts below 75% load.
const capacityFactor = 1.33

// Table is a fixed-capacity chained hash table keyed by product ID.
// Each slot holds the records that hashed to its index, in insertion
// order. The slot count is fixed at construction; there is no resize
// operation.
type Table struct {
	size       int
	slots      [][]*types.Product
	elements   int
	collisions int
}

// New creates a table sized for the expected number of elements. The
// slot count is the smallest prime >= ceil(expectedCapacity * 1.33),
// with a floor of 2 so degenerate capacities still yield a usable table.
func New(expectedCapacity int) *Table {
	size := nextPrime(int(math.Ceil(float64(expectedCapacity) * capacityFactor)))
	return &Table{
		size:  size,
		slots: make([][]*types.Product, size),
	}
}

// Size returns the fixed slot count (a prime).
func (t *Table) Size() int { return t.size }

// Len returns the number of live records.
func (t *Table) Len() int { return t.elements }

// Collisions returns the cumulative collision counter: the number of
// insertions that landed in an already-occupied slot since construction
// or the last ResetCollisions. Deletions do not decrease it.
func (t *Table) Collisions() int { return t.collisions }

// Insert adds a record keyed by its ID. It returns false without
// mutating the table when a record with the same ID already exists;
// insertion never overwrites.
func (t *Table) Insert(p *types.Product) bool {
	idx := hashIndex(p.ID, t.size)
	slot := t.slots[idx]

	for _, item := range slot {
		if item.ID == p.ID {
			return false
		}
	}

	if len(slot) > 0 {
		t.collisions++
	}
	t.slots[idx] = append(slot, p)
	t.elements++
	return true
}

// Search returns the record with the given ID, or nil when absent.
func (t *Table) Search(id string) *types.Product {
	for _, item := range t.slots[hashIndex(id, t.size)] {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// Delete removes the record with the given ID. It returns false when
// the ID is absent. The collision counter is a historical insertion
// metric and is left untouched.
func (t *Table) Delete(id string) bool {
	idx := hashIndex(id, t.size)
	slot := t.slots[idx]

	for i, item := range slot {
		if item.ID == id {
			t.slots[idx] = append(slot[:i], slot[i+1:]...)
			t.elements--
			return true
		}
	}
	return false
}

// Update applies a partial update to the record with the given ID:
// only non-nil fields of u are written. It returns false when the ID
// is absent.
func (t *Table) Update(id string, u types.ProductUpdate) bool {
	p := t.Search(id)
	if p == nil {
		return false
	}
	u.Apply(p)
	return true
}

// LoadFactor returns the fill level as a percentage:
// 100 * elements / size.
func (t *Table) LoadFactor() float64 {
	return float64(t.elements) / float64(t.size) * 100
}

// ResetCollisions zeroes the collision counter. Records and the
// element count are unaffected.
func (t *Table) ResetCollisions() {
	t.collisions = 0
}

// Chains returns copies of the first limit slot chains, for display.
// A limit above the table size is clamped; the returned slices may be
// modified freely without affecting the table.
func (t *Table) Chains(limit int) [][]*types.Product {
	if limit > t.size {
		limit = t.size
	}
	if limit < 0 {
		limit = 0
	}
	out := make([][]*types.Product, limit)
	for i := 0; i < limit; i++ {
		out[i] = append([]*types.Product(nil), t.slots[i]...)
	}
	return out
}
