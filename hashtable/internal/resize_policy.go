package internal

import (
	"github.com/tuannh982/hashtable/utils/math"
)

// ResizePolicy decides when the table's load factor has left the
// [ShrinkAt, GrowAt] band and which capacity brings it back.
type ResizePolicy struct {
	GrowAt      float64
	ShrinkAt    float64
	MinCapacity int
}

// Grow is evaluated after an insert of a new key.
func (p ResizePolicy) Grow(count, capacity int) (int, bool) {
	if float64(count) > p.GrowAt*float64(capacity) {
		return 2 * capacity, true
	}
	return capacity, false
}

// Shrink is evaluated after a successful delete. Capacity never drops
// below MinCapacity.
func (p ResizePolicy) Shrink(count, capacity int) (int, bool) {
	if float64(count) >= p.ShrinkAt*float64(capacity) {
		return capacity, false
	}
	target := math.Max(math.DivFloor(capacity, 2), p.MinCapacity)
	if target >= capacity {
		return capacity, false
	}
	return target, true
}
