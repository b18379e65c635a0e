package hashtable

import (
	"fmt"
	"strings"

	"github.com/tuannh982/hashtable/hashtable/commons"
	"github.com/tuannh982/hashtable/hashtable/internal"

	log "github.com/sirupsen/logrus"
)

// Table is a separate-chaining hash table that doubles its bucket array when
// the load factor rises above GrowAt and halves it when it falls below
// ShrinkAt.
//
// Keys must not change their hashed form while stored. A Table is not safe
// for concurrent use; callers serialize access themselves.
type Table[K comparable, V any] struct {
	buckets         *internal.BucketArray[K, V]
	count           int
	initialCapacity int
	policy          internal.ResizePolicy
	hasher          KeyHasher[K]
	grows           int
	shrinks         int
	// log
	log *log.Entry
}

// New creates a table with the default policy. A non-positive capacity
// falls back to DefaultCapacity.
func New[K comparable, V any](capacity int) *Table[K, V] {
	cfg := DefaultConfig()
	if capacity > 0 {
		cfg.InitialCapacity = capacity
	}
	t, _ := NewWithHasher[K, V](cfg, PositionalHasher[K]())
	return t
}

func NewWithConfig[K comparable, V any](cfg Config) (*Table[K, V], error) {
	hasher, err := hasherByName[K](cfg.Hasher)
	if err != nil {
		return nil, err
	}
	return NewWithHasher[K, V](cfg, hasher)
}

func NewWithHasher[K comparable, V any](cfg Config, hasher KeyHasher[K]) (*Table[K, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.WithFields(log.Fields{"component": "hashtable"})
	}
	return &Table[K, V]{
		buckets:         internal.NewBucketArray[K, V](cfg.InitialCapacity),
		initialCapacity: cfg.InitialCapacity,
		policy: internal.ResizePolicy{
			GrowAt:      cfg.GrowAt,
			ShrinkAt:    cfg.ShrinkAt,
			MinCapacity: cfg.MinCapacity,
		},
		hasher: hasher,
		log:    logger,
	}, nil
}

func (t *Table[K, V]) bucket(arr *internal.BucketArray[K, V], key K) *internal.Bucket[K, V] {
	return arr.At(t.hasher.Hash(key, arr.Capacity()))
}

// place is the single insert path, shared by Set and resize.
func (t *Table[K, V]) place(arr *internal.BucketArray[K, V], key K, value V) internal.InsertResult {
	return t.bucket(arr, key).InsertOrUpdate(key, value)
}

// Set stores value under key, replacing any previous value.
func (t *Table[K, V]) Set(key K, value V) *Table[K, V] {
	if t.place(t.buckets, key, value) == internal.Inserted {
		t.count++
		if target, ok := t.policy.Grow(t.count, t.buckets.Capacity()); ok {
			t.resize(target)
			t.grows++
		}
	}
	return t
}

// Get returns the value stored under key; found is false when key is absent.
func (t *Table[K, V]) Get(key K) (value V, found bool) {
	return t.bucket(t.buckets, key).Get(key)
}

func (t *Table[K, V]) Has(key K) bool {
	return t.bucket(t.buckets, key).Find(key) >= 0
}

// Delete removes key and reports whether it was present.
func (t *Table[K, V]) Delete(key K) bool {
	if _, removed := t.bucket(t.buckets, key).Remove(key); !removed {
		return false
	}
	t.count--
	if target, ok := t.policy.Shrink(t.count, t.buckets.Capacity()); ok {
		t.resize(target)
		t.shrinks++
	}
	return true
}

func (t *Table[K, V]) Count() int {
	return t.count
}

func (t *Table[K, V]) Capacity() int {
	return t.buckets.Capacity()
}

func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.count) / float64(t.buckets.Capacity())
}

// ForEach visits every entry in bucket order. The order changes after a resize.
// The visitor must not mutate the table.
func (t *Table[K, V]) ForEach(visitor func(key K, value V)) {
	t.buckets.ForEach(func(e commons.Entry[K, V]) {
		visitor(e.Key, e.Value)
	})
}

func (t *Table[K, V]) Keys() []K {
	arr := make([]K, 0, t.count)
	t.ForEach(func(k K, _ V) {
		arr = append(arr, k)
	})
	return arr
}

func (t *Table[K, V]) Values() []V {
	arr := make([]V, 0, t.count)
	t.ForEach(func(_ K, v V) {
		arr = append(arr, v)
	})
	return arr
}

// Clear drops every entry and returns to the initial capacity. Resize
// counters start over.
func (t *Table[K, V]) Clear() {
	t.buckets = internal.NewBucketArray[K, V](t.initialCapacity)
	t.count = 0
	t.grows = 0
	t.shrinks = 0
}

func (t *Table[K, V]) Stats() Stats {
	empty, longest := t.buckets.Occupancy()
	return Stats{
		Count:         t.count,
		Capacity:      t.buckets.Capacity(),
		LoadFactor:    t.LoadFactor(),
		EmptyBuckets:  empty,
		LongestBucket: longest,
		Grows:         t.grows,
		Shrinks:       t.shrinks,
	}
}

// resize rehashes every entry into a fresh array of the target capacity,
// then swaps it in.
func (t *Table[K, V]) resize(capacity int) {
	old := t.buckets
	next := internal.NewBucketArray[K, V](capacity)
	old.ForEach(func(e commons.Entry[K, V]) {
		t.place(next, e.Key, e.Value)
	})
	t.buckets = next
	t.log.WithFields(log.Fields{
		"from":  old.Capacity(),
		"to":    capacity,
		"count": t.count,
	}).Debug("table resized")
}

func (t *Table[K, V]) String() string {
	var sb strings.Builder
	for i := 0; i < t.buckets.Capacity(); i++ {
		b := t.buckets.At(i)
		if b.Len() == 0 {
			continue
		}
		fmt.Fprintf(&sb, "%d:%s\n", i, b.String())
	}
	return sb.String()
}
