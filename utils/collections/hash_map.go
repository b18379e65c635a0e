package collections

import (
	"github.com/tuannh982/hashtable/hashtable"
	"github.com/tuannh982/hashtable/utils/math"
)

type hashMap[K comparable, V any] struct {
	entries *hashtable.Table[K, V]
}

func NewHashMap[K comparable, V any]() Map[K, V] {
	return &hashMap[K, V]{
		entries: hashtable.New[K, V](hashtable.DefaultCapacity),
	}
}

// NewHashMapWithHint sizes the table so that hint entries fit without a resize.
func NewHashMapWithHint[K comparable, V any](hint int) Map[K, V] {
	capacity := math.Max(math.DivCeil(hint*4, 3), hashtable.DefaultCapacity)
	return &hashMap[K, V]{
		entries: hashtable.New[K, V](capacity),
	}
}

func (m *hashMap[K, V]) Contains(k K) bool {
	return m.entries.Has(k)
}

func (m *hashMap[K, V]) Put(k K, v V, forced bool) error {
	if !forced && m.Contains(k) {
		return ErrValueExisted
	}
	m.entries.Set(k, v)
	return nil
}

func (m *hashMap[K, V]) Get(k K) (V, error) {
	v, found := m.entries.Get(k)
	if !found {
		return v, ErrValueNotExisted
	}
	return v, nil
}

func (m *hashMap[K, V]) Delete(k K) error {
	if !m.entries.Delete(k) {
		return ErrValueNotExisted
	}
	return nil
}

func (m *hashMap[K, V]) Size() int {
	return m.entries.Count()
}

func (m *hashMap[K, V]) Keys() []K {
	return m.entries.Keys()
}

func (m *hashMap[K, V]) Values() []V {
	return m.entries.Values()
}

func (m *hashMap[K, V]) String() string {
	return m.entries.Stats().String()
}
