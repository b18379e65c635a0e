package collections

import "github.com/tuannh982/hashtable/hashtable"

type hashSet[R comparable, V any] struct {
	entries  *hashtable.Table[R, V]
	hashFunc HashSetHashFunc[R, V]
}

// HashSetHashFunc derives the identity of a set member.
type HashSetHashFunc[R comparable, V any] func(V) R

func NewHashSet[R comparable, V any](f HashSetHashFunc[R, V]) Set[V] {
	return &hashSet[R, V]{
		entries:  hashtable.New[R, V](hashtable.DefaultCapacity),
		hashFunc: f,
	}
}

func (s *hashSet[R, V]) Contains(v V) bool {
	return s.entries.Has(s.hashFunc(v))
}

func (s *hashSet[R, V]) Add(v V) error {
	if s.Contains(v) {
		return ErrValueExisted
	}
	s.entries.Set(s.hashFunc(v), v)
	return nil
}

func (s *hashSet[R, V]) Remove(v V) error {
	if !s.entries.Delete(s.hashFunc(v)) {
		return ErrValueNotExisted
	}
	return nil
}

func (s *hashSet[R, V]) Size() int {
	return s.entries.Count()
}

func (s *hashSet[R, V]) Entries() []V {
	return s.entries.Values()
}
