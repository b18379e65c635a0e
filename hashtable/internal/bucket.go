package internal

import (
	"fmt"

	"github.com/tuannh982/hashtable/hashtable/commons"
	"golang.org/x/exp/slices"
)

type InsertResult int

const (
	Inserted InsertResult = iota
	Updated
)

// Bucket holds the entries whose keys hash to the same index, in insertion order.
type Bucket[K comparable, V any] struct {
	entries []commons.Entry[K, V]
}

// Find returns the position of key inside the bucket, or -1.
func (b *Bucket[K, V]) Find(key K) int {
	return slices.IndexFunc(b.entries, func(e commons.Entry[K, V]) bool {
		return e.Key == key
	})
}

func (b *Bucket[K, V]) Get(key K) (v V, found bool) {
	if i := b.Find(key); i >= 0 {
		return b.entries[i].Value, true
	}
	return v, false
}

func (b *Bucket[K, V]) InsertOrUpdate(key K, value V) InsertResult {
	if i := b.Find(key); i >= 0 {
		b.entries[i].Value = value
		return Updated
	}
	b.entries = append(b.entries, commons.Entry[K, V]{Key: key, Value: value})
	return Inserted
}

func (b *Bucket[K, V]) Remove(key K) (e commons.Entry[K, V], removed bool) {
	i := b.Find(key)
	if i < 0 {
		return e, false
	}
	e = b.entries[i]
	b.entries = slices.Delete(b.entries, i, i+1)
	if len(b.entries) == 0 {
		b.entries = nil
	}
	return e, true
}

func (b *Bucket[K, V]) ForEach(visitor func(e commons.Entry[K, V])) {
	for _, e := range b.entries {
		visitor(e)
	}
}

func (b *Bucket[K, V]) Len() int {
	return len(b.entries)
}

func (b *Bucket[K, V]) String() string {
	return fmt.Sprint(b.entries)
}
