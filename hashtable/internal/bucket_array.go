package internal

import "github.com/tuannh982/hashtable/hashtable/commons"

// BucketArray is one generation of the table's storage. Its length is fixed
// at construction; a resize builds a new array instead of mutating this one.
type BucketArray[K comparable, V any] struct {
	buckets []Bucket[K, V]
}

func NewBucketArray[K comparable, V any](capacity int) *BucketArray[K, V] {
	return &BucketArray[K, V]{
		buckets: make([]Bucket[K, V], capacity),
	}
}

func (a *BucketArray[K, V]) Capacity() int {
	return len(a.buckets)
}

func (a *BucketArray[K, V]) At(index int) *Bucket[K, V] {
	return &a.buckets[index]
}

// ForEach visits entries in bucket-index order, then insertion order.
func (a *BucketArray[K, V]) ForEach(visitor func(e commons.Entry[K, V])) {
	for i := range a.buckets {
		a.buckets[i].ForEach(visitor)
	}
}

// Size sums the bucket lengths.
func (a *BucketArray[K, V]) Size() int {
	n := 0
	for i := range a.buckets {
		n += a.buckets[i].Len()
	}
	return n
}

// Occupancy reports how many buckets are empty and the length of the longest one.
func (a *BucketArray[K, V]) Occupancy() (empty int, longest int) {
	for i := range a.buckets {
		l := a.buckets[i].Len()
		if l == 0 {
			empty++
		}
		if l > longest {
			longest = l
		}
	}
	return empty, longest
}
