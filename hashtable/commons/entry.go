package commons

import "fmt"

// Entry is a key/value pair owned by exactly one bucket.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("(k=%v,v=%v)", e.Key, e.Value)
}
