package collections

// Map is a keyed collection that reports misuse as errors instead of
// silently overwriting or returning zero values.
type Map[K any, V any] interface {
	Contains(k K) bool
	// Put fails with ErrValueExisted unless forced.
	Put(k K, v V, forced bool) error
	Get(k K) (V, error)
	Delete(k K) error
	Size() int
	Keys() []K
	Values() []V
}
