package hashtable

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// KeyHasher maps a key to a bucket index in [0, capacity). Implementations
// must be pure: the same key and capacity always give the same index.
type KeyHasher[K any] interface {
	Hash(key K, capacity int) int
}

type KeyHasherFunc[K any] func(key K, capacity int) int

func (f KeyHasherFunc[K]) Hash(key K, capacity int) int {
	return f(key, capacity)
}

const (
	HashPositional = "positional"
	HashXX         = "xxhash"
)

// KeyString renders a key the way the built-in hashers see it.
func KeyString[K any](key K) string {
	switch k := any(key).(type) {
	case string:
		return k
	case fmt.Stringer:
		return k.String()
	default:
		return fmt.Sprint(key)
	}
}

// PositionalHasher sums each rune weighted by its 1-based position.
func PositionalHasher[K any]() KeyHasher[K] {
	return KeyHasherFunc[K](func(key K, capacity int) int {
		var sum uint64
		for i, r := range []rune(KeyString(key)) {
			sum += uint64(r) * uint64(i+1)
		}
		return int(sum % uint64(capacity))
	})
}

func XXHasher[K any]() KeyHasher[K] {
	return KeyHasherFunc[K](func(key K, capacity int) int {
		return int(xxhash.Sum64String(KeyString(key)) % uint64(capacity))
	})
}

func hasherByName[K any](name string) (KeyHasher[K], error) {
	switch name {
	case "", HashPositional:
		return PositionalHasher[K](), nil
	case HashXX:
		return XXHasher[K](), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, name)
	}
}
