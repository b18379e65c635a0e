package hashtable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int
}

func (p point) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

func TestPositionalHasher(t *testing.T) {
	h := PositionalHasher[string]()
	// 'a'*1 + 'b'*2 = 97 + 196
	require.Equal(t, 293%10, h.Hash("ab", 10))
	require.Equal(t, 0, h.Hash("", 10))
	require.Equal(t, h.Hash("key", 7), h.Hash("key", 7))
	require.NotEqual(t, h.Hash("ab", 1000), h.Hash("ba", 1000))
}

func TestHashersStayInRange(t *testing.T) {
	for _, h := range []KeyHasher[string]{PositionalHasher[string](), XXHasher[string]()} {
		for capacity := 1; capacity < 64; capacity++ {
			for i := 0; i < 100; i++ {
				idx := h.Hash(fmt.Sprintf("key-%d-ключ", i), capacity)
				require.GreaterOrEqual(t, idx, 0)
				require.Less(t, idx, capacity)
			}
		}
	}
}

func TestKeyString(t *testing.T) {
	require.Equal(t, "abc", KeyString("abc"))
	require.Equal(t, "42", KeyString(42))
	require.Equal(t, "1:2", KeyString(point{X: 1, Y: 2}))
	h := XXHasher[point]()
	require.Equal(t, h.Hash(point{X: 1, Y: 2}, 97), h.Hash(point{X: 1, Y: 2}, 97))
}

func TestHasherByName(t *testing.T) {
	_, err := hasherByName[string]("")
	require.Nil(t, err)
	_, err = hasherByName[string](HashXX)
	require.Nil(t, err)
	_, err = hasherByName[string]("md5")
	require.ErrorIs(t, err, ErrUnknownHasher)
}
