package math

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiv(t *testing.T) {
	require.Equal(t, 3, DivCeil(9, 3))
	require.Equal(t, 4, DivCeil(10, 3))
	require.Equal(t, 3, DivFloor(10, 3))
	require.Equal(t, 2, DivFloor(5, 2))
	require.Equal(t, uint32(0), DivFloor(uint32(1), 2))
}

func TestMax(t *testing.T) {
	require.Equal(t, 5, Max(5, 1))
	require.Equal(t, 1, Max(0, 1))
	require.Equal(t, 0.75, Max(0.25, 0.75))
}
