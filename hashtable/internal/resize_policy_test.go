package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResizePolicyGrow(t *testing.T) {
	p := ResizePolicy{GrowAt: 0.75, ShrinkAt: 0.25, MinCapacity: 1}
	target, ok := p.Grow(7, 10)
	require.Equal(t, false, ok)
	require.Equal(t, 10, target)
	target, ok = p.Grow(8, 10)
	require.Equal(t, true, ok)
	require.Equal(t, 20, target)
	target, ok = p.Grow(1, 1)
	require.Equal(t, true, ok)
	require.Equal(t, 2, target)
}

func TestResizePolicyShrink(t *testing.T) {
	p := ResizePolicy{GrowAt: 0.75, ShrinkAt: 0.25, MinCapacity: 1}
	_, ok := p.Shrink(3, 10)
	require.Equal(t, false, ok)
	target, ok := p.Shrink(2, 10)
	require.Equal(t, true, ok)
	require.Equal(t, 5, target)
	target, ok = p.Shrink(1, 5)
	require.Equal(t, true, ok)
	require.Equal(t, 2, target)
	target, ok = p.Shrink(0, 2)
	require.Equal(t, true, ok)
	require.Equal(t, 1, target)
	target, ok = p.Shrink(0, 1)
	require.Equal(t, false, ok)
	require.Equal(t, 1, target)
}

func TestResizePolicyShrinkFloor(t *testing.T) {
	p := ResizePolicy{GrowAt: 0.75, ShrinkAt: 0.25, MinCapacity: 8}
	target, ok := p.Shrink(0, 10)
	require.Equal(t, true, ok)
	require.Equal(t, 8, target)
	_, ok = p.Shrink(0, 8)
	require.Equal(t, false, ok)
}
