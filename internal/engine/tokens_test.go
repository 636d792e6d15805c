package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenSet(t *testing.T) {
	set := NewTokenSet(testLayout())
	require.Equal(t, 3, set.Len())

	homes := PolygonLayout(3, 800, 600, 0.7)
	for i := 0; i < set.Len(); i++ {
		tok := set.Token(i)
		assert.Equal(t, homes[i], tok.Pos)
		assert.Equal(t, homes[i], set.Home(i+1))
		assert.Equal(t, 50.0, tok.Radius)
		assert.False(t, tok.Hidden)
		assert.Equal(t, i, set.Occupant(i+1))
	}
	assert.Equal(t, green, set.Token(1).Color)
}

func TestTokenSet_HideRender(t *testing.T) {
	set := NewTokenSet(testLayout())
	var dst recorder

	// mixed visibility beforehand
	set.tokens[1].Hidden = true
	set.HideAll()
	set.Render(&dst)
	assert.Equal(t, 1, dst.clears)
	assert.Equal(t, map[string]int{"square": 3}, dst.kinds())
	for i, op := range dst.ops {
		assert.Equal(t, 100.0, op.size)
		assert.Equal(t, grey, op.clr)
		assert.Equal(t, set.Token(i).Pos, op.center)
	}

	set.tokens[0].Hidden = false
	set.UnhideAll()
	set.Render(&dst)
	assert.Equal(t, 2, dst.clears)
	assert.Equal(t, map[string]int{"circle": 3}, dst.kinds())
	assert.Equal(t, red, dst.ops[0].clr)
	assert.Equal(t, 50.0, dst.ops[2].size)
}

func TestTokenSet_MoveReset(t *testing.T) {
	set := NewTokenSet(testLayout())
	set.Move(2, Point{1, 2})
	set.exchange(1, 3)
	assert.Equal(t, Point{1, 2}, set.Token(2).Pos)
	assert.Equal(t, []int{2, 1, 0}, set.Arrangement())

	set.Reset()
	assert.Equal(t, set.Home(3), set.Token(2).Pos)
	assert.Equal(t, []int{0, 1, 2}, set.Arrangement())
}
