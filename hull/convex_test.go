package hull

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsConvex(t *testing.T) {
	square := [][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	t.Run("convex either winding", func(t *testing.T) {
		boundary := boundaryFromCoords(square)
		assert.True(t, IsConvex(boundary, 0))

		reversed := make(SearchPointVector, 0, len(boundary))
		for i := len(boundary) - 1; i >= 0; i-- {
			reversed = append(reversed, boundary[i])
		}
		assert.True(t, IsConvex(reversed, 0))
	})

	t.Run("dent makes it concave", func(t *testing.T) {
		boundary := boundaryFromCoords([][2]float64{
			{0, 0}, {5, 2}, {10, 0}, {10, 10}, {0, 10},
		})
		assert.False(t, IsConvex(boundary, 0))
	})

	t.Run("collinear edge points are allowed", func(t *testing.T) {
		boundary := boundaryFromCoords([][2]float64{
			{0, 0}, {5, 0}, {10, 0}, {10, 10}, {0, 10},
		})
		assert.True(t, IsConvex(boundary, 0))
	})

	t.Run("degenerate sizes are trivially convex", func(t *testing.T) {
		coords := [][2]float64{{0, 0}, {1, 1}}
		for size := 0; size <= 2; size++ {
			assert.True(t, IsConvex(boundaryFromCoords(coords[:size]), 0))
		}
	})
}
