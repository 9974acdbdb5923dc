package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstants(t *testing.T) {
	// Both constants change which shapes intersect, so they're pinned
	assert.Equal(t, 1e-10, ZeroTolerance)
	assert.Equal(t, 1.0, SnapDistanceSq)
}

func TestIsZero(t *testing.T) {
	assert.True(t, IsZero(0))
	assert.True(t, IsZero(1e-11))
	assert.True(t, IsZero(-1e-11))
	assert.False(t, IsZero(1e-10))
	assert.False(t, IsZero(-1))
}

func TestDistanceSq(t *testing.T) {
	begin, end := Vec(0, 0), Vec(10, 0)

	t.Run("projection inside the segment", func(t *testing.T) {
		assert.Equal(t, 9.0, DistanceSq(begin, end, Vec(5, 3)))
		assert.Equal(t, 0.0, DistanceSq(begin, end, Vec(5, 0)))
	})

	t.Run("clamped to the endpoints", func(t *testing.T) {
		assert.Equal(t, 25.0, DistanceSq(begin, end, Vec(-3, 4)))
		assert.Equal(t, 25.0, DistanceSq(begin, end, Vec(13, 4)))
	})

	t.Run("zero length segment", func(t *testing.T) {
		assert.Equal(t, 25.0, DistanceSq(Vec(2, 2), Vec(2, 2), Vec(5, 6)))
	})
}

func TestSign(t *testing.T) {
	p1, p2, p3 := Vec(0, 1), Vec(1, 0), Vec(0, 0)
	assert.Equal(t, -1.0, Sign(p1, p2, p3))
	assert.Equal(t, 1.0, Sign(p2, p1, p3))
	// Collinear
	assert.Equal(t, 0.0, Sign(Vec(2, 2), Vec(1, 1), p3))
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		assert.Equal(t, expectedIndexes[i+3], CircularIndex(i, n))
	}
}
