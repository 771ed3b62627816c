package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromFloat32(t *testing.T) {
	v := FromFloat32([3]float32{1, -2, 0.5})
	assert.Equal(t, Vec3{1, -2, 0.5}, v)
}

func TestSub(t *testing.T) {
	d := Vec3{3, 2, 1}.Sub(Vec3{1, 1, 1})
	assert.Equal(t, Vec3{2, 1, 0}, d)
}

func TestCross(t *testing.T) {
	// X cross Y is Z.
	n := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	assert.Equal(t, Vec3{0, 0, 1}, n)
}

func TestLen(t *testing.T) {
	assert.InDelta(t, 5.0, Vec3{3, 4, 0}.Len(), 1e-12)
}

func TestNormalize(t *testing.T) {
	n := Vec3{0, 0, 10}.Normalize()
	assert.InDelta(t, 1.0, n.Len(), 1e-12)
	assert.Equal(t, Vec3{0, 0, 1}, n)

	// Degenerate triangles produce a zero cross product; normalizing it
	// must not divide by zero.
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
}
