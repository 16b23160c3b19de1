package builtin

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

const singularDet = 1e-12

// NormalMatrix returns the upper 3x3 of the inverse transpose of
// worldToCamera, the matrix that keeps normals perpendicular under
// non-uniform scale. The inversion runs in float64. When worldToCamera is
// not invertible the identity is returned with ok false.
func NormalMatrix(worldToCamera mgl32.Mat4) (n mgl32.Mat3, ok bool) {
	var m mgl64.Mat4
	for i, v := range worldToCamera {
		m[i] = float64(v)
	}
	if math.Abs(m.Det()) < singularDet {
		return mgl32.Ident3(), false
	}
	it := m.Inv().Transpose()
	return mgl32.Mat3{
		float32(it[0]), float32(it[1]), float32(it[2]),
		float32(it[4]), float32(it[5]), float32(it[6]),
		float32(it[8]), float32(it[9]), float32(it[10]),
	}, true
}
