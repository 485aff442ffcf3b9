package pica

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/pica/driver"
)

// Matrix is a 4x4 transformation matrix, value type.
// Fields are declared row by row but numbered down the columns, so the
// memory layout is column-major:
//
//	| M0  M4  M8   M12 |
//	| M1  M5  M9   M13 |
//	| M2  M6  M10  M14 |
//	| M3  M7  M11  M15 |
//
// The numbering matches the classic fixed-function convention, and the
// composition helpers below depend on it. Do not reorder the fields.
type Matrix struct {
	M0, M4, M8, M12  float32
	M1, M5, M9, M13  float32
	M2, M6, M10, M14 float32
	M3, M7, M11, M15 float32
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{M0: 1, M5: 1, M10: 1, M15: 1}
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Matrix {
	m := Identity()
	m.M12, m.M13, m.M14 = x, y, z
	return m
}

// Scale returns a scaling matrix.
func Scale(x, y, z float32) Matrix {
	return Matrix{M0: x, M5: y, M10: z, M15: 1}
}

// Rotate returns a rotation matrix around an arbitrary axis.
// The angle is in radians. The axis is normalized if it is not already
// unit length.
func Rotate(axisX, axisY, axisZ, angle float32) Matrix {
	x, y, z := axisX, axisY, axisZ

	lenSq := x*x + y*y + z*z
	if lenSq != 1 && lenSq != 0 {
		inv := 1 / math32.Sqrt(lenSq)
		x *= inv
		y *= inv
		z *= inv
	}

	sin := math32.Sin(angle)
	cos := math32.Cos(angle)
	t := 1 - cos

	return Matrix{
		M0: x*x*t + cos, M4: x*y*t - z*sin, M8: x*z*t + y*sin,
		M1: y*x*t + z*sin, M5: y*y*t + cos, M9: y*z*t - x*sin,
		M2: z*x*t - y*sin, M6: z*y*t + x*sin, M10: z*z*t + cos,
		M15: 1,
	}
}

// Frustum returns a perspective projection matrix.
func Frustum(left, right, bottom, top, near, far float32) Matrix {
	rl := right - left
	tb := top - bottom
	fn := far - near

	return Matrix{
		M0: near * 2 / rl,
		M5: near * 2 / tb,
		M8: (right + left) / rl, M9: (top + bottom) / tb, M10: -(far + near) / fn, M11: -1,
		M14: -(far * near * 2) / fn,
	}
}

// Ortho returns an orthographic projection matrix.
// Equal left/right or top/bottom values divide by zero; callers own that
// precondition.
func Ortho(left, right, bottom, top, near, far float32) Matrix {
	rl := right - left
	tb := top - bottom
	fn := far - near

	return Matrix{
		M0:  2 / rl,
		M5:  2 / tb,
		M10: -2 / fn,
		M12: -(left + right) / rl, M13: -(top + bottom) / tb, M14: -(far + near) / fn, M15: 1,
	}
}

// FromColumns builds a Matrix from 16 values in column-major order, the
// layout accepted by classic MultMatrix-style calls.
func FromColumns(f [16]float32) Matrix {
	return Matrix{
		M0: f[0], M4: f[4], M8: f[8], M12: f[12],
		M1: f[1], M5: f[5], M9: f[9], M13: f[13],
		M2: f[2], M6: f[6], M10: f[10], M14: f[14],
		M3: f[3], M7: f[7], M11: f[11], M15: f[15],
	}
}

// Multiply returns the matrix product of m and right.
//
// With this field layout, newTransform.Multiply(current) applies
// newTransform before current in vertex order. The asymmetry in
// MatrixStack between Translate/Rotate/Scale (which pre-multiply the
// current matrix) and Mult/Frustum/Ortho (which post-multiply) relies on
// this exact formula.
func (m Matrix) Multiply(right Matrix) Matrix {
	return Matrix{
		M0:  m.M0*right.M0 + m.M1*right.M4 + m.M2*right.M8 + m.M3*right.M12,
		M1:  m.M0*right.M1 + m.M1*right.M5 + m.M2*right.M9 + m.M3*right.M13,
		M2:  m.M0*right.M2 + m.M1*right.M6 + m.M2*right.M10 + m.M3*right.M14,
		M3:  m.M0*right.M3 + m.M1*right.M7 + m.M2*right.M11 + m.M3*right.M15,
		M4:  m.M4*right.M0 + m.M5*right.M4 + m.M6*right.M8 + m.M7*right.M12,
		M5:  m.M4*right.M1 + m.M5*right.M5 + m.M6*right.M9 + m.M7*right.M13,
		M6:  m.M4*right.M2 + m.M5*right.M6 + m.M6*right.M10 + m.M7*right.M14,
		M7:  m.M4*right.M3 + m.M5*right.M7 + m.M6*right.M11 + m.M7*right.M15,
		M8:  m.M8*right.M0 + m.M9*right.M4 + m.M10*right.M8 + m.M11*right.M12,
		M9:  m.M8*right.M1 + m.M9*right.M5 + m.M10*right.M9 + m.M11*right.M13,
		M10: m.M8*right.M2 + m.M9*right.M6 + m.M10*right.M10 + m.M11*right.M14,
		M11: m.M8*right.M3 + m.M9*right.M7 + m.M10*right.M11 + m.M11*right.M15,
		M12: m.M12*right.M0 + m.M13*right.M4 + m.M14*right.M8 + m.M15*right.M12,
		M13: m.M12*right.M1 + m.M13*right.M5 + m.M14*right.M9 + m.M15*right.M13,
		M14: m.M12*right.M2 + m.M13*right.M6 + m.M14*right.M10 + m.M15*right.M14,
		M15: m.M12*right.M3 + m.M13*right.M7 + m.M14*right.M11 + m.M15*right.M15,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// deviceOrder packs the matrix into the device's uniform register order.
// Each destination row holds one source column with its components
// reversed: the shader unit stores uniform rows WZYX.
func (m Matrix) deviceOrder() driver.Mat4 {
	return driver.Mat4{
		m.M3, m.M2, m.M1, m.M0,
		m.M7, m.M6, m.M5, m.M4,
		m.M11, m.M10, m.M9, m.M8,
		m.M15, m.M14, m.M13, m.M12,
	}
}
