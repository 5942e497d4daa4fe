// Package matrix provides 2D affine transformations.
package matrix

import (
	"math"

	"github.com/benoitkugler/cssom/utils"
)

type fl = utils.Fl

// Transform encode a (2D) linear transformation
//
// The encoded transformation is given by :
//
//	x_new = a * x + c * y + e
//	y_new = b * x + d * y + f
//
// which is equivalent to the vector notation Y = AX + B, with
//
//	A = | a c | ;  B = 	| e |
//		| b	d |			| f |
type Transform struct {
	A, B, C, D, E, F fl
}

func New(a, b, c, d, e, f fl) Transform {
	return Transform{A: a, B: b, C: c, D: d, E: e, F: f}
}

// Identity returns a new matrix initialized to the identity.
func Identity() Transform {
	return New(1, 0, 0, 1, 0, 0)
}

// Translation returns the translation by (tx, ty).
func Translation(tx, ty fl) Transform {
	return Transform{1, 0, 0, 1, tx, ty}
}

// Scaling returns the scaling by (sx, sy).
func Scaling(sx, sy fl) Transform {
	return Transform{sx, 0, 0, sy, 0, 0}
}

// Rotation returns a rotation.
//
// `radians` is the angle of rotation, in radians.
// The direction of rotation is defined such that positive angles
// rotate in the direction from the positive X axis
// toward the positive Y axis.
func Rotation(radians fl) Transform {
	cos, sin := fl(math.Cos(float64(radians))), fl(math.Sin(float64(radians)))
	return Transform{cos, sin, -sin, cos, 0, 0}
}

// Skew returns a skew transformation
func Skew(thetax, thetay fl) Transform {
	b, c := fl(math.Tan(float64(thetay))), fl(math.Tan(float64(thetax)))
	return Transform{1, b, c, 1, 0, 0}
}

// Determinant returns the determinant of the matrix, which is
// non zero if and only if the transformation is reversible.
func (t Transform) Determinant() fl {
	return t.A*t.D - t.B*t.C
}

// write t1 * t2 in out
func mult(t1, t2 Transform, out *Transform) {
	out.A = t1.A*t2.A + t1.C*t2.B
	out.B = t1.B*t2.A + t1.D*t2.B
	out.C = t1.A*t2.C + t1.C*t2.D
	out.D = t1.B*t2.C + t1.D*t2.D
	out.E = t1.A*t2.E + t1.C*t2.F + t1.E
	out.F = t1.B*t2.E + t1.D*t2.F + t1.F
}

// Mul returns the transform T * U,
// which apply U then T.
func Mul(T, U Transform) Transform {
	out := Transform{}
	mult(T, U, &out)
	return out
}

// RightMultBy update T in place with the result of T * U
func (T *Transform) RightMultBy(U Transform) { mult(*T, U, T) }

// Apply transforms the point `(x, y)` by this matrix, that is
// compute AX + B
func (T Transform) Apply(x, y fl) (outX, outY fl) {
	outX = T.A*x + T.C*y + T.E
	outY = T.B*x + T.D*y + T.F
	return
}
