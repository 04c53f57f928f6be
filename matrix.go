package gg

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// (This is the same affine map Canvas2D's DOMMatrix calls
// `[a,b,c,d,e,f]` with `x'=a·x+c·y+e; y'=b·x+d·y+f` — only the
// letter-to-slot assignment differs; the six degrees of freedom and
// their composition are identical.)
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// decomposition is the axis-aligned / rotation / scale breakdown of a
// Matrix, consulted by fast-path dispatch (fastshapes.go). It is
// derived on demand rather than stored, so the invariant "cached
// fields agree with the matrix" holds trivially for every Matrix
// value, including ones built as a bare struct literal.
type decomposition struct {
	isAxisAligned     bool
	is90DegreeRotated bool
	isUniformScale    bool
	scaleX, scaleY    float64
	rotation          float64
}

const axisEpsilon = 1e-4

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// NewMatrix builds a Matrix from its six coefficients.
func NewMatrix(a, b, c, d, e, f float64) Matrix {
	return Matrix{A: a, B: b, C: c, D: d, E: e, F: f}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return NewMatrix(1, 0, x, 0, 1, y)
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return NewMatrix(x, 0, 0, 0, y, 0)
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return NewMatrix(cos, -sin, 0, sin, cos, 0)
}

// Shear creates a shear matrix.
func Shear(x, y float64) Matrix {
	return NewMatrix(1, x, 0, y, 1, 0)
}

// Multiply multiplies two matrices (m * other), i.e. other is applied
// first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return NewMatrix(
		m.A*other.A+m.B*other.D,
		m.A*other.B+m.B*other.E,
		m.A*other.C+m.B*other.F+m.C,
		m.D*other.A+m.E*other.D,
		m.D*other.B+m.E*other.E,
		m.D*other.C+m.E*other.F+m.F,
	)
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// Determinant returns the matrix's determinant.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse matrix, or ErrNonInvertibleTransform when
// |det| < 1e-10.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < 1e-10 {
		return Matrix{}, ErrNonInvertibleTransform
	}

	invDet := 1.0 / det
	return NewMatrix(
		m.E*invDet,
		-m.B*invDet,
		(m.B*m.F-m.C*m.E)*invDet,
		-m.D*invDet,
		m.A*invDet,
		(m.C*m.D-m.A*m.F)*invDet,
	), nil
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// IsAxisAligned reports whether the matrix maps axis-aligned rectangles
// to axis-aligned rectangles (no rotation or shear).
func (m Matrix) IsAxisAligned() bool {
	return m.decompose().isAxisAligned
}

// Is90DegreeRotated reports whether the matrix is a pure 90-degree
// rotation (possibly combined with scale/translation).
func (m Matrix) Is90DegreeRotated() bool {
	return m.decompose().is90DegreeRotated
}

// IsUniformScale reports whether the matrix scales both axes equally.
func (m Matrix) IsUniformScale() bool {
	return m.decompose().isUniformScale
}

// Scales returns the (scaleX, scaleY) decomposition.
func (m Matrix) Scales() (float64, float64) {
	d := m.decompose()
	return d.scaleX, d.scaleY
}

// decompose computes the axis-aligned / rotation / scale breakdown:
// axis-aligned when the off-diagonal terms |B|,|D| are near zero,
// 90-degree-rotated when the diagonal terms |A|,|E| are near zero, else
// the general sqrt/atan2 form. The translation terms C and F play no
// part.
func (m Matrix) decompose() decomposition {
	switch {
	case math.Abs(m.B) < axisEpsilon && math.Abs(m.D) < axisEpsilon:
		rotation := 0.0
		if m.A < 0 {
			rotation = math.Pi
		}
		return decomposition{
			isAxisAligned:  true,
			scaleX:         math.Abs(m.A),
			scaleY:         math.Abs(m.E),
			rotation:       rotation,
			isUniformScale: math.Abs(math.Abs(m.A)-math.Abs(m.E)) < axisEpsilon,
		}
	case math.Abs(m.A) < axisEpsilon && math.Abs(m.E) < axisEpsilon:
		rotation := math.Pi / 2
		if m.D < 0 {
			rotation = -math.Pi / 2
		}
		return decomposition{
			is90DegreeRotated: true,
			scaleX:            math.Abs(m.D),
			scaleY:            math.Abs(m.B),
			rotation:          rotation,
			isUniformScale:    math.Abs(math.Abs(m.D)-math.Abs(m.B)) < axisEpsilon,
		}
	default:
		scaleX := math.Sqrt(m.A*m.A + m.D*m.D)
		scaleY := math.Sqrt(m.B*m.B + m.E*m.E)
		return decomposition{
			scaleX:         scaleX,
			scaleY:         scaleY,
			rotation:       math.Atan2(-m.B, m.A),
			isUniformScale: math.Abs(scaleX-scaleY) < axisEpsilon,
		}
	}
}
