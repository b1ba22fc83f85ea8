package geom

import "math"

// MatrixKind classifies a Matrix by the coefficients it actually uses.
// Applying a matrix dispatches on the kind so that simple transforms
// (translations, pure rotations) avoid the full affine arithmetic.
type MatrixKind uint8

const (
	// KindIdentity is the identity transform.
	KindIdentity MatrixKind = iota

	// KindScale scales about the origin.
	KindScale

	// KindTranslate shifts by a constant offset.
	KindTranslate

	// KindRotate rotates about the origin.
	KindRotate

	// KindScaleTranslate scales, then shifts.
	KindScaleTranslate

	// KindRotateTranslate rotates, then shifts.
	KindRotateTranslate

	// KindAffine is the general rotate+scale+translate case.
	KindAffine
)

// String returns a human-readable name for the kind.
func (k MatrixKind) String() string {
	switch k {
	case KindIdentity:
		return "Identity"
	case KindScale:
		return "Scale"
	case KindTranslate:
		return "Translate"
	case KindRotate:
		return "Rotate"
	case KindScaleTranslate:
		return "ScaleTranslate"
	case KindRotateTranslate:
		return "RotateTranslate"
	case KindAffine:
		return "Affine"
	default:
		return "Unknown"
	}
}

// Matrix is a 2D affine transform stored as a 2x3 matrix in row-major order:
//
//	| A  B  TX |
//	| C  D  TY |
//
// together with a kind tag naming the narrowest class the coefficients fit.
// Composition uses pre-multiplication semantics: m.Mul(n) applies n first,
// then m. The tag set is closed under composition and inversion for the
// classes the compositor uses (rotations and translations); projective
// transforms are not representable and never needed.
type Matrix struct {
	kind     MatrixKind
	a, b, tx float64
	c, d, ty float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{kind: KindIdentity, a: 1, d: 1}
}

// Scale returns a matrix scaling by (sx, sy) about the origin.
func Scale(sx, sy float64) Matrix {
	return classify(sx, 0, 0, 0, sy, 0)
}

// Translate returns a matrix shifting by (tx, ty).
func Translate(tx, ty float64) Matrix {
	return classify(1, 0, tx, 0, 1, ty)
}

// Rotate returns a matrix rotating by angle radians about the origin.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return classify(cos, -sin, 0, sin, cos, 0)
}

// RotateDegrees returns a matrix rotating by angle degrees about the origin.
func RotateDegrees(angle float64) Matrix {
	return Rotate(angle * math.Pi / 180)
}

// Kind returns the classification tag of the matrix.
func (m Matrix) Kind() MatrixKind {
	return m.kind
}

// IsIdentity reports whether the matrix is the identity transform.
func (m Matrix) IsIdentity() bool {
	return m.kind == KindIdentity
}

// Coefficients returns the six affine coefficients in row-major order.
func (m Matrix) Coefficients() (a, b, tx, c, d, ty float64) {
	return m.a, m.b, m.tx, m.c, m.d, m.ty
}

// classify builds a Matrix from raw coefficients, choosing the narrowest
// sufficient kind. The rotational block is inspected first: a sin/cos shaped
// block is classed as a rotation rather than generic affine.
func classify(a, b, tx, c, d, ty float64) Matrix {
	m := Matrix{a: a, b: b, tx: tx, c: c, d: d, ty: ty}

	hasTranslate := tx != 0 || ty != 0
	if b == 0 && c == 0 {
		hasScale := a != 1 || d != 1
		switch {
		case !hasScale && !hasTranslate:
			m.kind = KindIdentity
		case !hasScale:
			m.kind = KindTranslate
		case !hasTranslate:
			m.kind = KindScale
		default:
			m.kind = KindScaleTranslate
		}
		return m
	}

	// sin/cos shape: | cos -sin |
	//                | sin  cos |
	if a == d && b == -c {
		if hasTranslate {
			m.kind = KindRotateTranslate
		} else {
			m.kind = KindRotate
		}
		return m
	}

	m.kind = KindAffine
	return m
}

// Mul composes two matrices. The result applies n first, then m, and is
// reclassified to the narrowest kind its coefficients fit.
func (m Matrix) Mul(n Matrix) Matrix {
	return classify(
		m.a*n.a+m.b*n.c,
		m.a*n.b+m.b*n.d,
		m.a*n.tx+m.b*n.ty+m.tx,
		m.c*n.a+m.d*n.c,
		m.c*n.b+m.d*n.d,
		m.c*n.tx+m.d*n.ty+m.ty,
	)
}

// Invert returns the inverse transform.
// The second result is false when the matrix is singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.a*m.d - m.b*m.c
	if math.Abs(det) < 1e-10 {
		return Matrix{}, false
	}

	invDet := 1.0 / det
	return classify(
		m.d*invDet,
		-m.b*invDet,
		(m.b*m.ty-m.tx*m.d)*invDet,
		-m.c*invDet,
		m.a*invDet,
		(m.tx*m.c-m.a*m.ty)*invDet,
	), true
}

// Apply transforms the point (x, y), dispatching on the matrix kind so each
// class pays only for the coefficients it uses.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	switch m.kind {
	case KindIdentity:
		return x, y
	case KindScale:
		return m.a * x, m.d * y
	case KindTranslate:
		return x + m.tx, y + m.ty
	case KindRotate:
		return m.a*x + m.b*y, m.c*x + m.d*y
	case KindScaleTranslate:
		return m.a*x + m.tx, m.d*y + m.ty
	case KindRotateTranslate, KindAffine:
		return m.a*x + m.b*y + m.tx, m.c*x + m.d*y + m.ty
	default:
		return m.a*x + m.b*y + m.tx, m.c*x + m.d*y + m.ty
	}
}

// ApplyPoint transforms a Point.
func (m Matrix) ApplyPoint(p Point) Point {
	x, y := m.Apply(p.X, p.Y)
	return Point{X: x, Y: y}
}
