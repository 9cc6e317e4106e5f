package vectors

import (
	"math"
	"testing"
)

func matNear(a, b Mat3, tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(a[i][j]-b[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

func TestIdentity(t *testing.T) {
	v := Vec3{1.5, -2.0, 0.25}
	if got := Identity().MulVec(v); got != v {
		t.Errorf("Identity changed %v into %v", v, got)
	}
	if got := Identity().Mul(Identity()); !matNear(got, Identity(), 0.0) {
		t.Errorf("I·I = %v", got)
	}
}

func TestRotationsAreFrameRotations(t *testing.T) {
	// The constructors rotate the frame, not the vector: RotateZ(+90°)
	// expresses the old +X axis as -Y in the new frame.
	got := RotateZ(math.Pi / 2.0).MulVec(Vec3{1.0, 0.0, 0.0})
	want := Vec3{0.0, -1.0, 0.0}
	if got.Sub(want).Norm() > 1e-12 {
		t.Errorf("RotateZ(π/2)·x = %v, want %v", got, want)
	}

	// Rotating the equatorial pole into the ecliptic frame tips it by the
	// rotation angle toward +Y.
	eps := 0.409093
	pole := RotateX(eps).MulVec(Vec3{0.0, 0.0, 1.0})
	want = Vec3{0.0, math.Sin(eps), math.Cos(eps)}
	if pole.Sub(want).Norm() > 1e-12 {
		t.Errorf("RotateX(ε)·z = %v, want %v", pole, want)
	}

	y := RotateY(math.Pi / 2.0).MulVec(Vec3{0.0, 0.0, 1.0})
	want = Vec3{-1.0, 0.0, 0.0}
	if y.Sub(want).Norm() > 1e-12 {
		t.Errorf("RotateY(π/2)·z = %v, want %v", y, want)
	}
}

func TestTransposeInvertsRotation(t *testing.T) {
	angles := []float64{0.0, 0.3, -1.2, math.Pi / 2.0, 2.9}
	for _, a := range angles {
		for _, m := range []Mat3{RotateX(a), RotateY(a), RotateZ(a)} {
			if got := m.Mul(m.Transpose()); !matNear(got, Identity(), 1e-15) {
				t.Errorf("R(%v)·Rᵀ = %v", a, got)
			}
		}
	}
}

func TestMulComposes(t *testing.T) {
	a, b := RotateX(0.4), RotateZ(-1.1)
	v := Vec3{0.3, -2.0, 1.7}

	left := a.Mul(b).MulVec(v)
	right := a.MulVec(b.MulVec(v))
	if left.Sub(right).Norm() > 1e-12 {
		t.Errorf("(A·B)v = %v, A(Bv) = %v", left, right)
	}
}

func TestRotationPreservesNorm(t *testing.T) {
	v := Vec3{3.0, -4.0, 12.0}
	got := RotateY(1.234).MulVec(v)
	if math.Abs(got.Norm()-v.Norm()) > 1e-12 {
		t.Errorf("rotation changed norm from %v to %v", v.Norm(), got.Norm())
	}
}
