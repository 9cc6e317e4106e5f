// Package solver provides the scalar search primitives behind every event
// computation: a bracketed Pegasus root finder, quadratic interpolation
// over three equally spaced samples, and an extremum refiner. All of them
// are generic over the floating point type, so constrained callers can run
// them in float32.
package solver

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ErrBracket reports that the two endpoints handed to Pegasus do not
// enclose a sign change, so no root can be located between them.
var ErrBracket = errors.New("no root within the given bracket")

// ErrIterations reports that the root finder did not reach the requested
// accuracy within its iteration budget.
var ErrIterations = errors.New("maximum number of iterations exceeded")

// maxIterations bounds Pegasus. The method converges superlinearly, so a
// well behaved bracket finishes far below the cap.
const maxIterations = 30

// Pegasus locates a root of f between lo and hi using the Pegasus variant
// of the false position method. f(lo) and f(hi) must differ in sign or
// ErrBracket is returned. The search stops once the bracket has shrunk to
// accuracy and returns the endpoint with the smaller residual; if the cap
// of 30 iterations is hit first, ErrIterations is returned.
func Pegasus[T constraints.Float](lo, hi, accuracy T, f func(T) T) (T, error) {
	x1, x2 := lo, hi
	f1, f2 := f(x1), f(x2)

	if f1*f2 >= 0.0 {
		return 0, ErrBracket
	}

	for i := 0; i < maxIterations; i++ {
		x3 := x2 - f2*(x2-x1)/(f2-f1)
		f3 := f(x3)

		if f3*f2 <= 0.0 {
			// Sign change between the two newest points: the bracket moves.
			x1, f1 = x2, f2
		} else {
			// The retained endpoint keeps its abscissa but its ordinate is
			// scaled down. This is the Pegasus acceleration over plain
			// false position.
			f1 = f1 * f2 / (f2 + f3)
		}
		x2, f2 = x3, f3

		if abs(x2-x1) <= accuracy {
			if abs(f1) < abs(f2) {
				return x1, nil
			}
			return x2, nil
		}
	}
	return 0, ErrIterations
}

// Quadratic is the parabola through three samples of a function taken at
// x = -1, 0 and +1.
type Quadratic[T constraints.Float] struct {
	// Xe and Ye locate the apex of the parabola.
	Xe, Ye T
	// Root1 and Root2 are the real roots, valid per NRoots. When exactly
	// one root lies within [-1, 1] it is carried in Root1, whichever of
	// the two it was.
	Root1, Root2 T
	// NRoots counts the roots within [-1, 1]: 0, 1 or 2.
	NRoots int
	// Maximum reports that the apex is a maximum rather than a minimum.
	Maximum bool
}

// NewQuadratic fits a parabola through (-1, yMinus), (0, y0), (+1, yPlus)
// and reports its apex and the real roots inside [-1, 1].
func NewQuadratic[T constraints.Float](yMinus, y0, yPlus T) Quadratic[T] {
	a := 0.5*(yPlus+yMinus) - y0
	b := 0.5 * (yPlus - yMinus)
	c := y0

	var q Quadratic[T]
	q.Xe = -b / (2.0 * a)
	q.Ye = (a*q.Xe+b)*q.Xe + c
	q.Maximum = a < 0.0

	dis := b*b - 4.0*a*c
	if dis >= 0.0 {
		dx := 0.5 * sqrt(dis) / abs(a)
		q.Root1 = q.Xe - dx
		q.Root2 = q.Xe + dx
		if abs(q.Root1) <= 1.0 {
			q.NRoots++
		}
		if abs(q.Root2) <= 1.0 {
			q.NRoots++
		}
		if abs(q.Root1) > 1.0 {
			q.Root1 = q.Root2
		}
	}
	return q
}

// RefineMax nudges an approximate maximum of f to the true one by interval
// halving: depth levels within [t-frame, t+frame], descending each level
// into the half behind the higher endpoint. Quadratic interpolation over
// widely spaced samples lands a little off a flat apex; this removes the
// bias at one function call per level.
func RefineMax[T constraints.Float](t, frame T, depth int, f func(T) T) T {
	return refine(t-frame, t+frame, f(t-frame), f(t+frame), depth, f,
		func(l, r T) bool { return l > r })
}

// RefineMin is RefineMax for a minimum.
func RefineMin[T constraints.Float](t, frame T, depth int, f func(T) T) T {
	return refine(t-frame, t+frame, f(t-frame), f(t+frame), depth, f,
		func(l, r T) bool { return l < r })
}

func refine[T constraints.Float](left, right, yl, yr T, depth int, f func(T) T, better func(T, T) bool) T {
	mid := (left + right) / 2.0
	if depth == 0 {
		return mid
	}
	ym := f(mid)
	if better(yl, yr) {
		return refine(left, mid, yl, ym, depth-1, f, better)
	}
	return refine(mid, right, ym, yr, depth-1, f, better)
}

func abs[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func sqrt[T constraints.Float](x T) T {
	return T(math.Sqrt(float64(x)))
}
