package booster

import "math"

// LeafWeight returns the Newton-optimal weight -G/(H+l2) for a leaf with
// aggregated gradient sum grad and hessian sum hess.
func LeafWeight(l2, grad, hess float64) float64 {
	return -grad / (hess + l2)
}

// Gain returns the loss reduction G²/(H+l2) of a leaf assigned its
// unconstrained Newton-optimal weight.
func Gain(l2, grad, hess float64) float64 {
	return (grad * grad) / (hess + l2)
}

// constrainedWeight computes the Newton leaf weight and, when a monotonic
// constraint is active, clamps it into [lower, upper].
func constrainedWeight(l2, grad, hess, lower, upper float64, constraint Constraint) float64 {
	w := LeafWeight(l2, grad, hess)
	if constraint == Unconstrained {
		return w
	}
	if w > upper {
		return upper
	}
	if w < lower {
		return lower
	}
	return w
}

// gainGivenWeight returns the second-order loss reduction of a leaf assigned
// weight w. At the unconstrained optimum this equals Gain; a clamped weight
// yields a smaller value.
func gainGivenWeight(l2, grad, hess, w float64) float64 {
	return -(2.0*grad*w + (hess+l2)*w*w)
}

// cullGain zeroes out a gain whose child weights violate the monotonic
// constraint, and any gain that is NaN. Every candidate gain passes through
// here before being compared or recorded.
func cullGain(gain, leftWeight, rightWeight float64, constraint Constraint) float64 {
	if math.IsNaN(gain) {
		return 0
	}
	switch constraint {
	case NonDecreasing:
		if leftWeight > rightWeight {
			return 0
		}
	case NonIncreasing:
		if leftWeight < rightWeight {
			return 0
		}
	}
	return gain
}
